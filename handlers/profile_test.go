// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/neurocare/testutil"
)

type recordingSessions struct {
	tokens []string
}

func (s *recordingSessions) Logout(_ context.Context, token string) error {
	s.tokens = append(s.tokens, token)
	return nil
}

func TestClearProfile(t *testing.T) {
	entries, svc, _ := setupEntries(t)
	sessions := &recordingSessions{}
	h := NewProfileHandler(svc, sessions)

	recordEntry(t, entries, "alice", "happy")
	recordEntry(t, entries, "bob", "happy")

	req := testutil.MakeRequest("DELETE", "/profile", nil, map[string]string{
		"X-Profile-ID":  "alice",
		"Authorization": "Bearer tok-1",
	})
	w := httptest.NewRecorder()
	withProfile(h.Clear)(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	ctx := context.Background()
	alice, _ := svc.Open("alice")
	if all, _ := alice.Entries.GetAll(ctx); len(all) != 0 {
		t.Errorf("Expected alice to be empty, got %d entries", len(all))
	}
	p, _ := alice.Progress(ctx)
	if p.Streaks.Current != 0 || len(p.Badges) != 0 {
		t.Errorf("Expected fresh progress, got %+v", p)
	}

	bob, _ := svc.Open("bob")
	if all, _ := bob.Entries.GetAll(ctx); len(all) != 1 {
		t.Errorf("Expected bob untouched, got %d entries", len(all))
	}

	if len(sessions.tokens) != 1 || sessions.tokens[0] != "tok-1" {
		t.Errorf("Expected backend logout with tok-1, got %v", sessions.tokens)
	}
}

func TestClearProfile_NoBackend(t *testing.T) {
	_, svc, _ := setupEntries(t)
	h := NewProfileHandler(svc, nil)

	req := testutil.MakeRequest("DELETE", "/profile", nil, testutil.ProfileHeaders("alice"))
	w := httptest.NewRecorder()
	withProfile(h.Clear)(w, req)

	testutil.AssertStatus(t, w, http.StatusNoContent)
}
