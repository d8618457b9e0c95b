// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/neurocare/models"
	"github.com/danielhkuo/neurocare/testutil"
)

// TestConcurrentRecords verifies that simultaneous writes to one profile
// don't lose entries to interleaved read-modify-write cycles
func TestConcurrentRecords(t *testing.T) {
	h, svc, _ := setupEntries(t)

	numRequests := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.RecordEntryRequest{Text: fmt.Sprintf("calm moment %d", idx)}
			req := testutil.MakeRequest("POST", "/entries", body, testutil.ProfileHeaders("alice"))
			w := httptest.NewRecorder()
			withProfile(h.Create)(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numRequests {
		t.Errorf("Expected %d successful records, got %d", numRequests, successCount.Load())
	}

	j, _ := svc.Open("alice")
	ctx := context.Background()
	all, err := j.Entries.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != numRequests {
		t.Errorf("Expected %d stored entries, got %d", numRequests, len(all))
	}

	ids := make(map[string]bool)
	for _, e := range all {
		if ids[e.ID] {
			t.Errorf("duplicate entry id %s", e.ID)
		}
		ids[e.ID] = true
	}

	p, _ := j.Progress(ctx)
	if p.Streaks.Current != 1 {
		t.Errorf("Expected streak 1, got %d", p.Streaks.Current)
	}

	count := 0
	for _, b := range p.Badges {
		if b.Label == models.BadgeCalmMind {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected Calm Mind exactly once, got %d", count)
	}
}

// TestConcurrentProfiles verifies that writes to different profiles stay
// separate
func TestConcurrentProfiles(t *testing.T) {
	h, svc, _ := setupEntries(t)

	profiles := []string{"p1", "p2", "p3", "p4"}
	perProfile := 5
	var wg sync.WaitGroup

	for _, p := range profiles {
		for i := 0; i < perProfile; i++ {
			wg.Add(1)
			go func(profile string) {
				defer wg.Done()
				req := testutil.MakeRequest("POST", "/entries", models.RecordEntryRequest{Text: "ok"}, testutil.ProfileHeaders(profile))
				w := httptest.NewRecorder()
				withProfile(h.Create)(w, req)
			}(p)
		}
	}
	wg.Wait()

	for _, p := range profiles {
		j, _ := svc.Open(p)
		all, _ := j.Entries.GetAll(context.Background())
		if len(all) != perProfile {
			t.Errorf("profile %s: expected %d entries, got %d", p, perProfile, len(all))
		}
	}
}
