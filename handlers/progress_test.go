// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/neurocare/models"
	"github.com/danielhkuo/neurocare/testutil"
)

func TestGetProgress(t *testing.T) {
	entries, svc, clock := setupEntries(t)
	h := NewProgressHandler(svc)

	get := func() models.ProgressResponse {
		t.Helper()
		req := testutil.MakeRequest("GET", "/progress", nil, testutil.ProfileHeaders("alice"))
		w := httptest.NewRecorder()
		withProfile(h.GetProgress)(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.ProgressResponse
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	fresh := get()
	if fresh.Streaks.Current != 0 || len(fresh.Badges) != 0 || fresh.Milestone.Next != 7 {
		t.Errorf("unexpected fresh progress %+v", fresh)
	}

	// A week of daily calm entries
	for day := 0; day < 7; day++ {
		recordEntry(t, entries, "alice", "calm evening")
		clock.Advance(24 * time.Hour)
	}

	p := get()
	if p.Streaks.Current != 7 || p.Streaks.Longest != 7 {
		t.Errorf("Expected 7 day streak, got %+v", p.Streaks)
	}
	if p.Milestone.Next != 30 {
		t.Errorf("Expected next milestone 30, got %d", p.Milestone.Next)
	}

	want := []models.Badge{
		{Label: models.BadgeFirstStep, Icon: "🌱"},
		{Label: models.BadgeCalmMind, Icon: "🏅"},
		{Label: models.BadgeWeekWarrior, Icon: "⭐"},
	}
	if len(p.Badges) != len(want) {
		t.Fatalf("Expected %d badges, got %+v", len(want), p.Badges)
	}
	for i := range want {
		if p.Badges[i] != want[i] {
			t.Errorf("badge %d = %+v, want %+v", i, p.Badges[i], want[i])
		}
	}
}

func TestGetStats(t *testing.T) {
	entries, svc, _ := setupEntries(t)
	h := NewProgressHandler(svc)

	get := func() models.MoodStats {
		t.Helper()
		req := testutil.MakeRequest("GET", "/stats", nil, testutil.ProfileHeaders("alice"))
		w := httptest.NewRecorder()
		withProfile(h.GetStats)(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.MoodStats
		testutil.AssertJSON(t, w, &resp)
		return resp
	}

	if s := get(); s.MostCommon != "None" || s.Total != 0 {
		t.Errorf("unexpected empty stats %+v", s)
	}

	recordEntry(t, entries, "alice", "so happy")
	recordEntry(t, entries, "alice", "happy again")
	recordEntry(t, entries, "alice", "meh")

	s := get()
	if s.MostCommon != "Happy" || s.Total != 3 {
		t.Errorf("unexpected stats %+v", s)
	}
	// (85 + 85 + 70) / 3 = 80
	if s.AverageConfidence != 80 {
		t.Errorf("Expected average 80, got %d", s.AverageConfidence)
	}
}
