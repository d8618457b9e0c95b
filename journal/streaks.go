// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/neurocare/kvstore"
	"github.com/danielhkuo/neurocare/models"
)

// milestones shown as the next streak target
var milestones = []int{7, 30, 100, 365}

// Streaks derives the logging streak from stored entries.
type Streaks struct {
	store    kvstore.Store
	entries  *Entries
	now      func() time.Time
	location *time.Location
}

func NewStreaks(store kvstore.Store, entries *Entries, now func() time.Time, loc *time.Location) *Streaks {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Streaks{store: store, entries: entries, now: now, location: loc}
}

// GetStreaks returns the persisted record, or the zero record when absent
// or unreadable.
func (s *Streaks) GetStreaks(ctx context.Context) (models.StreakData, error) {
	raw, ok, err := s.store.Get(ctx, KeyStreaks)
	if err != nil {
		return models.StreakData{}, fmt.Errorf("failed to load streaks: %w", err)
	}
	if !ok {
		return models.StreakData{}, nil
	}

	var data models.StreakData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		slog.Warn("discarding unreadable streaks slot", "error", err)
		return models.StreakData{}, nil
	}
	return data, nil
}

// UpdateStreaks counts today at most once. If any entry falls on today and
// today is not yet recorded, current grows by one and longest follows.
//
// A skipped day does not reset current; the record only grows.
func (s *Streaks) UpdateStreaks(ctx context.Context) error {
	entries, err := s.entries.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}

	today := s.now().In(s.location).Format(models.DateLayout)
	data, err := s.GetStreaks(ctx)
	if err != nil {
		return err
	}
	if data.LastEntry == today || !s.hasEntryOn(entries, today) {
		return nil
	}

	data.Current++
	data.Longest = max(data.Longest, data.Current)
	data.LastEntry = today

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode streaks: %w", err)
	}
	if err := s.store.Set(ctx, KeyStreaks, string(raw)); err != nil {
		return fmt.Errorf("failed to save streaks: %w", err)
	}
	return nil
}

func (s *Streaks) hasEntryOn(entries []models.MoodEntry, day string) bool {
	for _, e := range entries {
		t := e.Time()
		if t.IsZero() {
			continue
		}
		if t.In(s.location).Format(models.DateLayout) == day {
			return true
		}
	}
	return false
}

// NextMilestone returns the next streak target above current and the
// percentage of the way there, capped at 100. Past the last milestone it
// stays at 365.
func NextMilestone(current int) models.Milestone {
	next := milestones[len(milestones)-1]
	for _, m := range milestones {
		if current < m {
			next = m
			break
		}
	}
	return models.Milestone{
		Next:     next,
		Progress: min(float64(current)/float64(next)*100, 100),
	}
}
