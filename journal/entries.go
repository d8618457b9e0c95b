// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/neurocare/kvstore"
	"github.com/danielhkuo/neurocare/models"
)

// Slot keys, one JSON document each
const (
	KeyEntries = "neurocare_moods"
	KeyStreaks = "neurocare_streaks"
	KeyBadges  = "neurocare_badges"
)

// Entries is the newest-first list of mood entries stored in one slot.
// Every mutation rewrites the whole list.
type Entries struct {
	store kvstore.Store
}

func NewEntries(store kvstore.Store) *Entries {
	return &Entries{store: store}
}

// Save prepends entry to the list
func (e *Entries) Save(ctx context.Context, entry models.MoodEntry) error {
	entries, err := e.GetAll(ctx)
	if err != nil {
		return err
	}

	entries = append([]models.MoodEntry{entry}, entries...)
	return e.write(ctx, entries)
}

// GetAll returns every entry, newest first. A missing or unparseable slot
// reads as an empty list; only storage failures are returned as errors.
func (e *Entries) GetAll(ctx context.Context) ([]models.MoodEntry, error) {
	raw, ok, err := e.store.Get(ctx, KeyEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	entries := []models.MoodEntry{}
	if !ok {
		return entries, nil
	}
	if err := json.Unmarshal([]byte(raw), &entries); err != nil || entries == nil {
		slog.Warn("discarding unreadable entries slot", "error", err)
		return []models.MoodEntry{}, nil
	}
	return entries, nil
}

// GetByID returns the entry with id, or nil if there is none
func (e *Entries) GetByID(ctx context.Context, id string) (*models.MoodEntry, error) {
	entries, err := e.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, nil
}

// DeleteByID removes every entry with id and rewrites the list.
// Reports whether anything was removed.
func (e *Entries) DeleteByID(ctx context.Context, id string) (bool, error) {
	entries, err := e.GetAll(ctx)
	if err != nil {
		return false, err
	}

	kept := make([]models.MoodEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}

	if err := e.write(ctx, kept); err != nil {
		return false, err
	}
	return len(kept) != len(entries), nil
}

func (e *Entries) write(ctx context.Context, entries []models.MoodEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode entries: %w", err)
	}
	if err := e.store.Set(ctx, KeyEntries, string(data)); err != nil {
		return fmt.Errorf("failed to save entries: %w", err)
	}
	return nil
}
