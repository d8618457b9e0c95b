// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/danielhkuo/neurocare/kvstore"
	"github.com/danielhkuo/neurocare/models"
)

// progressSnapshot is what badge rules look at
type progressSnapshot struct {
	total   int
	calm    int
	streaks models.StreakData
}

type badgeRule struct {
	label  string
	earned func(p progressSnapshot) bool
}

// badgeRules are evaluated independently, in this order
var badgeRules = []badgeRule{
	{models.BadgeFirstStep, func(p progressSnapshot) bool { return p.total >= 1 }},
	{models.BadgeWeekWarrior, func(p progressSnapshot) bool { return p.streaks.Current >= 7 }},
	{models.BadgeConsistencyStar, func(p progressSnapshot) bool { return p.streaks.Current >= 30 }},
	{models.BadgeCalmMind, func(p progressSnapshot) bool { return p.calm >= 5 }},
	{models.BadgeMoodMaster, func(p progressSnapshot) bool { return p.total >= 50 }},
}

// Badges keeps the append-only set of earned achievement labels.
type Badges struct {
	store   kvstore.Store
	entries *Entries
	streaks *Streaks
}

func NewBadges(store kvstore.Store, entries *Entries, streaks *Streaks) *Badges {
	return &Badges{store: store, entries: entries, streaks: streaks}
}

// GetBadges returns earned labels in award order
func (b *Badges) GetBadges(ctx context.Context) ([]string, error) {
	raw, ok, err := b.store.Get(ctx, KeyBadges)
	if err != nil {
		return nil, fmt.Errorf("failed to load badges: %w", err)
	}

	badges := []string{}
	if !ok {
		return badges, nil
	}
	if err := json.Unmarshal([]byte(raw), &badges); err != nil || badges == nil {
		slog.Warn("discarding unreadable badges slot", "error", err)
		return []string{}, nil
	}
	return badges, nil
}

// CheckAndAwardBadges adds every badge whose rule now holds and that is not
// yet held. Badges are never removed. Returns the newly awarded labels.
func (b *Badges) CheckAndAwardBadges(ctx context.Context) ([]string, error) {
	entries, err := b.entries.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	streaks, err := b.streaks.GetStreaks(ctx)
	if err != nil {
		return nil, err
	}
	current, err := b.GetBadges(ctx)
	if err != nil {
		return nil, err
	}

	snap := progressSnapshot{total: len(entries), streaks: streaks}
	for _, e := range entries {
		if strings.EqualFold(e.Mood, models.MoodCalm) {
			snap.calm++
		}
	}

	var awarded []string
	for _, rule := range badgeRules {
		if rule.earned(snap) && !slices.Contains(current, rule.label) {
			current = append(current, rule.label)
			awarded = append(awarded, rule.label)
		}
	}
	if len(awarded) == 0 {
		return nil, nil
	}

	raw, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode badges: %w", err)
	}
	if err := b.store.Set(ctx, KeyBadges, string(raw)); err != nil {
		return nil, fmt.Errorf("failed to save badges: %w", err)
	}
	return awarded, nil
}

// WithIcons pairs labels with their display icons
func WithIcons(labels []string) []models.Badge {
	out := make([]models.Badge, 0, len(labels))
	for _, l := range labels {
		out = append(out, models.Badge{Label: l, Icon: models.BadgeIcon(l)})
	}
	return out
}
