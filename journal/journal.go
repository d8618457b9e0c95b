// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package journal

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/neurocare/auth"
	"github.com/danielhkuo/neurocare/kvstore"
	"github.com/danielhkuo/neurocare/models"
	"github.com/danielhkuo/neurocare/mood"
)

var (
	ErrEmptyText    = errors.New("text is required")
	ErrEmptyProfile = errors.New("profile id is required")
)

// Service hands out per-profile journals over one shared store.
type Service struct {
	store      kvstore.Store
	classifier *mood.Classifier
	salt       string
	now        func() time.Time
	location   *time.Location

	locks [lockStripes]sync.Mutex
}

// lockStripes bounds the number of profile locks. Profiles that hash to the
// same stripe share a lock.
const lockStripes = 64

type Options struct {
	Salt     string
	Now      func() time.Time
	Location *time.Location
}

func NewService(store kvstore.Store, classifier *mood.Classifier, opts Options) *Service {
	if classifier == nil {
		classifier = mood.NewClassifier()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Service{
		store:      store,
		classifier: classifier,
		salt:       opts.Salt,
		now:        opts.Now,
		location:   opts.Location,
	}
}

// Open returns the journal of one profile
func (s *Service) Open(profileID string) (*Journal, error) {
	if strings.TrimSpace(profileID) == "" {
		return nil, ErrEmptyProfile
	}

	scoped := kvstore.WithPrefix(s.store, auth.ProfileKey(profileID, s.salt))
	entries := NewEntries(scoped)
	streaks := NewStreaks(scoped, entries, s.now, s.location)

	return &Journal{
		Entries:    entries,
		Streaks:    streaks,
		Badges:     NewBadges(scoped, entries, streaks),
		store:      scoped,
		classifier: s.classifier,
		lock:       s.profileLock(scoped.Prefix()),
	}, nil
}

// Classify runs the classifier without touching storage
func (s *Service) Classify(text string) models.MoodEntry {
	return s.classifier.Classify(text)
}

func (s *Service) profileLock(prefix string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(prefix))
	return &s.locks[h.Sum32()%lockStripes]
}

// Journal bundles the entry store, streak tracker and badge awarder of one
// profile. Mutating calls hold the profile lock across their
// read-modify-write sequence.
type Journal struct {
	Entries *Entries
	Streaks *Streaks
	Badges  *Badges

	store      kvstore.Store
	classifier *mood.Classifier
	lock       *sync.Mutex
}

// RecordResult is the outcome of Record
type RecordResult struct {
	Entry     models.MoodEntry
	Streaks   models.StreakData
	NewBadges []string
}

// Record classifies text, saves the entry, then updates streaks and badges.
// The three slots are written one after another; if a later write fails the
// earlier ones stay in place and the error is returned.
func (j *Journal) Record(ctx context.Context, text string) (RecordResult, error) {
	if strings.TrimSpace(text) == "" {
		return RecordResult{}, ErrEmptyText
	}

	j.lock.Lock()
	defer j.lock.Unlock()

	entry := j.classifier.Classify(text)
	if err := j.Entries.Save(ctx, entry); err != nil {
		return RecordResult{}, err
	}
	if err := j.Streaks.UpdateStreaks(ctx); err != nil {
		return RecordResult{Entry: entry}, fmt.Errorf("entry saved but streak update failed: %w", err)
	}
	awarded, err := j.Badges.CheckAndAwardBadges(ctx)
	if err != nil {
		return RecordResult{Entry: entry}, fmt.Errorf("entry saved but badge check failed: %w", err)
	}
	streaks, err := j.Streaks.GetStreaks(ctx)
	if err != nil {
		return RecordResult{Entry: entry}, err
	}

	if len(awarded) > 0 {
		slog.Info("badges awarded", "entry_id", entry.ID, "badges", awarded)
	}
	return RecordResult{Entry: entry, Streaks: streaks, NewBadges: awarded}, nil
}

// Delete removes one entry. Streaks and badges are left as they are.
func (j *Journal) Delete(ctx context.Context, id string) (bool, error) {
	j.lock.Lock()
	defer j.lock.Unlock()

	return j.Entries.DeleteByID(ctx, id)
}

// Progress returns streaks, the next milestone and earned badges
func (j *Journal) Progress(ctx context.Context) (models.ProgressResponse, error) {
	streaks, err := j.Streaks.GetStreaks(ctx)
	if err != nil {
		return models.ProgressResponse{}, err
	}
	badges, err := j.Badges.GetBadges(ctx)
	if err != nil {
		return models.ProgressResponse{}, err
	}

	return models.ProgressResponse{
		Streaks:   streaks,
		Milestone: NextMilestone(streaks.Current),
		Badges:    WithIcons(badges),
	}, nil
}

// Stats summarizes all entries
func (j *Journal) Stats(ctx context.Context) (models.MoodStats, error) {
	entries, err := j.Entries.GetAll(ctx)
	if err != nil {
		return models.MoodStats{}, err
	}
	return ComputeStats(entries), nil
}

// Clear removes all three slots, returning the profile to fresh state
func (j *Journal) Clear(ctx context.Context) error {
	j.lock.Lock()
	defer j.lock.Unlock()

	for _, key := range []string{KeyEntries, KeyStreaks, KeyBadges} {
		if err := j.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}
