// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mood

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/neurocare/models"
)

// Rand picks an index in [0, n)
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// DefaultRand uses the process-wide math/rand/v2 source
var DefaultRand Rand = globalRand{}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// NewSeededRand returns a deterministic Rand, safe for concurrent use
func NewSeededRand(seed uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed, seed))}
}

// Pick returns one element of options chosen by r
func Pick(r Rand, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.IntN(len(options))]
}

// Classifier maps free text to a mood entry.
type Classifier struct {
	Rand  Rand
	Now   func() time.Time
	NewID func() string
}

// NewClassifier returns a classifier with process defaults
func NewClassifier() *Classifier {
	return &Classifier{
		Rand:  DefaultRand,
		Now:   time.Now,
		NewID: newEntryID,
	}
}

// newEntryID returns a UUIDv7, which sorts by creation time
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Detect returns the winning category for text.
// Categories are tested in priority order and the first hit wins.
func Detect(text string) Category {
	lower := strings.ToLower(text)
	for _, c := range categories {
		for _, kw := range c.Keywords {
			if strings.Contains(lower, kw) {
				return c
			}
		}
	}
	return neutral
}

// Classify builds a fully populated entry for text. It never fails;
// blank input is the caller's concern and lands in Neutral.
func (c *Classifier) Classify(text string) models.MoodEntry {
	cat := Detect(text)

	r := c.Rand
	if r == nil {
		r = DefaultRand
	}
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	newID := newEntryID
	if c.NewID != nil {
		newID = c.NewID
	}

	return models.MoodEntry{
		ID:         newID(),
		Text:       text,
		Mood:       cat.Label(),
		Emoji:      cat.Emoji,
		Confidence: cat.Confidence,
		Suggestion: Pick(r, cat.Suggestions),
		Timestamp:  now().UTC().Format(models.TimestampLayout),
	}
}
