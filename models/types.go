// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Mood category constants (lower-case keys)
const (
	MoodHappy    = "happy"
	MoodSad      = "sad"
	MoodAnxious  = "anxious"
	MoodCalm     = "calm"
	MoodExcited  = "excited"
	MoodStressed = "stressed"
	MoodNeutral  = "neutral"
)

// Badge labels
const (
	BadgeFirstStep        = "First Step"
	BadgeWeekWarrior      = "Week Warrior"
	BadgeConsistencyStar  = "Consistency Star"
	BadgeCalmMind         = "Calm Mind"
	BadgeMoodMaster       = "Mood Master"
	BadgeWellnessChampion = "Wellness Champion"
)

// DefaultBadgeIcon is shown for labels outside the vocabulary
const DefaultBadgeIcon = "🏅"

// BadgeIcons maps every badge in the vocabulary to its display icon.
// Wellness Champion has an icon but no award rule.
var BadgeIcons = map[string]string{
	BadgeFirstStep:        "🌱",
	BadgeWeekWarrior:      "⭐",
	BadgeConsistencyStar:  "🌟",
	BadgeCalmMind:         "🏅",
	BadgeMoodMaster:       "🏆",
	BadgeWellnessChampion: "👑",
}

// BadgeIcon returns the display icon for a badge label
func BadgeIcon(label string) string {
	if icon, ok := BadgeIcons[label]; ok {
		return icon
	}
	return DefaultBadgeIcon
}

// TimestampLayout is ISO-8601 UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DateLayout is the date-only projection used by streak tracking
const DateLayout = "2006-01-02"

// Domain types

type MoodEntry struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Mood       string `json:"mood"`
	Emoji      string `json:"emoji"`
	Confidence int    `json:"confidence"`
	Suggestion string `json:"suggestion"`
	Timestamp  string `json:"timestamp"`
}

// Time parses the entry timestamp. Returns the zero time if malformed.
func (e MoodEntry) Time() time.Time {
	t, err := time.Parse(time.RFC3339Nano, e.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

type StreakData struct {
	Current   int    `json:"current"`
	Longest   int    `json:"longest"`
	LastEntry string `json:"lastEntry"`
}

type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type Milestone struct {
	Next     int     `json:"next"`
	Progress float64 `json:"progress"` // percent toward Next
}

type MoodStats struct {
	MostCommon        string `json:"mostCommon"`
	AverageConfidence int    `json:"averageConfidence"`
	Total             int    `json:"total"`
}

// Request types

type RecordEntryRequest struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

// Response types

type RecordEntryResponse struct {
	Entry     MoodEntry  `json:"entry"`
	Streaks   StreakData `json:"streaks"`
	NewBadges []Badge    `json:"newBadges"`
}

type ListEntriesResponse struct {
	Entries []MoodEntry `json:"entries"`
}

type ProgressResponse struct {
	Streaks   StreakData `json:"streaks"`
	Milestone Milestone  `json:"milestone"`
	Badges    []Badge    `json:"badges"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ChatSuggestionsResponse struct {
	Greeting    string   `json:"greeting"`
	Suggestions []string `json:"suggestions"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
