// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - MoodEntry: one classified journal entry (id, text, mood, emoji,
    confidence, suggestion, timestamp)
  - StreakData: current and longest logging streak plus the last logged date
  - Badge: achievement label with its display icon
  - Milestone: next streak milestone and progress toward it
  - MoodStats: most common mood and average confidence

MoodEntry JSON uses the same field names as the persisted journal:

	{"id":"...","text":"...","mood":"Calm","emoji":"😌","confidence":85,
	 "suggestion":"...","timestamp":"2025-03-01T09:30:00.000Z"}

# Request Types

  - RecordEntryRequest: text
  - ChatRequest: message

# Response Types

  - RecordEntryResponse: entry, streaks, newBadges
  - ListEntriesResponse: entries (newest first)
  - ProgressResponse: streaks, milestone, badges
  - ChatResponse: reply
  - ChatSuggestionsResponse: greeting, suggestions
  - ErrorResponse: error, message

# Constants

Mood categories (lower-case keys, entries store the capitalized form):

	MoodHappy, MoodSad, MoodAnxious, MoodCalm,
	MoodExcited, MoodStressed, MoodNeutral

Badge vocabulary:

	BadgeFirstStep, BadgeWeekWarrior, BadgeConsistencyStar,
	BadgeCalmMind, BadgeMoodMaster, BadgeWellnessChampion

BadgeWellnessChampion is part of the display vocabulary only; nothing awards it.
*/
package models
