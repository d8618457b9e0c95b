// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package journal stores mood entries and derives streaks and badges from them.

# Slots

Each profile owns three JSON documents in a kvstore.Store:

	neurocare_moods    []MoodEntry, newest first
	neurocare_streaks  {"current":0,"longest":0,"lastEntry":""}
	neurocare_badges   ["First Step", ...]

Every mutation is a full read-modify-write of one slot. A missing or
unparseable slot reads as its default; storage failures are returned.

# Streaks

UpdateStreaks bumps current at most once per calendar day, and only when an
entry exists for today in the configured location. A skipped day does not
reset the count.

# Badges

	First Step        at least 1 entry
	Week Warrior      current streak >= 7
	Consistency Star  current streak >= 30
	Calm Mind         at least 5 Calm entries
	Mood Master       at least 50 entries

Badges are appended once and never removed, even if the entries that earned
them are deleted.

# Profiles

Service.Open scopes the store under auth.ProfileKey(profileID, salt) and
returns a Journal. Record, Delete and Clear hold a per-profile lock so
concurrent requests for one profile do not lose writes. Locks come from a
fixed set of 64 stripes hashed from the profile key; Open allocates none.
*/
package journal
