// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connections

Open registers both SQL drivers and verifies the connection:

	conn, err := db.Open("sqlite", "file:neurocare.db")
	conn, err := db.Open("postgres", "postgres://...")

File-backed sqlite databases switch to WAL mode. In-memory sqlite
databases are pinned to a single connection, since each connection
would otherwise see its own empty database.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

  - kv_slot: one row per storage slot (key, value, updated_at)

Each profile owns three slots under its own key prefix:

	profile:<hash>:neurocare_moods
	profile:<hash>:neurocare_streaks
	profile:<hash>:neurocare_badges

Values are JSON documents written whole on every update.
*/
package db
