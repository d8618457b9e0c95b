// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the NeuroCare API server.

NeuroCare is a mood journal. Users write a short note about how they feel;
the server classifies it into one of seven moods with an emoji, a
confidence score and a suggestion, stores it, and keeps a daily logging
streak and a set of achievement badges.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	PROFILE_SALT=change-me go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -profile-salt change-me

# Configuration

Required settings:

  - PROFILE_SALT (-profile-salt): Secret for profile key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - STORAGE_TYPE (-t): sqlite, postgres, redis or memory (default: sqlite)
  - DATABASE_URL (-d), REDIS_URL (-redis): storage location
  - BACKEND_URL (-backend): account and chat API
  - CHAT_MODE (-chat): canned or remote
  - REQUIRE_AUTH (-require-auth): resolve profiles from bearer tokens

See package cliparse for the full list and the YAML config file.

# Architecture

  - mood: text to mood classification
  - journal: entry store, streak tracker, badge awarder
  - kvstore: key-value storage port with memory, SQL and Redis backends
  - chatbot: canned and remote chat replies
  - backend: client for the external account and chat API
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, profile resolution, JSON helpers
  - models: Request/response types
  - auth: profile keys and bearer token helpers
  - db: SQL connection and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
