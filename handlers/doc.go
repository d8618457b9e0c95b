// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the NeuroCare API.

# Handler Types

  - EntryHandler: record, list, get, delete and analyze journal entries
  - ProgressHandler: streaks, milestone, badges and mood stats
  - ProfileHandler: clear a profile (logout)
  - ChatHandler: chatbot replies and quick suggestions

Handlers are created via constructor functions:

	entryHandler := handlers.NewEntryHandler(journals)
	chatHandler := handlers.NewChatHandler(responder)

# Profiles

Journal handlers expect middleware.ProfileResolver.RequireProfile to have
run first. They open the profile's journal from the request context and
answer 401 if there is none.

# Error Responses

	400  invalid JSON, blank text or message
	401  no resolvable profile
	404  unknown entry id
	500  storage failure
	502  remote chat failure

All errors use middleware.ErrorResponse.
*/
package handlers
