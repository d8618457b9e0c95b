// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the NeuroCare API.

# Route Registration

NewRouter builds an http.ServeMux with all endpoints and wraps it in chi's
RequestID, RealIP and Recoverer middleware plus CORS:

	handler := router.NewRouter(router.Deps{
		Journals: journals,
		Chat:     responder,
		Profiles: profiles,
		Sessions: client,

		CORSOrigins: cfg.CORSOrigins,
	})

# Endpoints

Health:

	GET /health
	GET /

Journal (requires a profile, see middleware.ProfileResolver):

	POST   /entries      - Record an entry; returns entry, streaks, new badges
	GET    /entries      - List entries, newest first
	GET    /entries/{id} - One entry
	DELETE /entries/{id} - Delete one entry
	GET    /progress     - Streaks, next milestone, badges
	GET    /stats        - Most common mood, average confidence
	DELETE /profile      - Clear all stored data (logout)

Stateless:

	POST /entries/analyze  - Classify text without storing it
	POST /chat             - Chatbot reply
	GET  /chat/suggestions - Greeting and quick suggestions
*/
package router
