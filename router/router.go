// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/neurocare/chatbot"
	"github.com/danielhkuo/neurocare/handlers"
	"github.com/danielhkuo/neurocare/journal"
	"github.com/danielhkuo/neurocare/middleware"
)

// Deps are the services the routes are built on
type Deps struct {
	Journals *journal.Service
	Chat     chatbot.Responder
	Profiles *middleware.ProfileResolver
	Sessions handlers.SessionCloser // nil without a backend

	// CORSOrigins may send credentialed requests; empty allows any origin
	// without credentials
	CORSOrigins []string
}

func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	profiles := deps.Profiles
	if profiles == nil {
		profiles = &middleware.ProfileResolver{}
	}
	withProfile := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(profiles.RequireProfile(h))
	}

	// Initialize handlers
	entryHandler := handlers.NewEntryHandler(deps.Journals)
	progressHandler := handlers.NewProgressHandler(deps.Journals)
	profileHandler := handlers.NewProfileHandler(deps.Journals, deps.Sessions)
	chatHandler := handlers.NewChatHandler(deps.Chat)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Journal entries (per profile)
	mux.HandleFunc("POST /entries", withProfile(entryHandler.Create))
	mux.HandleFunc("GET /entries", withProfile(entryHandler.List))
	mux.HandleFunc("GET /entries/{id}", withProfile(entryHandler.Get))
	mux.HandleFunc("DELETE /entries/{id}", withProfile(entryHandler.Delete))
	mux.HandleFunc("POST /entries/analyze", middleware.WithLogging(entryHandler.Analyze))

	// Progress (per profile)
	mux.HandleFunc("GET /progress", withProfile(progressHandler.GetProgress))
	mux.HandleFunc("GET /stats", withProfile(progressHandler.GetStats))
	mux.HandleFunc("DELETE /profile", withProfile(profileHandler.Clear))

	// Chat
	mux.HandleFunc("POST /chat", middleware.WithLogging(chatHandler.Chat))
	mux.HandleFunc("GET /chat/suggestions", middleware.WithLogging(chatHandler.Suggestions))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("neurocare API v1"))
	})

	return chi.Chain(
		chimw.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.CORS(deps.CORSOrigins),
	).Handler(mux)
}
