// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/neurocare/auth"
	"github.com/danielhkuo/neurocare/journal"
	"github.com/danielhkuo/neurocare/middleware"
)

// SessionCloser invalidates a backend session token
type SessionCloser interface {
	Logout(ctx context.Context, token string) error
}

type ProfileHandler struct {
	journals *journal.Service
	sessions SessionCloser
}

// NewProfileHandler builds the profile handler. sessions may be nil when no
// backend is configured.
func NewProfileHandler(journals *journal.Service, sessions SessionCloser) *ProfileHandler {
	return &ProfileHandler{journals: journals, sessions: sessions}
}

// Clear handles DELETE /profile. It drops every stored slot of the profile
// and, when the request carries a bearer token, logs it out on the backend.
func (h *ProfileHandler) Clear(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	if err := j.Clear(r.Context()); err != nil {
		slog.Error("failed to clear profile", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear profile")
		return
	}

	if h.sessions != nil {
		if token, err := auth.BearerToken(r.Header.Get("Authorization")); err == nil {
			if err := h.sessions.Logout(r.Context(), token); err != nil {
				slog.Warn("backend logout failed", "error", err)
			}
		}
	}

	slog.Info("profile cleared")
	w.WriteHeader(http.StatusNoContent)
}

// openJournal opens the journal of the profile RequireProfile resolved.
// On failure it writes the error response and returns false.
func openJournal(w http.ResponseWriter, r *http.Request, journals *journal.Service) (*journal.Journal, bool) {
	profileID, ok := middleware.ProfileFromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.ErrMissingProfile.Error())
		return nil, false
	}

	j, err := journals.Open(profileID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return nil, false
	}
	return j, true
}
