// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/neurocare/journal"
	"github.com/danielhkuo/neurocare/middleware"
	"github.com/danielhkuo/neurocare/models"
)

type EntryHandler struct {
	journals *journal.Service
}

func NewEntryHandler(journals *journal.Service) *EntryHandler {
	return &EntryHandler{journals: journals}
}

// Create handles POST /entries
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	var req models.RecordEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res, err := j.Record(r.Context(), req.Text)
	if errors.Is(err, journal.ErrEmptyText) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "text is required")
		return
	}
	if err != nil {
		slog.Error("failed to record entry", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record entry")
		return
	}

	slog.Info("entry recorded", "entry_id", res.Entry.ID, "mood", res.Entry.Mood, "streak", res.Streaks.Current)

	middleware.JSONResponse(w, http.StatusCreated, models.RecordEntryResponse{
		Entry:     res.Entry,
		Streaks:   res.Streaks,
		NewBadges: journal.WithIcons(res.NewBadges),
	})
}

// List handles GET /entries
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	entries, err := j.Entries.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to list entries", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load entries")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListEntriesResponse{Entries: entries})
}

// Get handles GET /entries/{id}
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	id := r.PathValue("id")
	entry, err := j.Entries.GetByID(r.Context(), id)
	if err != nil {
		slog.Error("failed to load entry", "entry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load entry")
		return
	}
	if entry == nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entry)
}

// Delete handles DELETE /entries/{id}
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	id := r.PathValue("id")
	removed, err := j.Delete(r.Context(), id)
	if err != nil {
		slog.Error("failed to delete entry", "entry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete entry")
		return
	}
	if !removed {
		middleware.ErrorResponse(w, http.StatusNotFound, "Entry not found")
		return
	}

	slog.Info("entry deleted", "entry_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Analyze handles POST /entries/analyze. Nothing is stored.
func (h *EntryHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.RecordEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.journals.Classify(req.Text))
}
