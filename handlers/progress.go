// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/neurocare/journal"
	"github.com/danielhkuo/neurocare/middleware"
)

type ProgressHandler struct {
	journals *journal.Service
}

func NewProgressHandler(journals *journal.Service) *ProgressHandler {
	return &ProgressHandler{journals: journals}
}

// GetProgress handles GET /progress
func (h *ProgressHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	progress, err := j.Progress(r.Context())
	if err != nil {
		slog.Error("failed to load progress", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load progress")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, progress)
}

// GetStats handles GET /stats
func (h *ProgressHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	j, ok := openJournal(w, r, h.journals)
	if !ok {
		return
	}

	stats, err := j.Stats(r.Context())
	if err != nil {
		slog.Error("failed to compute stats", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to load stats")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, stats)
}
