// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/neurocare/backend"
	"github.com/danielhkuo/neurocare/chatbot"
	"github.com/danielhkuo/neurocare/middleware"
	"github.com/danielhkuo/neurocare/models"
)

type ChatHandler struct {
	responder chatbot.Responder
}

func NewChatHandler(responder chatbot.Responder) *ChatHandler {
	return &ChatHandler{responder: responder}
}

// Chat handles POST /chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	reply, err := h.responder.Reply(r.Context(), req.Message)
	if errors.Is(err, chatbot.ErrEmptyMessage) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "message is required")
		return
	}
	if err != nil {
		slog.Error("chat reply failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, chatFailureMessage(err))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ChatResponse{Reply: reply})
}

// chatFailureMessage prefers the backend's own error body over the fallback text
func chatFailureMessage(err error) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Sorry, I couldn't get a response."
}

// Suggestions handles GET /chat/suggestions
func (h *ChatHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.ChatSuggestionsResponse{
		Greeting:    chatbot.Greeting,
		Suggestions: chatbot.QuickSuggestions,
	})
}
