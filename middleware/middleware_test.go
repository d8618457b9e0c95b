// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/neurocare/models"
)

// captureLogs routes the default slog logger into a buffer for one test
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// logRecord returns the first JSON log line with the given message
func logRecord(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var rec map[string]any
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("malformed log line %q: %v", sc.Text(), err)
		}
		if rec["msg"] == msg {
			return rec
		}
	}
	t.Fatalf("no %q log line in:\n%s", msg, buf.String())
	return nil
}

func TestWithLogging_RecordsStatusAndRequestID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		write  func(w http.ResponseWriter)
		status int
	}{
		{"entry created", "POST", "/entries", func(w http.ResponseWriter) {
			JSONResponse(w, http.StatusCreated, models.RecordEntryResponse{})
		}, http.StatusCreated},
		{"entry deleted", "DELETE", "/entries/abc", func(w http.ResponseWriter) {
			w.WriteHeader(http.StatusNoContent)
		}, http.StatusNoContent},
		{"implicit ok", "GET", "/stats", func(w http.ResponseWriter) {
			w.Write([]byte("{}"))
		}, http.StatusOK},
		{"remote chat failed", "POST", "/chat", func(w http.ResponseWriter) {
			ErrorResponse(w, http.StatusBadGateway, "model overloaded")
		}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLogs(t)

			var seen string
			handler := chimw.RequestID(WithLogging(func(w http.ResponseWriter, r *http.Request) {
				seen = chimw.GetReqID(r.Context())
				tt.write(w)
			}))

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Errorf("Expected status %d, got %d", tt.status, w.Code)
			}
			if seen == "" {
				t.Fatal("Expected a request id in the handler context")
			}

			started := logRecord(t, buf, "request started")
			if started["request_id"] != seen {
				t.Errorf("start request_id = %v, want %q", started["request_id"], seen)
			}

			done := logRecord(t, buf, "request completed")
			if got, _ := done["status"].(float64); int(got) != tt.status {
				t.Errorf("completion status = %v, want %d", done["status"], tt.status)
			}
			if done["request_id"] != seen {
				t.Errorf("completion request_id = %v, want %q", done["request_id"], seen)
			}
			if done["method"] != tt.method || done["path"] != tt.path {
				t.Errorf("completion logged %v %v", done["method"], done["path"])
			}
			if _, ok := done["duration_ms"]; !ok {
				t.Error("Expected duration_ms on completion line")
			}
		})
	}
}

func TestWithLogging_NoRequestID(t *testing.T) {
	buf := captureLogs(t)

	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	done := logRecord(t, buf, "request completed")
	if done["request_id"] != "" {
		t.Errorf("Expected empty request_id outside RequestID, got %v", done["request_id"])
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusNotFound, "entry not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Error("Expected Content-Type 'application/json'")
	}
	body := strings.TrimSpace(w.Body.String())
	if body != `{"error":"Not Found","message":"entry not found"}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestParseJSONBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{"entry text", `{"text":"Feeling calm today"}`, "Feeling calm today", false},
		{"unknown fields ignored", `{"text":"ok","mood":"Happy"}`, "ok", false},
		{"malformed", `{text:}`, "", true},
		{"empty body", ``, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/entries", strings.NewReader(tt.body))

			var parsed models.RecordEntryRequest
			err := ParseJSONBody(req, &parsed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if parsed.Text != tt.want {
				t.Errorf("Text = %q, want %q", parsed.Text, tt.want)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handled"))
	})
	allowList := []string{"https://app.neurocare.test", "http://localhost:5173"}

	tests := []struct {
		name        string
		allowed     []string
		origin      string
		wantOrigin  string
		credentials bool
	}{
		{"open, no origin", nil, "", "*", false},
		{"open, any origin", nil, "https://evil.test", "*", false},
		{"listed origin", allowList, "http://localhost:5173", "http://localhost:5173", true},
		{"unlisted origin", allowList, "https://evil.test", "", false},
		{"allow list, no origin", allowList, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/entries", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()
			CORS(tt.allowed)(next).ServeHTTP(w, req)

			if w.Body.String() != "handled" {
				t.Error("Expected next handler to be called")
			}
			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("Allow-Origin = %q, want %q", got, tt.wantOrigin)
			}
			creds := w.Header().Get("Access-Control-Allow-Credentials") == "true"
			if creds != tt.credentials {
				t.Errorf("Allow-Credentials = %v, want %v", creds, tt.credentials)
			}
			if creds && w.Header().Get("Access-Control-Allow-Origin") == "*" {
				t.Error("credentials must never be allowed with a wildcard origin")
			}
		})
	}

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/entries", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		CORS(allowList)(next).ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.Len() != 0 {
			t.Errorf("Expected empty 200 preflight, got %d %q", w.Code, w.Body.String())
		}
		headers := w.Header().Get("Access-Control-Allow-Headers")
		for _, h := range []string{"Content-Type", "Authorization", ProfileHeader} {
			if !strings.Contains(headers, h) {
				t.Errorf("Expected %s in allowed headers", h)
			}
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "DELETE") {
			t.Error("Expected DELETE in allowed methods")
		}
	})
}
