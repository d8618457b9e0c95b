// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request id comes from chi's RequestID middleware
when the router installs it.

# CORS Middleware

Enable cross-origin requests for frontend access:

	handler := middleware.CORS(cfg.CORSOrigins)(mux)

With an empty origin list every origin gets "*" and no credentials. With a
list, only matching origins are echoed back, along with
Access-Control-Allow-Credentials. Allows methods GET, POST, DELETE, OPTIONS
with headers Content-Type, Authorization, X-Profile-ID.

# Profiles

Every journal route runs behind ProfileResolver.RequireProfile:

	profiles := &middleware.ProfileResolver{RequireAuth: cfg.RequireAuth, Users: client}
	mux.HandleFunc("GET /entries", middleware.WithLogging(profiles.RequireProfile(h.List)))

Without RequireAuth the profile is the X-Profile-ID header. With it, the
Authorization bearer token is checked for expiry and exchanged for the
account email through the backend. Handlers read the result with
ProfileFromContext.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.RecordEntryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
