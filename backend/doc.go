// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package backend is a client for the external account and chat API.
//
// Endpoints used:
//
//	POST /api/auth/signup           {name, email, password}
//	POST /api/auth/login            {email, password} -> {token, name?}
//	GET  /api/auth/current-user     Authorization: Bearer <token>
//	POST /api/auth/logout           Authorization: Bearer <token>
//	POST /api/auth/forgot-password  {email}
//	POST /api/auth/reset-password   {email, otp, newPassword}
//	POST /api/chat                  {message} -> reply
//
// Non-2xx answers come back as *APIError. CurrentUser and Chat are retried
// on transport errors and 502/503/504; nothing else is retried.
package backend
