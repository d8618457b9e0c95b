// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package chatbot answers chat messages, either from a canned topic table
// (Canned) or by forwarding to the backend chat endpoint (Remote).
package chatbot
