// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingBearer = errors.New("missing or invalid Authorization header")
	ErrInvalidToken  = errors.New("invalid token format")
	ErrTokenExpired  = errors.New("token expired")
)

// ProfileKey derives the storage prefix for a profile.
// Keyed HMAC keeps raw profile ids (often emails) out of storage keys.
func ProfileKey(profileID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(strings.ToLower(strings.TrimSpace(profileID))))
	sum := h.Sum(nil)
	// 16 bytes is plenty to avoid collisions between profiles
	return "profile:" + hex.EncodeToString(sum[:16]) + ":"
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value
func BearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" {
		return "", ErrMissingBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingBearer
	}
	return token, nil
}

// TokenInfo is what we can read from a backend-issued JWT without its key
type TokenInfo struct {
	Subject   string
	ExpiresAt time.Time // zero if the token has no exp claim
}

// InspectToken reads the claims of a JWT without verifying its signature.
// The backend that issued the token is the one that verifies it; this only
// lets us reject expired tokens before a round trip.
func InspectToken(token string, now time.Time) (TokenInfo, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenInfo{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	info := TokenInfo{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
		if !now.Before(info.ExpiresAt) {
			return info, ErrTokenExpired
		}
	}
	return info, nil
}
