// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/neurocare/auth"
	"github.com/danielhkuo/neurocare/backend"
)

// ProfileHeader carries the profile id when bearer auth is off
const ProfileHeader = "X-Profile-ID"

var ErrMissingProfile = errors.New(ProfileHeader + " header required")

// UserLookup resolves a session token to its account
type UserLookup interface {
	CurrentUser(ctx context.Context, token string) (backend.User, error)
}

// ProfileResolver works out which profile a request belongs to.
type ProfileResolver struct {
	RequireAuth bool
	Users       UserLookup
	Now         func() time.Time
}

type profileKey struct{}

// Resolve returns the profile id for r. With RequireAuth set the bearer
// token is checked for expiry locally and exchanged for the account email;
// otherwise the X-Profile-ID header is used as is.
func (p *ProfileResolver) Resolve(r *http.Request) (string, error) {
	if !p.RequireAuth {
		id := strings.TrimSpace(r.Header.Get(ProfileHeader))
		if id == "" {
			return "", ErrMissingProfile
		}
		return id, nil
	}

	token, err := auth.BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return "", err
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	if _, err := auth.InspectToken(token, now()); err != nil {
		return "", err
	}

	user, err := p.Users.CurrentUser(r.Context(), token)
	if err != nil {
		return "", fmt.Errorf("resolving current user: %w", err)
	}
	if user.Email == "" {
		return "", fmt.Errorf("resolving current user: %w", auth.ErrInvalidToken)
	}
	return user.Email, nil
}

// RequireProfile resolves the profile before calling next and stores it in
// the request context. Unresolvable requests get 401, or 502 when the
// backend could not be reached.
func (p *ProfileResolver) RequireProfile(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := p.Resolve(r)
		if err != nil {
			status := resolveStatus(err)
			if status == http.StatusBadGateway {
				slog.Error("profile resolution failed", "error", err)
				ErrorResponse(w, status, "could not reach account service")
				return
			}
			ErrorResponse(w, status, err.Error())
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), profileKey{}, id)))
	}
}

func resolveStatus(err error) int {
	var apiErr *backend.APIError
	switch {
	case errors.Is(err, ErrMissingProfile),
		errors.Is(err, auth.ErrMissingBearer),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.As(err, &apiErr):
		if apiErr.StatusCode < 500 {
			return http.StatusUnauthorized
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}

// ProfileFromContext returns the profile id stored by RequireProfile
func ProfileFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(profileKey{}).(string)
	return id, ok
}
