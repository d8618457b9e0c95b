// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity and token utilities.

# Profile Keys

Every profile's journal lives under its own storage prefix:

	prefix := auth.ProfileKey(profileID, salt)  // "profile:<32 hex>:"

The prefix is an HMAC-SHA256 of the trimmed, lower-cased profile ID, so the
same profile always maps to the same slots and raw IDs never reach storage.

# Bearer Tokens

Tokens are issued by the external auth backend. We only read them:

	token, err := auth.BearerToken(r.Header.Get("Authorization"))
	info, err := auth.InspectToken(token, time.Now())

InspectToken parses the JWT without verifying the signature and returns
ErrTokenExpired when exp has passed. Signature checks happen at the backend
when the token is exchanged for the current user.
*/
package auth
