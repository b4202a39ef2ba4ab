// Package jwtx extracts claims from bearer tokens without verifying
// signatures. It is deliberately tolerant: malformed input of any kind
// degrades to an absent result, so callers may probe arbitrary strings.
//
// Verification is the server's job; the client only needs identity, role,
// tenancy and expiry hints to drive UI state and token refresh.
package jwtx

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// timeNow is a test seam for expiry checks.
var timeNow = time.Now

// Claims are the fields the client cares about from a token payload.
// Absent fields are nil; a decoded token never fails because a claim
// is missing.
type Claims struct {
	UserID    *int64
	Role      *string
	CompanyID *int64
}

// Payload decodes the payload segment of a JWT-shaped token.
//
// It strips an optional "Bearer " prefix, splits on '.', and requires at
// least two segments. The second segment is Base64URL-decoded (padding is
// restored if missing) and parsed as a JSON object. Any failure returns
// (nil, false); this function never panics on untrusted input.
func Payload(token string) (map[string]any, bool) {
	token = strings.TrimPrefix(strings.TrimSpace(token), "Bearer ")
	segments := strings.Split(token, ".")
	if len(segments) < 2 {
		return nil, false
	}

	raw, err := decodeSegment(segments[1])
	if err != nil {
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}
	return payload, true
}

// decodeSegment pads a Base64URL segment to a multiple of four and decodes it.
func decodeSegment(s string) ([]byte, error) {
	if m := len(s) % 4; m != 0 {
		s += strings.Repeat("=", 4-m)
	}
	return base64.URLEncoding.DecodeString(s)
}

// Extract resolves Claims from a token string.
//
// Resolution order:
//   - user id: "sub", then "userId"; numeric or numeric-string values.
//   - role: scalar "role", then roles[0], then authorities[0]. Array
//     elements may be strings or objects with an "authority" field.
//   - company id: "companyId" as a number or numeric string.
func Extract(token string) (Claims, bool) {
	payload, ok := Payload(token)
	if !ok {
		return Claims{}, false
	}

	c := Claims{
		CompanyID: asInt64(payload["companyId"]),
	}
	if id := asInt64(payload["sub"]); id != nil {
		c.UserID = id
	} else {
		c.UserID = asInt64(payload["userId"])
	}
	c.Role = resolveRole(payload)
	return c, true
}

func resolveRole(payload map[string]any) *string {
	if role, ok := payload["role"].(string); ok {
		return &role
	}
	for _, key := range []string{"roles", "authorities"} {
		list, ok := payload[key].([]any)
		if !ok || len(list) == 0 {
			continue
		}
		if role, ok := roleElement(list[0]); ok {
			return &role
		}
	}
	return nil
}

// roleElement accepts both plain strings and {"authority": "..."} objects.
func roleElement(v any) (string, bool) {
	switch e := v.(type) {
	case string:
		return e, true
	case map[string]any:
		if a, ok := e["authority"].(string); ok {
			return a, true
		}
	}
	return "", false
}

// asInt64 converts a numeric JSON value or a numeric string to *int64.
// Any other shape yields nil.
func asInt64(v any) *int64 {
	switch n := v.(type) {
	case float64:
		id := int64(n)
		return &id
	case json.Number:
		if id, err := n.Int64(); err == nil {
			return &id
		}
	case string:
		if id, err := strconv.ParseInt(n, 10, 64); err == nil {
			return &id
		}
	}
	return nil
}

// IsAssociatedWithCompany reports whether the token carries a company id.
func IsAssociatedWithCompany(token string) bool {
	c, ok := Extract(token)
	return ok && c.CompanyID != nil
}

// HasRole reports whether the token grants the expected role,
// case-insensitively. Both the scalar "role" claim and the
// "roles"/"authorities" arrays are searched.
func HasRole(token string, expected string) bool {
	payload, ok := Payload(token)
	if !ok {
		return false
	}

	if role, ok := payload["role"].(string); ok && strings.EqualFold(role, expected) {
		return true
	}
	for _, key := range []string{"roles", "authorities"} {
		list, ok := payload[key].([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if role, ok := roleElement(item); ok && strings.EqualFold(role, expected) {
				return true
			}
		}
	}
	return false
}

// Expiry returns the token's "exp" claim in epoch seconds.
// Absent or non-positive values report false.
func Expiry(token string) (int64, bool) {
	payload, ok := Payload(token)
	if !ok {
		return 0, false
	}
	exp := asInt64(payload["exp"])
	if exp == nil || *exp <= 0 {
		return 0, false
	}
	return *exp, true
}

// IsAboutToExpire reports whether the token expires within threshold from
// now, boundary inclusive. A token without a known expiry is NOT about to
// expire; callers must not treat "unknown" as "expiring".
func IsAboutToExpire(token string, threshold time.Duration) bool {
	exp, ok := Expiry(token)
	if !ok {
		return false
	}
	remaining := time.Duration(exp-timeNow().Unix()) * time.Second
	return remaining <= threshold
}
