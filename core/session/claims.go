package session

import (
	"encoding/base64"
	"strings"

	"github.com/tidwall/gjson"
)

// Candidate claim paths, tried in priority order. The remote API has shipped
// tokens with claims at the top level and nested under "user" or "data"
// wrappers; the first path holding a value wins.
var (
	identityPaths = []string{"id", "user_id", "sub", "user.id", "data.id"}
	namePaths     = []string{"name", "user.name", "data.name", "username"}
	emailPaths    = []string{"email", "user.email", "data.email"}
	rolePaths     = []string{"role", "user.role", "data.role", "userRole"}
)

// AdminRole is the literal role value that marks an administrator.
const AdminRole = "admin"

// Claims is the decoded JSON payload of a session token. The zero value
// holds no claims; every accessor on it reports absent.
type Claims struct {
	raw []byte
}

// DecodeClaims extracts the claims object from a token's second segment.
// Returns ok == false for anything that is not a well-formed token carrying
// a JSON object payload: fewer than two segments, invalid base64, invalid
// JSON, or a non-object payload. Decoding never fails loudly.
func DecodeClaims(token string) (Claims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return Claims{}, false
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return Claims{}, false
	}

	if !gjson.ValidBytes(payload) || !gjson.ParseBytes(payload).IsObject() {
		return Claims{}, false
	}

	return Claims{raw: payload}, true
}

// decodeSegment decodes a token segment, accepting both the base64url
// alphabet mandated for tokens and the standard alphabet some issuers emit,
// with or without padding.
func decodeSegment(seg string) ([]byte, error) {
	seg = strings.TrimRight(seg, "=")
	if b, err := base64.RawURLEncoding.DecodeString(seg); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(seg)
}

// Get returns the string form of the value at the given gjson path.
// Numeric values stringify, so an identity claim of 42 resolves to "42".
func (c Claims) Get(path string) (string, bool) {
	if len(c.raw) == 0 {
		return "", false
	}
	res := gjson.GetBytes(c.raw, path)
	if !res.Exists() {
		return "", false
	}
	return res.String(), true
}

// first returns the value of the first candidate path holding a claim.
func (c Claims) first(paths []string) (string, bool) {
	for _, p := range paths {
		if v, ok := c.Get(p); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// Identity resolves the identity claim used to namespace per-user state.
func (c Claims) Identity() (string, bool) {
	return c.first(identityPaths)
}

// Name resolves the display-name claim.
func (c Claims) Name() (string, bool) {
	return c.first(namePaths)
}

// Email resolves the email claim.
func (c Claims) Email() (string, bool) {
	return c.first(emailPaths)
}

// Role resolves the role claim.
func (c Claims) Role() (string, bool) {
	return c.first(rolePaths)
}

// IsAdmin reports whether the resolved role equals AdminRole exactly.
func (c Claims) IsAdmin() bool {
	role, ok := c.Role()
	return ok && role == AdminRole
}
