// Package session implements the cookie-session platform: opaque token
// minting, HMAC cookie signing, the Redis-backed session store and the
// Gin middleware that gates authenticated routes.
package session

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// tokenBytes yields a 64-character hex token, matching the session ID column.
const tokenBytes = 32

// NewToken mints a random opaque session token.
func NewToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Sign returns the cookie value for a token: "<token>.<hex hmac-sha256>".
// The signature is verified before any store lookup, so a tampered or
// guessed cookie never reaches Redis or the database.
func Sign(token string, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(token))
	return token + "." + hex.EncodeToString(mac.Sum(nil))
}

// Verify validates a signed cookie value and returns the embedded token.
// The comparison is constant-time.
func Verify(value string, secret []byte) (string, bool) {
	token, _, ok := strings.Cut(value, ".")
	if !ok || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(value), []byte(Sign(token, secret))) {
		return "", false
	}
	return token, true
}
