package entity

import "time"

// Session is the server-side record behind a login cookie.
// The client only ever holds the opaque token, never the user identity.
type Session struct {
	ID        string    // Opaque session token (64-character hex string)
	UserID    uint      // Authenticated user ID
	Username  string    // Cached for responses that only need the handle
	CreatedAt time.Time // Session creation time
	ExpiresAt time.Time // Server-side expiration time
}

// IsExpired returns true if the session has passed its expiration time.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
