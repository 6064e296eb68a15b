package dto

// UserRes carries the public fields of a user.
// The password hash never appears in any response.
type UserRes struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthRes is the envelope for successful register and login responses.
type AuthRes struct {
	Message string  `json:"message"`
	User    UserRes `json:"user"`
}

// StatusRes reports whether a session is active.
type StatusRes struct {
	LoggedIn bool     `json:"logged_in"`
	User     *UserRes `json:"user,omitempty"`
	Error    string   `json:"error,omitempty"`
}
