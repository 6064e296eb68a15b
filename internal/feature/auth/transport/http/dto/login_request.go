package dto

// LoginReq represents the request body for /api/auth/login.
// Identifier may be either the email address or the username.
type LoginReq struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}
