package dto

// LoginRequest represents the login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SessionUser represents the identity carried by an active session
type SessionUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// LoginResponse is returned on successful login and session lookup
type LoginResponse struct {
	User SessionUser `json:"user"`
}
