package httpdto

// RegisterRequest is used for POST /register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned after successful login
type TokenResponse struct {
	Token string `json:"token"`
}

// MeResponse echoes the identity carried by the bearer token
type MeResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}
