package request

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	Password string `json:"password" binding:"required,min=6"`
}

// PINLoginRequest represents a quick login request with a numeric PIN
type PINLoginRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	PIN      string `json:"pin" binding:"required,min=4,max=8,numeric"`
}

// RefreshTokenRequest represents a token refresh request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
