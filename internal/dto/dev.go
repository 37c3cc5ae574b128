package dto

import "time"

// DevTokenRequest represents the request payload for minting a local access token
type DevTokenRequest struct {
	UserID string `json:"user_id" validate:"required,max=255"`
	Email  string `json:"email" validate:"required,email"`
	Name   string `json:"name" validate:"omitempty,max=255"`
}

// DevTokenResponse carries a locally signed access token
type DevTokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}
