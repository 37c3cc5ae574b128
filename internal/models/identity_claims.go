package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims of an access token issued by the hosted
// identity provider. The subject is the stable user ID.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
	Name          string `json:"name,omitempty"`
}
