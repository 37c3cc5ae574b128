package services

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strings"
	"time"

	"church-admin/internal/config"
	"church-admin/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrEmptyToken        = errors.New("empty token")
	ErrMissingSubject    = errors.New("token has no subject")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrNoSigningKey      = errors.New("no signing key configured")
)

// TokenVerifier validates RS256 access tokens issued by the hosted
// identity provider. The API never issues production tokens itself.
type TokenVerifier struct {
	publicKey *rsa.PublicKey
	parser    *jwt.Parser
}

func NewTokenVerifier(cfg config.AuthConfig) TokenVerifierInterface {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(cfg.ClockSkew),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &TokenVerifier{
		publicKey: cfg.PublicKey,
		parser:    jwt.NewParser(opts...),
	}
}

// VerifyAccessToken checks signature, issuer, audience and expiry and
// returns the identity claims.
func (v *TokenVerifier) VerifyAccessToken(tokenString string) (*models.IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.IdentityClaims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, v.keyFunc)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (v *TokenVerifier) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

func (v *TokenVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	if v.publicKey == nil {
		return nil, ErrNoSigningKey
	}
	return v.publicKey, nil
}

func mapTokenError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrExpiredToken
	}
	return fmt.Errorf("%w: %v", ErrInvalidToken, err)
}

// DevTokenIssuer signs identity tokens with a locally generated key so the
// API can be exercised without the identity provider. Development only.
type DevTokenIssuer struct {
	privateKey *rsa.PrivateKey
	issuer     string
	audience   string
	now        func() time.Time
}

func NewDevTokenIssuer(cfg config.AuthConfig, opts ...Option) (*DevTokenIssuer, error) {
	if cfg.DevPrivateKey == nil {
		return nil, ErrNoSigningKey
	}
	o := applyOptions(opts)
	return &DevTokenIssuer{
		privateKey: cfg.DevPrivateKey,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		now:        o.now,
	}, nil
}

// Issue signs an access token for the given identity.
func (i *DevTokenIssuer) Issue(userID, email, name string, ttl time.Duration) (string, time.Time, error) {
	if userID == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	now := i.now()
	expiresAt := now.Add(ttl)

	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.issuer,
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Email:         email,
		EmailVerified: true,
		Name:          name,
	}
	if i.audience != "" {
		claims.Audience = jwt.ClaimStrings{i.audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.privateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, expiresAt, nil
}
