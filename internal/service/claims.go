package service

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// IDTokenClaims are the user pool ID token claims the service reads.
type IDTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Username      string `json:"cognito:username"`
	TokenUse      string `json:"token_use"`
}

// ParseIDToken decodes an ID token without verifying its signature. It is only
// used on tokens just returned by the user pool over TLS.
func ParseIDToken(idToken string) (*IDTokenClaims, error) {
	claims := &IDTokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, fmt.Errorf("failed to parse id token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("sub claim not found in id token")
	}
	if claims.Username == "" {
		claims.Username = claims.Subject
	}
	return claims, nil
}
