package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
// The user ID is carried as "id" for compatibility with existing mobile clients.
type Claims struct {
	UserID uint `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for a given user.
	GenerateToken(userID uint) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	// Every failure is reported as domainerrors.ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)
}
