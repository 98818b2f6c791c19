package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates access tokens issued by the identity provider.
// This core never issues tokens; it only needs to identify the acting user.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
