// Package auth mints and verifies the HS256 access tokens that carry a
// caller's principal.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/gophdrop/internal/common"
	"github.com/dmitrijs2005/gophdrop/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims holds the registered claims plus the authenticated principal.
type Claims struct {
	jwt.RegisteredClaims
	Principal string `json:"principal"`
}

func GenerateToken(principal models.Principal, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Principal: string(principal),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetPrincipalFromToken verifies tokenString and returns its principal.
// Expired tokens yield common.ErrTokenExpired, anything else unusable
// common.ErrInvalidToken.
func GetPrincipalFromToken(tokenString string, secretKey []byte) (models.Principal, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Principal == "" {
		return "", common.ErrInvalidToken
	}

	return models.Principal(claims.Principal), nil
}
