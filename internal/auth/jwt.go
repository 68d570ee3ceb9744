// Package auth issues and verifies the signed bearer tokens that carry
// caller identity between requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/ivmart/tracker-service/internal/models"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims are the registered claims plus the numeric user id. Subject holds
// the username; the id claim is what handlers scope every query by.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"id"`
}

// GenerateToken signs an HS256 token for the user with a unique jti and an
// expiry ttl from now.
func GenerateToken(user *models.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: user.ID,
	})

	tokenString, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the claims.
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
