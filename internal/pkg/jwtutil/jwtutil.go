package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// SessionClaims mirrors the historical wire payload: the user identity sits
// under a nested "user" object. Expiry is optional to stay compatible with
// tokens minted before expiry was introduced.
type SessionClaims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

type UserClaim struct {
	ID uint `json:"id"`
}

// GenerateToken signs a session credential for the user. A zero expiry
// produces a non-expiring token.
func GenerateToken(secret string, expiry time.Duration, userID uint) (string, error) {
	claims := SessionClaims{
		User: UserClaim{ID: userID},
	}
	if expiry > 0 {
		claims.RegisteredClaims = jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}
	return signed, nil
}

// ParseToken verifies the signature and returns the embedded claims.
func ParseToken(secret, tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.User.ID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
