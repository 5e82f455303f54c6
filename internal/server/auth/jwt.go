// Package auth issues and validates the signed session tokens that gate
// access to the API. Tokens are stateless: the HMAC signature and expiry
// alone decide validity, no server-side session store is consulted.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/memorizer/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken mints an HS256 session token. The user id travels in the
// subject claim; the session row id travels in the token id claim so logout
// can delete its bookkeeping row.
func GenerateToken(userID, sessionID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID,
		ID:        sessionID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken validates tokenString and returns the user id (subject) and
// session id claims. Expired tokens yield common.ErrTokenExpired, anything
// else invalid yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (string, string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrInvalidToken
		}
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", "", common.ErrInvalidToken
	}

	return claims.Subject, claims.ID, nil
}

// GetUserIDFromToken validates tokenString and returns the user id carried
// in the subject claim.
func GetUserIDFromToken(tokenString string, secretKey []byte) (string, error) {
	userID, _, err := ParseToken(tokenString, secretKey)
	return userID, err
}
