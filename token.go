package main

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL bounds token validity. There is no revocation list; a token
// stays valid until it expires or the signing key rotates.
const tokenTTL = 30 * 24 * time.Hour

type accessClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// issueToken signs an HS256 token bound to the given user id.
func issueToken(userID uint) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// parseToken verifies signature and expiry and returns the bound user id.
func parseToken(raw string) (uint, error) {
	token, err := jwt.ParseWithClaims(raw, &accessClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}
	claims, ok := token.Claims.(*accessClaims)
	if !ok || claims.UserID == 0 {
		return 0, fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}
