package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access token claims the storefront reads. The client cannot
// verify the signature; the backend does that on every call.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token the way the backend issues them.
func GenerateToken(userID, role, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

var ErrNotJWT = errors.New("token is not a jwt")

// InspectToken decodes the claims without verifying the signature.
func InspectToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, ErrNotJWT
	}
	return claims, nil
}

// TokenUsable reports whether a stored credential is worth sending. Opaque
// tokens are usable as long as they are non-empty; JWTs also need an
// unexpired exp claim when they carry one.
func TokenUsable(tokenStr string, now time.Time) bool {
	if tokenStr == "" {
		return false
	}
	claims, err := InspectToken(tokenStr)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return now.Before(claims.ExpiresAt.Time)
}

// TokenExpiry returns the exp claim of a JWT, nil for opaque tokens.
func TokenExpiry(tokenStr string) *time.Time {
	claims, err := InspectToken(tokenStr)
	if err != nil || claims.ExpiresAt == nil {
		return nil
	}
	t := claims.ExpiresAt.Time
	return &t
}
