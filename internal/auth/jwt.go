package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie the SPA stores the session token in.
const CookieName = "authToken"

// SessionTTL bounds both the JWT and the cookie carrying it.
const SessionTTL = 5 * 24 * time.Hour

const resetTTL = time.Hour

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(secret, userID, email string) (string, error) {
	return signToken(secret, userID, email, SessionTTL)
}

// GenerateResetToken issues the short-lived token embedded in
// password-reset links.
func GenerateResetToken(secret, userID string) (string, error) {
	return signToken(secret, userID, "", resetTTL)
}

func signToken(secret, userID, email string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	return claims, nil
}
