package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signing key for login tokens. The real key comes from configuration at
// startup; the fallback only exists so local development works without one.
var jwtSecretKey = []byte("bizmate-dev-secret")

// SetSecret replaces the signing key. Called once from main with the
// configured JWT_SECRET; an empty value keeps the development fallback.
func SetSecret(secret string) {
	if secret != "" {
		jwtSecretKey = []byte(secret)
	}
}

// GenerateToken creates a signed JWT for the given account row id.
// The token expires after 72 hours.
func GenerateToken(accountID int64) (string, error) {
	claims := jwt.MapClaims{
		"sub": accountID,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecretKey)
}

// ValidateToken parses and validates a token string and returns the
// account row id it was issued for.
func ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey, nil
	})
	if err != nil {
		return 0, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		accountIDFloat, ok := claims["sub"].(float64)
		if !ok {
			return 0, errors.New("invalid subject claim")
		}
		return int64(accountIDFloat), nil
	}

	return 0, errors.New("invalid token")
}
