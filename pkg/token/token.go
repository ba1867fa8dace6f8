package token

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims structure for notification sender claims in JWT
type Claims struct {
	Source string `json:"source"`
	jwt.RegisteredClaims
}

const bearerPrefix = "Bearer "

var (
	// ErrMissingToken no token in request
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken signature, expiry or claims invalid
	ErrInvalidToken = errors.New("invalid token")
)

// GenerateJWT generates a JWT token for a notification source, ttl <= 0 means no expiry
func GenerateJWT(source, issuer string, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		Source: source,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   issuer,
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseJWT parses a JWT and extracts the Claims
func ParseJWT(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Check if the signing method is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ParseAuthorization accept "Bearer <jwt>" or the bare token MinIO sends as auth_token
func ParseAuthorization(header string, secret []byte) (*Claims, error) {
	tokenStr := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if tokenStr == "" {
		return nil, ErrMissingToken
	}
	return ParseJWT(tokenStr, secret)
}
