package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// TokenTTL is the fixed validity window of a session token. There is no
// refresh or rotation; sessions simply expire.
const TokenTTL = time.Hour

// Claims represents the session token claims
type Claims struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Level  int    `json:"level"`
	jwt.RegisteredClaims
}

// Generate issues a signed session token for the given subject. Expiry is
// always issuance time plus TokenTTL.
func Generate(userID uint, name string, level int, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Name:   name,
		Level:  level,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "cineplus-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Validate checks signature integrity first, then expiry, and returns the
// embedded claims. Malformed or tampered tokens yield ErrTokenInvalid;
// structurally valid but stale tokens yield ErrTokenExpired.
func Validate(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}
