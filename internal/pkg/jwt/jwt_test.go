package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestGenerateValidateRoundTrip(t *testing.T) {
	token, err := Generate(42, "Moderator Morgan", 2, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := Validate(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "Moderator Morgan", claims.Name)
	assert.Equal(t, 2, claims.Level)
}

func TestGenerateSetsFixedTTL(t *testing.T) {
	token, err := Generate(1, "Admin", 3, testSecret)
	require.NoError(t, err)

	claims, err := Validate(token, testSecret)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, TokenTTL, ttl)
}

func TestValidateRejectsTamperedSignature(t *testing.T) {
	token, err := Generate(1, "Admin", 3, "some-other-secret")
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsMalformedToken(t *testing.T) {
	_, err := Validate("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = Validate("", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	stale := Claims{
		UserID: 7,
		Name:   "Admin",
		Level:  3,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-TokenTTL - time.Minute)),
		},
	}
	token, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, stale).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateRejectsWrongSigningMethod(t *testing.T) {
	none := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{UserID: 1})
	token, err := none.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Validate(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
