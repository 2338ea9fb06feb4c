package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWTMakerShortSecret(t *testing.T) {
	_, err := NewJWTMaker("short", "omnipos")
	require.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	maker, err := NewJWTMaker(testSecret, "omnipos")
	require.NoError(t, err)

	tok, issued, err := maker.CreateToken("user-1", RoleAdmin, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	payload, err := maker.VerifyToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.Subject)
	assert.Equal(t, RoleAdmin, payload.Role)
	assert.Equal(t, issued.ID, payload.ID)
	assert.WithinDuration(t, issued.ExpiresAt, payload.ExpiresAt, time.Second)
}

func TestJWTExpired(t *testing.T) {
	maker, err := NewJWTMaker(testSecret, "omnipos")
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	maker.now = func() time.Time { return past }
	tok, _, err := maker.CreateToken("user-1", RoleUser, time.Minute)
	require.NoError(t, err)

	maker.now = time.Now
	_, err = maker.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTWrongSecretOrIssuer(t *testing.T) {
	maker, err := NewJWTMaker(testSecret, "omnipos")
	require.NoError(t, err)
	tok, _, err := maker.CreateToken("user-1", RoleUser, time.Hour)
	require.NoError(t, err)

	other, err := NewJWTMaker("another-secret-0123456789", "omnipos")
	require.NoError(t, err)
	_, err = other.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherIssuer, err := NewJWTMaker(testSecret, "someone-else")
	require.NoError(t, err)
	_, err = otherIssuer.VerifyToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = maker.VerifyToken("garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTRejectsNoneAlg(t *testing.T) {
	maker, err := NewJWTMaker(testSecret, "omnipos")
	require.NoError(t, err)

	claims := Claims{Role: RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "x",
		Issuer:    "omnipos",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = maker.VerifyToken(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
