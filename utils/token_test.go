package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func TestCreateAndVerifyToken(t *testing.T) {
	j := NewJWTToken(&Config{SigningKey: "test-signing-key", TokenTTLHours: 1})

	token, issued, err := j.CreateToken(TokenObject{UserID: "u-1", Email: "a@b.co", Role: "USER"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, issued.SessionID)

	got, err := j.VerifyToken(token)
	require.NoError(t, err)
	require.Equal(t, "u-1", got.UserID)
	require.Equal(t, "a@b.co", got.Email)
	require.Equal(t, "USER", got.Role)
	require.Equal(t, issued.SessionID, got.SessionID)
	require.InDelta(t, time.Now().Add(time.Hour).Unix(), got.ExpiresAt, 5)
}

func TestVerifyTokenWrongKey(t *testing.T) {
	token, _, err := NewJWTToken(&Config{SigningKey: "one"}).CreateToken(TokenObject{UserID: "u-1"})
	require.NoError(t, err)

	_, err = NewJWTToken(&Config{SigningKey: "two"}).VerifyToken(token)
	require.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	cfg := &Config{SigningKey: "k"}
	claims := jwtClaim{
		StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(-time.Minute).Unix()},
		UserID:         "u-1",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SigningKey))
	require.NoError(t, err)

	_, err = NewJWTToken(cfg).VerifyToken(token)
	require.Error(t, err)
}

func TestHashValue(t *testing.T) {
	hash, err := GenerateHashValue("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.NoError(t, VerifyHashValue("secret123", hash))
	require.Error(t, VerifyHashValue("wrong", hash))
}
