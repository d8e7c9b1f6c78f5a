package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndParseTokenPair(t *testing.T) {
	j := NewJWTUtil("test-secret", 2, 168)

	access, refresh, err := j.GenerateTokenPair(42, "ada@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)

	claims, err := j.ParseToken(access)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	refreshClaims, err := j.ParseToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestParseTokenWrongSecret(t *testing.T) {
	j := NewJWTUtil("test-secret", 2, 168)
	other := NewJWTUtil("other-secret", 2, 168)

	access, _, err := j.GenerateTokenPair(1, "ada@example.com")
	assert.NoError(t, err)

	_, err = other.ParseToken(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseExpiredToken(t *testing.T) {
	// 过期时间为负，签发即过期
	j := NewJWTUtil("test-secret", -1, -1)

	access, _, err := j.GenerateTokenPair(1, "ada@example.com")
	assert.NoError(t, err)

	_, err = j.ParseToken(access)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseNotYetValidToken(t *testing.T) {
	j := NewJWTUtil("test-secret", 2, 168)

	// nbf 在未来：校验失败但不是过期
	claims := Claims{
		UserID:    1,
		Email:     "ada@example.com",
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
			NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	_, err = j.ParseToken(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenPair(t *testing.T) {
	j := NewJWTUtil("test-secret", 2, 168)

	_, refresh, err := j.GenerateTokenPair(42, "ada@example.com")
	assert.NoError(t, err)

	newAccess, newRefresh, err := j.RefreshTokenPair(refresh)
	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)

	claims, err := j.ParseToken(newAccess)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestRefreshRejectsAccessType(t *testing.T) {
	j := NewJWTUtil("test-secret", 2, 168)

	access, _, err := j.GenerateTokenPair(42, "ada@example.com")
	assert.NoError(t, err)

	_, _, err = j.RefreshTokenPair(access)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
