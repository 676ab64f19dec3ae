package auth

import (
	"strings"
	"testing"
	"time"

	"hauspet/config"
	domainerrors "hauspet/internal/domain/errors"
	"hauspet/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{SecretKey: secret, TokenTTL: ttl},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := tokenService.GenerateToken(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
}

func TestJWTService_InvalidTokens(t *testing.T) {
	secret := "test_secret_key_very_long_for_testing"
	tokenService, err := NewJWTService(newTestConfig(secret, time.Hour))
	require.NoError(t, err)

	otherService, err := NewJWTService(newTestConfig("another_secret", time.Hour))
	require.NoError(t, err)
	foreignToken, err := otherService.GenerateToken(1)
	require.NoError(t, err)

	expired := tokenService.(*jwtService)
	expiredService := &jwtService{secret: expired.secret, ttl: time.Hour, now: func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}}
	expiredToken, err := expiredService.GenerateToken(1)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &service.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &service.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{UserID: 1}).SignedString([]byte(secret))
	require.NoError(t, err)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":      "clearly-not-a-jwt-token-format",
		"wrong secret": foreignToken,
		"expired":      expiredToken,
		"alg none":     noneToken,
		"other hmac":   hs512Token,
		"no expiry":    noExpiry,
		"missing user": noUser,
		"empty":        "",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := tokenService.ValidateToken(token)
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}
}

const base64URLAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// flipChar swaps the character at i for its neighbour in the base64url alphabet,
// which changes only the lowest bit it encodes.
func flipChar(token string, i int) string {
	idx := strings.IndexByte(base64URLAlphabet, token[i])

	return token[:i] + string(base64URLAlphabet[idx^1]) + token[i+1:]
}

func TestJWTService_RejectsAnyChangedCharacter(t *testing.T) {
	tokenService, err := NewJWTService(newTestConfig("test_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := tokenService.GenerateToken(7)
	require.NoError(t, err)

	segments := strings.Split(token, ".")
	require.Len(t, segments, 3)
	signatureStart := len(segments[0]) + len(segments[1]) + 2

	positions := map[string]int{
		"header":              0,
		"payload":             len(segments[0]) + 1 + len(segments[1])/2,
		"signature first":     signatureStart,
		"signature last char": len(token) - 1,
	}
	for name, i := range positions {
		t.Run(name, func(t *testing.T) {
			claims, err := tokenService.ValidateToken(flipChar(token, i))
			require.Error(t, err)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}

	for i := range token {
		if token[i] == '.' {
			continue
		}
		_, err := tokenService.ValidateToken(flipChar(token, i))
		assert.Error(t, err, "character %d changed", i)
	}
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := issuedAt
	tokenService := &jwtService{
		secret: []byte("test_secret_key_very_long_for_testing"),
		ttl:    time.Hour,
		now:    func() time.Time { return clock },
	}

	token, err := tokenService.GenerateToken(7)
	require.NoError(t, err)
	expiresAt := issuedAt.Add(time.Hour)

	clock = expiresAt.Add(-time.Second)
	claims, err := tokenService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)

	clock = expiresAt.Add(time.Second)
	_, err = tokenService.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}
