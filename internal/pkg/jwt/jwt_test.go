package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("U001", "admin", "system-admin", testSecret, 30)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "U001", claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "system-admin", claims.Role)
	assert.Equal(t, "natpark-backend", claims.Issuer)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("U001", "admin", "system-admin", testSecret, 30)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "some-other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken("U001", "admin", "system-admin", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAccessTokenGarbage(t *testing.T) {
	_, err := ValidateAccessToken("not.a.token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = ValidateAccessToken("", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken("U001", "tok-123", testSecret, 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "U001", claims.UserID)
	assert.Equal(t, "tok-123", claims.TokenID)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	// an access token signed with the refresh secret must not validate as
	// an access token under the access secret
	refresh, err := GenerateRefreshToken("U001", "tok-123", "refresh-secret", 7)
	require.NoError(t, err)

	_, err = ValidateAccessToken(refresh, testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
