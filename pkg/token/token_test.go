package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	tok, err := GenerateSessionToken(42, "player", "secret", 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := ValidateSessionToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "player", claims.Role)
}

func TestValidateSessionToken_WrongSecret(t *testing.T) {
	tok, err := GenerateSessionToken(42, "player", "secret", 60)
	require.NoError(t, err)

	_, err = ValidateSessionToken(tok, "other-secret")
	assert.Error(t, err)
}

func TestValidateSessionToken_Expired(t *testing.T) {
	tok, err := GenerateSessionToken(42, "player", "secret", -1)
	require.NoError(t, err)

	_, err = ValidateSessionToken(tok, "secret")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestValidateSessionToken_Empty(t *testing.T) {
	_, err := ValidateSessionToken("", "secret")
	assert.Error(t, err)
}
