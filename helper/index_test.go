package helper

import (
	"cinema_booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestAccessTokenRoundTrip(t *testing.T) {
	claim := model.TokenClaim{
		AccountId: 7,
		Username:  "alice",
		IsAdmin:   true,
		SessionId: "sess-1",
	}

	signed, err := GenerateAccessToken(claim)
	require.NoError(t, err)

	token, err := ParseToken(signed)
	require.NoError(t, err)
	require.True(t, token.Valid)

	parsed, err := ClaimFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, claim, parsed)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-jwt")
	assert.Error(t, err)
}
