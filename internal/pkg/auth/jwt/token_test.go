package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken(&Payload{ID: "user-1"}, "secret", time.Minute)
	require.NoError(t, err)

	payload, err := ParseToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.ID)
	assert.Equal(t, TokenIssuer, payload.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := GenerateToken(&Payload{ID: "user-1"}, "secret", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	token, err := GenerateToken(&Payload{ID: "user-1"}, "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret")
	assert.Error(t, err)
}

func TestParse_Garbage(t *testing.T) {
	_, err := ParseToken("not.a.token", "secret")
	assert.Error(t, err)
}
