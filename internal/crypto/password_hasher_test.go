package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash_VerifyRoundTrip(t *testing.T) {
	h := NewPasswordHasher()

	hash, err := h.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, "secret1", hash)
	assert.True(t, h.Verify("secret1", hash))
	assert.False(t, h.Verify("secret2", hash))
}

func TestHash_UsesDefaultCost(t *testing.T) {
	hash, err := NewPasswordHasher().Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestHash_IsSalted(t *testing.T) {
	h := NewPasswordHasher()

	h1, err := h.Hash("same-password")
	require.NoError(t, err)
	h2, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHash_TooLongPassword(t *testing.T) {
	_, err := NewPasswordHasher().Hash(strings.Repeat("a", 73))

	require.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestVerify_EmptyOrMalformedHash(t *testing.T) {
	h := NewPasswordHasher()

	assert.False(t, h.Verify("secret1", ""))
	assert.False(t, h.Verify("secret1", "not-a-bcrypt-hash"))
}
