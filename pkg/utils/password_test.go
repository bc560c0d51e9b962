package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewPasswordHasher(t *testing.T) {
	assert.Equal(t, DefaultHashCost, NewPasswordHasher(0).Cost, "out-of-range cost falls back to default")
	assert.Equal(t, DefaultHashCost, NewPasswordHasher(99).Cost)
	assert.Equal(t, bcrypt.MinCost, NewPasswordHasher(bcrypt.MinCost).Cost)
}

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(DefaultHashCost)

	digest, err := h.Hash("Secret#123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret#123", digest)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)

	t.Run("original plaintext matches", func(t *testing.T) {
		ok, err := h.Compare("Secret#123", digest)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("other plaintext does not match and is not an error", func(t *testing.T) {
		for _, pw := range []string{"secret#123", "Secret#1234", "", "Secret#12"} {
			ok, err := h.Compare(pw, digest)
			assert.NoError(t, err, pw)
			assert.False(t, ok, pw)
		}
	})

	t.Run("salt differs per hash", func(t *testing.T) {
		other, err := h.Hash("Secret#123")
		require.NoError(t, err)
		assert.NotEqual(t, digest, other)
	})
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	ok, err := h.Compare("whatever", "not-a-bcrypt-digest")
	assert.False(t, ok)
	assert.Error(t, err)
}

func TestPasswordHasher_TooLong(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
