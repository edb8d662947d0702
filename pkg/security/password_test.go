package security

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	needsRehash, err := hasher.Compare(hash, "secret123")
	require.NoError(t, err)
	assert.False(t, needsRehash)

	_, err = hasher.Compare(hash, "wrong-password")
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestHashRejectsShortPasswords(t *testing.T) {
	hasher := NewBcryptHasher(4)

	_, err := hasher.Hash("abc")
	assert.Error(t, err)
}

func TestCompareLegacySHA256(t *testing.T) {
	hasher := NewBcryptHasher(4)

	digest := sha256.Sum256([]byte("admin123"))
	legacy := hex.EncodeToString(digest[:])

	needsRehash, err := hasher.Compare(legacy, "admin123")
	require.NoError(t, err)
	assert.True(t, needsRehash, "legacy digests should be flagged for upgrade")

	_, err = hasher.Compare(legacy, "admin124")
	assert.ErrorIs(t, err, ErrMismatch)
}

func TestBcryptHashNotMistakenForLegacy(t *testing.T) {
	hasher := NewBcryptHasher(4)

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.False(t, isLegacySHA256(hash))
}
