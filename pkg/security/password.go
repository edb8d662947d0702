package security

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("password hashing failed")
	ErrMismatch      = errors.New("password mismatch")
)

// MinPasswordLen is the minimum accepted password length for new credentials.
const MinPasswordLen = 6

// DefaultCost is the bcrypt cost used when none is specified.
const DefaultCost = bcrypt.DefaultCost

// PasswordHasher provides interface for password operations
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare verifies password against a stored hash. It returns
	// needsRehash=true when the stored hash uses the legacy unsalted
	// SHA-256 scheme and should be upgraded.
	Compare(storedHash, password string) (needsRehash bool, err error)
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a password hasher using bcrypt. Stored legacy
// SHA-256 hex digests are still accepted on compare so databases seeded by
// the previous system keep working.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (b *bcryptHasher) Hash(password string) (string, error) {
	if len(password) < MinPasswordLen {
		return "", errors.New("password too short")
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", ErrHashingFailed
	}
	return string(bytes), nil
}

func (b *bcryptHasher) Compare(storedHash, password string) (bool, error) {
	if isLegacySHA256(storedHash) {
		digest := sha256.Sum256([]byte(password))
		want := hex.EncodeToString(digest[:])
		if subtle.ConstantTimeCompare([]byte(want), []byte(strings.ToLower(storedHash))) != 1 {
			return false, ErrMismatch
		}
		return true, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return false, ErrMismatch
	}
	return false, nil
}

// isLegacySHA256 reports whether the stored hash is a bare hex SHA-256
// digest, the scheme used before bcrypt was introduced.
func isLegacySHA256(hash string) bool {
	if len(hash) != 64 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
