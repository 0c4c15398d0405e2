// Package password wraps the salted one-way hashing used for account
// credentials and stored SMTP secrets.
package password

import (
	"errors"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Cost is the fixed bcrypt work factor for all stored hashes.
const Cost = 12

// ErrHash is returned when a plaintext can not be hashed.
var ErrHash = errors.New("failed to hash password")

// Hash hashes a plaintext password with the fixed work factor.
// Each call salts independently, so two hashes of the same plaintext differ.
func Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), Cost)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")
		return "", ErrHash
	}

	return string(hashed), nil
}

// Verify compares a plaintext password against a stored hash.
// The comparison is constant time. A malformed stored hash is reported as
// an error distinct from a plain mismatch.
func Verify(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}

	// malformed hash or unexpected failure
	return false, err //nolint:wrapcheck
}
