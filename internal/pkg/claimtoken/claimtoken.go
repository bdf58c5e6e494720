// Package claimtoken generates and hashes the single-use secrets that
// authorize waitlist claims. Only the hash is ever persisted; the plaintext
// travels once inside the claim URL.
package claimtoken

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

// 256 bits of entropy per token.
const tokenBytes = 32

var ErrGenerationFailed = errors.New("claim token generation failed")

// Generate returns a fresh plaintext token and the hash under which it is
// stored.
func Generate() (plaintext string, hash string, err error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", ErrGenerationFailed
	}
	plaintext = base64.RawURLEncoding.EncodeToString(buf)
	return plaintext, Hash(plaintext), nil
}

// Hash derives the storage form of a plaintext token.
func Hash(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Matches compares a plaintext token against a stored hash in constant time.
func Matches(plaintext, storedHash string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(plaintext)), []byte(storedHash)) == 1
}
