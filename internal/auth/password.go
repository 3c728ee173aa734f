package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"github.com/google/uuid"
	"golang.org/x/crypto/argon2"
)

// argon2id parameters. Changing any of them invalidates stored digests.
const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 2
	argonKeyLen  = 32
)

// PasswordHasher produces deterministic argon2id digests with a server-wide salt.
type PasswordHasher struct {
	salt []byte
}

// NewPasswordHasher creates a hasher bound to the server salt.
func NewPasswordHasher(salt string) *PasswordHasher {
	return &PasswordHasher{salt: []byte(salt)}
}

// Hash returns the hex digest of plaintext. Equal inputs give equal digests.
func (h *PasswordHasher) Hash(plaintext string) string {
	key := argon2.IDKey([]byte(plaintext), h.salt, argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// Verify reports whether plaintext hashes to digest, in constant time.
func (h *PasswordHasher) Verify(plaintext, digest string) bool {
	got := h.Hash(plaintext)
	return subtle.ConstantTimeCompare([]byte(got), []byte(digest)) == 1
}

// HashUserID derives the stable user id hash: hex SHA-256 of id and salt.
func HashUserID(id uuid.UUID, salt string) string {
	sum := sha256.Sum256([]byte(id.String() + salt))
	return hex.EncodeToString(sum[:])
}
