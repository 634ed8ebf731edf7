package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const saltBytes = 16

// NewSalt returns a random per-user salt.
func NewSalt() (string, error) {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// digest folds password and salt into a fixed-length input, keeping bcrypt under its 72 byte limit.
func digest(pw, salt string) []byte {
	sum := sha256.Sum256([]byte(pw + salt))
	return []byte(hex.EncodeToString(sum[:]))
}

// HashPassword hashes password+salt with bcrypt.
func HashPassword(pw, salt string) (string, error) {
	b, err := bcrypt.GenerateFromPassword(digest(pw, salt), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(b), nil
}

// CheckPassword compares a stored hash with a candidate password in constant time.
func CheckPassword(hash, pw, salt string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), digest(pw, salt)) == nil
}

// NewSessionToken returns an opaque 256-bit token built from two random UUIDs.
func NewSessionToken() string {
	a, b := uuid.New(), uuid.New()
	raw := append(a[:], b[:]...)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// RandomPassword is used for accounts created without a password; the user resets it on first login.
func RandomPassword() (string, error) {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
