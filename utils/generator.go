package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"

	"github.com/google/uuid"
)

// GenerateID returns a fresh random UUID string used as the primary key
// of every record. Falls back to a pseudo-random hex pattern of the same
// shape if the crypto source fails.
func GenerateID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("%04x-%04x-%04x-%04x",
			mrand.Intn(0x10000), mrand.Intn(0x10000), mrand.Intn(0x10000), mrand.Intn(0x10000))
	}
	return id.String()
}

// GenerateToken returns 64 hex characters from 32 cryptographically
// random bytes. Used as the auth-token primary key and for password
// reset links.
func GenerateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
