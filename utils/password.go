package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// legacySalt is the fixed application salt the first release appended to
// passwords before SHA-256. Kept only so databases imported from that
// release stay verifiable; new passwords always get bcrypt.
const legacySalt = "patente_hub_salt_2024_production"

func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// VerifyPassword checks a password against a stored hash. Bcrypt hashes
// are checked with bcrypt; a 64-hex-char hash is treated as a legacy
// salted SHA-256 digest and compared in constant time.
func VerifyPassword(password, hash string) bool {
	if isLegacyHash(hash) {
		computed := LegacyHashPassword(password)
		return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// LegacyHashPassword reproduces the original static-salt SHA-256 digest.
// Only for verifying imported records; never used to store new hashes.
func LegacyHashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + legacySalt))
	return hex.EncodeToString(sum[:])
}

func isLegacyHash(hash string) bool {
	if len(hash) != 64 {
		return false
	}
	_, err := hex.DecodeString(hash)
	return err == nil
}
