package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
)

// HashPin produces the stored digest for a PIN: lowercase hex SHA-256.
// Deterministic on purpose; verification recomputes and compares.
func HashPin(pin string) string {
	sum := sha256.Sum256([]byte(pin))
	return hex.EncodeToString(sum[:])
}

// VerifyPin reports whether pin matches the stored digest. Absent inputs
// never match.
func VerifyPin(pin string, hashedPin string) bool {
	if pin == "" || hashedPin == "" {
		return false
	}
	computed := HashPin(pin)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashedPin)) == 1
}

// GenerateAccountNumber returns a fresh random 10-digit account number.
// Uniqueness is the caller's job: check against existing accounts and retry.
func GenerateAccountNumber() string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("security: read random bytes: %v", err))
	}
	return fmt.Sprintf("%010d", binary.BigEndian.Uint64(buf[:])%10_000_000_000)
}

// GenerateTransactionID returns a random url-safe identifier with 16 bytes
// of entropy and no padding. Not collision-checked anywhere.
func GenerateTransactionID() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("security: read random bytes: %v", err))
	}
	return base64.RawURLEncoding.EncodeToString(buf[:])
}

// IsAccountNumber reports whether value looks like a ten digit account number.
func IsAccountNumber(value string) bool {
	if len(value) != 10 {
		return false
	}

	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	return true
}
