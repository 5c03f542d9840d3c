package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

var hashSalt string

func init() {
	hashSalt = os.Getenv("LOG_HASH_SALT")
	if hashSalt == "" {
		hashSalt = "default-salt-change-in-production"
	}
}

// HashUserID creates a privacy-preserving hash of a user ID.
// This allows tracing user actions in logs without exposing the actual ID.
func HashUserID(userID string) string {
	data := fmt.Sprintf("%s:%s", userID, hashSalt)
	hash := sha256.Sum256([]byte(data))
	// First 8 characters are enough to correlate log lines.
	return hex.EncodeToString(hash[:])[:8]
}

// HashEmail creates a privacy-preserving hash of an email address.
func HashEmail(email string) string {
	data := fmt.Sprintf("%s:%s", strings.ToLower(email), hashSalt)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])[:8]
}

// SanitizeTitle redacts an expense title while preserving length
// information for debugging.
func SanitizeTitle(title string) string {
	if title == "" {
		return "<empty>"
	}

	words := strings.Fields(title)
	return fmt.Sprintf("<redacted: %d words, %d chars>", len(words), len(title))
}
