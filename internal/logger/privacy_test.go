package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashUserID(t *testing.T) {
	t.Run("produces consistent hash for same user ID", func(t *testing.T) {
		hash1 := HashUserID("user-1234")
		hash2 := HashUserID("user-1234")
		require.Equal(t, hash1, hash2)
	})

	t.Run("produces different hashes for different user IDs", func(t *testing.T) {
		hash1 := HashUserID("user-1234")
		hash2 := HashUserID("user-5678")
		require.NotEqual(t, hash1, hash2)
	})

	t.Run("produces 8 character hash", func(t *testing.T) {
		require.Len(t, HashUserID("user-1234"), 8)
	})

	t.Run("changes hash when salt changes", func(t *testing.T) {
		originalSalt := hashSalt
		defer func() { hashSalt = originalSalt }()

		hash1 := HashUserID("user-1234")

		hashSalt = "different-salt"
		hash2 := HashUserID("user-1234")

		require.NotEqual(t, hash1, hash2)
	})
}

func TestHashEmail(t *testing.T) {
	t.Run("produces consistent hash for same email", func(t *testing.T) {
		require.Equal(t, HashEmail("alice@example.com"), HashEmail("alice@example.com"))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		require.Equal(t, HashEmail("alice@example.com"), HashEmail("Alice@Example.COM"))
	})

	t.Run("produces different hashes for different emails", func(t *testing.T) {
		require.NotEqual(t, HashEmail("alice@example.com"), HashEmail("bob@example.com"))
	})
}

func TestSanitizeTitle(t *testing.T) {
	t.Run("redacts empty title", func(t *testing.T) {
		require.Equal(t, "<empty>", SanitizeTitle(""))
	})

	t.Run("shows word and character count", func(t *testing.T) {
		result := SanitizeTitle("lunch at hawker center")
		require.Contains(t, result, "4 words")
		require.Contains(t, result, "22 chars")
	})

	t.Run("does not leak the content", func(t *testing.T) {
		result := SanitizeTitle("expensive dinner with clients")
		require.NotContains(t, result, "dinner")
		require.NotContains(t, result, "clients")
	})
}
