// Package fold provides case folding for feature keys and vector lookups.
//
// Corpus text is overwhelmingly ASCII, so Lower takes a byte-level fast
// path and only falls back to full Unicode case mapping when a non-ASCII
// rune is present. Folding must be identical everywhere a token becomes a
// map key (lemmas, n-gram features, embedding lookups), which is why it
// lives in one place.
//
// All functions are safe for concurrent use.
package fold

import (
	"strings"
	"unicode"
)

// Lower returns s lowercased.
func Lower(s string) string {
	// Fast path: pure ASCII with no uppercase letters.
	hasUpper := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return strings.Map(unicode.ToLower, s)
		}
		if 'A' <= c && c <= 'Z' {
			hasUpper = true
		}
	}
	if !hasUpper {
		return s
	}

	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// IsAlpha reports whether s is non-empty and consists entirely of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return isAlphaRunes(s[i:])
		}
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func isAlphaRunes(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
