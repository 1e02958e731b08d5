// Package strx has string helpers.
package strx

import "strings"

// IsASCIILower reports whether s is ASCII with no upper-case letters.
func IsASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

// ToASCIILower lower-cases the ASCII letters of s. It returns s itself, and
// false, when s is already ASCII lower-case, so no copy is made.
func ToASCIILower(s string) (string, bool) {
	if IsASCIILower(s) {
		return s, false
	}
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s), true
}
