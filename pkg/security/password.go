package security

import (
	"strconv"
	"strings"
	"unicode"
)

// specialRunes is the fixed set a password must draw at least one rune from.
const specialRunes = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// MinPasswordLength is the policy floor enforced by ValidateStrength.
const MinPasswordLength = 8

// PolicyText is the human-readable requirement surfaced on policy failures.
const PolicyText = "Password must be at least 8 characters and include an uppercase letter, a lowercase letter, a number, and a special character"

// ValidateStrength reports whether the password satisfies the syntactic
// policy: minimum length plus at least one uppercase, lowercase, digit, and
// special rune. No maximum length and no dictionary checks.
func ValidateStrength(password string) bool {
	if len(password) < MinPasswordLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(specialRunes, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Fingerprint returns the legacy rolling hash of the password: a 32-bit
// signed accumulator stepped as h = h*31 + code per character, rendered as a
// decimal string. It is deterministic and order-sensitive but NOT a
// cryptographic hash: it is trivially brute-forceable and collisions are
// feasible. Kept bit-compatible with the historical scheme so existing
// stored fingerprints keep verifying; see DESIGN.md before changing it.
func Fingerprint(password string) string {
	var h int32
	for _, r := range password {
		h = h*31 + int32(r)
	}
	return strconv.FormatInt(int64(h), 10)
}
