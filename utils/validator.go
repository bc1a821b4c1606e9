// utils/validator.go - Contact input validation
package utils

import (
	"strings"
)

// NormalizePhone strips every non-digit character from raw and, when
// exactly 10 digits remain, returns them prefixed with the configured
// country code ("+91 9876543210"). ok is false otherwise; raw input is
// never stored verbatim.
func NormalizePhone(raw, prefix string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() != 10 {
		return "", false
	}
	return prefix + " " + digits.String(), true
}

// ValidContactEmail checks, case-insensitively, that email ends with the
// required domain suffix (e.g. "@gmail.com").
func ValidContactEmail(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(email)), strings.ToLower(domain))
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	// Remove leading/trailing spaces
	input = strings.TrimSpace(input)

	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	return input
}
