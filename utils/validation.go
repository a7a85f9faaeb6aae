// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	phoneRegex = regexp.MustCompile(`^\d{8,15}$`)
	uuidRegex  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[89abAB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}$`)
)

// SanitizePhone strips everything but digits. Visitor phones are stored
// digits only.
func SanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidatePhone checks a phone number after sanitizing: 8 to 15 digits.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(SanitizePhone(phone))
}

// ValidateUUID checks the 36-character hyphenated UUID shape, including the
// version and variant nibbles.
func ValidateUUID(id string) bool {
	return uuidRegex.MatchString(id)
}
