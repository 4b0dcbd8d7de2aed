// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePhone checks for a plain 10-digit phone number after stripping
// common separators.
func ValidatePhone(phone string) bool {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	match, _ := regexp.MatchString(`^\d{10}$`, cleaned)
	return match
}

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}
