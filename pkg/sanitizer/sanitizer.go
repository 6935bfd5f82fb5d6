// Package sanitizer normalizes free-form user input before it is validated
// and persisted. It never rejects input, only cleans it.
package sanitizer

import (
	"strings"
	"unicode"
)

// TrimAndNormalize trims leading/trailing whitespace and collapses interior
// whitespace runs to a single space.
func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

// NormalizeEmail lowercases and trims an e-mail address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips spaces, dashes and parentheses, keeping digits and a
// leading plus sign.
func NormalizePhone(phone string) string {
	var result strings.Builder
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			result.WriteRune(r)
		case r == '+' && i == 0:
			result.WriteRune(r)
		}
	}
	return result.String()
}
