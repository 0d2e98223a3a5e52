package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
)

// ValidateEmail reports whether email has a plausible address format.
func ValidateEmail(email string) bool {
	if email == "" {
		return false
	}
	return emailPattern.MatchString(email)
}

// ValidateName reports whether name is 1-80 chars of letters, spaces,
// hyphens and apostrophes.
func ValidateName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 1 || len(name) > 80 {
		return false
	}
	return namePattern.MatchString(trimmed)
}

// SanitizeString trims whitespace and truncates to maxLength (0 = no limit).
// Returns "" when nothing remains.
func SanitizeString(value string, maxLength int) string {
	sanitized := strings.TrimSpace(value)
	if sanitized == "" {
		return ""
	}
	if maxLength > 0 && len(sanitized) > maxLength {
		sanitized = sanitized[:maxLength]
	}
	return sanitized
}

// ValidatePaymentTypeCode reports whether code is one of the accepted
// payment type input codes. Codes are case-sensitive.
func ValidatePaymentTypeCode(code string) bool {
	switch code {
	case "CREDIT", "DEBIT", "PREPAID":
		return true
	}
	return false
}
