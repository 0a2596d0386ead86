package utils

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NormalizePhone strips everything but digits from a phone number. The
// gateway rejects phone fields containing "+", spaces or dashes.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// FirstName returns the first whitespace-delimited token of a full name,
// or fallback when the name is blank. The gateway's firstname field only
// accepts a single token.
func FirstName(fullName, fallback string) string {
	fields := strings.Fields(fullName)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}

// MaskEmail masks the local part of an email address for log output
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	domain := parts[1]

	var maskedLocal string
	if len(localPart) <= 2 {
		maskedLocal = localPart
	} else {
		maskedLocal = localPart[:2] + strings.Repeat("*", len(localPart)-2)
	}

	return maskedLocal + "@" + domain
}

// MaskPhoneNumber masks a phone number, keeping only the last 4 digits visible
func MaskPhoneNumber(phone string) string {
	cleanPhone := NormalizePhone(phone)
	if len(cleanPhone) <= 4 {
		return cleanPhone
	}

	return strings.Repeat("*", len(cleanPhone)-4) + cleanPhone[len(cleanPhone)-4:]
}
