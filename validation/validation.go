package validation

import (
	"regexp"
	"unicode"
)

type Strength string

const (
	Weak   Strength = "Weak"
	Medium Strength = "Medium"
	Strong Strength = "Strong"
)

var (
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)
	phonePattern = regexp.MustCompile(`^\d{7,15}$`)
)

// ValidateEmail checks local-part/domain/TLD shape only; no MX or network
// verification.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePhone accepts digit-only strings of 7 to 15 characters. Formatting
// characters such as "+", spaces or dashes are rejected.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// PasswordStrength classifies a password: Weak when shorter than 6 runes,
// Strong when it carries both a digit and a letter, Medium otherwise.
func PasswordStrength(password string) Strength {
	if len([]rune(password)) < 6 {
		return Weak
	}
	if hasDigit(password) && hasLetter(password) {
		return Strong
	}
	return Medium
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
