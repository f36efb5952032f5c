package validation

import (
	"errors"
	"regexp"
	"strings"
)

// EmailPattern accepts local@domain.tld shaped addresses: no whitespace or
// extra @ in the local part, at least one dot segment after the @.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Egyptian phone formats: local 01 plus nine digits, or international
// +201 plus nine digits.
var (
	phoneLocalPattern = regexp.MustCompile(`^01[0-9]{9}$`)
	phoneIntlPattern  = regexp.MustCompile(`^\+201[0-9]{9}$`)
)

const (
	// MinPasswordLen is the minimum password length for both login and
	// registration.
	MinPasswordLen = 8

	// PasswordSymbols is the set of special characters a strong password
	// must draw from.
	PasswordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"
)

// Validation errors are shown to the user verbatim as inline form errors,
// so they keep their original sentence casing and punctuation.
var (
	ErrFieldsRequired = errors.New("All fields are required.")
	ErrInvalidEmail   = errors.New("Please enter a valid email address.")
	ErrShortPassword  = errors.New("Password must be at least 8 characters.")
	ErrWeakPassword   = errors.New("Password must be at least 8 characters and include uppercase, lowercase, number, and special character.")
	ErrInvalidPhone   = errors.New("Please enter a valid Egyptian phone number (e.g., 010xxxxxxxx or +2010xxxxxxxx).")
)

// IsValidEmail reports whether email has a general local@domain.tld shape.
func IsValidEmail(email string) bool {
	return EmailPattern.MatchString(email)
}

// IsStrongPassword reports whether password meets the registration
// strength rule: at least MinPasswordLen characters with at least one
// ASCII lowercase letter, one uppercase letter, one digit, and one symbol
// from PasswordSymbols.
func IsStrongPassword(password string) bool {
	if len(password) < MinPasswordLen {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}
	return lower && upper && digit && symbol
}

// IsValidEgyptianPhone reports whether phone matches either accepted
// format (11 digits starting 01, or +201 followed by nine digits).
func IsValidEgyptianPhone(phone string) bool {
	return phoneLocalPattern.MatchString(phone) || phoneIntlPattern.MatchString(phone)
}

// ValidateLoginInput checks login form input locally. The length check is
// guidance only; the server does not enforce it.
func ValidateLoginInput(email, password string) error {
	if email == "" || password == "" {
		return ErrFieldsRequired
	}
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLen {
		return ErrShortPassword
	}
	return nil
}

// ValidateRegistrationInput checks registration form input locally.
func ValidateRegistrationInput(name, email, password, phone string) error {
	if name == "" || email == "" || password == "" || phone == "" {
		return ErrFieldsRequired
	}
	if !IsValidEmail(email) {
		return ErrInvalidEmail
	}
	if !IsStrongPassword(password) {
		return ErrWeakPassword
	}
	if !IsValidEgyptianPhone(phone) {
		return ErrInvalidPhone
	}
	return nil
}

// IsValidationError reports whether err is one of the local form
// validation errors, as opposed to a network or server failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrFieldsRequired) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrShortPassword) ||
		errors.Is(err, ErrWeakPassword) ||
		errors.Is(err, ErrInvalidPhone)
}
