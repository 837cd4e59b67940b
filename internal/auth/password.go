package auth

import (
	"errors"
	"strings"
	"unicode"
)

const minPasswordLength = 8

const specialCharacters = `!@#$%^&*(),.?":{}|<>`

var commonPasswords = map[string]struct{}{
	"password":  {},
	"123456":    {},
	"qwerty":    {},
	"admin":     {},
	"12345678":  {},
	"123456789": {},
	"qazwsxedc": {},
	"zaqwsxcde": {},
	"asdfghjkl": {},
	"zxcvbnm":   {},
	"football":  {},
	"bank":      {},
}

// ValidatePassword enforces the account password policy: minimum length,
// one upper, one lower, one digit, one special character and not on the
// common-password blocklist.
func ValidatePassword(password string) error {
	var errs []string

	if len(password) < minPasswordLength {
		errs = append(errs, "password must be at least 8 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			hasUpper = true
		case unicode.IsLower(ch):
			hasLower = true
		case unicode.IsDigit(ch):
			hasDigit = true
		case strings.ContainsRune(specialCharacters, ch):
			hasSpecial = true
		}
	}
	if !hasUpper {
		errs = append(errs, "password must contain an uppercase letter")
	}
	if !hasLower {
		errs = append(errs, "password must contain a lowercase letter")
	}
	if !hasDigit {
		errs = append(errs, "password must contain a digit")
	}
	if !hasSpecial {
		errs = append(errs, "password must contain a special character")
	}

	if _, common := commonPasswords[strings.ToLower(password)]; common {
		errs = append(errs, "password is too common")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
