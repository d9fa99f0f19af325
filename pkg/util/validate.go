package util

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field rules shared by signup, admin user creation and store creation.
const (
	NameMinLength    = 20
	NameMaxLength    = 60
	AddressMaxLength = 400
	PasswordMin      = 8
	PasswordMax      = 16
)

var (
	ErrNameLength      = errors.New("name must be 20-60 characters")
	ErrAddressRequired = errors.New("address is required")
	ErrAddressLength   = errors.New("address must be under 400 characters")
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrWeakPassword    = errors.New("password must be 8-16 characters, include one uppercase and one special character")
)

var (
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*]`)
)

// ValidateName checks the 20-60 character rule applied to user and store names.
// Limits count characters, not bytes, and apply to the value as stored.
func ValidateName(name string) error {
	length := utf8.RuneCountInString(name)
	if length < NameMinLength || length > NameMaxLength {
		return ErrNameLength
	}
	return nil
}

// ValidateAddress checks that an address is present and at most 400 characters
func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrAddressRequired
	}
	if utf8.RuneCountInString(address) > AddressMaxLength {
		return ErrAddressLength
	}
	return nil
}

// ValidateEmail checks basic email shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// ValidatePassword enforces the signup password policy:
// 8-16 characters with at least one uppercase letter and one of !@#$%^&*
func ValidatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < PasswordMin || length > PasswordMax {
		return ErrWeakPassword
	}
	if !uppercaseRegex.MatchString(password) {
		return ErrWeakPassword
	}
	if !specialRegex.MatchString(password) {
		return ErrWeakPassword
	}
	return nil
}
