package util

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Cost 12 keeps login under ~300ms on current hardware.
const bcryptCost = 12

// HashPassword returns the bcrypt hash of a plain text password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain text password matches the stored hash
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
