package utils

import (
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-commerce/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// HashPassword returns a 400 Validation error for passwords bcrypt cannot hash.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", apperror.Validation(fmt.Sprintf("Validation failed: password must be at most %d bytes", MaxPasswordBytes))
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword reports whether password matches hash. A malformed hash is an error.
func ComparePassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
