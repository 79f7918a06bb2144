package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

func GenerateHashValue(original string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(original), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash value: %w", err)
	}

	return string(hash), nil
}

func VerifyHashValue(original, hashedValue string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedValue), []byte(original))
}
