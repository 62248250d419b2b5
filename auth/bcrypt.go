package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword will generate a password hash. Each call salts with fresh
// randomness, so hashing the same password twice yields different strings.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password against
// the hashed password. Any failure, a wrong password or a malformed hash
// alike, yields ErrMismatchedHashAndPassword so callers cannot tell the
// two apart.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
