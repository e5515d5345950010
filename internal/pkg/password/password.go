package password

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used for all credentials
	DefaultCost = 12

	// MinLength is the minimum accepted password length
	MinLength = 8
)

// Hash hashes a password using bcrypt with a fresh random salt. The salt
// and cost are embedded in the encoded output.
func Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify compares a password with a stored hash in constant time. A
// malformed hash (e.g. corrupted storage) is reported as a mismatch, not
// an error.
func Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Validate checks a password against the strength policy and returns every
// violated rule. An empty slice means the password is acceptable. Rules are
// checked independently, no short-circuit.
func Validate(password string) []string {
	var violations []string

	if len(password) < MinLength {
		violations = append(violations, "password must be at least 8 characters")
	}

	var lower, upper, digits, symbols int
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r):
			upper++
		case unicode.IsDigit(r):
			digits++
		default:
			symbols++
		}
	}

	if lower == 0 {
		violations = append(violations, "password must contain at least 1 lowercase letter")
	}
	if upper == 0 {
		violations = append(violations, "password must contain at least 1 uppercase letter")
	}
	if digits == 0 {
		violations = append(violations, "password must contain at least 1 digit")
	}
	if symbols == 0 {
		violations = append(violations, "password must contain at least 1 symbol")
	}

	return violations
}
