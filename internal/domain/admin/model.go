package admin

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt cost used for the admin password.
const HashCost = 12

// Domain errors
var (
	ErrEmptyEmail    = errors.New("email cannot be empty")
	ErrEmptyPassword = errors.New("password cannot be empty")
	ErrWrongPassword = errors.New("incorrect email or password")
)

// Credential is the single admin login configured at boot.
// The plaintext password is never kept.
type Credential struct {
	Email        string
	PasswordHash string
}

// NewCredential hashes password with bcrypt.
// PRE: email and password are non-empty
// POST: Returns a Credential whose hash verifies password
func NewCredential(email, password string, cost int) (Credential, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Credential{}, ErrEmptyEmail
	}
	if password == "" {
		return Credential{}, ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Email: email, PasswordHash: string(hash)}, nil
}

// Check verifies an email/password pair. Emails compare case-insensitively.
// INVARIANT: Credential fields are not mutated
func (c Credential) Check(email, password string) error {
	if c.PasswordHash == "" || !strings.EqualFold(strings.TrimSpace(email), c.Email) {
		// Same bcrypt work as a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return ErrWrongPassword
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		return ErrWrongPassword
	}
	return nil
}

// dummyHash is a bcrypt hash of a random string.
const dummyHash = "$2a$12$C6UzMDM.H6dfI/f/IKxGhu0QBmHvv9NLUu2HzqX7bS0Jw/sL2m0nG"
