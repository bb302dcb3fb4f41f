package message

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength    = 100
	MaxEmailLength   = 254
	MaxSubjectLength = 200
	MaxBodyLength    = 5000
)

// Domain errors
var (
	ErrEmptyName       = errors.New("name is required")
	ErrNameTooLong     = errors.New("name cannot exceed 100 characters")
	ErrInvalidEmail    = errors.New("email must contain '@'")
	ErrEmailTooLong    = errors.New("email cannot exceed 254 characters")
	ErrEmptySubject    = errors.New("subject is required")
	ErrSubjectTooLong  = errors.New("subject cannot exceed 200 characters")
	ErrEmptyBody       = errors.New("message cannot be empty")
	ErrBodyTooLong     = errors.New("message cannot exceed 5000 characters")
	ErrMissingReceived = errors.New("received_at must be set")
)

// Message is an enquiry sent through the contact page.
type Message struct {
	ID         string
	Name       string
	Email      string
	Subject    string
	Body       string
	ReceivedAt time.Time
}

// Validate checks if the Message has valid data.
// PRE: Message struct is populated
// POST: Returns nil if valid, error otherwise
func (m *Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if len(m.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(m.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	if !strings.Contains(m.Email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(m.Subject) == "" {
		return ErrEmptySubject
	}
	if len(m.Subject) > MaxSubjectLength {
		return ErrSubjectTooLong
	}
	if strings.TrimSpace(m.Body) == "" {
		return ErrEmptyBody
	}
	if len(m.Body) > MaxBodyLength {
		return ErrBodyTooLong
	}
	if m.ReceivedAt.IsZero() {
		return ErrMissingReceived
	}
	return nil
}
