package email

import (
	"context"
	"time"
)

// SendRequest contains the data needed to send an email via an external provider.
type SendRequest struct {
	To       []string // Recipient email addresses
	From     string   // Sender address; empty uses the sender's default
	Subject  string
	HTML     string // HTML body
	ReplyTo  string
	Category string // provider tag, e.g. "trial_confirmation"
}

// SendResult contains the response from the email provider.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender is the interface for sending emails via an external provider.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
	SendBatch(ctx context.Context, reqs []SendRequest) ([]SendResult, error)
}
