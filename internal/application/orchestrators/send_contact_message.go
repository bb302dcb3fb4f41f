package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ironcore/internal/adapters/email"
	"ironcore/internal/domain/message"
)

// MessageStoreForContact defines the store interface needed by SendContactMessage.
type MessageStoreForContact interface {
	Save(ctx context.Context, m message.Message) error
}

// ContactRecorder counts received contact messages.
type ContactRecorder interface {
	CountContactMessage()
}

// SendContactMessageInput carries the contact form values.
type SendContactMessageInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// SendContactMessageDeps holds dependencies for SendContactMessage.
type SendContactMessageDeps struct {
	MessageStore MessageStoreForContact
	Mailer       email.Sender
	Addresses    email.Addresses
	Recorder     ContactRecorder // optional
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSendContactMessage validates and stores a contact message and notifies the club.
// PRE: deps are valid
// POST: Message is persisted; mail failures are logged and never returned
func ExecuteSendContactMessage(ctx context.Context, input SendContactMessageInput, deps SendContactMessageDeps) (message.Message, error) {
	m := message.Message{
		ID:         deps.GenerateID(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Subject:    strings.TrimSpace(input.Subject),
		Body:       strings.TrimSpace(input.Body),
		ReceivedAt: deps.Now(),
	}
	if err := m.Validate(); err != nil {
		return message.Message{}, err
	}

	if err := deps.MessageStore.Save(ctx, m); err != nil {
		return message.Message{}, err
	}
	if deps.Recorder != nil {
		deps.Recorder.CountContactMessage()
	}
	slog.Info("contact_received", "id", m.ID, "subject", m.Subject)

	if deps.Mailer == nil {
		return m, nil
	}
	req, ok, err := email.ContactEmail(m, deps.Addresses)
	if err != nil {
		slog.Error("contact_email_failed", "id", m.ID, "error", err)
		return m, nil
	}
	if ok {
		if _, err := deps.Mailer.Send(ctx, req); err != nil {
			slog.Error("contact_email_failed", "id", m.ID, "error", err)
		}
	}
	return m, nil
}
