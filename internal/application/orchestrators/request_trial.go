package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ironcore/internal/adapters/email"
	"ironcore/internal/domain/trial"
)

// TrialStoreForRequest defines the store interface needed by RequestTrial.
type TrialStoreForRequest interface {
	Save(ctx context.Context, r trial.Request) error
}

// TrialRecorder counts accepted trial requests.
type TrialRecorder interface {
	CountTrialRequest(goal string)
}

// RequestTrialInput carries the trial form values.
type RequestTrialInput struct {
	Goal         string
	Name         string
	Phone        string
	Email        string
	Experience   string
	TrainingTime string
}

// RequestTrialDeps holds dependencies for RequestTrial.
type RequestTrialDeps struct {
	TrialStore TrialStoreForRequest
	Mailer     email.Sender
	Addresses  email.Addresses
	Recorder   TrialRecorder // optional
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteRequestTrial validates and stores a free-trial request, then sends
// the confirmation and club notification.
// PRE: deps are valid
// POST: Request is persisted; mail failures are logged and never returned
func ExecuteRequestTrial(ctx context.Context, input RequestTrialInput, deps RequestTrialDeps) (trial.Request, error) {
	req := trial.Request{
		ID:           deps.GenerateID(),
		Goal:         input.Goal,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Email:        strings.TrimSpace(input.Email),
		Experience:   input.Experience,
		TrainingTime: input.TrainingTime,
		RequestedAt:  deps.Now(),
	}
	if err := req.Validate(); err != nil {
		return trial.Request{}, err
	}

	if err := deps.TrialStore.Save(ctx, req); err != nil {
		return trial.Request{}, err
	}
	if deps.Recorder != nil {
		deps.Recorder.CountTrialRequest(req.Goal)
	}
	slog.Info("trial_requested", "id", req.ID, "goal", req.Goal, "experience", req.Experience, "has_email", req.Email != "")

	if deps.Mailer == nil {
		return req, nil
	}
	msgs, err := email.TrialEmails(req, deps.Addresses)
	if err != nil {
		slog.Error("trial_email_failed", "id", req.ID, "error", err)
		return req, nil
	}
	if len(msgs) > 0 {
		if _, err := deps.Mailer.SendBatch(ctx, msgs); err != nil {
			slog.Error("trial_email_failed", "id", req.ID, "error", err)
		}
	}
	return req, nil
}
