package orchestrators

import (
	"context"
	"errors"
	"log/slog"

	"ironcore/internal/domain/admin"
)

// ErrInvalidCredentials is returned for any failed admin login.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AdminLoginInput carries input for the admin login orchestrator.
type AdminLoginInput struct {
	Email    string
	Password string
	RemoteIP string
}

// AdminLoginDeps holds dependencies for AdminLogin.
type AdminLoginDeps struct {
	Credential admin.Credential
}

// ExecuteAdminLogin checks the submitted pair against the configured admin credential.
// PRE: deps.Credential was built with admin.NewCredential
// POST: Returns nil on success; ErrInvalidCredentials otherwise
func ExecuteAdminLogin(_ context.Context, input AdminLoginInput, deps AdminLoginDeps) error {
	if input.Email == "" || input.Password == "" {
		slog.Info("auth_event", "event", "login_failed", "reason", "empty", "ip", input.RemoteIP)
		return ErrInvalidCredentials
	}
	if err := deps.Credential.Check(input.Email, input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "email", input.Email, "reason", "mismatch", "ip", input.RemoteIP)
		return ErrInvalidCredentials
	}
	slog.Info("auth_event", "event", "login_success", "email", input.Email, "ip", input.RemoteIP)
	return nil
}
