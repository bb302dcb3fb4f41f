package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ironcore/internal/adapters/email"
	"ironcore/internal/domain/signup"
	"ironcore/internal/domain/user"
)

// Sign-up and member sign-in errors.
var (
	ErrEmailTaken    = errors.New("an account with this email already exists")
	ErrUnknownMember = errors.New("no account found for this email")
	ErrMemberBlocked = errors.New("this account is blocked, contact the front desk")
)

// UserStoreForRegister defines the store interface needed by RegisterMember and MemberLogin.
type UserStoreForRegister interface {
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Save(ctx context.Context, u user.User) error
}

// SignupRecorder counts completed sign-ups.
type SignupRecorder interface {
	CountSignup(level string)
}

// RegisterMemberInput carries the three join form steps.
type RegisterMemberInput struct {
	Name     string
	Email    string
	Password string
	Goals    []string
	Level    string
	Age      int
	WeightKg float64
}

// RegisterMemberDeps holds dependencies for RegisterMember.
type RegisterMemberDeps struct {
	UserStore  UserStoreForRegister
	Mailer     email.Sender
	Addresses  email.Addresses
	Recorder   SignupRecorder // optional
	GenerateID func() string
	Now        func() time.Time
}

// ExecuteRegisterMember coordinates member sign-up.
// PRE: deps are valid
// POST: User created with Role=user, Status=Active, Joined=Now; the password is never stored
// INVARIANT: Email is unique, compared case-insensitively
func ExecuteRegisterMember(ctx context.Context, input RegisterMemberInput, deps RegisterMemberDeps) (user.User, error) {
	reg := signup.Registration{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Password: input.Password,
		Goals:    input.Goals,
		Level:    input.Level,
		Age:      input.Age,
		WeightKg: input.WeightKg,
	}
	if err := reg.Validate(); err != nil {
		return user.User{}, err
	}

	_, err := deps.UserStore.GetByEmail(ctx, reg.Email)
	switch {
	case err == nil:
		return user.User{}, ErrEmailTaken
	case !errors.Is(err, user.ErrNotFound):
		return user.User{}, err
	}

	u := user.User{
		ID:     deps.GenerateID(),
		Name:   reg.Name,
		Email:  reg.Email,
		Role:   user.RoleUser,
		Status: user.StatusActive,
		Joined: deps.Now(),
	}
	if err := u.Validate(); err != nil {
		return user.User{}, err
	}
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return user.User{}, err
	}
	if deps.Recorder != nil {
		deps.Recorder.CountSignup(reg.Level)
	}
	slog.Info("member_registered", "id", u.ID, "goals", reg.Goals, "level", reg.Level)

	if deps.Mailer == nil {
		return u, nil
	}
	msg, err := email.WelcomeEmail(u, reg, deps.Addresses)
	if err != nil {
		slog.Error("welcome_email_failed", "id", u.ID, "error", err)
		return u, nil
	}
	if _, err := deps.Mailer.SendBatch(ctx, []email.SendRequest{msg}); err != nil {
		slog.Error("welcome_email_failed", "id", u.ID, "error", err)
	}
	return u, nil
}

// MemberLoginInput carries the sign-in form.
type MemberLoginInput struct {
	Email    string
	Password string
}

// ExecuteMemberLogin confirms that an active account exists for the email.
// Passwords are not stored, so any non-empty password is accepted and no session is created.
// POST: Returns the user, ErrUnknownMember or ErrMemberBlocked
func ExecuteMemberLogin(ctx context.Context, input MemberLoginInput, store UserStoreForRegister) (user.User, error) {
	l := signup.Login{Email: strings.TrimSpace(input.Email), Password: input.Password}
	if err := l.Validate(); err != nil {
		return user.User{}, err
	}
	u, err := store.GetByEmail(ctx, l.Email)
	if errors.Is(err, user.ErrNotFound) {
		return user.User{}, ErrUnknownMember
	}
	if err != nil {
		return user.User{}, err
	}
	if u.Status == user.StatusBlocked {
		slog.Warn("member_login_blocked", "id", u.ID)
		return user.User{}, ErrMemberBlocked
	}
	slog.Info("member_login", "id", u.ID)
	return u, nil
}
