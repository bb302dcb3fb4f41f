package user

import (
	"errors"
	"strings"
	"time"
)

// Max length constants for user-editable fields.
const (
	MaxNameLength  = 100
	MaxEmailLength = 254
)

// Role constants
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Status constants
const (
	StatusActive  = "Active"
	StatusBlocked = "Blocked"
)

// ValidRoles contains all valid role values.
var ValidRoles = []string{RoleUser, RoleAdmin}

// Domain errors
var (
	ErrEmptyName     = errors.New("user name cannot be empty")
	ErrNameTooLong   = errors.New("user name cannot exceed 100 characters")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmailTooLong  = errors.New("email cannot exceed 254 characters")
	ErrInvalidRole   = errors.New("role must be one of: user, admin")
	ErrInvalidStatus = errors.New("status must be one of: Active, Blocked")
	ErrNotFound      = errors.New("user not found")
)

// User is a site account listed in the admin panel.
type User struct {
	ID     string
	Name   string
	Email  string
	Role   string
	Status string
	Joined time.Time
}

// Validate checks if the User has valid data.
// PRE: User struct is populated
// POST: Returns nil if valid, error otherwise
func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrEmptyName
	}
	if len(u.Name) > MaxNameLength {
		return ErrNameTooLong
	}
	if len(u.Email) > MaxEmailLength {
		return ErrEmailTooLong
	}
	if !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	if !IsValidRole(u.Role) {
		return ErrInvalidRole
	}
	if u.Status != StatusActive && u.Status != StatusBlocked {
		return ErrInvalidStatus
	}
	return nil
}

// IsValidRole reports whether role is one of ValidRoles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// ChangeRole sets a new role.
// PRE: role is one of ValidRoles
// POST: Role is updated; unchanged on error
func (u *User) ChangeRole(role string) error {
	if !IsValidRole(role) {
		return ErrInvalidRole
	}
	u.Role = role
	return nil
}

// ToggleStatus flips Active <-> Blocked and returns the new status.
// POST: Status is the opposite of what it was
func (u *User) ToggleStatus() string {
	if u.Status == StatusActive {
		u.Status = StatusBlocked
	} else {
		u.Status = StatusActive
	}
	return u.Status
}

// Initial returns the avatar letter shown next to the name.
func (u *User) Initial() string {
	for _, r := range u.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Matches reports whether q appears in the name or email, case-insensitively.
func (u *User) Matches(q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(strings.ToLower(u.Email), q)
}
