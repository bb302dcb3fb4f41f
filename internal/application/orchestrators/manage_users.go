package orchestrators

import (
	"context"
	"log/slog"

	"ironcore/internal/domain/user"
)

// UserStoreForManage defines the store interface needed by user admin actions.
type UserStoreForManage interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	Save(ctx context.Context, u user.User) error
	Delete(ctx context.Context, id string) error
}

// ManageUserDeps holds dependencies for the user admin orchestrators.
type ManageUserDeps struct {
	UserStore UserStoreForManage
	Recorder  AdminActionRecorder // optional
}

// ChangeUserRoleInput carries input for ChangeUserRole.
type ChangeUserRoleInput struct {
	ID   string
	Role string
}

// ExecuteChangeUserRole sets a user's role.
// PRE: input.ID refers to an existing user
// POST: role persisted; user.ErrInvalidRole leaves the user untouched
func ExecuteChangeUserRole(ctx context.Context, input ChangeUserRoleInput, deps ManageUserDeps) (user.User, error) {
	if !user.IsValidRole(input.Role) {
		return user.User{}, user.ErrInvalidRole
	}
	u, err := deps.UserStore.GetByID(ctx, input.ID)
	if err != nil {
		return user.User{}, err
	}
	if err := u.ChangeRole(input.Role); err != nil {
		return user.User{}, err
	}
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return user.User{}, err
	}
	countAdmin(deps.Recorder, "change_role")
	slog.Info("admin_event", "event", "role_changed", "id", u.ID, "role", u.Role)
	return u, nil
}

// ExecuteToggleUserStatus flips a user between Active and Blocked.
// PRE: id refers to an existing user
// POST: the opposite status is persisted
func ExecuteToggleUserStatus(ctx context.Context, id string, deps ManageUserDeps) (user.User, error) {
	u, err := deps.UserStore.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	u.ToggleStatus()
	if err := deps.UserStore.Save(ctx, u); err != nil {
		return user.User{}, err
	}
	countAdmin(deps.Recorder, "toggle_status")
	slog.Info("admin_event", "event", "status_toggled", "id", u.ID, "status", u.Status)
	return u, nil
}

// ExecuteDeleteUser removes a user and returns it for the confirmation toast.
// PRE: id is non-empty
// POST: user no longer exists; user.ErrNotFound if it never did
func ExecuteDeleteUser(ctx context.Context, id string, deps ManageUserDeps) (user.User, error) {
	u, err := deps.UserStore.GetByID(ctx, id)
	if err != nil {
		return user.User{}, err
	}
	if err := deps.UserStore.Delete(ctx, id); err != nil {
		return user.User{}, err
	}
	countAdmin(deps.Recorder, "delete_user")
	slog.Info("admin_event", "event", "user_deleted", "id", id)
	return u, nil
}

func countAdmin(r AdminActionRecorder, action string) {
	if r != nil {
		r.CountAdminAction(action)
	}
}
