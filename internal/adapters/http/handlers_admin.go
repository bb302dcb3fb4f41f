package web

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ironcore/internal/adapters/export"
	"ironcore/internal/adapters/http/middleware"
	"ironcore/internal/application/orchestrators"
	"ironcore/internal/application/projections"
	"ironcore/internal/domain/audit"
	"ironcore/internal/domain/booking"
	"ironcore/internal/domain/user"
)

// adminRecorder returns the collector as an admin action recorder, or nil.
func adminRecorder() orchestrators.AdminActionRecorder {
	if perfCollector == nil {
		return nil
	}
	return perfCollector
}

// backTo returns the list URL to return to after an admin action.
// Only query strings are accepted so the redirect never leaves the table.
func backTo(base, back string) string {
	if strings.HasPrefix(back, "?") && !strings.ContainsAny(back, "\r\n") {
		return base + back
	}
	return base
}

// handleAdminLogin serves and processes the admin sign-in form.
func handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.IsAdmin(r.Context()) {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		renderPage(w, r, http.StatusOK, "admin_login.html", "admin", map[string]any{"Email": ""})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	emailAddr := strings.TrimSpace(r.FormValue("email"))
	input := orchestrators.AdminLoginInput{
		Email:    emailAddr,
		Password: r.FormValue("password"),
		RemoteIP: middleware.ClientIP(r),
	}
	if err := orchestrators.ExecuteAdminLogin(r.Context(), input, orchestrators.AdminLoginDeps{Credential: adminCredential}); err != nil {
		e := activity(audit.CategoryAuth, audit.ActionLoginFailed).WithSeverity(audit.SeverityWarning)
		e.ActorEmail = emailAddr
		recordActivity(r, e.WithDescription("Failed sign-in"))
		renderPage(w, r, http.StatusUnauthorized, "admin_login.html", "admin", map[string]any{
			"Email": emailAddr,
			"Error": "Invalid email or password.",
		})
		return
	}

	token, err := sessions.Create(emailAddr)
	if err != nil {
		internalError(w, err)
		return
	}
	middleware.SetSessionCookie(w, token)
	e := activity(audit.CategoryAuth, audit.ActionLogin)
	e.ActorEmail = emailAddr
	recordActivity(r, e.WithDescription("Signed in"))
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// handleAdminLogout ends the admin session.
func handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := middleware.SessionToken(r); ok {
		if sess, found := sessions.Get(token); found {
			e := activity(audit.CategoryAuth, audit.ActionLogout)
			e.ActorEmail = sess.Email
			recordActivity(r, e.WithDescription("Signed out"))
		}
		sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	slog.Info("auth_event", "event", "logout", "ip", middleware.ClientIP(r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAdminDashboard renders the analytics overview.
func handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	res, err := projections.QueryGetDashboard(r.Context(), projections.GetDashboardQuery{
		Period: r.URL.Query().Get("period"),
		Now:    timeNow(),
	}, projections.GetDashboardDeps{
		BookingStore: stores.BookingStore,
		UserStore:    stores.UserStore,
		TrialStore:   stores.TrialStore,
		MessageStore: stores.MessageStore,
	})
	if err != nil {
		internalError(w, err)
		return
	}
	renderAdmin(w, r, http.StatusOK, "admin_dashboard.html", "dashboard", map[string]any{
		"Dashboard": res,
	})
}

// handleAdminBookings renders the paginated bookings table.
func handleAdminBookings(w http.ResponseWriter, r *http.Request) {
	params := projections.ParseBookingListParams(r.URL.Query())
	res, err := projections.QueryGetBookingList(r.Context(), projections.GetBookingListQuery{Params: params},
		projections.GetBookingListDeps{BookingStore: stores.BookingStore})
	if err != nil {
		internalError(w, err)
		return
	}
	renderAdmin(w, r, http.StatusOK, "admin_bookings.html", "bookings", map[string]any{
		"List":  res,
		"Back":  res.Params.PageURL(res.Page.Page),
		"Sorts": bookingSortHeaders(res),
	})
}

// sortHeader is one clickable column heading.
type sortHeader struct {
	Label  string
	URL    string
	Active bool
	Desc   bool
}

func bookingSortHeaders(res projections.GetBookingListResult) []sortHeader {
	labels := map[string]string{
		"name": "Member", "plan": "Plan", "amount": "Amount", "status": "Status", "date": "Date",
	}
	return sortHeaders(res.Params.SortURL, res.Params.Sort, res.Params.Desc(), []string{"name", "plan", "amount", "status", "date"}, labels)
}

func userSortHeaders(res projections.GetUserListResult) []sortHeader {
	labels := map[string]string{
		"name": "User", "email": "Email", "role": "Role", "status": "Status", "joined": "Joined",
	}
	return sortHeaders(res.Params.SortURL, res.Params.Sort, res.Params.Desc(), []string{"name", "email", "role", "status", "joined"}, labels)
}

func sortHeaders(sortURL func(string) string, active string, desc bool, cols []string, labels map[string]string) []sortHeader {
	out := make([]sortHeader, 0, len(cols))
	for _, c := range cols {
		out = append(out, sortHeader{
			Label:  labels[c],
			URL:    sortURL(c),
			Active: c == active,
			Desc:   c == active && desc,
		})
	}
	return out
}

// handleAdminBookingsExport downloads the filtered bookings as a spreadsheet.
func handleAdminBookingsExport(w http.ResponseWriter, r *http.Request) {
	params := projections.ParseBookingListParams(r.URL.Query())
	filter := projections.BookingListFilter(params)
	rows, err := stores.BookingStore.List(r.Context(), filter)
	if err != nil {
		internalError(w, err)
		return
	}

	label := filter.Plan
	if params.Search != "" {
		label = fmt.Sprintf("%s, search %q", label, params.Search)
	}
	var buf bytes.Buffer
	if err := export.WriteBookings(&buf, rows, label); err != nil {
		internalError(w, err)
		return
	}

	slog.Info("admin_event", "event", "bookings_exported", "rows", len(rows), "plan", filter.Plan)
	recordActivity(r, activity(audit.CategoryBooking, audit.ActionExport).
		WithDescription(fmt.Sprintf("Exported %d bookings (%s)", len(rows), label)))
	w.Header().Set("Content-Type", export.ContentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.BookingsFilename(timeNow())))
	w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
	_, _ = buf.WriteTo(w)
}

// handleAdminBookingDeleteConfirm asks before removing a booking.
func handleAdminBookingDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	b, err := stores.BookingStore.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, booking.ErrNotFound) {
		handleNotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	renderAdmin(w, r, http.StatusOK, "admin_confirm_delete.html", "bookings", map[string]any{
		"Kind":   "booking",
		"Name":   b.Name,
		"Detail": b.Plan + " · " + b.FormatAmount() + " · " + b.DateString(),
		"Action": "/admin/bookings/" + b.ID + "/delete",
		"Back":   backTo("/admin/bookings", r.URL.Query().Get("back")),
		"BackQ":  r.URL.Query().Get("back"),
	})
}

// handleAdminBookingDelete removes a booking and returns to the table.
func handleAdminBookingDelete(w http.ResponseWriter, r *http.Request) {
	b, err := orchestrators.ExecuteDeleteBooking(r.Context(), r.PathValue("id"), orchestrators.DeleteBookingDeps{
		BookingStore: stores.BookingStore,
		Recorder:     adminRecorder(),
	})
	if errors.Is(err, booking.ErrNotFound) {
		handleNotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	recordActivity(r, activity(audit.CategoryBooking, audit.ActionDelete).
		WithSeverity(audit.SeverityWarning).
		WithResource("booking", b.ID).
		WithDescription(fmt.Sprintf("Deleted booking for %s (%s, %s)", b.Name, b.Plan, b.FormatAmount())))
	setFlash(r, middleware.FlashSuccess, "Booking for "+b.Name+" deleted")
	http.Redirect(w, r, backTo("/admin/bookings", r.FormValue("back")), http.StatusSeeOther)
}

// handleAdminUsers renders the paginated users table.
func handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	params := projections.ParseUserListParams(r.URL.Query())
	res, err := projections.QueryGetUserList(r.Context(), projections.GetUserListQuery{Params: params},
		projections.GetUserListDeps{UserStore: stores.UserStore})
	if err != nil {
		internalError(w, err)
		return
	}
	renderAdmin(w, r, http.StatusOK, "admin_users.html", "users", map[string]any{
		"List":     res,
		"Back":     res.Params.PageURL(res.Page.Page),
		"Sorts":    userSortHeaders(res),
		"Statuses": []string{user.StatusActive, user.StatusBlocked},
	})
}

func manageUserDeps() orchestrators.ManageUserDeps {
	return orchestrators.ManageUserDeps{UserStore: stores.UserStore, Recorder: adminRecorder()}
}

// handleAdminUserRole changes a user's role from the table dropdown.
func handleAdminUserRole(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	u, err := orchestrators.ExecuteChangeUserRole(r.Context(), orchestrators.ChangeUserRoleInput{
		ID:   r.PathValue("id"),
		Role: r.FormValue("role"),
	}, manageUserDeps())
	switch {
	case errors.Is(err, user.ErrInvalidRole):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, user.ErrNotFound):
		handleNotFound(w, r)
		return
	case err != nil:
		internalError(w, err)
		return
	}
	recordActivity(r, activity(audit.CategoryUser, audit.ActionUpdate).
		WithResource("user", u.ID).
		WithDescription(fmt.Sprintf("Changed role of %s to %s", u.Name, u.Role)))
	setFlash(r, middleware.FlashSuccess, "Role updated to "+u.Role)
	http.Redirect(w, r, backTo("/admin/users", r.FormValue("back")), http.StatusSeeOther)
}

// handleAdminUserToggle blocks or unblocks a user.
func handleAdminUserToggle(w http.ResponseWriter, r *http.Request) {
	u, err := orchestrators.ExecuteToggleUserStatus(r.Context(), r.PathValue("id"), manageUserDeps())
	if errors.Is(err, user.ErrNotFound) {
		handleNotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	kind := middleware.FlashSuccess
	if u.Status == user.StatusBlocked {
		kind = middleware.FlashInfo
	}
	recordActivity(r, activity(audit.CategoryUser, audit.ActionUpdate).
		WithResource("user", u.ID).
		WithDescription(fmt.Sprintf("Set %s to %s", u.Name, u.Status)))
	setFlash(r, kind, u.Name+" is now "+u.Status)
	http.Redirect(w, r, backTo("/admin/users", r.FormValue("back")), http.StatusSeeOther)
}

// handleAdminUserDeleteConfirm asks before removing a user.
func handleAdminUserDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	u, err := stores.UserStore.GetByID(r.Context(), r.PathValue("id"))
	if errors.Is(err, user.ErrNotFound) {
		handleNotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	renderAdmin(w, r, http.StatusOK, "admin_confirm_delete.html", "users", map[string]any{
		"Kind":   "user",
		"Name":   u.Name,
		"Detail": u.Email + " · " + u.Role,
		"Action": "/admin/users/" + u.ID + "/delete",
		"Back":   backTo("/admin/users", r.URL.Query().Get("back")),
		"BackQ":  r.URL.Query().Get("back"),
	})
}

// handleAdminUserDelete removes a user and returns to the table.
func handleAdminUserDelete(w http.ResponseWriter, r *http.Request) {
	u, err := orchestrators.ExecuteDeleteUser(r.Context(), r.PathValue("id"), manageUserDeps())
	if errors.Is(err, user.ErrNotFound) {
		handleNotFound(w, r)
		return
	}
	if err != nil {
		internalError(w, err)
		return
	}
	recordActivity(r, activity(audit.CategoryUser, audit.ActionDelete).
		WithSeverity(audit.SeverityCritical).
		WithResource("user", u.ID).
		WithDescription(fmt.Sprintf("Deleted user %s <%s>", u.Name, u.Email)))
	setFlash(r, middleware.FlashError, u.Name+" deleted")
	http.Redirect(w, r, backTo("/admin/users", r.FormValue("back")), http.StatusSeeOther)
}

// handleAdminMetrics exposes the Prometheus registry to signed-in admins.
func handleAdminMetrics(w http.ResponseWriter, r *http.Request) {
	if perfCollector == nil {
		http.Error(w, "metrics disabled", http.StatusNotFound)
		return
	}
	perfCollector.Handler().ServeHTTP(w, r)
}
