package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"ironcore/internal/adapters/http/middleware"
	auditStore "ironcore/internal/adapters/storage/audit"
	auditDomain "ironcore/internal/domain/audit"
)

const (
	activityDefaultLimit = 100
	activityMaxLimit     = 500
)

// recordActivity appends an admin action to the activity log.
// Failures are logged and never fail the request that triggered them.
// PRE: e has category and action set
// POST: e is stamped with id, time and request origin and saved when an audit store is configured
func recordActivity(r *http.Request, e auditDomain.Event) {
	if stores == nil || stores.AuditStore == nil {
		return
	}
	if e.ActorEmail == "" {
		if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
			e.ActorEmail = sess.Email
		}
	}
	e.ID = generateID()
	e.Timestamp = timeNow().UTC()
	e = e.WithRequest(middleware.ClientIP(r), r.UserAgent())
	if err := stores.AuditStore.Save(r.Context(), e); err != nil {
		slog.Warn("audit_save_failed", "category", e.Category, "action", e.Action, "error", err)
	}
}

// activity starts an event for the signed-in admin; recordActivity fills the rest.
func activity(category auditDomain.Category, action auditDomain.Action) auditDomain.Event {
	return auditDomain.Event{Category: category, Action: action, Severity: auditDomain.SeverityInfo}
}

// handleAdminActivity renders the admin activity log (GET /admin/activity)
// PRE: User must be authenticated as admin
// POST: Renders the newest events, optionally narrowed by ?category= and ?limit=
func handleAdminActivity(w http.ResponseWriter, r *http.Request) {
	filter := auditStore.Filter{}
	category := r.URL.Query().Get("category")
	if auditDomain.ValidCategory(category) {
		cat := auditDomain.Category(category)
		filter.Category = &cat
	} else {
		category = ""
	}

	limit := activityDefaultLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= activityMaxLimit {
			limit = l
		}
	}

	var events []auditDomain.Event
	if stores.AuditStore != nil {
		var err error
		events, err = stores.AuditStore.List(r.Context(), filter, limit)
		if err != nil {
			internalError(w, err)
			return
		}
	}

	renderAdmin(w, r, http.StatusOK, "admin_activity.html", "activity", map[string]any{
		"Events":     events,
		"Category":   category,
		"Categories": auditDomain.Categories,
		"Limit":      limit,
	})
}
