package web

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"ironcore/internal/adapters/http/middleware"
	"ironcore/internal/domain/booking"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), preventing XSS.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// Layouts
const (
	publicLayout = "layout.html"
	adminLayout  = "admin_layout.html"
)

// renderMarkdown converts catalogue markdown to HTML.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// renderTemplate executes page inside layout with the shared helper funcs.
// A queued flash toast is consumed here, so it shows exactly once.
func renderTemplate(w http.ResponseWriter, r *http.Request, status int, layout, page string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())
	var flash *middleware.Flash
	if loggedIn && sessions != nil {
		if f, ok := sessions.TakeFlash(sess.Token); ok {
			flash = &f
		}
	}

	funcMap := template.FuncMap{
		"csrfToken":      func() string { return csrf.Token(r) },
		"isAdmin":        func() bool { return loggedIn && sess.Admin },
		"adminEmail":     func() string { return sess.Email },
		"flash":          func() *middleware.Flash { return flash },
		"club":           func() any { return catalogue.Club },
		"year":           func() int { return timeNow().Year() },
		"renderMarkdown": renderMarkdown,
		"lower":          strings.ToLower,
		"upper":          strings.ToUpper,
		"add":            func(a, b int) int { return a + b },
		"sub":            func(a, b int) int { return a - b },
		"inr":            func(b booking.Booking) string { return b.FormatAmount() },
		"date":           func(t time.Time) string { return t.Format("02 Jan 2006") },
		"width":          func(n int) template.CSS { return template.CSS("width:" + strconv.Itoa(n) + "%") },
	}

	tpl, err := template.New(layout).Funcs(funcMap).ParseFS(templateFS, "templates/"+layout, "templates/"+page)
	if err != nil {
		internalError(w, err)
		return
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderPage renders a public page.
func renderPage(w http.ResponseWriter, r *http.Request, status int, page, active string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Active"] = active
	renderTemplate(w, r, status, publicLayout, page, data)
}

// renderAdmin renders an admin page.
func renderAdmin(w http.ResponseWriter, r *http.Request, status int, page, active string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["Active"] = active
	renderTemplate(w, r, status, adminLayout, page, data)
}

// setFlash queues a toast on the caller's admin session.
func setFlash(r *http.Request, kind, message string) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		sessions.SetFlash(sess.Token, kind, message)
	}
}

// handleNotFound renders the 404 page for any unmatched path.
func handleNotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, http.StatusNotFound, "not_found.html", "", map[string]any{"Path": r.URL.Path})
}
