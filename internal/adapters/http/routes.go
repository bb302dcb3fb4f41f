package web

import (
	"net/http"

	"ironcore/internal/adapters/http/middleware"
)

// registerRoutes maps every page and form post.
func registerRoutes(mux *http.ServeMux) {
	// Public site
	mux.HandleFunc("/", handleNotFound)
	mux.HandleFunc("GET /{$}", handleHome)
	mux.HandleFunc("GET /programs", handlePrograms)
	mux.HandleFunc("GET /trainers", handleTrainers)
	mux.HandleFunc("GET /pricing", handlePricing)
	mux.HandleFunc("GET /nutrition", handleNutrition)
	mux.HandleFunc("POST /nutrition/macros", handleCalculateMacros)
	mux.HandleFunc("GET /trial", handleTrialForm)
	mux.HandleFunc("POST /trial", handleTrialSubmit)
	mux.HandleFunc("GET /contact", handleContact)
	mux.HandleFunc("POST /contact", handleContactSubmit)
	mux.HandleFunc("GET /join", handleJoin)
	mux.HandleFunc("POST /join", handleJoinSubmit)
	mux.HandleFunc("GET /join/login", handleJoinLogin)
	mux.HandleFunc("POST /join/login", handleJoinLogin)

	// Admin gate
	mux.HandleFunc("GET /admin/login", handleAdminLogin)
	mux.HandleFunc("POST /admin/login", handleAdminLogin)
	mux.HandleFunc("POST /admin/logout", handleAdminLogout)

	admin := func(h http.HandlerFunc) http.Handler { return middleware.RequireAdmin(h) }
	mux.Handle("GET /admin/{$}", admin(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
	}))
	mux.Handle("GET /admin/dashboard", admin(handleAdminDashboard))
	mux.Handle("GET /admin/bookings", admin(handleAdminBookings))
	mux.Handle("GET /admin/bookings/export", admin(handleAdminBookingsExport))
	mux.Handle("GET /admin/bookings/{id}/delete", admin(handleAdminBookingDeleteConfirm))
	mux.Handle("POST /admin/bookings/{id}/delete", admin(handleAdminBookingDelete))
	mux.Handle("GET /admin/users", admin(handleAdminUsers))
	mux.Handle("POST /admin/users/{id}/role", admin(handleAdminUserRole))
	mux.Handle("POST /admin/users/{id}/toggle", admin(handleAdminUserToggle))
	mux.Handle("GET /admin/users/{id}/delete", admin(handleAdminUserDeleteConfirm))
	mux.Handle("POST /admin/users/{id}/delete", admin(handleAdminUserDelete))
	mux.Handle("GET /admin/activity", admin(handleAdminActivity))
	mux.Handle("GET /admin/metrics", admin(handleAdminMetrics))
}
