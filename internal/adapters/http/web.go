package web

import (
	"embed"
	"io/fs"
	"net/http"
	"time"

	"ironcore/internal/adapters/email"
	"ironcore/internal/adapters/http/middleware"
	"ironcore/internal/adapters/http/perf"
	auditStore "ironcore/internal/adapters/storage/audit"
	bookingStore "ironcore/internal/adapters/storage/booking"
	messageStore "ironcore/internal/adapters/storage/message"
	trialStore "ironcore/internal/adapters/storage/trial"
	userStore "ironcore/internal/adapters/storage/user"
	"ironcore/internal/domain/admin"
	"ironcore/internal/domain/content"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Stores holds all storage dependencies.
type Stores struct {
	BookingStore bookingStore.Store
	UserStore    userStore.Store
	TrialStore   trialStore.Store
	MessageStore messageStore.Store
	AuditStore   auditStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Site content (set by NewMux)
var catalogue content.Catalogue

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender = email.NewNoopSender()

// Email addresses used by the trial and contact notifications
var mailAddresses email.Addresses

// Admin credential (set by SetAdminCredential)
var adminCredential admin.Credential

// SetEmailSender sets the global email sender for the application.
func SetEmailSender(sender email.Sender, addr email.Addresses) {
	emailSender = sender
	mailAddresses = addr
}

// SetAdminCredential sets the single admin login.
func SetAdminCredential(c admin.Credential) {
	adminCredential = c
}

// MuxOptions carries the security and instrumentation settings for NewMux.
type MuxOptions struct {
	CSRFKey        []byte // 32 bytes
	Secure         bool   // HTTPS deployment: Secure cookies, no plaintext CSRF
	TrustedOrigins []string
	SlowRequestMs  int
}

// SessionSweepInterval is how often expired admin sessions are dropped.
const SessionSweepInterval = 10 * time.Minute

// NewMux wires HTTP handlers for the site.
// PRE: s has every store set; opts.CSRFKey is 32 bytes
// POST: returns the fully wrapped handler and a stop func that ends the rate
// limiter and session sweeps; package state points at s, cat and collector
func NewMux(cat content.Catalogue, s *Stores, collector *perf.Collector, opts MuxOptions) (http.Handler, func()) {
	stores = s
	catalogue = cat
	perfCollector = collector
	sessions = middleware.NewSessionStore()
	middleware.SecureCookies = opts.Secure

	mux := http.NewServeMux()
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)
	stopSweep := sessions.StartSweep(SessionSweepInterval)
	stop := func() {
		limiter.Stop()
		stopSweep()
	}

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	handler := middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(opts.CSRFKey, middleware.CSRFOptions{Secure: opts.Secure, TrustedOrigins: opts.TrustedOrigins}),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector, opts.SlowRequestMs),
	)
	return handler, stop
}
