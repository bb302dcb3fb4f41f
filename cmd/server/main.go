package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	emailPkg "ironcore/internal/adapters/email"
	web "ironcore/internal/adapters/http"
	"ironcore/internal/adapters/http/perf"
	"ironcore/internal/adapters/storage"
	auditStore "ironcore/internal/adapters/storage/audit"
	bookingStore "ironcore/internal/adapters/storage/booking"
	messageStore "ironcore/internal/adapters/storage/message"
	trialStore "ironcore/internal/adapters/storage/trial"
	userStore "ironcore/internal/adapters/storage/user"
	"ironcore/internal/application/orchestrators"
	"ironcore/internal/config"
	"ironcore/internal/domain/admin"
	"ironcore/internal/domain/content"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

// shutdownTimeout bounds how long in-flight requests may run after a signal.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server_failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}
	setupLogging(cfg)

	// The database lives in memory: the demo tables are rebuilt on every boot.
	db, err := storage.OpenMemory()
	if err != nil {
		return err
	}
	defer db.Close()

	collector := perf.NewCollector()
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQueryMs)

	stores := &web.Stores{
		BookingStore: bookingStore.NewSQLiteStore(timedDB),
		UserStore:    userStore.NewSQLiteStore(timedDB),
		TrialStore:   trialStore.NewSQLiteStore(timedDB),
		MessageStore: messageStore.NewSQLiteStore(timedDB),
		AuditStore:   auditStore.NewSQLiteStore(timedDB),
	}

	ctx := context.Background()
	if err := orchestrators.ExecuteSeedMockData(ctx, orchestrators.SeedMockDataDeps{
		BookingStore: stores.BookingStore,
		UserStore:    stores.UserStore,
		GenerateID:   uuid.NewString,
		Now:          time.Now,
	}); err != nil {
		return err
	}
	slog.Info("mock_data_seeded")

	cred, err := admin.NewCredential(cfg.AdminEmail, cfg.AdminPassword, admin.HashCost)
	if err != nil {
		return err
	}
	web.SetAdminCredential(cred)
	if cfg.AdminPassword == config.DefaultAdminPassword {
		slog.Warn("default_admin_password", "email", cfg.AdminEmail, "hint", "set IRONCORE_ADMIN_PASSWORD")
	}

	cat, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	addr := emailPkg.Addresses{Club: cat.Club.Name, Notify: cfg.NotifyEmail, ReplyTo: cfg.ReplyTo}
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom), addr)
		slog.Info("email_sender", "kind", "resend", "from", cfg.EmailFrom)
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), addr)
		if cfg.IsProduction() {
			slog.Warn("email_sender", "kind", "noop", "hint", "IRONCORE_RESEND_KEY is not set, email delivery is disabled")
		} else {
			slog.Info("email_sender", "kind", "noop")
		}
	}

	if cfg.CSRFKeyGenerated {
		slog.Warn("csrf_key_generated", "hint", "forms break across restarts; set IRONCORE_CSRF_KEY")
	}

	handler, stopMux := web.NewMux(cat, stores, collector, web.MuxOptions{
		CSRFKey:        cfg.CSRFKey,
		Secure:         cfg.IsProduction(),
		TrustedOrigins: cfg.TrustedOrigins,
		SlowRequestMs:  cfg.SlowRequestMs,
	})
	defer stopMux()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server_starting", "version", version, "addr", cfg.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}

	slog.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupLogging installs the default slog handler: JSON in production, text otherwise.
func setupLogging(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
