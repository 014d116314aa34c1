package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"mycloudmen/config"
	"mycloudmen/internal/infra/persistence/memory"
	"mycloudmen/internal/infra/session"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestStore(t *testing.T) *session.Store {
	t.Helper()

	kv := memory.NewKVStore(time.Minute)
	t.Cleanup(func() { _ = kv.Close() })

	return session.NewStore(kv, time.Hour, 5*time.Minute, discardLogger())
}

func newTestConfig() *config.Config {
	failOpen := true

	cfg := &config.Config{}
	cfg.OIDC = &config.OIDCConfig{RefreshLeeway: 30 * time.Second}
	cfg.Reconciliation = config.ReconciliationConfig{
		CompanyCacheTTL:        5 * time.Minute,
		CompanyRecheckInterval: 30 * time.Second,
		CompanyCacheSize:       64,
		CompanyAliases: []config.CompanyAlias{
			{Domain: "acme.io", CompanyName: "Acme Corp"},
		},
	}
	cfg.Poller = config.PollerConfig{Enabled: true, Interval: time.Hour, Concurrency: 2}
	cfg.Navigation = config.NavigationConfig{
		PublicPaths: []string{"/auth/login", "/auth/callback", "/auth/error", "/auth/loading", "/health"},
		StatusPaths: []string{"/pending-account", "/account-deactivated", "/company-inactive", "/company-not-registered"},
		Routes: []config.RouteRule{
			{Prefix: "/companies", Roles: []string{"SYSTEM_ADMIN"}},
			{Prefix: "/users", Roles: []string{"SYSTEM_ADMIN", "COMPANY_ADMIN"}},
			{Prefix: "/users/me", Roles: nil},
			{Prefix: "/requests", Roles: []string{"SYSTEM_ADMIN", "COMPANY_ADMIN", "COMPANY_USER"}},
		},
	}
	cfg.Navigation.StatusGuard.FailOpen = &failOpen

	return cfg
}

// fakeClock is a settable time source.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
