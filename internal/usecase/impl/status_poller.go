package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"mycloudmen/config"
	"mycloudmen/internal/domain/entity"
	domainerrors "mycloudmen/internal/domain/errors"
	"mycloudmen/internal/domain/lifecycle"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/infra/metrics"
	"mycloudmen/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// statusPoller implements the StatusPoller interface on a cron schedule.
// Verdicts are parked in the session store and delivered by the next
// navigation check.
type statusPoller struct {
	profiles   usecase.ProfileUsecase
	reconciler usecase.ReconciliationUsecase
	store      repository.SessionStore

	cron        *cron.Cron
	enabled     bool
	interval    time.Duration
	concurrency int
	timeout     time.Duration

	mu       sync.Mutex
	sessions map[string]struct{}
	running  atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc

	logger *slog.Logger
}

// NewStatusPoller is the constructor for statusPoller.
func NewStatusPoller(
	profiles usecase.ProfileUsecase,
	reconciler usecase.ReconciliationUsecase,
	store repository.SessionStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.StatusPoller {
	ctx, cancel := context.WithCancel(context.Background())

	return &statusPoller{
		profiles:    profiles,
		reconciler:  reconciler,
		store:       store,
		cron:        cron.New(),
		enabled:     cfg.Poller.Enabled,
		interval:    cfg.Poller.Interval,
		concurrency: max(cfg.Poller.Concurrency, 1),
		timeout:     lifecycle.DefaultTimeout,
		sessions:    make(map[string]struct{}),
		ctx:         ctx,
		cancel:      cancel,
		logger:      logger.With(slog.String("component", "status_poller")),
	}
}

func (p *statusPoller) Start(context.Context) error {
	if !p.enabled {
		p.logger.Info("Status poller disabled")

		return nil
	}

	if _, err := p.cron.AddFunc("@every "+p.interval.String(), p.tick); err != nil {
		return errors.Wrap(err, "failed to schedule status poller")
	}
	p.cron.Start()
	p.logger.Info("Status poller started", slog.Duration("interval", p.interval))

	return nil
}

// Stop cancels the running tick and waits for it, bounded by ctx.
func (p *statusPoller) Stop(ctx context.Context) error {
	p.cancel()
	done := p.cron.Stop()

	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "status poller did not stop in time")
	}
}

func (p *statusPoller) tick() {
	if !p.running.CompareAndSwap(false, true) {
		return
	}
	defer p.running.Store(false)

	p.RunOnce(p.ctx)
}

func (p *statusPoller) RunOnce(ctx context.Context) {
	sessions := p.Tracked()
	metrics.PollerTicks.Inc()
	metrics.PollerSessions.Set(float64(len(sessions)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for _, sessionID := range sessions {
		g.Go(func() error {
			p.check(gctx, sessionID)

			return nil
		})
	}
	_ = g.Wait()
}

// check is the reduced navigation check of one session. Errors never leave it.
func (p *statusPoller) check(ctx context.Context, sessionID string) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	logger := p.logger.With(slog.String("session_id", sessionID))

	current, err := p.store.LoadUser(ctx, sessionID)
	if err != nil {
		logger.DebugContext(ctx, "Failed to load profile snapshot", slog.Any("error", err))

		return
	}
	if current == nil {
		p.untrack(sessionID)

		return
	}

	user, err := p.profiles.Refresh(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUnauthenticated) {
			p.untrack(sessionID)
		}
		logger.DebugContext(ctx, "Profile refresh failed", slog.Any("error", err))

		return
	}

	verdict := entity.StatusRedirect(user.Status)
	if verdict == nil {
		verdict, err = p.reconciler.CriticalRedirect(ctx, user)
		if err != nil {
			logger.DebugContext(ctx, "Reconciliation failed", slog.Any("error", err))

			return
		}
	}
	if verdict == nil {
		return
	}

	if err := p.store.SaveRedirect(ctx, sessionID, verdict); err != nil {
		logger.DebugContext(ctx, "Failed to park redirect", slog.Any("error", err))
	}
}

func (p *statusPoller) Tracked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	ids := make([]string, 0, len(p.sessions))
	for id := range p.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func (p *statusPoller) track(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sessions[sessionID] = struct{}{}
}

func (p *statusPoller) untrack(sessionID string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.sessions, sessionID)
}

func (p *statusPoller) OnAuthenticated(_ context.Context, sessionID string, _ *entity.User) {
	p.track(sessionID)
}

func (p *statusPoller) OnUnauthenticated(_ context.Context, sessionID string) {
	p.untrack(sessionID)
}
