package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"mycloudmen/config"
	deliverycontext "mycloudmen/internal/delivery/context"
	"mycloudmen/internal/domain/entity"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/domain/service"
	"mycloudmen/internal/infra/metrics"
	"mycloudmen/internal/usecase"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// companyStatusResolver answers from, in order: the user record, the process
// cache, the shared session store, and finally the backend.
type companyStatusResolver struct {
	gateway service.ProfileGateway
	store   repository.SessionStore
	cache   *expirable.LRU[string, entity.CompanyStatusEntry]
	group   singleflight.Group
	// aliases maps an email domain onto a lowercase company name.
	aliases map[string]string
	ttl     time.Duration
	recheck time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// NewCompanyStatusResolver is the constructor for companyStatusResolver.
func NewCompanyStatusResolver(
	gateway service.ProfileGateway,
	store repository.SessionStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CompanyStatusResolver {
	return newCompanyStatusResolver(gateway, store, cfg.Reconciliation, logger)
}

func newCompanyStatusResolver(
	gateway service.ProfileGateway,
	store repository.SessionStore,
	cfg config.ReconciliationConfig,
	logger *slog.Logger,
) *companyStatusResolver {
	aliases := make(map[string]string, len(cfg.CompanyAliases))
	for _, alias := range cfg.CompanyAliases {
		aliases[strings.ToLower(alias.Domain)] = strings.ToLower(alias.CompanyName)
	}

	return &companyStatusResolver{
		gateway: gateway,
		store:   store,
		cache:   expirable.NewLRU[string, entity.CompanyStatusEntry](cfg.CompanyCacheSize, nil, cfg.CompanyCacheTTL),
		aliases: aliases,
		ttl:     cfg.CompanyCacheTTL,
		recheck: cfg.CompanyRecheckInterval,
		now:     time.Now,
		logger:  logger,
	}
}

func (r *companyStatusResolver) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Resolve never fails on a backend error: a lookup that cannot be made gives
// no verdict and is not cached.
func (r *companyStatusResolver) Resolve(ctx context.Context, user *entity.User) (*entity.CompanyStatusResult, error) {
	if embedded, ok := user.EmbeddedCompanyStatus(); ok {
		metrics.CompanyStatusLookups.WithLabelValues(metrics.SourceEmbedded).Inc()

		return &embedded, nil
	}

	domain := user.EmailDomain()
	if domain == "" {
		return nil, nil
	}

	now := r.now()
	if entry, ok := r.cache.Get(domain); ok && entry.Fresh(now) {
		metrics.CompanyStatusLookups.WithLabelValues(metrics.SourceMemory).Inc()

		return &entry.Result, nil
	}

	entry, err := r.store.LoadCompanyStatus(ctx, domain)
	if err != nil {
		r.log(ctx).DebugContext(ctx, "Failed to load persisted company status",
			slog.String("domain", domain),
			slog.Any("error", err),
		)
	}
	if entry != nil && entry.Fresh(now) && entry.RecentlyChecked(now, r.recheck) {
		metrics.CompanyStatusLookups.WithLabelValues(metrics.SourcePersisted).Inc()
		r.cache.Add(domain, *entry)

		return &entry.Result, nil
	}

	v, err, _ := r.group.Do(domain, func() (any, error) {
		return r.lookup(ctx, domain)
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WithStack(ctxErr)
		}
		r.log(ctx).WarnContext(ctx, "Company lookup failed, no company verdict",
			slog.String("domain", domain),
			slog.Any("error", err),
		)

		return nil, nil
	}

	result := v.(entity.CompanyStatusResult)

	return &result, nil
}

func (r *companyStatusResolver) lookup(ctx context.Context, domain string) (entity.CompanyStatusResult, error) {
	companies, err := r.gateway.FindCompaniesByDomain(ctx, domain)
	if err != nil {
		return entity.CompanyStatusResult{}, err
	}
	metrics.CompanyStatusLookups.WithLabelValues(metrics.SourceNetwork).Inc()

	result := r.match(companies, domain)
	entry := entity.NewCompanyStatusEntry(result, r.now(), r.ttl)
	r.cache.Add(domain, entry)

	if err := r.store.SaveCompanyStatus(ctx, domain, &entry); err != nil {
		r.log(ctx).WarnContext(ctx, "Failed to persist company status",
			slog.String("domain", domain),
			slog.Any("error", err),
		)
	}

	return result, nil
}

// match picks the company owning domain: by primary domain, then by the
// domain of the contact email, then through the alias map.
func (r *companyStatusResolver) match(companies []entity.Company, domain string) entity.CompanyStatusResult {
	matchers := []func(entity.Company) bool{
		func(c entity.Company) bool { return strings.EqualFold(c.PrimaryDomain, domain) },
		func(c entity.Company) bool { return entity.EmailDomain(c.ContactEmail) == domain },
	}
	if name, ok := r.aliases[domain]; ok {
		matchers = append(matchers, func(c entity.Company) bool { return strings.ToLower(c.Name) == name })
	}

	for _, matches := range matchers {
		for _, company := range companies {
			if !matches(company) {
				continue
			}

			status := company.Status
			if status == "" {
				status = entity.CompanyStatusActive
			}

			return entity.CompanyStatusResult{Status: status, Name: company.Name, Domain: domain}
		}
	}

	return entity.CompanyStatusResult{Status: entity.CompanyStatusNotFound, Domain: domain}
}
