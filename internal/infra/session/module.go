package session

import (
	"context"
	"log/slog"

	"mycloudmen/config"
	"mycloudmen/internal/domain/constants"
	"mycloudmen/internal/domain/repository"
	"mycloudmen/internal/infra/persistence/memory"
	"mycloudmen/internal/infra/persistence/postgres"
	"mycloudmen/internal/infra/persistence/redis"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the dependencies of the session storage backend.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKVStore builds the backend selected by session.store.
func NewKVStore(params Params) (repository.KVStore, error) {
	store := params.Config.Session.Store
	params.Logger.Info("Initializing session store", slog.String("backend", store))

	switch store {
	case constants.SessionStoreMemory, "":
		kv := memory.NewKVStore(0)
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return kv.Close()
			},
		})

		return kv, nil
	case constants.SessionStoreRedis:
		client, err := redis.NewClient(params.Lc, params.Config.Redis, params.Logger)
		if err != nil {
			return nil, err
		}

		return redis.NewKVStore(client, params.Config.Redis.KeyPrefix), nil
	case constants.SessionStorePostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewSessionKVRepository(db), nil
	default:
		return nil, errors.Errorf("unsupported session store: %s", store)
	}
}

// NewSessionStore wraps the backend in the typed session store.
func NewSessionStore(kv repository.KVStore, cfg *config.Config, logger *slog.Logger) repository.SessionStore {
	return NewStore(kv, cfg.Session.TTL, cfg.Reconciliation.CompanyCacheTTL, logger)
}

// Module provides the session storage for fx.
var Module = fx.Options(
	fx.Provide(
		NewKVStore,
		NewSessionStore,
	),
)
