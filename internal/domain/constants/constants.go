package constants

// Event publisher providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Session store backends
const (
	SessionStoreMemory   = "memory"
	SessionStoreRedis    = "redis"
	SessionStorePostgres = "postgres"
)

// Event types published for authentication audit
const (
	EventTypeAuthSucceeded = "auth.succeeded"
	EventTypeAuthFailed    = "auth.failed"
)
