package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultSessionCookieName = "mycloudmen_sid"
	defaultSessionTTL        = 8 * time.Hour

	defaultBackendTimeout     = 10 * time.Second
	defaultRetryMaxAttempts   = 3
	defaultRetryBaseDelay     = 500 * time.Millisecond
	defaultTokenRefreshLeeway = 30 * time.Second

	defaultCompanyCacheTTL        = 5 * time.Minute
	defaultCompanyRecheckInterval = 30 * time.Second
	defaultCompanyCacheSize       = 1024

	defaultPollInterval    = 60 * time.Second
	defaultPollConcurrency = 8

	defaultLoginRatePerMinute = 20
	defaultLoginBurst         = 10
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port int `json:"port" yaml:"port" validate:"required,min=1,max=65535"`
		// PublicBaseURL is the externally visible origin of the gateway, used for redirect URIs.
		PublicBaseURL      string   `json:"publicBaseUrl" yaml:"publicBaseUrl" validate:"omitempty,url"`
		MaxRequestBodySize string   `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		AllowedOrigins     []string `json:"allowedOrigins" yaml:"allowedOrigins"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Session SessionConfig `json:"session" yaml:"session"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// OIDC is optional; without it the gateway runs with no identity provider and
	// every access token lookup yields an empty token.
	OIDC *OIDCConfig `json:"oidc" yaml:"oidc"`

	Backend BackendConfig `json:"backend" yaml:"backend"`

	Reconciliation ReconciliationConfig `json:"reconciliation" yaml:"reconciliation"`

	Poller PollerConfig `json:"poller" yaml:"poller"`

	Navigation NavigationConfig `json:"navigation" yaml:"navigation"`

	RateLimit RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// PubSub configuration for auth audit events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig controls the session cookie and the persisted session store backend.
type SessionConfig struct {
	CookieName   string        `json:"cookieName" yaml:"cookieName"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
	CookieDomain string        `json:"cookieDomain" yaml:"cookieDomain"`
	TTL          time.Duration `json:"ttl" yaml:"ttl"`
	// Store selects the backend: "memory", "redis" or "postgres".
	Store string `json:"store" yaml:"store" validate:"omitempty,oneof=memory redis postgres"`
}

type RedisConfig struct {
	Addr      string `json:"addr" yaml:"addr" validate:"required"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

type OIDCConfig struct {
	Issuer        string   `json:"issuer" yaml:"issuer" validate:"required,url"`
	ClientID      string   `json:"clientId" yaml:"clientId" validate:"required"`
	ClientSecret  string   `json:"clientSecret" yaml:"clientSecret"`
	Audience      string   `json:"audience" yaml:"audience"`
	AuthURL       string   `json:"authUrl" yaml:"authUrl" validate:"required,url"`
	TokenURL      string   `json:"tokenUrl" yaml:"tokenUrl" validate:"required,url"`
	JWKSURL       string   `json:"jwksUrl" yaml:"jwksUrl" validate:"required,url"`
	EndSessionURL string   `json:"endSessionUrl" yaml:"endSessionUrl" validate:"omitempty,url"`
	RedirectURL   string   `json:"redirectUrl" yaml:"redirectUrl" validate:"required,url"`
	PostLogoutURL string   `json:"postLogoutUrl" yaml:"postLogoutUrl" validate:"omitempty,url"`
	Scopes        []string `json:"scopes" yaml:"scopes"`

	RefreshLeeway   time.Duration `json:"refreshLeeway" yaml:"refreshLeeway"`
	JWKSRefresh     time.Duration `json:"jwksRefresh" yaml:"jwksRefresh"`
	ClockSkewLeeway time.Duration `json:"clockSkewLeeway" yaml:"clockSkewLeeway"`
}

type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl" validate:"required,url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	Retry   struct {
		MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts"`
		BaseDelay   time.Duration `json:"baseDelay" yaml:"baseDelay"`
	} `json:"retry" yaml:"retry"`
}

// CompanyAlias maps an email domain onto a company name the directory knows it by.
type CompanyAlias struct {
	Domain      string `json:"domain" yaml:"domain" validate:"required"`
	CompanyName string `json:"companyName" yaml:"companyName" validate:"required"`
}

type ReconciliationConfig struct {
	CompanyCacheTTL        time.Duration  `json:"companyCacheTTL" yaml:"companyCacheTTL"`
	CompanyRecheckInterval time.Duration  `json:"companyRecheckInterval" yaml:"companyRecheckInterval"`
	CompanyCacheSize       int            `json:"companyCacheSize" yaml:"companyCacheSize"`
	CompanyAliases         []CompanyAlias `json:"companyAliases" yaml:"companyAliases" validate:"dive"`
}

type PollerConfig struct {
	Enabled     bool          `json:"enabled" yaml:"enabled"`
	Interval    time.Duration `json:"interval" yaml:"interval"`
	Concurrency int           `json:"concurrency" yaml:"concurrency"`
}

// RouteRule is route metadata: the roles allowed to enter paths under Prefix.
type RouteRule struct {
	Prefix string   `json:"prefix" yaml:"prefix" validate:"required,startswith=/"`
	Roles  []string `json:"roles" yaml:"roles"`
}

type NavigationConfig struct {
	// PublicPaths pass the authentication guard without a session.
	PublicPaths []string `json:"publicPaths" yaml:"publicPaths"`
	// StatusPaths require a session but skip status verification, otherwise the
	// status pages would redirect onto themselves.
	StatusPaths []string          `json:"statusPaths" yaml:"statusPaths"`
	Routes      []RouteRule       `json:"routes" yaml:"routes" validate:"dive"`
	Landing     map[string]string `json:"landing" yaml:"landing"`
	StatusGuard struct {
		FailOpen *bool `json:"failOpen" yaml:"failOpen"`
	} `json:"statusGuard" yaml:"statusGuard"`
}

// StatusGuardFailOpen reports whether an unverifiable status lets navigation through.
func (n NavigationConfig) StatusGuardFailOpen() bool {
	return n.StatusGuard.FailOpen == nil || *n.StatusGuard.FailOpen
}

type RateLimitConfig struct {
	LoginPerMinute int `json:"loginPerMinute" yaml:"loginPerMinute"`
	LoginBurst     int `json:"loginBurst" yaml:"loginBurst"`
}

// PubSubConfig defines Pub/Sub configuration for auth audit events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider" validate:"omitempty,oneof=local google"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// OIDC_CLIENTID -> oidc.clientId, aligned with the keys already present in the YAML.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags and the cross-field rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	switch c.Session.Store {
	case "redis":
		if c.Redis == nil {
			return errors.New("invalid config: session.store is redis but redis section is missing")
		}
	case "postgres":
		if c.Postgres == nil {
			return errors.New("invalid config: session.store is postgres but postgres section is missing")
		}
	}

	return nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.HTTP.MaxRequestBodySize) == "" {
		c.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if c.Session.CookieName == "" {
		c.Session.CookieName = defaultSessionCookieName
	}
	if c.Session.TTL <= 0 {
		c.Session.TTL = defaultSessionTTL
	}
	if c.Session.Store == "" {
		c.Session.Store = "memory"
	}

	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = defaultBackendTimeout
	}
	if c.Backend.Retry.MaxAttempts <= 0 {
		c.Backend.Retry.MaxAttempts = defaultRetryMaxAttempts
	}
	if c.Backend.Retry.BaseDelay <= 0 {
		c.Backend.Retry.BaseDelay = defaultRetryBaseDelay
	}

	if c.OIDC != nil {
		if c.OIDC.RefreshLeeway <= 0 {
			c.OIDC.RefreshLeeway = defaultTokenRefreshLeeway
		}
		if len(c.OIDC.Scopes) == 0 {
			c.OIDC.Scopes = []string{"openid", "profile", "email", "offline_access"}
		}
	}

	if c.Reconciliation.CompanyCacheTTL <= 0 {
		c.Reconciliation.CompanyCacheTTL = defaultCompanyCacheTTL
	}
	if c.Reconciliation.CompanyRecheckInterval <= 0 {
		c.Reconciliation.CompanyRecheckInterval = defaultCompanyRecheckInterval
	}
	if c.Reconciliation.CompanyCacheSize <= 0 {
		c.Reconciliation.CompanyCacheSize = defaultCompanyCacheSize
	}

	if c.Poller.Interval <= 0 {
		c.Poller.Interval = defaultPollInterval
	}
	if c.Poller.Concurrency <= 0 {
		c.Poller.Concurrency = defaultPollConcurrency
	}

	if c.RateLimit.LoginPerMinute <= 0 {
		c.RateLimit.LoginPerMinute = defaultLoginRatePerMinute
	}
	if c.RateLimit.LoginBurst <= 0 {
		c.RateLimit.LoginBurst = defaultLoginBurst
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv reads POSTGRES_REPLICAS_{index}_{HOST,PORT,USERNAME,PASSWORD}.
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			break
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		})
	}

	return replicas
}
