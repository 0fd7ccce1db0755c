package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network requests.
type HTTPConfig struct {
	// Timeout is the client-side request ceiling. A request that exceeds it
	// is treated as failed; there is no retry.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "spaceper/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// UpstreamConfig holds settings for the remote BioSpace backend.
type UpstreamConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the backend root; a trailing slash is ignored.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// InsightTimeout bounds insight generation, which is slower than search (default 30s).
	InsightTimeout time.Duration `json:"insight_timeout" yaml:"insight_timeout" mapstructure:"insight_timeout"`

	// APIKey is sent as X-API-Key when set.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" mapstructure:"api_key"`
}

// SearchConfig holds settings for the search flow.
type SearchConfig struct {
	// Limit is the number of hits requested from the backend (default 10).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`

	// OnlyFullContent asks the backend for hits that carry full text (default true).
	OnlyFullContent bool `json:"only_full_content" yaml:"only_full_content" mapstructure:"only_full_content"`

	// KeywordLimit is the number of keywords extracted per list item (default 6).
	KeywordLimit int `json:"keyword_limit" yaml:"keyword_limit" mapstructure:"keyword_limit"`
}

// CacheBackend selects the upstream response cache implementation.
type CacheBackend string

const (
	CacheNone   CacheBackend = "none"
	CacheMemory CacheBackend = "memory"
	CacheRedis  CacheBackend = "redis"
)

// CacheConfig holds settings for the upstream response cache.
type CacheConfig struct {
	// Backend is none, memory, or redis (default none).
	Backend CacheBackend `json:"backend" yaml:"backend" mapstructure:"backend"`

	// TTL is how long raw hits are kept (default 5m).
	TTL time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`

	// RedisAddr is host:port of the Redis server.
	RedisAddr string `json:"redis_addr" yaml:"redis_addr" mapstructure:"redis_addr"`

	// RedisPassword is normally supplied through .secrets/redis-password.
	RedisPassword string `json:"redis_password,omitempty" yaml:"redis_password,omitempty" mapstructure:"redis_password"`

	RedisDB int `json:"redis_db" yaml:"redis_db" mapstructure:"redis_db"`
}

// ServerConfig holds settings for the HTTP surface served to the browser UI.
type ServerConfig struct {
	// Addr is the listen address (default ":8080").
	Addr string `json:"addr" yaml:"addr" mapstructure:"addr"`

	// AllowOrigins lists CORS origins (default http://localhost:3000).
	AllowOrigins []string `json:"allow_origins" yaml:"allow_origins" mapstructure:"allow_origins"`

	// MaxBodyBytes limits request bodies (default 1 MiB).
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes" mapstructure:"max_body_bytes"`

	// Mode is the gin mode: debug, release, or test.
	Mode string `json:"mode" yaml:"mode" mapstructure:"mode"`
}

// Config groups all component configurations.
type Config struct {
	Upstream UpstreamConfig `json:"upstream" yaml:"upstream" mapstructure:"upstream"`
	Search   SearchConfig   `json:"search" yaml:"search" mapstructure:"search"`
	Cache    CacheConfig    `json:"cache" yaml:"cache" mapstructure:"cache"`
	Server   ServerConfig   `json:"server" yaml:"server" mapstructure:"server"`
}

const (
	DefaultBaseURL        = "https://nasa2025-backend-164841539788.europe-west1.run.app"
	DefaultTimeout        = 15 * time.Second
	DefaultInsightTimeout = 30 * time.Second
	DefaultUserAgent      = "spaceper/0.1"
	DefaultSearchLimit    = 10
	DefaultKeywordLimit   = 6
	DefaultCacheTTL       = 5 * time.Minute
	DefaultAddr           = ":8080"
	DefaultMaxBodyBytes   = 1 << 20
)

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	return Config{
		Upstream: UpstreamConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   DefaultTimeout,
				UserAgent: DefaultUserAgent,
			},
			BaseURL:        DefaultBaseURL,
			InsightTimeout: DefaultInsightTimeout,
		},
		Search: SearchConfig{
			Limit:           DefaultSearchLimit,
			OnlyFullContent: true,
			KeywordLimit:    DefaultKeywordLimit,
		},
		Cache: CacheConfig{
			Backend: CacheNone,
			TTL:     DefaultCacheTTL,
		},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			AllowOrigins: []string{"http://localhost:3000"},
			MaxBodyBytes: DefaultMaxBodyBytes,
			Mode:         "release",
		},
	}
}

// ApplyDefaults fills zero values with defaults. OnlyFullContent is a bool
// and cannot be defaulted here; DefaultConfig sets it.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Upstream.Timeout <= 0 {
		c.Upstream.Timeout = d.Upstream.Timeout
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = d.Upstream.UserAgent
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = d.Upstream.BaseURL
	}
	if c.Upstream.InsightTimeout <= 0 {
		c.Upstream.InsightTimeout = d.Upstream.InsightTimeout
	}
	if c.Search.Limit <= 0 {
		c.Search.Limit = d.Search.Limit
	}
	if c.Search.KeywordLimit <= 0 {
		c.Search.KeywordLimit = d.Search.KeywordLimit
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = d.Cache.Backend
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = d.Cache.TTL
	}
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if len(c.Server.AllowOrigins) == 0 {
		c.Server.AllowOrigins = d.Server.AllowOrigins
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = d.Server.MaxBodyBytes
	}
	if c.Server.Mode == "" {
		c.Server.Mode = d.Server.Mode
	}
}
