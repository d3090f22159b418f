package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const DefaultUserID = "anonymous"

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresPassword string `toml:"-"` // env only
	PostgresSSLMode  string `toml:"postgres_ssl_mode"`
	DBAutoMigrate    bool   `toml:"db_auto_migrate"`

	// redis
	RedisHost     string `toml:"redis_host"`
	RedisPort     string `toml:"redis_port"`
	RedisPassword string `toml:"-"` // env only

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// tracker
	UserID                      string   `toml:"user_id"`
	AllowedOrigins              []string `toml:"allowed_origins"`
	MutationsRateLimitPerMin    int      `toml:"mutations_rate_limit_per_min"`
	PreferencesLastWriteWins    bool     `toml:"preferences_last_write_wins"`
	SessionsCacheSizeMB         int      `toml:"sessions_cache_size_mb"`
	SessionsCacheExpireDuration Duration `toml:"sessions_cache_expire"`
}

// Duration lets TOML values like "10m" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file, selects the env section and validates it.
// Missing or malformed store settings are fatal for the caller.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid [%s] config: %w", env, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.UserID == "" {
		c.UserID = DefaultUserID
	}
	if c.SessionsCacheSizeMB <= 0 {
		c.SessionsCacheSizeMB = 10
	}
	if c.SessionsCacheExpireDuration.Duration <= 0 {
		c.SessionsCacheExpireDuration.Duration = 10 * time.Minute
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port out of range: %d", c.Port))
	}
	if c.PostgresHost == "" {
		errs = append(errs, errors.New("postgres_host not set"))
	}
	if c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres_db_name not set"))
	}
	if c.MutationsRateLimitPerMin < 0 {
		errs = append(errs, fmt.Errorf("negative mutations_rate_limit_per_min: %d", c.MutationsRateLimitPerMin))
	}
	return errors.Join(errs...)
}
