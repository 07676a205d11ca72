package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`
	// prometheus metrics server
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// welcome message
	WelcomeURL     string   `toml:"welcome_url"`
	WelcomeTimeout Duration `toml:"welcome_timeout"`
	// calendar
	ScheduleCSVPath string `toml:"schedule_csv_path"`
	// redis, used for rate limiting
	RedisHost        string `toml:"redis_host"`
	RedisPort        string `toml:"redis_port"`
	RateLimitPerMin  int    `toml:"rate_limit_per_min"`
	RateLimitEnabled bool   `toml:"rate_limit_enabled"`
	// workout feed; disabled when no brokers are set
	KafkaBrokers []string `toml:"kafka_brokers"`
	KafkaTopic   string   `toml:"kafka_topic"`

	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
}

// Duration decodes TOML strings like "3s" into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

type Toml struct {
	Development *Config
	Production  *Config
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

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", configPath, err)
	}
	return fromToml(&t, env)
}

func LoadFromString(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.WelcomeTimeout.Duration == 0 {
		c.WelcomeTimeout.Duration = 5 * time.Second
	}
	if c.RateLimitPerMin == 0 {
		c.RateLimitPerMin = 60
	}
	if c.KafkaTopic == "" {
		c.KafkaTopic = "vfit.workouts"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port: %d", c.Port))
	}
	if c.RateLimitEnabled && c.RedisHost == "" {
		errs = append(errs, errors.New("rate limiting enabled but redis_host not set"))
	}
	if c.RateLimitPerMin < 0 {
		errs = append(errs, fmt.Errorf("invalid rate_limit_per_min: %d", c.RateLimitPerMin))
	}
	if c.welcomeURLIsSelf() {
		errs = append(errs, fmt.Errorf("welcome_url [%s] points at this service", c.WelcomeURL))
	}
	return errors.Join(errs...)
}

// welcomeURLIsSelf reports whether the welcome URL targets this service's
// own listener, which is not up yet when the startup fetch runs.
func (c *Config) welcomeURLIsSelf() bool {
	if c.WelcomeURL == "" {
		return false
	}
	u, err := url.Parse(c.WelcomeURL)
	if err != nil || u.Hostname() == "" {
		return false
	}

	port := u.Port()
	if port == "" {
		switch u.Scheme {
		case "https":
			port = "443"
		default:
			port = "80"
		}
	}
	if port != strconv.Itoa(c.Port) {
		return false
	}

	host := u.Hostname()
	if strings.EqualFold(host, c.Host) || strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && (ip.IsLoopback() || ip.IsUnspecified())
}

// FeedEnabled reports whether workouts should be published to Kafka.
func (c *Config) FeedEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
