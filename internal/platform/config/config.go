// Package config loads the storefront configuration with koanf and validates
// it with go-playground/validator.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix marks the environment variables Load reads.
	EnvPrefix = "APP_"

	configDir = "configs"

	// devVisitorSecret signs local cookies only. Validate rejects it in prod.
	devVisitorSecret = "local-development-visitor-secret"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Client    ClientConfig    `koanf:"client"    validate:"required"`
	Services  ServicesConfig  `koanf:"services"  validate:"required"`
	Recaptcha RecaptchaConfig `koanf:"recaptcha"`
	Storage   StorageConfig   `koanf:"storage"`
	Database  DatabaseConfig  `koanf:"database"`
	Visitor   VisitorConfig   `koanf:"visitor"   validate:"required"`
	Site      SiteConfig      `koanf:"site"      validate:"required"`
	Uploads   UploadsConfig   `koanf:"uploads"   validate:"required"`
	Features  map[string]bool `koanf:"features"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=1s"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	Protocol     string  `koanf:"protocol"      validate:"omitempty,oneof=grpc http"`
	Insecure     bool    `koanf:"insecure"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// ClientConfig contains HTTP client settings for downstream services.
type ClientConfig struct {
	Timeout        time.Duration        `koanf:"timeout"         validate:"required,min=100ms"`
	Retry          RetryConfig          `koanf:"retry"           validate:"required"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker" validate:"required"`
	Transport      TransportConfig      `koanf:"transport"       validate:"required"`
}

// RetryConfig contains retry settings for HTTP clients.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig contains circuit breaker settings for HTTP clients.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

// TransportConfig contains HTTP transport pool settings.
type TransportConfig struct {
	MaxIdleConns        int           `koanf:"max_idle_conns"          validate:"required,min=1"`
	MaxIdleConnsPerHost int           `koanf:"max_idle_conns_per_host" validate:"required,min=1"`
	IdleConnTimeout     time.Duration `koanf:"idle_conn_timeout"       validate:"required,min=1s"`
}

// ServicesConfig contains configuration for downstream services.
type ServicesConfig struct {
	Backend ServiceEndpointConfig `koanf:"backend" validate:"required"`
}

// ServiceEndpointConfig contains configuration for a downstream service endpoint.
type ServiceEndpointConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Name    string `koanf:"name"     validate:"required"`
}

// RecaptchaConfig controls server-side reCAPTCHA verification.
type RecaptchaConfig struct {
	Enabled   bool    `koanf:"enabled"`
	VerifyURL string  `koanf:"verify_url" validate:"required_if=Enabled true,omitempty,url"`
	Secret    string  `koanf:"secret"     validate:"required_if=Enabled true"`
	MinScore  float64 `koanf:"min_score"  validate:"min=0,max=1"`
}

// StorageConfig configures the S3-compatible bucket for application attachments.
type StorageConfig struct {
	Enabled    bool          `koanf:"enabled"`
	Endpoint   string        `koanf:"endpoint"    validate:"required_if=Enabled true"`
	AccessKey  string        `koanf:"access_key"  validate:"required_if=Enabled true"`
	SecretKey  string        `koanf:"secret_key"  validate:"required_if=Enabled true"`
	Bucket     string        `koanf:"bucket"      validate:"required_if=Enabled true"`
	Region     string        `koanf:"region"`
	UseSSL     bool          `koanf:"use_ssl"`
	PresignTTL time.Duration `koanf:"presign_ttl" validate:"required_if=Enabled true"`
}

// DatabaseConfig configures the visitor-state store. An empty DSN selects the
// in-process store.
type DatabaseConfig struct {
	DSN             string        `koanf:"dsn"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`
}

// VisitorConfig configures the signed visitor cookie.
type VisitorConfig struct {
	CookieName string        `koanf:"cookie_name" validate:"required"`
	Secret     string        `koanf:"secret"      validate:"required,min=16"`
	TTL        time.Duration `koanf:"ttl"         validate:"required,min=1h"`
	Secure     bool          `koanf:"secure"`
	Domain     string        `koanf:"domain"`
}

// SiteConfig holds storefront facts the pages need.
type SiteConfig struct {
	BaseURL               string        `koanf:"base_url"                validate:"required,url"`
	NewsletterPromptDelay time.Duration `koanf:"newsletter_prompt_delay" validate:"min=0"`
}

// UploadsConfig bounds application attachments.
type UploadsConfig struct {
	MaxSizeMB         int      `koanf:"max_size_mb"        validate:"required,min=1,max=50"`
	AllowedExtensions []string `koanf:"allowed_extensions" validate:"required,min=1"`
}

// defaults is the lowest configuration layer. Every key a profile file may
// override needs an entry here so koanf can see it.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "storefront",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             8080,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  "30s",
		"server.max_request_size": 1 << 20, // JSON only; see uploads.max_size_mb

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/storefront.log",
		"log.file.max_size":    100,
		"log.file.max_backups": 3,
		"log.file.max_age":     28,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.protocol":      "grpc",
		"telemetry.insecure":      true,
		"telemetry.service_name":  "storefront",
		"telemetry.sampling_rate": 1.0,

		"client.timeout":                           "30s",
		"client.retry.max_attempts":                3,
		"client.retry.initial_interval":            "100ms",
		"client.retry.max_interval":                "5s",
		"client.retry.multiplier":                  2.0,
		"client.retry.jitter_factor":               0.25,
		"client.circuit_breaker.max_failures":      5,
		"client.circuit_breaker.timeout":           "30s",
		"client.circuit_breaker.half_open_limit":   3,
		"client.transport.max_idle_conns":          100,
		"client.transport.max_idle_conns_per_host": 10,
		"client.transport.idle_conn_timeout":       "90s",

		"services.backend.base_url": "http://localhost:3000",
		"services.backend.name":     "backend-api",

		"recaptcha.enabled":    false,
		"recaptcha.verify_url": "https://www.google.com/recaptcha/api/siteverify",
		"recaptcha.secret":     "",
		"recaptcha.min_score":  0.5,

		"storage.enabled":     false,
		"storage.endpoint":    "localhost:9000",
		"storage.bucket":      "storefront-applications",
		"storage.region":      "us-east-1",
		"storage.use_ssl":     false,
		"storage.presign_ttl": "168h",

		"database.dsn":               "",
		"database.max_open_conns":    10,
		"database.max_idle_conns":    5,
		"database.conn_max_lifetime": "30m",
		"database.migrate_on_start":  true,

		"visitor.cookie_name": "sc_visitor",
		"visitor.secret":      devVisitorSecret,
		"visitor.ttl":         "8760h",
		"visitor.secure":      false,

		"site.base_url":                "http://localhost:3001",
		"site.newsletter_prompt_delay": "2s",

		"uploads.max_size_mb":        5,
		"uploads.allowed_extensions": []string{".pdf", ".doc", ".docx"},

		"features.newsletter-prompt": true,
		"features.products-page-ads": true,
	}
}

// Load builds the configuration from four layers, later ones winning:
// defaults, configs/base.yaml, configs/<profile>.yaml and APP_* variables.
// Missing files are skipped; a file that exists but does not parse is an error.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadYAML(k, "base"); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadYAML(k, profile); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	cfg := new(Config)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps APP_SERVER_PORT to server.port. A double underscore keeps a literal
// underscore inside a key: APP_SERVICES_BACKEND_BASE__URL is services.backend.base_url.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))

	parts := strings.Split(s, "__")
	for i, p := range parts {
		parts[i] = strings.ReplaceAll(p, "_", ".")
	}

	return strings.Join(parts, "_")
}

func loadYAML(k *koanf.Koanf, name string) error {
	path := filepath.Join(configDir, name+".yaml")

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
