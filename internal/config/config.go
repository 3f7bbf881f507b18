// Package config loads gateway and CLI settings from defaults, an optional YAML
// file and environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Dispatch transports for the user pool client.
const (
	TransportHTTP = "http"
	TransportSDK  = "sdk"
)

type Config struct {
	ServerPort  string          `koanf:"server_port"   validate:"required,numeric"`
	AppEnv      string          `koanf:"app_env"       validate:"required,oneof=local alpha beta prod"`
	AppName     string          `koanf:"app_name"      validate:"required"`
	AuthDevMode bool            `koanf:"auth_dev_mode"`
	LogLevel    string          `koanf:"log_level"     validate:"required,oneof=debug info warn error"`
	LogFormat   string          `koanf:"log_format"    validate:"required,oneof=json text"`
	DB          DBConfig        `koanf:"db"`
	Cognito     CognitoConfig   `koanf:"cognito"`
	RateLimit   RateLimitConfig `koanf:"rate_limit"`
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// DBConfig describes the optional Postgres user mirror.
type DBConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Host     string `koanf:"host"     validate:"required_if=Enabled true"`
	Port     string `koanf:"port"     validate:"required_if=Enabled true,omitempty,numeric"`
	User     string `koanf:"user"     validate:"required_if=Enabled true"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"     validate:"required_if=Enabled true"`
	SSLMode  string `koanf:"sslmode"  validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
}

func (d DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     d.Name,
		RawQuery: fmt.Sprintf("sslmode=%s", url.QueryEscape(d.SSLMode)),
	}
	return u.String()
}

// CognitoConfig identifies the user pool and app client.
type CognitoConfig struct {
	Region          string `koanf:"region"            validate:"required"`
	UserPoolID      string `koanf:"user_pool_id"`
	AppClientID     string `koanf:"app_client_id"     validate:"required"`
	AppClientSecret string `koanf:"app_client_secret"`
	Endpoint        string `koanf:"endpoint"          validate:"omitempty,url"`
	Transport       string `koanf:"transport"         validate:"required,oneof=http sdk"`
	UserAgent       string `koanf:"user_agent"`
}

// RateLimitConfig throttles the gateway endpoints that make the provider send codes.
// Forwarding headers are only trusted from TrustedProxies (IPs or CIDRs).
type RateLimitConfig struct {
	PerMinute      int      `koanf:"per_minute"      validate:"min=1"`
	Burst          int      `koanf:"burst"           validate:"min=1"`
	TrustedProxies []string `koanf:"trusted_proxies" validate:"dive,cidr|ip"`
}

// envKeys maps environment variable names to configuration keys.
var envKeys = map[string]string{
	"SERVER_PORT":                "server_port",
	"APP_ENV":                    "app_env",
	"APP_NAME":                   "app_name",
	"AUTH_DEV_MODE":              "auth_dev_mode",
	"LOG_LEVEL":                  "log_level",
	"LOG_FORMAT":                 "log_format",
	"DB_ENABLED":                 "db.enabled",
	"DB_HOST":                    "db.host",
	"DB_PORT":                    "db.port",
	"DB_USER":                    "db.user",
	"DB_PASSWORD":                "db.password",
	"DB_NAME":                    "db.name",
	"DB_SSLMODE":                 "db.sslmode",
	"COGNITO_REGION":             "cognito.region",
	"COGNITO_USER_POOL_ID":       "cognito.user_pool_id",
	"COGNITO_APP_CLIENT_ID":      "cognito.app_client_id",
	"COGNITO_APP_CLIENT_SECRET":  "cognito.app_client_secret",
	"COGNITO_ENDPOINT":           "cognito.endpoint",
	"COGNITO_TRANSPORT":          "cognito.transport",
	"COGNITO_USER_AGENT":         "cognito.user_agent",
	"RATE_LIMIT_PER_MINUTE":      "rate_limit.per_minute",
	"RATE_LIMIT_BURST":           "rate_limit.burst",
	"RATE_LIMIT_TRUSTED_PROXIES": "rate_limit.trusted_proxies",
}

func defaults() map[string]any {
	return map[string]any{
		"server_port":   "8080",
		"app_env":       "local",
		"app_name":      "userpool-auth",
		"auth_dev_mode": false,
		"log_level":     "info",
		"log_format":    "json",

		"db.enabled": false,
		"db.host":    "localhost",
		"db.port":    "5432",
		"db.user":    "userpool",
		"db.name":    "userpool",
		"db.sslmode": "disable",

		"cognito.region":    "ap-northeast-1",
		"cognito.transport": TransportHTTP,

		"rate_limit.per_minute": 10,
		"rate_limit.burst":      3,
	}
}

// Load reads configuration with the following precedence (highest to lowest):
//  1. Environment variables (SERVER_PORT, COGNITO_REGION, ...)
//  2. The YAML file named by CONFIG_FILE, if set
//  3. Default values
//
// Empty environment variables are ignored.
func Load() (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFileIfExists(k, path); err != nil {
			return Config{}, fmt.Errorf("loading config file %q: %w", path, err)
		}
	}

	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		name, ok := envKeys[key]
		if !ok || value == "" {
			return "", nil
		}
		if key == "RATE_LIMIT_TRUSTED_PROXIES" {
			return name, splitList(value)
		}
		return name, value
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	return cfg, nil
}

// splitList parses a comma-separated env value.
func splitList(value string) []string {
	var out []string
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return k.Load(file.Provider(path), yaml.Parser())
}
