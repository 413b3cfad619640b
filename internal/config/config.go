package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath se usa si no se pasa --config ni CONFIG_PATH.
const DefaultPath = "config.yaml"

const (
	AuthModeDev    = "dev"    // sin verifier, X-Debug-User-ID
	AuthModeLocal  = "local"  // cuentas propias + JWT
	AuthModeRemote = "remote" // proveedor hosteado
)

type Config struct {
	Port         string `yaml:"port"`
	LogLevel     string `yaml:"logLevel"`
	LogFormat    string `yaml:"logFormat"`
	ReadTimeout  string `yaml:"readTimeout"`
	WriteTimeout string `yaml:"writeTimeout"`

	// DBDSN vacío = repos in-memory.
	DBDSN string `yaml:"dbDsn"`

	// RedisAddr vacío = secure store in-memory.
	RedisAddr     string `yaml:"redisAddr"`
	RedisPassword string `yaml:"redisPassword"`
	RedisDB       int    `yaml:"redisDb"`

	Auth AuthConfig `yaml:"auth"`
}

type AuthConfig struct {
	Mode string `yaml:"mode"`

	JWTSecret string `yaml:"jwtSecret"`
	JWTIssuer string `yaml:"jwtIssuer"`
	TokenTTL  string `yaml:"tokenTtl"`

	BaseURL      string `yaml:"baseURL"`
	APIKey       string `yaml:"apiKey"`
	APIKeyHeader string `yaml:"apiKeyHeader"`
	Timeout      string `yaml:"timeout"`
}

func defaults() Config {
	return Config{
		Port:         "8080",
		LogLevel:     "info",
		LogFormat:    "text",
		ReadTimeout:  "5s",
		WriteTimeout: "10s",
		Auth: AuthConfig{
			Mode:     AuthModeDev,
			TokenTTL: "168h",
			Timeout:  "5s",
		},
	}
}

// Load lee el YAML (si existe) y aplica overrides por env.
// Con path vacío un archivo inexistente no es error: se usan defaults.
func Load(path string) (Config, error) {
	cfg := defaults()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	applyEnv(&cfg)

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString := func(dst *string, key string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}

	setString(&cfg.Port, "PORT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")
	setString(&cfg.DBDSN, "DB_DSN")
	setString(&cfg.RedisAddr, "REDIS_ADDR")
	setString(&cfg.RedisPassword, "REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.RedisDB = n
		}
	}

	setString(&cfg.Auth.Mode, "AUTH_MODE")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Auth.JWTIssuer, "JWT_ISSUER")
	setString(&cfg.Auth.TokenTTL, "JWT_TTL")
	setString(&cfg.Auth.BaseURL, "AUTH_BASE_URL")
	setString(&cfg.Auth.APIKey, "AUTH_API_KEY")
	setString(&cfg.Auth.APIKeyHeader, "AUTH_API_KEY_HEADER")
}

func validate(cfg Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("config: port is required")
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("config: invalid port %q", cfg.Port)
	}

	for name, v := range map[string]string{
		"readTimeout":   cfg.ReadTimeout,
		"writeTimeout":  cfg.WriteTimeout,
		"auth.tokenTtl": cfg.Auth.TokenTTL,
		"auth.timeout":  cfg.Auth.Timeout,
	} {
		if _, err := parseDuration(v); err != nil {
			return fmt.Errorf("config: invalid %s: %w", name, err)
		}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Auth.Mode)) {
	case AuthModeDev:
	case AuthModeLocal:
		if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
			return errors.New("config: auth.jwtSecret is required for local auth (set in config.yaml or JWT_SECRET)")
		}
	case AuthModeRemote:
		if strings.TrimSpace(cfg.Auth.BaseURL) == "" || strings.TrimSpace(cfg.Auth.APIKey) == "" {
			return errors.New("config: auth.baseURL and auth.apiKey are required for remote auth")
		}
	default:
		return fmt.Errorf("config: unknown auth.mode %q (dev, local, remote)", cfg.Auth.Mode)
	}
	return nil
}

func (c Config) Addr() string { return ":" + c.Port }

func (c Config) AuthMode() string { return strings.ToLower(strings.TrimSpace(c.Auth.Mode)) }

func (c Config) ReadTimeoutDuration() time.Duration  { return mustDuration(c.ReadTimeout) }
func (c Config) WriteTimeoutDuration() time.Duration { return mustDuration(c.WriteTimeout) }
func (a AuthConfig) TokenTTLDuration() time.Duration { return mustDuration(a.TokenTTL) }
func (a AuthConfig) TimeoutDuration() time.Duration  { return mustDuration(a.Timeout) }

// parseDuration acepta vacío como 0.
func parseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	return time.ParseDuration(v)
}

// mustDuration solo se usa después de validate.
func mustDuration(v string) time.Duration {
	d, _ := parseDuration(v)
	return d
}
