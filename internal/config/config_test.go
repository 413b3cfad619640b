package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr() != ":8080" || cfg.AuthMode() != AuthModeDev {
		t.Fatalf("unexpected defaults %#v", cfg)
	}
	if cfg.ReadTimeoutDuration() != 5*time.Second || cfg.Auth.TokenTTLDuration() != 168*time.Hour {
		t.Fatalf("unexpected default durations")
	}
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config")
	}
}

func TestLoad_YAMLAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
port: "9000"
logLevel: debug
dbDsn: postgres://file
auth:
  mode: local
  jwtSecret: from-file
  tokenTtl: 1h
`)
	t.Setenv("PORT", "9100")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9100" || cfg.Auth.JWTSecret != "from-env" {
		t.Fatalf("env must override file: %#v", cfg)
	}
	if cfg.DBDSN != "postgres://file" || cfg.LogLevel != "debug" || cfg.RedisAddr != "localhost:6379" || cfg.RedisDB != 2 {
		t.Fatalf("unexpected merged config %#v", cfg)
	}
	if cfg.Auth.TokenTTLDuration() != time.Hour {
		t.Fatalf("expected 1h ttl, got %v", cfg.Auth.TokenTTLDuration())
	}
	if cfg.WriteTimeout != "10s" {
		t.Fatalf("defaults must survive partial yaml, got %q", cfg.WriteTimeout)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]string{
		"local without secret": "auth:\n  mode: local\n",
		"remote without key":   "auth:\n  mode: remote\n  baseURL: http://auth\n",
		"unknown mode":         "auth:\n  mode: ldap\n",
		"bad port":             "port: http\n",
		"bad duration":         "readTimeout: soon\n",
	}
	for name, body := range cases {
		if _, err := Load(writeConfig(t, body)); err == nil || !strings.HasPrefix(err.Error(), "config:") {
			t.Fatalf("%s: expected config error, got %v", name, err)
		}
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "port: [")); err == nil {
		t.Fatalf("expected parse error")
	}
}
