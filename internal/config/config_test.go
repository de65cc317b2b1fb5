package config

import (
	"os"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_AppNameWithWhitespace(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
		App: AppConfig{Name: "form vault"},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for app name with whitespace")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.App.Name != "formvault" {
		t.Errorf("expected app name formvault, got %q", cfg.App.Name)
	}
	if cfg.App.KeyPrefix != "formvault:" {
		t.Errorf("expected key prefix formvault:, got %q", cfg.App.KeyPrefix)
	}
}

func TestGetEnv_Default(t *testing.T) {
	t.Setenv("ENV", "")
	if env := GetEnv(); env != "local" {
		t.Errorf("expected local, got %q", env)
	}
}

func TestGetEnv_FromVariable(t *testing.T) {
	t.Setenv("ENV", "prod")
	if env := GetEnv(); env != "prod" {
		t.Errorf("expected prod, got %q", env)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FV_TEST_PASSWORD", "s3cret")
	os.Unsetenv("FV_TEST_MISSING")

	tests := []struct {
		in   string
		want string
	}{
		{"password: ${FV_TEST_PASSWORD}", "password: s3cret"},
		{"port: ${FV_TEST_MISSING:-8080}", "port: 8080"},
		{"plain: value", "plain: value"},
	}
	for _, tc := range tests {
		got := string(expandEnvVars([]byte(tc.in)))
		if got != tc.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
