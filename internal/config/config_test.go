package config

import (
	"os"
	"testing"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Driver: "valkey", Addrs: []string{"localhost:6379"}},
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for port 0")
	}
}

func TestValidate_NoAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing addrs")
	}
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Driver = "postgres"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestValidate_PageSizeOrder(t *testing.T) {
	cfg := validConfig()
	cfg.Search.DefaultPageSize = 500
	cfg.Search.MaxPageSize = 100
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when default page size exceeds max")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.Database.Driver != "valkey" {
		t.Errorf("expected valkey driver, got %q", cfg.Database.Driver)
	}
	if cfg.Search.DefaultRadiusKm != 5 {
		t.Errorf("expected default radius 5, got %f", cfg.Search.DefaultRadiusKm)
	}
	if cfg.Search.DefaultPageSize != 20 {
		t.Errorf("expected default page size 20, got %d", cfg.Search.DefaultPageSize)
	}
	if cfg.Search.MaxPageSize != 100 {
		t.Errorf("expected max page size 100, got %d", cfg.Search.MaxPageSize)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected shutdown timeout 10, got %d", cfg.HTTP.ShutdownSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	os.Setenv("MSRCH_TEST_PASSWORD", "secret")
	defer os.Unsetenv("MSRCH_TEST_PASSWORD")

	in := []byte("password: ${MSRCH_TEST_PASSWORD}\nport: ${MSRCH_TEST_PORT:-8080}\n")
	out := string(expandEnvVars(in))

	want := "password: secret\nport: 8080\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}

func TestGetEnv_Default(t *testing.T) {
	os.Unsetenv("ENV")
	if env := GetEnv(); env != "local" {
		t.Errorf("expected local, got %q", env)
	}
}
