package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/maneomkar369/saheli-connect-2.0/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Ensure environment does not interfere
	_ = os.Unsetenv("SAHELI_ADDR")
	_ = os.Unsetenv("SAHELI_JWT_SECRET")
	_ = os.Unsetenv("SAHELI_DATABASE_PATH")
	_ = os.Unsetenv("SAHELI_ADMIN_USERNAME")

	cfg, err := config.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig returned error for empty path: %v", err)
	}

	if cfg.Addr != ":3000" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":3000")
	}
	if cfg.JWTSecret != "supersecretkey" {
		t.Fatalf("unexpected JWTSecret: got %q want %q", cfg.JWTSecret, "supersecretkey")
	}
	if cfg.DatabasePath != "saheli_connect.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "saheli_connect.db")
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 15*time.Second)
	}
	if cfg.TokenDuration != 7*24*time.Hour {
		t.Fatalf("unexpected TokenDuration: got %v want %v", cfg.TokenDuration, 7*24*time.Hour)
	}
	if cfg.AdminUsername != "admin" {
		t.Fatalf("unexpected AdminUsername: got %q want %q", cfg.AdminUsername, "admin")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	f, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	content := []byte("addr: \":9090\"\njwt_secret: \"filekey\"\ntimeout: \"30s\"\ndatabase_path: \"test.db\"\ntoken_duration: \"2h\"\nadmin_username: \"root\"\nadmin_password: \"hunter2\"\n")
	if err := os.WriteFile(f.Name(), content, 0o600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := config.LoadConfig(f.Name())
	if err != nil {
		t.Fatalf("LoadConfig returned error for file: %v", err)
	}

	if cfg.Addr != ":9090" {
		t.Fatalf("unexpected Addr: got %q want %q", cfg.Addr, ":9090")
	}
	if cfg.JWTSecret != "filekey" {
		t.Fatalf("unexpected JWTSecret: got %q want %q", cfg.JWTSecret, "filekey")
	}
	if cfg.DatabasePath != "test.db" {
		t.Fatalf("unexpected DatabasePath: got %q want %q", cfg.DatabasePath, "test.db")
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("unexpected APITimeout: got %v want %v", cfg.APITimeout, 30*time.Second)
	}
	if cfg.TokenDuration != 2*time.Hour {
		t.Fatalf("unexpected TokenDuration: got %v want %v", cfg.TokenDuration, 2*time.Hour)
	}
	if cfg.AdminUsername != "root" || cfg.AdminPassword != "hunter2" {
		t.Fatalf("unexpected admin credentials: %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
}

func TestLoadConfig_BadPath(t *testing.T) {
	if _, err := config.LoadConfig("/path/that/does/not/exist.yaml"); err == nil {
		t.Fatalf("expected error for nonexistent path, got nil")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	f, err := os.CreateTemp("", "bad-*.yaml")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer os.Remove(f.Name())
	f.Close()

	if err := os.WriteFile(f.Name(), []byte("::: not yaml :::"), 0o600); err != nil {
		t.Fatalf("failed to write bad yaml: %v", err)
	}

	if _, err := config.LoadConfig(f.Name()); err == nil {
		t.Fatalf("expected YAML decode error, got nil")
	}
}

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	_ = os.Unsetenv("SAHELI_ENV")

	cfg := &config.Config{
		Addr:               ":3000",
		JWTSecret:          "supersecretkey",
		APITimeout:         5 * time.Second,
		DatabasePath:       "saheli_connect.db",
		TokenDuration:      time.Hour,
		AdminTokenDuration: time.Hour,
		AdminPassword:      "x",
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for insecure JWT outside development")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	os.Setenv("SAHELI_ENV", "development")
	defer os.Unsetenv("SAHELI_ENV")

	cfg := &config.Config{
		Addr:               ":3000",
		JWTSecret:          "supersecretkey",
		APITimeout:         5 * time.Second,
		DatabasePath:       "saheli_connect.db",
		TokenDuration:      time.Hour,
		AdminTokenDuration: time.Hour,
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development env, got: %v", err)
	}
}

func TestValidate_MissingAdminPassword(t *testing.T) {
	_ = os.Unsetenv("SAHELI_ENV")

	cfg := &config.Config{
		Addr:               ":3000",
		JWTSecret:          "strongsecret",
		APITimeout:         5 * time.Second,
		DatabasePath:       "saheli_connect.db",
		TokenDuration:      time.Hour,
		AdminTokenDuration: time.Hour,
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail when admin_password is empty")
	}
}

func TestValidate_NonPositiveTokenDuration(t *testing.T) {
	os.Setenv("SAHELI_ENV", "development")
	defer os.Unsetenv("SAHELI_ENV")

	cfg := &config.Config{
		Addr:               ":3000",
		JWTSecret:          "strongsecret",
		APITimeout:         5 * time.Second,
		DatabasePath:       "saheli_connect.db",
		TokenDuration:      0,
		AdminTokenDuration: time.Hour,
	}

	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for zero token_duration")
	}
}
