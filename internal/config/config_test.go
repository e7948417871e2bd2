package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("INSTANCE_FILE", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.InstanceFile != "" {
		t.Fatalf("expected no default instance file, got %s", cfg.InstanceFile)
	}
	if cfg.ShutdownGracePeriod != 10*time.Second {
		t.Fatalf("unexpected shutdown grace period: %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != defaultRateLimitRPS || cfg.RateLimitBurst != defaultRateLimitBurst {
		t.Fatalf("unexpected rate limit defaults: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INSTANCE_FILE", "/data/instance.txt")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.InstanceFile != "/data/instance.txt" {
		t.Fatalf("expected overridden instance file, got %s", cfg.InstanceFile)
	}
	if cfg.RateLimitRPS != 5 || cfg.RateLimitBurst != 10 {
		t.Fatalf("expected overridden rate limit, got %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("INSTANCE_FILE", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `port: "8090"
instance_file: /data/mill.txt
shutdown_grace_period: 3s
enable_request_logging: true
rate_limit:
  rps: 2
  burst: 4
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(&CLIOverrides{ConfigFile: path})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "8090" {
		t.Fatalf("expected port 8090, got %s", cfg.Port)
	}
	if cfg.InstanceFile != "/data/mill.txt" {
		t.Fatalf("expected instance file from YAML, got %s", cfg.InstanceFile)
	}
	if cfg.ShutdownGracePeriod != 3*time.Second {
		t.Fatalf("expected 3s grace period, got %s", cfg.ShutdownGracePeriod)
	}
	if cfg.RateLimitRPS != 2 || cfg.RateLimitBurst != 4 {
		t.Fatalf("unexpected rate limit: %v/%d", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}
}

func TestLoadCLIOverridesWinOverEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("INSTANCE_FILE", "/data/from-env.txt")

	port := "7070"
	instanceFile := "/data/from-flag.txt"
	cfg, err := Load(&CLIOverrides{Port: &port, InstanceFile: &instanceFile})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Port != "7070" {
		t.Fatalf("expected CLI port to win, got %s", cfg.Port)
	}
	if cfg.InstanceFile != "/data/from-flag.txt" {
		t.Fatalf("expected CLI instance file to win, got %s", cfg.InstanceFile)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
