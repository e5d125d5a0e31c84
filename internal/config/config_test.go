package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q, want 0.0.0.0:8080", got)
	}
	if cfg.Storage.Backend != "jsonfile" || cfg.Storage.Persistence != "disk" {
		t.Errorf("storage defaults = %q/%q", cfg.Storage.Backend, cfg.Storage.Persistence)
	}
	if cfg.Auth.AdminEmail != "admin@munchbox.com" {
		t.Errorf("admin email = %q", cfg.Auth.AdminEmail)
	}
	if cfg.Orders.StrictTransitions {
		t.Error("strict transitions should default to off")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MUNCHBOX_SERVER_PORT", "9090")
	t.Setenv("MUNCHBOX_STORAGE_PERSISTENCE", "discard")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Storage.Persistence != "discard" {
		t.Errorf("persistence = %q, want discard", cfg.Storage.Persistence)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("server:\n  port: 3000\norders:\n  strict_transitions: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("port = %d, want 3000", cfg.Server.Port)
	}
	if !cfg.Orders.StrictTransitions {
		t.Error("strict_transitions not read from file")
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	t.Setenv("MUNCHBOX_STORAGE_BACKEND", "etcd")

	if _, err := Load(""); err == nil {
		t.Fatal("Load accepted an unknown storage backend")
	}
}
