package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LISTEN_ADDR", "STORAGE_BACKEND", "DATABASE_PATH", "DATA_DIR", "SESSION_SECRET", "GIN_MODE", "ADMIN_PASSWORD"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("expected default listen addr, got %q", cfg.ListenAddr)
	}
	if cfg.StorageBackend != BackendDB {
		t.Fatalf("expected db backend by default, got %q", cfg.StorageBackend)
	}
	if cfg.DatabasePath != "website.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.DataDir != "data" {
		t.Fatalf("expected default data dir, got %q", cfg.DataDir)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("expected release mode, got %q", cfg.GinMode)
	}
}

func TestLoadFileBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "FILE")
	t.Setenv("DATA_DIR", "/var/lib/website")

	cfg := Load()

	if cfg.StorageBackend != BackendFile {
		t.Fatalf("expected file backend, got %q", cfg.StorageBackend)
	}
	if cfg.DataDir != "/var/lib/website" {
		t.Fatalf("expected configured data dir, got %q", cfg.DataDir)
	}
}

func TestLoadUnknownBackendFallsBackToDB(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "redis")

	cfg := Load()
	if cfg.StorageBackend != BackendDB {
		t.Fatalf("expected db fallback, got %q", cfg.StorageBackend)
	}
}

func TestLoadCustomPort(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LISTEN_ADDR", "")

	cfg := Load()
	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected :9000, got %q", cfg.ListenAddr)
	}
}
