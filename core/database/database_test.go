package database

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigNormalize(t *testing.T) {
	var disabled Config
	if err := disabled.Normalize(); err != nil {
		t.Fatalf("disabled config should pass: %v", err)
	}

	missing := Config{Enabled: true}
	if err := missing.Normalize(); err == nil {
		t.Fatal("expected error for enabled config without host")
	}

	cfg := Config{Enabled: true, Host: "db", Name: "runclub", User: "bot", Password: "p@ss"}
	if err := cfg.Normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Port != "5432" || cfg.SSLMode != "disable" || cfg.MaxConnections != 5 || cfg.MigrationsDir != "migrations" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if got, want := cfg.URL(), "postgres://bot:p%40ss@db:5432/runclub?sslmode=disable"; got != want {
		t.Fatalf("URL = %q, want %q", got, want)
	}
}

func TestCountApplied(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0001_bookings.up.sql", "0001_bookings.down.sql", "0002_index.up.sql"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
	files := listMigrationFiles(dir)
	if len(files) != 2 {
		t.Fatalf("files = %v", files)
	}
	if got := countApplied(files, 0, 2); got != 2 {
		t.Fatalf("countApplied(0,2) = %d", got)
	}
	if got := countApplied(files, 1, 2); got != 1 {
		t.Fatalf("countApplied(1,2) = %d", got)
	}
}
