package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProjectConfig(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "project: test-project\nversion: 1\ndatabase:\n  dsn: sqlite://quests.db\ndialogue: dialogue.yaml\ncatalogs: catalogs.yaml\n")
		cfg, err := LoadProjectConfig(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Project != "test-project" {
			t.Fatalf("expected project name, got %q", cfg.Project)
		}
		if cfg.Database.DSN != "sqlite://quests.db" {
			t.Fatalf("expected dsn, got %q", cfg.Database.DSN)
		}
	})

	t.Run("missing project name", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "version: 1\ndatabase:\n  dsn: sqlite://quests.db\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing dsn", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "project: test\nversion: 1\ndatabase:\n  dsn: \"\"\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "project: test\nversion: 2\ndatabase:\n  dsn: sqlite://quests.db\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("file not found", func(t *testing.T) {
		if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeTempFile(t, "config.yaml", "project: [\n")
		if _, err := LoadProjectConfig(path); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestLoadCatalogs(t *testing.T) {
	t.Run("valid catalogs load and index", func(t *testing.T) {
		path := writeTempFile(t, "catalogs.yaml", "version: 1\nskills: [perception, athletics]\nitems: [torch]\nlocations: [crypt, vault]\n")
		catalogs, err := LoadCatalogs(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !catalogs.HasSkill("perception") || catalogs.HasSkill("stealth") {
			t.Fatalf("skill index wrong")
		}
		if !catalogs.HasItem("torch") || !catalogs.HasLocation("vault") {
			t.Fatalf("item/location index wrong")
		}
	})

	t.Run("duplicate entry", func(t *testing.T) {
		path := writeTempFile(t, "catalogs.yaml", "version: 1\nskills: [perception, perception]\n")
		if _, err := LoadCatalogs(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("empty entry", func(t *testing.T) {
		path := writeTempFile(t, "catalogs.yaml", "version: 1\nitems: [\"\"]\n")
		if _, err := LoadCatalogs(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("nil receiver lookups", func(t *testing.T) {
		var catalogs *Catalogs
		if catalogs.HasSkill("perception") {
			t.Fatalf("nil catalogs must report nothing")
		}
	})
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}
