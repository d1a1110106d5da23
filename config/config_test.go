package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Extension != ".gd" {
		t.Errorf("Extension = %q, want .gd", cfg.Extension)
	}
	if len(cfg.Exclude) != 0 {
		t.Errorf("Exclude = %v, want empty", cfg.Exclude)
	}
	if cfg.Watch.Debounce() != 100*time.Millisecond {
		t.Errorf("Debounce() = %v, want 100ms", cfg.Watch.Debounce())
	}
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yml")
	body := "extension: .gdscript\nexclude:\n  - addons\n  - .import\nwatch:\n  debounce_ms: 250\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".gdscript" {
		t.Errorf("Extension = %q, want .gdscript", cfg.Extension)
	}
	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "addons" || cfg.Exclude[1] != ".import" {
		t.Errorf("Exclude = %v", cfg.Exclude)
	}
	if cfg.Watch.Debounce() != 250*time.Millisecond {
		t.Errorf("Debounce() = %v, want 250ms", cfg.Watch.Debounce())
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatal("explicit missing file should fail")
	}
}

// chdir changes the working directory for the duration of the test.
// It replaces t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadFallsBackWhenNoDefaultFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".gd" {
		t.Errorf("Extension = %q, want default", cfg.Extension)
	}
}

func TestLoadFindsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, DefaultFile), []byte("extension: .txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".txt" {
		t.Errorf("Extension = %q, want .txt", cfg.Extension)
	}
}

func TestLoadRestoresEmptyFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("exclude: [addons]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Extension != ".gd" {
		t.Errorf("Extension = %q, want default", cfg.Extension)
	}
	if cfg.Watch.DebounceMillis != 100 {
		t.Errorf("DebounceMillis = %d, want default", cfg.Watch.DebounceMillis)
	}
}

func TestLoadBadYAMLFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed yaml should fail")
	}
}
