package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirHonorsHomeOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("MKBPF_HOME", tmp)

	if got := Dir(); got != tmp {
		t.Errorf("Dir() = %q, want %q", got, tmp)
	}
	if got := FilePath(); got != filepath.Join(tmp, "config.yaml") {
		t.Errorf("FilePath() = %q", got)
	}
}

func TestSetAndReload(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("MKBPF_HOME", filepath.Join(tmp, "home"))

	cfg := mustLoad(t)
	if err := cfg.Set(KeyBugAddress, "bugs@example.com"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if err := cfg.Set(KeyUnchecked, "true"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "bugs@example.com") {
		t.Errorf("config file missing value:\n%s", data)
	}

	reloaded := mustLoad(t)
	if got := reloaded.Get(KeyBugAddress); got != "bugs@example.com" {
		t.Errorf("Get(bug_address) = %q, want %q", got, "bugs@example.com")
	}
	if !reloaded.GetBool(KeyUnchecked) {
		t.Error("GetBool(unchecked) = false, want true")
	}
}

func TestSetUnknownKey(t *testing.T) {
	t.Setenv("MKBPF_HOME", t.TempDir())

	err := mustLoad(t).Set("colour", "blue")
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(FilePath()); !os.IsNotExist(statErr) {
		t.Error("config file should not be created for an unknown key")
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("MKBPF_HOME", t.TempDir())
	if err := mustLoad(t).Set(KeyOutputDir, "/from/file"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MKBPF_OUTPUT_DIR", "/from/env")

	if got := mustLoad(t).Get(KeyOutputDir); got != "/from/env" {
		t.Errorf("Get(output_dir) = %q, want %q", got, "/from/env")
	}
}

func TestUnsetValuesAreEmpty(t *testing.T) {
	t.Setenv("MKBPF_HOME", t.TempDir())

	cfg := mustLoad(t)
	if got := cfg.Get(KeyAppVersion); got != "" {
		t.Errorf("Get(app_version) = %q, want empty", got)
	}
	if cfg.GetBool(KeyUnchecked) {
		t.Error("GetBool(unchecked) = true, want false")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	t.Setenv("MKBPF_HOME", t.TempDir())
	if err := EnsureDir(); err != nil {
		t.Fatal(err)
	}
	const broken = "bug_address: a@b.c\noutput_dir: [unterminated\n"
	if err := os.WriteFile(FilePath(), []byte(broken), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for a config file that does not parse")
	} else if !strings.Contains(err.Error(), FilePath()) {
		t.Errorf("error %q does not name the config file", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != broken {
		t.Errorf("config file was modified:\n%s", data)
	}
}

func TestLoadUnreadableFile(t *testing.T) {
	t.Setenv("MKBPF_HOME", t.TempDir())
	// A directory where the file should be cannot be read as YAML.
	if err := os.MkdirAll(FilePath(), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error when the config path is a directory")
	}
}

func TestKeysSorted(t *testing.T) {
	keys := Keys()
	want := []string{KeyAppVersion, KeyBugAddress, KeyOutputDir, KeyUnchecked}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
		if Describe(keys[i]) == "" {
			t.Errorf("Describe(%q) is empty", keys[i])
		}
	}
}

func mustLoad(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return cfg
}
