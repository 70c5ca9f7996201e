package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestConfigDirEnv(t *testing.T) {
	t.Setenv("MINO_CONFIG_HOME", "/tmp/mino-config")
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/mino-config" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/mino-config")
	}

	t.Setenv("MINO_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	dir, err = ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir error: %v", err)
	}
	if dir != "/tmp/xdg/mino" {
		t.Fatalf("ConfigDir = %q, want %q", dir, "/tmp/xdg/mino")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("MINO_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.TabStop != 4 {
		t.Fatalf("TabStop = %d, want 4", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitTimes != 2 {
		t.Fatalf("QuitTimes = %d, want 2", cfg.Editor.QuitTimes)
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINO_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
tab-stop = 8
quit-times = 1
line-numbers = "off"

[theme]
foreground = "#111111"
syntax-keyword = "#abcdef"
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.TabStop != 8 {
		t.Fatalf("TabStop = %d, want 8", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitTimes != 1 {
		t.Fatalf("QuitTimes = %d, want 1", cfg.Editor.QuitTimes)
	}
	if cfg.Editor.LineNumbers != "off" {
		t.Fatalf("LineNumbers = %q, want %q", cfg.Editor.LineNumbers, "off")
	}
	if cfg.Theme.Foreground != "#111111" {
		t.Fatalf("Foreground = %q, want %q", cfg.Theme.Foreground, "#111111")
	}
	if cfg.Theme.SyntaxKeyword != "#abcdef" {
		t.Fatalf("SyntaxKeyword = %q, want %q", cfg.Theme.SyntaxKeyword, "#abcdef")
	}
	// Untouched fields keep their defaults.
	if cfg.Theme.SyntaxString != Default().Theme.SyntaxString {
		t.Fatalf("SyntaxString = %q, want default", cfg.Theme.SyntaxString)
	}
	if cfg.Editor.MsgBarLife != 5 {
		t.Fatalf("MsgBarLife = %d, want 5", cfg.Editor.MsgBarLife)
	}
}

func TestLoadMalformedReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINO_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `[editor`)

	cfg, err := Load()
	if err == nil {
		t.Fatalf("expected error for malformed config")
	}
	if cfg.Editor.TabStop != 4 {
		t.Fatalf("TabStop = %d, want default 4", cfg.Editor.TabStop)
	}
}

func TestLoadZeroValuesIgnored(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("MINO_CONFIG_HOME", dir)

	writeFile(t, filepath.Join(dir, "config.toml"), `
[editor]
tab-stop = 0
quit-times = -1
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.TabStop != 4 {
		t.Fatalf("TabStop = %d, want 4", cfg.Editor.TabStop)
	}
	if cfg.Editor.QuitTimes != 2 {
		t.Fatalf("QuitTimes = %d, want 2", cfg.Editor.QuitTimes)
	}
}
