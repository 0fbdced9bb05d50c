package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse(nil, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != DefaultFrontend {
		t.Errorf("expected frontend %q, got %q", DefaultFrontend, cfg.Frontend)
	}
	if cfg.SfxDir != "sfx" {
		t.Errorf("expected sfx dir 'sfx', got %q", cfg.SfxDir)
	}
	if cfg.Mute || cfg.LegacyInput || cfg.Debug {
		t.Errorf("expected boolean options off, got %+v", cfg)
	}
	if cfg.LogPath != DefaultLogPath {
		t.Errorf("expected log path %q, got %q", DefaultLogPath, cfg.LogPath)
	}
}

func TestParse_CustomOptions(t *testing.T) {
	args := []string{"--frontend", "window", "--sfx", "/tmp/sfx", "--mute", "--legacy-input", "--debug", "--log", "pong.log"}
	cfg, err := parse(args, Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Config{
		Frontend:    FrontendWindow,
		SfxDir:      "/tmp/sfx",
		Mute:        true,
		LegacyInput: true,
		Debug:       true,
		LogPath:     "pong.log",
	}
	if *cfg != want {
		t.Errorf("expected %+v, got %+v", want, *cfg)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad frontend", []string{"--frontend", "gtk"}},
		{"unknown flag", []string{"--server"}},
		{"stray argument", []string{"extra"}},
		{"debug without log", []string{"--debug", "--log", ""}},
	}

	for _, tt := range tests {
		if _, err := parse(tt.args, Default()); err == nil {
			t.Errorf("%s: expected error for %v", tt.name, tt.args)
		}
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvFrontend, "window")
	t.Setenv(EnvSfxDir, "")
	t.Setenv(EnvMute, "true")
	t.Setenv(EnvDebug, "1")
	t.Setenv(EnvLogPath, "/var/log/pong.log")

	cfg, err := FromEnv(Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendWindow {
		t.Errorf("expected frontend %q, got %q", FrontendWindow, cfg.Frontend)
	}
	if cfg.SfxDir != "" {
		t.Errorf("expected empty sfx dir, got %q", cfg.SfxDir)
	}
	if !cfg.Mute || !cfg.Debug {
		t.Errorf("expected mute and debug on, got %+v", cfg)
	}
	if cfg.LogPath != "/var/log/pong.log" {
		t.Errorf("expected log path from env, got %q", cfg.LogPath)
	}
}

func TestFromEnv_BadBool(t *testing.T) {
	t.Setenv(EnvMute, "loud")

	if _, err := FromEnv(Default()); err == nil {
		t.Error("expected error for non-boolean PONG_MUTE")
	}
}

func TestLoad_DotEnvThenFlags(t *testing.T) {
	dir := t.TempDir()
	env := "PONG_FRONTEND=window\nPONG_MUTE=true\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	// Registered so the variables loaded from .env are restored after the test
	t.Setenv(EnvFrontend, "")
	t.Setenv(EnvMute, "")
	os.Unsetenv(EnvFrontend)
	os.Unsetenv(EnvMute)

	cfg, err := Load([]string{"--mute=false"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendWindow {
		t.Errorf("expected frontend from .env, got %q", cfg.Frontend)
	}
	if cfg.Mute {
		t.Error("expected --mute=false to override .env")
	}
}

func TestLoad_WithoutDotEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Load(nil); err != nil {
		t.Fatalf("unexpected error without .env: %v", err)
	}
}
