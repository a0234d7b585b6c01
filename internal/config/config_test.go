package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Errorf("default viewport = %dx%d, want terminal-sized", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.App.ShowFooter {
		t.Errorf("footer should default on")
	}
	if !cfg.App.Seed {
		t.Errorf("seeding should default on")
	}
	if cfg.App.Password != "" {
		t.Errorf("password should default empty")
	}
	if cfg.Logging.Trace {
		t.Errorf("trace should default off")
	}
}

func TestLoadArgsFlags(t *testing.T) {
	args := []string{"--width", "100", "--height", "40", "--footer=false", "--password", "hunter2", "--trace"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 100 || cfg.App.Height != 40 {
		t.Errorf("viewport = %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ShowFooter {
		t.Errorf("footer flag ignored")
	}
	if cfg.App.Password != "hunter2" {
		t.Errorf("password = %q", cfg.App.Password)
	}
	if !cfg.Logging.Trace {
		t.Errorf("trace flag ignored")
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	environ := []string{
		"NOTEQUARRY_WIDTH=90",
		"NOTEQUARRY_FOOTER=false",
		"NOTEQUARRY_PASSWORD=from-env",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 90 {
		t.Errorf("width = %d, want env value", cfg.App.Width)
	}
	if cfg.App.ShowFooter {
		t.Errorf("env footer ignored")
	}
	if cfg.App.Password != "from-env" {
		t.Errorf("password = %q", cfg.App.Password)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "120"}, []string{"NOTEQUARRY_WIDTH=90"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Errorf("width = %d, want the flag to win", cfg.App.Width)
	}
}

func TestMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"NOTEQUARRY_WIDTH=wide", "NOTEQUARRY_FOOTER=sure"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Errorf("width = %d, want fallback", cfg.App.Width)
	}
	if !cfg.App.ShowFooter {
		t.Errorf("footer should fall back to on")
	}
}

func TestNegativeDimensionsRejected(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Errorf("negative width accepted")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Errorf("negative height accepted")
	}
}

func TestFlagsEchoOmitsPassword(t *testing.T) {
	cfg, err := LoadArgs([]string{"--password", "secret"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	for name, value := range cfg.Flags {
		if strings.Contains(name, "password") || value == "secret" {
			t.Errorf("flag echo leaks the password via %q=%q", name, value)
		}
	}
}
