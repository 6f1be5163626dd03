package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := FromViper(v)

	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}
	if cfg.PageSize != 12 {
		t.Errorf("PageSize = %d, want 12", cfg.PageSize)
	}
	if cfg.Locale != "es" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "es")
	}
	if cfg.Scroll.Delay != 100*time.Millisecond {
		t.Errorf("Scroll.Delay = %v, want 100ms", cfg.Scroll.Delay)
	}
	if cfg.Scroll.Cooldown != 500*time.Millisecond {
		t.Errorf("Scroll.Cooldown = %v, want 500ms", cfg.Scroll.Cooldown)
	}
	if cfg.Reveal.Step != 50*time.Millisecond || cfg.Reveal.MaxIndex != 20 {
		t.Errorf("Reveal = %+v", cfg.Reveal)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("page_size", 20)
	v.Set("scroll.cooldown", "1s")
	v.Set("locale", "en")

	cfg := FromViper(v)

	if cfg.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", cfg.PageSize)
	}
	if cfg.Scroll.Cooldown != time.Second {
		t.Errorf("Scroll.Cooldown = %v, want 1s", cfg.Scroll.Cooldown)
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want en", cfg.Locale)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "linkdir.yaml")
	content := "source: /data/links.yaml\npage_size: 6\nscroll:\n  margin: 5\nlog:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Source != "/data/links.yaml" {
		t.Errorf("Source = %q", cfg.Source)
	}
	if cfg.PageSize != 6 {
		t.Errorf("PageSize = %d, want 6", cfg.PageSize)
	}
	if cfg.Scroll.Margin != 5 {
		t.Errorf("Scroll.Margin = %d, want 5", cfg.Scroll.Margin)
	}
	if cfg.Scroll.Delay != 100*time.Millisecond {
		t.Errorf("unset keys should keep defaults, Scroll.Delay = %v", cfg.Scroll.Delay)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing explicit config file")
	}
}

func TestLoadWithoutDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PageSize != 12 {
		t.Errorf("PageSize = %d, want 12", cfg.PageSize)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("LINKDIR_PAGE_SIZE", "30")
	t.Setenv("LINKDIR_SCROLL_DELAY", "250ms")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.PageSize != 30 {
		t.Errorf("PageSize = %d, want 30", cfg.PageSize)
	}
	if cfg.Scroll.Delay != 250*time.Millisecond {
		t.Errorf("Scroll.Delay = %v, want 250ms", cfg.Scroll.Delay)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandHome("~/links.yaml"); got != filepath.Join(home, "links.yaml") {
		t.Errorf("ExpandHome() = %q", got)
	}
	if got := ExpandHome("/abs/links.yaml"); got != "/abs/links.yaml" {
		t.Errorf("ExpandHome() = %q", got)
	}
}
