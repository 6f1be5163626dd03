package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override (LINKDIR_PAGE_SIZE, ...)
const EnvPrefix = "LINKDIR"

// Scroll holds the infinite scroll timings
type Scroll struct {
	Delay    time.Duration // Sentinel visible -> load
	Cooldown time.Duration // Minimum gap between loads
	Margin   int           // Rows below the viewport that count as visible
}

// Reveal holds the staggered card entrance timings
type Reveal struct {
	Base     time.Duration
	Step     time.Duration
	MaxIndex int
}

// Log holds logger settings
type Log struct {
	File  string // Empty discards logs
	Level string
}

// Config is the resolved application configuration
type Config struct {
	Source   string // Dataset path; empty uses the embedded dataset
	PageSize int
	Locale   string
	Scroll   Scroll
	Reveal   Reveal
	Log      Log
}

// SetDefaults registers every default on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("source", "")
	v.SetDefault("page_size", 12)
	v.SetDefault("locale", "es")
	v.SetDefault("scroll.delay", 100*time.Millisecond)
	v.SetDefault("scroll.cooldown", 500*time.Millisecond)
	v.SetDefault("scroll.margin", 3)
	v.SetDefault("reveal.base", 100*time.Millisecond)
	v.SetDefault("reveal.step", 50*time.Millisecond)
	v.SetDefault("reveal.max_index", 20)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load reads configuration from path, or from the default location when
// path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return FromViper(v), nil
}

// FromViper resolves a Config from an already populated viper instance
func FromViper(v *viper.Viper) *Config {
	return &Config{
		Source:   ExpandHome(v.GetString("source")),
		PageSize: v.GetInt("page_size"),
		Locale:   v.GetString("locale"),
		Scroll: Scroll{
			Delay:    v.GetDuration("scroll.delay"),
			Cooldown: v.GetDuration("scroll.cooldown"),
			Margin:   v.GetInt("scroll.margin"),
		},
		Reveal: Reveal{
			Base:     v.GetDuration("reveal.base"),
			Step:     v.GetDuration("reveal.step"),
			MaxIndex: v.GetInt("reveal.max_index"),
		},
		Log: Log{
			File:  ExpandHome(v.GetString("log.file")),
			Level: v.GetString("log.level"),
		},
	}
}

// DefaultDir returns $XDG_CONFIG_HOME/linkdir, falling back to ~/.config/linkdir
func DefaultDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "linkdir")
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
