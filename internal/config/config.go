// Package config handles the XDG configuration directory, the optional
// config.toml file and environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional settings filename inside Dir.
	ConfigFile = "config.toml"

	// DefaultEnvFile is the dotenv file read from the working directory.
	DefaultEnvFile = ".env"
)

// Environment variables consulted after config.toml.
const (
	EnvLogLevel  = "TODO_LOG_LEVEL"
	EnvLogFormat = "TODO_LOG_FORMAT"
	EnvNoColor   = "NO_COLOR"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging regardless of LogLevel.
	Debug bool

	// Quiet suppresses confirmations and the farewell message.
	Quiet bool

	// NoColor disables ANSI colors in console output.
	NoColor bool

	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is one of text, json, logfmt.
	LogFormat string
}

// fileConfig mirrors config.toml. Pointers distinguish unset from false.
type fileConfig struct {
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	Quiet     *bool  `toml:"quiet"`
	Color     *bool  `toml:"color"`
}

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"text": true, "json": true, "logfmt": true}
)

// New creates a new Config with defaults and the default or specified config
// directory. If configDir is empty, uses XDG_CONFIG_HOME/todo or
// $HOME/.config/todo. Nothing is read from disk.
func New(configDir string) (*Config, error) {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:       dir,
		LogLevel:  "info",
		LogFormat: "text",
	}, nil
}

// Load builds a Config from defaults, Dir/config.toml, ./.env and the process
// environment, in that order of increasing priority.
func Load(configDir string) (*Config, error) {
	return LoadFrom(configDir, DefaultEnvFile)
}

// LoadFrom is Load with an explicit dotenv path. An empty envFile skips
// dotenv loading.
func LoadFrom(configDir, envFile string) (*Config, error) {
	cfg, err := New(configDir)
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(); err != nil {
		return nil, err
	}

	if envFile != "" {
		// Missing file is fine, existing variables win over the file
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}
	cfg.loadEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// ConfigPath returns the path to config.toml.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasConfigFile checks if config.toml exists.
func (c *Config) HasConfigFile() bool {
	_, err := os.Stat(c.ConfigPath())
	return err == nil
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}
	if !validFormats[c.LogFormat] {
		return fmt.Errorf("invalid log format: %q", c.LogFormat)
	}
	return nil
}

func (c *Config) loadFile() error {
	if !c.HasConfigFile() {
		return nil
	}

	var fc fileConfig
	md, err := toml.DecodeFile(c.ConfigPath(), &fc)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", c.ConfigPath(), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("parsing %s: unknown key: %s", c.ConfigPath(), undecoded[0])
	}

	if fc.LogLevel != "" {
		c.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.LogFormat != "" {
		c.LogFormat = strings.ToLower(fc.LogFormat)
	}
	if fc.Quiet != nil {
		c.Quiet = *fc.Quiet
	}
	if fc.Color != nil {
		c.NoColor = !*fc.Color
	}
	return nil
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = strings.ToLower(v)
	}
	// https://no-color.org: any non-empty value disables color
	if os.Getenv(EnvNoColor) != "" {
		c.NoColor = true
	}
}
