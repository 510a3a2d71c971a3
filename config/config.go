// Package config handles seedkit's runtime configuration: command-line
// flags layered over an optional TOML file layered over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/kardashev-net/seedkit/pkg/dictionary"
)

// Config holds runtime settings for the seedkit CLI.
type Config struct {
	// DataDir is the root directory for seedkit state.
	DataDir string `toml:"datadir"`

	// Dictionary settings. When WordlistFile is empty the built-in word
	// list is used and PrefixLen is ignored.
	WordlistFile string `toml:"wordlist"`
	PrefixLen    int    `toml:"prefix_len"`

	// Logging
	Log LogConfig `toml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	JSON  bool   `toml:"json"`
	File  string `toml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		DataDir:   DefaultDataDir(),
		PrefixLen: dictionary.DefaultPrefixLen,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
//	Linux:   ~/.seedkit
//	macOS:   ~/Library/Application Support/Seedkit
//	Windows: %APPDATA%\Seedkit
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".seedkit"
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Seedkit")
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData != "" {
			return filepath.Join(appData, "Seedkit")
		}
		return filepath.Join(home, "AppData", "Roaming", "Seedkit")
	default:
		return filepath.Join(home, ".seedkit")
	}
}

// ConfigFile returns the config file path inside the data directory.
func (c *Config) ConfigFile() string {
	return filepath.Join(c.DataDir, "seedkit.toml")
}

// KeystoreDir returns the directory holding encrypted seed files.
func (c *Config) KeystoreDir() string {
	return filepath.Join(c.DataDir, "keystore")
}

// Dictionary builds the dictionary the config points at: the word list file
// when one is configured, the built-in list otherwise.
func (c *Config) Dictionary() (*dictionary.Dictionary, error) {
	if c.WordlistFile == "" {
		return dictionary.Default(), nil
	}
	return dictionary.LoadFile(c.WordlistFile, c.PrefixLen)
}

// Validate checks the config for obvious operator mistakes.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if cfg.DataDir == "" {
		return fmt.Errorf("datadir must not be empty")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error")
	}
	if cfg.WordlistFile != "" && cfg.PrefixLen < 1 {
		return fmt.Errorf("prefix_len must be positive when a word list file is set")
	}
	return nil
}
