package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kardashev-net/seedkit/pkg/dictionary"
)

func TestDefaultValidates(t *testing.T) {
	if err := Validate(Default()); err != nil {
		t.Errorf("Default() should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"default", func(*Config) {}, true},
		{"empty datadir", func(c *Config) { c.DataDir = "" }, false},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, false},
		{"debug level", func(c *Config) { c.Log.Level = "debug" }, true},
		{"wordlist without prefix", func(c *Config) {
			c.WordlistFile = "words.txt"
			c.PrefixLen = 0
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.valid && err != nil {
				t.Errorf("Validate() error: %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("Validate() should fail")
			}
		})
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) should fail")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedkit.toml")
	data := `
datadir = "/tmp/seedkit-test"

[log]
level = "debug"
json = true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.DataDir != "/tmp/seedkit-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Log.Level != "debug" || !cfg.Log.JSON {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := Default()
	if err := LoadFile(cfg, filepath.Join(t.TempDir(), "absent.toml")); err != nil {
		t.Errorf("missing config file should not be an error: %v", err)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedkit.toml")
	if err := os.WriteFile(path, []byte("blorp = 1\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(Default(), path); err == nil {
		t.Error("unknown keys should be rejected")
	}
}

// TestFlagPrecedence loads a config file and then applies flags, checking
// that an explicitly passed flag beats the file while file values still
// beat defaults for flags that were not passed.
func TestFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seedkit.toml")
	data := `
datadir = "/from-file"

[log]
level = "warn"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Default()
	if err := LoadFile(cfg, path); err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	ApplyFlags(cfg, &Flags{DataDir: "/from-flag", LogJSON: true})

	if cfg.DataDir != "/from-flag" {
		t.Errorf("file value overrode the flag: DataDir = %q", cfg.DataDir)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want the file value %q", cfg.Log.Level, "warn")
	}
	if !cfg.Log.JSON {
		t.Error("Log.JSON flag was not applied")
	}
}

func TestApplyFlags_ZeroValuesIgnored(t *testing.T) {
	cfg := Default()
	want := *cfg
	ApplyFlags(cfg, &Flags{})
	if *cfg != want {
		t.Errorf("unset flags changed the config: %+v", *cfg)
	}
}

func TestConfigFile(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	if got := cfg.ConfigFile(); got != filepath.Join("/data", "seedkit.toml") {
		t.Errorf("ConfigFile() = %q", got)
	}
}

func TestDictionary(t *testing.T) {
	cfg := Default()
	d, err := cfg.Dictionary()
	if err != nil {
		t.Fatalf("Dictionary() error: %v", err)
	}
	if d != dictionary.Default() {
		t.Error("without a word list file the built-in dictionary should be returned")
	}

	cfg.WordlistFile = filepath.Join(t.TempDir(), "missing.txt")
	if _, err := cfg.Dictionary(); err == nil {
		t.Error("a missing word list file should be an error")
	}
}

func TestKeystoreDir(t *testing.T) {
	cfg := Default()
	cfg.DataDir = "/data"
	if got := cfg.KeystoreDir(); got != filepath.Join("/data", "keystore") {
		t.Errorf("KeystoreDir() = %q", got)
	}
}
