package config

// Flags holds the command-line flag values scanned by the CLI. Zero values
// mean the flag was not passed.
type Flags struct {
	Config    string
	DataDir   string
	Wordlist  string
	PrefixLen int
	LogLevel  string
	LogJSON   bool
}

// ApplyFlags overlays explicitly passed flags onto cfg. Precedence is
// defaults, then the config file, then flags (highest).
func ApplyFlags(cfg *Config, flags *Flags) {
	if flags.DataDir != "" {
		cfg.DataDir = flags.DataDir
	}
	if flags.Wordlist != "" {
		cfg.WordlistFile = flags.Wordlist
	}
	if flags.PrefixLen > 0 {
		cfg.PrefixLen = flags.PrefixLen
	}
	if flags.LogLevel != "" {
		cfg.Log.Level = flags.LogLevel
	}
	if flags.LogJSON {
		cfg.Log.JSON = true
	}
}
