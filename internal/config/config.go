// Package config resolves docsh settings from defaults, a TOML file,
// DOCSH_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "docsh"
	// EnvPrefix prefixes every environment override, e.g. DOCSH_SOURCE_URL.
	EnvPrefix = "DOCSH"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"

	// DefaultSourceURL serves the documents of the embedded manifest.
	DefaultSourceURL = "https://raw.githubusercontent.com/brettsmith212/amp-owners-manual/main"
)

// Config is the resolved configuration.
type Config struct {
	// Manifest is a path to a TOML tree definition. Empty selects the
	// embedded manifest.
	Manifest string       `mapstructure:"manifest"`
	Source   SourceConfig `mapstructure:"source"`
	Search   SearchConfig `mapstructure:"search"`
	Log      LogConfig    `mapstructure:"log"`
	UI       UIConfig     `mapstructure:"ui"`
}

// SourceConfig selects where document text comes from. Dir, when set, takes
// precedence over URL.
type SourceConfig struct {
	URL     string        `mapstructure:"url"`
	Dir     string        `mapstructure:"dir"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type SearchConfig struct {
	MaxResults int `mapstructure:"max_results"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type UIConfig struct {
	LineMode bool   `mapstructure:"line_mode"`
	Prompt   string `mapstructure:"prompt"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Timeout: 30 * time.Second,
		},
		Search: SearchConfig{MaxResults: 10},
		Log:    LogConfig{Level: "info"},
		UI:     UIConfig{Prompt: "root@amp:"},
	}
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"manifest":   "manifest",
	"source-url": "source.url",
	"source-dir": "source.dir",
	"log-level":  "log.level",
	"log-file":   "log.file",
	"line-mode":  "ui.line_mode",
}

// LoadOptions controls where Load looks.
type LoadOptions struct {
	// ConfigFile is an explicit config path; it must exist.
	ConfigFile string
	// ConfigDir overrides the platform config directory.
	ConfigDir string
	// Flags, when set, override file and environment values for the flags
	// the user actually passed.
	Flags *pflag.FlagSet
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
}

// Dir returns $XDG_CONFIG_HOME/docsh, falling back to ~/.config/docsh.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// Load resolves the configuration. It returns the config file that was read,
// or "" when none was found.
func Load(opts LoadOptions) (*Config, string, error) {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType(ConfigFileExt)

	defaults := Default()
	v.SetDefault("manifest", defaults.Manifest)
	v.SetDefault("source.url", defaults.Source.URL)
	v.SetDefault("source.dir", defaults.Source.Dir)
	v.SetDefault("source.timeout", defaults.Source.Timeout)
	v.SetDefault("search.max_results", defaults.Search.MaxResults)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.file", defaults.Log.File)
	v.SetDefault("ui.line_mode", defaults.UI.LineMode)
	v.SetDefault("ui.prompt", defaults.UI.Prompt)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := configPath(fs, opts)
	if err != nil {
		return nil, "", err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, "", fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, path, nil
}

func configPath(fs afero.Fs, opts LoadOptions) (string, error) {
	if opts.ConfigFile != "" {
		ok, err := afero.Exists(fs, opts.ConfigFile)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("config file not found: %s", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}

	dir := opts.ConfigDir
	if dir == "" {
		d, err := Dir()
		if err != nil {
			return "", nil
		}
		dir = d
	}
	candidate := filepath.Join(dir, ConfigFileName+"."+ConfigFileExt)
	if ok, _ := afero.Exists(fs, candidate); ok {
		return candidate, nil
	}
	return "", nil
}

// Validate checks values that decoding cannot.
func (c *Config) Validate() error {
	var errs []error
	if c.Source.URL == "" && c.Source.Dir == "" {
		errs = append(errs, errors.New("source: one of url or dir is required"))
	}
	if c.Source.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("source.timeout must be positive, got %s", c.Source.Timeout))
	}
	if c.Search.MaxResults <= 0 {
		errs = append(errs, fmt.Errorf("search.max_results must be positive, got %d", c.Search.MaxResults))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level, defaulting to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
