// Package config loads quadro settings from defaults, a TOML file, the
// environment and command-line flags, in increasing priority.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultStorageKey = "tasks"
	DefaultLocale     = "pt-BR"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config holds quadro settings.
type Config struct {
	DBPath     string `toml:"db_path"`
	LogFile    string `toml:"log_file"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	Locale     string `toml:"locale"`
	StorageKey string `toml:"storage_key"`

	// ConfigFile is the TOML file that was read, if any.
	ConfigFile string `toml:"-"`
}

func setDefaults(cfg *Config) {
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.Locale = DefaultLocale
	cfg.StorageKey = DefaultStorageKey
}

// DefaultFile returns the user config file location.
func DefaultFile() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "quadro", "config.toml")
}

// Load builds the configuration. Flags are registered on flags and parsed from
// args; a -config flag or QUADRO_CONFIG selects the TOML file.
func Load(flags *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	flagged := &Config{}
	var configFile string
	flags.StringVar(&configFile, "config", "", "path to the TOML config file")
	flags.StringVar(&flagged.DBPath, "db", "", "path to the SQLite database")
	flags.StringVar(&flagged.LogFile, "log-file", "", "path to the log file")
	flags.StringVar(&flagged.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&flagged.LogFormat, "log-format", "", "log format (text, json, logfmt)")
	flags.StringVar(&flagged.Locale, "locale", "", "interface language (pt-BR, en)")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if configFile == "" {
		configFile = os.Getenv("QUADRO_CONFIG")
	}
	explicit := configFile != ""
	if !explicit {
		configFile = DefaultFile()
	}
	if configFile != "" {
		if err := loadFile(cfg, configFile); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("loading config file %s: %w", configFile, err)
			}
		} else {
			cfg.ConfigFile = configFile
		}
	}

	loadFromEnv(cfg)

	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "db":
			cfg.DBPath = flagged.DBPath
		case "log-file":
			cfg.LogFile = flagged.LogFile
		case "log-level":
			cfg.LogLevel = flagged.LogLevel
		case "log-format":
			cfg.LogFormat = flagged.LogFormat
		case "locale":
			cfg.Locale = flagged.Locale
		}
	})

	if cfg.StorageKey == "" {
		cfg.StorageKey = DefaultStorageKey
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

func loadFromEnv(cfg *Config) {
	for env, field := range map[string]*string{
		"QUADRO_DB_PATH":     &cfg.DBPath,
		"QUADRO_LOG_FILE":    &cfg.LogFile,
		"QUADRO_LOG_LEVEL":   &cfg.LogLevel,
		"QUADRO_LOG_FORMAT":  &cfg.LogFormat,
		"QUADRO_LOCALE":      &cfg.Locale,
		"QUADRO_STORAGE_KEY": &cfg.StorageKey,
	} {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}
}
