// Package config loads studentcard settings from config.yaml, environment
// variables and built-in defaults using viper.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// EnvPrefix prefixes environment overrides, e.g. STUDENTCARD_DATA_DIR
	EnvPrefix = "STUDENTCARD"

	// DefaultDBName is the logical name of the bundled seed database
	DefaultDBName = "datenbank.db"

	defaultBusyTimeoutMS = 5000
)

// Config keys
const (
	KeyDataDir       = "data_dir"
	KeyDBName        = "db_name"
	KeyExportDir     = "export_dir"
	KeyBusyTimeoutMS = "busy_timeout_ms"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyLogFile       = "log.file"
)

// Config is the resolved application configuration
type Config struct {
	DataDir       string    `mapstructure:"data_dir"`
	DBName        string    `mapstructure:"db_name"`
	ExportDir     string    `mapstructure:"export_dir"`
	BusyTimeoutMS int       `mapstructure:"busy_timeout_ms"`
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig configures the zerolog output
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// DBPath returns the full path of the working database file
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBName)
}

// BusyTimeout returns how long SQLite waits on a locked database
func (c Config) BusyTimeout() time.Duration {
	return time.Duration(c.BusyTimeoutMS) * time.Millisecond
}

// Load reads configuration with precedence env > config file > defaults.
// configFile may be empty, in which case config.yaml is looked up in
// DefaultConfigDir. A missing config file is not an error.
func Load(configFile string) (Config, error) {
	v := viper.New()

	if err := setDefaults(v); err != nil {
		return Config{}, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := DefaultConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(configDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg.normalize()
}

func setDefaults(v *viper.Viper) error {
	dataDir, err := DefaultDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	exportDir, err := DefaultExportDir()
	if err != nil {
		return fmt.Errorf("resolve export dir: %w", err)
	}

	v.SetDefault(KeyDataDir, dataDir)
	v.SetDefault(KeyDBName, DefaultDBName)
	v.SetDefault(KeyExportDir, exportDir)
	v.SetDefault(KeyBusyTimeoutMS, defaultBusyTimeoutMS)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogFile, "")
	return nil
}

func (c Config) normalize() (Config, error) {
	if c.DBName == "" || filepath.Base(c.DBName) != c.DBName {
		return Config{}, fmt.Errorf("db_name must be a plain file name, got %q", c.DBName)
	}
	if c.BusyTimeoutMS < 0 {
		return Config{}, fmt.Errorf("busy_timeout_ms must not be negative")
	}

	var err error
	if c.DataDir, err = filepath.Abs(c.DataDir); err != nil {
		return Config{}, err
	}
	if c.ExportDir, err = filepath.Abs(c.ExportDir); err != nil {
		return Config{}, err
	}
	return c, nil
}
