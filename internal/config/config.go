// ABOUTME: Dashboard configuration: data directory, listen address, default role, logging.
// ABOUTME: Merges defaults, a JSON config file, GALAXYDASH_* env vars, and bound flags.

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/galaxydash/internal/models"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Defaults applied before any file, env, or flag.
const (
	DefaultDataDir = "data"
	DefaultAddr    = ":8501"
	DefaultRole    = "athlete"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"data-dir":     "data_dir",
	"addr":         "addr",
	"default-role": "default_role",
	"log-file":     "log_file",
	"debug":        "debug",
}

// Config stores galaxydash configuration.
type Config struct {
	// DataDir holds the twelve dataset CSV files.
	// Supports ~ expansion for home directory. Defaults to ./data.
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	// Addr is the HTTP listen address for serve.
	Addr string `json:"addr,omitempty" mapstructure:"addr"`

	// DefaultRole is the role shown when none is selected.
	DefaultRole string `json:"default_role,omitempty" mapstructure:"default_role"`

	// LogFile, when set, receives a copy of every log line.
	LogFile string `json:"log_file,omitempty" mapstructure:"log_file"`

	Debug bool `json:"debug,omitempty" mapstructure:"debug"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to ./data.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DefaultDataDir
	}
	return ExpandPath(c.DataDir)
}

// GetAddr returns the listen address, defaulting to :8501.
func (c *Config) GetAddr() string {
	if c.Addr == "" {
		return DefaultAddr
	}
	return c.Addr
}

// GetDefaultRole parses the configured default role.
func (c *Config) GetDefaultRole() (models.Role, error) {
	if c.DefaultRole == "" {
		return models.RoleAthlete, nil
	}
	return models.ParseRole(c.DefaultRole)
}

// GetLogFile returns the log file path with ~ expanded.
func (c *Config) GetLogFile() string {
	return ExpandPath(c.LogFile)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "galaxydash", "config.json")
}

// Load merges configuration from defaults, the JSON file at path (the default
// config path when empty), GALAXYDASH_* environment variables, and any flags in
// flags that were set. A missing config file is not an error.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("default_role", DefaultRole)
	v.SetDefault("log_file", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("GALAXYDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path == "" {
		path = GetConfigPath()
	}
	path = ExpandPath(path)
	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := cfg.GetDefaultRole(); err != nil {
		return nil, fmt.Errorf("invalid default_role: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
