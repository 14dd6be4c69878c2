// Package config handles application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/rjdinis/mqlpath/internal/types"
)

const (
	// EnvPrefix is prepended to every environment variable key.
	EnvPrefix = "MQLPATH"
	// ConfigFileName is the config file base name, without extension.
	ConfigFileName = "config"
)

// Config holds all application configuration
type Config struct {
	// Flags
	Quiet bool `mapstructure:"quiet"`
	Debug bool `mapstructure:"debug"`

	// Environment
	PassThroughWSL bool   `mapstructure:"wsl"`
	HostName       string `mapstructure:"host"`
	WinePrefix     string `mapstructure:"wine_prefix"`

	// Context overrides
	WSLDistro string `mapstructure:"wsl_distro"`
	WineUser  string `mapstructure:"wine_user"`

	// Output format: table, json, yaml or toml
	Output string `mapstructure:"output"`

	// File the configuration was read from, empty when none
	File string `mapstructure:"-"`
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		HostName:   "auto",
		WinePrefix: ".wine",
		Output:     "table",
	}
}

// Load loads configuration from defaults, an optional config file and the
// environment, in increasing order of precedence.
func Load() (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("quiet", defaults.Quiet)
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("wsl", defaults.PassThroughWSL)
	v.SetDefault("host", defaults.HostName)
	v.SetDefault("wine_prefix", defaults.WinePrefix)
	v.SetDefault("wsl_distro", defaults.WSLDistro)
	v.SetDefault("wine_user", defaults.WineUser)
	v.SetDefault("output", defaults.Output)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	file := os.Getenv(EnvPrefix + "_CONFIG")
	if file != "" {
		v.SetConfigFile(file)
	} else if dir, err := ConfigDir(); err == nil {
		v.SetConfigName(ConfigFileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Output = strings.ToLower(cfg.Output)

	if _, err := types.ParseHost(cfg.HostName, runtime.GOOS); err != nil {
		return nil, fmt.Errorf("invalid %s_HOST: %w", EnvPrefix, err)
	}

	return &cfg, nil
}

// ConfigDir returns the directory searched for the config file.
func ConfigDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "mqlpath"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "mqlpath"), nil
}

// Host returns the host environment, resolving "auto" from the running OS.
func (c *Config) Host() types.HostEnvironment {
	h, err := types.ParseHost(c.HostName, runtime.GOOS)
	if err != nil {
		return types.HostFromGOOS(runtime.GOOS)
	}
	return h
}

func (c *Config) SetQuiet(v bool)          { c.Quiet = v }
func (c *Config) SetDebug(v bool)          { c.Debug = v }
func (c *Config) SetPassThroughWSL(v bool) { c.PassThroughWSL = v }
func (c *Config) SetHostName(v string)     { c.HostName = v }
func (c *Config) SetWinePrefix(v string)   { c.WinePrefix = v }
func (c *Config) SetWSLDistro(v string)    { c.WSLDistro = v }
func (c *Config) SetWineUser(v string)     { c.WineUser = v }
func (c *Config) SetOutput(v string)       { c.Output = strings.ToLower(v) }
