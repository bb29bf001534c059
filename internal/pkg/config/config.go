// Package config centralizes run configuration, merged from flags,
// environment variables, and an optional config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all configuration for our program, parsed from various sources.
// The `mapstructure` tags are used to map the fields to the viper configuration.
type Config struct {
	Job string `mapstructure:"job"`

	// Resolution
	RootDir         string `mapstructure:"root-dir"`
	BaseURL         string `mapstructure:"base-url"`
	FallbackBaseURL string `mapstructure:"fallback-base-url"`

	// Checking
	UserAgent    string   `mapstructure:"user-agent"`
	WorkersCount int      `mapstructure:"workers"`
	MaxRetry     int      `mapstructure:"max-retry"`
	HTTPTimeout  int      `mapstructure:"http-timeout"`
	Offline      bool     `mapstructure:"offline"`
	Exclude      []string `mapstructure:"exclude"`

	// Logging
	LogLevel string `mapstructure:"log-level"`
	JSON     bool   `mapstructure:"json"`
	NoColor  bool   `mapstructure:"no-color"`

	// Prometheus and metrics
	Prometheus       bool   `mapstructure:"prometheus"`
	PrometheusPrefix string `mapstructure:"prometheus-prefix"`
	APIPort          int    `mapstructure:"api-port"`

	Inputs           []string         // Special field to store the input arguments
	ExclusionRegexes []*regexp.Regexp // Special field to store the compiled --exclude patterns
}

var (
	config *Config
	once   sync.Once
)

// InitConfig initializes the configuration.
// Flags -> Env -> Config file, latest has precedence over the rest.
func InitConfig() error {
	var err error
	once.Do(func() {
		config = &Config{}

		// Check if a config file is provided via flag
		if configFile := viper.GetString("config-file"); configFile != "" {
			viper.SetConfigFile(configFile)
		} else {
			home, homeErr := os.UserHomeDir()
			if homeErr != nil {
				fmt.Println(homeErr)
				os.Exit(1)
			}

			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName("linkrot-config")
		}

		viper.SetEnvPrefix("LINKROT")
		replacer := strings.NewReplacer("-", "_", ".", "_")
		viper.SetEnvKeyReplacer(replacer)
		viper.AutomaticEnv()

		if err = viper.ReadInConfig(); err == nil {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}

		// Unmarshal the config into the Config struct
		err = viper.Unmarshal(config)
	})
	return err
}

// BindFlags binds the flags to the viper configuration.
// This is needed because viper doesn't support same flag name accross multiple commands.
// Details here: https://github.com/spf13/viper/issues/375#issuecomment-794668149
func BindFlags(flagSet *pflag.FlagSet) {
	flagSet.VisitAll(func(flag *pflag.Flag) {
		viper.BindPFlag(flag.Name, flag)
	})
}

// Get returns the config struct
func Get() *Config {
	return config
}

// GenerateRunConfig validates and derives the effective run settings.
func GenerateRunConfig() error {
	// If the job name isn't specified, we generate a random name
	if config.Job == "" {
		UUID, err := uuid.NewUUID()
		if err != nil {
			return err
		}
		config.Job = UUID.String()
	}

	if config.UserAgent == "" {
		config.UserAgent = "linkrot"
	}

	if config.WorkersCount < 1 {
		config.WorkersCount = 1
	}

	if err := validateBaseValue(config.BaseURL, "--base-url"); err != nil {
		return err
	}
	if err := validateBaseValue(config.FallbackBaseURL, "--fallback-base-url"); err != nil {
		return err
	}
	if config.RootDir != "" && !filepath.IsAbs(config.RootDir) {
		abs, err := filepath.Abs(config.RootDir)
		if err != nil {
			return err
		}
		config.RootDir = abs
	}

	return config.CompileExclusions()
}

// CompileExclusions compiles the --exclude patterns.
func (c *Config) CompileExclusions() error {
	c.ExclusionRegexes = nil
	for _, pattern := range c.Exclude {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return fmt.Errorf("invalid --exclude pattern %q: %w", pattern, err)
		}
		c.ExclusionRegexes = append(c.ExclusionRegexes, compiled)
	}
	return nil
}

// validateBaseValue accepts either a fetchable URL or an absolute
// local path.
func validateBaseValue(value, flag string) error {
	if value == "" {
		return nil
	}
	if govalidator.IsRequestURL(value) || filepath.IsAbs(value) {
		return nil
	}
	return fmt.Errorf("%s must be a valid URL or an absolute path, got %q", flag, value)
}
