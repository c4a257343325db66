// Package config loads the CLI configuration from defaults, an optional YAML file and BITPAPER_* env vars.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. BITPAPER_LOGGER_LEVEL
const EnvPrefix = "BITPAPER"

type LoggerConfig struct {
	Level              string `mapstructure:"level" json:"level"`
	PrettyPrintConsole bool   `mapstructure:"pretty_print_console" json:"prettyPrintConsole"`
	Caller             bool   `mapstructure:"caller" json:"caller"`
}

// ZerologLevel returns the parsed level, info if it cannot be parsed
func (c LoggerConfig) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return zerolog.InfoLevel
	}

	return level
}

type GenerateConfig struct {
	Count        int      `mapstructure:"count" json:"count"`
	Currencies   []string `mapstructure:"currencies" json:"currencies"`
	Format       string   `mapstructure:"format" json:"format"`
	ShowQR       bool     `mapstructure:"show_qr" json:"showQR"`
	Parallelism  int      `mapstructure:"parallelism" json:"parallelism"`
	Warnings     bool     `mapstructure:"warnings" json:"warnings"`
	Instructions bool     `mapstructure:"instructions" json:"instructions"`
}

type PluginsConfig struct {
	Dir string `mapstructure:"dir" json:"dir"`
}

type MetricsConfig struct {
	Textfile string `mapstructure:"textfile" json:"textfile"`
}

type KeystoreConfig struct {
	ScryptN int `mapstructure:"scrypt_n" json:"scryptN"`
	ScryptR int `mapstructure:"scrypt_r" json:"scryptR"`
	ScryptP int `mapstructure:"scrypt_p" json:"scryptP"`
}

// Config is the complete CLI configuration
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" json:"logger"`
	Generate GenerateConfig `mapstructure:"generate" json:"generate"`
	Plugins  PluginsConfig  `mapstructure:"plugins" json:"plugins"`
	Metrics  MetricsConfig  `mapstructure:"metrics" json:"metrics"`
	Keystore KeystoreConfig `mapstructure:"keystore" json:"keystore"`
}

// Viper keys bound to command line flags
const (
	KeyLogLevel          = "logger.level"
	KeyLogPretty         = "logger.pretty_print_console"
	KeyGenerateCount     = "generate.count"
	KeyGenerateCurrency  = "generate.currencies"
	KeyGenerateFormat    = "generate.format"
	KeyGenerateShowQR    = "generate.show_qr"
	KeyGenerateParallel  = "generate.parallelism"
	KeyGenerateWarnings  = "generate.warnings"
	KeyGenerateInstructs = "generate.instructions"
	KeyPluginsDir        = "plugins.dir"
	KeyMetricsTextfile   = "metrics.textfile"
)

// NewViper returns a viper instance with defaults and env binding
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogPretty, true)
	v.SetDefault("logger.caller", false)

	v.SetDefault(KeyGenerateCount, 1)
	v.SetDefault(KeyGenerateCurrency, []string{})
	v.SetDefault(KeyGenerateFormat, "all")
	v.SetDefault(KeyGenerateShowQR, true)
	v.SetDefault(KeyGenerateParallel, 1)
	v.SetDefault(KeyGenerateWarnings, true)
	v.SetDefault(KeyGenerateInstructs, true)

	v.SetDefault(KeyPluginsDir, "")
	v.SetDefault(KeyMetricsTextfile, "")

	v.SetDefault("keystore.scrypt_n", 262144)
	v.SetDefault("keystore.scrypt_r", 8)
	v.SetDefault("keystore.scrypt_p", 1)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// ReadFile merges a YAML config file into v
func ReadFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}

	return nil
}

// Load decodes v into a Config
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.Logger.Level)); err != nil {
		return Config{}, errors.Wrapf(err, "invalid log level %q", cfg.Logger.Level)
	}

	// env values arrive comma separated and untrimmed
	currencies := make([]string, 0, len(cfg.Generate.Currencies))
	for _, c := range cfg.Generate.Currencies {
		currencies = append(currencies, SplitList(c)...)
	}
	cfg.Generate.Currencies = currencies

	if cfg.Generate.Count < 1 {
		return Config{}, errors.Errorf("count must be a positive number, got %d", cfg.Generate.Count)
	}

	return cfg, nil
}

// DefaultServiceConfigFromEnv returns the configuration from defaults and env only
func DefaultServiceConfigFromEnv() Config {
	cfg, err := Load(NewViper())
	if err != nil {
		log.Warn().Err(err).Msg("Invalid configuration in environment, using defaults")
		return defaults()
	}

	return cfg
}

func defaults() Config {
	return Config{
		Logger: LoggerConfig{
			Level:              "info",
			PrettyPrintConsole: true,
		},
		Generate: GenerateConfig{
			Count:        1,
			Currencies:   []string{},
			Format:       "all",
			ShowQR:       true,
			Parallelism:  1,
			Warnings:     true,
			Instructions: true,
		},
		Keystore: KeystoreConfig{
			ScryptN: 262144,
			ScryptR: 8,
			ScryptP: 1,
		},
	}
}

// SplitList splits a comma separated list, trimming and lowercasing entries
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			list = append(list, part)
		}
	}

	return list
}
