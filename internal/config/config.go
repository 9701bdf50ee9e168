package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"countdown/pkg/tz"
)

// Locale holds the POSIX locale variables consulted by language detection.
type Locale struct {
	LCAll      string `mapstructure:"lc_all"`
	LCMessages string `mapstructure:"lc_messages"`
	Lang       string `mapstructure:"lang"`
}

type Config struct {
	Locale    Locale        `mapstructure:"locale"`
	LogLevel  string        `mapstructure:"log_level"`
	LogFormat string        `mapstructure:"log_format"`
	Timezone  string        `mapstructure:"tz"`
	Tick      time.Duration `mapstructure:"tick"`

	location *time.Location
}

// Load reads the configuration from the environment and validates it.
// No configuration file is consulted.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "text")
	v.SetDefault("tz", tz.Local)
	v.SetDefault("tick", time.Second)

	// COUNTDOWN_LOG_LEVEL, COUNTDOWN_TICK, ...
	v.SetEnvPrefix("COUNTDOWN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The locale variables keep their standard names.
	for key, env := range map[string]string{
		"locale.lc_all":      "LC_ALL",
		"locale.lc_messages": "LC_MESSAGES",
		"locale.lang":        "LANG",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location is the zone timestamps are rendered in.
func (c *Config) Location() *time.Location {
	if c.location == nil {
		return time.Local
	}
	return c.location
}

// validate applies the rules on the loaded configuration.
func (c *Config) validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		return fmt.Errorf("config: COUNTDOWN_LOG_LEVEL invalid (%q): want debug, info, warn or error", c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: COUNTDOWN_LOG_FORMAT invalid (%q): want text or json", c.LogFormat)
	}

	if c.Tick <= 0 {
		return fmt.Errorf("config: COUNTDOWN_TICK must be positive, got %s", c.Tick)
	}

	loc, err := tz.Load(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: COUNTDOWN_TZ invalid: %w", err)
	}
	c.location = loc

	return nil
}
