package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Splash   SplashConfig
	Counter  CounterConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings. The default DSN is in-memory.
type DatabaseConfig struct {
	DSN string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol      string `mapstructure:"currency_symbol"`
	GreetingName        string `mapstructure:"greeting_name"`
	TransactionsPreview int    `mapstructure:"transactions_preview"`
}

// SplashConfig holds splash timeline durations in milliseconds.
type SplashConfig struct {
	FadeInMS  int `mapstructure:"fade_in_ms"`
	ScaleInMS int `mapstructure:"scale_in_ms"`
	RevealMS  int `mapstructure:"reveal_ms"`
	HoldMS    int `mapstructure:"hold_ms"`
	FadeOutMS int `mapstructure:"fade_out_ms"`
	FrameMS   int `mapstructure:"frame_ms"`
}

// CounterConfig holds the counter demo settings.
type CounterConfig struct {
	Initial int
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	File  string
}

// Durations converts the millisecond fields to time.Duration in timeline order.
func (s SplashConfig) Durations() (fadeIn, scaleIn, reveal, hold, fadeOut, frame time.Duration) {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }
	return ms(s.FadeInMS), ms(s.ScaleInMS), ms(s.RevealMS), ms(s.HoldMS), ms(s.FadeOutMS), ms(s.FrameMS)
}

func setDefaults(v *viper.Viper) {
	home := os.Getenv("HOME")
	v.SetDefault("database.dsn", "file:cashlyze?mode=memory&cache=shared")
	v.SetDefault("ui.currency_symbol", "₹")
	v.SetDefault("ui.greeting_name", "Alex")
	v.SetDefault("ui.transactions_preview", 3)
	v.SetDefault("splash.fade_in_ms", 450)
	v.SetDefault("splash.scale_in_ms", 450)
	v.SetDefault("splash.reveal_ms", 500)
	v.SetDefault("splash.hold_ms", 200)
	v.SetDefault("splash.fade_out_ms", 300)
	v.SetDefault("splash.frame_ms", 16)
	v.SetDefault("counter.initial", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(home, ".local", "state", "cashlyze", "cashlyze.log"))
}

// Default returns the built-in defaults without reading any file or env.
func Default() (Config, error) {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal defaults: %w", err)
	}
	return c, nil
}

// Load reads configuration from .env, the config file and env. Env var
// overrides use prefix CASHLYZE_.
func Load() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CASHLYZE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "cashlyze"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CASHLYZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist surfaces as a PathError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.TransactionsPreview < 0 {
		c.UI.TransactionsPreview = 0
	}
	return c, nil
}
