package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jask/suspenseaction/internal/action"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
	Seed bool
}

// UIConfig holds presentation and coordinator settings.
type UIConfig struct {
	Fallback          string
	CancelOnSupersede bool `mapstructure:"cancel_on_supersede"`
	Delay             time.Duration
	InitialID         int `mapstructure:"initial_id"`
}

// LogConfig holds the debug log destination. An empty path disables logging.
type LogConfig struct {
	Path string
}

func configPath() string {
	if p := os.Getenv("SUSPENSEACTION_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "suspenseaction", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SUSPENSEACTION_.
func Load() (Config, error) {
	v := viper.New()

	dataDir := filepath.Join(os.Getenv("HOME"), ".local", "share", "suspenseaction")
	v.SetDefault("database.path", filepath.Join(dataDir, "suspenseaction.db"))
	v.SetDefault("database.seed", true)
	v.SetDefault("ui.fallback", action.DefaultFallback)
	v.SetDefault("ui.cancel_on_supersede", false)
	v.SetDefault("ui.delay", 600*time.Millisecond)
	v.SetDefault("ui.initial_id", 1)
	v.SetDefault("log.path", filepath.Join(dataDir, "debug.log"))

	v.SetConfigType("toml")
	v.SetConfigFile(configPath())

	v.SetEnvPrefix("SUSPENSEACTION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Delay < 0 {
		return Config{}, fmt.Errorf("ui.delay must not be negative, got %s", c.UI.Delay)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := configPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("database.seed", cfg.Database.Seed)
	v.Set("ui.fallback", cfg.UI.Fallback)
	v.Set("ui.cancel_on_supersede", cfg.UI.CancelOnSupersede)
	v.Set("ui.delay", cfg.UI.Delay.String())
	v.Set("ui.initial_id", cfg.UI.InitialID)
	v.Set("log.path", cfg.Log.Path)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
