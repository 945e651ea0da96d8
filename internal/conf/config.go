package conf

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const EnvPrefix = "BILIQR_"

type LogConfig struct {
	Enable     bool   `json:"enable" env:"ENABLE"`
	Name       string `json:"name" env:"NAME"`
	MaxSize    int    `json:"max_size" env:"MAX_SIZE"`
	MaxBackups int    `json:"max_backups" env:"MAX_BACKUPS"`
	MaxAge     int    `json:"max_age" env:"MAX_AGE"`
	Compress   bool   `json:"compress" env:"COMPRESS"`
}

type Config struct {
	BaseURL      string        `json:"base_url" env:"BASE_URL"`
	UserAgent    string        `json:"user_agent" env:"USER_AGENT"`
	Timeout      time.Duration `json:"timeout" env:"TIMEOUT"`
	PollInterval time.Duration `json:"poll_interval" env:"POLL_INTERVAL"`
	WaitTimeout  time.Duration `json:"wait_timeout" env:"WAIT_TIMEOUT"`
	SeedBuvid    bool          `json:"seed_buvid" env:"SEED_BUVID"`
	Log          LogConfig     `json:"log" envPrefix:"LOG_"`
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:      "https://passport.bilibili.com",
		Timeout:      10 * time.Second,
		PollInterval: 2 * time.Second,
		WaitTimeout:  180 * time.Second,
		SeedBuvid:    true,
		Log: LogConfig{
			Enable:     false,
			Name:       "log/biliqr.log",
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
		},
	}
}

// Load returns the defaults overridden by BILIQR_* environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "failed parse env")
	}
	if cfg.PollInterval <= 0 {
		return nil, errors.Errorf("poll interval must be positive, got %s", cfg.PollInterval)
	}
	return cfg, nil
}
