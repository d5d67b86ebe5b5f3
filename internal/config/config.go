package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Devdiop221/deenquest/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	Remote RemoteConfig `mapstructure:"remote" validate:"required"`
	Store  StoreConfig  `mapstructure:"store" validate:"required"`
	Sync   SyncConfig   `mapstructure:"sync" validate:"required"`
	Env    string       `mapstructure:"env" validate:"oneof=development production staging"`
}

type RemoteConfig struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type StoreConfig struct {
	Dir string `mapstructure:"dir" validate:"required"`
}

type SyncConfig struct {
	ProbeURL      string        `mapstructure:"probe_url" validate:"required,url"`
	PollInterval  time.Duration `mapstructure:"poll_interval" validate:"min=1"`
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout" validate:"min=1"`
	ActionTimeout time.Duration `mapstructure:"action_timeout" validate:"min=1"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	if err := v.BindEnv("remote.base_url", "REMOTE_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind REMOTE_BASE_URL: %w", err)
	}
	if err := v.BindEnv("store.dir", "STORE_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind STORE_DIR: %w", err)
	}
	if err := v.BindEnv("sync.probe_url", "PROBE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind PROBE_URL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
