package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the client needs to talk to the backend
type Config struct {
	APIBaseURL     string        `mapstructure:"api_base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	TokenPath      string        `mapstructure:"token_path"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFile        string        `mapstructure:"log_file"`
}

// Load reads config.yaml from the marinadesk config dir (or the working
// directory), with MARINADESK_* env vars taking precedence. A missing
// file is fine; defaults cover everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "marinadesk"))
	}
	v.AddConfigPath(".")

	v.SetDefault("api_base_url", "http://localhost:3001")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("marinadesk")
	v.BindEnv("api_base_url")
	v.BindEnv("request_timeout")
	v.BindEnv("token_path")
	v.BindEnv("log_level")
	v.BindEnv("log_file")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
