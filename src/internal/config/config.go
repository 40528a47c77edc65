package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	StorageDir         string `mapstructure:"ATM_STORAGE_DIR"`
	MiniStatementLimit int    `mapstructure:"ATM_MINI_STATEMENT_LIMIT"`
}

// Load reads configuration from environment variables or a .env file.
func Load() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("ATM_STORAGE_DIR", "storage")
	viper.SetDefault("ATM_MINI_STATEMENT_LIMIT", 10)

	_ = viper.BindEnv("ATM_STORAGE_DIR")
	_ = viper.BindEnv("ATM_MINI_STATEMENT_LIMIT")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
