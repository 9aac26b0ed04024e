package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerAddress = "localhost:8080"
	defaultEnv           = "local"
	defaultConfigDir     = ".artreg"
	defaultCacheFile     = "cache.db"
)

type Config struct {
	Env           string `mapstructure:"app_env"`
	ServerAddress string `mapstructure:"server_address"`
	ConfigDir     string `mapstructure:"config_dir"`
	CachePath     string `mapstructure:"cache_path"`
	EnableTLS     bool   `mapstructure:"enable_tls"`
}

// MustLoad loads the client configuration from the environment, optionally
// seeded from a .env file next to the binary.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("SERVER_ADDRESS", defaultServerAddress)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("ENABLE_TLS", false)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	cachePath := viper.GetString("CACHE_PATH")
	if cachePath == "" {
		cachePath = filepath.Join(configDir, defaultCacheFile)
	}

	return &Config{
		Env:           viper.GetString("APP_ENV"),
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		ConfigDir:     configDir,
		CachePath:     cachePath,
		EnableTLS:     viper.GetBool("ENABLE_TLS"),
	}
}
