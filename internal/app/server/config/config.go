package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = "localhost:8080"
	defaultMigrations = "migrations"
	defaultEnv        = EnvLocal
)

type Config struct {
	Env    string
	DB     DB
	Server Server
	Logger Logger
}

type DB struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type Server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type Logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads the environment (optionally seeded from a .env file) into a
// Config. Missing .env is not fatal; the process environment wins.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("run_address", defaultRunAddress)
	viper.SetDefault("migrations_path", defaultMigrations)
	viper.SetDefault("app_env", defaultEnv)
	viper.SetDefault("log_level", "info")

	return &Config{
		Env: viper.GetString("app_env"),
		DB: DB{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: Server{RunAddress: viper.GetString("run_address")},
		Logger: Logger{LogLevel: viper.GetString("log_level")},
	}
}
