package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Static data files loaded once at startup.
	StatesFile           string `mapstructure:"STATES_FILE"`
	AdminCredentialsFile string `mapstructure:"ADMIN_CREDENTIALS_FILE"`

	// Submission store backend: "file", "mongo" or "redis".
	StorageBackend  string `mapstructure:"STORAGE_BACKEND"`
	SubmissionsFile string `mapstructure:"SUBMISSIONS_FILE"`
	DatabaseURL     string `mapstructure:"DATABASE_URL"`

	// Redis configuration (used when STORAGE_BACKEND=redis).
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisSubmissionsDB int    `mapstructure:"REDIS_SUBMISSIONS_DB"`

	// Login throttling.
	LoginAttemptsPerMin int `mapstructure:"LOGIN_ATTEMPTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("STATES_FILE", "data/states.json")
	viper.SetDefault("ADMIN_CREDENTIALS_FILE", "data/admin.json")
	viper.SetDefault("STORAGE_BACKEND", "file")
	viper.SetDefault("SUBMISSIONS_FILE", "data/submissions.json")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SUBMISSIONS_DB", 0)
	viper.SetDefault("LOGIN_ATTEMPTS_PER_MIN", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
