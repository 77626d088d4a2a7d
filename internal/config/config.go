package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken       string
	BotPassword    string
	MigrationsURL  string
	LogDevelopment bool
	Database       DatabaseConfig
	Quiz           QuizConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// QuizConfig holds quiz defaults
type QuizConfig struct {
	RandomCount int   // questions in a "random N" quick quiz
	Seed        int64 // 0 = seed from the clock
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	randomCount, err := getEnvInt("QUIZ_RANDOM_COUNT", 10)
	if err != nil {
		return nil, err
	}
	if randomCount <= 0 {
		return nil, fmt.Errorf("QUIZ_RANDOM_COUNT must be positive, got %d", randomCount)
	}

	seed, err := getEnvInt("QUIZ_SEED", 0)
	if err != nil {
		return nil, err
	}

	logDevelopment, err := getEnvBool("LOG_DEVELOPMENT", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BotToken:       os.Getenv("BOT_TOKEN"),
		BotPassword:    os.Getenv("BOT_PASSWORD"),
		MigrationsURL:  getEnv("MIGRATIONS_URL", "file://migrations"),
		LogDevelopment: logDevelopment,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "emaster"),
			User:     getEnv("DB_USER", "emaster"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Quiz: QuizConfig{
			RandomCount: randomCount,
			Seed:        int64(seed),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.BotPassword == "" {
		return nil, fmt.Errorf("BOT_PASSWORD is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return b, nil
}
