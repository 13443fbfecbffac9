package config

import (
	"fmt"
	"log"
	"net/http"
	"os"

	env "github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

// Config holds everything the process reads from the environment.
type Config struct {
	DatabaseURL string `env:"DB_URL" envDefault:"host=localhost user=postgres dbname=exercise_tracker sslmode=disable"`
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	Environment string `env:"ENV" envDefault:"development"`
}

// New loads the optional .env file and parses the environment into a Config.
func New() (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// CorsOptions returns the permissive CORS policy the API has always shipped
// with: any origin, the methods the routes actually use.
func (c *Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}
}
