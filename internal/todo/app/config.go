package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/todo/pkg/jwtx"
	"github.com/joho/godotenv"
)

type Config struct {
	JWTSecret            string        // Required: HS256 signing secret, at least 32 bytes
	Issuer               string        // Optional: iss claim (default: todo-api)
	Audience             []string      // Optional: aud claim, comma separated (default: todo-api)
	TokenTTL             time.Duration // Optional: access token lifetime (default: 24h)
	DatabaseFile         string        // Optional: path to SQLite database file (default: ./todo.db)
	PepperFile           string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	SeedFile             string        // Optional: YAML file of users to create at startup
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Database check and maintenance interval (default: 1h)
}

// LoadConfig reads the environment, after overlaying any variables found in
// the given .env files (default ./.env). Variables already set win.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	cfg := Config{
		JWTSecret:            os.Getenv("TODO_JWT_SECRET"),
		Issuer:               getEnvOrDefault("TODO_ISSUER", "todo-api"),
		Audience:             splitList(getEnvOrDefault("TODO_AUDIENCE", "todo-api")),
		TokenTTL:             getEnvDurationOrDefault("TODO_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		DatabaseFile:         getEnvOrDefault("TODO_DATABASE_FILE", "todo.db"),
		PepperFile:           getEnvOrDefault("TODO_PEPPER_FILE", "pepper"),
		SeedFile:             os.Getenv("TODO_SEED_FILE"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg, cfg.Validate()
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if len(c.JWTSecret) < jwtx.MinSecretLength {
		errs = append(errs, fmt.Errorf("TODO_JWT_SECRET must be at least %d bytes", jwtx.MinSecretLength))
	}
	if len(c.Audience) == 0 {
		errs = append(errs, errors.New("TODO_AUDIENCE must name at least one audience"))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TODO_TOKEN_TTL must be positive"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d is out of range", c.Port))
	}
	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "24h", "90m", "30s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// bare integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
