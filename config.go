package main

import (
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

var baseAllowHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// Config is the service configuration read from the environment
type Config struct {
	Port string

	// DatabaseURL wins over the DB_* parts when set
	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSSLMode      string
	MigrationsPath string

	Provider          string
	GeminiAPIKey      string
	GeminiModel       string
	GeminiBaseURL     string
	AnthropicAPIKey   string
	AnthropicModel    string
	AnthropicBaseURL  string
	GenerationTimeout time.Duration

	Locale       string
	LocaleFile   string
	Location     *time.Location
	AllowHeaders []string
}

// loadConfig reads the environment, loading .env first when present. A
// missing API key is not an error here; it is reported on each request.
func loadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DBHost:         getEnvOrDefault("DB_HOST", "localhost"),
		DBPort:         getEnvOrDefault("DB_PORT", "5432"),
		DBUser:         getEnvOrDefault("DB_USER", "postgres"),
		DBPassword:     getEnvOrDefault("DB_PASSWORD", "password"),
		DBName:         getEnvOrDefault("DB_NAME", "smartinsights"),
		DBSSLMode:      getEnvOrDefault("DB_SSLMODE", "disable"),
		MigrationsPath: getEnvOrDefault("MIGRATIONS_PATH", "db/migrations"),

		Provider:         strings.ToLower(getEnvOrDefault("INSIGHTS_PROVIDER", providerGemini)),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnvOrDefault("GEMINI_MODEL", defaultGeminiModel),
		GeminiBaseURL:    getEnvOrDefault("GEMINI_BASE_URL", defaultGeminiBaseURL),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   getEnvOrDefault("ANTHROPIC_MODEL", defaultAnthropicModel),
		AnthropicBaseURL: os.Getenv("ANTHROPIC_BASE_URL"),

		Locale:     getEnvOrDefault("INSIGHTS_LOCALE", defaultLocale),
		LocaleFile: os.Getenv("INSIGHTS_LOCALE_FILE"),
	}

	if cfg.Provider != providerGemini && cfg.Provider != providerAnthropic {
		return Config{}, fmt.Errorf("INSIGHTS_PROVIDER must be %q or %q, got %q", providerGemini, providerAnthropic, cfg.Provider)
	}

	timeout, err := time.ParseDuration(getEnvOrDefault("GENERATION_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid GENERATION_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", timeout)
	}
	cfg.GenerationTimeout = timeout

	cfg.Location, err = time.LoadLocation(getEnvOrDefault("INSIGHTS_TIMEZONE", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid INSIGHTS_TIMEZONE: %w", err)
	}

	cfg.AllowHeaders = append([]string{}, baseAllowHeaders...)
	for _, header := range strings.Split(os.Getenv("CORS_ALLOW_HEADERS"), ",") {
		if header = strings.ToLower(strings.TrimSpace(header)); header != "" {
			cfg.AllowHeaders = append(cfg.AllowHeaders, header)
		}
	}

	return cfg, nil
}

// connString returns the Postgres connection string
func (c Config) connString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
