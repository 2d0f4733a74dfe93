package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port                 string
	Origin               string
	Environment          string
	JWTSecret            string
	JWTExpirationMinutes int
	Log                  LogConfig
	Booking              BookingConfig
	Suggest              SuggestConfig
	MetricsNamespace     string
}

// LogConfig holds logger settings
type LogConfig struct {
	Level      string
	Format     string
	OutputPath string
}

// BookingConfig holds settings for the booking forms
type BookingConfig struct {
	// SubmitDelay is the cosmetic pause before a booking is confirmed.
	SubmitDelay time.Duration
}

// SuggestConfig selects the doctor suggestion heuristic
type SuggestConfig struct {
	Provider     string // "keyword" or "openai"
	OpenAIAPIKey string
	OpenAIModel  string
	Timeout      time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	jwtExpMinutes, err := strconv.Atoi(getEnv("JWT_EXPIRATION_MINUTES", "480"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %w", err)
	}

	submitDelayMS, err := strconv.Atoi(getEnv("SUBMIT_DELAY_MS", "800"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUBMIT_DELAY_MS: %w", err)
	}

	suggestTimeoutMS, err := strconv.Atoi(getEnv("SUGGEST_TIMEOUT_MS", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid SUGGEST_TIMEOUT_MS: %w", err)
	}

	environment := getEnv("APP_ENV", "development")
	logFormat := "console"
	if environment == "production" {
		logFormat = "json"
	}

	suggest := SuggestConfig{
		Provider:     getEnv("SUGGESTER", "keyword"),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:      time.Duration(suggestTimeoutMS) * time.Millisecond,
	}
	if suggest.Provider != "keyword" && suggest.Provider != "openai" {
		return nil, fmt.Errorf("invalid SUGGESTER %q: must be keyword or openai", suggest.Provider)
	}
	if suggest.Provider == "openai" && suggest.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("SUGGESTER=openai requires OPENAI_API_KEY")
	}

	return &Config{
		Port:                 getEnv("PORT", "3001"),
		Origin:               getEnv("ORIGIN", "http://localhost:3000"),
		Environment:          environment,
		JWTSecret:            getEnv("JWT_SECRET", "default_jwt_secret"),
		JWTExpirationMinutes: jwtExpMinutes,
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", logFormat),
			OutputPath: getEnv("LOG_OUTPUT", "stdout"),
		},
		Booking: BookingConfig{
			SubmitDelay: time.Duration(submitDelayMS) * time.Millisecond,
		},
		Suggest:          suggest,
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "ayursutra"),
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
