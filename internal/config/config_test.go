package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "ORIGIN", "APP_ENV", "JWT_SECRET", "JWT_EXPIRATION_MINUTES",
	"SUBMIT_DELAY_MS", "SUGGESTER", "OPENAI_API_KEY", "OPENAI_MODEL",
	"SUGGEST_TIMEOUT_MS", "LOG_LEVEL", "LOG_FORMAT", "LOG_OUTPUT", "METRICS_NAMESPACE",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.Origin)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 480, cfg.JWTExpirationMinutes)
	assert.Equal(t, 800*time.Millisecond, cfg.Booking.SubmitDelay)
	assert.Equal(t, "keyword", cfg.Suggest.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Suggest.OpenAIModel)
	assert.Equal(t, 3*time.Second, cfg.Suggest.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "stdout", cfg.Log.OutputPath)
	assert.Equal(t, "ayursutra", cfg.MetricsNamespace)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SUBMIT_DELAY_MS", "0")
	t.Setenv("SUGGESTER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, time.Duration(0), cfg.Booking.SubmitDelay)
	assert.Equal(t, "openai", cfg.Suggest.Provider)
	assert.Equal(t, "sk-test", cfg.Suggest.OpenAIAPIKey)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad jwt expiry", map[string]string{"JWT_EXPIRATION_MINUTES": "soon"}},
		{"bad submit delay", map[string]string{"SUBMIT_DELAY_MS": "fast"}},
		{"bad suggest timeout", map[string]string{"SUGGEST_TIMEOUT_MS": "3s"}},
		{"unknown suggester", map[string]string{"SUGGESTER": "oracle"}},
		{"openai without key", map[string]string{"SUGGESTER": "openai"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
