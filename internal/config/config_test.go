package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RAG_CONFIG", "RAG_API_URL", "RAG_SESSION_ID", "RAG_MODEL",
		"RAG_ANSWER_MODE", "RAG_LOCALE", "RAG_MAX_TOKENS",
		"RAG_SCORE_THRESHOLD", "RAG_ADMIN_TOKEN", "RAG_CLIENT_TIMEOUT",
		"RAG_LOG_FILE", "RAG_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultSession, cfg.SessionID)
	assert.Equal(t, "breve", cfg.AnswerMode)
	assert.Equal(t, "es-AR", cfg.Locale)
	assert.Equal(t, 400, cfg.MaxTokens)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAG_API_URL", "http://10.0.0.5:8000")
	t.Setenv("RAG_SESSION_ID", "ventas")
	t.Setenv("RAG_MODEL", "qwen3:8b")
	t.Setenv("RAG_MAX_TOKENS", "800")
	t.Setenv("RAG_SCORE_THRESHOLD", "0.42")
	t.Setenv("RAG_LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "http://10.0.0.5:8000", cfg.BaseURL)
	assert.Equal(t, "ventas", cfg.SessionID)
	assert.Equal(t, "qwen3:8b", cfg.Model)
	assert.Equal(t, 800, cfg.MaxTokens)
	assert.Equal(t, 0.42, cfg.ScoreThreshold)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ragdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://backend:8000\nmodel: phi3:3.8b\nmax_tokens: 200\n"), 0644))
	t.Setenv("RAG_CONFIG", path)

	cfg := Load()
	assert.Equal(t, "http://backend:8000", cfg.BaseURL)
	assert.Equal(t, "phi3:3.8b", cfg.Model)
	assert.Equal(t, 200, cfg.MaxTokens)
}

func TestEnvWinsOverConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "ragdesk.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://backend:8000\n"), 0644))
	t.Setenv("RAG_CONFIG", path)
	t.Setenv("RAG_API_URL", "http://10.0.0.5:8000")

	cfg := Load()
	assert.Equal(t, "http://10.0.0.5:8000", cfg.BaseURL)
}

func TestRandomSessionGeneratesUUID(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAG_SESSION_ID", "random")

	cfg := Load()
	_, err := uuid.Parse(cfg.SessionID)
	require.NoError(t, err, "random session must resolve to a UUID")

	again := Load()
	assert.NotEqual(t, cfg.SessionID, again.SessionID, "each load gets a fresh scope")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), "level %q", tt.in)
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Info("backend reachable", "url", "http://127.0.0.1:8000")
	logger.Debug("dropped at info level")

	assert.Contains(t, stderr.String(), "backend reachable")
	assert.NotContains(t, stderr.String(), "dropped at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &entry), "file output must be JSON")
	assert.Equal(t, "backend reachable", entry["msg"])
	assert.Equal(t, "http://127.0.0.1:8000", entry["url"])
}
