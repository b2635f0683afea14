// Package config loads client configuration from the environment,
// an optional .env file, and an optional YAML config file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the backend address used when RAG_API_URL is unset.
const DefaultBaseURL = "http://127.0.0.1:8000"

// DefaultSession is the shared scope used when no session is configured.
const DefaultSession = "global"

// Config holds all configuration values.
type Config struct {
	// Backend connection
	BaseURL string `yaml:"api_url"`

	// Scope identifier attached to every chat and document operation.
	// The literal value "random" generates a fresh scope per process.
	SessionID string `yaml:"session_id"`

	// Chat defaults
	Model          string  `yaml:"model"`
	AnswerMode     string  `yaml:"answer_mode"`
	Locale         string  `yaml:"locale"`
	MaxTokens      int     `yaml:"max_tokens"`
	ScoreThreshold float64 `yaml:"score_threshold"`

	// Admin
	AdminToken string `yaml:"admin_token"`

	// HTTP client timeout, e.g. "2m". Empty keeps the client default.
	ClientTimeout string `yaml:"client_timeout"`

	// Logging
	LogFile  string     `yaml:"log_file"`
	LogLevel slog.Level `yaml:"-"`
}

// Load reads configuration in precedence order: environment variables win
// over the YAML file named by RAG_CONFIG, which wins over built-in defaults.
// A .env file in the working directory is folded into the environment first.
func Load() Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:        DefaultBaseURL,
		SessionID:      DefaultSession,
		AnswerMode:     "breve",
		Locale:         "es-AR",
		MaxTokens:      400,
		ScoreThreshold: 0,
	}

	if path := os.Getenv("RAG_CONFIG"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: ignoring config file %s: %v\n", path, err)
		}
	}

	cfg.BaseURL = getEnv("RAG_API_URL", cfg.BaseURL)
	cfg.SessionID = getEnv("RAG_SESSION_ID", cfg.SessionID)
	cfg.Model = getEnv("RAG_MODEL", cfg.Model)
	cfg.AnswerMode = getEnv("RAG_ANSWER_MODE", cfg.AnswerMode)
	cfg.Locale = getEnv("RAG_LOCALE", cfg.Locale)
	cfg.MaxTokens = getEnvInt("RAG_MAX_TOKENS", cfg.MaxTokens)
	cfg.ScoreThreshold = getEnvFloat("RAG_SCORE_THRESHOLD", cfg.ScoreThreshold)
	cfg.AdminToken = getEnv("RAG_ADMIN_TOKEN", cfg.AdminToken)
	cfg.ClientTimeout = getEnv("RAG_CLIENT_TIMEOUT", cfg.ClientTimeout)
	cfg.LogFile = getEnv("RAG_LOG_FILE", cfg.LogFile)
	cfg.LogLevel = parseLogLevel(getEnv("RAG_LOG_LEVEL", "INFO"))

	if strings.EqualFold(cfg.SessionID, "random") {
		cfg.SessionID = uuid.New().String()
	}

	return cfg
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
