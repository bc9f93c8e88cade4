package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "https://api.siliconflow.cn/v1/chat/completions"
	defaultModel   = "deepseek-ai/DeepSeek-R1-0528-Qwen3-8B"
)

// Config holds application configuration, read once at startup and passed
// explicitly into each component.
type Config struct {
	Port            string
	CORSAllowOrigin []string
	LLMProvider     string
	LLMAPIKey       string
	LLMBaseURL      string
	LLMModel        string
	LLMTimeout      time.Duration
	MaxUploadBytes  int64
	Env             string
}

// Load reads configuration from environment variables with sensible defaults.
// A missing API key is not a startup error; the upstream call reports it as
// an authorization failure when the key is actually needed.
func Load() Config {
	// Best-effort load of a local env file for dev convenience.
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		CORSAllowOrigin: splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		LLMProvider:     normalizeProvider(getEnv("LLM_PROVIDER", "siliconflow")),
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMBaseURL:      getEnv("LLM_BASE_URL", defaultBaseURL),
		LLMModel:        getEnv("LLM_MODEL", defaultModel),
		LLMTimeout:      getEnvSeconds("LLM_TIMEOUT_SECONDS", 120*time.Second),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 5<<20),
		Env:             normalizeEnv(getEnv("ENV", "dev")),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvSeconds(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return def
	}
	return time.Duration(parsed) * time.Second
}

func getEnvInt64(key string, def int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gemini", "google":
		return "gemini"
	default:
		return "siliconflow"
	}
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	default:
		return "dev"
	}
}
