package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Issue list paging.
	IssueLimit int
	MaxLimit   int

	// MaxInlineSize caps inline content in bytes.
	MaxInlineSize int64

	// Convert tool defaults.
	OperationIDs           bool
	NormalizePathTemplates bool
	Strict                 bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from APIDOCSWAGGER_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:           envBool("APIDOCSWAGGER_CACHE_ENABLED", true),
		CacheMaxSize:           envInt("APIDOCSWAGGER_CACHE_MAX_SIZE", 10),
		CacheFileTTL:           envDuration("APIDOCSWAGGER_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:        envDuration("APIDOCSWAGGER_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval:     envDuration("APIDOCSWAGGER_CACHE_SWEEP_INTERVAL", 60*time.Second),
		IssueLimit:             envInt("APIDOCSWAGGER_ISSUE_LIMIT", 100),
		MaxLimit:               envInt("APIDOCSWAGGER_MAX_LIMIT", 1000),
		MaxInlineSize:          int64(envInt("APIDOCSWAGGER_MAX_INLINE_SIZE", 10*1024*1024)),
		OperationIDs:           envBool("APIDOCSWAGGER_OPERATION_IDS", false),
		NormalizePathTemplates: envBool("APIDOCSWAGGER_NORMALIZE_PATHS", false),
		Strict:                 envBool("APIDOCSWAGGER_STRICT", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
