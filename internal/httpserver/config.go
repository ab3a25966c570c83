package httpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Config holds the HTTP server settings.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string
	// MaxBodyBytes caps request bodies. Larger bodies get 413.
	MaxBodyBytes int64
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown after the context is cancelled.
	ShutdownTimeout time.Duration
}

// DefaultMaxBodyBytes is the request body limit used when none is configured.
const DefaultMaxBodyBytes = 10 * 1024 * 1024

// LoadConfig reads APIDOCSWAGGER_HTTP_* environment variables.
// Invalid values log a warning and fall back to the default.
func LoadConfig() Config {
	addr := os.Getenv("APIDOCSWAGGER_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		Addr:              addr,
		MaxBodyBytes:      envInt64("APIDOCSWAGGER_HTTP_MAX_BODY", DefaultMaxBodyBytes),
		ReadHeaderTimeout: envDuration("APIDOCSWAGGER_HTTP_READ_HEADER_TIMEOUT", 10*time.Second),
		ShutdownTimeout:   envDuration("APIDOCSWAGGER_HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
	}
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
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
