// Package config provides runtime configuration values for the services.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration knobs for the HTTP server and its middleware.
type Config struct {
	HTTPAddr           string
	ShutdownTimeout    time.Duration
	ReadHeaderTimeout  time.Duration
	LogLevel           string
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func floatenv(key string, def float64) float64 {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func durenvms(key string, defMs int) time.Duration {
	ms := atoienv(key, defMs)
	return time.Duration(ms) * time.Millisecond
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

func listenv(key string) []string {
	var out []string
	for _, s := range strings.Split(getenv(key, ""), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Load collects configuration from environment with defaults. defaultAddr is
// used when HTTP_ADDR is unset, so every service keeps its own port.
func Load(defaultAddr string) Config {
	return Config{
		HTTPAddr:           getenv("HTTP_ADDR", defaultAddr),
		ShutdownTimeout:    durenvs("SHUTDOWN_TIMEOUT", 15),
		ReadHeaderTimeout:  durenvms("READ_HEADER_TIMEOUT_MS", 5000),
		LogLevel:           strings.ToLower(getenv("LOG_LEVEL", "info")),
		CORSAllowedOrigins: listenv("CORS_ALLOWED_ORIGINS"),
		RateLimitRPS:       floatenv("RATE_LIMIT_RPS", 0),
		RateLimitBurst:     atoienv("RATE_LIMIT_BURST", 20),
	}
}
