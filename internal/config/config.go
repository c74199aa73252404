package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DataAPIURL   string
	Port         string
	HTTPTimeout  time.Duration
	LogLevel     slog.Level
	RefreshCron  string  // vacío = sin refresco automático
	RateLimitRPS float64 // requests/second per client on dashboard routes
	RateBurst    int
}

func FromEnv() Config {
	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	rps := 10.0
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			rps = f
		}
	}
	burst := 20
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			burst = n
		}
	}
	return Config{
		DataAPIURL:   os.Getenv("DATA_API_URL"),
		Port:         envOr("PORT", "8080"),
		HTTPTimeout:  to,
		LogLevel:     lvl,
		RefreshCron:  os.Getenv("REFRESH_CRON"),
		RateLimitRPS: rps,
		RateBurst:    burst,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
