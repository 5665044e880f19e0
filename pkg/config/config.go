package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultLookupDelay = 100 * time.Millisecond
	DefaultLanes       = 2
	DefaultLogLevel    = "info"
	DefaultRegistered  = "taken@example.com"
)

// Config captures the demo harness settings.
type Config struct {
	LookupDelay time.Duration
	Lanes       int
	LogLevel    string
	Registered  []string
}

// FromEnv builds a Config from environment variables. Missing or invalid
// values keep their defaults.
func FromEnv() Config {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) Config {
	getenv := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := Config{
		LookupDelay: DefaultLookupDelay,
		Lanes:       DefaultLanes,
		LogLevel:    DefaultLogLevel,
		Registered:  splitList(DefaultRegistered),
	}

	if delayStr := getenv("ROPSIGNUP_LOOKUP_DELAY"); delayStr != "" {
		if d, err := time.ParseDuration(delayStr); err == nil && d >= 0 {
			cfg.LookupDelay = d
		}
	}
	if lanesStr := getenv("ROPSIGNUP_LANES"); lanesStr != "" {
		if n, err := strconv.Atoi(lanesStr); err == nil && n > 0 {
			cfg.Lanes = n
		}
	}
	switch level := strings.ToLower(getenv("ROPSIGNUP_LOG_LEVEL")); level {
	case "debug", "info", "warn", "error":
		cfg.LogLevel = level
	}
	// An empty list is honored: nobody is registered.
	if registered, ok := lookup("ROPSIGNUP_REGISTERED"); ok {
		cfg.Registered = splitList(registered)
	}

	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
