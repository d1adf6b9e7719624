package config

import (
	"log/slog"
	"net"
	"os"
	"strconv"
	"strings"
)

const (
	// DefaultDomain is used when DOMAIN is unset or empty
	DefaultDomain = "idp.example.com"
	// DefaultPort is used when PORT is unset or not a valid 16-bit port
	DefaultPort uint16 = 8000
	// DefaultLogLevel is used when LOG_LEVEL is unset
	DefaultLogLevel = "info"

	listenHost = "0.0.0.0"
)

// Environment holds the environment variables
type Environment struct {
	Domain   string `env:"DOMAIN"`
	Port     uint16 `env:"PORT"`
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadEnv loads the environment variables
func LoadEnv() *Environment {
	return &Environment{
		Domain:   GetDomain(),
		Port:     GetPort(),
		LogLevel: strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", DefaultLogLevel))),
	}
}

// Address returns the listen address in the format "0.0.0.0:port"
func (e *Environment) Address() string {
	return net.JoinHostPort(listenHost, strconv.FormatUint(uint64(e.Port), 10))
}

// GetDomain returns the identity provider domain. It is not cached, so a
// changed DOMAIN is picked up by the next caller.
func GetDomain() string {
	return getEnv("DOMAIN", DefaultDomain)
}

// GetPort returns PORT parsed as an unsigned 16-bit integer, or DefaultPort
// when it is unset or unparseable.
func GetPort() uint16 {
	value := getEnv("PORT", "")
	if value == "" {
		return DefaultPort
	}

	port, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		return DefaultPort
	}
	return uint16(port)
}

// ParseLogLevel maps a LOG_LEVEL value onto a slog level. Unknown values
// fall back to info.
func ParseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// getEnv gets the environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}
