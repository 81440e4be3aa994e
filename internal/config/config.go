// Package config reads process settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvImage    = "IMAGE_ANNOTATE_IMAGE"
	EnvWindow   = "IMAGE_ANNOTATE_WINDOW"
	EnvLogLevel = "IMAGE_ANNOTATE_LOG_LEVEL"
	EnvLogFile  = "IMAGE_ANNOTATE_LOG_FILE"
	EnvBeep     = "IMAGE_ANNOTATE_BEEP"
)

type Config struct {
	ImagePath  string
	WindowName string
	LogLevel   string
	LogFile    string // empty discards log output
	Beep       bool
}

// Debug reports whether verbose logging was requested.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Load reads the environment, after seeding it from the given .env files.
// Missing files are skipped and variables already set win over file values.
// With no files given, ".env" in the working directory is tried. A file that
// exists but does not parse is an error.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}

	return &Config{
		ImagePath:  getEnv(EnvImage, "data/dog_backpack.jpg"),
		WindowName: getEnv(EnvWindow, "mouse_draw_circles"),
		LogLevel:   getEnv(EnvLogLevel, "info"),
		LogFile:    getEnv(EnvLogFile, ""),
		Beep:       getEnvAsBool(EnvBeep, false),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
