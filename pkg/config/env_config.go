// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variable names recognized by LoadConfigFromEnv. Every value
// is optional; unset variables fall back to DefaultConfig.
const (
	EnvWindowTitle      = "PHYSIM_WINDOW_TITLE"
	EnvWindowWidth      = "PHYSIM_WINDOW_WIDTH"
	EnvWindowHeight     = "PHYSIM_WINDOW_HEIGHT"
	EnvWindowFullscreen = "PHYSIM_WINDOW_FULLSCREEN"
	EnvWindowVSync      = "PHYSIM_WINDOW_VSYNC"
	EnvWindowBackground = "PHYSIM_WINDOW_BACKGROUND"
	EnvMarkerCount      = "PHYSIM_MARKER_COUNT"
	EnvMarkerRadius     = "PHYSIM_MARKER_RADIUS"
	EnvMarkerSpeed      = "PHYSIM_MARKER_SPEED"
)

// LoadConfigFromEnv builds a configuration from defaults overlaid with
// PHYSIM_* environment variables, then validates the result.
func LoadConfigFromEnv() (*SimConfig, error) {
	config := DefaultConfig()

	config.Window.Title = getEnvString(EnvWindowTitle, config.Window.Title)
	config.Window.Background = getEnvString(EnvWindowBackground, config.Window.Background)

	var err error
	if config.Window.Width, err = getEnvInt(EnvWindowWidth, config.Window.Width); err != nil {
		return nil, err
	}
	if config.Window.Height, err = getEnvInt(EnvWindowHeight, config.Window.Height); err != nil {
		return nil, err
	}
	if config.Window.Fullscreen, err = getEnvBool(EnvWindowFullscreen, config.Window.Fullscreen); err != nil {
		return nil, err
	}
	if config.Window.VSync, err = getEnvBool(EnvWindowVSync, config.Window.VSync); err != nil {
		return nil, err
	}
	if config.Markers.Count, err = getEnvInt(EnvMarkerCount, config.Markers.Count); err != nil {
		return nil, err
	}
	if config.Markers.Radius, err = getEnvFloat(EnvMarkerRadius, config.Markers.Radius); err != nil {
		return nil, err
	}
	if config.Markers.Speed, err = getEnvFloat(EnvMarkerSpeed, config.Markers.Speed); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}

	return config, nil
}

func getEnvString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %w", key, err)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return parsed, nil
}
