// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SimConfig contains configuration for a simulation run
type SimConfig struct {
	Window  WindowConfig  `json:"window"`
	Markers MarkerConfig  `json:"markers"`
	Logging LoggingConfig `json:"logging"`
}

// WindowConfig contains configuration for the render surface
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
	VSync      bool   `json:"vsync"`
	Background string `json:"background"`
}

// MarkerConfig controls the demo markers the scene animates
type MarkerConfig struct {
	Count  int     `json:"count"`
	Radius float64 `json:"radius"`
	Speed  float64 `json:"speed"`
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level string `json:"level"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*SimConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SimConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks that the configuration describes a runnable window
func (c *SimConfig) Validate() error {
	if c.Window.Width <= 0 {
		return fmt.Errorf("window width must be positive, got %d", c.Window.Width)
	}
	if c.Window.Height <= 0 {
		return fmt.Errorf("window height must be positive, got %d", c.Window.Height)
	}
	if c.Window.Title == "" {
		return fmt.Errorf("window title must not be empty")
	}
	if c.Markers.Count < 0 {
		return fmt.Errorf("marker count must not be negative, got %d", c.Markers.Count)
	}
	if c.Markers.Radius <= 0 {
		return fmt.Errorf("marker radius must be positive, got %v", c.Markers.Radius)
	}
	if c.Markers.Speed <= 0 {
		return fmt.Errorf("marker speed must be positive, got %v", c.Markers.Speed)
	}
	return nil
}

// DefaultConfig returns a default simulation configuration matching the
// 800x600 window the original bootstrap opened
func DefaultConfig() *SimConfig {
	return &SimConfig{
		Window: WindowConfig{
			Title:      "Physics Sim",
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			Background: "#101018",
		},
		Markers: MarkerConfig{
			Count:  4,
			Radius: 6,
			Speed:  120,
		},
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}
