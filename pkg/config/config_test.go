package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Window.Title != "Physics Sim" {
		t.Errorf("Expected title 'Physics Sim', got %q", config.Window.Title)
	}
	if config.Window.Width != 800 || config.Window.Height != 600 {
		t.Errorf("Expected 800x600 window, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if !config.Window.VSync {
		t.Error("Expected VSync enabled by default")
	}
	if config.Window.Fullscreen {
		t.Error("Expected windowed mode by default")
	}
	if config.Markers.Count <= 0 {
		t.Errorf("Expected a positive default marker count, got %d", config.Markers.Count)
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() must validate, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sim.json")

		original := DefaultConfig()
		original.Window.Title = "Round Trip"
		original.Window.Width = 1280
		original.Markers.Count = 9

		if err := SaveConfig(original, path); err != nil {
			t.Fatalf("SaveConfig() failed: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() failed: %v", err)
		}

		if *loaded != *original {
			t.Errorf("LoadConfig() = %+v, expected %+v", loaded, original)
		}
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
		if err == nil {
			t.Error("LoadConfig() on a missing file must fail")
		}
	})

	t.Run("malformed_json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		_, err := LoadConfig(path)
		if err == nil {
			t.Error("LoadConfig() on malformed JSON must fail")
		}
	})

	t.Run("invalid_values_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "invalid.json")
		if err := os.WriteFile(path, []byte(`{"window":{"title":"x","width":-1,"height":600}}`), 0o644); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		_, err := LoadConfig(path)
		if err == nil {
			t.Error("LoadConfig() must reject a negative window width")
		}
	})
}

func TestSimConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SimConfig)
		wantErr bool
	}{
		{
			name:    "default_is_valid",
			mutate:  func(c *SimConfig) {},
			wantErr: false,
		},
		{
			name:    "zero_width",
			mutate:  func(c *SimConfig) { c.Window.Width = 0 },
			wantErr: true,
		},
		{
			name:    "negative_height",
			mutate:  func(c *SimConfig) { c.Window.Height = -600 },
			wantErr: true,
		},
		{
			name:    "empty_title",
			mutate:  func(c *SimConfig) { c.Window.Title = "" },
			wantErr: true,
		},
		{
			name:    "negative_marker_count",
			mutate:  func(c *SimConfig) { c.Markers.Count = -1 },
			wantErr: true,
		},
		{
			name:    "zero_marker_count_allowed",
			mutate:  func(c *SimConfig) { c.Markers.Count = 0 },
			wantErr: false,
		},
		{
			name:    "zero_marker_radius",
			mutate:  func(c *SimConfig) { c.Markers.Radius = 0 },
			wantErr: true,
		},
		{
			name:    "zero_marker_speed",
			mutate:  func(c *SimConfig) { c.Markers.Speed = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)

			err := config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
