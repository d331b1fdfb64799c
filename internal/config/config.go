// Package config handles objmix configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/philipparndt/objmix/pkg/obj"
)

// Config holds all objmix settings.
type Config struct {
	Transform TransformConfig `yaml:"transform"`
	Output    OutputConfig    `yaml:"output"`
	Logging   LoggingConfig   `yaml:"logging"`
	Watch     WatchConfig     `yaml:"watch"`
}

// TransformConfig holds the rotation and alignment applied after merging.
type TransformConfig struct {
	RotateX   float64 `yaml:"rotate_x"` // Degrees
	RotateY   float64 `yaml:"rotate_y"`
	RotateZ   float64 `yaml:"rotate_z"`
	Align     bool    `yaml:"align"`
	AlignMode string  `yaml:"align_mode"` // mixed or center
}

// OutputConfig holds serializer settings.
type OutputConfig struct {
	File       string `yaml:"file"`       // Empty writes to stdout
	Attributes string `yaml:"attributes"` // always or when-set
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// WatchConfig holds watch mode settings.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Transform: TransformConfig{
			Align:     false,
			AlignMode: obj.AlignMixed.String(),
		},
		Output: OutputConfig{
			Attributes: obj.AttributesAlways.String(),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if _, err := obj.ParseAlignMode(c.Transform.AlignMode); err != nil {
		return fmt.Errorf("transform.align_mode: %w", err)
	}
	if _, err := obj.ParseAttributePolicy(c.Output.Attributes); err != nil {
		return fmt.Errorf("output.attributes: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce: must not be negative, got %v", c.Watch.Debounce)
	}
	return nil
}
