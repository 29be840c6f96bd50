// Package gesture recognizes high-level gestures (tap, long press) from raw
// mouse events and queues input for per-frame processing.
package gesture

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/novelui/pkg/errors"
)

// Config holds the gesture detection thresholds.
type Config struct {
	// TapDistance is the maximum pointer travel, in pixels, between press
	// and release for the sequence to count as a tap or long press.
	TapDistance float64 `yaml:"tap_distance"`

	// LongPress is the hold duration at which a release becomes a long
	// press instead of a tap.
	LongPress time.Duration `yaml:"long_press"`

	// TapTime is the maximum press duration for a clean tap. Releases
	// between TapTime and LongPress still count as taps.
	TapTime time.Duration `yaml:"tap_time"`
}

// UnmarshalYAML decodes thresholds, accepting durations in Go syntax
// ("500ms", "1.5s"). Absent fields keep their current values.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		TapDistance *float64 `yaml:"tap_distance"`
		LongPress   *string  `yaml:"long_press"`
		TapTime     *string  `yaml:"tap_time"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.TapDistance != nil {
		c.TapDistance = *raw.TapDistance
	}
	if raw.LongPress != nil {
		d, err := time.ParseDuration(*raw.LongPress)
		if err != nil {
			return fmt.Errorf("long_press: %w", err)
		}
		c.LongPress = d
	}
	if raw.TapTime != nil {
		d, err := time.ParseDuration(*raw.TapTime)
		if err != nil {
			return fmt.Errorf("tap_time: %w", err)
		}
		c.TapTime = d
	}
	return nil
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TapDistance: 10.0,
		LongPress:   500 * time.Millisecond,
		TapTime:     300 * time.Millisecond,
	}
}

// LoadConfig reads thresholds from a YAML file. Missing fields keep their
// default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, &errors.UIError{
			Op:   "gesture.LoadConfig",
			Kind: errors.KindConfig,
			Err:  err,
		}
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, &errors.UIError{
			Op:   "gesture.LoadConfig",
			Kind: errors.KindConfig,
			Err:  fmt.Errorf("parse %s: %w", path, err),
		}
	}
	return config, nil
}
