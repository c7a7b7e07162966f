// Package config loads input tuning from yaml: repeat timing, thresholds,
// touch compatibility policy and binding overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/framepad/input"
	"github.com/milk9111/framepad/pointer"
)

// Settings is the on-disk input configuration. Absent fields keep their
// defaults; binding maps add to the built-in tables rather than replacing
// them.
type Settings struct {
	RepeatWait     int     `yaml:"repeat_wait"`
	RepeatInterval int     `yaml:"repeat_interval"`
	AxisThreshold  float64 `yaml:"axis_threshold"`
	MoveThreshold  float64 `yaml:"move_threshold"`

	TwoFingerCancel      bool `yaml:"two_finger_cancel"`
	SecondaryTouchCancel bool `yaml:"secondary_touch_cancel"`

	// Keys maps platform key codes to logical button names.
	Keys map[int]string `yaml:"keys"`
	// Pad maps gamepad button indices to logical button names.
	Pad map[int]string `yaml:"pad"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		RepeatWait:           input.DefaultRepeatWait,
		RepeatInterval:       input.DefaultRepeatInterval,
		AxisThreshold:        input.DefaultAxisThreshold,
		MoveThreshold:        pointer.DefaultMoveThreshold,
		TwoFingerCancel:      true,
		SecondaryTouchCancel: true,
	}
}

// Load reads settings from a yaml file, starting from the defaults.
func Load(filename string) (Settings, error) {
	s := Default()
	data, err := os.ReadFile(filename)
	if err != nil {
		return s, fmt.Errorf("config: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config: validate %s: %w", filename, err)
	}
	return s, nil
}

// Validate rejects non-positive timing, negative thresholds and bindings that
// name unknown buttons.
func (s Settings) Validate() error {
	if s.RepeatWait <= 0 {
		return fmt.Errorf("config: repeat_wait must be positive, got %d", s.RepeatWait)
	}
	if s.RepeatInterval <= 0 {
		return fmt.Errorf("config: repeat_interval must be positive, got %d", s.RepeatInterval)
	}
	if s.AxisThreshold <= 0 || s.AxisThreshold >= 1 {
		return fmt.Errorf("config: axis_threshold must be in (0, 1), got %g", s.AxisThreshold)
	}
	if s.MoveThreshold < 0 {
		return fmt.Errorf("config: move_threshold must not be negative, got %g", s.MoveThreshold)
	}
	for code, name := range s.Keys {
		if _, err := input.ParseButton(name); err != nil {
			return fmt.Errorf("config: key binding %d: %w", code, err)
		}
	}
	for index, name := range s.Pad {
		if _, err := input.ParseButton(name); err != nil {
			return fmt.Errorf("config: pad binding %d: %w", index, err)
		}
	}
	return nil
}

// Apply pushes the settings into both input components.
func (s Settings) Apply(in *input.Input, pt *pointer.Pointer) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if in != nil {
		in.SetRepeat(s.RepeatWait, s.RepeatInterval)
		in.SetAxisThreshold(s.AxisThreshold)
		for code, name := range s.Keys {
			b, _ := input.ParseButton(name)
			if err := in.BindKey(code, b); err != nil {
				return err
			}
		}
		for index, name := range s.Pad {
			b, _ := input.ParseButton(name)
			if err := in.BindPadButton(index, b); err != nil {
				return err
			}
		}
	}
	if pt != nil {
		pt.SetRepeat(s.RepeatWait, s.RepeatInterval)
		pt.SetMoveThreshold(s.MoveThreshold)
		pt.SetPolicy(pointer.Policy{
			TwoFingerCancel:      s.TwoFingerCancel,
			SecondaryTouchCancel: s.SecondaryTouchCancel,
		})
	}
	return nil
}
