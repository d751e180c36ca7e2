// Package config loads the optional drawer.yaml configuration for the
// demo CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/go-drawer/drawer/pkg/animation"
	"github.com/go-drawer/drawer/pkg/drawer"
	"github.com/go-drawer/drawer/pkg/snap"
)

// Config represents the optional drawer.yaml configuration.
type Config struct {
	// Side is bottom, top, left, or right.
	Side string `yaml:"side,omitempty"`
	// SnapPoints accepts bare numbers (container fractions), unit
	// strings ("320px", "50%", "30vh"), or mappings with value and id.
	SnapPoints []SnapPoint `yaml:"snap_points,omitempty"`
	// InitialSnap is the index the drawer opens to.
	InitialSnap int `yaml:"initial_snap,omitempty"`
	// Spring is a preset name: default, gentle, wobbly, stiff, ios,
	// or bouncy.
	Spring string `yaml:"spring,omitempty"`
	// VelocityThreshold is in px/ms.
	VelocityThreshold float64 `yaml:"velocity_threshold,omitempty"`
	DismissFactor     float64 `yaml:"dismiss_factor,omitempty"`
	DampenFactor      float64 `yaml:"dampen_factor,omitempty"`
	Dismissible       bool    `yaml:"dismissible,omitempty"`
}

// SnapPoint is a snap descriptor in any of its yaml spellings.
type SnapPoint struct {
	Descriptor snap.Descriptor
}

// UnmarshalYAML accepts a scalar number, a unit string, or a mapping
// with value and optional id.
func (p *SnapPoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err == nil {
			p.Descriptor = snap.Fraction(f)
			return nil
		}
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("invalid snap point: %w", err)
		}
		p.Descriptor = snap.Parse(s)
		return nil
	case yaml.MappingNode:
		var m struct {
			Value string `yaml:"value"`
			ID    string `yaml:"id,omitempty"`
		}
		if err := node.Decode(&m); err != nil {
			return fmt.Errorf("invalid snap point mapping: %w", err)
		}
		p.Descriptor = snap.Parse(m.Value).WithID(m.ID)
		return nil
	default:
		return fmt.Errorf("invalid snap point on line %d", node.Line)
	}
}

// LoadOptional reads drawer.yaml from dir if present. A missing file
// yields an empty config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "drawer.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read drawer.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse drawer.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve maps the file values onto a drawer.Config, leaving zero
// values for the controller's own defaults.
func (c *Config) Resolve() (drawer.Config, error) {
	out := drawer.Config{
		InitialSnap:       c.InitialSnap,
		VelocityThreshold: c.VelocityThreshold,
		DismissFactor:     c.DismissFactor,
		DampenFactor:      c.DampenFactor,
		Dismissible:       c.Dismissible,
	}

	switch c.Side {
	case "", "bottom":
		out.Side = drawer.SideBottom
	case "top":
		out.Side = drawer.SideTop
	case "left":
		out.Side = drawer.SideLeft
	case "right":
		out.Side = drawer.SideRight
	default:
		return drawer.Config{}, fmt.Errorf("unknown side %q", c.Side)
	}

	spring, err := springPreset(c.Spring)
	if err != nil {
		return drawer.Config{}, err
	}
	out.Spring = spring

	for _, p := range c.SnapPoints {
		out.SnapPoints = append(out.SnapPoints, p.Descriptor)
	}
	return out, nil
}

func springPreset(name string) (animation.SpringConfig, error) {
	switch name {
	case "":
		return animation.SpringConfig{}, nil
	case "default":
		return animation.SpringDefault(), nil
	case "gentle":
		return animation.SpringGentle(), nil
	case "wobbly":
		return animation.SpringWobbly(), nil
	case "stiff":
		return animation.SpringStiff(), nil
	case "ios":
		return animation.IOSSpring(), nil
	case "bouncy":
		return animation.BouncySpring(), nil
	default:
		return animation.SpringConfig{}, fmt.Errorf("unknown spring preset %q", name)
	}
}
