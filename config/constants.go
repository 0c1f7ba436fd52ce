package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultFile = "constants.yaml"

// Constants holds the tunable simulation values. All lengths are in
// simulation units.
type Constants struct {
	Gravity  float64       `yaml:"gravity"`
	Step     StepConstants `yaml:"step"`
	Player   Player        `yaml:"player"`
	Platform Material      `yaml:"platform"`
	Wood     Material      `yaml:"wood"`
	Bridge   Bridge        `yaml:"bridge"`
	Fireball Fireball      `yaml:"fireball"`
}

type StepConstants struct {
	DT                 float64 `yaml:"dt"`
	VelocityIterations int     `yaml:"velocity_iterations"`
	PositionIterations int     `yaml:"position_iterations"`
}

type Material struct {
	Density     float64 `yaml:"density"`
	Friction    float64 `yaml:"friction"`
	Restitution float64 `yaml:"restitution"`
}

type Player struct {
	Material `yaml:",inline"`

	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	JumpForce        float64 `yaml:"jump_force"`
	WalkForce        float64 `yaml:"walk_force"`
	MaxWalkSpeed     float64 `yaml:"max_walk_speed"`
	SensorHeight     float64 `yaml:"sensor_height"`
	SensorWidthRatio float64 `yaml:"sensor_width_ratio"`
	FireballCooldown float64 `yaml:"fireball_cooldown"`
}

type Bridge struct {
	Material `yaml:",inline"`

	LinkHeight float64 `yaml:"link_height"`
}

type Fireball struct {
	Material `yaml:",inline"`

	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
	Radius   float64 `yaml:"radius"`
	Speed    float64 `yaml:"speed"`
	Lifetime float64 `yaml:"lifetime"`
	Script   string  `yaml:"script"`
}

// Default mirrors the embedded constants.yaml.
func Default() Constants {
	return Constants{
		Gravity: -4.9,
		Step:    StepConstants{DT: 1.0 / 60, VelocityIterations: 6, PositionIterations: 2},
		Player: Player{
			Material:         Material{Density: 1},
			Width:            0.5,
			Height:           1,
			JumpForce:        2.5,
			WalkForce:        5,
			MaxWalkSpeed:     3,
			SensorHeight:     0.04,
			SensorWidthRatio: 0.5,
			FireballCooldown: 0.25,
		},
		Platform: Material{Density: 0, Friction: 0.6},
		Wood:     Material{Density: 1, Friction: 0.4, Restitution: 0.1},
		Bridge:   Bridge{Material: Material{Density: 1, Friction: 0.6}, LinkHeight: 0.2},
		Fireball: Fireball{
			Material: Material{Density: 1},
			OffsetX:  0.5,
			Radius:   0.25,
			Speed:    6,
			Lifetime: 3,
			Script:   "fireball.tengo",
		},
	}
}

// LoadConstants reads name through Load and overlays it on Default, so keys
// missing from the file keep their default values.
func LoadConstants(name string) (Constants, error) {
	c := Default()
	data, err := Load(name)
	if err != nil {
		return c, fmt.Errorf("config: load %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", name, err)
	}
	return c, nil
}

// LoadConstantsFile reads an explicit path instead of the config directory.
func LoadConstantsFile(path string) (Constants, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return c, nil
}
