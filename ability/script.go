package ability

import (
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
)

var ErrNoScript = errors.New("ability: no script loaded")

// Launcher computes a projectile's launch velocity.
type Launcher interface {
	Launch(facing int, speed float64, playerVelocity cp.Vector) (cp.Vector, error)
}

// Script runs a tengo program that reads facing, speed, player_vx and
// player_vy and writes vx and vy.
type Script struct {
	name     string
	compiled *tengo.Compiled
}

// Load compiles the named script through config.LoadScript.
func Load(name string) (*Script, error) {
	src, err := config.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("ability: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func Compile(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	for _, global := range []string{"facing", "speed", "player_vx", "player_vy", "vx", "vy"} {
		if err := script.Add(global, 0.0); err != nil {
			return nil, fmt.Errorf("ability: compile %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ability: compile %s: %w", name, err)
	}
	return &Script{name: name, compiled: compiled}, nil
}

func (s *Script) Name() string { return s.name }

func (s *Script) Launch(facing int, speed float64, playerVelocity cp.Vector) (cp.Vector, error) {
	if s == nil || s.compiled == nil {
		return cp.Vector{}, ErrNoScript
	}
	inputs := map[string]float64{
		"facing":    float64(facing),
		"speed":     speed,
		"player_vx": playerVelocity.X,
		"player_vy": playerVelocity.Y,
		"vx":        0,
		"vy":        0,
	}
	for name, v := range inputs {
		if err := s.compiled.Set(name, v); err != nil {
			return cp.Vector{}, fmt.Errorf("ability: run %s: %w", s.name, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return cp.Vector{}, fmt.Errorf("ability: run %s: %w", s.name, err)
	}
	return cp.Vector{X: s.compiled.Get("vx").Float(), Y: s.compiled.Get("vy").Float()}, nil
}

// Straight launches horizontally in the facing direction. It is used when a
// script is missing or fails.
type Straight struct{}

func (Straight) Launch(facing int, speed float64, _ cp.Vector) (cp.Vector, error) {
	return cp.Vector{X: float64(facing) * speed}, nil
}
