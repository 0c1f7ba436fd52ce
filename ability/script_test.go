package ability

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestEmbeddedFireballScript(t *testing.T) {
	s, err := Load("fireball.tengo")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	cases := []struct {
		name   string
		facing int
		player cp.Vector
		want   cp.Vector
	}{
		{"right_standing", 1, cp.Vector{}, cp.Vector{X: 6}},
		{"left_standing", -1, cp.Vector{}, cp.Vector{X: -6}},
		{"right_running", 1, cp.Vector{X: 2, Y: 1}, cp.Vector{X: 8}},
		{"left_running_backwards", -1, cp.Vector{X: 2}, cp.Vector{X: -6}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := s.Launch(c.facing, 6, c.player)
			if err != nil {
				t.Fatalf("launch: %v", err)
			}
			if got != c.want {
				t.Fatalf("launch = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	if _, err := Compile("broken", []byte("vx = (")); err == nil {
		t.Fatalf("expected compile error")
	}
	if _, err := Load("missing.tengo"); err == nil {
		t.Fatalf("expected load error")
	}
	var s *Script
	if _, err := s.Launch(1, 1, cp.Vector{}); err != ErrNoScript {
		t.Fatalf("nil script error = %v", err)
	}
}

func TestScriptCanUseMath(t *testing.T) {
	s, err := Compile("aim", []byte(`
math := import("math")
vx = facing * speed * math.cos(math.pi / 3)
vy = speed * math.sin(math.pi / 6)
`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	got, err := s.Launch(1, 2, cp.Vector{})
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	if got.X < 0.999 || got.X > 1.001 || got.Y < 0.999 || got.Y > 1.001 {
		t.Fatalf("launch = %v, want ~(1, 1)", got)
	}
}

func TestStraight(t *testing.T) {
	got, _ := Straight{}.Launch(-1, 4, cp.Vector{X: 9})
	if got != (cp.Vector{X: -4}) {
		t.Fatalf("straight = %v", got)
	}
}
