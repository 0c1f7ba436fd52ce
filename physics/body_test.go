package physics

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func nearVec(a, b cp.Vector) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestDetachedAccessorsUseCache(t *testing.T) {
	b := NewBox(1, 2, 3, 4)
	b.SetBodyType(DynamicBody)
	b.SetVelocity(cp.Vector{X: 5, Y: -6})
	b.SetAngle(0.25)
	b.SetFriction(0.7)
	b.SetBullet(true)

	if b.Attached() {
		t.Fatalf("new body should be detached")
	}
	if got := b.Position(); got != (cp.Vector{X: 1, Y: 2}) {
		t.Fatalf("position = %v", got)
	}
	if got := b.Velocity(); got != (cp.Vector{X: 5, Y: -6}) {
		t.Fatalf("velocity = %v", got)
	}
	if b.Angle() != 0.25 || b.Friction() != 0.7 || !b.IsBullet() {
		t.Fatalf("cached properties not returned: angle=%v friction=%v bullet=%v", b.Angle(), b.Friction(), b.IsBullet())
	}
	if b.EngineBody() != nil {
		t.Fatalf("detached body should have no engine body")
	}

	// Forces need an engine body.
	b.ApplyImpulse(cp.Vector{X: 100})
	if got := b.Velocity(); got != (cp.Vector{X: 5, Y: -6}) {
		t.Fatalf("impulse changed detached velocity: %v", got)
	}
}

func TestActivateDeactivateRoundTrip(t *testing.T) {
	cases := []struct {
		name     string
		setup    func(b *Box)
		attached func(b *Box)
		verify   func(t *testing.T, b *Box, space *cp.Space)
	}{
		{"dynamic_moving", func(b *Box) {
			b.SetBodyType(DynamicBody)
			b.SetVelocity(cp.Vector{X: 2, Y: 3})
			b.SetAngularVelocity(0.5)
		}, nil, nil},
		{"dynamic_flags", func(b *Box) {
			b.SetBodyType(DynamicBody)
			b.SetFixedRotation(true)
			b.SetBullet(true)
			b.SetSleepingAllowed(false)
			b.SetGravityScale(0)
			b.SetLinearDamping(0.3)
		}, nil, nil},
		{"static", func(b *Box) {
			b.SetAngle(0.1)
			b.SetFriction(0.9)
			b.SetRestitution(0.4)
		}, nil, nil},
		{"asleep_before_activate", func(b *Box) {
			b.SetBodyType(DynamicBody)
			b.SetAwake(false)
		}, nil, func(t *testing.T, b *Box, space *cp.Space) {
			if b.IsAwake() {
				t.Fatalf("body woke up across the round trip")
			}
		}},
		{"put_to_sleep_while_attached", func(b *Box) {
			b.SetBodyType(DynamicBody)
		}, func(b *Box) {
			b.SetAwake(false)
		}, func(t *testing.T, b *Box, space *cp.Space) {
			if b.IsAwake() {
				t.Fatalf("body woke up across the round trip")
			}
			b.SetAwake(true)
			if !b.IsAwake() {
				t.Fatalf("body did not wake")
			}
		}},
		{"deactivated_while_attached", func(b *Box) {
			b.SetBodyType(DynamicBody)
			b.SetVelocity(cp.Vector{X: 1})
		}, func(b *Box) {
			b.SetActive(false)
		}, func(t *testing.T, b *Box, space *cp.Space) {
			if b.IsActive() || space.ContainsBody(b.EngineBody()) {
				t.Fatalf("inactive body rejoined the space")
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			space := cp.NewSpace()
			space.SetGravity(cp.Vector{Y: -10})

			b := NewBox(0, 5, 1, 1)
			c.setup(b)
			if !b.Activate(space, "box") {
				t.Fatalf("activate failed")
			}
			if b.EngineBody().UserData != "box" {
				t.Fatalf("engine body user data = %v", b.EngineBody().UserData)
			}
			if c.attached != nil {
				c.attached(b)
			}
			space.Step(1.0 / 60)

			pos, vel, angle := b.Position(), b.Velocity(), b.Angle()
			w := b.AngularVelocity()
			typ := b.BodyType()
			fixed, bullet, sleep := b.IsFixedRotation(), b.IsBullet(), b.IsSleepingAllowed()
			awake, gravity, friction := b.IsAwake(), b.GravityScale(), b.Friction()
			restitution, damping := b.Restitution(), b.LinearDamping()
			active := b.IsActive()

			check := func(stage string) {
				t.Helper()
				if !nearVec(b.Position(), pos) || !nearVec(b.Velocity(), vel) {
					t.Fatalf("%s: position/velocity %v %v, want %v %v", stage, b.Position(), b.Velocity(), pos, vel)
				}
				if !near(b.Angle(), angle) || !near(b.AngularVelocity(), w) {
					t.Fatalf("%s: angle/angular velocity %v %v, want %v %v", stage, b.Angle(), b.AngularVelocity(), angle, w)
				}
				if b.BodyType() != typ || b.IsFixedRotation() != fixed || b.IsBullet() != bullet || b.IsSleepingAllowed() != sleep {
					t.Fatalf("%s: flags changed", stage)
				}
				if b.IsAwake() != awake || b.GravityScale() != gravity || b.LinearDamping() != damping {
					t.Fatalf("%s: awake/gravity/damping changed", stage)
				}
				if b.IsActive() != active {
					t.Fatalf("%s: active = %v, want %v", stage, b.IsActive(), active)
				}
				if !near(b.Friction(), friction) || !near(b.Restitution(), restitution) {
					t.Fatalf("%s: material changed", stage)
				}
			}

			b.Deactivate(space)
			if b.Attached() {
				t.Fatalf("body still attached after deactivate")
			}
			check("detached")

			b.Deactivate(space)
			check("second deactivate")

			if !b.Activate(space, "box") {
				t.Fatalf("reactivate failed")
			}
			check("reattached")
			if c.verify != nil {
				c.verify(t, b, space)
			}
		})
	}
}

func TestActivateRejects(t *testing.T) {
	space := cp.NewSpace()

	cases := []struct {
		name  string
		body  Body
		space *cp.Space
	}{
		{"nil_space", NewBox(0, 0, 1, 1), nil},
		{"zero_box", NewBox(0, 0, 0, 1), space},
		{"zero_circle", NewCircle(0, 0, 0), space},
		{"degenerate_polygon", NewPolygon([]cp.Vector{{X: 0}, {X: 1}, {X: 2}}, 0, 0), space},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if c.body.Activate(c.space, nil) {
				t.Fatalf("activate should fail")
			}
			if c.body.Attached() {
				t.Fatalf("body should remain detached")
			}
		})
	}

	t.Run("already_attached", func(t *testing.T) {
		b := NewBox(0, 0, 1, 1)
		if !b.Activate(space, nil) {
			t.Fatalf("first activate failed")
		}
		engine := b.EngineBody()
		if b.Activate(space, nil) {
			t.Fatalf("second activate should fail")
		}
		if b.EngineBody() != engine {
			t.Fatalf("second activate replaced the engine body")
		}
	})
}

func TestUpdateRebuildsDirtyFixtures(t *testing.T) {
	space := cp.NewSpace()
	b := NewBox(0, 0, 1, 1)
	b.SetBodyType(DynamicBody)
	if !b.Activate(space, nil) {
		t.Fatalf("activate failed")
	}
	before := b.Mass()

	b.SetDimension(2, 1)
	if !b.IsDirty() {
		t.Fatalf("resize should mark dirty")
	}
	b.Update(1.0 / 60)
	if b.IsDirty() {
		t.Fatalf("update should clear dirty")
	}
	if !near(b.Mass(), 2*before) {
		t.Fatalf("mass after resize = %v, want %v", b.Mass(), 2*before)
	}
}

func TestMassOverrides(t *testing.T) {
	space := cp.NewSpace()
	b := NewBox(0, 0, 2, 1)
	b.SetBodyType(DynamicBody)
	b.SetDensity(3)
	if !b.Activate(space, nil) {
		t.Fatalf("activate failed")
	}
	if !near(b.Mass(), 6) {
		t.Fatalf("density mass = %v, want 6", b.Mass())
	}
	inertia := b.Inertia()

	b.SetMass(10)
	if !near(b.Mass(), 10) || !near(b.Inertia(), inertia) {
		t.Fatalf("override mass=%v inertia=%v, want 10 %v", b.Mass(), b.Inertia(), inertia)
	}

	b.SetDimension(4, 1)
	b.Update(0)
	if !near(b.Mass(), 10) {
		t.Fatalf("override lost after rebuild: %v", b.Mass())
	}

	b.ResetMass()
	if !near(b.Mass(), 12) {
		t.Fatalf("reset mass = %v, want 12", b.Mass())
	}

	b.SetFixedRotation(true)
	if b.Inertia() != 0 {
		t.Fatalf("fixed rotation inertia = %v, want 0", b.Inertia())
	}

	b.SetBodyType(StaticBody)
	if b.Mass() != 0 {
		t.Fatalf("static mass = %v, want 0", b.Mass())
	}
}

func TestCentroidOverride(t *testing.T) {
	space := cp.NewSpace()
	b := NewBox(0, 0, 2, 1)
	b.SetBodyType(DynamicBody)
	if !b.Activate(space, nil) {
		t.Fatalf("activate failed")
	}
	mass, inertia := b.Mass(), b.Inertia()

	center := cp.Vector{X: 0.5, Y: -0.25}
	b.SetCentroid(center)
	if !nearVec(b.Centroid(), center) {
		t.Fatalf("centroid = %v, want %v", b.Centroid(), center)
	}
	if !near(b.Mass(), mass) || !near(b.Inertia(), inertia) {
		t.Fatalf("mass=%v inertia=%v, want %v %v", b.Mass(), b.Inertia(), mass, inertia)
	}

	b.Deactivate(space)
	if !nearVec(b.Centroid(), center) {
		t.Fatalf("detached centroid = %v, want %v", b.Centroid(), center)
	}
	if !b.Activate(space, nil) {
		t.Fatalf("reactivate failed")
	}
	if !nearVec(b.Centroid(), center) || !near(b.Mass(), mass) {
		t.Fatalf("override lost on reattach: %v %v", b.Centroid(), b.Mass())
	}

	b.ResetMass()
	if !nearVec(b.Centroid(), cp.Vector{}) {
		t.Fatalf("reset centroid = %v", b.Centroid())
	}
}

func TestMovedStaticBodyCollides(t *testing.T) {
	cases := []struct {
		name string
		move func(b *Box)
	}{
		{"position", func(b *Box) { b.SetPosition(cp.Vector{X: 20}) }},
		{"x", func(b *Box) { b.SetX(20) }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			space := cp.NewSpace()
			space.SetGravity(cp.Vector{Y: -10})

			platform := NewBox(0, 0, 4, 1)
			if !platform.Activate(space, nil) {
				t.Fatalf("activate platform failed")
			}
			c.move(platform)

			crate := NewBox(20, 1.5, 1, 1)
			crate.SetBodyType(DynamicBody)
			if !crate.Activate(space, nil) {
				t.Fatalf("activate crate failed")
			}
			for i := 0; i < 120; i++ {
				space.Step(1.0 / 60)
			}
			if crate.Y() < 0.8 {
				t.Fatalf("crate fell through the moved platform: y=%v", crate.Y())
			}
			if math.Abs(crate.VY()) > 0.1 {
				t.Fatalf("crate not resting: vy=%v", crate.VY())
			}
		})
	}
}

func TestInactiveBodyLeavesSpace(t *testing.T) {
	space := cp.NewSpace()
	b := NewBox(0, 0, 1, 1)
	b.SetBodyType(DynamicBody)
	if !b.Activate(space, nil) {
		t.Fatalf("activate failed")
	}
	if !space.ContainsBody(b.EngineBody()) {
		t.Fatalf("body not in space")
	}
	b.SetActive(false)
	if space.ContainsBody(b.EngineBody()) || b.IsActive() {
		t.Fatalf("inactive body still in space")
	}
	b.SetActive(true)
	if !space.ContainsBody(b.EngineBody()) || !b.IsActive() {
		t.Fatalf("reactivated body not in space")
	}
}

func TestGravityScale(t *testing.T) {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{Y: -10})

	floating := NewCircle(0, 0, 0.5)
	floating.SetBodyType(DynamicBody)
	floating.SetGravityScale(0)
	falling := NewCircle(5, 0, 0.5)
	falling.SetBodyType(DynamicBody)

	for _, b := range []*Circle{floating, falling} {
		if !b.Activate(space, nil) {
			t.Fatalf("activate failed")
		}
	}
	for i := 0; i < 10; i++ {
		space.Step(1.0 / 60)
	}
	if floating.VY() != 0 {
		t.Fatalf("gravity exempt body moved: vy=%v", floating.VY())
	}
	if falling.VY() >= 0 {
		t.Fatalf("falling body did not accelerate: vy=%v", falling.VY())
	}
}
