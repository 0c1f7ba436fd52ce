package physics

import "github.com/jakecoffman/cp"

// Every accessor below reads from and writes to the engine body while the
// body is attached, and to the detached cache otherwise.

func (b *Base) BodyType() BodyType {
	switch s := b.state.(type) {
	case *attached:
		return bodyTypeOf(s.body)
	case *detached:
		return s.def.Type
	}
	return StaticBody
}

func (b *Base) SetBodyType(t BodyType) {
	switch s := b.state.(type) {
	case *attached:
		if bodyTypeOf(s.body) == t {
			return
		}
		setEngineType(s.body, t)
		b.remass(s)
	case *detached:
		s.def.Type = t
	}
}

func (b *Base) Position() cp.Vector {
	switch s := b.state.(type) {
	case *attached:
		return s.body.Position()
	case *detached:
		return s.def.Position
	}
	return cp.Vector{}
}

func (b *Base) SetPosition(p cp.Vector) {
	switch s := b.state.(type) {
	case *attached:
		s.body.SetPosition(p)
		s.reindex()
	case *detached:
		s.def.Position = p
	}
}

func (b *Base) X() float64 { return b.Position().X }
func (b *Base) Y() float64 { return b.Position().Y }

func (b *Base) SetX(x float64) { b.SetPosition(cp.Vector{X: x, Y: b.Y()}) }
func (b *Base) SetY(y float64) { b.SetPosition(cp.Vector{X: b.X(), Y: y}) }

func (b *Base) Angle() float64 {
	switch s := b.state.(type) {
	case *attached:
		return s.body.Angle()
	case *detached:
		return s.def.Angle
	}
	return 0
}

func (b *Base) SetAngle(angle float64) {
	switch s := b.state.(type) {
	case *attached:
		s.body.SetAngle(angle)
		s.reindex()
	case *detached:
		s.def.Angle = angle
	}
}

func (b *Base) Velocity() cp.Vector {
	switch s := b.state.(type) {
	case *attached:
		return s.body.Velocity()
	case *detached:
		return s.def.LinearVelocity
	}
	return cp.Vector{}
}

func (b *Base) SetVelocity(v cp.Vector) {
	switch s := b.state.(type) {
	case *attached:
		if s.body.GetType() != cp.BODY_STATIC {
			s.body.SetVelocityVector(v)
		}
	case *detached:
		s.def.LinearVelocity = v
	}
}

func (b *Base) VX() float64 { return b.Velocity().X }
func (b *Base) VY() float64 { return b.Velocity().Y }

func (b *Base) SetVX(vx float64) { b.SetVelocity(cp.Vector{X: vx, Y: b.VY()}) }
func (b *Base) SetVY(vy float64) { b.SetVelocity(cp.Vector{X: b.VX(), Y: vy}) }

func (b *Base) AngularVelocity() float64 {
	switch s := b.state.(type) {
	case *attached:
		return s.body.AngularVelocity()
	case *detached:
		return s.def.AngularVelocity
	}
	return 0
}

func (b *Base) SetAngularVelocity(w float64) {
	switch s := b.state.(type) {
	case *attached:
		if s.body.GetType() != cp.BODY_STATIC && !s.fixedRotation {
			s.body.SetAngularVelocity(w)
		}
	case *detached:
		s.def.AngularVelocity = w
	}
}

// IsActive reports whether the body takes part in the simulation. An
// inactive attached body keeps its engine handle but is not in the space.
func (b *Base) IsActive() bool {
	switch s := b.state.(type) {
	case *attached:
		return s.inSpace
	case *detached:
		return s.def.Active
	}
	return false
}

func (b *Base) SetActive(active bool) {
	switch s := b.state.(type) {
	case *attached:
		if active {
			s.addToSpace()
			b.remass(s)
		} else {
			s.removeFromSpace()
		}
	case *detached:
		s.def.Active = active
	}
}

func (b *Base) IsAwake() bool {
	switch s := b.state.(type) {
	case *attached:
		return s.isAwake()
	case *detached:
		return s.def.Awake
	}
	return false
}

func (b *Base) SetAwake(awake bool) {
	switch s := b.state.(type) {
	case *attached:
		if awake {
			s.wake()
		} else {
			s.awake = false
		}
	case *detached:
		s.def.Awake = awake
	}
}

func (b *Base) IsSleepingAllowed() bool {
	switch s := b.state.(type) {
	case *attached:
		return s.sleepAllowed
	case *detached:
		return s.def.SleepAllowed
	}
	return false
}

func (b *Base) SetSleepingAllowed(allowed bool) {
	switch s := b.state.(type) {
	case *attached:
		s.sleepAllowed = allowed
		if !allowed {
			s.wake()
		}
	case *detached:
		s.def.SleepAllowed = allowed
	}
}

// IsBullet is kept for callers that treat fast bodies specially; the
// engine has no continuous collision mode to switch on.
func (b *Base) IsBullet() bool {
	switch s := b.state.(type) {
	case *attached:
		return s.bullet
	case *detached:
		return s.def.Bullet
	}
	return false
}

func (b *Base) SetBullet(bullet bool) {
	switch s := b.state.(type) {
	case *attached:
		s.bullet = bullet
	case *detached:
		s.def.Bullet = bullet
	}
}

func (b *Base) IsFixedRotation() bool {
	switch s := b.state.(type) {
	case *attached:
		return s.fixedRotation
	case *detached:
		return s.def.FixedRotation
	}
	return false
}

func (b *Base) SetFixedRotation(fixed bool) {
	switch s := b.state.(type) {
	case *attached:
		if s.fixedRotation == fixed {
			return
		}
		s.fixedRotation = fixed
		b.remass(s)
	case *detached:
		s.def.FixedRotation = fixed
	}
}

func (b *Base) GravityScale() float64 {
	switch s := b.state.(type) {
	case *attached:
		return s.gravityScale
	case *detached:
		return s.def.GravityScale
	}
	return 0
}

func (b *Base) SetGravityScale(scale float64) {
	switch s := b.state.(type) {
	case *attached:
		s.gravityScale = scale
	case *detached:
		s.def.GravityScale = scale
	}
}

func (b *Base) LinearDamping() float64 {
	switch s := b.state.(type) {
	case *attached:
		return s.linearDamping
	case *detached:
		return s.def.LinearDamping
	}
	return 0
}

func (b *Base) SetLinearDamping(damping float64) {
	switch s := b.state.(type) {
	case *attached:
		s.linearDamping = damping
	case *detached:
		s.def.LinearDamping = damping
	}
}

func (b *Base) AngularDamping() float64 {
	switch s := b.state.(type) {
	case *attached:
		return s.angularDamping
	case *detached:
		return s.def.AngularDamping
	}
	return 0
}

func (b *Base) SetAngularDamping(damping float64) {
	switch s := b.state.(type) {
	case *attached:
		s.angularDamping = damping
	case *detached:
		s.def.AngularDamping = damping
	}
}

// Material.

func (b *Base) Density() float64 {
	switch s := b.state.(type) {
	case *attached:
		return s.fixture.Density
	case *detached:
		return s.fixture.Density
	}
	return 0
}

func (b *Base) SetDensity(density float64) {
	switch s := b.state.(type) {
	case *attached:
		s.fixture.Density = density
		b.remass(s)
	case *detached:
		s.fixture.Density = density
	}
}

func (b *Base) Friction() float64 {
	switch s := b.state.(type) {
	case *attached:
		if p := s.primary(); p != nil {
			return p.Friction()
		}
		return s.fixture.Friction
	case *detached:
		return s.fixture.Friction
	}
	return 0
}

func (b *Base) SetFriction(friction float64) {
	switch s := b.state.(type) {
	case *attached:
		s.fixture.Friction = friction
		for _, f := range s.fixtures {
			f.shape.SetFriction(friction)
		}
	case *detached:
		s.fixture.Friction = friction
	}
}

func (b *Base) Restitution() float64 {
	switch s := b.state.(type) {
	case *attached:
		if p := s.primary(); p != nil {
			return p.Elasticity()
		}
		return s.fixture.Restitution
	case *detached:
		return s.fixture.Restitution
	}
	return 0
}

func (b *Base) SetRestitution(restitution float64) {
	switch s := b.state.(type) {
	case *attached:
		s.fixture.Restitution = restitution
		for _, f := range s.fixtures {
			f.shape.SetElasticity(restitution)
		}
	case *detached:
		s.fixture.Restitution = restitution
	}
}

func (b *Base) IsSensor() bool {
	switch s := b.state.(type) {
	case *attached:
		if p := s.primary(); p != nil {
			return p.Sensor()
		}
		return s.fixture.Sensor
	case *detached:
		return s.fixture.Sensor
	}
	return false
}

func (b *Base) SetSensor(sensor bool) {
	switch s := b.state.(type) {
	case *attached:
		s.fixture.Sensor = sensor
		for _, f := range s.fixtures {
			if !f.reserved {
				f.shape.SetSensor(sensor)
			}
		}
	case *detached:
		s.fixture.Sensor = sensor
	}
}

func (b *Base) Filter() Filter {
	switch s := b.state.(type) {
	case *attached:
		if p := s.primary(); p != nil {
			return filterOf(p.Filter)
		}
		return s.fixture.Filter
	case *detached:
		return s.fixture.Filter
	}
	return DefaultFilter()
}

func (b *Base) SetFilter(filter Filter) {
	switch s := b.state.(type) {
	case *attached:
		s.fixture.Filter = filter
		for _, f := range s.fixtures {
			f.shape.SetFilter(filter.engine())
		}
	case *detached:
		s.fixture.Filter = filter
	}
}

// Mass. Static and kinematic bodies report zero mass and inertia.

func (b *Base) Mass() float64 {
	a, ok := b.state.(*attached)
	if !ok {
		return b.mass.Mass
	}
	if a.body.GetType() != cp.BODY_DYNAMIC {
		return 0
	}
	return a.body.Mass()
}

func (b *Base) Inertia() float64 {
	a, ok := b.state.(*attached)
	if !ok {
		return b.mass.Inertia
	}
	if a.body.GetType() != cp.BODY_DYNAMIC {
		return 0
	}
	return finite(a.body.Moment())
}

// Centroid is the body's center of mass. An explicit override is held by
// the wrapper; the engine only derives it from the fixtures.
func (b *Base) Centroid() cp.Vector {
	a, ok := b.state.(*attached)
	if !ok || b.massSet {
		return b.mass.Center
	}
	return a.body.CenterOfGravity()
}

// override switches to explicit mass mode, keeping the values that are not
// being overridden.
func (b *Base) override(apply func(m *MassData)) {
	if !b.massSet {
		b.mass = MassData{Mass: b.Mass(), Inertia: b.Inertia(), Center: b.Centroid()}
		b.massSet = true
	}
	apply(&b.mass)
	if a, ok := b.state.(*attached); ok {
		b.remass(a)
	}
}

func (b *Base) SetMass(mass float64) {
	b.override(func(m *MassData) { m.Mass = mass })
}

func (b *Base) SetInertia(inertia float64) {
	b.override(func(m *MassData) { m.Inertia = inertia })
}

func (b *Base) SetCentroid(center cp.Vector) {
	b.override(func(m *MassData) { m.Center = center })
}

// ResetMass returns the body to density-derived mass.
func (b *Base) ResetMass() {
	b.massSet = false
	a, ok := b.state.(*attached)
	if !ok {
		b.mass = MassData{}
		return
	}
	b.remass(a)
}

// Identity.

func (b *Base) Name() string        { return b.name }
func (b *Base) SetName(name string) { b.name = name }

func (b *Base) IsRemoved() bool { return b.removed }

// MarkRemoved flags the body for removal on the next world sweep.
func (b *Base) MarkRemoved() { b.removed = true }

func (b *Base) IsDirty() bool { return b.dirty }

func (b *Base) MarkDirty(dirty bool) { b.dirty = dirty }

// Forces are applied at the engine's center of gravity and wake the body.
// They are ignored while detached.

func (b *Base) ApplyForce(force cp.Vector) {
	if a, ok := b.state.(*attached); ok && a.inSpace {
		a.awake = true
		a.body.ApplyForceAtWorldPoint(force, a.body.LocalToWorld(a.body.CenterOfGravity()))
	}
}

func (b *Base) ApplyImpulse(impulse cp.Vector) {
	if a, ok := b.state.(*attached); ok && a.inSpace {
		a.awake = true
		a.body.ApplyImpulseAtWorldPoint(impulse, a.body.LocalToWorld(a.body.CenterOfGravity()))
	}
}

// reindex re-inserts the fixtures of a moved static body so the broadphase
// sees the new location.
func (a *attached) reindex() {
	if !a.inSpace || a.body.GetType() != cp.BODY_STATIC {
		return
	}
	for _, f := range a.fixtures {
		a.space.RemoveShape(f.shape)
		a.space.AddShape(f.shape)
	}
}
