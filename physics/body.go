package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body is a long-lived physics object that can be attached to a space and
// detached again without losing its properties.
type Body interface {
	Activate(space *cp.Space, userData any) bool
	Deactivate(space *cp.Space)
	Update(dt float64)
	Attached() bool
	EngineBody() *cp.Body
	Position() cp.Vector
	Angle() float64
	Velocity() cp.Vector
	Name() string
	IsRemoved() bool
	IsDirty() bool
}

// geometry builds the fixtures of a concrete body kind.
type geometry interface {
	makeFixtures(body *cp.Body) []fixture
}

type fixture struct {
	shape *cp.Shape
	// reserved fixtures keep their own sensor flag, density and user data.
	reserved bool
}

// bodyState is either *detached or *attached.
type bodyState interface {
	isBodyState()
}

type detached struct {
	def     BodyDef
	fixture FixtureDef
}

type attached struct {
	body     *cp.Body
	space    *cp.Space
	fixtures []fixture
	fixture  FixtureDef
	inSpace  bool

	// The engine can wake a body but not put one to sleep, so a requested
	// sleep is held here until something wakes the body.
	awake bool

	gravityScale   float64
	linearDamping  float64
	angularDamping float64
	sleepAllowed   bool
	fixedRotation  bool
	bullet         bool
}

func (*detached) isBodyState() {}
func (*attached) isBodyState() {}

// Base carries the state shared by every body kind. Embedders pass
// themselves as the geometry so Activate and Update can build fixtures.
type Base struct {
	state   bodyState
	geom    geometry
	mass    MassData
	massSet bool
	name    string
	removed bool
	dirty   bool
}

func newBase(x, y float64, geom geometry) Base {
	return Base{
		state: &detached{def: defaultBodyDef(x, y), fixture: defaultFixtureDef()},
		geom:  geom,
	}
}

func (b *Base) Attached() bool {
	_, ok := b.state.(*attached)
	return ok
}

func (b *Base) EngineBody() *cp.Body {
	if a, ok := b.state.(*attached); ok {
		return a.body
	}
	return nil
}

func (b *Base) Activate(space *cp.Space, userData any) bool {
	d, ok := b.state.(*detached)
	if !ok || space == nil || b.geom == nil {
		return false
	}

	body := newEngineBody(d.def.Type)
	body.SetPosition(d.def.Position)
	body.SetAngle(d.def.Angle)
	body.UserData = userData

	fixtures := b.geom.makeFixtures(body)
	if len(fixtures) == 0 {
		body.UserData = nil
		return false
	}

	a := &attached{
		body:           body,
		space:          space,
		fixtures:       fixtures,
		fixture:        d.fixture,
		awake:          d.def.Awake,
		gravityScale:   d.def.GravityScale,
		linearDamping:  d.def.LinearDamping,
		angularDamping: d.def.AngularDamping,
		sleepAllowed:   d.def.SleepAllowed,
		fixedRotation:  d.def.FixedRotation,
		bullet:         d.def.Bullet,
	}
	body.SetVelocityUpdateFunc(a.integrateVelocity)
	for _, f := range fixtures {
		a.applyMaterial(f)
	}
	b.state = a

	if d.def.Type != StaticBody {
		body.SetVelocityVector(d.def.LinearVelocity)
		body.SetAngularVelocity(d.def.AngularVelocity)
	}
	if d.def.Active {
		a.addToSpace()
	}
	b.remass(a)
	b.dirty = false
	return true
}

// Deactivate copies the engine's view of the body back into the cache and
// removes the body from the space it was attached to.
func (b *Base) Deactivate(_ *cp.Space) {
	a, ok := b.state.(*attached)
	if !ok {
		return
	}
	d := b.snapshot(a)
	a.removeFromSpace()
	for _, f := range a.fixtures {
		f.shape.UserData = nil
	}
	a.body.UserData = nil
	b.state = d
}

func (b *Base) snapshot(a *attached) *detached {
	body := a.body
	d := &detached{
		def: BodyDef{
			Type:            bodyTypeOf(body),
			Position:        body.Position(),
			Angle:           body.Angle(),
			LinearVelocity:  body.Velocity(),
			AngularVelocity: body.AngularVelocity(),
			LinearDamping:   a.linearDamping,
			AngularDamping:  a.angularDamping,
			GravityScale:    a.gravityScale,
			Active:          a.inSpace,
			Awake:           a.isAwake(),
			SleepAllowed:    a.sleepAllowed,
			FixedRotation:   a.fixedRotation,
			Bullet:          a.bullet,
		},
		fixture: a.fixture,
	}
	if s := a.primary(); s != nil {
		d.fixture.Friction = s.Friction()
		d.fixture.Restitution = s.Elasticity()
		d.fixture.Sensor = s.Sensor()
		d.fixture.Filter = filterOf(s.Filter)
	}
	if !b.massSet {
		b.mass = MassData{Mass: b.Mass(), Inertia: b.Inertia(), Center: b.Centroid()}
	}
	return d
}

// Update rebuilds the fixtures of a dirty attached body.
func (b *Base) Update(dt float64) {
	if !b.dirty {
		return
	}
	a, ok := b.state.(*attached)
	if !ok {
		return
	}
	b.rebuild(a)
	b.dirty = false
}

func (b *Base) rebuild(a *attached) {
	if a.inSpace {
		for _, f := range a.fixtures {
			a.space.RemoveShape(f.shape)
		}
	}
	a.fixtures = b.geom.makeFixtures(a.body)
	for _, f := range a.fixtures {
		a.applyMaterial(f)
		if a.inSpace {
			a.space.AddShape(f.shape)
		}
	}
	b.remass(a)
}

// remass recomputes engine mass after fixtures, type or overrides changed.
func (b *Base) remass(a *attached) {
	body := a.body
	if body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	if b.massSet {
		m := b.mass.Mass
		if m <= 0 {
			m = 1
		}
		body.SetMass(m)
		if b.mass.Inertia > 0 {
			body.SetMoment(b.mass.Inertia)
		} else {
			body.SetMoment(math.Inf(1))
		}
	} else {
		for _, f := range a.fixtures {
			if !f.reserved {
				f.shape.SetDensity(a.fixture.Density)
			}
		}
		if body.Mass() <= 0 || math.IsInf(body.Mass(), 0) {
			body.SetMass(1)
			body.SetMoment(math.Inf(1))
		}
	}
	if a.fixedRotation {
		body.SetMoment(math.Inf(1))
		body.SetAngularVelocity(0)
	}
}

func newEngineBody(t BodyType) *cp.Body {
	switch t {
	case DynamicBody:
		return cp.NewBody(0, 0)
	case KinematicBody:
		return cp.NewKinematicBody()
	default:
		return cp.NewStaticBody()
	}
}

func (a *attached) addToSpace() {
	if a.inSpace {
		return
	}
	a.space.AddBody(a.body)
	for _, f := range a.fixtures {
		a.space.AddShape(f.shape)
	}
	a.inSpace = true
}

func (a *attached) removeFromSpace() {
	if !a.inSpace {
		return
	}
	for _, f := range a.fixtures {
		a.space.RemoveShape(f.shape)
	}
	a.space.RemoveBody(a.body)
	a.inSpace = false
}

func (a *attached) applyMaterial(f fixture) {
	s := f.shape
	s.SetFriction(a.fixture.Friction)
	s.SetElasticity(a.fixture.Restitution)
	s.SetFilter(a.fixture.Filter.engine())
	s.SetCollisionType(CollisionType)
	if !f.reserved {
		s.SetSensor(a.fixture.Sensor)
		s.SetDensity(a.fixture.Density)
	}
}

// primary returns the first non-reserved fixture.
func (a *attached) primary() *cp.Shape {
	for _, f := range a.fixtures {
		if !f.reserved {
			return f.shape
		}
	}
	return nil
}

func (a *attached) isAwake() bool {
	return a.awake && !a.body.IsSleeping()
}

func (a *attached) wake() {
	a.awake = true
	a.body.Activate()
}

// integrateVelocity adds per-body gravity scale, damping and sleep control
// on top of the engine's velocity integration.
func (a *attached) integrateVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	cp.BodyUpdateVelocity(body, gravity.Mult(a.gravityScale), damping, dt)
	if a.linearDamping > 0 {
		body.SetVelocityVector(body.Velocity().Mult(1 / (1 + dt*a.linearDamping)))
	}
	if a.angularDamping > 0 {
		body.SetAngularVelocity(body.AngularVelocity() / (1 + dt*a.angularDamping))
	}
	if !a.sleepAllowed {
		body.Activate()
	}
}
