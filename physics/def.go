package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// CollisionType is assigned to every fixture created by this package so a
// single handler pair observes all contacts in a space.
const CollisionType cp.CollisionType = 1

type BodyType int

const (
	StaticBody BodyType = iota
	KinematicBody
	DynamicBody
)

func (t BodyType) String() string {
	switch t {
	case StaticBody:
		return "static"
	case KinematicBody:
		return "kinematic"
	case DynamicBody:
		return "dynamic"
	default:
		return "unknown"
	}
}

func setEngineType(body *cp.Body, t BodyType) {
	switch t {
	case KinematicBody:
		body.SetType(cp.BODY_KINEMATIC)
	case DynamicBody:
		body.SetType(cp.BODY_DYNAMIC)
	default:
		body.SetType(cp.BODY_STATIC)
	}
}

func bodyTypeOf(body *cp.Body) BodyType {
	switch body.GetType() {
	case cp.BODY_KINEMATIC:
		return KinematicBody
	case cp.BODY_DYNAMIC:
		return DynamicBody
	default:
		return StaticBody
	}
}

// BodyDef is the property cache of a detached body.
type BodyDef struct {
	Type            BodyType
	Position        cp.Vector
	Angle           float64
	LinearVelocity  cp.Vector
	AngularVelocity float64
	LinearDamping   float64
	AngularDamping  float64
	GravityScale    float64
	Active          bool
	Awake           bool
	SleepAllowed    bool
	FixedRotation   bool
	Bullet          bool
}

func defaultBodyDef(x, y float64) BodyDef {
	return BodyDef{
		Type:         StaticBody,
		Position:     cp.Vector{X: x, Y: y},
		GravityScale: 1,
		Active:       true,
		Awake:        true,
		SleepAllowed: true,
	}
}

// Filter decides which fixtures may collide with each other.
type Filter struct {
	Category uint
	Mask     uint
	Group    uint
}

func DefaultFilter() Filter {
	return Filter{Category: 1, Mask: ^uint(0), Group: 0}
}

func (f Filter) engine() cp.ShapeFilter {
	return cp.ShapeFilter{Group: f.Group, Categories: f.Category, Mask: f.Mask}
}

func filterOf(f cp.ShapeFilter) Filter {
	return Filter{Category: f.Categories, Mask: f.Mask, Group: f.Group}
}

// FixtureDef is the material applied to every fixture of a body.
type FixtureDef struct {
	Density     float64
	Friction    float64
	Restitution float64
	Sensor      bool
	Filter      Filter
}

func defaultFixtureDef() FixtureDef {
	return FixtureDef{Density: 1, Friction: 0.2, Filter: DefaultFilter()}
}

type MassData struct {
	Mass    float64
	Inertia float64
	Center  cp.Vector
}

// finite maps the engine's infinite moment (fixed rotation) to zero.
func finite(v float64) float64 {
	if math.IsInf(v, 0) {
		return 0
	}
	return v
}
