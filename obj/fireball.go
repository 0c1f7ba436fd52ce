package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/physics"
)

// Fireball is a gravity-exempt projectile. Contacts with the player that
// summoned it are ignored.
type Fireball struct {
	base
	circle *physics.Circle
	owner  *Player
	ttl    float64
}

// NewFireball places a fireball beside owner using the configured offset,
// mirrored by the owner's facing.
func NewFireball(c config.Fireball, owner *Player) *Fireball {
	x, y := c.OffsetX, c.OffsetY
	facing := 1
	if owner != nil {
		facing = owner.Facing()
		x = owner.X() + float64(facing)*c.OffsetX
		y = owner.Y() + c.OffsetY
	}
	circle := physics.NewCircle(x, y, c.Radius)
	circle.SetBodyType(physics.DynamicBody)
	circle.SetGravityScale(0)
	circle.SetBullet(true)
	circle.SetDensity(c.Density)
	circle.SetFriction(c.Friction)
	circle.SetRestitution(c.Restitution)
	circle.SetName("fireball")

	f := &Fireball{circle: circle, owner: owner, ttl: c.Lifetime}
	f.base = base{
		zIndex:  DefaultZIndex,
		display: cp.Vector{X: 2 * c.Radius, Y: 2 * c.Radius},
		body:    circle,
	}
	return f
}

func (f *Fireball) Owner() *Player { return f.owner }

func (f *Fireball) Body() *physics.Circle { return f.circle }

// Launch sets the fireball's velocity. It may be called before or after the
// fireball joins a world.
func (f *Fireball) Launch(v cp.Vector) {
	f.circle.SetGravityScale(0)
	f.circle.SetVelocity(v)
}

// Tick ages the fireball and marks it removed once its lifetime runs out.
// A non-positive lifetime never expires.
func (f *Fireball) Tick(dt float64) {
	if f.ttl <= 0 || f.circle.IsRemoved() {
		return
	}
	f.ttl -= dt
	if f.ttl <= 0 {
		f.circle.MarkRemoved()
	}
}
