package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/physics"
)

// GroundSensorName tags the player's ground sensor fixture.
const GroundSensorName = "playerSensor"

type Player struct {
	base
	hitBox *physics.HitBox
	facing int
	// ground counts begin/end events per touching platform fixture.
	ground map[*cp.Shape]int

	jumpForce float64
	walkForce float64
	maxSpeed  float64
}

func NewPlayer(c config.Player, d levels.PlayerData) *Player {
	w := sizeOr(d.HitBox.Width, sizeOr(c.Width, d.Width))
	h := sizeOr(d.HitBox.Height, sizeOr(c.Height, d.Height))
	hb := physics.NewHitBox(d.X, d.Y, w, h)
	hb.SetBodyType(physics.DynamicBody)
	hb.SetFixedRotation(true)
	hb.SetSleepingAllowed(false)
	hb.SetDensity(c.Density)
	hb.SetFriction(c.Friction)
	hb.SetRestitution(c.Restitution)
	hb.SetGroundSensorName(GroundSensorName)
	if c.SensorHeight > 0 {
		hb.SetGroundSensorHeight(c.SensorHeight)
	}
	if c.SensorWidthRatio > 0 {
		hb.SetGroundSensorWidthRatio(c.SensorWidthRatio)
	}
	hb.SetName("player")

	p := &Player{
		hitBox:    hb,
		facing:    1,
		ground:    make(map[*cp.Shape]int),
		jumpForce: c.JumpForce,
		walkForce: c.WalkForce,
		maxSpeed:  c.MaxWalkSpeed,
	}
	p.base = base{
		zIndex:  d.ZIndex,
		display: cp.Vector{X: sizeOr(d.Width, w), Y: sizeOr(d.Height, h)},
		body:    hb,
	}
	return p
}

func (p *Player) Body() *physics.HitBox { return p.hitBox }

// IsGrounded reports whether the ground sensor touches at least one
// platform fixture.
func (p *Player) IsGrounded() bool { return len(p.ground) > 0 }

// GroundContacts is the number of distinct platform fixtures under the
// sensor.
func (p *Player) GroundContacts() int { return len(p.ground) }

func (p *Player) TouchGround(f *cp.Shape) {
	p.ground[f]++
}

func (p *Player) LeaveGround(f *cp.Shape) {
	n, ok := p.ground[f]
	if !ok {
		return
	}
	if n > 1 {
		p.ground[f] = n - 1
		return
	}
	delete(p.ground, f)
}

func (p *Player) Facing() int { return p.facing }

// Face turns the player toward the sign of dir; zero keeps the current
// facing.
func (p *Player) Face(dir float64) {
	switch {
	case dir > 0:
		p.facing = 1
	case dir < 0:
		p.facing = -1
	}
}

func (p *Player) JumpForce() float64 { return p.jumpForce }
func (p *Player) WalkForce() float64 { return p.walkForce }
func (p *Player) MaxSpeed() float64  { return p.maxSpeed }

func (p *Player) HorizontalVelocity() float64 { return p.hitBox.VX() }
func (p *Player) VerticalVelocity() float64   { return p.hitBox.VY() }

func (p *Player) ApplyForce(f cp.Vector)   { p.hitBox.ApplyForce(f) }
func (p *Player) ApplyImpulse(j cp.Vector) { p.hitBox.ApplyImpulse(j) }
