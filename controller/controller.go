package controller

import (
	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/ability"
	"github.com/milk9111/elements/input"
	"github.com/milk9111/elements/obj"
	"github.com/milk9111/elements/world"
)

// maxSubSteps bounds how many fixed ticks a single Update may run.
const maxSubSteps = 4

// Controller turns input snapshots into player actions and advances the
// world at a fixed tick.
type Controller struct {
	world    *world.World
	launcher ability.Launcher
	logger   *log.Logger

	player   *obj.Player
	acc      float64
	cooldown float64
}

func New(w *world.World, launcher ability.Launcher, logger *log.Logger) *Controller {
	if launcher == nil {
		launcher = ability.Straight{}
	}
	if logger == nil {
		logger = log.Default()
	}
	c := &Controller{world: w, launcher: launcher, logger: logger}
	c.Reset()
	return c
}

// Reset picks up the world's current player and clears timers. Call it
// after the world has been populated.
func (c *Controller) Reset() {
	c.player = c.world.Player()
	c.acc = 0
	c.cooldown = 0
}

func (c *Controller) Player() *obj.Player { return c.player }

// SetLauncher replaces the ability script, for example after a reload.
func (c *Controller) SetLauncher(l ability.Launcher) {
	if l == nil {
		l = ability.Straight{}
	}
	c.launcher = l
}

// Update applies in and advances the world by dt in whole ticks. Leftover
// time carries over to the next call.
func (c *Controller) Update(in input.Snapshot, dt float64) {
	if c.player != c.world.Player() {
		c.Reset()
	}
	consts := c.world.Constants()
	p := c.player

	if p != nil {
		p.Face(in.Horizontal)
		if in.JumpPressed && p.IsGrounded() {
			p.ApplyImpulse(cp.Vector{X: 0, Y: p.JumpForce()})
		}
		c.cooldown = max(0, c.cooldown-dt)
		if in.AbilityPressed && c.cooldown == 0 {
			c.fire(p)
			c.cooldown = consts.Player.FireballCooldown
		}
	}

	tick := consts.Step.DT
	if tick <= 0 {
		return
	}
	c.acc += dt
	steps := 0
	for c.acc >= tick && steps < maxSubSteps {
		c.walk(p, in.Horizontal)
		c.world.Step(tick, consts.Step.VelocityIterations, consts.Step.PositionIterations)
		c.acc -= tick
		steps++
	}
	if steps == maxSubSteps && c.acc >= tick {
		c.logger.Debug("dropping simulation time", "seconds", c.acc)
		c.acc = 0
	}
}

// walk pushes the player toward dir until it reaches its top speed.
func (c *Controller) walk(p *obj.Player, dir float64) {
	if p == nil || dir == 0 {
		return
	}
	vx := p.HorizontalVelocity()
	if vx*dir >= p.MaxSpeed() {
		return
	}
	p.ApplyForce(cp.Vector{X: dir * p.WalkForce(), Y: 0})
}

func (c *Controller) fire(p *obj.Player) {
	speed := c.world.Constants().Fireball.Speed
	v, err := c.launcher.Launch(p.Facing(), speed, p.Body().Velocity())
	if err != nil {
		c.logger.Warn("ability script failed, launching straight", "err", err)
		v, _ = ability.Straight{}.Launch(p.Facing(), speed, p.Body().Velocity())
	}
	if f := c.world.SummonFireball(p, v); f == nil {
		c.logger.Warn("fireball could not be summoned")
		return
	}
	c.logger.Debug("fireball", "vx", v.X, "vy", v.Y)
}
