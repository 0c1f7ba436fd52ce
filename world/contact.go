package world

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/obj"
)

// Classifier turns raw contact events into gameplay state: it keeps each
// player's ground contacts up to date and suppresses contacts between a
// fireball and the player that summoned it.
type Classifier struct {
	resolve func(*cp.Shape) (obj.Object, bool)
}

func NewClassifier(resolve func(*cp.Shape) (obj.Object, bool)) *Classifier {
	return &Classifier{resolve: resolve}
}

// Begin records a platform fixture entering a player's ground sensor.
func (c *Classifier) Begin(a, b *cp.Shape) {
	if p, ground, ok := c.groundContact(a, b); ok {
		p.TouchGround(ground)
	}
}

// End removes a platform fixture from a player's ground sensor.
func (c *Classifier) End(a, b *cp.Shape) {
	if p, ground, ok := c.groundContact(a, b); ok {
		p.LeaveGround(ground)
	}
}

// PreSolve reports whether the contact between a and b should be solved
// this step.
func (c *Classifier) PreSolve(a, b *cp.Shape) bool {
	oa, okA := c.owner(a)
	ob, okB := c.owner(b)
	if !okA || !okB {
		return true
	}
	return !ownFireball(oa, ob) && !ownFireball(ob, oa)
}

func ownFireball(a, b obj.Object) bool {
	f, ok := a.(*obj.Fireball)
	if !ok {
		return false
	}
	p, ok := b.(*obj.Player)
	return ok && f.Owner() == p
}

func (c *Classifier) groundContact(a, b *cp.Shape) (*obj.Player, *cp.Shape, bool) {
	if p, ok := c.sensorOwner(a); ok && c.isPlatform(b) {
		return p, b, true
	}
	if p, ok := c.sensorOwner(b); ok && c.isPlatform(a) {
		return p, a, true
	}
	return nil, nil, false
}

func (c *Classifier) sensorOwner(s *cp.Shape) (*obj.Player, bool) {
	if s == nil {
		return nil, false
	}
	if name, ok := s.UserData.(string); !ok || name != obj.GroundSensorName {
		return nil, false
	}
	o, ok := c.owner(s)
	if !ok {
		return nil, false
	}
	p, ok := o.(*obj.Player)
	return p, ok
}

func (c *Classifier) isPlatform(s *cp.Shape) bool {
	if s == nil || s.Sensor() {
		return false
	}
	o, ok := c.owner(s)
	return ok && obj.IsPlatform(o)
}

func (c *Classifier) owner(s *cp.Shape) (obj.Object, bool) {
	if s == nil || c.resolve == nil {
		return nil, false
	}
	return c.resolve(s)
}

// install registers the classifier on space for every fixture created by
// the physics package.
func (c *Classifier) install(space *cp.Space, collisionType cp.CollisionType) {
	handler := space.NewCollisionHandler(collisionType, collisionType)
	handler.UserData = c
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		classifier, ok := userData.(*Classifier)
		if !ok || classifier == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		classifier.Begin(shapeA, shapeB)
		return true
	}
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		classifier, ok := userData.(*Classifier)
		if !ok || classifier == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		return classifier.PreSolve(shapeA, shapeB)
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		classifier, ok := userData.(*Classifier)
		if !ok || classifier == nil {
			return
		}
		shapeA, shapeB := arb.Shapes()
		classifier.End(shapeA, shapeB)
	}
}
