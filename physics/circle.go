package physics

import "github.com/jakecoffman/cp"

type Circle struct {
	Base
	radius float64
}

func NewCircle(x, y, radius float64) *Circle {
	c := &Circle{radius: radius}
	c.Base = newBase(x, y, c)
	return c
}

func (c *Circle) makeFixtures(body *cp.Body) []fixture {
	if c.radius <= 0 {
		return nil
	}
	return []fixture{{shape: cp.NewCircle(body, c.radius, cp.Vector{})}}
}

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) SetRadius(radius float64) {
	c.radius = radius
	c.MarkDirty(true)
}
