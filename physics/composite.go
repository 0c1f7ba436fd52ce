package physics

import "github.com/jakecoffman/cp"

// JointBuilder creates the constraints that tie a composite's children
// together once they are attached. Returning an error aborts activation.
type JointBuilder func(space *cp.Space, children []Body) ([]*cp.Constraint, error)

// Composite groups child bodies joined by constraints. It has no fixture of
// its own; its position is the anchor it was created at.
type Composite struct {
	Base
	children []Body
	build    JointBuilder
	joints   []*cp.Constraint
	space    *cp.Space
}

func NewComposite(x, y float64, build JointBuilder, children ...Body) *Composite {
	c := &Composite{children: children, build: build}
	c.Base = newBase(x, y, nil)
	return c
}

func (c *Composite) Children() []Body {
	return append([]Body(nil), c.children...)
}

func (c *Composite) Joints() []*cp.Constraint {
	return append([]*cp.Constraint(nil), c.joints...)
}

func (c *Composite) Attached() bool { return c.space != nil }

func (c *Composite) EngineBody() *cp.Body { return nil }

// Activate attaches every child, then builds the joints. Any failure rolls
// the whole composite back to detached.
func (c *Composite) Activate(space *cp.Space, userData any) bool {
	if space == nil || c.space != nil || len(c.children) == 0 {
		return false
	}
	c.space = space
	for _, child := range c.children {
		if !child.Activate(space, userData) {
			c.Deactivate(space)
			return false
		}
	}
	if c.build != nil {
		joints, err := c.build(space, c.children)
		if err != nil {
			c.Deactivate(space)
			return false
		}
		for _, j := range joints {
			space.AddConstraint(j)
		}
		c.joints = joints
	}
	return true
}

// Deactivate removes the joints before detaching the children.
func (c *Composite) Deactivate(_ *cp.Space) {
	if c.space == nil {
		return
	}
	for _, j := range c.joints {
		c.space.RemoveConstraint(j)
	}
	c.joints = nil
	for _, child := range c.children {
		child.Deactivate(c.space)
	}
	c.space = nil
}

func (c *Composite) Update(dt float64) {
	for _, child := range c.children {
		child.Update(dt)
	}
	c.MarkDirty(false)
}

func (c *Composite) IsDirty() bool {
	if c.Base.IsDirty() {
		return true
	}
	for _, child := range c.children {
		if child.IsDirty() {
			return true
		}
	}
	return false
}
