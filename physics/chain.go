package physics

import (
	"errors"

	"github.com/jakecoffman/cp"
)

var ErrDetachedChild = errors.New("physics: composite child is not attached")

// NewChain lays out links dynamic planks of linkWidth by linkHeight centered
// on (x, y), joins neighbours with pivots and pins both ends to the space's
// static body.
func NewChain(x, y float64, links int, linkWidth, linkHeight float64) *Composite {
	children := make([]Body, 0, links)
	left := x - float64(links)*linkWidth/2
	for i := 0; i < links; i++ {
		plank := NewBox(left+(float64(i)+0.5)*linkWidth, y, linkWidth, linkHeight)
		plank.SetBodyType(DynamicBody)
		children = append(children, plank)
	}
	return NewComposite(x, y, chainJoints(left, y, linkWidth), children...)
}

func chainJoints(left, y, linkWidth float64) JointBuilder {
	return func(space *cp.Space, children []Body) ([]*cp.Constraint, error) {
		bodies := make([]*cp.Body, 0, len(children))
		for _, child := range children {
			body := child.EngineBody()
			if body == nil {
				return nil, ErrDetachedChild
			}
			bodies = append(bodies, body)
		}

		joints := make([]*cp.Constraint, 0, len(bodies)+1)
		pin := func(a, b *cp.Body, pivot cp.Vector) {
			j := cp.NewPivotJoint(a, b, pivot)
			j.SetCollideBodies(false)
			joints = append(joints, j)
		}
		pin(space.StaticBody, bodies[0], cp.Vector{X: left, Y: y})
		for i := 1; i < len(bodies); i++ {
			pin(bodies[i-1], bodies[i], cp.Vector{X: left + float64(i)*linkWidth, Y: y})
		}
		pin(bodies[len(bodies)-1], space.StaticBody, cp.Vector{X: left + float64(len(bodies))*linkWidth, Y: y})
		return joints, nil
	}
}
