package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/physics"
)

// Bridge is a chain of dynamic planks pinned at both ends.
type Bridge struct {
	base
	chain *physics.Composite
}

func NewBridge(c config.Bridge, d levels.BridgeData, name string) *Bridge {
	height := sizeOr(d.LinkHeight, c.LinkHeight)
	chain := physics.NewChain(d.X, d.Y, d.Links, d.LinkWidth, height)
	for _, child := range chain.Children() {
		plank := child.(*physics.Box)
		plank.SetDensity(c.Density)
		plank.SetFriction(c.Friction)
		plank.SetRestitution(c.Restitution)
		plank.SetName(name)
	}
	chain.SetName(name)

	b := &Bridge{chain: chain}
	b.base = base{
		zIndex:  d.ZIndex,
		display: cp.Vector{X: float64(d.Links) * d.LinkWidth, Y: height},
		body:    chain,
	}
	return b
}

// Planks returns the plank boxes from left to right.
func (b *Bridge) Planks() []*physics.Box {
	children := b.chain.Children()
	planks := make([]*physics.Box, 0, len(children))
	for _, c := range children {
		planks = append(planks, c.(*physics.Box))
	}
	return planks
}
