package physics

import "github.com/jakecoffman/cp"

// Box is an axis aligned rectangle centered on the body position.
type Box struct {
	Base
	width, height float64
}

func NewBox(x, y, width, height float64) *Box {
	b := &Box{width: width, height: height}
	b.Base = newBase(x, y, b)
	return b
}

func (b *Box) makeFixtures(body *cp.Body) []fixture {
	if b.width <= 0 || b.height <= 0 {
		return nil
	}
	return []fixture{{shape: cp.NewBox(body, b.width, b.height, 0)}}
}

func (b *Box) Dimension() cp.Vector {
	return cp.Vector{X: b.width, Y: b.height}
}

func (b *Box) SetDimension(width, height float64) {
	b.width, b.height = width, height
	b.MarkDirty(true)
}

func (b *Box) Width() float64  { return b.width }
func (b *Box) Height() float64 { return b.height }

func (b *Box) SetWidth(width float64)   { b.SetDimension(width, b.height) }
func (b *Box) SetHeight(height float64) { b.SetDimension(b.width, height) }

// Vertices returns the four local corners, counter-clockwise from the
// bottom left.
func (b *Box) Vertices() []cp.Vector {
	hw, hh := b.width/2, b.height/2
	return []cp.Vector{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
}
