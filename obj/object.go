package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/physics"
)

const DefaultZIndex = 0

// Object is anything the renderer can draw. The set of kinds is closed; see
// Visitor.
type Object interface {
	ZIndex() int
	DisplayDimensions() cp.Vector
	X() float64
	Y() float64
	Angle() float64

	sealed()
}

// Collidable is an object backed by a physics body.
type Collidable interface {
	Object
	HitBox() physics.Body
}

type base struct {
	zIndex  int
	display cp.Vector
	body    physics.Body
}

func (b *base) ZIndex() int                  { return b.zIndex }
func (b *base) SetZIndex(z int)              { b.zIndex = z }
func (b *base) DisplayDimensions() cp.Vector { return b.display }
func (b *base) HitBox() physics.Body         { return b.body }

func (b *base) X() float64     { return b.body.Position().X }
func (b *base) Y() float64     { return b.body.Position().Y }
func (b *base) Angle() float64 { return b.body.Angle() }

func (*base) sealed() {}

// IsPlatform reports whether o is terrain the player can stand on.
func IsPlatform(o Object) bool {
	switch o.(type) {
	case *Platform, *WoodBlock, *Bridge:
		return true
	}
	return false
}

func sizeOr(s, fallback float64) float64 {
	if s > 0 {
		return s
	}
	return fallback
}
