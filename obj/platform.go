package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/physics"
)

// Platform is static terrain, either a box or a polygon.
type Platform struct {
	base
}

func NewPlatform(m config.Material, d levels.PlatformData, name string) *Platform {
	p := &Platform{}
	p.base = newTerrain(m, d, name, physics.StaticBody)
	return p
}

// Outline returns the local polygon outline and triangle indices of a
// polygon platform, or nil for boxes.
func (p *Platform) Outline() ([]cp.Vector, []int) {
	if poly, ok := p.body.(*physics.Polygon); ok {
		return poly.Outline(), poly.Triangles()
	}
	return nil, nil
}

// WoodBlock is a dynamic box that can be pushed around and stood on.
type WoodBlock struct {
	base
}

func NewWoodBlock(m config.Material, d levels.PlatformData, name string) *WoodBlock {
	w := &WoodBlock{}
	w.base = newTerrain(m, d, name, physics.DynamicBody)
	return w
}

func newTerrain(m config.Material, d levels.PlatformData, name string, t physics.BodyType) base {
	type material interface {
		physics.Body
		SetBodyType(physics.BodyType)
		SetDensity(float64)
		SetFriction(float64)
		SetRestitution(float64)
		SetName(string)
	}

	var body material
	display := cp.Vector{X: d.Width, Y: d.Height}
	if len(d.Points) >= 3 {
		points := make([]cp.Vector, len(d.Points))
		for i, pt := range d.Points {
			points[i] = cp.Vector{X: pt.X, Y: pt.Y}
		}
		poly := physics.NewPolygon(points, d.X, d.Y)
		display = poly.Dimension()
		body = poly
	} else {
		body = physics.NewBox(d.X, d.Y, sizeOr(d.HitBox.Width, d.Width), sizeOr(d.HitBox.Height, d.Height))
	}
	body.SetBodyType(t)
	body.SetDensity(m.Density)
	body.SetFriction(m.Friction)
	body.SetRestitution(m.Restitution)
	body.SetName(name)
	return base{zIndex: d.ZIndex, display: display, body: body}
}
