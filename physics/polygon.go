package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Polygon is an arbitrary simple polygon split into convex triangle
// fixtures. Points are local to the body position.
type Polygon struct {
	Base
	outline   []cp.Vector
	triangles []int
	dimension cp.Vector
	resized   bool
}

func NewPolygon(points []cp.Vector, x, y float64) *Polygon {
	p := &Polygon{outline: append([]cp.Vector(nil), points...)}
	p.Base = newBase(x, y, p)
	p.triangles = triangulate(p.outline)
	p.dimension = bounds(p.outline)
	return p
}

func bounds(points []cp.Vector) cp.Vector {
	if len(points) == 0 {
		return cp.Vector{}
	}
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, pt := range points[1:] {
		minX, maxX = math.Min(minX, pt.X), math.Max(maxX, pt.X)
		minY, maxY = math.Min(minY, pt.Y), math.Max(maxY, pt.Y)
	}
	return cp.Vector{X: maxX - minX, Y: maxY - minY}
}

func (p *Polygon) makeFixtures(body *cp.Body) []fixture {
	fixtures := make([]fixture, 0, len(p.triangles)/3)
	for i := 0; i+2 < len(p.triangles); i += 3 {
		verts := []cp.Vector{
			p.outline[p.triangles[i]],
			p.outline[p.triangles[i+1]],
			p.outline[p.triangles[i+2]],
		}
		shape := cp.NewPolyShape(body, len(verts), verts, cp.NewTransformIdentity(), 0)
		fixtures = append(fixtures, fixture{shape: shape})
	}
	return fixtures
}

// Outline returns a copy of the local outline points.
func (p *Polygon) Outline() []cp.Vector {
	return append([]cp.Vector(nil), p.outline...)
}

// Triangles returns a copy of the triangle index buffer. Each triple
// indexes into Outline.
func (p *Polygon) Triangles() []int {
	return append([]int(nil), p.triangles...)
}

// Area is the summed area of the retained triangles.
func (p *Polygon) Area() float64 {
	var area float64
	for i := 0; i+2 < len(p.triangles); i += 3 {
		a, b, c := p.outline[p.triangles[i]], p.outline[p.triangles[i+1]], p.outline[p.triangles[i+2]]
		area += math.Abs(cross(a, b, c)) / 2
	}
	return area
}

func (p *Polygon) Dimension() cp.Vector { return p.dimension }

func (p *Polygon) Width() float64  { return p.dimension.X }
func (p *Polygon) Height() float64 { return p.dimension.Y }

func (p *Polygon) SetWidth(width float64)   { p.SetDimension(width, p.dimension.Y) }
func (p *Polygon) SetHeight(height float64) { p.SetDimension(p.dimension.X, height) }

// SetDimension scales the outline around the body origin so its bounding
// box becomes width by height. An axis collapsed to zero cannot be scaled
// back out, so the dimension always reports the outline's real bounds.
func (p *Polygon) SetDimension(width, height float64) {
	sx := scaleFactor(width, p.dimension.X)
	sy := scaleFactor(height, p.dimension.Y)
	for i := range p.outline {
		p.outline[i].X *= sx
		p.outline[i].Y *= sy
	}
	p.dimension = bounds(p.outline)
	p.resized = true
	p.MarkDirty(true)
}

func scaleFactor(to, from float64) float64 {
	if from == 0 {
		return 1
	}
	return to / from
}

// Resized reports whether the outline changed since the last call.
func (p *Polygon) Resized() bool {
	r := p.resized
	p.resized = false
	return r
}
