package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/obj"
	"golang.org/x/image/colornames"
)

// Palette holds the fill color of each object kind.
type Palette struct {
	Player   color.RGBA
	Platform color.RGBA
	Wood     color.RGBA
	Fireball color.RGBA
	Bridge   color.RGBA
	Outline  color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Player:   colornames.Crimson,
		Platform: colornames.Forestgreen,
		Wood:     colornames.Saddlebrown,
		Fireball: colornames.Orangered,
		Bridge:   colornames.Peru,
		Outline:  colornames.Lightgrey,
	}
}

// Renderer draws objects as flat colored shapes. It only reads position,
// rotation and display size, never physics internals.
type Renderer struct {
	camera  *Camera
	palette Palette

	// ShowTriangles outlines the triangulation of polygon platforms.
	ShowTriangles bool

	screen *ebiten.Image
	white  *ebiten.Image
}

var _ obj.Visitor[struct{}] = (*Renderer)(nil)

func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera, palette: DefaultPalette()}
}

func (r *Renderer) Camera() *Camera { return r.camera }

// Draw renders objects in the given order onto screen.
func (r *Renderer) Draw(screen *ebiten.Image, objects []obj.Collidable) {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	r.screen = screen
	for _, o := range objects {
		obj.Accept[struct{}](o, r)
	}
	r.screen = nil
}

func (r *Renderer) VisitPlayer(p *obj.Player) struct{} {
	r.object(p, r.palette.Player)
	return struct{}{}
}

func (r *Renderer) VisitPlatform(p *obj.Platform) struct{} {
	outline, tris := p.Outline()
	if outline == nil {
		r.object(p, r.palette.Platform)
		return struct{}{}
	}
	pts := r.transform(outline, cp.Vector{X: p.X(), Y: p.Y()}, p.Angle())
	r.fillTriangles(pts, tris, r.palette.Platform)
	if r.ShowTriangles {
		for i := 0; i+2 < len(tris); i += 3 {
			r.strokeLoop([]cp.Vector{pts[tris[i]], pts[tris[i+1]], pts[tris[i+2]]}, r.palette.Outline)
		}
	}
	return struct{}{}
}

func (r *Renderer) VisitWoodBlock(w *obj.WoodBlock) struct{} {
	r.object(w, r.palette.Wood)
	return struct{}{}
}

func (r *Renderer) VisitFireball(f *obj.Fireball) struct{} {
	x, y := r.camera.ToScreen(cp.Vector{X: f.X(), Y: f.Y()})
	radius := f.DisplayDimensions().X / 2 * r.camera.Scale()
	vector.FillCircle(r.screen, float32(x), float32(y), float32(radius), r.palette.Fireball, true)
	return struct{}{}
}

func (r *Renderer) VisitBridge(b *obj.Bridge) struct{} {
	for _, plank := range b.Planks() {
		r.quad(plank.Position(), plank.Angle(), plank.Width(), plank.Height(), r.palette.Bridge)
	}
	return struct{}{}
}

func (r *Renderer) object(o obj.Object, c color.Color) {
	size := o.DisplayDimensions()
	r.quad(cp.Vector{X: o.X(), Y: o.Y()}, o.Angle(), size.X, size.Y, c)
}

// quad draws a w x h rectangle centered on center and rotated by angle.
func (r *Renderer) quad(center cp.Vector, angle, w, h float64, c color.Color) {
	scale := r.camera.Scale()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-0.5, -0.5)
	op.GeoM.Scale(w*scale, h*scale)
	// screen y points down, so rotation flips
	op.GeoM.Rotate(-angle)
	x, y := r.camera.ToScreen(center)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	r.screen.DrawImage(r.white, op)
}

// transform maps local points to screen space.
func (r *Renderer) transform(local []cp.Vector, pos cp.Vector, angle float64) []cp.Vector {
	rot := cp.ForAngle(angle)
	out := make([]cp.Vector, len(local))
	for i, p := range local {
		x, y := r.camera.ToScreen(pos.Add(rot.Rotate(p)))
		out[i] = cp.Vector{X: x, Y: y}
	}
	return out
}

func (r *Renderer) fillTriangles(pts []cp.Vector, tris []int, c color.RGBA) {
	if len(pts) == 0 || len(pts) > math.MaxUint16 {
		return
	}
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(c.R) / 255,
			ColorG: float32(c.G) / 255,
			ColorB: float32(c.B) / 255,
			ColorA: float32(c.A) / 255,
		}
	}
	is := make([]uint16, len(tris))
	for i, t := range tris {
		is[i] = uint16(t)
	}
	r.screen.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{})
}

func (r *Renderer) strokeLoop(pts []cp.Vector, c color.Color) {
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(r.screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, c, true)
	}
}
