package render

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Camera maps simulation coordinates (y up, in units) to screen pixels
// (y down) centered on a followed point.
type Camera struct {
	X float64
	Y float64

	screenW int
	screenH int
	scale   float64

	// smoothing factor (0..1). higher -> faster follow.
	smooth float64
	// world bounds in units (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera for a screen of the given size drawing scale
// pixels per simulation unit.
func NewCamera(screenW, screenH int, scale float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, scale: scale, smooth: 0.15}
	if scale > 0 {
		c.X = float64(screenW) / scale / 2
		c.Y = float64(screenH) / scale / 2
	}
	return c
}

func (c *Camera) Scale() float64 { return c.scale }

func (c *Camera) SetScale(s float64) {
	if s <= 0 {
		return
	}
	c.scale = s
}

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = w
	c.screenH = h
}

// SetWorldBounds limits the view to [0,w]x[0,h] in simulation units.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = clamp(f, 0, 1)
}

// ToScreen converts a simulation point to screen pixels.
func (c *Camera) ToScreen(p cp.Vector) (float64, float64) {
	sx := (p.X-c.X)*c.scale + float64(c.screenW)/2
	sy := float64(c.screenH)/2 - (p.Y-c.Y)*c.scale
	return sx, sy
}

// Follow moves the camera toward the target. Call once per tick.
func (c *Camera) Follow(x, y float64) {
	if c.smooth <= 0 {
		c.X, c.Y = x, y
	} else {
		c.X += (x - c.X) * c.smooth
		c.Y += (y - c.Y) * c.smooth
	}
	c.constrain()
}

// SnapTo centers the camera on the target without smoothing, for example
// right after a level load.
func (c *Camera) SnapTo(x, y float64) {
	c.X, c.Y = x, y
	c.constrain()
}

func (c *Camera) constrain() {
	if c.scale <= 0 {
		return
	}
	// align to whole pixels
	c.X = math.Round(c.X*c.scale) / c.scale
	c.Y = math.Round(c.Y*c.scale) / c.scale

	halfW := float64(c.screenW) / c.scale / 2
	halfH := float64(c.screenH) / c.scale / 2
	c.X = constrainAxis(c.X, halfW, c.worldW)
	c.Y = constrainAxis(c.Y, halfH, c.worldH)
}

func constrainAxis(v, half, size float64) float64 {
	if size <= 0 {
		return v
	}
	if size < 2*half {
		// world smaller than view: center on world
		return size / 2
	}
	return clamp(v, half, size-half)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
