package levels

// Level is the engine-agnostic description of a level in simulation units.
// Positions are body centers with y pointing up.
type Level struct {
	Name      string
	Player    *PlayerData
	Platforms []PlatformData
	Wood      []PlatformData
	Bridges   []BridgeData

	// Bounds is the map size in simulation units, zero when unknown.
	Bounds Size
}

// Size is an optional hit-box override; zero means "same as the display".
type Size struct {
	Width  float64
	Height float64
}

type PlayerData struct {
	X, Y          float64
	Width, Height float64
	HitBox        Size
	ZIndex        int
}

type PlatformData struct {
	X, Y          float64
	Width, Height float64
	HitBox        Size
	// Points, when present, make the platform a polygon. They are local to
	// (X, Y).
	Points []Point
	ZIndex int
}

type BridgeData struct {
	X, Y       float64
	Links      int
	LinkWidth  float64
	LinkHeight float64
	ZIndex     int
}

type Point struct {
	X, Y float64
}
