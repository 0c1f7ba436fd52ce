package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
)

const (
	DefaultTileSize = 32

	// gidMask strips Tiled's flip flags from a global tile id.
	gidMask = 0x0FFFFFFF
)

const (
	TilePlayer = "player"
	TileGrass  = "grass"
	TileWood   = "wood"
	TileBridge = "bridge"
)

var ErrNoObjectLayer = errors.New("levels: map has no object layer")

type tiledMap struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	TileWidth  int          `json:"tilewidth"`
	TileHeight int          `json:"tileheight"`
	Layers     []tiledLayer `json:"layers"`
}

type tiledLayer struct {
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Objects []tiledObject `json:"objects"`
}

type tiledObject struct {
	GID        uint32          `json:"gid"`
	Type       string          `json:"type"`
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Width      float64         `json:"width"`
	Height     float64         `json:"height"`
	Polygon    []Point         `json:"polygon"`
	Properties []tiledProperty `json:"properties"`
}

type tiledProperty struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

type tiledTileset struct {
	TileWidth  int         `json:"tilewidth"`
	TileHeight int         `json:"tileheight"`
	Tiles      []tiledTile `json:"tiles"`
}

type tiledTile struct {
	ID         int             `json:"id"`
	Type       string          `json:"type"`
	Properties []tiledProperty `json:"properties"`
}

// Parser converts Tiled object-layer maps into levels using one tileset.
type Parser struct {
	tiles  map[int]tiledTile
	logger *log.Logger
}

func NewParser(tileset []byte, logger *log.Logger) (*Parser, error) {
	var ts tiledTileset
	if err := json.Unmarshal(tileset, &ts); err != nil {
		return nil, fmt.Errorf("levels: unmarshal tileset: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	p := &Parser{tiles: make(map[int]tiledTile, len(ts.Tiles)), logger: logger}
	for _, t := range ts.Tiles {
		p.tiles[t.ID] = t
	}
	return p, nil
}

// Parse builds a level from a Tiled map. A map without a player yields a
// level whose Player is nil.
func (p *Parser) Parse(name string, data []byte) (*Level, error) {
	var m tiledMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if m.TileWidth <= 0 {
		m.TileWidth = DefaultTileSize
	}
	if m.TileHeight <= 0 {
		m.TileHeight = DefaultTileSize
	}

	level := &Level{Name: name, Bounds: Size{Width: float64(m.Width), Height: float64(m.Height)}}
	found := false
	for _, layer := range m.Layers {
		if layer.Type != "objectgroup" {
			continue
		}
		found = true
		for _, obj := range layer.Objects {
			p.addObject(level, &m, obj)
		}
	}
	if !found {
		return nil, fmt.Errorf("levels: parse %s: %w", name, ErrNoObjectLayer)
	}
	if level.Player == nil {
		p.logger.Warn("player not found", "level", name)
	}
	return level, nil
}

func (p *Parser) addObject(level *Level, m *tiledMap, obj tiledObject) {
	tw, th := float64(m.TileWidth), float64(m.TileHeight)
	kind := obj.Type
	props := obj.Properties
	if obj.GID != 0 {
		// Tileset ids are zero based, map gids start at one.
		tile, ok := p.tiles[int(obj.GID&gidMask)-1]
		if !ok {
			p.logger.Warn("unknown tile", "gid", obj.GID&gidMask)
			return
		}
		kind = tile.Type
		// Object properties take precedence over the tile's.
		props = append(append([]tiledProperty(nil), obj.Properties...), tile.Properties...)
	}

	w, h := obj.Width/tw, obj.Height/th
	// Tile objects are anchored at their bottom-left corner, shapes at
	// their top-left.
	x := obj.X/tw + w/2
	y := float64(m.Height) - obj.Y/th + h/2
	if obj.GID == 0 {
		y = float64(m.Height) - obj.Y/th - h/2
	}
	z := intProperty(props, "z", 0)
	hitBox := Size{Width: floatProperty(props, "hit-box-width", 0) / tw, Height: floatProperty(props, "hit-box-height", 0) / th}

	switch kind {
	case TilePlayer:
		if level.Player != nil {
			p.logger.Warn("ignoring extra player", "x", x, "y", y)
			return
		}
		level.Player = &PlayerData{X: x, Y: y, Width: w, Height: h, HitBox: hitBox, ZIndex: z}
	case TileGrass, TileWood:
		d := PlatformData{X: x, Y: y, Width: w, Height: h, HitBox: hitBox, ZIndex: z}
		if len(obj.Polygon) >= 3 {
			d = polygonPlatform(obj, m, z)
		}
		if kind == TileWood {
			level.Wood = append(level.Wood, d)
		} else {
			level.Platforms = append(level.Platforms, d)
		}
	case TileBridge:
		links := intProperty(props, "links", 0)
		if links <= 0 {
			links = max(1, int(w))
		}
		level.Bridges = append(level.Bridges, BridgeData{
			X:          x,
			Y:          y,
			Links:      links,
			LinkWidth:  w / float64(links),
			LinkHeight: h,
			ZIndex:     z,
		})
	default:
		p.logger.Warn("unknown object type", "type", kind)
	}
}

// polygonPlatform converts a Tiled polygon (pixel offsets from the object
// origin, y down) into a platform whose points are local to its origin.
func polygonPlatform(obj tiledObject, m *tiledMap, z int) PlatformData {
	tw, th := float64(m.TileWidth), float64(m.TileHeight)
	points := make([]Point, 0, len(obj.Polygon))
	for _, pt := range obj.Polygon {
		points = append(points, Point{X: pt.X / tw, Y: -pt.Y / th})
	}
	return PlatformData{
		X:      obj.X / tw,
		Y:      float64(m.Height) - obj.Y/th,
		Points: points,
		ZIndex: z,
	}
}

func intProperty(props []tiledProperty, name string, fallback int) int {
	for _, p := range props {
		if p.Name != name {
			continue
		}
		var v int
		if err := json.Unmarshal(p.Value, &v); err == nil {
			return v
		}
		var s string
		if err := json.Unmarshal(p.Value, &s); err == nil {
			if n, err := strconv.Atoi(s); err == nil {
				return n
			}
		}
	}
	return fallback
}

func floatProperty(props []tiledProperty, name string, fallback float64) float64 {
	for _, p := range props {
		if p.Name != name {
			continue
		}
		var v float64
		if err := json.Unmarshal(p.Value, &v); err == nil {
			return v
		}
	}
	return fallback
}
