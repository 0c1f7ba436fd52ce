package world

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/elements/config"
	"github.com/milk9111/elements/levels"
	"github.com/milk9111/elements/obj"
	"github.com/milk9111/elements/physics"
)

const (
	DefaultSpawnX = 2
	DefaultSpawnY = 2

	sleepTimeThreshold = 0.5
	collisionSlop      = 0.01
)

type entry struct {
	handle Handle
	obj    obj.Collidable
}

// World owns the physics space and every entity attached to it.
type World struct {
	consts     config.Constants
	logger     *log.Logger
	space      *cp.Space
	classifier *Classifier
	entities   entityTable
	order      []entry
	player     *obj.Player
}

func New(consts config.Constants, logger *log.Logger) *World {
	if logger == nil {
		logger = log.Default()
	}
	w := &World{consts: consts, logger: logger}
	w.classifier = NewClassifier(w.resolveShape)
	return w
}

func (w *World) Space() *cp.Space                { return w.space }
func (w *World) Player() *obj.Player             { return w.player }
func (w *World) Constants() config.Constants     { return w.consts }
func (w *World) Classifier() *Classifier         { return w.classifier }
func (w *World) SetConstants(c config.Constants) { w.consts = c }

// Objects returns the live entities in draw order.
func (w *World) Objects() []obj.Collidable {
	out := make([]obj.Collidable, len(w.order))
	for i, e := range w.order {
		out[i] = e.obj
	}
	return out
}

func (w *World) Lookup(h Handle) (obj.Collidable, bool) {
	return w.entities.lookup(h)
}

// Populate discards the current space and builds a new one from level.
func (w *World) Populate(level *levels.Level) {
	w.Dispose()
	w.space = w.newSpace()
	if level == nil {
		return
	}

	pd := levels.PlayerData{X: DefaultSpawnX, Y: DefaultSpawnY}
	if level.Player != nil {
		pd = *level.Player
	} else {
		w.logger.Warn("level has no player, using default spawn", "level", level.Name, "x", pd.X, "y", pd.Y)
	}
	player := obj.NewPlayer(w.consts.Player, pd)
	if w.AddEntity(player) {
		w.player = player
	}

	for i, d := range level.Platforms {
		w.AddEntity(obj.NewPlatform(w.consts.Platform, d, fmt.Sprintf("platform_%d", i)))
	}
	for i, d := range level.Wood {
		w.AddEntity(obj.NewWoodBlock(w.consts.Wood, d, fmt.Sprintf("wood_%d", i)))
	}
	for i, d := range level.Bridges {
		w.AddEntity(obj.NewBridge(w.consts.Bridge, d, fmt.Sprintf("bridge_%d", i)))
	}
	w.SortByZIndex()
	w.logger.Debug("populated", "level", level.Name, "entities", len(w.order), "bodies", w.BodyCount())
}

func (w *World) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: w.consts.Gravity})
	space.SleepTimeThreshold = sleepTimeThreshold
	space.SetCollisionSlop(collisionSlop)
	w.classifier.install(space, physics.CollisionType)
	return space
}

// AddEntity attaches o to the space and appends it to the entity list. It
// does not re-sort; call SortByZIndex afterwards if order matters.
func (w *World) AddEntity(o obj.Collidable) bool {
	if w.space == nil || o == nil {
		return false
	}
	h := w.entities.create(o)
	if !o.HitBox().Activate(w.space, h) {
		w.entities.destroy(h)
		w.logger.Warn("entity failed to activate", "name", o.HitBox().Name())
		return false
	}
	w.order = append(w.order, entry{handle: h, obj: o})
	return true
}

// SortByZIndex orders entities by descending z-index, keeping insertion
// order among equal values.
func (w *World) SortByZIndex() {
	sort.SliceStable(w.order, func(i, j int) bool {
		return w.order[i].obj.ZIndex() > w.order[j].obj.ZIndex()
	})
}

// Step advances the simulation by dt, lets bodies rebuild dirty fixtures
// and drops entities marked for removal. The engine uses a single
// iteration count, so the two counts are summed.
func (w *World) Step(dt float64, velocityIterations, positionIterations int) {
	if w.space == nil {
		return
	}
	w.space.Iterations = uint(max(1, velocityIterations+positionIterations))
	w.space.Step(dt)

	for _, e := range w.order {
		if f, ok := e.obj.(*obj.Fireball); ok {
			f.Tick(dt)
		}
		e.obj.HitBox().Update(dt)
	}
	w.sweep()
}

func (w *World) sweep() {
	kept := w.order[:0]
	for _, e := range w.order {
		if !e.obj.HitBox().IsRemoved() {
			kept = append(kept, e)
			continue
		}
		e.obj.HitBox().Deactivate(w.space)
		w.entities.destroy(e.handle)
		if p, ok := e.obj.(*obj.Player); ok && p == w.player {
			w.player = nil
		}
	}
	clear(w.order[len(kept):])
	w.order = kept
}

// SummonFireball spawns a fireball owned by p moving at velocity.
func (w *World) SummonFireball(p *obj.Player, velocity cp.Vector) *obj.Fireball {
	if p == nil {
		return nil
	}
	f := obj.NewFireball(w.consts.Fireball, p)
	f.Launch(velocity)
	if !w.AddEntity(f) {
		return nil
	}
	return f
}

// Dispose detaches every entity and drops the space. It is safe to call
// more than once.
func (w *World) Dispose() {
	if w.space == nil {
		return
	}
	for _, e := range w.order {
		e.obj.HitBox().Deactivate(w.space)
	}
	w.order = nil
	w.entities.reset()
	w.player = nil
	w.space = nil
}

// BodyCount is the number of engine bodies in the current space.
func (w *World) BodyCount() int {
	return countBodies(w.space)
}

func countBodies(space *cp.Space) int {
	if space == nil {
		return 0
	}
	n := 0
	space.EachBody(func(b *cp.Body) {
		if b != space.StaticBody {
			n++
		}
	})
	return n
}

func (w *World) resolveShape(s *cp.Shape) (obj.Object, bool) {
	body := s.Body()
	if body == nil {
		return nil, false
	}
	h, ok := body.UserData.(Handle)
	if !ok {
		return nil, false
	}
	o, ok := w.entities.lookup(h)
	if !ok {
		return nil, false
	}
	return o, true
}
