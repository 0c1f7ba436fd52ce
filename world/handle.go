package world

import (
	"strconv"

	"github.com/milk9111/elements/obj"
)

// Handle is a non-owning reference to an entity in a World. Stale handles
// fail to resolve once the entity is removed.
type Handle struct {
	ID  int
	Gen int
}

func (h Handle) Valid() bool {
	return h.ID > 0
}

func (h Handle) String() string {
	return strconv.Itoa(h.ID) + "." + strconv.Itoa(h.Gen)
}

// entityTable hands out generational handles and maps them to objects.
type entityTable struct {
	gen   []int
	free  []int
	slots []obj.Collidable
}

func (t *entityTable) create(o obj.Collidable) Handle {
	var id int
	if len(t.free) > 0 {
		id = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
	} else {
		t.gen = append(t.gen, 0)
		t.slots = append(t.slots, nil)
		id = len(t.gen)
	}
	t.slots[id-1] = o
	return Handle{ID: id, Gen: t.gen[id-1]}
}

func (t *entityTable) destroy(h Handle) bool {
	if !t.isAlive(h) {
		return false
	}
	idx := h.ID - 1
	t.gen[idx]++
	t.slots[idx] = nil
	t.free = append(t.free, h.ID)
	return true
}

func (t *entityTable) isAlive(h Handle) bool {
	if h.ID <= 0 || h.ID > len(t.gen) {
		return false
	}
	return t.gen[h.ID-1] == h.Gen && t.slots[h.ID-1] != nil
}

func (t *entityTable) lookup(h Handle) (obj.Collidable, bool) {
	if !t.isAlive(h) {
		return nil, false
	}
	return t.slots[h.ID-1], true
}

func (t *entityTable) reset() {
	t.gen, t.free, t.slots = nil, nil, nil
}
