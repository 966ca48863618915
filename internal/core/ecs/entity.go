package ecs

// EntityID packs a 32-bit slot index in the low half and a 32-bit generation
// in the high half. The generation bumps on destroy, so a stale handle to a
// recycled slot never passes Alive.
type EntityID uint64

func makeID(slot, gen uint32) EntityID {
	return EntityID(uint64(gen)<<32 | uint64(slot))
}

func (id EntityID) Slot() uint32       { return uint32(id) }
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// Pool allocates entity IDs from a free list with generational validation.
type Pool struct {
	generations []uint32
	free        []uint32
	next        uint32
}

func NewPool() *Pool {
	return &Pool{
		generations: make([]uint32, 0, 512),
		free:        make([]uint32, 0, 128),
	}
}

// Create returns a fresh entity, reusing destroyed slots when available.
func (p *Pool) Create() EntityID {
	if n := len(p.free); n > 0 {
		slot := p.free[n-1]
		p.free = p.free[:n-1]
		return makeID(slot, p.generations[slot])
	}
	slot := p.next
	p.next++
	p.generations = append(p.generations, 0)
	return makeID(slot, 0)
}

// Alive reports whether id refers to a live, non-recycled entity.
func (p *Pool) Alive(id EntityID) bool {
	slot := id.Slot()
	return slot < p.next && p.generations[slot] == id.Generation()
}

// Destroy releases the entity's slot. Stale or unknown IDs are ignored.
func (p *Pool) Destroy(id EntityID) {
	slot := id.Slot()
	if slot >= p.next || p.generations[slot] != id.Generation() {
		return
	}
	p.generations[slot]++
	p.free = append(p.free, slot)
}

// Len returns the number of live entities.
func (p *Pool) Len() int {
	return int(p.next) - len(p.free)
}
