package ecs

// Registry tracks every component store so an entity's data can be bulk
// removed on destroy.
type Registry struct {
	stores []Removable
}

func NewRegistry() *Registry {
	return &Registry{stores: make([]Removable, 0, 8)}
}

func (r *Registry) Add(store Removable) {
	r.stores = append(r.stores, store)
}

func (r *Registry) RemoveAll(id EntityID) {
	for _, s := range r.stores {
		s.Remove(id)
	}
}

// World owns the entity pool, the store registry, and a deferred destroy
// queue flushed at the end of each frame.
type World struct {
	pool     *Pool
	registry *Registry
	doomed   []EntityID
}

func NewWorld() *World {
	return &World{
		pool:     NewPool(),
		registry: NewRegistry(),
		doomed:   make([]EntityID, 0, 32),
	}
}

func (w *World) Pool() *Pool         { return w.pool }
func (w *World) Registry() *Registry { return w.registry }

func (w *World) Create() EntityID {
	return w.pool.Create()
}

func (w *World) Alive(id EntityID) bool {
	return w.pool.Alive(id)
}

// Defer queues an entity for destruction at the next Flush. Destroying
// mid-frame would invalidate iterators in whatever system is running.
func (w *World) Defer(id EntityID) {
	w.doomed = append(w.doomed, id)
}

// Flush destroys all queued entities and strips their components.
func (w *World) Flush() {
	for _, id := range w.doomed {
		w.registry.RemoveAll(id)
		w.pool.Destroy(id)
	}
	w.doomed = w.doomed[:0]
}
