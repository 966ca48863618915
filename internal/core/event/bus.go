package event

// Event is a named payload routed to handlers that accept the name.
type Event struct {
	Name    string
	Payload any
}

// Handler receives events whose name it declares valid. Engine managers
// satisfy this through their lifecycle contract.
type Handler interface {
	IsValid(event string) bool
	OnEvent(event string, payload any)
}

// Bus is a double-buffered event queue. Emit fills the back buffer;
// Dispatch swaps buffers and delivers the front, so events emitted while
// dispatching are deferred to the next frame instead of recursing.
type Bus struct {
	front    []Event
	back     []Event
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{
		front: make([]Event, 0, 16),
		back:  make([]Event, 0, 16),
	}
}

// Attach registers a handler. Handlers are consulted in attach order.
func (b *Bus) Attach(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Emit queues an event for the next Dispatch.
func (b *Bus) Emit(ev Event) {
	b.back = append(b.back, ev)
}

// Dispatch delivers every queued event to each handler whose IsValid accepts
// the event's name. Returns the number of deliveries made.
func (b *Bus) Dispatch() int {
	b.front, b.back = b.back, b.front[:0]
	delivered := 0
	for _, ev := range b.front {
		for _, h := range b.handlers {
			if h.IsValid(ev.Name) {
				h.OnEvent(ev.Name, ev.Payload)
				delivered++
			}
		}
	}
	return delivered
}
