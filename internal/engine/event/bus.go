package event

// Bus dispatches events to subscribed listeners.
//
// Dispatch is synchronous and single-threaded: Raise returns after every
// listener has handled the event. Listeners run in subscription order.
type Bus struct {
	listeners map[Kind][]Listener
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[Kind][]Listener),
	}
}

// Subscribe registers l for the given kinds.
// Subscribing the same listener twice to a kind has no effect.
func (b *Bus) Subscribe(l Listener, kinds ...Kind) {
	for _, k := range kinds {
		if b.indexOf(k, l) >= 0 {
			continue
		}
		b.listeners[k] = append(b.listeners[k], l)
	}
}

// Unsubscribe removes l from the given kinds. Unknown listeners are ignored.
func (b *Bus) Unsubscribe(l Listener, kinds ...Kind) {
	for _, k := range kinds {
		i := b.indexOf(k, l)
		if i < 0 {
			continue
		}
		// Copy so a Raise iterating the old slice is unaffected
		old := b.listeners[k]
		next := make([]Listener, 0, len(old)-1)
		next = append(next, old[:i]...)
		next = append(next, old[i+1:]...)
		if len(next) == 0 {
			delete(b.listeners, k)
		} else {
			b.listeners[k] = next
		}
	}
}

// Raise delivers e to every listener subscribed to its kind.
func (b *Bus) Raise(e Event) {
	for _, l := range b.listeners[e.Kind()] {
		l.HandleEvent(e)
	}
}

// Count returns the number of listeners subscribed to kind.
func (b *Bus) Count(kind Kind) int {
	return len(b.listeners[kind])
}

func (b *Bus) indexOf(k Kind, l Listener) int {
	for i, cur := range b.listeners[k] {
		if cur == l {
			return i
		}
	}
	return -1
}
