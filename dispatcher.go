package maligui

// EventDispatcher fans one event out to an ordered list of subscribers.
// Dispatch is synchronous and runs on the caller's goroutine.
type EventDispatcher[T any] struct {
	handlers []subscriber[T]
	nextID   uint32
}

type subscriber[T any] struct {
	id uint32
	fn func(T) error
}

// CallbackHandle allows removing a subscriber registered with Subscribe.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback so it no longer fires. Calling Remove more
// than once, or on a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

// Subscribe appends fn to the subscriber list.
func (d *EventDispatcher[T]) Subscribe(fn func(T) error) CallbackHandle {
	d.nextID++
	id := d.nextID
	d.handlers = append(d.handlers, subscriber[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { d.unsubscribe(id) }}
}

// SubscribeFunc subscribes a callback that cannot fail.
func (d *EventDispatcher[T]) SubscribeFunc(fn func(T)) CallbackHandle {
	return d.Subscribe(func(v T) error {
		fn(v)
		return nil
	})
}

// Dispatch invokes every subscriber with v in subscription order. The first
// subscriber error aborts the dispatch and is returned; later subscribers are
// not called. Panics are not recovered.
func (d *EventDispatcher[T]) Dispatch(v T) error {
	// Subscribers may unsubscribe during dispatch; iterate a snapshot.
	handlers := d.handlers
	for _, h := range handlers {
		if err := h.fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of subscribers.
func (d *EventDispatcher[T]) Len() int {
	return len(d.handlers)
}

func (d *EventDispatcher[T]) unsubscribe(id uint32) {
	for i := range d.handlers {
		if d.handlers[i].id == id {
			// Build a new slice so an in-flight Dispatch keeps its snapshot.
			hs := make([]subscriber[T], 0, len(d.handlers)-1)
			hs = append(hs, d.handlers[:i]...)
			d.handlers = append(hs, d.handlers[i+1:]...)
			return
		}
	}
}
