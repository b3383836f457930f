// Package event implements the observer primitives used by input surfaces and camera controllers.
//
// Listener functions are not comparable in Go, so every registration returns a Handle that identifies
// it for later removal. Dispatch iterates a snapshot of the listener list: listeners added or removed
// while a dispatch is in flight only affect later dispatches.
package event

import "sync/atomic"

// Handle identifies a single listener registration.
type Handle uint64

// handleCount is shared by every list so a Handle is unique for the process lifetime.
var handleCount atomic.Uint64

type entry[T any] struct {
	handle Handle
	fn     func(T)
}

// Listeners is an ordered collection of callbacks receiving a payload of type T.
// The zero value is ready to use.
type Listeners[T any] struct {
	entries []entry[T]
}

// Add appends a listener and returns its handle.
//
// Parameters:
//   - fn: the callback to register
//
// Returns:
//   - Handle: the registration handle used by Remove and Has
func (l *Listeners[T]) Add(fn func(T)) Handle {
	h := Handle(handleCount.Add(1))
	l.entries = append(l.entries, entry[T]{handle: h, fn: fn})
	return h
}

// Remove unregisters the listener with the given handle. Unknown handles are ignored.
//
// Parameters:
//   - h: the handle returned by Add
//
// Returns:
//   - bool: true if a listener was removed
func (l *Listeners[T]) Remove(h Handle) bool {
	for i, e := range l.entries {
		if e.handle == h {
			// Copy instead of reslicing in place so snapshots held by in-flight dispatches stay intact.
			next := make([]entry[T], 0, len(l.entries)-1)
			next = append(next, l.entries[:i]...)
			l.entries = append(next, l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether the handle is currently registered.
func (l *Listeners[T]) Has(h Handle) bool {
	for _, e := range l.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (l *Listeners[T]) Len() int {
	return len(l.entries)
}

// Dispatch invokes every listener registered at the time of the call, in registration order.
//
// Parameters:
//   - payload: the value passed to each listener
func (l *Listeners[T]) Dispatch(payload T) {
	snapshot := make([]entry[T], len(l.entries))
	copy(snapshot, l.entries)
	for _, e := range snapshot {
		e.fn(payload)
	}
}
