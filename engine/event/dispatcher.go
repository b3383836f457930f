package event

// Type names a notification.
type Type string

// Event is the payload delivered to Dispatcher listeners.
type Event struct {
	// Type is the notification name the event was dispatched under.
	Type Type

	// Target is the object that dispatched the event. Filled in by Dispatch.
	Target any

	// OriginalEvent is the raw input event that caused the notification, or nil.
	OriginalEvent any
}

// Dispatcher maps notification names to ordered listener lists.
type Dispatcher interface {
	// AddEventListener registers fn for events of type t.
	//
	// Parameters:
	//   - t: the notification name
	//   - fn: the callback
	//
	// Returns:
	//   - Handle: the registration handle
	AddEventListener(t Type, fn func(Event)) Handle

	// HasEventListener reports whether the handle is registered for type t.
	//
	// Parameters:
	//   - t: the notification name
	//   - h: the registration handle
	//
	// Returns:
	//   - bool: true if registered
	HasEventListener(t Type, h Handle) bool

	// RemoveEventListener unregisters the handle from type t. Unknown handles are ignored.
	//
	// Parameters:
	//   - t: the notification name
	//   - h: the registration handle
	RemoveEventListener(t Type, h Handle)

	// DispatchEvent delivers e to the listeners registered for e.Type.
	//
	// Parameters:
	//   - e: the event to deliver
	DispatchEvent(e Event)
}

type dispatcherImpl struct {
	target    any
	listeners map[Type]*Listeners[Event]
}

var _ Dispatcher = &dispatcherImpl{}

// NewDispatcher creates an empty Dispatcher.
//
// Parameters:
//   - target: the value stamped into Event.Target on dispatch (usually the owner)
//
// Returns:
//   - Dispatcher: the dispatcher
func NewDispatcher(target any) Dispatcher {
	return &dispatcherImpl{
		target:    target,
		listeners: make(map[Type]*Listeners[Event]),
	}
}

func (d *dispatcherImpl) AddEventListener(t Type, fn func(Event)) Handle {
	l, ok := d.listeners[t]
	if !ok {
		l = &Listeners[Event]{}
		d.listeners[t] = l
	}
	return l.Add(fn)
}

func (d *dispatcherImpl) HasEventListener(t Type, h Handle) bool {
	l, ok := d.listeners[t]
	return ok && l.Has(h)
}

func (d *dispatcherImpl) RemoveEventListener(t Type, h Handle) {
	if l, ok := d.listeners[t]; ok {
		l.Remove(h)
	}
}

func (d *dispatcherImpl) DispatchEvent(e Event) {
	l, ok := d.listeners[e.Type]
	if !ok {
		return
	}
	e.Target = d.target
	l.Dispatch(e)
}
