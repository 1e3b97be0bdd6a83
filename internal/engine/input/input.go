// Package input turns SDL2 events into typed events and fans them out to
// subscribers.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Buttons and keys used by the viewer.
const (
	ButtonLeft uint8 = sdl.BUTTON_LEFT

	KeyEscape sdl.Scancode = sdl.SCANCODE_ESCAPE
	KeyF1     sdl.Scancode = sdl.SCANCODE_F1
	KeyF12    sdl.Scancode = sdl.SCANCODE_F12
)

// Event represents a processed input event. Pointer coordinates are in
// window points, not drawable pixels.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool
	Width  int
	Height int
	MouseX int
	MouseY int
	DeltaX int
	DeltaY int
	Button uint8
	WheelY float32
}

// Handler signatures. Pointer and wheel handlers return true to consume
// the event so later subscribers do not see it.
type (
	ResizeFunc  func(width, height int)
	PointerFunc func(e Event) bool
	WheelFunc   func(e Event) bool
	KeyFunc     func(e Event)
	QuitFunc    func()
)

// Unsubscribe removes a handler. Calling it more than once is harmless.
type Unsubscribe func()

type entry[F any] struct {
	id int
	fn F
}

type registry[F any] struct {
	next    int
	entries []entry[F]
}

func (r *registry[F]) add(fn F) Unsubscribe {
	r.next++
	id := r.next
	r.entries = append(r.entries, entry[F]{id: id, fn: fn})
	return func() {
		for i, e := range r.entries {
			if e.id == id {
				r.entries = append(r.entries[:i:i], r.entries[i+1:]...)
				return
			}
		}
	}
}

// snapshot lets handlers unsubscribe while being dispatched.
func (r *registry[F]) snapshot() []entry[F] {
	return append([]entry[F](nil), r.entries...)
}

func (r *registry[F]) len() int {
	return len(r.entries)
}

// Dispatcher polls SDL events and delivers them to subscribers in
// subscription order. It is used from the main thread only.
type Dispatcher struct {
	resize  registry[ResizeFunc]
	pointer registry[PointerFunc]
	wheel   registry[WheelFunc]
	key     registry[KeyFunc]
	quit    registry[QuitFunc]
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{}
}

// OnResize subscribes to window size changes.
func (d *Dispatcher) OnResize(fn ResizeFunc) Unsubscribe { return d.resize.add(fn) }

// OnPointer subscribes to mouse move and button events.
func (d *Dispatcher) OnPointer(fn PointerFunc) Unsubscribe { return d.pointer.add(fn) }

// OnWheel subscribes to mouse wheel events.
func (d *Dispatcher) OnWheel(fn WheelFunc) Unsubscribe { return d.wheel.add(fn) }

// OnKey subscribes to key presses and releases.
func (d *Dispatcher) OnKey(fn KeyFunc) Unsubscribe { return d.key.add(fn) }

// OnQuit subscribes to window close and application quit requests.
func (d *Dispatcher) OnQuit(fn QuitFunc) Unsubscribe { return d.quit.add(fn) }

// subscribers returns the number of live subscriptions.
func (d *Dispatcher) subscribers() int {
	return d.resize.len() + d.pointer.len() + d.wheel.len() + d.key.len() + d.quit.len()
}

// Poll drains the SDL event queue and dispatches every event.
// Returns true if a quit event was seen.
func (d *Dispatcher) Poll() bool {
	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := translate(event)
		if !ok {
			continue
		}
		if e.Type == EventQuit {
			quit = true
		}
		d.Dispatch(e)
	}
	return quit
}

// Dispatch delivers one event.
func (d *Dispatcher) Dispatch(e Event) {
	switch e.Type {
	case EventQuit:
		for _, h := range d.quit.snapshot() {
			h.fn()
		}
	case EventWindowResize:
		for _, h := range d.resize.snapshot() {
			h.fn(e.Width, e.Height)
		}
	case EventKeyDown, EventKeyUp:
		for _, h := range d.key.snapshot() {
			h.fn(e)
		}
	case EventMouseMove, EventMouseDown, EventMouseUp:
		for _, h := range d.pointer.snapshot() {
			if h.fn(e) {
				return
			}
		}
	case EventMouseWheel:
		for _, h := range d.wheel.snapshot() {
			if h.fn(e) {
				return
			}
		}
	}
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		t := EventKeyUp
		if e.Type == sdl.KEYDOWN {
			t = EventKeyDown
		}
		return Event{Type: t, Key: e.Keysym.Scancode, Repeat: e.Repeat != 0}, true

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DeltaX: int(e.XRel),
			DeltaY: int(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{
			Type:   t,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}, true

	case *sdl.MouseWheelEvent:
		y := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			y = -y
		}
		return Event{Type: EventMouseWheel, WheelY: y}, true
	}

	return Event{}, false
}
