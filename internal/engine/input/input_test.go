package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestResizeSubscription(t *testing.T) {
	d := New()
	var got [][2]int
	unsub := d.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	d.Dispatch(Event{Type: EventWindowResize, Width: 800, Height: 600})
	unsub()
	unsub()
	d.Dispatch(Event{Type: EventWindowResize, Width: 1024, Height: 768})

	assert.Equal(t, [][2]int{{800, 600}}, got)
	assert.Zero(t, d.subscribers())
}

func TestPointerConsumption(t *testing.T) {
	d := New()
	var order []string

	d.OnPointer(func(e Event) bool {
		order = append(order, "panel")
		return e.MouseX < 100
	})
	d.OnPointer(func(e Event) bool {
		order = append(order, "orbit")
		return false
	})

	d.Dispatch(Event{Type: EventMouseDown, MouseX: 50, Button: sdl.BUTTON_LEFT})
	assert.Equal(t, []string{"panel"}, order)

	order = nil
	d.Dispatch(Event{Type: EventMouseMove, MouseX: 500})
	assert.Equal(t, []string{"panel", "orbit"}, order)
}

func TestWheelConsumption(t *testing.T) {
	d := New()
	var total float32
	d.OnWheel(func(e Event) bool { return e.WheelY > 5 })
	d.OnWheel(func(e Event) bool {
		total += e.WheelY
		return true
	})

	d.Dispatch(Event{Type: EventMouseWheel, WheelY: 1})
	d.Dispatch(Event{Type: EventMouseWheel, WheelY: 10})
	assert.Equal(t, float32(1), total)
}

func TestUnsubscribeDuringDispatch(t *testing.T) {
	d := New()
	calls := 0
	var unsub Unsubscribe
	unsub = d.OnKey(func(Event) {
		calls++
		unsub()
	})
	other := 0
	d.OnKey(func(Event) { other++ })

	d.Dispatch(Event{Type: EventKeyDown, Key: sdl.SCANCODE_F1})
	d.Dispatch(Event{Type: EventKeyUp, Key: sdl.SCANCODE_F1})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestUnsubscribeMiddle(t *testing.T) {
	d := New()
	var got []int
	d.OnQuit(func() { got = append(got, 1) })
	unsub := d.OnQuit(func() { got = append(got, 2) })
	d.OnQuit(func() { got = append(got, 3) })

	unsub()
	d.Dispatch(Event{Type: EventQuit})

	assert.Equal(t, []int{1, 3}, got)
	assert.Equal(t, 2, d.subscribers())
}

func TestDispatchIgnoresNone(t *testing.T) {
	d := New()
	d.OnQuit(func() { t.Fatal("unexpected quit") })
	d.Dispatch(Event{})
}
