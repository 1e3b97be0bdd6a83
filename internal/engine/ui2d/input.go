package ui2d

// InputState is the pointer state the widgets read. The event source sets
// the exported fields; the context derives the rest once per frame.
type InputState struct {
	MouseX, MouseY float32
	MouseLeftDown  bool
	// MouseLeftClicked latches a press so a press and release between two
	// frames still reaches a widget. Cleared at the end of each frame.
	MouseLeftClicked bool

	// Derived in beginFrame.
	MouseDeltaX, MouseDeltaY float32
	MouseLeftPressed         bool

	prevDown     bool
	prevX, prevY float32
}

func (i *InputState) beginFrame() {
	i.MouseDeltaX = i.MouseX - i.prevX
	i.MouseDeltaY = i.MouseY - i.prevY
	i.MouseLeftPressed = i.MouseLeftDown && !i.prevDown

	i.prevDown = i.MouseLeftDown
	i.prevX, i.prevY = i.MouseX, i.MouseY
}

func (i *InputState) endFrame() {
	i.MouseLeftClicked = false
}
