package frame

import (
	"math"

	"github.com/Faultbox/picsort/internal/engine/input"
)

// State is the snapshot of one frame handed to Application.Draw.
type State struct {
	WindowWidth, WindowHeight           int
	FramebufferWidth, FramebufferHeight int
	Scale                               float32

	Mods    input.Mod
	Buttons uint32 // bit n set while input.MouseButton(n) is held

	// PointerX and PointerY are in window units, NaN while unfocused.
	PointerX, PointerY float32
	MouseOverGUI       bool

	// Scroll accumulated since the previous frame and not consumed by the
	// application's handler.
	ScrollX, ScrollY float32

	DeltaTime float32 // seconds since the previous frame
	Frame     uint64
}

// ButtonDown reports whether b is held.
func (s State) ButtonDown(b input.MouseButton) bool {
	if b < 0 || b >= input.MouseButtonCount {
		return false
	}
	return s.Buttons&(1<<uint(b)) != 0
}

// HasPointer reports whether the pointer position is known.
func (s State) HasPointer() bool {
	return !math.IsNaN(float64(s.PointerX)) && !math.IsNaN(float64(s.PointerY))
}
