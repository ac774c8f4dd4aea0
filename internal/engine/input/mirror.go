package input

// Frame is the GUI input accumulated since the previous frame.
type Frame struct {
	Keys  []KeyEvent // in arrival order
	Chars []rune

	// Buttons holds each button's state for the frame. A button pressed and
	// released between two frames still reads as down for one frame.
	Buttons          [MouseButtonCount]bool
	ScrollX, ScrollY float32
	Mods             Mod
}

// Mirror is the GUI's view of the input that the application did not consume.
type Mirror struct {
	keysDown [keyCount]bool
	keys     []KeyEvent
	chars    []rune

	buttonsDown [MouseButtonCount]bool
	pressed     [MouseButtonCount]bool

	scrollX, scrollY float32
	mods             Mod

	wantKeyboard bool
	wantMouse    bool
}

// NewMirror creates an empty mirror.
func NewMirror() *Mirror {
	return &Mirror{
		keys:  make([]KeyEvent, 0, 16),
		chars: make([]rune, 0, 16),
	}
}

// Key records a key event.
func (m *Mirror) Key(ev KeyEvent) {
	if ev.Key > KeyUnknown && ev.Key < keyCount {
		m.keysDown[ev.Key] = ev.Action != Release
	}
	m.mods = ev.Mods
	m.keys = append(m.keys, ev)
}

// Char records a text input character.
func (m *Mirror) Char(c rune) {
	m.chars = append(m.chars, c)
}

// Mouse records a button event. Presses are latched until the next Flush.
func (m *Mirror) Mouse(ev MouseEvent) {
	if ev.Button < 0 || ev.Button >= MouseButtonCount {
		return
	}
	switch ev.Action {
	case Press:
		m.buttonsDown[ev.Button] = true
		m.pressed[ev.Button] = true
	case Release:
		m.buttonsDown[ev.Button] = false
	}
	m.mods = ev.Mods
}

// Scroll accumulates wheel movement.
func (m *Mirror) Scroll(dx, dy float32) {
	m.scrollX += dx
	m.scrollY += dy
}

// KeyDown reports whether the GUI has seen k pressed and not released.
func (m *Mirror) KeyDown(k Key) bool {
	if k <= KeyUnknown || k >= keyCount {
		return false
	}
	return m.keysDown[k]
}

// ButtonDown reports the current state of b as seen by the GUI.
func (m *Mirror) ButtonDown(b MouseButton) bool {
	if b < 0 || b >= MouseButtonCount {
		return false
	}
	return m.buttonsDown[b]
}

// SetCapture records whether the GUI wants keyboard and mouse input.
func (m *Mirror) SetCapture(keyboard, mouse bool) {
	m.wantKeyboard = keyboard
	m.wantMouse = mouse
}

// WantKeyboard reports whether a GUI widget has keyboard focus.
func (m *Mirror) WantKeyboard() bool { return m.wantKeyboard }

// WantMouse reports whether the pointer is over the GUI.
func (m *Mirror) WantMouse() bool { return m.wantMouse }

// Flush returns the input gathered since the last call and starts a new
// frame: queues are emptied, latches cleared, scroll reset to zero.
func (m *Mirror) Flush() Frame {
	f := Frame{
		ScrollX: m.scrollX,
		ScrollY: m.scrollY,
		Mods:    m.mods,
	}
	if len(m.keys) > 0 {
		f.Keys = append([]KeyEvent(nil), m.keys...)
	}
	if len(m.chars) > 0 {
		f.Chars = append([]rune(nil), m.chars...)
	}
	for i := range f.Buttons {
		f.Buttons[i] = m.pressed[i] || m.buttonsDown[i]
		m.pressed[i] = false
	}

	m.keys = m.keys[:0]
	m.chars = m.chars[:0]
	m.scrollX, m.scrollY = 0, 0
	return f
}
