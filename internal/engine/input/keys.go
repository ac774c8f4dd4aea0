// Package input normalizes window-system events into layout-independent
// keys and routes each event either to the application or to the GUI.
package input

import "strconv"

// Key is a layout-independent key identifier.
type Key int

// Keys known to the application and the GUI.
const (
	KeyUnknown Key = iota

	KeySpace
	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyKeypadEnter

	KeyLeftShift
	KeyLeftControl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightControl
	KeyRightAlt
	KeyRightSuper

	keyCount
)

var keyNames = map[Key]string{
	KeySpace: "Space", KeyApostrophe: "'", KeyComma: ",", KeyMinus: "-", KeyPeriod: ".",
	KeySlash: "/", KeySemicolon: ";", KeyEqual: "=", KeyLeftBracket: "[",
	KeyBackslash: "\\", KeyRightBracket: "]", KeyGraveAccent: "`",
	KeyEscape: "Escape", KeyEnter: "Enter", KeyTab: "Tab", KeyBackspace: "Backspace",
	KeyInsert: "Insert", KeyDelete: "Delete", KeyRight: "Right", KeyLeft: "Left",
	KeyDown: "Down", KeyUp: "Up", KeyPageUp: "PageUp", KeyPageDown: "PageDown",
	KeyHome: "Home", KeyEnd: "End", KeyKeypadEnter: "KeypadEnter",
	KeyLeftShift: "LeftShift", KeyLeftControl: "LeftControl", KeyLeftAlt: "LeftAlt",
	KeyLeftSuper: "LeftSuper", KeyRightShift: "RightShift", KeyRightControl: "RightControl",
	KeyRightAlt: "RightAlt", KeyRightSuper: "RightSuper",
}

// String returns a readable key name.
func (k Key) String() string {
	switch {
	case k >= Key0 && k <= Key9:
		return string(rune('0' + int(k-Key0)))
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + int(k-KeyA)))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Mod is a bit mask of held modifier keys.
type Mod uint8

// Modifier bits.
const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Has reports whether all bits of other are set.
func (m Mod) Has(other Mod) bool {
	return m&other == other
}

// Action is what happened to a key or button.
type Action int

// Key and button actions.
const (
	Release Action = iota
	Press
	Repeat
)

// MouseButton identifies a mouse button.
type MouseButton int

// Mouse buttons in GUI order.
const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseX1
	MouseX2

	MouseButtonCount
)

// KeyEvent is a normalized key press, release or repeat.
type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     Mod
}

// MouseEvent is a normalized mouse button event.
type MouseEvent struct {
	Button MouseButton
	Action Action
	Mods   Mod
}

// Cursor is a GUI-requested mouse cursor shape.
type Cursor int

// Cursor shapes. CursorNone hides the OS cursor.
const (
	CursorNone Cursor = iota - 1
	CursorArrow
	CursorTextInput
	CursorResizeAll
	CursorResizeNS
	CursorResizeEW
	CursorResizeNESW
	CursorResizeNWSE
	CursorHand
	CursorNotAllowed

	CursorCount
)
