package platform

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/picsort/internal/engine/input"
)

// keycodes maps SDL virtual keys to layout-independent keys.
var keycodes = map[sdl.Keycode]input.Key{
	sdl.K_SPACE:        input.KeySpace,
	sdl.K_QUOTE:        input.KeyApostrophe,
	sdl.K_COMMA:        input.KeyComma,
	sdl.K_MINUS:        input.KeyMinus,
	sdl.K_PERIOD:       input.KeyPeriod,
	sdl.K_SLASH:        input.KeySlash,
	sdl.K_SEMICOLON:    input.KeySemicolon,
	sdl.K_EQUALS:       input.KeyEqual,
	sdl.K_LEFTBRACKET:  input.KeyLeftBracket,
	sdl.K_BACKSLASH:    input.KeyBackslash,
	sdl.K_RIGHTBRACKET: input.KeyRightBracket,
	sdl.K_BACKQUOTE:    input.KeyGraveAccent,

	sdl.K_ESCAPE:    input.KeyEscape,
	sdl.K_RETURN:    input.KeyEnter,
	sdl.K_TAB:       input.KeyTab,
	sdl.K_BACKSPACE: input.KeyBackspace,
	sdl.K_INSERT:    input.KeyInsert,
	sdl.K_DELETE:    input.KeyDelete,
	sdl.K_RIGHT:     input.KeyRight,
	sdl.K_LEFT:      input.KeyLeft,
	sdl.K_DOWN:      input.KeyDown,
	sdl.K_UP:        input.KeyUp,
	sdl.K_PAGEUP:    input.KeyPageUp,
	sdl.K_PAGEDOWN:  input.KeyPageDown,
	sdl.K_HOME:      input.KeyHome,
	sdl.K_END:       input.KeyEnd,
	sdl.K_KP_ENTER:  input.KeyKeypadEnter,

	sdl.K_F1:  input.KeyF1,
	sdl.K_F2:  input.KeyF2,
	sdl.K_F3:  input.KeyF3,
	sdl.K_F4:  input.KeyF4,
	sdl.K_F5:  input.KeyF5,
	sdl.K_F6:  input.KeyF6,
	sdl.K_F7:  input.KeyF7,
	sdl.K_F8:  input.KeyF8,
	sdl.K_F9:  input.KeyF9,
	sdl.K_F10: input.KeyF10,
	sdl.K_F11: input.KeyF11,
	sdl.K_F12: input.KeyF12,

	sdl.K_LSHIFT: input.KeyLeftShift,
	sdl.K_LCTRL:  input.KeyLeftControl,
	sdl.K_LALT:   input.KeyLeftAlt,
	sdl.K_LGUI:   input.KeyLeftSuper,
	sdl.K_RSHIFT: input.KeyRightShift,
	sdl.K_RCTRL:  input.KeyRightControl,
	sdl.K_RALT:   input.KeyRightAlt,
	sdl.K_RGUI:   input.KeyRightSuper,
}

// mapKey converts an SDL keycode. Letters and digits follow the active
// layout, so the key labelled "A" is always input.KeyA.
func mapKey(sym sdl.Keycode) input.Key {
	switch {
	case sym >= sdl.K_a && sym <= sdl.K_z:
		return input.KeyA + input.Key(sym-sdl.K_a)
	case sym >= sdl.K_0 && sym <= sdl.K_9:
		return input.Key0 + input.Key(sym-sdl.K_0)
	}
	if k, ok := keycodes[sym]; ok {
		return k
	}
	return input.KeyUnknown
}

// mapMods converts an SDL modifier state.
func mapMods(mod uint32) input.Mod {
	var m input.Mod
	if mod&uint32(sdl.KMOD_SHIFT) != 0 {
		m |= input.ModShift
	}
	if mod&uint32(sdl.KMOD_CTRL) != 0 {
		m |= input.ModCtrl
	}
	if mod&uint32(sdl.KMOD_ALT) != 0 {
		m |= input.ModAlt
	}
	if mod&uint32(sdl.KMOD_GUI) != 0 {
		m |= input.ModSuper
	}
	return m
}

// mapButton converts an SDL mouse button index.
func mapButton(button uint8) (input.MouseButton, bool) {
	switch button {
	case sdl.BUTTON_LEFT:
		return input.MouseLeft, true
	case sdl.BUTTON_RIGHT:
		return input.MouseRight, true
	case sdl.BUTTON_MIDDLE:
		return input.MouseMiddle, true
	case sdl.BUTTON_X1:
		return input.MouseX1, true
	case sdl.BUTTON_X2:
		return input.MouseX2, true
	}
	return 0, false
}

// buttonMask converts SDL's mouse state bits to a mask indexed by
// input.MouseButton.
func buttonMask(state uint32) uint32 {
	var mask uint32
	for _, b := range []uint8{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE, sdl.BUTTON_X1, sdl.BUTTON_X2} {
		if state&(1<<(uint32(b)-1)) == 0 {
			continue
		}
		if btn, ok := mapButton(b); ok {
			mask |= 1 << uint(btn)
		}
	}
	return mask
}
