package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/picsort/internal/engine/input"
)

var namedKeys = map[input.Key]imgui.Key{
	input.KeySpace:        imgui.KeySpace,
	input.KeyApostrophe:   imgui.KeyApostrophe,
	input.KeyComma:        imgui.KeyComma,
	input.KeyMinus:        imgui.KeyMinus,
	input.KeyPeriod:       imgui.KeyPeriod,
	input.KeySlash:        imgui.KeySlash,
	input.KeySemicolon:    imgui.KeySemicolon,
	input.KeyEqual:        imgui.KeyEqual,
	input.KeyLeftBracket:  imgui.KeyLeftBracket,
	input.KeyBackslash:    imgui.KeyBackslash,
	input.KeyRightBracket: imgui.KeyRightBracket,
	input.KeyGraveAccent:  imgui.KeyGraveAccent,

	input.KeyEscape:    imgui.KeyEscape,
	input.KeyEnter:     imgui.KeyEnter,
	input.KeyTab:       imgui.KeyTab,
	input.KeyBackspace: imgui.KeyBackspace,
	input.KeyInsert:    imgui.KeyInsert,
	input.KeyDelete:    imgui.KeyDelete,
	input.KeyRight:     imgui.KeyRightArrow,
	input.KeyLeft:      imgui.KeyLeftArrow,
	input.KeyDown:      imgui.KeyDownArrow,
	input.KeyUp:        imgui.KeyUpArrow,
	input.KeyPageUp:    imgui.KeyPageUp,
	input.KeyPageDown:  imgui.KeyPageDown,
	input.KeyHome:      imgui.KeyHome,
	input.KeyEnd:       imgui.KeyEnd,

	input.KeyKeypadEnter:  imgui.KeyKeypadEnter,
	input.KeyLeftShift:    imgui.KeyLeftShift,
	input.KeyLeftControl:  imgui.KeyLeftCtrl,
	input.KeyLeftAlt:      imgui.KeyLeftAlt,
	input.KeyLeftSuper:    imgui.KeyLeftSuper,
	input.KeyRightShift:   imgui.KeyRightShift,
	input.KeyRightControl: imgui.KeyRightCtrl,
	input.KeyRightAlt:     imgui.KeyRightAlt,
	input.KeyRightSuper:   imgui.KeyRightSuper,
}

// imguiKey maps a platform key to the ImGui key. Letters, digits and
// function keys are contiguous in both enums.
func imguiKey(k input.Key) (imgui.Key, bool) {
	switch {
	case k >= input.KeyA && k <= input.KeyZ:
		return imgui.KeyA + imgui.Key(k-input.KeyA), true
	case k >= input.Key0 && k <= input.Key9:
		return imgui.Key0 + imgui.Key(k-input.Key0), true
	case k >= input.KeyF1 && k <= input.KeyF12:
		return imgui.KeyF1 + imgui.Key(k-input.KeyF1), true
	}
	ik, ok := namedKeys[k]
	return ik, ok
}

func cursorShape(c imgui.MouseCursor) input.Cursor {
	switch c {
	case imgui.MouseCursorNone:
		return input.CursorNone
	case imgui.MouseCursorTextInput:
		return input.CursorTextInput
	case imgui.MouseCursorResizeAll:
		return input.CursorResizeAll
	case imgui.MouseCursorResizeNS:
		return input.CursorResizeNS
	case imgui.MouseCursorResizeEW:
		return input.CursorResizeEW
	case imgui.MouseCursorResizeNESW:
		return input.CursorResizeNESW
	case imgui.MouseCursorResizeNWSE:
		return input.CursorResizeNWSE
	case imgui.MouseCursorHand:
		return input.CursorHand
	case imgui.MouseCursorNotAllowed:
		return input.CursorNotAllowed
	default:
		return input.CursorArrow
	}
}
