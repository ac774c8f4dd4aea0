package platform

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/picsort/internal/engine/input"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		sym  sdl.Keycode
		want input.Key
	}{
		{sdl.K_a, input.KeyA},
		{sdl.K_m, input.KeyM},
		{sdl.K_z, input.KeyZ},
		{sdl.K_0, input.Key0},
		{sdl.K_9, input.Key9},
		{sdl.K_ESCAPE, input.KeyEscape},
		{sdl.K_SPACE, input.KeySpace},
		{sdl.K_UP, input.KeyUp},
		{sdl.K_DOWN, input.KeyDown},
		{sdl.K_F12, input.KeyF12},
		{sdl.K_KP_ENTER, input.KeyKeypadEnter},
		{sdl.K_LSHIFT, input.KeyLeftShift},
		{sdl.K_CAPSLOCK, input.KeyUnknown},
	}
	for _, tt := range tests {
		if got := mapKey(tt.sym); got != tt.want {
			t.Errorf("mapKey(%d) = %v, want %v", tt.sym, got, tt.want)
		}
	}
}

func TestMapMods(t *testing.T) {
	got := mapMods(uint32(sdl.KMOD_LSHIFT) | uint32(sdl.KMOD_RCTRL))
	if !got.Has(input.ModShift | input.ModCtrl) {
		t.Errorf("mapMods lost Shift or Ctrl: %b", got)
	}
	if got.Has(input.ModAlt) || got.Has(input.ModSuper) {
		t.Errorf("mapMods added Alt or Super: %b", got)
	}
	if mapMods(0) != 0 {
		t.Error("mapMods(0) should be empty")
	}
}

func TestButtonMask(t *testing.T) {
	// SDL state bit n-1 is button n.
	state := uint32(1<<(sdl.BUTTON_LEFT-1)) | uint32(1<<(sdl.BUTTON_MIDDLE-1))
	mask := buttonMask(state)

	if mask&(1<<uint(input.MouseLeft)) == 0 {
		t.Error("left button missing from mask")
	}
	if mask&(1<<uint(input.MouseMiddle)) == 0 {
		t.Error("middle button missing from mask")
	}
	if mask&(1<<uint(input.MouseRight)) != 0 {
		t.Error("right button wrongly set")
	}
}
