package input

// Handler receives normalized events before the GUI does. Returning true
// consumes the event and keeps it away from the GUI.
type Handler interface {
	// OnKey is called for key presses, releases and repeats.
	// guiWantsKeyboard is true while a GUI widget has keyboard focus.
	OnKey(ev KeyEvent, guiWantsKeyboard bool) bool
	OnChar(r rune) bool
	OnMouse(ev MouseEvent) bool
	OnScroll(dx, dy float32) bool
}

// NopHandler consumes nothing. Embed it to implement only some callbacks.
type NopHandler struct{}

func (NopHandler) OnKey(KeyEvent, bool) bool      { return false }
func (NopHandler) OnChar(rune) bool               { return false }
func (NopHandler) OnMouse(MouseEvent) bool        { return false }
func (NopHandler) OnScroll(float32, float32) bool { return false }

// Router offers each event to the handler and forwards the rest to the mirror.
// An event reaches exactly one of them.
type Router struct {
	handler Handler
	mirror  *Mirror
}

// NewRouter creates a router feeding mirror. A nil handler consumes nothing.
func NewRouter(mirror *Mirror) *Router {
	return &Router{handler: NopHandler{}, mirror: mirror}
}

// SetHandler replaces the application handler.
func (r *Router) SetHandler(h Handler) {
	if h == nil {
		h = NopHandler{}
	}
	r.handler = h
}

// Mirror returns the GUI input model fed by this router.
func (r *Router) Mirror() *Mirror {
	return r.mirror
}

// Key routes a key event.
func (r *Router) Key(ev KeyEvent) {
	if r.handler.OnKey(ev, r.mirror.WantKeyboard()) {
		return
	}
	r.mirror.Key(ev)
}

// Char routes a text input character.
func (r *Router) Char(c rune) {
	if r.handler.OnChar(c) {
		return
	}
	r.mirror.Char(c)
}

// Mouse routes a mouse button event.
func (r *Router) Mouse(ev MouseEvent) {
	if r.handler.OnMouse(ev) {
		return
	}
	r.mirror.Mouse(ev)
}

// Scroll routes a wheel event.
func (r *Router) Scroll(dx, dy float32) {
	if r.handler.OnScroll(dx, dy) {
		return
	}
	r.mirror.Scroll(dx, dy)
}
