package frame

import (
	"math"
	"testing"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/engine/renderer"
)

type fakeWindow struct {
	mirror  *input.Mirror
	closed  bool
	calls   []string
	focused bool
	swaps   int
	cursor  input.Cursor
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{mirror: input.NewMirror(), focused: true}
}

func (w *fakeWindow) Poll()          { w.calls = append(w.calls, "poll") }
func (w *fakeWindow) Wait()          { w.calls = append(w.calls, "wait") }
func (w *fakeWindow) IsClosed() bool { return w.closed }
func (w *fakeWindow) Close()         { w.closed = true }

func (w *fakeWindow) Size() (int, int)            { return 640, 480 }
func (w *fakeWindow) FramebufferSize() (int, int) { return 1280, 960 }
func (w *fakeWindow) Scale() float32              { return 2 }
func (w *fakeWindow) Tick() float32               { return 0.016 }
func (w *fakeWindow) Mods() input.Mod             { return input.ModShift }
func (w *fakeWindow) Mirror() *input.Mirror       { return w.mirror }

func (w *fakeWindow) Pointer() (float32, float32, uint32) {
	if !w.focused {
		nan := float32(math.NaN())
		return nan, nan, 0
	}
	return 10, 20, 1 << uint(input.MouseLeft)
}

func (w *fakeWindow) SyncCursor(shape input.Cursor, allow bool) {
	if allow {
		w.cursor = shape
	}
}

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

type fakeGUI struct {
	inputs    []input.GUIInput
	renders   int
	wantMouse bool
	// textureID is the font texture the renderer handed back.
	textureID uint32
}

func (g *fakeGUI) NewFrame(in input.GUIInput) { g.inputs = append(g.inputs, in) }

func (g *fakeGUI) Render(up renderer.TextureUploader) (renderer.DisplayInfo, []renderer.DrawBatch) {
	g.renders++
	if g.textureID == 0 {
		id, err := up.UpdateTexture(renderer.TextureRequest{
			Op:     renderer.TextureCreate,
			Width:  1,
			Height: 1,
			Pixels: []byte{255, 255, 255, 255},
		})
		if err == nil {
			g.textureID = id
		}
	}
	return renderer.DisplayInfo{}, []renderer.DrawBatch{
		{Owner: "a", Commands: []renderer.DrawCommand{{TextureID: g.textureID}}},
		{Owner: "b"},
	}
}

func (g *fakeGUI) Cursor() (input.Cursor, bool) { return input.CursorHand, true }
func (g *fakeGUI) WantCaptureMouse() bool       { return g.wantMouse }
func (g *fakeGUI) WantCaptureKeyboard() bool    { return false }

type fakeRenderer struct {
	accepted [][]string
	requests []renderer.TextureRequest
	// textures seen by Render that were never created.
	unknown []uint32
}

func (r *fakeRenderer) UpdateTexture(req renderer.TextureRequest) (uint32, error) {
	r.requests = append(r.requests, req)
	if req.Op == renderer.TextureDestroy {
		return 0, nil
	}
	return uint32(len(r.requests)), nil
}

func (r *fakeRenderer) created(id uint32) bool {
	for i, req := range r.requests {
		if req.Op == renderer.TextureCreate && uint32(i+1) == id {
			return true
		}
	}
	return false
}

func (r *fakeRenderer) Render(_ renderer.DisplayInfo, batches []renderer.DrawBatch, filter renderer.Filter) {
	var owners []string
	for i := range batches {
		if filter(&batches[i]) {
			owners = append(owners, batches[i].Owner)
		}
		for _, cmd := range batches[i].Commands {
			if !r.created(cmd.TextureID) {
				r.unknown = append(r.unknown, cmd.TextureID)
			}
		}
	}
	r.accepted = append(r.accepted, owners)
}

type fakeApp struct {
	stopAfter int
	draws     int
	states    []State
	draw      func(l *Loop)
}

func (a *fakeApp) ShouldStop() bool {
	return a.stopAfter > 0 && a.draws >= a.stopAfter
}

func (a *fakeApp) Draw(l *Loop, s State) {
	a.draws++
	a.states = append(a.states, s)
	if a.draw != nil {
		a.draw(l)
	}
}

func newTestLoop(cfg Config) (*Loop, *fakeWindow, *fakeGUI, *fakeRenderer) {
	w := newFakeWindow()
	g := &fakeGUI{}
	r := &fakeRenderer{}
	return New(w, g, r, cfg), w, g, r
}

func TestPollWaitCadence(t *testing.T) {
	tests := []struct {
		name         string
		pollsPerWait int
		want         []string
	}{
		{"default", DefaultPollsPerWait, []string{"poll", "poll", "poll", "poll", "poll", "wait", "poll", "poll", "poll", "poll", "poll", "wait"}},
		{"always wait", 0, []string{"wait", "wait", "wait"}},
		{"never wait", -1, []string{"poll", "poll", "poll"}},
		{"alternate", 1, []string{"poll", "wait", "poll", "wait"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, w, _, _ := newTestLoop(Config{PollsPerWait: tt.pollsPerWait})
			app := &fakeApp{}
			for range tt.want {
				l.Step(app)
			}
			if len(w.calls) != len(tt.want) {
				t.Fatalf("calls = %v, want %v", w.calls, tt.want)
			}
			for i := range tt.want {
				if w.calls[i] != tt.want[i] {
					t.Fatalf("calls = %v, want %v", w.calls, tt.want)
				}
			}
		})
	}
}

func TestStopPredicateCloses(t *testing.T) {
	l, w, _, _ := newTestLoop(Config{PollsPerWait: -1})
	app := &fakeApp{stopAfter: 3}
	l.Run(app)

	if app.draws != 3 {
		t.Errorf("draws = %d, want 3", app.draws)
	}
	if w.swaps != 3 {
		t.Errorf("swaps = %d, want 3", w.swaps)
	}
	if l.Status() != Closed {
		t.Errorf("Status() = %v, want closed", l.Status())
	}
	if l.Step(app) {
		t.Error("Step() after close returned true")
	}
	if app.draws != 3 {
		t.Error("closed loop drew another frame")
	}
}

func TestWindowCloseStopsLoop(t *testing.T) {
	l, _, _, _ := newTestLoop(Config{PollsPerWait: -1})
	app := &fakeApp{}
	app.draw = func(l *Loop) {
		if app.draws == 2 {
			l.Close()
		}
	}
	l.Run(app)
	if app.draws != 2 {
		t.Errorf("draws = %d, want 2", app.draws)
	}
	if l.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", l.Frames())
	}
}

func TestClosedBeforeFirstFrame(t *testing.T) {
	l, w, _, _ := newTestLoop(Config{})
	w.closed = true
	app := &fakeApp{}
	if l.Step(app) {
		t.Error("Step() = true for closed window")
	}
	if app.draws != 0 || w.swaps != 0 {
		t.Errorf("draws = %d, swaps = %d, want none", app.draws, w.swaps)
	}
}

func TestGUIFinalizedOncePerFrame(t *testing.T) {
	tests := []struct {
		name string
		draw func(l *Loop)
		want []string
	}{
		{"app does not render", nil, []string{"a", "b"}},
		{"app renders filtered", func(l *Loop) { l.DrawGUI(renderer.OwnedBy("b")) }, []string{"b"}},
		{"app renders twice", func(l *Loop) {
			l.DrawGUI(renderer.OwnedBy("a"))
			l.DrawGUI(renderer.AcceptAll)
		}, []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _, g, r := newTestLoop(Config{PollsPerWait: -1})
			app := &fakeApp{draw: tt.draw}
			l.Step(app)
			l.Step(app)

			if g.renders != 2 {
				t.Errorf("GUI finalized %d times over 2 frames, want 2", g.renders)
			}
			if len(r.accepted) != 2 {
				t.Fatalf("renderer called %d times, want 2", len(r.accepted))
			}
			got := r.accepted[0]
			if len(got) != len(tt.want) {
				t.Fatalf("accepted = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("accepted = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestGUITexturesServedBeforeDraw(t *testing.T) {
	l, _, g, r := newTestLoop(Config{PollsPerWait: -1})
	app := &fakeApp{}
	l.Step(app)
	l.Step(app)

	if len(r.requests) != 1 || r.requests[0].Op != renderer.TextureCreate {
		t.Fatalf("texture requests = %+v, want one create", r.requests)
	}
	if g.textureID == 0 {
		t.Fatal("GUI never received a texture ID")
	}
	if len(r.unknown) != 0 {
		t.Errorf("draw commands referenced textures %v before upload", r.unknown)
	}
}

func TestStateSnapshot(t *testing.T) {
	l, w, g, _ := newTestLoop(Config{PollsPerWait: -1})
	g.wantMouse = true
	w.mirror.Scroll(0, 2)
	w.mirror.Scroll(0, 1)

	app := &fakeApp{}
	l.Step(app)
	s := app.states[0]

	if s.WindowWidth != 640 || s.WindowHeight != 480 {
		t.Errorf("window size = %dx%d", s.WindowWidth, s.WindowHeight)
	}
	if s.FramebufferWidth != 1280 || s.FramebufferHeight != 960 {
		t.Errorf("framebuffer size = %dx%d", s.FramebufferWidth, s.FramebufferHeight)
	}
	if s.ScrollY != 3 {
		t.Errorf("ScrollY = %v, want 3", s.ScrollY)
	}
	if !s.MouseOverGUI {
		t.Error("MouseOverGUI = false")
	}
	if !s.ButtonDown(input.MouseLeft) || s.ButtonDown(input.MouseRight) {
		t.Errorf("Buttons = %b", s.Buttons)
	}
	if !s.Mods.Has(input.ModShift) {
		t.Error("shift not reported")
	}
	if s.Frame != 1 {
		t.Errorf("Frame = %d, want 1", s.Frame)
	}
	if !s.HasPointer() || s.PointerX != 10 || s.PointerY != 20 {
		t.Errorf("pointer = (%v, %v)", s.PointerX, s.PointerY)
	}
	if w.cursor != input.CursorHand {
		t.Errorf("cursor = %v, want hand", w.cursor)
	}
	if !w.mirror.WantMouse() {
		t.Error("mirror capture not updated")
	}

	in := g.inputs[0]
	if in.DisplayWidth != 640 || in.FramebufferScale != 2 || in.Frame.ScrollY != 3 {
		t.Errorf("gui input = %+v", in)
	}

	l.Step(app)
	if app.states[1].ScrollY != 0 {
		t.Errorf("scroll not reset: %v", app.states[1].ScrollY)
	}
}

func TestStateUnfocusedPointer(t *testing.T) {
	l, w, _, _ := newTestLoop(Config{PollsPerWait: -1})
	w.focused = false
	app := &fakeApp{}
	l.Step(app)

	if app.states[0].HasPointer() {
		t.Error("HasPointer() = true while unfocused")
	}
}

func TestStatusString(t *testing.T) {
	if Running.String() != "running" || Closed.String() != "closed" {
		t.Errorf("String() = %q, %q", Running, Closed)
	}
}
