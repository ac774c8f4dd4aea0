package ui

import (
	"testing"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/engine/renderer"
)

type fakeUploader struct {
	requests []renderer.TextureRequest
	next     uint32
}

func (u *fakeUploader) UpdateTexture(req renderer.TextureRequest) (uint32, error) {
	u.requests = append(u.requests, req)
	if req.Op == renderer.TextureDestroy {
		return 0, nil
	}
	if req.Op == renderer.TextureUpdate {
		return req.ID, nil
	}
	u.next++
	return u.next, nil
}

func (u *fakeUploader) count(op renderer.TextureOp) int {
	n := 0
	for _, req := range u.requests {
		if req.Op == op {
			n++
		}
	}
	return n
}

func newTestGUI(t *testing.T) *GUI {
	t.Helper()
	g := New(Config{})
	t.Cleanup(g.Destroy)
	return g
}

func startFrame(g *GUI) {
	g.NewFrame(input.GUIInput{
		DisplayWidth:     800,
		DisplayHeight:    600,
		FramebufferScale: 1,
		DeltaTime:        1.0 / 60,
		MouseX:           -1,
		MouseY:           -1,
	})
}

func drawWindows(names ...string) {
	for i, name := range names {
		imgui.SetNextWindowPos(imgui.NewVec2(float32(10+200*i), 10))
		imgui.BeginV(name, nil, 0)
		imgui.Text(name)
		imgui.End()
	}
}

func TestBatchesOwnedByWindow(t *testing.T) {
	g := newTestGUI(t)
	up := &fakeUploader{}

	startFrame(g)
	drawWindows("Directories", "File")
	_, batches := g.Render(up)

	owners := make(map[string]int)
	for _, b := range batches {
		owners[b.Owner]++
	}
	for _, name := range []string{"Directories", "File"} {
		if owners[name] != 1 {
			t.Errorf("batches owned by %q = %d, want 1 (owners %v)", name, owners[name], owners)
		}
	}

	var selected []string
	for i := range batches {
		if renderer.OwnedBy("File")(&batches[i]) {
			selected = append(selected, batches[i].Owner)
		}
	}
	if len(selected) != 1 {
		t.Errorf("OwnedBy(File) selected %v", selected)
	}
}

func TestFontTextureServedBeforeDraw(t *testing.T) {
	g := newTestGUI(t)
	up := &fakeUploader{}

	startFrame(g)
	drawWindows("File")
	_, batches := g.Render(up)

	if up.count(renderer.TextureCreate) != 1 {
		t.Fatalf("create requests = %d, want 1", up.count(renderer.TextureCreate))
	}
	req := up.requests[0]
	if req.Width <= 0 || req.Height <= 0 {
		t.Fatalf("font texture is %dx%d", req.Width, req.Height)
	}
	if len(req.Pixels) != req.Width*req.Height*4 {
		t.Errorf("pixels = %d bytes, want %d RGBA bytes", len(req.Pixels), req.Width*req.Height*4)
	}

	draws := 0
	for _, b := range batches {
		for _, cmd := range b.Commands {
			if cmd.Kind != renderer.CommandDraw {
				continue
			}
			draws++
			if cmd.TextureID != up.next {
				t.Errorf("draw command uses texture %d, want %d", cmd.TextureID, up.next)
			}
		}
	}
	if draws == 0 {
		t.Fatal("no draw commands")
	}

	startFrame(g)
	drawWindows("File")
	g.Render(up)
	if up.count(renderer.TextureCreate) != 1 {
		t.Errorf("font texture created again on the second frame")
	}
}

func TestDestroyReleasesTracking(t *testing.T) {
	g := New(Config{})
	startFrame(g)
	g.Render(&fakeUploader{})
	if len(g.textures) == 0 {
		t.Fatal("no texture tracked after first frame")
	}

	g.Destroy()
	if len(g.textures) != 0 {
		t.Errorf("%d textures still tracked after Destroy", len(g.textures))
	}
	g.Destroy()
}

func TestMissingFontFallsBack(t *testing.T) {
	g := New(Config{FontPath: "/nonexistent/font.ttf", FontSize: 18, FontScale: 1.5})
	defer g.Destroy()

	if n := imgui.CurrentIO().Fonts().Fonts().Size; n == 0 {
		t.Error("no font loaded")
	}
}
