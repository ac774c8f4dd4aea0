// Package ui adapts Dear ImGui (cimgui-go) to the platform input model and
// the OpenGL draw backend.
package ui

import (
	"math"
	"os"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/input"
	"github.com/Faultbox/picsort/internal/engine/renderer"
	"github.com/Faultbox/picsort/internal/logger"
)

// Config holds GUI settings.
type Config struct {
	// FontPath is a TTF file loaded instead of the built-in font when it exists.
	FontPath string
	FontSize float32
	// FontScale multiplies every font size. Framebuffer density is handled
	// by ImGui and must not be folded in here.
	FontScale float32
}

// GUI owns one ImGui context and the textures it asked the renderer for.
type GUI struct {
	ctx      *imgui.Context
	textures textureSet
}

// New creates the ImGui context. Draw batches are owned by the ImGui
// window that produced them.
func New(cfg Config) *GUI {
	g := &GUI{textures: make(textureSet)}
	g.ctx = imgui.CreateContext()

	io := imgui.CurrentIO()
	io.SetIniFilename("")
	io.SetBackendFlags(io.BackendFlags() |
		imgui.BackendFlagsHasMouseCursors |
		imgui.BackendFlagsRendererHasVtxOffset |
		imgui.BackendFlagsRendererHasTextures)
	imgui.StyleColorsDark()
	if err := checkLayout(); err != nil {
		logger.Error("GUI geometry will render incorrectly", zap.Error(err))
	}

	loadFont(io, cfg)
	return g
}

func loadFont(io *imgui.IO, cfg Config) {
	style := imgui.CurrentStyle()
	if cfg.FontScale > 0 {
		style.SetFontScaleMain(cfg.FontScale)
	}

	fonts := io.Fonts()
	if cfg.FontPath == "" {
		fonts.AddFontDefault()
		return
	}
	if _, err := os.Stat(cfg.FontPath); err != nil {
		logger.Warn("font not found, using built-in font", zap.String("path", cfg.FontPath), zap.Error(err))
		fonts.AddFontDefault()
		return
	}

	size := cfg.FontSize
	if size <= 0 {
		size = 13
	}
	fontCfg := imgui.NewFontConfig()
	defer fontCfg.Destroy()

	if fonts.AddFontFromFileTTFV(cfg.FontPath, size, fontCfg, nil) == nil {
		logger.Warn("font rejected, using built-in font", zap.String("path", cfg.FontPath))
		fonts.AddFontDefault()
		return
	}
	style.SetFontSizeBase(size)
	logger.Info("loaded GUI font", zap.String("path", cfg.FontPath), zap.Float32("size", size))
}

// NewFrame feeds one frame of input and starts the GUI frame.
func (g *GUI) NewFrame(in input.GUIInput) {
	io := imgui.CurrentIO()

	io.SetDisplaySize(imgui.Vec2{X: in.DisplayWidth, Y: in.DisplayHeight})
	scale := in.FramebufferScale
	if scale <= 0 {
		scale = 1
	}
	io.SetDisplayFramebufferScale(imgui.Vec2{X: scale, Y: scale})
	if in.DeltaTime > 0 {
		io.SetDeltaTime(in.DeltaTime)
	}

	if isNaN(in.MouseX) || isNaN(in.MouseY) {
		io.AddMousePosEvent(-math.MaxFloat32, -math.MaxFloat32)
	} else {
		io.AddMousePosEvent(in.MouseX, in.MouseY)
	}

	f := in.Frame
	for _, ev := range f.Keys {
		if ev.Action == input.Repeat {
			continue
		}
		if k, ok := imguiKey(ev.Key); ok {
			io.AddKeyEvent(k, ev.Action == input.Press)
		}
	}
	io.AddKeyEvent(imgui.ModCtrl, f.Mods.Has(input.ModCtrl))
	io.AddKeyEvent(imgui.ModShift, f.Mods.Has(input.ModShift))
	io.AddKeyEvent(imgui.ModAlt, f.Mods.Has(input.ModAlt))
	io.AddKeyEvent(imgui.ModSuper, f.Mods.Has(input.ModSuper))

	for _, r := range f.Chars {
		io.AddInputCharacter(uint32(r))
	}
	for b, down := range f.Buttons {
		io.AddMouseButtonEvent(int32(b), down)
	}
	if f.ScrollX != 0 || f.ScrollY != 0 {
		io.AddMouseWheelEvent(f.ScrollX, f.ScrollY)
	}

	imgui.NewFrame()
}

// Render finalizes the frame, hands pending texture requests to up and
// returns the frame's draw batches. Textures are served first so every
// draw command refers to an uploaded texture.
func (g *GUI) Render(up renderer.TextureUploader) (renderer.DisplayInfo, []renderer.DrawBatch) {
	imgui.Render()
	g.textures.track(imgui.CurrentIO())
	g.textures.serve(up)
	return convertDrawData(imgui.CurrentDrawData())
}

// Cursor returns the cursor shape the GUI wants and whether the
// application may change the OS cursor.
func (g *GUI) Cursor() (input.Cursor, bool) {
	io := imgui.CurrentIO()
	allow := io.ConfigFlags()&imgui.ConfigFlagsNoMouseCursorChange == 0
	return cursorShape(imgui.CurrentMouseCursor()), allow
}

// WantCaptureMouse reports whether the pointer is over a GUI window.
func (g *GUI) WantCaptureMouse() bool {
	return imgui.CurrentIO().WantCaptureMouse()
}

// WantCaptureKeyboard reports whether a GUI widget has keyboard focus.
func (g *GUI) WantCaptureKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// Destroy releases the ImGui context. The renderer frees the GPU side of
// the textures itself.
func (g *GUI) Destroy() {
	if g.ctx != nil {
		g.textures.forget()
		imgui.DestroyContext()
		g.ctx = nil
	}
}

func isNaN(f float32) bool {
	return f != f
}
