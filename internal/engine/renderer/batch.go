package renderer

import (
	"github.com/Faultbox/picsort/pkg/math"
)

// Vertex layout of GUI draw data: position (2 x float32), texture
// coordinates (2 x float32) and color (4 x uint8).
const (
	VertexSize  = 20
	VertexPos   = 0
	VertexUV    = 8
	VertexColor = 16
)

// CommandKind selects what a DrawCommand does.
type CommandKind int

const (
	// CommandDraw draws ElemCount indices clipped to ClipRect.
	CommandDraw CommandKind = iota
	// CommandCallback runs Callback instead of drawing.
	CommandCallback
	// CommandResetState re-applies the renderer's GL state.
	CommandResetState
)

// Callback runs user drawing in the middle of a batch.
type Callback func(batch *DrawBatch, cmd *DrawCommand)

// DrawCommand is one draw call within a batch.
type DrawCommand struct {
	Kind CommandKind
	// ClipRect is (x1, y1, x2, y2) in display coordinates.
	ClipRect  [4]float32
	TextureID uint32
	ElemCount int
	IdxOffset int // in indices
	VtxOffset int // in vertices
	Callback  Callback
}

// DrawBatch is the geometry one GUI window produced for a frame.
type DrawBatch struct {
	Owner     string
	Vertices  []byte
	Indices   []byte
	IndexSize int // bytes per index, 2 or 4
	Commands  []DrawCommand
}

// TextureOp is the action a GUI texture request asks for.
type TextureOp int

const (
	TextureCreate TextureOp = iota
	TextureUpdate
	TextureDestroy
)

func (op TextureOp) String() string {
	switch op {
	case TextureCreate:
		return "create"
	case TextureUpdate:
		return "update"
	case TextureDestroy:
		return "destroy"
	}
	return "unknown"
}

// TextureRequest asks for a GUI texture to be created, refreshed or
// released. Pixels are tightly-packed RGBA8.
type TextureRequest struct {
	Op     TextureOp
	ID     uint32 // texture to update or destroy
	Width  int
	Height int
	Pixels []byte
}

// TextureUploader serves GUI texture requests. It returns the ID the GUI
// refers to the texture by from now on, zero after TextureDestroy.
type TextureUploader interface {
	UpdateTexture(req TextureRequest) (uint32, error)
}

// Filter selects the batches to render.
type Filter func(batch *DrawBatch) bool

// AcceptAll renders every batch.
func AcceptAll(*DrawBatch) bool { return true }

// OwnedBy renders only the batches of the named GUI windows.
func OwnedBy(owners ...string) Filter {
	set := make(map[string]bool, len(owners))
	for _, o := range owners {
		set[o] = true
	}
	return func(b *DrawBatch) bool { return set[b.Owner] }
}

// DisplayInfo describes the GUI display area for one frame.
type DisplayInfo struct {
	Pos              math.Vec2 // top-left in display coordinates
	Size             math.Vec2
	FramebufferScale math.Vec2
}

// FramebufferSize returns the target size in pixels.
func (d DisplayInfo) FramebufferSize() (int, int) {
	fb := d.Size.Mul(d.FramebufferScale)
	return int(fb.X), int(fb.Y)
}

// Projection maps display coordinates to clip space with y pointing down.
func (d DisplayInfo) Projection() math.Mat4 {
	l := d.Pos.X
	r := d.Pos.X + d.Size.X
	t := d.Pos.Y
	b := d.Pos.Y + d.Size.Y
	return math.Ortho(l, r, b, t, -1, 1)
}

// Scissor is a GL scissor box in framebuffer pixels, origin bottom-left.
type Scissor struct {
	X, Y, W, H int32
}

// ProjectClip converts a clip rectangle to a scissor box. ok is false when
// the rectangle is empty or lies entirely outside the framebuffer.
func ProjectClip(clip [4]float32, d DisplayInfo) (s Scissor, ok bool) {
	fbW, fbH := d.FramebufferSize()

	lo := math.Vec2{X: clip[0], Y: clip[1]}.Sub(d.Pos).Mul(d.FramebufferScale)
	hi := math.Vec2{X: clip[2], Y: clip[3]}.Sub(d.Pos).Mul(d.FramebufferScale)

	if lo.X >= float32(fbW) || lo.Y >= float32(fbH) || hi.X < 0 || hi.Y < 0 {
		return Scissor{}, false
	}
	if hi.X <= lo.X || hi.Y <= lo.Y {
		return Scissor{}, false
	}

	return Scissor{
		X: int32(lo.X),
		Y: int32(float32(fbH) - hi.Y),
		W: int32(hi.X - lo.X),
		H: int32(hi.Y - lo.Y),
	}, true
}

// batchVisitor receives the GL work of a frame in submission order.
type batchVisitor interface {
	upload(batch *DrawBatch)
	resetState()
	callback(batch *DrawBatch, cmd *DrawCommand)
	draw(batch *DrawBatch, cmd *DrawCommand, scissor Scissor)
}

// walkBatches feeds the accepted batches to v. Commands whose clip
// rectangle is empty or off-screen are skipped, as are empty batches.
func walkBatches(d DisplayInfo, batches []DrawBatch, filter Filter, v batchVisitor) {
	if filter == nil {
		filter = AcceptAll
	}
	for i := range batches {
		batch := &batches[i]
		if len(batch.Commands) == 0 || !filter(batch) {
			continue
		}
		v.upload(batch)

		for j := range batch.Commands {
			cmd := &batch.Commands[j]
			switch cmd.Kind {
			case CommandResetState:
				v.resetState()
			case CommandCallback:
				if cmd.Callback != nil {
					v.callback(batch, cmd)
				}
			default:
				if cmd.ElemCount == 0 {
					continue
				}
				if s, ok := ProjectClip(cmd.ClipRect, d); ok {
					v.draw(batch, cmd, s)
				}
			}
		}
	}
}
