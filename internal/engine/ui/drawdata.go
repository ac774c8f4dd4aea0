package ui

import (
	"fmt"
	"unsafe"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/picsort/internal/engine/renderer"
	"github.com/Faultbox/picsort/pkg/math"
)

// checkLayout verifies that ImGui's vertex format matches the renderer's.
func checkLayout() error {
	size, pos, uv, col := imgui.VertexBufferLayout()
	if size != renderer.VertexSize || pos != renderer.VertexPos || uv != renderer.VertexUV || col != renderer.VertexColor {
		return fmt.Errorf("unexpected ImGui vertex layout: size=%d pos=%d uv=%d col=%d", size, pos, uv, col)
	}
	return nil
}

// convertDrawData copies the draw lists out of ImGui memory. Each batch is
// owned by the window that drew it.
func convertDrawData(dd *imgui.DrawData) (renderer.DisplayInfo, []renderer.DrawBatch) {
	if dd == nil {
		return renderer.DisplayInfo{}, nil
	}
	pos, size, scale := dd.DisplayPos(), dd.DisplaySize(), dd.FramebufferScale()
	display := renderer.DisplayInfo{
		Pos:              math.Vec2{X: pos.X, Y: pos.Y},
		Size:             math.Vec2{X: size.X, Y: size.Y},
		FramebufferScale: math.Vec2{X: scale.X, Y: scale.Y},
	}

	indexSize := imgui.IndexBufferLayout()
	lists := dd.CommandLists()
	batches := make([]renderer.DrawBatch, 0, len(lists))

	for _, list := range lists {
		vtx, vtxSize := list.GetVertexBuffer()
		idx, idxSize := list.GetIndexBuffer()

		batch := renderer.DrawBatch{
			Owner:     list.OwnerName(),
			Vertices:  copyBytes(vtx, vtxSize),
			Indices:   copyBytes(idx, idxSize),
			IndexSize: indexSize,
		}
		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				batch.Commands = append(batch.Commands, renderer.DrawCommand{
					Kind: renderer.CommandCallback,
					Callback: func(*renderer.DrawBatch, *renderer.DrawCommand) {
						cmd.CallUserCallback(list)
					},
				})
				continue
			}
			clip := cmd.ClipRect()
			batch.Commands = append(batch.Commands, renderer.DrawCommand{
				Kind:      renderer.CommandDraw,
				ClipRect:  [4]float32{clip.X, clip.Y, clip.Z, clip.W},
				TextureID: uint32(cmd.TexID()),
				ElemCount: int(cmd.ElemCount()),
				IdxOffset: int(cmd.IdxOffset()),
				VtxOffset: int(cmd.VtxOffset()),
			})
		}
		batches = append(batches, batch)
	}
	return display, batches
}

func copyBytes(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(p), n))
	return out
}
