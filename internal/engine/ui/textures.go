package ui

import (
	"unsafe"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/picsort/internal/engine/renderer"
	"github.com/Faultbox/picsort/internal/logger"
	"github.com/Faultbox/picsort/pkg/pixels"
)

// textureSet tracks the textures ImGui asked the renderer for, keyed by
// their unique ID. Font atlases that were replaced stay here until ImGui
// asks for them to be destroyed.
type textureSet map[int32]*imgui.TextureData

// track adds the current font atlas texture.
func (s textureSet) track(io *imgui.IO) {
	tex := io.Fonts().TexData()
	if tex == nil {
		return
	}
	if _, ok := s[tex.UniqueID()]; !ok {
		s[tex.UniqueID()] = tex
	}
}

// serve honors pending create, update and destroy requests.
func (s textureSet) serve(up renderer.TextureUploader) {
	for id, tex := range s {
		status := tex.Status()
		switch status {
		case imgui.TextureStatusWantCreate, imgui.TextureStatusWantUpdates:
			op := renderer.TextureCreate
			if status == imgui.TextureStatusWantUpdates {
				op = renderer.TextureUpdate
			}
			texID, err := up.UpdateTexture(renderer.TextureRequest{
				Op:     op,
				ID:     uint32(tex.TexID()),
				Width:  int(tex.Width()),
				Height: int(tex.Height()),
				Pixels: texturePixels(tex),
			})
			if err != nil {
				logger.Error("GUI texture upload failed", zap.Stringer("op", op), zap.Error(err))
				continue
			}
			tex.SetTexID(imgui.TextureID(texID))
			tex.SetStatus(imgui.TextureStatusOK)

		case imgui.TextureStatusWantDestroy:
			if tex.UnusedFrames() == 0 {
				continue
			}
			if _, err := up.UpdateTexture(renderer.TextureRequest{
				Op: renderer.TextureDestroy,
				ID: uint32(tex.TexID()),
			}); err != nil {
				logger.Error("GUI texture release failed", zap.Error(err))
			}
			tex.SetTexID(0)
			tex.SetStatus(imgui.TextureStatusDestroyed)
			delete(s, id)

		case imgui.TextureStatusDestroyed:
			delete(s, id)
		}
	}
}

// forget marks every texture released without asking the renderer.
func (s textureSet) forget() {
	for id, tex := range s {
		if tex.Status() != imgui.TextureStatusDestroyed {
			tex.SetTexID(0)
			tex.SetStatus(imgui.TextureStatusDestroyed)
		}
		delete(s, id)
	}
}

// texturePixels copies the texture into RGBA8.
func texturePixels(tex *imgui.TextureData) []byte {
	n := int(tex.Width()) * int(tex.Height()) * int(tex.BytesPerPixel())
	data := copyBytes(unsafe.Pointer(tex.Pixels()), n)
	if tex.Format() == imgui.TextureFormatAlpha8 {
		return pixels.AlphaToRGBA(data)
	}
	return data
}
