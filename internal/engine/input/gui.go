package input

// GUIInput is everything the GUI needs to start a frame.
type GUIInput struct {
	DisplayWidth     float32
	DisplayHeight    float32
	FramebufferScale float32
	DeltaTime        float32
	// MouseX and MouseY are NaN when the pointer is unavailable.
	MouseX, MouseY float32
	Frame          Frame
}
