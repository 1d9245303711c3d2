package phase

// ClearPhase sets the viewport to the whole drawable and clears it to a solid color.
type ClearPhase struct {
	Color [4]float32
	Mask  uint32
}

var _ DrawPhase = &ClearPhase{}

// NewClearPhase creates a phase clearing color and depth to the given RGBA color.
func NewClearPhase(r, g, b, a float32) *ClearPhase {
	return &ClearPhase{
		Color: [4]float32{r, g, b, a},
		Mask:  ColorBufferBit | DepthBufferBit,
	}
}

func (c *ClearPhase) Draw(frame *Frame) {
	if frame.Commands == nil {
		return
	}
	frame.Commands.Viewport(0, 0, int32(frame.Width), int32(frame.Height))
	frame.Commands.ClearColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
	frame.Commands.Clear(c.Mask)
}
