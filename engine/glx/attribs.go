package glx

// GLX attribute names and values used during negotiation.
const (
	None = 0

	AttribDoubleBuffer  = 5
	AttribRedSize       = 8
	AttribGreenSize     = 9
	AttribBlueSize      = 10
	AttribAlphaSize     = 11
	AttribDepthSize     = 12
	AttribStencilSize   = 13
	AttribXVisualType   = 0x22
	AttribVisualID      = 0x800B
	AttribDrawableType  = 0x8010
	AttribRenderType    = 0x8011
	AttribXRenderable   = 0x8012
	AttribFBConfigID    = 0x8013
	AttribSampleBuffers = 100000
	AttribSamples       = 100001

	TrueColor = 0x8002
	WindowBit = 0x1
	RGBABit   = 0x1
	RGBAType  = 0x8014
	DontCare  = -1
	BoolTrue  = 1
)

// GLX_ARB_create_context and GLX_ARB_create_context_profile attributes.
const (
	ContextMajorVersion       = 0x2091
	ContextMinorVersion       = 0x2092
	ContextFlags              = 0x2094
	ContextProfileMask        = 0x9126
	ContextDebugBit           = 0x1
	ContextForwardCompatBit   = 0x2
	ContextCoreProfileBit     = 0x1
	ContextCompatProfileBit   = 0x2
	ExtCreateContext          = "GLX_ARB_create_context"
	ExtCreateContextProfile   = "GLX_ARB_create_context_profile"
	defaultAttribListCapacity = 16
)

// FramebufferRequest holds the desired framebuffer attributes used to enumerate candidates.
type FramebufferRequest struct {
	RedBits      int
	GreenBits    int
	BlueBits     int
	AlphaBits    int
	DepthBits    int
	StencilBits  int
	DoubleBuffer bool
}

// DefaultFramebufferRequest returns a 24 bit depth, 8 bit stencil, double buffered request.
func DefaultFramebufferRequest() FramebufferRequest {
	return FramebufferRequest{
		DepthBits:    24,
		StencilBits:  8,
		DoubleBuffer: true,
	}
}

// AttribList builds the None terminated attribute/value list for config enumeration.
// Color sizes are only requested when non-zero.
//
// Returns:
//   - []int: attribute/value pairs followed by None
func (r FramebufferRequest) AttribList() []int {
	attribs := make([]int, 0, defaultAttribListCapacity)
	attribs = append(attribs,
		AttribXRenderable, BoolTrue,
		AttribDrawableType, WindowBit,
		AttribRenderType, RGBABit,
		AttribXVisualType, TrueColor,
	)
	for _, kv := range [][2]int{
		{AttribRedSize, r.RedBits},
		{AttribGreenSize, r.GreenBits},
		{AttribBlueSize, r.BlueBits},
		{AttribAlphaSize, r.AlphaBits},
		{AttribDepthSize, r.DepthBits},
		{AttribStencilSize, r.StencilBits},
	} {
		if kv[1] > 0 {
			attribs = append(attribs, kv[0], kv[1])
		}
	}
	if r.DoubleBuffer {
		attribs = append(attribs, AttribDoubleBuffer, BoolTrue)
	}
	return append(attribs, None)
}
