package glx

// FBConfig is an opaque platform framebuffer configuration handle.
type FBConfig uint32

// Context is an opaque rendering context handle. The zero value is the null context.
type Context uint32

// Drawable is an opaque platform drawable handle. The zero value is None.
type Drawable uint32

// NativeWindow is the windowing system's handle for an already created window.
type NativeWindow uint32

// VisualInfo describes the platform visual a framebuffer configuration resolves to.
type VisualInfo struct {
	ID    uint32
	Depth int
	Class int
}

// ErrorHandler receives asynchronous platform errors.
// Handlers are compared by identity when restored, so implementations should be pointer types.
type ErrorHandler interface {
	HandleError(err error)
}

// ErrorHandlerSlot is the platform's single error handler slot.
type ErrorHandlerSlot interface {
	// SetErrorHandler installs h and returns the handler that was installed before.
	//
	// Parameters:
	//   - h: the handler to install (nil restores platform default behavior)
	//
	// Returns:
	//   - ErrorHandler: the previously installed handler
	SetErrorHandler(h ErrorHandler) ErrorHandler
}

// Platform is the subset of the GLX platform layer used to negotiate a rendering surface.
// All calls block and are made from the thread that owns the window.
// Creation calls report failure by returning a null handle and/or by delivering an
// asynchronous error to the installed ErrorHandler no later than the next Sync.
type Platform interface {
	ErrorHandlerSlot

	// Screen returns the screen index negotiation runs against.
	Screen() int

	// QueryExtensionsString returns the space separated GLX capability string for the screen.
	//
	// Returns:
	//   - string: the capability string
	//   - error: error if the query could not be issued
	QueryExtensionsString() (string, error)

	// ChooseFBConfigs enumerates framebuffer configurations matching the attribute list.
	//
	// Parameters:
	//   - attribs: attribute/value pairs terminated by None
	//
	// Returns:
	//   - []FBConfig: matching configurations in platform order
	//   - error: error if enumeration failed
	ChooseFBConfigs(attribs []int) ([]FBConfig, error)

	// FBConfigAttrib reads one attribute of a configuration.
	FBConfigAttrib(cfg FBConfig, attrib int) (int, error)

	// VisualFromFBConfig resolves a configuration to a usable visual.
	// Returns false when the platform refuses to resolve the configuration.
	VisualFromFBConfig(cfg FBConfig) (VisualInfo, bool)

	// CreateWindow creates the GLX drawable wrapper for a native window.
	CreateWindow(cfg FBConfig, win NativeWindow) (Drawable, error)

	// DestroyWindow destroys a drawable created with CreateWindow.
	DestroyWindow(d Drawable)

	// HasCreateContextAttribs reports whether the modern context creation entry point
	// is resolvable at runtime.
	HasCreateContextAttribs() bool

	// CreateContextAttribs creates a context through the modern entry point.
	CreateContextAttribs(cfg FBConfig, share Context, direct bool, attribs []int) Context

	// CreateNewContext creates a context through the legacy, non-versioned entry point.
	CreateNewContext(cfg FBConfig, renderType int, share Context, direct bool) Context

	// Sync forces delivery of every buffered asynchronous error.
	Sync()

	// IsDirect reports whether the context is direct (hardware accelerated).
	IsDirect(ctx Context) bool

	// MakeContextCurrent binds ctx with the draw and read drawables. Passing zero values unbinds.
	MakeContextCurrent(draw, read Drawable, ctx Context) bool

	// SwapBuffers presents the back buffer of the drawable.
	SwapBuffers(d Drawable)

	// Render submits encoded rendering commands to the current context.
	Render(commands []byte)

	// DestroyContext destroys a context.
	DestroyContext(ctx Context)

	// Close releases the display connection.
	Close() error
}
