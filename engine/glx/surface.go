package glx

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
)

// Surface owns a negotiated rendering context and the GLX drawable of a native window.
// It is bound to the thread that created it.
type Surface interface {
	// Result returns the negotiation result.
	Result() Result

	// Selection returns the framebuffer configuration selection.
	Selection() Selection

	// Context returns the owned context handle, zero after Teardown.
	Context() Context

	// Drawable returns the owned drawable handle, zero after Teardown.
	Drawable() Drawable

	// MakeCurrent rebinds the context and drawable as draw and read targets.
	//
	// Returns:
	//   - error: ErrBindFailed if the platform rejects the bind, ErrSurfaceReleased after Teardown
	MakeCurrent() error

	// Submit sends encoded rendering commands to the current context.
	// Empty command buffers are ignored.
	//
	// Parameters:
	//   - commands: encoded rendering commands
	//
	// Returns:
	//   - error: ErrSurfaceReleased after Teardown
	Submit(commands []byte) error

	// Present swaps buffers on the drawable. Must be called at most once per frame,
	// after every draw phase for that frame has completed.
	//
	// Returns:
	//   - error: ErrSurfaceReleased after Teardown
	Present() error

	// Teardown unbinds the context, destroys it and destroys the drawable, in that order.
	// Calling Teardown again is a no-op.
	Teardown()

	// Released reports whether Teardown has run.
	Released() bool
}

// surface is the implementation of the Surface interface.
type surface struct {
	platform Platform
	log      *logger.Logger

	framebuffer       FramebufferRequest
	negotiatorOptions []NegotiatorBuilderOption

	selection Selection
	result    Result
	drawable  Drawable
	context   Context
	released  bool
}

var _ Surface = &surface{}

// NewSurface negotiates a rendering surface for a native window: it enumerates and selects a
// framebuffer configuration, creates the GLX drawable, negotiates a context and makes it current.
// On error every resource created so far is released and no surface is returned.
//
// Parameters:
//   - p: the platform owning the display connection
//   - win: the native window created by the windowing layer
//   - options: functional options to configure the surface
//
// Returns:
//   - Surface: the bound, presentable surface
//   - error: ErrNoCandidates, ErrDrawableCreationFailed, ErrContextCreationFailed or ErrBindFailed
func NewSurface(p Platform, win NativeWindow, options ...SurfaceBuilderOption) (Surface, error) {
	s := &surface{
		platform:    p,
		log:         logger.Default(),
		framebuffer: DefaultFramebufferRequest(),
	}
	for _, opt := range options {
		opt(s)
	}

	candidates, err := EnumerateCandidates(p, s.framebuffer, s.log)
	if err != nil {
		return nil, err
	}
	s.selection, err = SelectFBConfig(candidates)
	if err != nil {
		return nil, err
	}
	if !s.selection.Multisampled {
		s.log.Debug().Msg("no multisampled fbconfig, using first candidate")
	}
	s.log.Info().
		Str("visual", fmt.Sprintf("0x%x", s.selection.Best.Visual.ID)).
		Int("samples", s.selection.Best.Samples).
		Int("worst_samples", s.selection.Worst.Samples).
		Int("considered", s.selection.Considered).
		Msg("chosen visual")

	drawable, err := p.CreateWindow(s.selection.Best.Config, win)
	if err != nil || drawable == 0 {
		return nil, fmt.Errorf("%w: window 0x%x: %v", ErrDrawableCreationFailed, uint32(win), err)
	}

	opts := append([]NegotiatorBuilderOption{WithNegotiatorLogger(s.log)}, s.negotiatorOptions...)
	s.result, err = NewNegotiator(p, opts...).Negotiate(s.selection.Best.Config, drawable)
	if err != nil {
		p.DestroyWindow(drawable)
		return nil, err
	}

	s.drawable = drawable
	s.context = s.result.Context
	return s, nil
}

func (s *surface) Result() Result { return s.result }

func (s *surface) Selection() Selection { return s.selection }

func (s *surface) Context() Context { return s.context }

func (s *surface) Drawable() Drawable { return s.drawable }

func (s *surface) Released() bool { return s.released }

func (s *surface) MakeCurrent() error {
	if s.released {
		return ErrSurfaceReleased
	}
	if !s.platform.MakeContextCurrent(s.drawable, s.drawable, s.context) {
		return fmt.Errorf("%w: drawable 0x%x", ErrBindFailed, uint32(s.drawable))
	}
	return nil
}

func (s *surface) Submit(commands []byte) error {
	if s.released {
		return ErrSurfaceReleased
	}
	if len(commands) > 0 {
		s.platform.Render(commands)
	}
	return nil
}

func (s *surface) Present() error {
	if s.released {
		return ErrSurfaceReleased
	}
	s.platform.SwapBuffers(s.drawable)
	return nil
}

func (s *surface) Teardown() {
	if s.released {
		return
	}
	s.released = true

	s.platform.MakeContextCurrent(0, 0, 0)
	s.platform.DestroyContext(s.context)
	s.platform.DestroyWindow(s.drawable)

	s.context = 0
	s.drawable = 0
	s.log.Debug().Msg("surface released")
}
