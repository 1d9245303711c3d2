package glx

import "github.com/Carmen-Shannon/oxy-gl/engine/logger"

// SurfaceBuilderOption is a functional option for configuring a surface during NewSurface.
type SurfaceBuilderOption func(s *surface)

// WithFramebuffer sets the framebuffer attributes used to enumerate configurations.
//
// Parameters:
//   - req: the desired framebuffer attributes
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithFramebuffer(req FramebufferRequest) SurfaceBuilderOption {
	return func(s *surface) {
		s.framebuffer = req
	}
}

// WithNegotiator passes options through to the context negotiator.
//
// Parameters:
//   - options: negotiator options
//
// Returns:
//   - SurfaceBuilderOption: option function to apply
func WithNegotiator(options ...NegotiatorBuilderOption) SurfaceBuilderOption {
	return func(s *surface) {
		s.negotiatorOptions = append(s.negotiatorOptions, options...)
	}
}

// WithLogger sets the logger used by the surface and its negotiator.
func WithLogger(l *logger.Logger) SurfaceBuilderOption {
	return func(s *surface) {
		if l != nil {
			s.log = l
		}
	}
}
