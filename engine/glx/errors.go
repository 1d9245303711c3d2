package glx

import "errors"

var (
	// ErrDisplayUnavailable means the platform connection could not be opened.
	ErrDisplayUnavailable = errors.New("glx: display unavailable")

	// ErrNoCandidates means configuration enumeration returned nothing usable.
	ErrNoCandidates = errors.New("glx: no framebuffer configuration candidates")

	// ErrDrawableCreationFailed means the GLX drawable for the window could not be created.
	ErrDrawableCreationFailed = errors.New("glx: drawable creation failed")

	// ErrContextCreationFailed means every version attempt, including the legacy path, failed.
	ErrContextCreationFailed = errors.New("glx: context creation failed")

	// ErrBindFailed means the context could not be made current.
	ErrBindFailed = errors.New("glx: make current failed")

	// ErrSurfaceReleased is returned by operations on a torn down surface.
	ErrSurfaceReleased = errors.New("glx: surface released")
)
