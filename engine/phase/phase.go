package phase

import "time"

// DrawPhase is one step of frame rendering. A context is current on the calling thread when
// Draw runs; the phase only records commands into the frame.
type DrawPhase interface {
	// Draw records this phase's rendering commands for the frame.
	//
	// Parameters:
	//   - frame: the frame being drawn
	Draw(frame *Frame)
}

// Initializer is implemented by phases that need setup once a context is current.
type Initializer interface {
	Init() error
}

// Finalizer is implemented by phases that release resources before the context is torn down.
type Finalizer interface {
	Finalize()
}

// DrawFunc adapts a function to a DrawPhase.
type DrawFunc func(frame *Frame)

func (f DrawFunc) Draw(frame *Frame) { f(frame) }

// Frame is the per-tick data handed to every phase.
type Frame struct {
	// Index counts frames from zero.
	Index uint64

	// DeltaTime is the time since the previous frame.
	DeltaTime time.Duration

	// Width and Height are the drawable size in pixels.
	Width  int
	Height int

	// Commands collects the encoded rendering commands for this frame.
	Commands *CommandEncoder
}
