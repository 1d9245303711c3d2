package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/phase"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// ErrNoWindow is returned by Run when the engine was built without a window.
var ErrNoWindow = errors.New("engine: no window")

// SurfaceFactory negotiates a rendering surface for a native window.
type SurfaceFactory func(win glx.NativeWindow) (glx.Surface, error)

// engine implements the Engine interface.
// Everything runs on the thread that owns the window: the window's message loop calls tick,
// which draws every phase, submits the commands and presents once.
type engine struct {
	log *logger.Logger

	window         window.Window
	surfaceFactory SurfaceFactory
	surface        glx.Surface
	pipeline       phase.Pipeline
	encoder        *phase.CommandEncoder

	profiler         *profiler.Profiler
	profilingEnabled bool

	tickCallback func(deltaTime float32)

	frameIndex       uint64
	lastFrame        time.Time
	renderFrameLimit time.Duration // minimum frame duration; 0 = uncapped
	frameErr         error

	quitChannel  chan struct{}
	quitOnce     sync.Once
	shutdownOnce sync.Once
}

// Engine drives a window, its negotiated rendering surface and the draw phases of every frame.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Surface returns the negotiated surface, nil before Run or after shutdown.
	Surface() glx.Surface

	// Pipeline returns the draw phase pipeline.
	Pipeline() phase.Pipeline

	// AddPhase appends draw phases, run every frame in registration order.
	//
	// Parameters:
	//   - phases: the phases to append
	AddPhase(phases ...phase.DrawPhase)

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickCallback registers the function called each frame before the draw phases.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit sets an optional frame rate cap in frames per second.
	// Pass 0 to uncap the loop (default).
	//
	// Parameters:
	//   - fps: maximum frames per second (0 = uncapped)
	SetRenderFrameLimit(fps float64)

	// Frames returns the number of frames presented so far.
	Frames() uint64

	// Run negotiates the surface for the window, initializes the phases and runs the window
	// message loop until the window closes or Quit is called. The phases are finalized, the
	// surface torn down and the window closed before Run returns.
	//
	// Returns:
	//   - error: a negotiation, phase initialization or frame submission error
	Run() error

	// Quit stops the loop after the current frame.
	// Safe to call multiple times; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		log:         logger.Default(),
		encoder:     phase.NewCommandEncoder(),
		quitChannel: make(chan struct{}),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.pipeline == nil {
		e.pipeline = phase.NewPipeline(phase.WithPipelineLogger(e.log))
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(profiler.WithLogger(e.log))
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Surface() glx.Surface {
	return e.surface
}

func (e *engine) Pipeline() phase.Pipeline {
	return e.pipeline
}

func (e *engine) AddPhase(phases ...phase.DrawPhase) {
	e.pipeline.Add(phases...)
}

func (e *engine) Frames() uint64 {
	return e.frameIndex
}

func (e *engine) Run() error {
	if e.window == nil {
		return ErrNoWindow
	}
	defer e.shutdown()

	if err := e.start(); err != nil {
		return err
	}

	e.lastFrame = time.Now()
	e.window.SetUpdateCallback(e.tick)
	e.window.ProcessMessages()
	return e.frameErr
}

// start negotiates the surface and initializes the phases.
func (e *engine) start() error {
	if e.surfaceFactory == nil {
		return fmt.Errorf("engine: no surface factory")
	}
	win, err := e.window.NativeHandle()
	if err != nil {
		return fmt.Errorf("engine: native window: %w", err)
	}

	s, err := e.surfaceFactory(win)
	if m := e.profiler.Metrics(); m != nil {
		if err != nil {
			m.ObserveNegotiation(glx.Result{State: glx.StateFailed})
		} else {
			m.ObserveNegotiation(s.Result())
		}
	}
	if err != nil {
		return err
	}
	e.surface = s

	if err := e.pipeline.Init(); err != nil {
		return err
	}
	e.log.Info().Int("phases", e.pipeline.Len()).Msg("engine started")
	return nil
}

// tick renders one frame. It runs after the window has processed its own messages.
func (e *engine) tick() {
	select {
	case <-e.quitChannel:
		e.window.RequestClose()
		return
	default:
	}

	now := time.Now()
	dt := now.Sub(e.lastFrame)
	e.lastFrame = now

	if e.tickCallback != nil {
		e.tickCallback(float32(dt.Seconds()))
	}

	e.encoder.Reset()
	frame := &phase.Frame{
		Index:     e.frameIndex,
		DeltaTime: dt,
		Width:     e.window.Width(),
		Height:    e.window.Height(),
		Commands:  e.encoder,
	}
	e.pipeline.Draw(frame)

	if err := e.surface.Submit(e.encoder.Bytes()); err != nil {
		e.fail(err)
		return
	}
	// Present exactly once, after every phase of this frame.
	if err := e.surface.Present(); err != nil {
		e.fail(err)
		return
	}
	e.frameIndex++

	if e.profilingEnabled {
		e.profiler.Tick(time.Since(now))
	}

	if e.renderFrameLimit > 0 {
		if remaining := e.renderFrameLimit - time.Since(now); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

func (e *engine) fail(err error) {
	e.log.Error().Err(err).Uint64("frame", e.frameIndex).Msg("frame failed")
	e.frameErr = err
	e.Quit()
	e.window.RequestClose()
}

// Quit signals the loop to stop. Uses sync.Once so the channel is only closed once.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// shutdown finalizes phases, tears the surface down and closes the window, in that order.
func (e *engine) shutdown() {
	e.shutdownOnce.Do(func() {
		e.Quit()
		e.pipeline.Finalize()
		if e.surface != nil {
			e.surface.Teardown()
			e.surface = nil
		}
		if err := e.window.Close(); err != nil {
			e.log.Warn().Err(err).Msg("window close")
		}
		e.log.Info().Uint64("frames", e.frameIndex).Msg("engine stopped")
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

// SetRenderFrameLimit sets an optional frame rate cap.
// Pass 0 to uncap the loop.
func (e *engine) SetRenderFrameLimit(fps float64) {
	if fps <= 0 {
		e.renderFrameLimit = 0
		return
	}
	e.renderFrameLimit = time.Duration(float64(time.Second) / fps)
}
