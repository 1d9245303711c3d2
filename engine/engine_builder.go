package engine

import (
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/phase"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfiler sets the profiler ticked once per presented frame.
//
// Parameters:
//   - p: the profiler, optionally carrying Prometheus metrics
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiler(p *profiler.Profiler) EngineBuilderOption {
	return func(e *engine) {
		e.profiler = p
	}
}

// WithWindow sets the window the engine draws into.
//
// Parameters:
//   - w: a created Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithSurfaceFactory sets the function negotiating the rendering surface for the window.
//
// Parameters:
//   - f: the surface factory, usually wrapping glx.NewSurface
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithSurfaceFactory(f SurfaceFactory) EngineBuilderOption {
	return func(e *engine) {
		e.surfaceFactory = f
	}
}

// WithPipeline replaces the default phase pipeline.
func WithPipeline(p phase.Pipeline) EngineBuilderOption {
	return func(e *engine) {
		e.pipeline = p
	}
}

// WithPhases registers draw phases in the given order during engine construction.
//
// Parameters:
//   - phases: the phases run every frame
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithPhases(phases ...phase.DrawPhase) EngineBuilderOption {
	return func(e *engine) {
		if e.pipeline == nil {
			e.pipeline = phase.NewPipeline(phase.WithPipelineLogger(e.log))
		}
		e.pipeline.Add(phases...)
	}
}

// WithRenderFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		e.SetRenderFrameLimit(fps)
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *logger.Logger) EngineBuilderOption {
	return func(e *engine) {
		if l != nil {
			e.log = l
		}
	}
}
