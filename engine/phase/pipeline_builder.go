package phase

import "github.com/Carmen-Shannon/oxy-gl/engine/logger"

// PipelineBuilderOption is a functional option for configuring a pipeline.
type PipelineBuilderOption func(p *pipeline)

// WithPhases registers phases in the given order.
//
// Parameters:
//   - phases: the phases to run every frame
//
// Returns:
//   - PipelineBuilderOption: option function to apply
func WithPhases(phases ...DrawPhase) PipelineBuilderOption {
	return func(p *pipeline) {
		p.Add(phases...)
	}
}

// WithPipelineLogger sets the logger used by the pipeline.
func WithPipelineLogger(l *logger.Logger) PipelineBuilderOption {
	return func(p *pipeline) {
		if l != nil {
			p.log = l
		}
	}
}
