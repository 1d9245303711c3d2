package phase

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
)

// Pipeline runs draw phases in registration order.
type Pipeline interface {
	// Add appends phases to the pipeline. Phases added after Init are initialized on the next Init call.
	//
	// Parameters:
	//   - phases: the phases to append
	Add(phases ...DrawPhase)

	// Init initializes every phase implementing Initializer, in order. If one fails, the phases
	// already initialized are finalized in reverse order and the error is returned.
	//
	// Returns:
	//   - error: the first initialization error
	Init() error

	// Draw runs every phase on the frame in registration order.
	//
	// Parameters:
	//   - frame: the frame being drawn
	Draw(frame *Frame)

	// Finalize finalizes every initialized phase implementing Finalizer, in reverse order.
	Finalize()

	// Len returns the number of registered phases.
	Len() int
}

// pipeline is the implementation of the Pipeline interface.
type pipeline struct {
	log         *logger.Logger
	phases      []DrawPhase
	initialized int
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new Pipeline.
//
// Parameters:
//   - options: functional options to configure the pipeline
//
// Returns:
//   - Pipeline: the new pipeline
func NewPipeline(options ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		log: logger.Default(),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

func (p *pipeline) Add(phases ...DrawPhase) {
	for _, ph := range phases {
		if ph != nil {
			p.phases = append(p.phases, ph)
		}
	}
}

func (p *pipeline) Init() error {
	for i := p.initialized; i < len(p.phases); i++ {
		if in, ok := p.phases[i].(Initializer); ok {
			if err := in.Init(); err != nil {
				p.Finalize()
				return fmt.Errorf("phase %d (%T) init: %w", i, p.phases[i], err)
			}
		}
		p.initialized = i + 1
	}
	p.log.Debug().Int("phases", len(p.phases)).Msg("pipeline initialized")
	return nil
}

func (p *pipeline) Draw(frame *Frame) {
	for _, ph := range p.phases {
		ph.Draw(frame)
	}
}

func (p *pipeline) Finalize() {
	for i := p.initialized - 1; i >= 0; i-- {
		if f, ok := p.phases[i].(Finalizer); ok {
			f.Finalize()
		}
	}
	p.initialized = 0
}

func (p *pipeline) Len() int { return len(p.phases) }
