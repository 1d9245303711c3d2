package glx

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
)

// Candidate is one platform offered framebuffer configuration. It is immutable once enumerated.
type Candidate struct {
	// Index is the position of the configuration in the platform enumeration.
	Index int

	// Config is the opaque platform configuration handle.
	Config FBConfig

	// Visual is the visual the configuration resolved to.
	Visual VisualInfo

	// SampleBuffers reports whether the configuration has a multisample buffer.
	SampleBuffers bool

	// Samples is the number of samples per pixel.
	Samples int
}

// Selection is the outcome of one candidate selection pass.
type Selection struct {
	// Best is the chosen candidate.
	Best Candidate

	// Worst is the least capable candidate seen. It is tracked for logging only.
	Worst Candidate

	// Considered is the number of candidates scored.
	Considered int

	// Multisampled reports whether Best has a sample buffer. When false, Best is the first
	// enumerated candidate.
	Multisampled bool
}

// EnumerateCandidates lists the framebuffer configurations matching req and resolves each one
// to a visual. Configurations the platform refuses to resolve are skipped.
//
// Parameters:
//   - p: the platform
//   - req: the desired framebuffer attributes
//   - log: logger receiving one debug event per candidate
//
// Returns:
//   - []Candidate: the resolved candidates in enumeration order
//   - error: ErrNoCandidates if nothing usable was enumerated
func EnumerateCandidates(p Platform, req FramebufferRequest, log *logger.Logger) ([]Candidate, error) {
	configs, err := p.ChooseFBConfigs(req.AttribList())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCandidates, err)
	}

	candidates := make([]Candidate, 0, len(configs))
	for i, cfg := range configs {
		vi, ok := p.VisualFromFBConfig(cfg)
		if !ok {
			log.Debug().Int("fbconfig", i).Msg("no visual for fbconfig, skipped")
			continue
		}
		sampleBuffers, err := p.FBConfigAttrib(cfg, AttribSampleBuffers)
		if err != nil {
			log.Debug().Err(err).Int("fbconfig", i).Msg("sample buffer query failed, skipped")
			continue
		}
		samples, err := p.FBConfigAttrib(cfg, AttribSamples)
		if err != nil {
			log.Debug().Err(err).Int("fbconfig", i).Msg("sample count query failed, skipped")
			continue
		}

		log.Debug().
			Int("fbconfig", i).
			Str("visual", fmt.Sprintf("0x%x", vi.ID)).
			Int("sample_buffers", sampleBuffers).
			Int("samples", samples).
			Msg("matching fbconfig")

		candidates = append(candidates, Candidate{
			Index:         i,
			Config:        cfg,
			Visual:        vi,
			SampleBuffers: sampleBuffers != 0,
			Samples:       samples,
		})
	}

	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	return candidates, nil
}

// SelectFBConfig picks the candidate with the best multisample quality.
// Sample buffer enabled candidates beat disabled ones, a higher sample count beats a lower one
// among enabled candidates, and ties keep the first seen. When no candidate has a sample buffer
// the first candidate is returned.
//
// Parameters:
//   - candidates: the enumerated candidates
//
// Returns:
//   - Selection: the selection result
//   - error: ErrNoCandidates if candidates is empty
func SelectFBConfig(candidates []Candidate) (Selection, error) {
	if len(candidates) == 0 {
		return Selection{}, ErrNoCandidates
	}

	best, worst := 0, 0
	for i := 1; i < len(candidates); i++ {
		c := candidates[i]
		b := candidates[best]
		if c.SampleBuffers && (!b.SampleBuffers || c.Samples > b.Samples) {
			best = i
		}

		w := candidates[worst]
		if w.SampleBuffers && (!c.SampleBuffers || c.Samples < w.Samples) {
			worst = i
		}
	}

	return Selection{
		Best:         candidates[best],
		Worst:        candidates[worst],
		Considered:   len(candidates),
		Multisampled: candidates[best].SampleBuffers,
	}, nil
}
