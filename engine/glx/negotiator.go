package glx

import (
	"fmt"
	"strings"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
)

// State is a step of the context negotiation state machine.
type State int

const (
	StateIdle State = iota
	StateCapabilityQueried
	StateAttemptingModern
	StateSucceeded
	StateFellBack
	StateVerified
	StateCurrent
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapabilityQueried:
		return "capability_queried"
	case StateAttemptingModern:
		return "attempting_modern"
	case StateSucceeded:
		return "succeeded"
	case StateFellBack:
		return "fell_back"
	case StateVerified:
		return "verified"
	case StateCurrent:
		return "current"
	case StateFailed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Advisory is a set of non-fatal conditions observed during negotiation.
type Advisory uint8

const (
	// AdvisoryReducedCapability means the modern creation entry point was unavailable
	// and the legacy path was used directly.
	AdvisoryReducedCapability Advisory = 1 << iota

	// AdvisoryIndirect means the negotiated context is not direct.
	AdvisoryIndirect

	// AdvisoryProfileUnsupported means a profile was requested but the platform does not
	// advertise profile selection; the profile attribute was omitted.
	AdvisoryProfileUnsupported
)

// Has reports whether every flag in f is set.
func (a Advisory) Has(f Advisory) bool { return a&f == f }

func (a Advisory) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a.Has(AdvisoryReducedCapability) {
		parts = append(parts, "reduced_capability")
	}
	if a.Has(AdvisoryIndirect) {
		parts = append(parts, "indirect")
	}
	if a.Has(AdvisoryProfileUnsupported) {
		parts = append(parts, "profile_unsupported")
	}
	return strings.Join(parts, "|")
}

// Profile selects the GL context profile requested through the modern entry point.
type Profile int

const (
	ProfileAny Profile = iota
	ProfileCore
	ProfileCompatibility
)

// ParseProfile maps "core", "compat"/"compatibility" and "" / "any" to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(s) {
	case "", "any":
		return ProfileAny, nil
	case "core":
		return ProfileCore, nil
	case "compat", "compatibility":
		return ProfileCompatibility, nil
	}
	return ProfileAny, fmt.Errorf("glx: unknown profile %q", s)
}

func (p Profile) mask() int {
	switch p {
	case ProfileCore:
		return ContextCoreProfileBit
	case ProfileCompatibility:
		return ContextCompatProfileBit
	}
	return 0
}

// VersionAttempt is one versioned context request.
type VersionAttempt struct {
	Major int
	Minor int
	Debug bool
}

func (v VersionAttempt) String() string {
	if v.Debug {
		return fmt.Sprintf("%d.%d-debug", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// Path records which creation entry point produced the context.
type Path int

const (
	PathNone Path = iota
	PathModern
	PathMinimum
	PathLegacy
)

func (p Path) String() string {
	switch p {
	case PathModern:
		return "modern"
	case PathMinimum:
		return "minimum"
	case PathLegacy:
		return "legacy"
	}
	return "none"
}

// Result describes a finished negotiation.
type Result struct {
	// State is the final state, StateCurrent or StateFailed.
	State State

	// Trace lists every state visited in order.
	Trace []State

	// Context is the negotiated context, zero on failure.
	Context Context

	// Path is the entry point that produced Context.
	Path Path

	// Version is the versioned request that produced Context. Zero for the legacy path.
	Version VersionAttempt

	// ModernAttempts counts requests made through the modern entry point.
	ModernAttempts int

	// Direct reports whether the context is direct.
	Direct bool

	// Advisories holds the non-fatal conditions observed.
	Advisories Advisory
}

// Negotiator creates, verifies and binds a rendering context for a framebuffer configuration.
type Negotiator interface {
	// Negotiate runs the negotiation state machine for cfg and binds the result to drawable.
	// On error no context is left alive.
	//
	// Parameters:
	//   - cfg: the selected framebuffer configuration
	//   - drawable: the drawable bound as draw and read target
	//
	// Returns:
	//   - Result: the negotiation result (State is StateFailed on error)
	//   - error: ErrContextCreationFailed or ErrBindFailed
	Negotiate(cfg FBConfig, drawable Drawable) (Result, error)
}

// negotiator is the implementation of the Negotiator interface.
type negotiator struct {
	platform Platform
	log      *logger.Logger

	target        VersionAttempt
	minimum       VersionAttempt
	profile       Profile
	forwardCompat bool
	direct        bool
	share         Context
}

var _ Negotiator = &negotiator{}

// NewNegotiator creates a Negotiator for the platform.
// Defaults: target 4.3, minimum 1.0, any profile, direct rendering requested, debug bit from the
// glxdebug build tag.
//
// Parameters:
//   - p: the platform
//   - options: functional options to configure the negotiator
//
// Returns:
//   - Negotiator: the configured negotiator
func NewNegotiator(p Platform, options ...NegotiatorBuilderOption) Negotiator {
	n := &negotiator{
		platform: p,
		log:      logger.Default(),
		target:   VersionAttempt{Major: 4, Minor: 3, Debug: debugContext},
		minimum:  VersionAttempt{Major: 1, Minor: 0},
		direct:   true,
	}
	for _, opt := range options {
		opt(n)
	}
	n.minimum.Debug = n.target.Debug
	return n
}

func (n *negotiator) Negotiate(cfg FBConfig, drawable Drawable) (Result, error) {
	res := Result{}
	n.enter(&res, StateIdle)

	exts, err := n.platform.QueryExtensionsString()
	if err != nil {
		n.log.Warn().Err(err).Msg("GLX extension query failed, assuming no extensions")
		exts = ""
	}
	caps := Extensions(exts)
	n.enter(&res, StateCapabilityQueried)

	var ctx Context
	if !caps.Has(ExtCreateContext) || !n.platform.HasCreateContextAttribs() {
		n.log.Warn().Msg("glXCreateContextAttribsARB() not found, using old-style GLX context")
		res.Advisories |= AdvisoryReducedCapability
		ctx = n.createLegacy(cfg)
		res.Path = PathLegacy
		n.enter(&res, StateFellBack)
	} else {
		n.enter(&res, StateAttemptingModern)

		profileMask := n.profile.mask()
		if profileMask != 0 && !caps.Has(ExtCreateContextProfile) {
			n.log.Warn().Str("ext", ExtCreateContextProfile).Msg("profile selection unsupported, profile attribute omitted")
			res.Advisories |= AdvisoryProfileUnsupported
			profileMask = 0
		}

		res.ModernAttempts++
		ctx = n.createModern(cfg, n.target, profileMask)
		if ctx != 0 {
			res.Path, res.Version = PathModern, n.target
			n.enter(&res, StateSucceeded)
		} else {
			// Profiles only exist from 3.2 on, the minimum attempt never carries one.
			res.ModernAttempts++
			ctx = n.createModern(cfg, n.minimum, 0)
			if ctx != 0 {
				res.Path, res.Version = PathMinimum, n.minimum
				n.enter(&res, StateSucceeded)
			} else {
				ctx = n.createLegacy(cfg)
				res.Path = PathLegacy
				n.enter(&res, StateFellBack)
			}
		}
	}

	if ctx == 0 {
		res.Path = PathNone
		n.enter(&res, StateFailed)
		n.log.Error().Msg("failed to create an OpenGL context")
		return res, fmt.Errorf("%w: %d modern attempts and legacy creation failed", ErrContextCreationFailed, res.ModernAttempts)
	}
	res.Context = ctx

	res.Direct = n.platform.IsDirect(ctx)
	if res.Direct {
		n.log.Info().Msg("direct GLX rendering context obtained")
	} else {
		n.log.Warn().Msg("indirect GLX rendering context obtained")
		res.Advisories |= AdvisoryIndirect
	}
	n.enter(&res, StateVerified)

	if !n.platform.MakeContextCurrent(drawable, drawable, ctx) {
		n.platform.DestroyContext(ctx)
		res.Context = 0
		n.enter(&res, StateFailed)
		return res, fmt.Errorf("%w: drawable 0x%x", ErrBindFailed, uint32(drawable))
	}
	n.enter(&res, StateCurrent)

	n.log.Info().
		Str("path", res.Path.String()).
		Str("version", res.Version.String()).
		Bool("direct", res.Direct).
		Str("advisories", res.Advisories.String()).
		Msg("context current")
	return res, nil
}

// enter appends s to the trace and makes it the current state.
func (n *negotiator) enter(res *Result, s State) {
	res.State = s
	res.Trace = append(res.Trace, s)
	n.log.Debug().Str("state", s.String()).Msg("negotiation")
}

// createModern requests a versioned context inside a fresh error scope.
// Returns zero if the platform returned a null handle or signaled an error.
func (n *negotiator) createModern(cfg FBConfig, v VersionAttempt, profileMask int) Context {
	attribs := n.contextAttribs(v, profileMask)
	n.log.Debug().Str("version", v.String()).Msg("creating context")

	var ctx Context
	occurred, xerr := Trap(n.platform, func() {
		ctx = n.platform.CreateContextAttribs(cfg, n.share, n.direct, attribs)
	})
	if occurred || ctx == 0 {
		n.log.Warn().Err(xerr).Str("version", v.String()).Msg("versioned context creation failed")
		return 0
	}
	n.log.Info().Str("version", v.String()).Msg("created versioned GL context")
	return ctx
}

// createLegacy requests a non-versioned context inside a fresh error scope.
func (n *negotiator) createLegacy(cfg FBConfig) Context {
	var ctx Context
	occurred, xerr := Trap(n.platform, func() {
		ctx = n.platform.CreateNewContext(cfg, RGBAType, n.share, n.direct)
	})
	if occurred || ctx == 0 {
		n.log.Warn().Err(xerr).Msg("glXCreateNewContext failed")
		return 0
	}
	return ctx
}

// contextAttribs builds the None terminated attribute list for the modern entry point.
func (n *negotiator) contextAttribs(v VersionAttempt, profileMask int) []int {
	attribs := []int{
		ContextMajorVersion, v.Major,
		ContextMinorVersion, v.Minor,
	}
	flags := 0
	if v.Debug {
		flags |= ContextDebugBit
	}
	if n.forwardCompat && v.Major >= 3 {
		flags |= ContextForwardCompatBit
	}
	if flags != 0 {
		attribs = append(attribs, ContextFlags, flags)
	}
	if profileMask != 0 {
		attribs = append(attribs, ContextProfileMask, profileMask)
	}
	return append(attribs, None)
}
