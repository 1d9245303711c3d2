package glx

import "github.com/Carmen-Shannon/oxy-gl/engine/logger"

// NegotiatorBuilderOption is a functional option for configuring a negotiator.
type NegotiatorBuilderOption func(n *negotiator)

// WithTargetVersion sets the version requested first through the modern entry point.
//
// Parameters:
//   - major: the GL major version
//   - minor: the GL minor version
//
// Returns:
//   - NegotiatorBuilderOption: option function to apply
func WithTargetVersion(major, minor int) NegotiatorBuilderOption {
	return func(n *negotiator) {
		n.target.Major = major
		n.target.Minor = minor
	}
}

// WithMinimumVersion sets the universally supported version retried once after the target
// version fails. Defaults to 1.0.
//
// Parameters:
//   - major: the GL major version
//   - minor: the GL minor version
//
// Returns:
//   - NegotiatorBuilderOption: option function to apply
func WithMinimumVersion(major, minor int) NegotiatorBuilderOption {
	return func(n *negotiator) {
		n.minimum.Major = major
		n.minimum.Minor = minor
	}
}

// WithDebugContext requests the debug context bit on versioned attempts.
// Builds tagged glxdebug always request it.
//
// Parameters:
//   - enabled: if true, the debug bit is requested
//
// Returns:
//   - NegotiatorBuilderOption: option function to apply
func WithDebugContext(enabled bool) NegotiatorBuilderOption {
	return func(n *negotiator) {
		n.target.Debug = enabled || debugContext
	}
}

// WithProfile sets the context profile requested on the target attempt.
//
// Parameters:
//   - p: the requested profile
//
// Returns:
//   - NegotiatorBuilderOption: option function to apply
func WithProfile(p Profile) NegotiatorBuilderOption {
	return func(n *negotiator) {
		n.profile = p
	}
}

// WithForwardCompatible requests a forward compatible context for 3.0+ attempts.
func WithForwardCompatible(enabled bool) NegotiatorBuilderOption {
	return func(n *negotiator) {
		n.forwardCompat = enabled
	}
}

// WithDirectRendering sets whether a direct context is requested. Defaults to true.
func WithDirectRendering(enabled bool) NegotiatorBuilderOption {
	return func(n *negotiator) {
		n.direct = enabled
	}
}

// WithNegotiatorLogger sets the logger used for negotiation events.
func WithNegotiatorLogger(l *logger.Logger) NegotiatorBuilderOption {
	return func(n *negotiator) {
		if l != nil {
			n.log = l
		}
	}
}
