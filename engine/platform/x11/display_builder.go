package x11

import "github.com/Carmen-Shannon/oxy-gl/engine/logger"

// DisplayBuilderOption is a functional option for configuring a Display during Open.
type DisplayBuilderOption func(d *Display)

// WithDisplayName sets the X display to connect to. Empty uses $DISPLAY.
//
// Parameters:
//   - name: the display name, e.g. ":0"
//
// Returns:
//   - DisplayBuilderOption: option function to apply
func WithDisplayName(name string) DisplayBuilderOption {
	return func(d *Display) {
		d.name = name
	}
}

// WithLogger sets the logger used for connection events and unhandled X errors.
func WithLogger(l *logger.Logger) DisplayBuilderOption {
	return func(d *Display) {
		if l != nil {
			d.log = l
		}
	}
}
