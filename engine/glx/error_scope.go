package glx

import "sync/atomic"

// scopeActive guards the platform's single handler slot; negotiation never nests scopes.
var scopeActive atomic.Bool

// ErrorScope intercepts asynchronous platform errors for exactly one risky operation.
// BeginErrorScope installs the scope as the platform error handler and End restores the
// previous handler. The error flag is only observable through End.
type ErrorScope struct {
	slot     ErrorHandlerSlot
	previous ErrorHandler
	occurred bool
	first    error
	ended    bool
}

var _ ErrorHandler = &ErrorScope{}

// BeginErrorScope resets the error flag and installs the scope as the platform error handler.
// Panics if another scope is already active.
//
// Parameters:
//   - slot: the platform error handler slot
//
// Returns:
//   - *ErrorScope: the active scope; callers must call End on every exit path
func BeginErrorScope(slot ErrorHandlerSlot) *ErrorScope {
	if !scopeActive.CompareAndSwap(false, true) {
		panic("glx: error scope already active")
	}
	s := &ErrorScope{slot: slot}
	s.previous = slot.SetErrorHandler(s)
	return s
}

// HandleError records the error. Default platform behavior (terminating the process) is suppressed.
func (s *ErrorScope) HandleError(err error) {
	if s.ended {
		return
	}
	s.occurred = true
	if s.first == nil {
		s.first = err
	}
}

// End restores the previously installed handler and returns the final error flag
// together with the first intercepted error. Calling End again returns the same values.
//
// Returns:
//   - bool: true if the platform signaled an error while the scope was active
//   - error: the first intercepted error, or nil
func (s *ErrorScope) End() (bool, error) {
	if !s.ended {
		s.ended = true
		s.slot.SetErrorHandler(s.previous)
		scopeActive.Store(false)
	}
	return s.occurred, s.first
}

// syncSlot is a handler slot that can force delivery of buffered errors.
type syncSlot interface {
	ErrorHandlerSlot
	Sync()
}

// Trap runs op inside an ErrorScope, synchronizes with the platform so buffered errors are
// delivered, and restores the previous handler even if op panics.
//
// Parameters:
//   - p: the platform
//   - op: the single risky platform operation
//
// Returns:
//   - bool: true if the platform signaled an error during op
//   - error: the first intercepted error, or nil
func Trap(p syncSlot, op func()) (occurred bool, first error) {
	scope := BeginErrorScope(p)
	defer func() {
		occurred, first = scope.End()
	}()
	op()
	p.Sync()
	return
}
