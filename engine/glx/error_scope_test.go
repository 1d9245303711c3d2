package glx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrapNoError(t *testing.T) {
	p := newFakePlatform()
	prev := &recordingHandler{}
	p.SetErrorHandler(prev)

	occurred, err := Trap(p, func() {})

	assert.False(t, occurred)
	assert.NoError(t, err)
	assert.Same(t, prev, p.handler, "previous handler not restored")
	assert.Equal(t, 1, p.count("Sync"))
}

func TestTrapDeliversAsyncError(t *testing.T) {
	p := newFakePlatform()
	prev := &recordingHandler{}
	p.SetErrorHandler(prev)
	badMatch := errors.New("BadMatch")

	occurred, err := Trap(p, func() {
		p.pending = append(p.pending, badMatch)
	})

	assert.True(t, occurred)
	assert.ErrorIs(t, err, badMatch)
	assert.Empty(t, prev.errs, "error leaked to the previous handler")
	assert.Same(t, prev, p.handler)

	// errors after the scope go to the restored handler
	p.pending = append(p.pending, badMatch)
	p.Sync()
	assert.Len(t, prev.errs, 1)
}

func TestTrapRestoresOnPanic(t *testing.T) {
	p := newFakePlatform()
	prev := &recordingHandler{}
	p.SetErrorHandler(prev)

	require.Panics(t, func() {
		Trap(p, func() { panic("boom") })
	})
	assert.Same(t, prev, p.handler)

	// the slot is free again
	occurred, _ := Trap(p, func() {})
	assert.False(t, occurred)
}

func TestErrorScopeFlagResetPerScope(t *testing.T) {
	p := newFakePlatform()

	first := BeginErrorScope(p)
	first.HandleError(errors.New("BadValue"))
	occurred, _ := first.End()
	require.True(t, occurred)

	second := BeginErrorScope(p)
	occurred, err := second.End()
	assert.False(t, occurred)
	assert.NoError(t, err)
}

func TestErrorScopeEndTwice(t *testing.T) {
	p := newFakePlatform()
	prev := &recordingHandler{}
	p.SetErrorHandler(prev)

	s := BeginErrorScope(p)
	s.HandleError(errors.New("BadAlloc"))
	o1, e1 := s.End()

	other := &recordingHandler{}
	p.SetErrorHandler(other)
	o2, e2 := s.End()

	assert.Equal(t, o1, o2)
	assert.Equal(t, e1, e2)
	assert.Same(t, other, p.handler, "second End must not touch the slot")
}

func TestErrorScopeNestedPanics(t *testing.T) {
	p := newFakePlatform()
	s := BeginErrorScope(p)
	defer s.End()

	assert.Panics(t, func() { BeginErrorScope(p) })
}
