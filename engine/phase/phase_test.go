package phase

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEncoder(t *testing.T) {
	e := NewCommandEncoder()
	e.Clear(ColorBufferBit)
	e.ClearColor(0.25, 0.5, 0.75, 1)
	e.Viewport(0, 0, 640, 480)

	b := e.Bytes()
	require.Equal(t, 8+20+20, len(b))

	assert.Equal(t, uint16(8), binary.LittleEndian.Uint16(b[0:]))
	assert.Equal(t, uint16(opClear), binary.LittleEndian.Uint16(b[2:]))
	assert.Equal(t, ColorBufferBit, binary.LittleEndian.Uint32(b[4:]))

	cc := b[8:]
	assert.Equal(t, uint16(20), binary.LittleEndian.Uint16(cc[0:]))
	assert.Equal(t, uint16(opClearColor), binary.LittleEndian.Uint16(cc[2:]))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(cc[8:])))

	vp := b[28:]
	assert.Equal(t, uint16(opViewport), binary.LittleEndian.Uint16(vp[2:]))
	assert.Equal(t, uint32(640), binary.LittleEndian.Uint32(vp[12:]))
	assert.Equal(t, uint32(480), binary.LittleEndian.Uint32(vp[16:]))

	e.Reset()
	assert.Zero(t, e.Len())
}

type recorder struct {
	name    string
	log     *[]string
	initErr error
}

func (r *recorder) Draw(*Frame) { *r.log = append(*r.log, "draw "+r.name) }

func (r *recorder) Init() error {
	*r.log = append(*r.log, "init "+r.name)
	return r.initErr
}

func (r *recorder) Finalize() { *r.log = append(*r.log, "finalize "+r.name) }

func TestPipelineOrder(t *testing.T) {
	var calls []string
	a := &recorder{name: "a", log: &calls}
	b := &recorder{name: "b", log: &calls}
	p := NewPipeline(WithPhases(a, nil, b), WithPipelineLogger(logger.Nop()))
	require.Equal(t, 2, p.Len())

	require.NoError(t, p.Init())
	p.Draw(&Frame{})
	p.Finalize()
	p.Finalize()

	assert.Equal(t, []string{
		"init a", "init b",
		"draw a", "draw b",
		"finalize b", "finalize a",
	}, calls)
}

func TestPipelineInitFailureFinalizesInitialized(t *testing.T) {
	var calls []string
	boom := errors.New("shader compile")
	p := NewPipeline(WithPipelineLogger(logger.Nop()))
	p.Add(
		&recorder{name: "a", log: &calls},
		&recorder{name: "b", log: &calls, initErr: boom},
		&recorder{name: "c", log: &calls},
	)

	err := p.Init()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"init a", "init b", "finalize a"}, calls)
}

func TestPipelineDrawFunc(t *testing.T) {
	var seen uint64
	p := NewPipeline(WithPhases(DrawFunc(func(f *Frame) { seen = f.Index })))
	require.NoError(t, p.Init())
	p.Draw(&Frame{Index: 42})
	assert.Equal(t, uint64(42), seen)
}

func TestClearPhase(t *testing.T) {
	c := NewClearPhase(0.1, 0.2, 0.3, 1)
	frame := &Frame{Width: 800, Height: 600, Commands: NewCommandEncoder()}

	c.Draw(frame)

	want := NewCommandEncoder()
	want.Viewport(0, 0, 800, 600)
	want.ClearColor(0.1, 0.2, 0.3, 1)
	want.Clear(ColorBufferBit | DepthBufferBit)
	assert.Equal(t, want.Bytes(), frame.Commands.Bytes())

	assert.NotPanics(t, func() { c.Draw(&Frame{}) })
}
