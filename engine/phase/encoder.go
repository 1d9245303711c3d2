package phase

import (
	"encoding/binary"
	"math"
)

// GL buffer bits accepted by Clear.
const (
	DepthBufferBit   uint32 = 0x00000100
	StencilBufferBit uint32 = 0x00000400
	ColorBufferBit   uint32 = 0x00004000
)

// GLX render opcodes (glxproto rendering command numbers).
const (
	opClear      = 127
	opClearColor = 130
	opViewport   = 191
)

// headerSize is the CARD16 length + CARD16 opcode prefix of every render command.
const headerSize = 4

// CommandEncoder accumulates GL rendering commands in GLX Render request format.
// Each command is a little endian length/opcode header followed by its parameters,
// matching the byte order xgb negotiates with the server.
type CommandEncoder struct {
	buf []byte
}

// NewCommandEncoder creates an empty encoder.
func NewCommandEncoder() *CommandEncoder {
	return &CommandEncoder{buf: make([]byte, 0, 64)}
}

// Viewport encodes glViewport.
//
// Parameters:
//   - x, y: lower left corner of the viewport in pixels
//   - width, height: viewport size in pixels
func (e *CommandEncoder) Viewport(x, y, width, height int32) {
	b := e.begin(opViewport, 16)
	binary.LittleEndian.PutUint32(b[0:], uint32(x))
	binary.LittleEndian.PutUint32(b[4:], uint32(y))
	binary.LittleEndian.PutUint32(b[8:], uint32(width))
	binary.LittleEndian.PutUint32(b[12:], uint32(height))
}

// ClearColor encodes glClearColor.
func (e *CommandEncoder) ClearColor(r, g, b, a float32) {
	p := e.begin(opClearColor, 16)
	for i, c := range [4]float32{r, g, b, a} {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(c))
	}
}

// Clear encodes glClear.
//
// Parameters:
//   - mask: bitwise OR of ColorBufferBit, DepthBufferBit and StencilBufferBit
func (e *CommandEncoder) Clear(mask uint32) {
	p := e.begin(opClear, 4)
	binary.LittleEndian.PutUint32(p, mask)
}

// begin appends a header for opcode and returns the zeroed parameter area.
func (e *CommandEncoder) begin(opcode uint16, paramSize int) []byte {
	start := len(e.buf)
	total := headerSize + paramSize
	e.buf = append(e.buf, make([]byte, total)...)
	binary.LittleEndian.PutUint16(e.buf[start:], uint16(total))
	binary.LittleEndian.PutUint16(e.buf[start+2:], opcode)
	return e.buf[start+headerSize:]
}

// Bytes returns the encoded commands. The slice is only valid until the next Reset.
func (e *CommandEncoder) Bytes() []byte { return e.buf }

// Len returns the number of encoded bytes.
func (e *CommandEncoder) Len() int { return len(e.buf) }

// Reset discards the encoded commands, keeping the buffer.
func (e *CommandEncoder) Reset() { e.buf = e.buf[:0] }
