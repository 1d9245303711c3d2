package x11

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/jezek/xgb/xproto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFBConfigs(t *testing.T) {
	list := []uint32{
		glx.AttribFBConfigID, 0x61, glx.AttribSamples, 4,
		glx.AttribFBConfigID, 0x62, glx.AttribSamples, 0,
	}
	configs, err := parseFBConfigs(2, 2, list)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	assert.Equal(t, glx.FBConfig(0x61), configs[0].id())
	assert.Equal(t, 4, configs[0].attrib(glx.AttribSamples))
	assert.Equal(t, glx.FBConfig(0x62), configs[1].id())
	assert.Equal(t, 0, configs[1].attrib(glx.AttribStencilSize), "missing attributes read as zero")

	_, err = parseFBConfigs(3, 2, list)
	assert.Error(t, err)
}

func TestFBConfigMatches(t *testing.T) {
	cfg := fbConfig{
		glx.AttribXRenderable:  1,
		glx.AttribDrawableType: 0x7,
		glx.AttribRenderType:   0x1,
		glx.AttribXVisualType:  glx.TrueColor,
		glx.AttribDepthSize:    24,
		glx.AttribStencilSize:  8,
		glx.AttribDoubleBuffer: 1,
	}

	assert.True(t, cfg.matches(glx.DefaultFramebufferRequest().AttribList()))

	tests := []struct {
		name    string
		request []int
		want    bool
	}{
		{name: "minimum size", request: []int{glx.AttribDepthSize, 16, glx.None}, want: true},
		{name: "size too large", request: []int{glx.AttribDepthSize, 32, glx.None}, want: false},
		{name: "mask subset", request: []int{glx.AttribDrawableType, 0x4, glx.None}, want: true},
		{name: "mask missing bit", request: []int{glx.AttribRenderType, 0x2, glx.None}, want: false},
		{name: "exact mismatch", request: []int{glx.AttribDoubleBuffer, 0, glx.None}, want: false},
		{name: "dont care", request: []int{glx.AttribDoubleBuffer, glx.DontCare, glx.None}, want: true},
		{name: "stops at None", request: []int{glx.None, 0, glx.AttribDepthSize, 99}, want: true},
		{name: "absent attribute", request: []int{glx.AttribSampleBuffers, 1, glx.None}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cfg.matches(tt.request))
		})
	}
}

func TestSupportsCreateContextAttribs(t *testing.T) {
	exts := "GLX_ARB_multisample GLX_ARB_create_context"
	assert.True(t, supportsCreateContextAttribs(exts, 1, 4))
	assert.True(t, supportsCreateContextAttribs(exts, 2, 0))
	assert.False(t, supportsCreateContextAttribs(exts, 1, 3))
	assert.False(t, supportsCreateContextAttribs("GLX_ARB_create_context_profile", 1, 4))
}

func TestNewVisualTable(t *testing.T) {
	table := newVisualTable([]xproto.DepthInfo{
		{Depth: 24, Visuals: []xproto.VisualInfo{{VisualId: 0x21, Class: xproto.VisualClassTrueColor}}},
		{Depth: 32, Visuals: []xproto.VisualInfo{{VisualId: 0x5a, Class: xproto.VisualClassTrueColor}}},
	})
	require.Len(t, table, 2)
	assert.Equal(t, glx.VisualInfo{ID: 0x5a, Depth: 32, Class: xproto.VisualClassTrueColor}, table[0x5a])
}

func TestToWire(t *testing.T) {
	n, wire := toWire([]int{glx.ContextMajorVersion, 4, glx.ContextMinorVersion, 3, glx.None})
	assert.Equal(t, uint32(2), n)
	assert.Equal(t, []uint32{glx.ContextMajorVersion, 4, glx.ContextMinorVersion, 3}, wire)

	n, wire = toWire([]int{glx.None})
	assert.Zero(t, n)
	assert.Empty(t, wire)
}
