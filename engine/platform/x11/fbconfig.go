package x11

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/jezek/xgb/xproto"
)

// fbConfig is the attribute table of one server framebuffer configuration.
type fbConfig map[uint32]uint32

// id returns the server side FBConfig XID.
func (c fbConfig) id() glx.FBConfig {
	return glx.FBConfig(c[glx.AttribFBConfigID])
}

// attrib returns the value of a, zero when the server did not report it.
func (c fbConfig) attrib(a int) int {
	return int(int32(c[uint32(a)]))
}

// matches applies the glXChooseFBConfig matching rules to a None terminated request:
// sizes are minimums, type attributes are masks and every other attribute must be equal.
// DontCare values are skipped.
func (c fbConfig) matches(request []int) bool {
	for i := 0; i+1 < len(request) && request[i] != glx.None; i += 2 {
		attr, want := request[i], request[i+1]
		if want == glx.DontCare {
			continue
		}
		have := c.attrib(attr)
		switch attr {
		case glx.AttribRedSize, glx.AttribGreenSize, glx.AttribBlueSize, glx.AttribAlphaSize,
			glx.AttribDepthSize, glx.AttribStencilSize, glx.AttribSampleBuffers, glx.AttribSamples:
			if have < want {
				return false
			}
		case glx.AttribDrawableType, glx.AttribRenderType:
			if have&want != want {
				return false
			}
		default:
			if have != want {
				return false
			}
		}
	}
	return true
}

// parseFBConfigs splits a GetFBConfigs property list into per-config attribute tables.
// Each config carries numProps attribute/value pairs.
//
// Parameters:
//   - numConfigs: the number of configs in the reply
//   - numProps: the number of attribute/value pairs per config
//   - list: the flat property list
//
// Returns:
//   - []fbConfig: the configs in server order
//   - error: if list is shorter than the counts require
func parseFBConfigs(numConfigs, numProps uint32, list []uint32) ([]fbConfig, error) {
	stride := int(numProps) * 2
	if need := int(numConfigs) * stride; len(list) < need {
		return nil, fmt.Errorf("x11: fbconfig property list has %d words, want %d", len(list), need)
	}
	configs := make([]fbConfig, 0, numConfigs)
	for i := 0; i < int(numConfigs); i++ {
		props := list[i*stride : (i+1)*stride]
		cfg := make(fbConfig, numProps)
		for j := 0; j+1 < len(props); j += 2 {
			cfg[props[j]] = props[j+1]
		}
		configs = append(configs, cfg)
	}
	return configs, nil
}

// visualTable indexes the visuals a screen allows by id.
type visualTable map[xproto.Visualid]glx.VisualInfo

func newVisualTable(depths []xproto.DepthInfo) visualTable {
	t := visualTable{}
	for _, d := range depths {
		for _, v := range d.Visuals {
			t[v.VisualId] = glx.VisualInfo{
				ID:    uint32(v.VisualId),
				Depth: int(d.Depth),
				Class: int(v.Class),
			}
		}
	}
	return t
}

// supportsCreateContextAttribs reports whether glXCreateContextAttribsARB can be issued: the
// extension must be advertised and the server must speak GLX 1.4 or later.
func supportsCreateContextAttribs(exts string, major, minor uint32) bool {
	if !glx.ExtensionSupported(exts, glx.ExtCreateContext) {
		return false
	}
	return major > 1 || (major == 1 && minor >= 4)
}

// toWire converts a None terminated attribute list to wire pairs without the terminator.
func toWire(attribs []int) (pairs uint32, out []uint32) {
	for i := 0; i+1 < len(attribs) && attribs[i] != glx.None; i += 2 {
		out = append(out, uint32(attribs[i]), uint32(attribs[i+1]))
	}
	return uint32(len(out) / 2), out
}
