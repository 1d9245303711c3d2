package glx

import (
	"errors"
	"fmt"
)

// fakeConfig is one scripted framebuffer configuration.
type fakeConfig struct {
	visual        uint32 // zero means the visual cannot be resolved
	sampleBuffers int
	samples       int
}

// fakeCreate is one scripted context creation outcome.
type fakeCreate struct {
	ctx Context
	err error // delivered asynchronously on the next Sync
}

// fakePlatform scripts the GLX platform for tests. Errors from creation calls are queued and
// only reach the installed handler on Sync, like X errors.
type fakePlatform struct {
	exts       string
	extErr     error
	configs    []fakeConfig
	hasAttribs bool
	modern     []fakeCreate
	legacy     fakeCreate
	direct     bool
	bindFails  bool
	windowErr  error

	handler    ErrorHandler
	pending    []error
	unhandled  []error
	calls      []string
	modernArgs [][]int

	alive       map[Context]bool
	drawables   map[Drawable]bool
	nextDraw    Drawable
	current     Context
	currentDraw Drawable
	currentRead Drawable
	rendered    [][]byte
	swaps       int
}

var _ Platform = &fakePlatform{}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		exts:       "GLX_ARB_multisample GLX_ARB_create_context GLX_ARB_create_context_profile",
		configs:    []fakeConfig{{visual: 0x21, sampleBuffers: 1, samples: 4}},
		hasAttribs: true,
		modern:     []fakeCreate{{ctx: 100}},
		legacy:     fakeCreate{ctx: 200},
		direct:     true,
		alive:      map[Context]bool{},
		drawables:  map[Drawable]bool{},
		nextDraw:   0x500,
	}
}

func (f *fakePlatform) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakePlatform) SetErrorHandler(h ErrorHandler) ErrorHandler {
	prev := f.handler
	f.handler = h
	return prev
}

func (f *fakePlatform) Screen() int { return 0 }

func (f *fakePlatform) QueryExtensionsString() (string, error) {
	f.record("QueryExtensionsString")
	return f.exts, f.extErr
}

func (f *fakePlatform) ChooseFBConfigs(attribs []int) ([]FBConfig, error) {
	f.record("ChooseFBConfigs")
	if len(attribs) == 0 || attribs[len(attribs)-1] != None {
		return nil, errors.New("attribute list not terminated")
	}
	out := make([]FBConfig, len(f.configs))
	for i := range f.configs {
		out[i] = FBConfig(i + 1)
	}
	return out, nil
}

func (f *fakePlatform) config(cfg FBConfig) (fakeConfig, error) {
	i := int(cfg) - 1
	if i < 0 || i >= len(f.configs) {
		return fakeConfig{}, fmt.Errorf("bad fbconfig %d", cfg)
	}
	return f.configs[i], nil
}

func (f *fakePlatform) FBConfigAttrib(cfg FBConfig, attrib int) (int, error) {
	c, err := f.config(cfg)
	if err != nil {
		return 0, err
	}
	switch attrib {
	case AttribSampleBuffers:
		return c.sampleBuffers, nil
	case AttribSamples:
		return c.samples, nil
	}
	return 0, fmt.Errorf("unknown attribute 0x%x", attrib)
}

func (f *fakePlatform) VisualFromFBConfig(cfg FBConfig) (VisualInfo, bool) {
	c, err := f.config(cfg)
	if err != nil || c.visual == 0 {
		return VisualInfo{}, false
	}
	return VisualInfo{ID: c.visual, Depth: 24, Class: 4}, true
}

func (f *fakePlatform) CreateWindow(cfg FBConfig, win NativeWindow) (Drawable, error) {
	f.record("CreateWindow %d", cfg)
	if f.windowErr != nil {
		return 0, f.windowErr
	}
	d := f.nextDraw
	f.nextDraw++
	f.drawables[d] = true
	return d, nil
}

func (f *fakePlatform) DestroyWindow(d Drawable) {
	f.record("DestroyWindow")
	delete(f.drawables, d)
}

func (f *fakePlatform) HasCreateContextAttribs() bool { return f.hasAttribs }

func (f *fakePlatform) CreateContextAttribs(cfg FBConfig, share Context, direct bool, attribs []int) Context {
	f.record("CreateContextAttribs")
	f.modernArgs = append(f.modernArgs, attribs)
	var out fakeCreate
	if len(f.modern) > 0 {
		out, f.modern = f.modern[0], f.modern[1:]
	}
	return f.create(out)
}

func (f *fakePlatform) CreateNewContext(cfg FBConfig, renderType int, share Context, direct bool) Context {
	f.record("CreateNewContext")
	return f.create(f.legacy)
}

func (f *fakePlatform) create(out fakeCreate) Context {
	if out.err != nil {
		f.pending = append(f.pending, out.err)
		return out.ctx
	}
	if out.ctx != 0 {
		f.alive[out.ctx] = true
	}
	return out.ctx
}

func (f *fakePlatform) Sync() {
	f.record("Sync")
	for _, err := range f.pending {
		if f.handler != nil {
			f.handler.HandleError(err)
		} else {
			f.unhandled = append(f.unhandled, err)
		}
	}
	f.pending = nil
}

func (f *fakePlatform) IsDirect(ctx Context) bool { return f.direct }

func (f *fakePlatform) MakeContextCurrent(draw, read Drawable, ctx Context) bool {
	f.record("MakeContextCurrent %d", ctx)
	if ctx != 0 && (f.bindFails || !f.alive[ctx] || !f.drawables[draw]) {
		return false
	}
	f.current, f.currentDraw, f.currentRead = ctx, draw, read
	return true
}

func (f *fakePlatform) SwapBuffers(d Drawable) {
	f.record("SwapBuffers")
	f.swaps++
}

func (f *fakePlatform) Render(commands []byte) {
	f.rendered = append(f.rendered, append([]byte(nil), commands...))
}

func (f *fakePlatform) DestroyContext(ctx Context) {
	f.record("DestroyContext %d", ctx)
	delete(f.alive, ctx)
}

func (f *fakePlatform) Close() error { return nil }

// count returns how many recorded calls start with prefix.
func (f *fakePlatform) count(prefix string) int {
	n := 0
	for _, c := range f.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

// recordingHandler is a pointer handler used to check identity restoration.
type recordingHandler struct {
	errs []error
}

func (h *recordingHandler) HandleError(err error) { h.errs = append(h.errs, err) }
