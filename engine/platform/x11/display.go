package x11

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/jezek/xgb"
	xglx "github.com/jezek/xgb/glx"
	"github.com/jezek/xgb/xproto"
)

// glxExtensionsName is the GLX_EXTENSIONS name for QueryServerString.
const glxExtensionsName = 3

// Display is a GLX platform speaking the GLX wire protocol over a pure Go X connection.
// Resource ids are server global, so a window created by another client (GLFW's Xlib
// connection) can host a GLX drawable created here.
//
// Display is not safe for concurrent use; it belongs to the render thread.
type Display struct {
	conn   *xgb.Conn
	log    *logger.Logger
	name   string
	screen int
	root   xproto.Window

	major, minor uint32
	visuals      visualTable
	windowVisual xproto.Visualid

	configs []fbConfig
	byID    map[glx.FBConfig]fbConfig

	fallback *logHandler
	handler  glx.ErrorHandler
	tag      xglx.ContextTag
}

var _ glx.Platform = &Display{}

// Open connects to the X server, initializes the GLX extension and queries the GLX version.
//
// Parameters:
//   - options: functional options to configure the display
//
// Returns:
//   - *Display: the connected display
//   - error: wrapping glx.ErrDisplayUnavailable if the server or GLX is unreachable
func Open(options ...DisplayBuilderOption) (*Display, error) {
	d := &Display{
		log: logger.Default(),
	}
	for _, opt := range options {
		opt(d)
	}
	d.fallback = &logHandler{log: d.log}
	d.handler = d.fallback

	conn, err := xgb.NewConnDisplay(d.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", glx.ErrDisplayUnavailable, d.name, err)
	}
	if err := xglx.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: GLX extension: %v", glx.ErrDisplayUnavailable, err)
	}
	d.conn = conn

	setup := xproto.Setup(conn)
	d.screen = conn.DefaultScreen
	if d.screen < 0 || d.screen >= len(setup.Roots) {
		conn.Close()
		return nil, fmt.Errorf("%w: screen %d out of range", glx.ErrDisplayUnavailable, d.screen)
	}
	root := setup.Roots[d.screen]
	d.root = root.Root
	d.visuals = newVisualTable(root.AllowedDepths)

	ver, err := xglx.QueryVersion(conn, 1, 4).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: GLX version: %v", glx.ErrDisplayUnavailable, err)
	}
	d.major, d.minor = ver.MajorVersion, ver.MinorVersion

	d.log.Info().
		Int("screen", d.screen).
		Str("glx", fmt.Sprintf("%d.%d", d.major, d.minor)).
		Msg("X display opened")
	return d, nil
}

// Version returns the GLX version reported by the server.
func (d *Display) Version() (major, minor int) {
	return int(d.major), int(d.minor)
}

// UseWindow restricts visual resolution to the visual of win, so the selected
// configuration can back a GLX drawable on it.
//
// Parameters:
//   - win: the native window that will host the drawable
//
// Returns:
//   - error: if the window attributes cannot be read
func (d *Display) UseWindow(win glx.NativeWindow) error {
	attrs, err := xproto.GetWindowAttributes(d.conn, xproto.Window(win)).Reply()
	if err != nil {
		return fmt.Errorf("x11: window 0x%x attributes: %w", uint32(win), err)
	}
	d.windowVisual = attrs.Visual
	d.log.Debug().Str("visual", fmt.Sprintf("0x%x", uint32(attrs.Visual))).Msg("restricting to window visual")
	return nil
}

func (d *Display) SetErrorHandler(h glx.ErrorHandler) glx.ErrorHandler {
	prev := d.handler
	if h == nil {
		h = d.fallback
	}
	d.handler = h
	return prev
}

func (d *Display) Screen() int { return d.screen }

func (d *Display) QueryExtensionsString() (string, error) {
	reply, err := xglx.QueryServerString(d.conn, uint32(d.screen), glxExtensionsName).Reply()
	if err != nil {
		return "", fmt.Errorf("x11: GLX_EXTENSIONS: %w", err)
	}
	return reply.String, nil
}

// ChooseFBConfigs returns the configs matching attribs in server order.
func (d *Display) ChooseFBConfigs(attribs []int) ([]glx.FBConfig, error) {
	if err := d.loadFBConfigs(); err != nil {
		return nil, err
	}
	var out []glx.FBConfig
	for _, cfg := range d.configs {
		if cfg.matches(attribs) {
			out = append(out, cfg.id())
		}
	}
	return out, nil
}

func (d *Display) loadFBConfigs() error {
	if d.configs != nil {
		return nil
	}
	reply, err := xglx.GetFBConfigs(d.conn, uint32(d.screen)).Reply()
	if err != nil {
		return fmt.Errorf("x11: GetFBConfigs: %w", err)
	}
	configs, err := parseFBConfigs(reply.NumFbConfigs, reply.NumProperties, reply.PropertyList)
	if err != nil {
		return err
	}
	d.configs = configs
	d.byID = make(map[glx.FBConfig]fbConfig, len(configs))
	for _, cfg := range configs {
		d.byID[cfg.id()] = cfg
	}
	d.log.Debug().Int("count", len(configs)).Msg("fbconfigs loaded")
	return nil
}

func (d *Display) FBConfigAttrib(cfg glx.FBConfig, attrib int) (int, error) {
	c, ok := d.byID[cfg]
	if !ok {
		return 0, fmt.Errorf("x11: unknown fbconfig 0x%x", uint32(cfg))
	}
	return c.attrib(attrib), nil
}

func (d *Display) VisualFromFBConfig(cfg glx.FBConfig) (glx.VisualInfo, bool) {
	c, ok := d.byID[cfg]
	if !ok {
		return glx.VisualInfo{}, false
	}
	id := xproto.Visualid(c.attrib(glx.AttribVisualID))
	if id == 0 || (d.windowVisual != 0 && id != d.windowVisual) {
		return glx.VisualInfo{}, false
	}
	vi, ok := d.visuals[id]
	return vi, ok
}

func (d *Display) CreateWindow(cfg glx.FBConfig, win glx.NativeWindow) (glx.Drawable, error) {
	id, err := xglx.NewWindowId(d.conn)
	if err != nil {
		return 0, fmt.Errorf("x11: allocate GLX window id: %w", err)
	}
	err = xglx.CreateWindowChecked(d.conn, uint32(d.screen), xglx.Fbconfig(cfg), xproto.Window(win), id, 0, nil).Check()
	if err != nil {
		return 0, err
	}
	return glx.Drawable(id), nil
}

func (d *Display) DestroyWindow(draw glx.Drawable) {
	if draw == 0 {
		return
	}
	xglx.DeleteWindow(d.conn, xglx.Window(draw))
}

func (d *Display) HasCreateContextAttribs() bool {
	exts, err := d.QueryExtensionsString()
	if err != nil {
		return false
	}
	return supportsCreateContextAttribs(exts, d.major, d.minor)
}

// CreateContextAttribs issues an unchecked CreateContextAttribsARB. Failures arrive as
// X errors on the next Sync.
func (d *Display) CreateContextAttribs(cfg glx.FBConfig, share glx.Context, direct bool, attribs []int) glx.Context {
	id, err := xglx.NewContextId(d.conn)
	if err != nil {
		d.log.Error().Err(err).Msg("allocate context id")
		return 0
	}
	n, wire := toWire(attribs)
	xglx.CreateContextAttribsARB(d.conn, id, xglx.Fbconfig(cfg), uint32(d.screen), xglx.Context(share), direct, n, wire)
	return glx.Context(id)
}

// CreateNewContext issues an unchecked CreateNewContext. Failures arrive as X errors on
// the next Sync.
func (d *Display) CreateNewContext(cfg glx.FBConfig, renderType int, share glx.Context, direct bool) glx.Context {
	id, err := xglx.NewContextId(d.conn)
	if err != nil {
		d.log.Error().Err(err).Msg("allocate context id")
		return 0
	}
	xglx.CreateNewContext(d.conn, id, xglx.Fbconfig(cfg), uint32(d.screen), uint32(renderType), xglx.Context(share), direct)
	return glx.Context(id)
}

// Sync round-trips to the server and delivers every queued X error to the installed handler.
func (d *Display) Sync() {
	d.conn.Sync()
	dispatch(d.conn, d.handler, d.log)
}

func (d *Display) IsDirect(ctx glx.Context) bool {
	reply, err := xglx.IsDirect(d.conn, xglx.Context(ctx)).Reply()
	if err != nil {
		d.log.Warn().Err(err).Msg("IsDirect")
		return false
	}
	return reply.IsDirect
}

func (d *Display) MakeContextCurrent(draw, read glx.Drawable, ctx glx.Context) bool {
	reply, err := xglx.MakeContextCurrent(d.conn, d.tag, xglx.Drawable(draw), xglx.Drawable(read), xglx.Context(ctx)).Reply()
	if err != nil {
		d.log.Warn().Err(err).Uint32("context", uint32(ctx)).Msg("MakeContextCurrent")
		return false
	}
	d.tag = reply.ContextTag
	return true
}

func (d *Display) SwapBuffers(draw glx.Drawable) {
	xglx.SwapBuffers(d.conn, d.tag, xglx.Drawable(draw))
}

// Render sends commands as a single GLX Render request on the current context.
func (d *Display) Render(commands []byte) {
	if d.tag == 0 {
		d.log.Debug().Msg("render without a current context")
		return
	}
	xglx.Render(d.conn, d.tag, commands)
}

func (d *Display) DestroyContext(ctx glx.Context) {
	if ctx == 0 {
		return
	}
	xglx.DestroyContext(d.conn, xglx.Context(ctx))
}

// Close flushes pending errors to the handler and closes the connection.
func (d *Display) Close() error {
	if d.conn == nil {
		return nil
	}
	d.Sync()
	d.conn.Close()
	d.conn = nil
	return nil
}
