package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/kkyr/fig"
)

// EnvPrefix is the prefix of environment overrides, e.g. OXY_WINDOW_WIDTH=800.
const EnvPrefix = "OXY"

// DefaultFile is the config file name searched for when no path is given.
const DefaultFile = "config.yaml"

type Config struct {
	Window   Window   `fig:"window"`
	Context  Context  `fig:"context"`
	Render   Render   `fig:"render"`
	Log      Log      `fig:"log"`
	Profiler Profiler `fig:"profiler"`
}

type Window struct {
	Title  string `fig:"title" default:"oxy-gl"`
	Width  int    `fig:"width" default:"1280"`
	Height int    `fig:"height" default:"720"`
}

// Context configures framebuffer selection and context negotiation.
type Context struct {
	// Display is the X display name, empty for $DISPLAY.
	Display     string `fig:"display"`
	Major       int    `fig:"major" default:"4"`
	Minor       int    `fig:"minor" default:"3"`
	Profile     string `fig:"profile" default:"any"`
	DepthBits   int    `fig:"depthBits" default:"24"`
	StencilBits int    `fig:"stencilBits" default:"8"`
	// SingleBuffer disables double buffering.
	SingleBuffer      bool `fig:"singleBuffer"`
	Debug             bool `fig:"debug"`
	ForwardCompatible bool `fig:"forwardCompatible"`
	Indirect          bool `fig:"indirect"`
}

type Render struct {
	// FrameLimit caps frames per second, 0 is uncapped.
	FrameLimit float64   `fig:"frameLimit" default:"60"`
	ClearColor []float32 `fig:"clearColor" default:"[0.1,0.1,0.12,1]"`
}

type Log struct {
	Debug   bool `fig:"debug"`
	Console bool `fig:"console"`
	NoColor bool `fig:"noColor"`
}

type Profiler struct {
	Enabled  bool          `fig:"enabled"`
	Interval time.Duration `fig:"interval" default:"1s"`
	// MetricsAddr enables the /metrics endpoint when set, e.g. ":9100".
	MetricsAddr string `fig:"metricsAddr"`
}

// Load reads the configuration from path, then applies OXY_ environment overrides.
// With an empty path, config.yaml is searched in the working directory, ./configs and
// the user config directory; if none exists the defaults and environment are used.
//
// Parameters:
//   - path: an explicit config file, or empty
//
// Returns:
//   - Config: the loaded configuration
//   - error: if the file cannot be parsed or the values are invalid
func Load(path string) (Config, error) {
	var conf Config
	var err error
	if path != "" {
		err = fig.Load(&conf, fig.File(filepath.Base(path)), fig.Dirs(filepath.Dir(path)), fig.UseEnv(EnvPrefix))
	} else {
		err = fig.Load(&conf, fig.File(DefaultFile), fig.Dirs(searchDirs()...), fig.UseEnv(EnvPrefix))
		if errors.Is(err, fig.ErrFileNotFound) {
			conf = Config{}
			err = fig.Load(&conf, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
		}
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func searchDirs() []string {
	dirs := []string{".", "configs"}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, "oxy-gl"))
	}
	return dirs
}

// Validate checks value ranges fig cannot express with tags.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Context.Major < 1 || c.Context.Minor < 0 {
		return fmt.Errorf("config: context version %d.%d", c.Context.Major, c.Context.Minor)
	}
	if _, err := glx.ParseProfile(c.Context.Profile); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if len(c.Render.ClearColor) != 4 {
		return fmt.Errorf("config: render.clearColor needs 4 components, got %d", len(c.Render.ClearColor))
	}
	if c.Render.FrameLimit < 0 {
		return fmt.Errorf("config: render.frameLimit %v", c.Render.FrameLimit)
	}
	return nil
}

// Framebuffer returns the framebuffer request described by the context section.
func (c Context) Framebuffer() glx.FramebufferRequest {
	return glx.FramebufferRequest{
		DepthBits:    c.DepthBits,
		StencilBits:  c.StencilBits,
		DoubleBuffer: !c.SingleBuffer,
	}
}

// NegotiatorOptions returns the negotiator options described by the context section.
func (c Context) NegotiatorOptions() []glx.NegotiatorBuilderOption {
	profile, _ := glx.ParseProfile(c.Profile)
	return []glx.NegotiatorBuilderOption{
		glx.WithTargetVersion(c.Major, c.Minor),
		glx.WithProfile(profile),
		glx.WithDebugContext(c.Debug),
		glx.WithForwardCompatible(c.ForwardCompatible),
		glx.WithDirectRendering(!c.Indirect),
	}
}
