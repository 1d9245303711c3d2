package main

import (
	"context"
	"os"
	"time"

	"github.com/Carmen-Shannon/oxy-gl/common"
	"github.com/Carmen-Shannon/oxy-gl/engine"
	"github.com/Carmen-Shannon/oxy-gl/engine/config"
	"github.com/Carmen-Shannon/oxy-gl/engine/glx"
	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/Carmen-Shannon/oxy-gl/engine/phase"
	"github.com/Carmen-Shannon/oxy-gl/engine/platform/x11"
	"github.com/Carmen-Shannon/oxy-gl/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gl/engine/window"
	"github.com/faiface/mainthread"
	"github.com/prometheus/client_golang/prometheus"
	flag "github.com/spf13/pflag"
)

var Version = "?"

func main() {
	configPath := flag.String("config", "", "path to a config file (default: search for config.yaml)")
	debug := flag.Bool("debug", false, "enable debug logging and request a debug context")
	display := flag.String("display", "", "X display to connect to (default: $DISPLAY)")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		logger.New(false).Fatal().Err(err).Msg("config")
	}
	if *debug {
		conf.Log.Debug = true
		conf.Context.Debug = true
	}
	conf.Context.Display = common.Coalesce(*display, conf.Context.Display)

	log := logger.New(conf.Log.Debug)
	if conf.Log.Console {
		log = logger.NewConsole(conf.Log.Debug, "oxy-gl", conf.Log.NoColor)
	}
	log.Info().Msgf("version %s", Version)

	var runErr error
	// GLFW and the GLX context are bound to the thread that creates them.
	mainthread.Run(func() {
		runErr = mainthread.CallErr(func() error { return run(conf, log) })
	})
	if runErr != nil {
		log.Error().Err(runErr).Msg("exit")
		os.Exit(1)
	}
}

func run(conf config.Config, log *logger.Logger) error {
	reg := prometheus.NewRegistry()
	metrics := profiler.NewMetrics(reg)
	if conf.Profiler.MetricsAddr != "" {
		mon := profiler.NewMonitoring(conf.Profiler.MetricsAddr, reg, log.Tagged("monitoring"))
		mon.Run()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := mon.Shutdown(ctx); err != nil {
				log.Warn().Err(err).Msg("monitoring shutdown")
			}
		}()
	}

	disp, err := x11.Open(x11.WithDisplayName(conf.Context.Display), x11.WithLogger(log.Tagged("x11")))
	if err != nil {
		return err
	}
	defer func() {
		if err := disp.Close(); err != nil {
			log.Warn().Err(err).Msg("display close")
		}
	}()

	win, err := window.NewWindow(
		window.WithTitle(conf.Window.Title),
		window.WithWidth(conf.Window.Width),
		window.WithHeight(conf.Window.Height),
		window.WithLogger(log.Tagged("window")),
	)
	if err != nil {
		return err
	}

	glxLog := log.Tagged("glx")
	c := conf.Render.ClearColor
	e := engine.NewEngine(
		engine.WithLogger(log.Tagged("engine")),
		engine.WithWindow(win),
		engine.WithSurfaceFactory(func(native glx.NativeWindow) (glx.Surface, error) {
			if err := disp.UseWindow(native); err != nil {
				return nil, err
			}
			return glx.NewSurface(disp, native,
				glx.WithLogger(glxLog),
				glx.WithFramebuffer(conf.Context.Framebuffer()),
				glx.WithNegotiator(conf.Context.NegotiatorOptions()...),
			)
		}),
		engine.WithPhases(phase.NewClearPhase(c[0], c[1], c[2], c[3])),
		engine.WithProfiler(profiler.NewProfiler(
			profiler.WithLogger(log.Tagged("profiler")),
			profiler.WithInterval(conf.Profiler.Interval),
			profiler.WithMetrics(metrics),
		)),
		engine.WithProfiling(conf.Profiler.Enabled),
		engine.WithRenderFrameLimit(conf.Render.FrameLimit),
	)
	win.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyEsc || keyCode == common.KeyQ {
			e.Quit()
		}
	})
	return e.Run()
}
