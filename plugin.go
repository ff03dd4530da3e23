package sdlbridge

import (
	"errors"
	"log/slog"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/sdlbridge/engine"
	"github.com/phanxgames/sdlbridge/internal/mainthread"
	"github.com/phanxgames/sdlbridge/native"
)

// ErrNoBackend is returned by NewPlugin without a backend.
var ErrNoBackend = errors.New("sdlbridge: no native backend")

// Context owns the native backend and the window registry. It must only be
// used from the thread that created it.
type Context struct {
	backend  native.Backend
	registry *WindowRegistry
	guard    mainthread.Guard
	cfg      Config
	log      *slog.Logger

	closing []donburi.Entity
}

func newContext(backend native.Backend, cfg Config, logger *slog.Logger) *Context {
	return &Context{
		backend:  backend,
		registry: NewWindowRegistry(),
		guard:    mainthread.Capture(),
		cfg:      cfg,
		log:      logger,
	}
}

// Backend returns the native backend.
func (c *Context) Backend() native.Backend { return c.backend }

// Registry returns the window registry.
func (c *Context) Registry() *WindowRegistry { return c.registry }

// Plugin installs the bridge into an engine.App: window creation, event
// translation and the runner that drives the app.
type Plugin struct {
	cfg     Config
	backend native.Backend
	log     *slog.Logger
	ctx     *Context
	runner  *Runner
}

// NewPlugin validates cfg and returns a plugin driving backend. A nil
// logger uses slog.Default.
func NewPlugin(backend native.Backend, cfg Config, logger *slog.Logger) (*Plugin, error) {
	if backend == nil {
		return nil, ErrNoBackend
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Plugin{
		cfg:     cfg,
		backend: backend,
		log:     logger.With("component", "sdlbridge"),
	}, nil
}

// Build creates the Context on the calling thread, registers the window
// systems, spawns the configured startup windows and replaces the app's
// runner.
func (p *Plugin) Build(app *engine.App) {
	p.ctx = newContext(p.backend, p.cfg, p.log)
	p.runner = &Runner{ctx: p.ctx}
	world := app.World()

	if p.cfg.CloseWhenRequested {
		engine.WindowCloseRequestedEvent.Subscribe(world, p.ctx.onCloseRequested)
		app.AddSystems(engine.Last, p.ctx.despawnClosing)
	}
	app.AddSystems(engine.Last, p.ctx.updateWindows)

	engine.AppExitEvent.Subscribe(world, p.runner.onAppExit)

	for _, wc := range p.cfg.Windows {
		w := engine.NewWindow(wc.Title, wc.Width, wc.Height)
		w.Resizable = p.cfg.Resizable
		if wc.Resizable != nil {
			w.Resizable = *wc.Resizable
		}
		engine.SpawnWindow(world, w)
	}

	app.SetRunner(p.runner.Run)
	p.log.Debug("plugin built", "startup_windows", len(p.cfg.Windows))
}

// Context returns the plugin's context, or nil before Build.
func (p *Plugin) Context() *Context { return p.ctx }
