package sdlbridge

import (
	"github.com/yohamta/donburi"

	"github.com/phanxgames/sdlbridge/engine"
)

// Runner drives an engine.App from the native event queue. One tick drains
// the queue, dispatches every event and then runs at most one update.
type Runner struct {
	ctx  *Context
	exit *engine.AppExit
}

// Run loops until the backend delivers a quit event or the app publishes
// engine.AppExit. A quit always ends with engine.AppExitSuccess once the
// rest of that tick's events have been dispatched; no update runs in that
// tick. Run panics when called off the thread that built the plugin.
func (r *Runner) Run(app *engine.App) engine.AppExit {
	if err := r.ctx.guard.Check(); err != nil {
		panic(err)
	}
	r.exit = nil
	world := app.World()

	for {
		if app.PluginsState() == engine.PluginsReady {
			app.Finish()
			app.Cleanup()
		}

		if r.ctx.pump(world) {
			return engine.AppExitSuccess
		}

		if app.PluginsState() == engine.PluginsCleaned {
			app.Update()
		}
		if r.exit != nil {
			r.ctx.log.Info("app requested exit", "code", r.exit.Code)
			return *r.exit
		}
	}
}

func (r *Runner) onAppExit(_ donburi.World, ev engine.AppExit) {
	if r.exit == nil || (r.exit.IsSuccess() && !ev.IsSuccess()) {
		r.exit = &ev
	}
}
