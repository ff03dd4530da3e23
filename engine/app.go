// Package engine is the host side of the bridge: a small ECS application on
// top of a donburi world with plugins, ordered update stages, the Window
// component and the typed events a windowing backend publishes.
package engine

import (
	"log/slog"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Stage orders systems within one update. Stages run First → Last.
type Stage int

const (
	// First runs before anything else, e.g. time and input bookkeeping.
	First Stage = iota
	PreUpdate
	// Update is the default stage for game logic.
	Update
	PostUpdate
	// Last runs after all game logic. Window creation lives here.
	Last

	stageCount
)

func (s Stage) String() string {
	switch s {
	case First:
		return "First"
	case PreUpdate:
		return "PreUpdate"
	case Update:
		return "Update"
	case PostUpdate:
		return "PostUpdate"
	case Last:
		return "Last"
	default:
		return "Unknown"
	}
}

// System is run once per update against the app's world.
type System func(w donburi.World) error

// PluginsState tracks how far plugin initialization has progressed.
type PluginsState uint8

const (
	// PluginsAdding means at least one plugin is not ready yet.
	PluginsAdding PluginsState = iota
	// PluginsReady means every plugin is ready and Finish may be called.
	PluginsReady
	PluginsFinished
	// PluginsCleaned means initialization is complete and updates may run.
	PluginsCleaned
)

func (s PluginsState) String() string {
	switch s {
	case PluginsAdding:
		return "Adding"
	case PluginsReady:
		return "Ready"
	case PluginsFinished:
		return "Finished"
	case PluginsCleaned:
		return "Cleaned"
	default:
		return "Unknown"
	}
}

// Plugin configures an App. Build is called as soon as the plugin is added.
type Plugin interface {
	Build(app *App)
}

// ReadyPlugin is implemented by plugins that need time before Finish.
type ReadyPlugin interface {
	Ready(app *App) bool
}

// FinishPlugin is implemented by plugins with work to do once every plugin
// has been built and is ready.
type FinishPlugin interface {
	Finish(app *App)
}

// CleanupPlugin is implemented by plugins with work to do after Finish.
type CleanupPlugin interface {
	Cleanup(app *App)
}

// Runner drives an App until it exits.
type Runner func(app *App) AppExit

// App owns a donburi world, its systems and its plugins.
type App struct {
	world   donburi.World
	plugins []Plugin
	state   PluginsState
	systems [stageCount][]System
	runner  Runner
	logger  *slog.Logger
	updates uint64
}

// NewApp creates an empty app with a fresh world. The default runner
// finishes initialization and runs a single update.
func NewApp() *App {
	return &App{
		world:  donburi.NewWorld(),
		runner: runOnce,
		logger: slog.Default(),
	}
}

// World returns the app's world.
func (a *App) World() donburi.World {
	return a.world
}

// SetLogger replaces the logger used for system errors.
func (a *App) SetLogger(l *slog.Logger) *App {
	if l != nil {
		a.logger = l
	}
	return a
}

// AddPlugins builds each plugin in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		a.plugins = append(a.plugins, p)
		p.Build(a)
	}
	return a
}

// AddSystems appends systems to a stage.
func (a *App) AddSystems(stage Stage, systems ...System) *App {
	a.systems[stage] = append(a.systems[stage], systems...)
	return a
}

// SetRunner replaces the function that drives the app in Run.
func (a *App) SetRunner(r Runner) *App {
	a.runner = r
	return a
}

// PluginsState reports plugin initialization progress.
func (a *App) PluginsState() PluginsState {
	if a.state != PluginsAdding {
		return a.state
	}
	for _, p := range a.plugins {
		if rp, ok := p.(ReadyPlugin); ok && !rp.Ready(a) {
			return PluginsAdding
		}
	}
	return PluginsReady
}

// Finish calls Finish on every plugin. It is a no-op once it has run.
func (a *App) Finish() {
	if a.state >= PluginsFinished {
		return
	}
	for _, p := range a.plugins {
		if fp, ok := p.(FinishPlugin); ok {
			fp.Finish(a)
		}
	}
	a.state = PluginsFinished
}

// Cleanup calls Cleanup on every plugin. It is a no-op once it has run or
// before Finish.
func (a *App) Cleanup() {
	if a.state != PluginsFinished {
		return
	}
	for _, p := range a.plugins {
		if cp, ok := p.(CleanupPlugin); ok {
			cp.Cleanup(a)
		}
	}
	a.state = PluginsCleaned
}

// Update delivers pending events, runs every stage in order and delivers
// the events those systems published. System errors are logged, not fatal.
func (a *App) Update() {
	events.ProcessAllEvents(a.world)
	for stage := First; stage < stageCount; stage++ {
		for _, sys := range a.systems[stage] {
			if err := sys(a.world); err != nil {
				a.logger.Warn("system failed", "stage", stage, "err", err)
			}
		}
	}
	events.ProcessAllEvents(a.world)
	a.updates++
}

// Updates returns the number of completed updates.
func (a *App) Updates() uint64 {
	return a.updates
}

// Run hands the app to its runner and returns the runner's exit status.
func (a *App) Run() AppExit {
	return a.runner(a)
}

func runOnce(a *App) AppExit {
	if a.PluginsState() == PluginsReady {
		a.Finish()
		a.Cleanup()
	}
	a.Update()
	return AppExitSuccess
}

// AppExit is the status an app finishes with. It is also published as an
// event by systems that want the app to stop.
type AppExit struct {
	Code int
}

// AppExitSuccess is a clean exit.
var AppExitSuccess = AppExit{}

// AppExitError returns a failed exit with the given non-zero code.
func AppExitError(code int) AppExit {
	if code == 0 {
		code = 1
	}
	return AppExit{Code: code}
}

// IsSuccess reports whether the exit is clean.
func (e AppExit) IsSuccess() bool {
	return e.Code == 0
}
