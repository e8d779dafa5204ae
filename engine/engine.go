package engine

import (
	"fmt"

	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/platform"
	"github.com/spaghettifunk/filare/engine/renderer"
	"github.com/spaghettifunk/filare/engine/systems"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	isRunning     bool
	isSuspended   bool
	platform      *platform.Platform
	systemManager *systems.SystemManager
	width         uint32
	height        uint32
	clock         *core.Clock
	lastTime      float64
}

func New(g *Game) (*Engine, error) {
	core.LogSetLevel(g.ApplicationConfig.LogLevel)

	p, err := platform.New()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}

	sm, err := systems.NewSystemManager()
	if err != nil {
		core.LogError(err.Error())
		return nil, err
	}
	g.SystemManager = sm

	return &Engine{
		currentStage:  EngineStageUninitialized,
		gameInstance:  g,
		clock:         core.NewClock(),
		platform:      p,
		systemManager: sm,
		isRunning:     true,
		isSuspended:   false,
		width:         g.ApplicationConfig.StartWidth,
		height:        g.ApplicationConfig.StartHeight,
		lastTime:      0,
	}, nil
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	// initialize input
	if err := core.InputInitialize(); err != nil {
		return err
	}

	// initialize events
	if !core.EventSystemInitialize() {
		return fmt.Errorf("failed to initialize the event system")
	}

	if err := core.MetricsInitialize(); err != nil {
		return err
	}

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e.onResized)

	if err := e.platform.Startup(e.gameInstance.ApplicationConfig.Name,
		e.gameInstance.ApplicationConfig.StartPosX,
		e.gameInstance.ApplicationConfig.StartPosY,
		e.gameInstance.ApplicationConfig.StartWidth,
		e.gameInstance.ApplicationConfig.StartHeight); err != nil {
		return err
	}

	// The renderer requires the window's GL context, so it comes up
	// after the platform.
	if err := renderer.Initialize(renderer.OpenGL, e.gameInstance.ApplicationConfig.Name, e.width, e.height, e.platform); err != nil {
		return err
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}

	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	return nil
}

func (e *Engine) Run() error {
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()

	e.lastTime = e.clock.Elapsed()

	var lastMetricsLog float64

	for e.isRunning {
		if !e.platform.PumpMessages() {
			e.isRunning = false
		}

		if !e.isSuspended {
			// Update clock and get delta time.
			e.clock.Update()

			var currentTime float64 = e.clock.Elapsed()
			var delta float64 = (currentTime - e.lastTime)
			var frameStartTime float64 = platform.GetAbsoluteTime()

			// Deliver asset change notifications before the game
			// update so reloads happen at a frame boundary.
			e.systemManager.AssetManager().PumpNotifications()

			if err := e.gameInstance.FnUpdate(delta); err != nil {
				core.LogFatal("Game update failed, shutting down.")
				e.isRunning = false
				break
			}

			packet, err := e.gameInstance.FnRender(delta)
			if err != nil {
				core.LogFatal("Game render failed, shutting down.")
				e.isRunning = false
				break
			}

			if packet != nil {
				if err := e.systemManager.DrawFrame(packet); err != nil {
					core.LogError(err.Error())
					e.isRunning = false
					break
				}
			}

			var frameEndTime float64 = platform.GetAbsoluteTime()
			core.MetricsUpdate(frameEndTime - frameStartTime)

			if currentTime-lastMetricsLog >= 1.0 {
				fps, frameTime := core.MetricsFrame()
				core.LogDebug("FPS: %5.1f (%4.1fms)", fps, frameTime)
				lastMetricsLog = currentTime
			}

			// NOTE: Input update/state copying should always be handled
			// after any input should be recorded; I.E. before this line.
			// As a safety, input is the last thing to be updated before
			// this frame ends.
			core.InputUpdate(delta)

			// Update last time
			e.lastTime = currentTime
		}
	}

	return e.Shutdown()
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			return err
		}
	}
	if err := core.EventSystemShutdown(); err != nil {
		return err
	}
	if err := core.InputShutdown(); err != nil {
		return err
	}
	if err := e.systemManager.Shutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	return nil
}

func (e *Engine) onEvent(context core.EventContext) {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning = false
	}
}

func (e *Engine) onKey(context core.EventContext) {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	if context.Type == core.EVENT_CODE_KEY_PRESSED && ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
	}
}

func (e *Engine) onResized(context core.EventContext) {
	se, ok := context.Data.(*core.SystemEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	width := se.WindowWidth
	height := se.WindowHeight

	// Check if different. If so, trigger a resize event.
	if width != e.width || height != e.height {
		e.width = width
		e.height = height

		core.LogDebug("Window resize: %d, %d", width, height)

		// Handle minimization
		if width == 0 || height == 0 {
			core.LogInfo("Window minimized, suspending application.")
			e.isSuspended = true
			return
		}

		if e.isSuspended {
			core.LogInfo("Window restored, resuming application.")
			e.isSuspended = false
		}
		e.gameInstance.FnOnResize(width, height)
		if err := e.systemManager.OnResize(uint16(width), uint16(height)); err != nil {
			core.LogError(err.Error())
		}
	}
}
