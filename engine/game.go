package engine

import (
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
	"github.com/spaghettifunk/filare/engine/systems"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	SystemManager     *systems.SystemManager
	State             interface{}
	FnInitialize      Initialize
	FnUpdate          Update
	FnRender          Render
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error

// Render produces the packet for one frame; returning nil skips the
// frame without failing.
type Render func(deltaTime float64) (*metadata.RenderPacket, error)
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
