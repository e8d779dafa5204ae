package systems

import (
	"github.com/spaghettifunk/filare/engine/renderer"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

// RendererSystem fronts the renderer for the rest of the engine, so
// nothing outside the systems layer talks to the backend directly.
type RendererSystem struct{}

func NewRendererSystem() (*RendererSystem, error) {
	return &RendererSystem{}, nil
}

// DrawFrame presents one packet of screen-space segments.
func (rs *RendererSystem) DrawFrame(packet *metadata.RenderPacket) error {
	return renderer.DrawFrame(packet)
}

func (rs *RendererSystem) OnResize(width, height uint16) error {
	return renderer.OnResize(width, height)
}

func (rs *RendererSystem) Shutdown() error {
	return renderer.Shutdown()
}
