package renderer

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/platform"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
	"github.com/spaghettifunk/filare/engine/renderer/opengl"
)

// RendererBackend is the per-API surface of the renderer. The engine
// only ever talks to the frontend below, which forwards to whichever
// backend was compiled in.
type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64) error
	DrawLines(segments []metadata.Segment, style metadata.LineStyle) error
	EndFrame(deltaTime float64) error
}

type RendererType uint8

const (
	OpenGL RendererType = iota
	Vulkan
	DirectX
	Metal
)

func (rt RendererType) String() string {
	switch rt {
	case OpenGL:
		return "OpenGL"
	case Vulkan:
		return "Vulkan"
	case DirectX:
		return "DirectX"
	case Metal:
		return "Metal"
	}
	return "Unknown"
}

type Renderer struct {
	backend RendererBackend
}

var initRenderer sync.Once
var renderer *Renderer

func Initialize(rendererType RendererType, appName string, appWidth, appHeight uint32, platform *platform.Platform) error {
	// Only the OpenGL backend is compiled in. The check runs before the
	// singleton is created so a bad type does not poison it.
	if rendererType != OpenGL {
		return fmt.Errorf("renderer backend %s is not supported", rendererType)
	}
	initRenderer.Do(func() {
		renderer = &Renderer{
			backend: opengl.New(platform),
		}
	})
	return renderer.backend.Initialize(appName, appWidth, appHeight)
}

func Shutdown() error {
	return renderer.backend.Shutdown()
}

func BeginFrame(deltaTime float64) error {
	return renderer.backend.BeginFrame(deltaTime)
}

func EndFrame(deltaTime float64) error {
	return renderer.backend.EndFrame(deltaTime)
}

func OnResize(width, height uint16) error {
	return renderer.backend.Resized(width, height)
}

// DrawFrame presents one render packet: clear, draw every segment,
// swap. Any backend failure aborts the frame.
func DrawFrame(renderPacket *metadata.RenderPacket) error {
	if err := BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}
	if err := renderer.backend.DrawLines(renderPacket.Segments, renderPacket.Style); err != nil {
		core.LogError(err.Error())
		return err
	}
	if err := EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
