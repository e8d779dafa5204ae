package systems

import (
	"github.com/spaghettifunk/filare/engine/assets"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
)

type SystemManager struct {
	cameraSystem   *CameraSystem
	rendererSystem *RendererSystem
	assetManager   *assets.AssetManager
}

func NewSystemManager() (*SystemManager, error) {
	cs, err := NewCameraSystem(&CameraSystemConfig{
		MaxCameraCount: 16,
	})
	if err != nil {
		return nil, err
	}

	rs, err := NewRendererSystem()
	if err != nil {
		return nil, err
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		return nil, err
	}
	if err := am.Initialize(); err != nil {
		return nil, err
	}

	return &SystemManager{
		cameraSystem:   cs,
		rendererSystem: rs,
		assetManager:   am,
	}, nil
}

func (sm *SystemManager) CameraSystem() *CameraSystem {
	return sm.cameraSystem
}

func (sm *SystemManager) AssetManager() *assets.AssetManager {
	return sm.assetManager
}

// DrawFrame forwards one packet to the renderer system.
func (sm *SystemManager) DrawFrame(packet *metadata.RenderPacket) error {
	return sm.rendererSystem.DrawFrame(packet)
}

func (sm *SystemManager) OnResize(width, height uint16) error {
	return sm.rendererSystem.OnResize(width, height)
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := sm.cameraSystem.Shutdown(); err != nil {
		return err
	}
	return sm.rendererSystem.Shutdown()
}
