package viewer

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/filare/engine"
	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/math"
	"github.com/spaghettifunk/filare/engine/renderer/components"
	"github.com/spaghettifunk/filare/engine/renderer/metadata"
	"github.com/spaghettifunk/filare/engine/renderer/views"
)

type ViewerGame struct {
	*engine.Game
}

type gameState struct {
	WorldCamera *components.Camera

	mesh     *metadata.Mesh
	meshPath string
	view     *views.WireframeView

	width  uint32
	height uint32
}

func NewViewerGame(config *engine.ApplicationConfig) (*ViewerGame, error) {
	vg := &ViewerGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State:             &gameState{},
		},
	}

	vg.FnInitialize = vg.Initialize
	vg.FnUpdate = vg.Update
	vg.FnRender = vg.Render
	vg.FnOnResize = vg.OnResize
	vg.FnShutdown = vg.Shutdown

	return vg, nil
}

func (g *ViewerGame) Initialize() error {
	core.LogDebug("ViewerGame Initialize fn....")

	if g.SystemManager == nil {
		return fmt.Errorf("the engine is not yet initialized with all the system managers")
	}

	state := g.State.(*gameState)
	scene := g.ApplicationConfig.Scene

	mesh, err := g.SystemManager.AssetManager().LoadMesh(scene.MeshPath)
	if err != nil {
		return err
	}
	state.mesh = mesh
	state.meshPath = scene.MeshPath

	state.WorldCamera = g.SystemManager.CameraSystem().GetDefault()

	pose := math.NewPose(
		math.NewVec3(scene.ObjectPosition[0], scene.ObjectPosition[1], scene.ObjectPosition[2]),
		math.NewVec3(scene.ObjectRotation[0], scene.ObjectRotation[1], scene.ObjectRotation[2]),
	)
	state.view = views.NewWireframeView(
		math.DegToRad(scene.FOVDegrees),
		scene.NearClip,
		scene.FarClip,
		pose,
		scene.ObjectScale,
		metadata.LineStyle{Color: scene.LineColor, Width: scene.LineWidth},
	)

	core.EventRegister(core.EVENT_CODE_ASSET_MODIFIED, g.onAssetModified)

	return nil
}

func (g *ViewerGame) Update(deltaTime float64) error {
	state := g.State.(*gameState)
	controls := g.ApplicationConfig.Controls

	var delta components.InputDelta

	// The walk direction is flipped because a forward step must carry
	// the camera toward greater depth.
	step := controls.MoveSpeed * float32(deltaTime)
	if core.InputIsKeyDown(core.KEY_UP) || core.InputIsKeyDown(core.KEY_W) {
		delta.Forward -= step
	}
	if core.InputIsKeyDown(core.KEY_DOWN) || core.InputIsKeyDown(core.KEY_S) {
		delta.Forward += step
	}

	turn := controls.TurnSpeed * float32(deltaTime)
	if core.InputIsKeyDown(core.KEY_LEFT) || core.InputIsKeyDown(core.KEY_A) {
		delta.Yaw += turn
	}
	if core.InputIsKeyDown(core.KEY_RIGHT) || core.InputIsKeyDown(core.KEY_D) {
		delta.Yaw -= turn
	}

	if controls.MouseLook {
		// Pointer motion adds directly to the orientation angles, so
		// the deltas are negated where ApplyInput subtracts.
		dx, dy := core.InputGetMouseDelta()
		delta.Yaw -= float32(dx) * controls.MouseSensitivity
		delta.Pitch += float32(dy) * controls.MouseSensitivity
	}

	state.WorldCamera.ApplyInput(delta)

	if core.InputIsKeyUp(core.KEY_P) && core.InputWasKeyDown(core.KEY_P) {
		pos := state.WorldCamera.GetPosition()
		rot := state.WorldCamera.GetEulerRotation()
		fps, frameTime := core.MetricsFrame()
		core.LogInfo("Pos=[%7.3f %7.3f %7.3f] Rot=[%7.3f %7.3f %7.3f] FPS: %5.1f(%4.1fms)",
			pos.X, pos.Y, pos.Z, rot.X, rot.Y, rot.Z, fps, frameTime)
	}

	return nil
}

func (g *ViewerGame) Render(deltaTime float64) (*metadata.RenderPacket, error) {
	state := g.State.(*gameState)

	if state.mesh == nil || state.width == 0 || state.height == 0 {
		return nil, nil
	}

	viewport := views.Viewport{
		Width:  float32(state.width),
		Height: float32(state.height),
	}
	return state.view.BuildPacket(state.mesh, state.WorldCamera, viewport, deltaTime), nil
}

func (g *ViewerGame) OnResize(width uint32, height uint32) error {
	state := g.State.(*gameState)

	state.width = width
	state.height = height

	return nil
}

func (g *ViewerGame) Shutdown() error {
	return nil
}

// onAssetModified swaps in the mesh that changed on disk. A mesh that
// no longer loads is reported and the previous one stays up.
func (g *ViewerGame) onAssetModified(context core.EventContext) {
	ae, ok := context.Data.(*core.AssetEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return
	}

	state := g.State.(*gameState)
	if filepath.Clean(ae.Path) != filepath.Clean(state.meshPath) {
		return
	}

	mesh, err := g.SystemManager.AssetManager().LoadMesh(state.meshPath)
	if err != nil {
		core.LogError("reload of %s failed, keeping previous mesh: %v", state.meshPath, err)
		return
	}
	state.mesh = mesh
	core.LogInfo("reloaded mesh %q", mesh.Name)
}
