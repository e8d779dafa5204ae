package viewer

import (
	"testing"

	"github.com/spaghettifunk/filare/engine"
	"github.com/spaghettifunk/filare/engine/core"
	"github.com/spaghettifunk/filare/engine/renderer/components"
)

func newMouseLookGame(t *testing.T, sensitivity float32) (*ViewerGame, *components.Camera) {
	t.Helper()

	config := engine.DefaultApplicationConfig()
	config.Controls.MouseLook = true
	config.Controls.MouseSensitivity = sensitivity

	vg, err := NewViewerGame(config)
	if err != nil {
		t.Fatalf("NewViewerGame: %v", err)
	}

	camera := components.NewCamera()
	vg.State.(*gameState).WorldCamera = camera
	return vg, camera
}

// Pointer motion adds directly to the camera angles: dragging right
// grows yaw, dragging down grows pitch.
func TestUpdateMouseLookFollowsPointer(t *testing.T) {
	if err := core.InputInitialize(); err != nil {
		t.Fatalf("InputInitialize: %v", err)
	}
	defer core.InputShutdown()

	vg, camera := newMouseLookGame(t, 1.0)

	core.InputUpdate(0)
	px, py := core.InputGetMousePosition()
	core.InputProcessMouseMove(px+12, py+7)

	if err := vg.Update(1.0 / 60.0); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rot := camera.GetEulerRotation()
	if rot.Y != 12 {
		t.Fatalf("yaw after pointer dx=+12: got %f, want 12", rot.Y)
	}
	if rot.X != 7 {
		t.Fatalf("pitch after pointer dy=+7: got %f, want 7", rot.X)
	}
}

func TestUpdateMouseLookScalesWithSensitivity(t *testing.T) {
	if err := core.InputInitialize(); err != nil {
		t.Fatalf("InputInitialize: %v", err)
	}
	defer core.InputShutdown()

	vg, camera := newMouseLookGame(t, 0.25)

	core.InputUpdate(0)
	px, py := core.InputGetMousePosition()
	core.InputProcessMouseMove(px-8, py)

	if err := vg.Update(1.0 / 60.0); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rot := camera.GetEulerRotation()
	if rot.Y != -2 {
		t.Fatalf("yaw after pointer dx=-8 at 0.25 sensitivity: got %f, want -2", rot.Y)
	}
}
