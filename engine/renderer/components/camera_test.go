package components

import (
	"testing"

	"github.com/spaghettifunk/filare/engine/math"
)

const tolerance = 1e-4

func TestApplyInputWalksAlongHeading(t *testing.T) {
	c := NewCamera()

	// Facing down the default heading, a positive forward step moves
	// toward -z only.
	c.ApplyInput(InputDelta{Forward: 2})
	if !c.Position.Compare(math.NewVec3(0, 0, -2), tolerance) {
		t.Fatalf("expected (0, 0, -2), got %+v", c.Position)
	}

	// After turning 90 degrees the same step moves along x instead.
	c.Reset()
	c.ApplyInput(InputDelta{Yaw: -90})
	c.ApplyInput(InputDelta{Forward: 2})
	if !c.Position.Compare(math.NewVec3(2, 0, 0), tolerance) {
		t.Fatalf("expected (2, 0, 0), got %+v", c.Position)
	}
}

func TestApplyInputTurnsBeforeMoving(t *testing.T) {
	turnThenMove := NewCamera()
	turnThenMove.ApplyInput(InputDelta{Yaw: -90})
	turnThenMove.ApplyInput(InputDelta{Forward: 1})

	together := NewCamera()
	together.ApplyInput(InputDelta{Forward: 1, Yaw: -90})

	if !together.Position.Compare(turnThenMove.Position, tolerance) {
		t.Fatalf("combined input moved to %+v, sequential to %+v",
			together.Position, turnThenMove.Position)
	}
}

func TestApplyInputNeverLeavesGroundPlane(t *testing.T) {
	c := NewCamera()
	c.ApplyInput(InputDelta{Pitch: 45})
	c.ApplyInput(InputDelta{Forward: 10})

	if c.Position.Y != 0 {
		t.Fatalf("pitched walk lifted camera to y=%v", c.Position.Y)
	}
}

func TestApplyInputClampsPitch(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 50; i++ {
		c.ApplyInput(InputDelta{Pitch: 10})
	}
	if c.EulerRotation.X != MaxPitchDegrees {
		t.Fatalf("pitch = %v, want %v", c.EulerRotation.X, MaxPitchDegrees)
	}

	for i := 0; i < 100; i++ {
		c.ApplyInput(InputDelta{Pitch: -10})
	}
	if c.EulerRotation.X != -MaxPitchDegrees {
		t.Fatalf("pitch = %v, want %v", c.EulerRotation.X, -MaxPitchDegrees)
	}
}

func TestGetViewCachesUntilDirty(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3(1, 2, 3))

	first := c.GetView()
	if c.IsDirty {
		t.Fatal("GetView left the camera dirty")
	}
	if !first.Compare(c.GetView(), 0) {
		t.Fatal("repeated GetView without changes returned a different matrix")
	}

	c.ApplyInput(InputDelta{Forward: 1})
	if !c.IsDirty {
		t.Fatal("ApplyInput did not mark the camera dirty")
	}
	if first.Compare(c.GetView(), tolerance) {
		t.Fatal("view matrix did not change after moving")
	}
}

func TestGetViewMatchesPoseViewMatrix(t *testing.T) {
	c := NewCamera()
	c.SetPosition(math.NewVec3(4, 0, -7))
	c.SetEulerRotation(math.NewVec3(15, 30, 0))

	want := math.NewPose(c.Position, c.EulerRotation).ViewMatrix()
	if !c.GetView().Compare(want, tolerance) {
		t.Fatal("cached view diverged from the pose view matrix")
	}
}
