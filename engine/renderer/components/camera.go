package components

import (
	"github.com/spaghettifunk/filare/engine/math"
)

const (
	// Pitch stops just short of straight up/down so the view matrix
	// never gimbal-locks.
	MaxPitchDegrees float32 = 89.0

	/** @brief The name of the default camera. */
	DEFAULT_CAMERA_NAME string = "default"
)

/** @brief A camera managed by the camera system, with its bookkeeping. */
type CameraLookup struct {
	ID             uint16
	ReferenceCount uint16
	Camera         *Camera
}

// InputDelta is one frame's worth of camera motion, already scaled by
// the caller's speeds and delta time. Angles are in degrees.
type InputDelta struct {
	// Forward is the signed distance to travel along the heading.
	Forward float32
	// Yaw is the signed heading change applied before the move.
	Yaw float32
	// Pitch is the signed look change, clamped against MaxPitchDegrees.
	Pitch float32
}

type Camera struct {
	Position math.Vec3
	// EulerRotation holds pitch/yaw/roll in degrees.
	EulerRotation math.Vec3
	IsDirty       bool
	ViewMatrix    math.Mat4
}

func NewCamera() *Camera {
	return &Camera{
		Position:      math.NewVec3Zero(),
		EulerRotation: math.NewVec3Zero(),
		IsDirty:       false,
		ViewMatrix:    math.NewMat4Identity(),
	}
}

func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3Zero()
	c.Position = math.NewVec3Zero()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetPosition() math.Vec3 {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.IsDirty = true
}

// ApplyInput advances the camera by one frame of motion. The yaw turn
// happens first so the walk is taken along the new heading, and the
// walk itself moves in the horizontal plane only: pitching the view up
// never lifts the camera off the ground.
func (c *Camera) ApplyInput(delta InputDelta) {
	if delta.Forward == 0 && delta.Yaw == 0 && delta.Pitch == 0 {
		return
	}

	c.EulerRotation.Y -= delta.Yaw

	yaw := math.DegToRad(c.EulerRotation.Y)
	c.Position.X += delta.Forward * math.Sin(yaw)
	c.Position.Z -= delta.Forward * math.Cos(yaw)

	c.EulerRotation.X = math.Clamp(c.EulerRotation.X+delta.Pitch, -MaxPitchDegrees, MaxPitchDegrees)

	c.IsDirty = true
}

// GetView returns the world-to-camera matrix, rebuilding it only when
// the position or rotation changed since the last call.
func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		pose := math.NewPose(c.Position, c.EulerRotation)
		c.ViewMatrix = pose.ViewMatrix()
		c.IsDirty = false
	}
	return c.ViewMatrix
}
