package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * Note that these are here in order to prevent having to cast
 * through <math> everywhere.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

/** @brief Calculates the sine of x (x in radians). */
func Sin(x float32) float32 {
	return ksin(x)
}

/** @brief Calculates the cosine of x (x in radians). */
func Cos(x float32) float32 {
	return kcos(x)
}

/**
 * @brief Converts provided degrees to radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	f := float64(x)
	return !m.IsNaN(f) && !m.IsInf(f, 0)
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec2) Compare(other Vec2, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Returns a new vec4 using vector as the x, y and z components and w for w.
 */
func (v Vec3) ToVec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

// Negated returns v with every component negated.
func (v Vec3) Negated() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

// IsFinite reports whether every component is a finite number.
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Returns the result of multiplying mt and other. Since matrices
 * apply to column vectors, in the product mt.Mul(other) the matrix
 * other is the one applied first.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[row*4+i] * other.Data[i*4+col]
			}
			out_matrix.Data[row*4+col] = sum
		}
	}

	return out_matrix
}

/**
 * @brief Transforms the homogeneous vector v by mt (out = mt * v).
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	d := mt.Data
	return Vec4{
		X: d[0]*v.X + d[1]*v.Y + d[2]*v.Z + d[3]*v.W,
		Y: d[4]*v.X + d[5]*v.Y + d[6]*v.Z + d[7]*v.W,
		Z: d[8]*v.X + d[9]*v.Y + d[10]*v.Z + d[11]*v.W,
		W: d[12]*v.X + d[13]*v.Y + d[14]*v.Z + d[15]*v.W,
	}
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[3] = position.X
	out_matrix.Data[7] = position.Y
	out_matrix.Data[11] = position.Z
	return out_matrix
}

/**
 * @brief Returns a uniform scale matrix using the provided scale factor.
 */
func NewMat4Scale(scale float32) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale
	out_matrix.Data[5] = scale
	out_matrix.Data[10] = scale
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the x axis from the provided
 * angle in degrees.
 */
func NewMat4EulerX(angle_degrees float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(DegToRad(angle_degrees))
	s := ksin(DegToRad(angle_degrees))

	out_matrix.Data[5] = c
	out_matrix.Data[6] = s
	out_matrix.Data[9] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the y axis from the provided
 * angle in degrees.
 */
func NewMat4EulerY(angle_degrees float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(DegToRad(angle_degrees))
	s := ksin(DegToRad(angle_degrees))

	out_matrix.Data[0] = c
	out_matrix.Data[2] = s
	out_matrix.Data[8] = -s
	out_matrix.Data[10] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix around the z axis from the provided
 * angle in degrees.
 */
func NewMat4EulerZ(angle_degrees float32) Mat4 {
	out_matrix := NewMat4Identity()
	c := kcos(DegToRad(angle_degrees))
	s := ksin(DegToRad(angle_degrees))

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}

/**
 * @brief Creates a rotation matrix from the provided x, y and z axis
 * rotations in degrees, applied in x-then-y-then-z order.
 */
func NewMat4EulerRotation(angles_degrees Vec3) Mat4 {
	rx := NewMat4EulerX(angles_degrees.X)
	ry := NewMat4EulerY(angles_degrees.Y)
	rz := NewMat4EulerZ(angles_degrees.Z)
	out_matrix := rx.Mul(ry)
	out_matrix = out_matrix.Mul(rz)
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * The convention is +z forward: a point at camera-space depth d with
 * 0 < d < far_clip ends up with a normalized z below 1.0 after the
 * perspective divide, while a point at or behind the eye plane (or past
 * the far plane) ends up at or above 1.0.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio (viewport width / height).
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	e := 1.0 / ktan(fov_radians*0.5)
	out_matrix := Mat4{}
	out_matrix.Data[0] = e / aspect_ratio
	out_matrix.Data[5] = e
	out_matrix.Data[10] = (far_clip + near_clip) / (far_clip - near_clip)
	out_matrix.Data[11] = -(2.0 * far_clip * near_clip) / (far_clip - near_clip)
	out_matrix.Data[14] = 1.0
	return out_matrix
}

/**
 * @brief Compares all elements of mt and other and ensures the difference
 * is less than tolerance.
 */
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// ------------------------------------------
// Pose
// ------------------------------------------

/**
 * @brief Creates a pose from a position and an orientation in degrees.
 */
func NewPose(position, orientation Vec3) Pose {
	return Pose{Position: position, Orientation: orientation}
}

/**
 * @brief Builds the placement matrix for an object with this pose:
 * translate * scale * rotation, so the rotation is applied first in
 * object-local space and the translation last.
 */
func (p Pose) Matrix(scale float32) Mat4 {
	translate := NewMat4Translation(p.Position)
	s := NewMat4Scale(scale)
	rotate := NewMat4EulerRotation(p.Orientation)
	return translate.Mul(s).Mul(rotate)
}

/**
 * @brief Builds the view matrix for a camera with this pose: the world is
 * translated so the camera sits at the origin, then rotated by the camera
 * orientation. The order matters; rotating before translating would make
 * the camera orbit the world origin instead of turning in place.
 */
func (p Pose) ViewMatrix() Mat4 {
	rotate := NewMat4EulerRotation(p.Orientation)
	translate := NewMat4Translation(p.Position.Negated())
	return rotate.Mul(translate)
}
