package math

// Vec2 represents a 2D vector, also used for screen-space pixel coordinates.
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector. It doubles as a point (a position in some
// coordinate frame) and as a direction/delta; the distinction is semantic
// only, callers document which one they mean.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector, used as the homogeneous form of a Vec3.
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A 4x4 transformation matrix.
 *
 * Elements are stored flat in row-major order:
 *
 *   | 0  1  2  3  |
 *   | 4  5  6  7  |
 *   | 8  9  10 11 |
 *   | 12 13 14 15 |
 *
 * Matrices apply to column vectors (out = M * v), so in a product A.Mul(B)
 * the matrix B is applied first. Translation lives in elements 3, 7 and 11.
 */
type Mat4 struct {
	/** @brief The matrix elements. */
	Data [16]float32
}

/**
 * @brief The pose of an object or camera in world space.
 *
 * Orientation holds Euler angles in degrees, one per axis, applied in
 * X-then-Y-then-Z order. Both the mesh placement transform and the camera
 * view transform are built from the same Pose value.
 */
type Pose struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation around each axis, in degrees. */
	Orientation Vec3
}
