package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief A 4x4 matrix, typically used to represent object transformations.
 * Storage is column-major: Data[col*4+row], so the translation part of an
 * affine transform lives in Data[12..14].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief A 3x3 matrix, column-major (Data[col*3+row]). Used for the linear
 * part of a transform, most notably the normal matrix.
 */
type Mat3 struct {
	/** @brief The matrix elements */
	Data [9]float32
}
