package shader

import (
	"github.com/spaghettifunk/terravox/engine/math"
)

/**
 * @brief A single mesh vertex in object (local) space, as streamed by the
 * mesh store. The normal is assumed unit-length or near-unit-length.
 */
type Vertex struct {
	/** @brief The local-space position of the vertex. */
	Position math.Vec3
	/** @brief The texture coordinates of the vertex. */
	TexCoords math.Vec2
	/** @brief The local-space normal of the vertex. */
	Normal math.Vec3
}

/**
 * @brief The per-instance object-to-world transform, encoded as the four
 * columns of a 4x4 matrix in the order the instance buffer packs them.
 * The split across four vectors is a wire contract of the attribute
 * streaming interface and must be preserved exactly.
 */
type InstanceTransform struct {
	Model0 math.Vec4
	Model1 math.Vec4
	Model2 math.Vec4
	Model3 math.Vec4
}

/**
 * @brief Reassembles the instance's 4x4 model matrix from its four columns.
 */
func (it InstanceTransform) ModelMatrix() math.Mat4 {
	return math.NewMat4FromColumns(it.Model0, it.Model1, it.Model2, it.Model3)
}

/**
 * @brief Creates an InstanceTransform from a 4x4 model matrix by splitting
 * it into its four columns.
 */
func NewInstanceTransform(model math.Mat4) InstanceTransform {
	return InstanceTransform{
		Model0: model.Column(0),
		Model1: model.Column(1),
		Model2: model.Column(2),
		Model3: model.Column(3),
	}
}

/**
 * @brief The per-frame uniform block shared read-only by every invocation
 * of a draw. ViewPosition is carried for later pipeline stages and is not
 * read by the vertex transform itself; it is part of the block layout
 * regardless. Never mutated by this package.
 */
type FrameUniforms struct {
	/** @brief The world-space camera position. */
	ViewPosition math.Vec3
	/** @brief The combined world-to-clip transform. */
	ViewProj math.Mat4
}

/**
 * @brief The values a single vertex invocation hands to the rasterizer and
 * the following stage. TexCoords, Normal and Position are interpolated
 * across the primitive; ClipPosition is consumed by the rasterizer only.
 */
type VertexOutput struct {
	/** @brief Texture coordinates, passed through unchanged. */
	TexCoords math.Vec2
	/** @brief The world-space normal. Not renormalized here; consumers
	renormalize if they need unit length. */
	Normal math.Vec3
	/** @brief The world-space position of the vertex. */
	Position math.Vec3
	/** @brief The homogeneous clip-space position. */
	ClipPosition math.Vec4
}
