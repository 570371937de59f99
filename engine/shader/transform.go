package shader

/**
 * @brief TransformVertex is the vertex stage: it maps one object-space
 * vertex and one instance placement to clip space plus the interpolated
 * attributes the next stage consumes.
 *
 * The function is pure and stateless; it is invoked once per
 * (vertex, instance) pair with no ordering guarantee between invocations
 * and must not communicate across them. It has no error surface: a
 * singular model matrix (zero or collapsing scale) makes the inverse
 * undefined and the resulting normal propagates whatever non-finite
 * values the arithmetic produces.
 */
func TransformVertex(v Vertex, inst InstanceTransform, u *FrameUniforms) VertexOutput {
	model := inst.ModelMatrix()

	// Inverse-transpose keeps normals perpendicular to transformed
	// surfaces under non-uniform scale and shear. The upper-left 3x3
	// block is the linear part the normal needs.
	normalMatrix := model.Inverse().Transposed().ToMat3()

	// World position is computed once and reused for the clip position,
	// so the two outputs stay numerically consistent.
	worldPosition := model.MulVec4(v.Position.ToVec4(1.0))

	return VertexOutput{
		TexCoords:    v.TexCoords,
		Normal:       normalMatrix.MulVec3(v.Normal),
		Position:     worldPosition.ToVec3(),
		ClipPosition: u.ViewProj.MulVec4(worldPosition),
	}
}
