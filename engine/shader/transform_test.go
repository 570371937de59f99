package shader

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/terravox/engine/math"
)

const testTolerance float32 = 1e-5

func identityUniforms() *FrameUniforms {
	return &FrameUniforms{
		ViewPosition: math.NewVec3Zero(),
		ViewProj:     math.NewMat4Identity(),
	}
}

func testVertex() Vertex {
	return Vertex{
		Position:  math.NewVec3(1, 2, 3),
		TexCoords: math.NewVec2(0.25, 0.75),
		Normal:    math.NewVec3(0, 1, 0),
	}
}

func TestTransformIdentity(t *testing.T) {
	v := testVertex()
	out := TransformVertex(v, NewInstanceTransform(math.NewMat4Identity()), identityUniforms())

	if !out.Position.Compare(v.Position, testTolerance) {
		t.Errorf("position = %+v, want %+v", out.Position, v.Position)
	}
	if !out.Normal.Compare(v.Normal, testTolerance) {
		t.Errorf("normal = %+v, want %+v", out.Normal, v.Normal)
	}
}

func TestTransformTranslationLeavesNormal(t *testing.T) {
	tests := []struct {
		name   string
		offset math.Vec3
	}{
		{"positive offset", math.NewVec3(10, 20, 30)},
		{"negative offset", math.NewVec3(-4, 0, 7)},
		{"large offset", math.NewVec3(1e4, -1e4, 1e4)},
	}
	v := testVertex()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := math.NewMat4Translation(tt.offset)
			out := TransformVertex(v, NewInstanceTransform(model), identityUniforms())
			if !out.Normal.Compare(v.Normal, testTolerance) {
				t.Errorf("normal = %+v, want unchanged %+v", out.Normal, v.Normal)
			}
			want := v.Position.Add(tt.offset)
			if !out.Position.Compare(want, testTolerance) {
				t.Errorf("position = %+v, want %+v", out.Position, want)
			}
		})
	}
}

func TestTransformUniformScaleKeepsNormalDirection(t *testing.T) {
	v := Vertex{
		Position: math.NewVec3(1, 1, 1),
		Normal:   math.NewVec3(1, 2, 2).Normalized(),
	}
	model := math.NewMat4Scale(math.NewVec3(3, 3, 3))
	out := TransformVertex(v, NewInstanceTransform(model), identityUniforms())

	// Direction preserved; the magnitude may scale by 1/s, so compare
	// normalized copies.
	got := out.Normal.Normalized()
	if !got.Compare(v.Normal, testTolerance) {
		t.Errorf("normal direction = %+v, want %+v", got, v.Normal)
	}
}

func TestTransformNonUniformScaleNormalStaysPerpendicular(t *testing.T) {
	// For any model matrix, a normal perpendicular to a surface tangent
	// must remain perpendicular to the transformed tangent. Direct
	// application of the model matrix would skew it; the inverse
	// transpose must not.
	tests := []struct {
		name  string
		model math.Mat4
	}{
		{"non-uniform scale", math.NewMat4Scale(math.NewVec3(2, 1, 0.5))},
		{"scale and rotation", math.NewMat4EulerZ(0.6).Mul(math.NewMat4Scale(math.NewVec3(4, 1, 1)))},
		{"scale rotation translation", math.NewMat4Translation(math.NewVec3(3, -2, 5)).Mul(math.NewMat4EulerX(1.1)).Mul(math.NewMat4Scale(math.NewVec3(0.25, 3, 1)))},
	}
	normal := math.NewVec3(0, 0, 1)
	tangents := []math.Vec3{
		math.NewVec3(1, 0, 0),
		math.NewVec3(0, 1, 0),
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vertex{Normal: normal}
			out := TransformVertex(v, NewInstanceTransform(tt.model), identityUniforms())
			linear := tt.model.ToMat3()
			for _, tangent := range tangents {
				transformedTangent := linear.MulVec3(tangent)
				dot := out.Normal.Dot(transformedTangent)
				if kabs32(dot) > 1e-4 {
					t.Errorf("normal %+v not perpendicular to transformed tangent %+v (dot=%v)", out.Normal, transformedTangent, dot)
				}
			}
		})
	}
}

func TestTransformClipMatchesComposition(t *testing.T) {
	v := testVertex()
	model := math.NewMat4Translation(math.NewVec3(1, 2, 3)).Mul(math.NewMat4Scale(math.NewVec3(2, 2, 2)))
	u := &FrameUniforms{
		ViewPosition: math.NewVec3(0, 5, 10),
		ViewProj:     math.NewMat4Perspective(math.K_PI/4, 16.0/9.0, 0.1, 100.0),
	}
	out := TransformVertex(v, NewInstanceTransform(model), u)

	want := u.ViewProj.MulVec4(model.MulVec4(v.Position.ToVec4(1.0)))
	if out.ClipPosition != want {
		t.Errorf("clip position = %+v, want exact %+v", out.ClipPosition, want)
	}

	// World position and clip position must derive from the same
	// intermediate value.
	world := model.MulVec4(v.Position.ToVec4(1.0))
	if out.Position != world.ToVec3() {
		t.Errorf("world position = %+v, want exact %+v", out.Position, world.ToVec3())
	}
}

func TestTransformTexCoordsPassThrough(t *testing.T) {
	tests := []struct {
		name string
		uv   math.Vec2
	}{
		{"zero", math.NewVec2(0, 0)},
		{"atlas tile", math.NewVec2(0.125, 0.0625)},
		{"outside unit range", math.NewVec2(-3, 42)},
	}
	model := math.NewMat4EulerY(1.3).Mul(math.NewMat4Scale(math.NewVec3(5, 1, 9)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Vertex{TexCoords: tt.uv, Normal: math.NewVec3Up()}
			out := TransformVertex(v, NewInstanceTransform(model), identityUniforms())
			if out.TexCoords != tt.uv {
				t.Errorf("tex coords = %+v, want exact %+v", out.TexCoords, tt.uv)
			}
		})
	}
}

func TestTransformEndToEndIdentity(t *testing.T) {
	v := Vertex{Position: math.NewVec3(1, 0, 0)}
	out := TransformVertex(v, NewInstanceTransform(math.NewMat4Identity()), identityUniforms())

	wantClip := math.NewVec4(1, 0, 0, 1)
	if !out.ClipPosition.Compare(wantClip, testTolerance) {
		t.Errorf("clip position = %+v, want %+v", out.ClipPosition, wantClip)
	}
	wantPos := math.NewVec3(1, 0, 0)
	if !out.Position.Compare(wantPos, testTolerance) {
		t.Errorf("position = %+v, want %+v", out.Position, wantPos)
	}
}

func TestTransformEndToEndNonUniformScaleNormal(t *testing.T) {
	// scale(2,1,1): the inverse-transpose scales x by 1/2 and leaves y
	// alone, so a +y normal passes through with magnitude 1.
	v := Vertex{Normal: math.NewVec3(0, 1, 0)}
	model := math.NewMat4Scale(math.NewVec3(2, 1, 1))
	out := TransformVertex(v, NewInstanceTransform(model), identityUniforms())

	if out.Normal.Y <= 0 {
		t.Errorf("normal y sign flipped: %+v", out.Normal)
	}
	dir := out.Normal.Normalized()
	if !dir.Compare(math.NewVec3(0, 1, 0), testTolerance) {
		t.Errorf("normal direction = %+v, want +y", dir)
	}
	if kabs32(out.Normal.Length()-1.0) > testTolerance {
		t.Errorf("normal magnitude = %v, want 1", out.Normal.Length())
	}
}

func TestTransformSingularModelPropagatesNonFinite(t *testing.T) {
	// Zero scale on x: the inverse is undefined. The degenerate output
	// is accepted, not detected; it just must not panic.
	v := testVertex()
	model := math.NewMat4Scale(math.NewVec3(0, 1, 1))
	out := TransformVertex(v, NewInstanceTransform(model), identityUniforms())

	finite := func(f float32) bool {
		return !m.IsNaN(float64(f)) && !m.IsInf(float64(f), 0)
	}
	if finite(out.Normal.X) && finite(out.Normal.Y) && finite(out.Normal.Z) {
		t.Errorf("normal = %+v, want non-finite components for a singular model matrix", out.Normal)
	}
	// The positions do not involve the inverse and stay well-defined.
	if !finite(out.Position.X) || !finite(out.Position.Y) || !finite(out.Position.Z) {
		t.Errorf("position = %+v, want finite", out.Position)
	}
}

func TestInstanceTransformColumnRoundTrip(t *testing.T) {
	model := math.NewMat4Translation(math.NewVec3(9, 8, 7)).Mul(math.NewMat4EulerZ(0.3))
	it := NewInstanceTransform(model)
	if got := it.ModelMatrix(); !got.Compare(model, 0) {
		t.Errorf("ModelMatrix() = %+v, want %+v", got, model)
	}
}

func kabs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
