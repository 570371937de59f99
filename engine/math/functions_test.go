package math

import (
	m "math"
	"testing"
)

const testTolerance float32 = 1e-5

func TestMat4MulIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", NewMat4Identity()},
		{"translation", NewMat4Translation(NewVec3(1, -2, 3))},
		{"scale", NewMat4Scale(NewVec3(2, 3, 4))},
		{"euler y", NewMat4EulerY(K_HALF_PI)},
	}
	id := NewMat4Identity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Mul(id); !got.Compare(tt.m, testTolerance) {
				t.Errorf("m * I = %+v, want %+v", got, tt.m)
			}
			if got := id.Mul(tt.m); !got.Compare(tt.m, testTolerance) {
				t.Errorf("I * m = %+v, want %+v", got, tt.m)
			}
		})
	}
}

func TestMat4MulCompositionOrder(t *testing.T) {
	// Translate then scale: scale.Mul(translate) must scale the
	// translated point, not the other way around.
	translate := NewMat4Translation(NewVec3(1, 0, 0))
	scale := NewMat4Scale(NewVec3(2, 2, 2))
	p := NewVec4(1, 0, 0, 1)

	got := scale.Mul(translate).MulVec4(p)
	want := NewVec4(4, 0, 0, 1)
	if !got.Compare(want, testTolerance) {
		t.Errorf("scale*translate applied to %+v = %+v, want %+v", p, got, want)
	}

	got = translate.Mul(scale).MulVec4(p)
	want = NewVec4(3, 0, 0, 1)
	if !got.Compare(want, testTolerance) {
		t.Errorf("translate*scale applied to %+v = %+v, want %+v", p, got, want)
	}
}

func TestMat4MulVec4(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		v    Vec4
		want Vec4
	}{
		{"identity", NewMat4Identity(), NewVec4(1, 2, 3, 1), NewVec4(1, 2, 3, 1)},
		{"translation point", NewMat4Translation(NewVec3(10, 20, 30)), NewVec4(1, 2, 3, 1), NewVec4(11, 22, 33, 1)},
		{"translation direction", NewMat4Translation(NewVec3(10, 20, 30)), NewVec4(1, 2, 3, 0), NewVec4(1, 2, 3, 0)},
		{"scale", NewMat4Scale(NewVec3(2, 3, 4)), NewVec4(1, 1, 1, 1), NewVec4(2, 3, 4, 1)},
		{"rotate z 90deg", NewMat4EulerZ(K_HALF_PI), NewVec4(1, 0, 0, 0), NewVec4(0, 1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec4(tt.v); !got.Compare(tt.want, testTolerance) {
				t.Errorf("MulVec4(%+v) = %+v, want %+v", tt.v, got, tt.want)
			}
		})
	}
}

func TestMat4Inverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", NewMat4Identity()},
		{"translation", NewMat4Translation(NewVec3(5, -3, 2))},
		{"uniform scale", NewMat4Scale(NewVec3(2, 2, 2))},
		{"non-uniform scale", NewMat4Scale(NewVec3(2, 1, 0.5))},
		{"rotation", NewMat4EulerX(0.7)},
		{"composed", NewMat4Translation(NewVec3(1, 2, 3)).Mul(NewMat4EulerY(0.4)).Mul(NewMat4Scale(NewVec3(3, 1, 2)))},
	}
	id := NewMat4Identity()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Inverse()
			if got := tt.m.Mul(inv); !got.Compare(id, testTolerance) {
				t.Errorf("m * m^-1 = %+v, want identity", got)
			}
			if got := inv.Mul(tt.m); !got.Compare(id, testTolerance) {
				t.Errorf("m^-1 * m = %+v, want identity", got)
			}
		})
	}
}

func TestMat4InverseSingular(t *testing.T) {
	// Zero scale on one axis collapses the matrix. The inverse is
	// undefined and must propagate non-finite values untouched.
	singular := NewMat4Scale(NewVec3(0, 1, 1))
	inv := singular.Inverse()
	finite := true
	for _, e := range inv.Data {
		if m.IsInf(float64(e), 0) || m.IsNaN(float64(e)) {
			finite = false
			break
		}
	}
	if finite {
		t.Errorf("inverse of singular matrix = %+v, want non-finite elements", inv)
	}
}

func TestMat4Transposed(t *testing.T) {
	mt := NewMat4Translation(NewVec3(1, 2, 3))
	tr := mt.Transposed()
	if tr.Data[3] != 1 || tr.Data[7] != 2 || tr.Data[11] != 3 {
		t.Errorf("transposed translation rows wrong: %+v", tr)
	}
	if got := tr.Transposed(); !got.Compare(mt, 0) {
		t.Errorf("double transpose = %+v, want original", got)
	}
}

func TestMat4FromColumnsRoundTrip(t *testing.T) {
	c0 := NewVec4(1, 2, 3, 4)
	c1 := NewVec4(5, 6, 7, 8)
	c2 := NewVec4(9, 10, 11, 12)
	c3 := NewVec4(13, 14, 15, 16)
	mt := NewMat4FromColumns(c0, c1, c2, c3)
	for i, want := range []Vec4{c0, c1, c2, c3} {
		if got := mt.Column(i); !got.Compare(want, 0) {
			t.Errorf("Column(%d) = %+v, want %+v", i, got, want)
		}
	}
}

func TestMat4ToMat3(t *testing.T) {
	mt := NewMat4Translation(NewVec3(7, 8, 9)).Mul(NewMat4Scale(NewVec3(2, 3, 4)))
	m3 := mt.ToMat3()
	// The translation must be gone, the scale kept.
	got := m3.MulVec3(NewVec3(1, 1, 1))
	want := NewVec3(2, 3, 4)
	if !got.Compare(want, testTolerance) {
		t.Errorf("ToMat3().MulVec3 = %+v, want %+v", got, want)
	}
}

func TestVec3Ops(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)
	if got := a.Cross(b); !got.Compare(NewVec3(0, 0, 1), 0) {
		t.Errorf("x cross y = %+v, want z", got)
	}
	if got := a.Dot(b); got != 0 {
		t.Errorf("x dot y = %v, want 0", got)
	}
	if got := NewVec3(3, 4, 0).Length(); kabs(got-5) > testTolerance {
		t.Errorf("length = %v, want 5", got)
	}
	if got := NewVec3(0, 0, 9).Normalized(); !got.Compare(NewVec3(0, 0, 1), testTolerance) {
		t.Errorf("normalized = %+v, want unit z", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name            string
		v, lo, hi, want float32
	}{
		{"below", -1, 0, 1, 0},
		{"inside", 0.5, 0, 1, 0.5},
		{"above", 2, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}
