package geometry

import (
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Cross collinear", func(t *testing.T) {
		if got := v1.Cross(v1.Mul(-3)); got != 0 {
			t.Errorf("Cross of collinear vectors = %v; want 0", got)
		}
	})
}

func TestVector_Unit(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector2D
		want   Vector2D
		wantOk bool
	}{
		{"3-4-5", Vector2D{3, 4}, Vector2D{0.6, 0.8}, true},
		{"negative axis", Vector2D{0, -2}, Vector2D{0, -1}, true},
		{"tiny but non-zero", Vector2D{1e-12, 0}, Vector2D{1, 0}, true},
		{"zero", Vector2D{0, 0}, Vector2D{0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.v.Unit()
			if ok != tt.wantOk || !got.Eq(tt.want) {
				t.Errorf("%v.Unit() = %v, %v; want %v, %v", tt.v, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestVector_UnitOr(t *testing.T) {
	if got := (Vector2D{}).UnitOr(DefaultHeading); got != DefaultHeading {
		t.Errorf("zero.UnitOr(default) = %v; want %v", got, DefaultHeading)
	}
	got := Vector2D{-5, 0}.UnitOr(DefaultHeading)
	if !got.Eq(Vector2D{-1, 0}) {
		t.Errorf("UnitOr = %v; want (-1, 0)", got)
	}
	if !floatEquals(got.Len(), 1) {
		t.Errorf("UnitOr length = %v; want 1", got.Len())
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4}

	if got := v.Len(); got != 5 {
		t.Errorf("Len = %v; want 5", got)
	}
	if got := v.LenSqr(); got != 25 {
		t.Errorf("LenSqr = %v; want 25", got)
	}
	if got := (Vector2D{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5}

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}
	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Wrap(t *testing.T) {
	tests := []struct {
		name string
		v    Vector2D
		size float64
		want Vector2D
	}{
		{"inside", Vector2D{2, 3}, 10, Vector2D{2, 3}},
		{"past right edge", Vector2D{10.02, 5}, 10, Vector2D{0.02, 5}},
		{"negative", Vector2D{-0.5, -10.5}, 10, Vector2D{9.5, 9.5}},
		{"exact edge", Vector2D{10, 0}, 10, Vector2D{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Wrap(tt.size)
			if !got.EqTol(tt.want, 1e-12) {
				t.Errorf("%v.Wrap(%v) = %v; want %v", tt.v, tt.size, got, tt.want)
			}
			if got.X < 0 || got.X >= tt.size || got.Y < 0 || got.Y >= tt.size {
				t.Errorf("%v.Wrap(%v) = %v; outside [0, %v)", tt.v, tt.size, got, tt.size)
			}
		})
	}
}

func TestVector_Angle(t *testing.T) {
	tests := []struct {
		v    Vector2D
		want float64
	}{
		{Vector2D{1, 0}, 0},
		{Vector2D{0, 1}, math.Pi / 2},
		{Vector2D{-1, 0}, math.Pi},
		{Vector2D{0, -1}, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.want) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.want)
		}
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}
	if !v.Eq(Vector2D{1 + Epsilon/2, 2 - Epsilon/2}) {
		t.Error("Eq epsilon match failed")
	}
	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}
