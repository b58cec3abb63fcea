package game

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
)

func TestViewport(t *testing.T) {
	v := newViewport(240, 20, 560, 10)
	tests := []struct {
		p      geometry.Vector2D
		wx, wy float32
	}{
		{geometry.Vector2D{X: 0, Y: 0}, 240, 580},
		{geometry.Vector2D{X: 10, Y: 10}, 800, 20},
		{geometry.Vector2D{X: 5, Y: 2.5}, 520, 440},
	}
	for _, tt := range tests {
		x, y := v.toScreen(tt.p)
		if x != tt.wx || y != tt.wy {
			t.Errorf("toScreen(%v) = (%v, %v); want (%v, %v)", tt.p, x, y, tt.wx, tt.wy)
		}
	}
	if got := v.length(1); got != 56 {
		t.Errorf("length(1) = %v; want 56", got)
	}
}

func TestTriangle(t *testing.T) {
	const tol = 1e-9
	pos := geometry.Vector2D{X: 3, Y: 4}

	tests := []struct {
		name    string
		heading geometry.Vector2D
		want    [3]geometry.Vector2D
	}{
		{"along x", geometry.Vector2D{X: 1, Y: 0}, [3]geometry.Vector2D{{X: 3, Y: 4}, {X: 2.8, Y: 3.9}, {X: 2.8, Y: 4.1}}},
		{"along y", geometry.Vector2D{X: 0, Y: 1}, [3]geometry.Vector2D{{X: 3, Y: 4}, {X: 3.1, Y: 3.8}, {X: 2.9, Y: 3.8}}},
		{"zero heading", geometry.Vector2D{}, [3]geometry.Vector2D{{X: 3, Y: 4}, {X: 2.8, Y: 3.9}, {X: 2.8, Y: 4.1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := triangle(pos, tt.heading)
			for i := range got {
				if !got[i].EqTol(tt.want[i], tol) {
					t.Errorf("vertex %d = %v; want %v", i, got[i], tt.want[i])
				}
			}
		})
	}

	// the tip leads: it is the vertex furthest along the heading
	h := geometry.Vector2D{X: 0.6, Y: -0.8}
	tri := triangle(pos, h)
	if tri[0].Dot(h) <= tri[1].Dot(h) || math.Abs(tri[1].Dot(h)-tri[2].Dot(h)) > tol {
		t.Errorf("triangle %v does not point along %v", tri, h)
	}
}
