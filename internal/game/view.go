package game

import (
	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
)

// agentShape is the triangle drawn for every agent, in arena units, pointing
// along +x with its tip on the agent position.
var agentShape = [3]geometry.Vector2D{{X: 0, Y: 0}, {X: -0.2, Y: -0.1}, {X: -0.2, Y: 0.1}}

// viewport maps arena coordinates (y up) to screen pixels (y down).
type viewport struct {
	originX, originY float64 // screen position of arena (0, 0)
	scale            float64 // pixels per arena unit
}

func newViewport(left, top, size, arenaSize float64) viewport {
	return viewport{
		originX: left,
		originY: top + size,
		scale:   size / arenaSize,
	}
}

func (v viewport) toScreen(p geometry.Vector2D) (float32, float32) {
	return float32(v.originX + p.X*v.scale), float32(v.originY - p.Y*v.scale)
}

func (v viewport) length(d float64) float32 {
	return float32(d * v.scale)
}

// triangle returns agentShape rotated onto heading and moved to pos.
// A zero heading keeps the shape unrotated.
func triangle(pos, heading geometry.Vector2D) [3]geometry.Vector2D {
	h := heading.UnitOr(geometry.DefaultHeading)
	perp := geometry.Vector2D{X: -h.Y, Y: h.X}
	var out [3]geometry.Vector2D
	for i, p := range agentShape {
		out[i] = pos.Add(h.Mul(p.X)).Add(perp.Mul(p.Y))
	}
	return out
}
