package simulation

import (
	"math"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
)

// Seek returns the displacement moving self toward target at speed.
// It is zero when self and target coincide.
func Seek(self, target geometry.Vector2D, speed float64) geometry.Vector2D {
	dir, ok := target.Sub(self).Unit()
	if !ok {
		return geometry.Vector2D{}
	}
	return dir.Mul(speed)
}

// Flee returns the displacement moving self directly away from threat at speed.
// It is zero when self and threat coincide.
func Flee(self, threat geometry.Vector2D, speed float64) geometry.Vector2D {
	return Seek(threat, self, speed)
}

// Distances returns |agents[i] - target| for every agent.
func Distances(agents []geometry.Vector2D, target geometry.Vector2D) []float64 {
	dists := make([]float64, len(agents))
	for i, a := range agents {
		dists[i] = a.DistanceTo(target)
	}
	return dists
}

// Closest returns the index of the smallest distance, keeping the first one on ties.
// It returns -1 for an empty slice.
func Closest(dists []float64) int {
	closest := -1
	minDist := math.Inf(1)
	for i, d := range dists {
		if d < minDist {
			minDist = d
			closest = i
		}
	}
	return closest
}

// Repulsion sums the push agent i receives from every other agent closer than radius.
// Coincident agents (separation exactly 0) exert nothing on each other.
func Repulsion(agents []geometry.Vector2D, i int, radius, strength float64) geometry.Vector2D {
	var push geometry.Vector2D
	me := agents[i]
	for j, other := range agents {
		if j == i {
			continue
		}
		diff := me.Sub(other)
		dist := diff.Len()
		if dist < radius && dist != 0 {
			push = push.Add(diff.Mul(strength / dist))
		}
	}
	return push
}

// Heading is the unit vector from `from` to `to`, or geometry.DefaultHeading when they coincide.
func Heading(from, to geometry.Vector2D) geometry.Vector2D {
	return to.Sub(from).UnitOr(geometry.DefaultHeading)
}

// MoveTowards computes one step for a whole population chasing target.
// Every displacement is derived from the agents slice as given; the result is a new
// slice, so no agent ever sees another agent's updated position within the step.
func MoveTowards(agents []geometry.Vector2D, target geometry.Vector2D, speed, radius, strength float64) []geometry.Vector2D {
	next := make([]geometry.Vector2D, len(agents))
	for i, a := range agents {
		d := Seek(a, target, speed).Add(Repulsion(agents, i, radius, strength))
		next[i] = a.Add(d)
	}
	return next
}

// Headings returns the facing of each agent toward target.
func Headings(agents []geometry.Vector2D, target geometry.Vector2D) []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(agents))
	for i, a := range agents {
		out[i] = Heading(a, target)
	}
	return out
}
