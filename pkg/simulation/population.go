package simulation

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-chase-simulation/pkg/geometry"
)

// MinPopulation is the smallest allowed pursuer/follower count.
const MinPopulation = 1

// Population stores the pursuer/follower positions and the distinguished agent
// (prey or lead). Agents are identified by index only.
type Population struct {
	agents        []geometry.Vector2D
	distinguished geometry.Vector2D
	max           int
}

// NewPopulation returns an empty store accepting sizes in [MinPopulation, max].
func NewPopulation(max int) Population {
	if max < MinPopulation {
		max = MinPopulation
	}
	return Population{max: max}
}

// Max is the largest size Replace accepts.
func (p *Population) Max() int { return p.max }

// Len is the current number of pursuers/followers.
func (p *Population) Len() int { return len(p.agents) }

// Positions returns a copy of the pursuer/follower positions in index order.
func (p *Population) Positions() []geometry.Vector2D {
	out := make([]geometry.Vector2D, len(p.agents))
	copy(out, p.agents)
	return out
}

// Position returns the position of agent i.
func (p *Population) Position(i int) geometry.Vector2D { return p.agents[i] }

// Distinguished returns the prey/lead position.
func (p *Population) Distinguished() geometry.Vector2D { return p.distinguished }

// SetPosition overwrites agent i in place.
func (p *Population) SetPosition(i int, v geometry.Vector2D) { p.agents[i] = v }

// SetDistinguished overwrites the prey/lead position.
func (p *Population) SetDistinguished(v geometry.Vector2D) { p.distinguished = v }

// Replace discards every pursuer/follower and draws n fresh positions from sample.
// It panics when n is outside [MinPopulation, Max()]; callers clamp first.
func (p *Population) Replace(n int, sample PointSampler) []geometry.Vector2D {
	if n < MinPopulation || n > p.max {
		panic(fmt.Sprintf("simulation: population size %d outside [%d, %d]", n, MinPopulation, p.max))
	}
	agents := make([]geometry.Vector2D, n)
	for i := range agents {
		agents[i] = sample()
	}
	p.agents = agents
	return p.Positions()
}

// Clone returns a copy that shares no memory with p.
func (p Population) Clone() Population {
	p.agents = append([]geometry.Vector2D(nil), p.agents...)
	return p
}
