package simulation

// Capture is the outcome of the per-step termination query.
type Capture struct {
	Closest     int
	MinDistance float64
	Caught      bool
}

// CheckCapture evaluates the termination rule on the distance snapshot taken before
// the prey moved. closest must be the index the flee rule used for the same snapshot.
// The prey is caught when that distance is strictly below safety.
func CheckCapture(dists []float64, closest int, safety float64) Capture {
	if closest < 0 || closest >= len(dists) {
		return Capture{Closest: -1}
	}
	d := dists[closest]
	return Capture{Closest: closest, MinDistance: d, Caught: d < safety}
}
