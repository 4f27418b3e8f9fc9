package wellness

import "math"

// Normalization caps: the value at which a metric's contribution saturates.
const (
	CapSleep       = 9.0  // hours
	CapHealthyFood = 5.0  // portions
	CapJunkFood    = 5.0  // items (fewer is better)
	CapExercise    = 60.0 // minutes
	CapWater       = 8.0  // glasses
	CapReading     = 60.0 // minutes
)

// Weights sum to 1.0, so the composite stays in [0,1] for in-domain input.
const (
	weightSleep       = 0.18
	weightHealthyFood = 0.18
	weightJunkFood    = 0.12
	weightExercise    = 0.20
	weightWater       = 0.16
	weightReading     = 0.16
)

// CompositeScore collapses one day's six fixed metrics into a single [0,1]
// score. Each metric is divided by its cap and clamped at 1.0; junk food is
// inverted (fewer items score higher). Custom habits do not participate.
//
// Negative inputs are out of domain and deliberately not clamped at zero;
// the result is merely meaningless, never a panic.
func CompositeScore(rec Record) float64 {
	s := capped(rec.Sleep, CapSleep)
	hf := capped(rec.HealthyFood, CapHealthyFood)
	jf := 1 - capped(rec.JunkFood, CapJunkFood)
	ex := capped(rec.Exercise, CapExercise)
	w := capped(rec.Water, CapWater)
	r := capped(rec.Reading, CapReading)

	return weightSleep*s + weightHealthyFood*hf + weightJunkFood*jf +
		weightExercise*ex + weightWater*w + weightReading*r
}

func capped(v, cap float64) float64 { return math.Min(v/cap, 1.0) }
