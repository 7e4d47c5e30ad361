package battle

import "math/rand"

// Direction is the engagement geometry drawn once at battle start. It only
// influences combat through its firepower correction factor.
type Direction int

const (
	DirectionSame Direction = iota
	DirectionAgainst
	DirectionTAdvantage
	DirectionTDisadvantage
)

// DrawDirection picks the engagement geometry with the fixed probabilities
// 45% same course, 30% opposite course, 15% crossing-the-T advantage and
// 10% disadvantage.
func DrawDirection(rng *rand.Rand) Direction {
	r := rng.Float64()
	switch {
	case r < 0.45:
		return DirectionSame
	case r < 0.75:
		return DirectionAgainst
	case r < 0.9:
		return DirectionTAdvantage
	default:
		return DirectionTDisadvantage
	}
}

// Factor returns the firepower correction multiplier for this geometry.
func (d Direction) Factor() float64 {
	switch d {
	case DirectionAgainst:
		return 0.8
	case DirectionTAdvantage:
		return 1.2
	case DirectionTDisadvantage:
		return 0.6
	default:
		return 1.0
	}
}

func (d Direction) String() string {
	switch d {
	case DirectionSame:
		return "same"
	case DirectionAgainst:
		return "against"
	case DirectionTAdvantage:
		return "t_advantage"
	case DirectionTDisadvantage:
		return "t_disadvantage"
	}
	return "same"
}
