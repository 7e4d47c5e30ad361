package battle

// DamagedLevel is the discretized damage tier of a ship, derived from its
// current HP ratio. It is never stored; compute it fresh from a snapshot.
type DamagedLevel int

const (
	NoDamage DamagedLevel = iota
	Minor
	Moderate
	Heavy
	Sunk
)

// DamagedLevelOf derives the tier from current and maximum HP.
// Thresholds: NoDamage >75%, Minor >50%, Moderate >25%, Heavy >0%, Sunk =0.
func DamagedLevelOf(nowHP, maxHP int) DamagedLevel {
	if nowHP <= 0 {
		return Sunk
	}
	ratio := float64(nowHP) / float64(maxHP)
	switch {
	case ratio <= 0.25:
		return Heavy
	case ratio <= 0.5:
		return Moderate
	case ratio <= 0.75:
		return Minor
	default:
		return NoDamage
	}
}

// Factor returns the firepower multiplier applied to a ship attacking at
// this damage tier.
func (l DamagedLevel) Factor() float64 {
	switch l {
	case Moderate:
		return 0.7
	case Heavy:
		return 0.4
	case Sunk:
		return 0.0
	default:
		return 1.0
	}
}

func (l DamagedLevel) String() string {
	switch l {
	case NoDamage:
		return "no_damage"
	case Minor:
		return "minor"
	case Moderate:
		return "moderate"
	case Heavy:
		return "heavy"
	case Sunk:
		return "sunk"
	}
	return "no_damage"
}
