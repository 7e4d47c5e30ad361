package battle

import "github.com/gitdmnt/sim-core/internal/fleet"

// Side identifies which fleet a ship belongs to.
type Side string

const (
	SideFriend Side = "friend"
	SideEnemy  Side = "enemy"
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == SideFriend {
		return SideEnemy
	}
	return SideFriend
}

// Phase is the combat phase taxonomy. Only artillery is implemented; air
// combat and torpedo salvo exist so log consumers already know the vocabulary.
type Phase string

const (
	PhaseAirCombat Phase = "air_combat"
	PhaseArtillery Phase = "artillery"
	PhaseTorpedo   Phase = "torpedo"
)

// AttackType mirrors the Phase taxonomy on individual attack records.
type AttackType string

const (
	AttackArtillery AttackType = "artillery"
	AttackTorpedo   AttackType = "torpedo"
	AttackAirStrike AttackType = "air_strike"
)

// EventKind tags the variants of the append-only action log.
type EventKind string

const (
	EventPhaseStart EventKind = "phase_start"
	EventPhaseSkip  EventKind = "phase_skip"
	EventAttack     EventKind = "attack"
	EventTurnSkip   EventKind = "turn_skip"
	EventSunk       EventKind = "sunk"
)

// Turn-skip reasons appearing in the action log.
const (
	ReasonSunk              = "Sunk"
	ReasonFlightDeckDamaged = "Flight Deck is too Damaged"
	ReasonNoValidTargets    = "No Valid Targets"
	ReasonNoBattleship      = "Battleship is not included"
)

// Event is one entry of the action log. Kind decides which fields are
// meaningful; Attack is only set on attack events.
type Event struct {
	Kind      EventKind     `json:"kind"`
	Phase     Phase         `json:"phase,omitempty"`
	Pass      int           `json:"pass,omitempty"`
	Side      Side          `json:"side,omitempty"`
	ShipIndex int           `json:"ship_index"`
	Reason    string        `json:"reason,omitempty"`
	Attack    *AttackRecord `json:"attack,omitempty"`
}

// AttackRecord captures one resolved gunnery exchange. CalculatedDamage is
// the value produced by the damage formulas; AppliedDamage is what actually
// hit the snapshot after the anti-sink rule. IsCritical and IsMiss are
// declared for log consumers but never computed; they stay false.
type AttackRecord struct {
	ToEnemy          bool       `json:"to_enemy"`
	ActorIndex       int        `json:"actor_index"`
	TargetIndex      int        `json:"target_index"`
	Type             AttackType `json:"type"`
	Firepower        int        `json:"firepower"`
	Armor            int        `json:"armor"`
	CalculatedDamage int        `json:"calculated_damage"`
	AppliedDamage    int        `json:"applied_damage"`
	IsCritical       bool       `json:"is_critical"`
	IsMiss           bool       `json:"is_miss"`
}

// Snapshot is the only mutable combat state of a ship: its current HP.
// Snapshots live in parallel arrays indexed like the fleet's ship list.
type Snapshot struct {
	hp int
}

// HP returns the current hit points.
func (s *Snapshot) HP() int { return s.hp }

// Alive reports whether the ship is still afloat.
func (s *Snapshot) Alive() bool { return s.hp > 0 }

// ApplyDamage subtracts damage with saturation at zero.
func (s *Snapshot) ApplyDamage(damage int) {
	if damage >= s.hp {
		s.hp = 0
		return
	}
	s.hp -= damage
}

// Log is the mutable per-battle state: one HP snapshot per ship per side and
// the append-only action log. Entries are never rewritten.
type Log struct {
	friend []Snapshot
	enemy  []Snapshot
	events []Event
}

// NewLog initializes snapshots from the frozen setup, one per ship, at each
// ship's HP at battle entry.
func NewLog(setup *Setup) *Log {
	return &Log{
		friend: snapshotsOf(setup.ships(SideFriend)),
		enemy:  snapshotsOf(setup.ships(SideEnemy)),
	}
}

func snapshotsOf(ships []fleet.Ship) []Snapshot {
	out := make([]Snapshot, len(ships))
	for i := range ships {
		out[i] = Snapshot{hp: ships[i].HP()}
	}
	return out
}

// Snapshots returns the mutable snapshot array for a side.
func (l *Log) Snapshots(side Side) []Snapshot {
	if side == SideFriend {
		return l.friend
	}
	return l.enemy
}

// AliveIndices returns the fleet indices of ships still afloat, ascending.
// The engine recomputes this for every attack so a ship sunk mid-phase drops
// out of targeting immediately.
func (l *Log) AliveIndices(side Side) []int {
	snaps := l.Snapshots(side)
	out := make([]int, 0, len(snaps))
	for i := range snaps {
		if snaps[i].Alive() {
			out = append(out, i)
		}
	}
	return out
}

func (l *Log) push(e Event) {
	l.events = append(l.events, e)
}

// Events returns the recorded action log in order.
func (l *Log) Events() []Event { return l.events }
