package fleet

import (
	"encoding/json"

	"github.com/gitdmnt/sim-core/internal/logging"
)

// FleetLike is the capability shared by the player fleet and enemy fleet
// variants: an ordered ship list (index 0 is the flagship) plus formation
// access. The battle engine and the host boundary only ever talk to fleets
// through this interface.
type FleetLike interface {
	Ships() []Ship
	Formation() Formation
	SetFormationDefault()

	// Validate checks data received from the front end and repairs what it
	// can. A missing formation is defaulted; an empty ship list is
	// unrecoverable and returns false.
	Validate() bool
}

// Fleet is the player-side fleet.
type Fleet struct {
	ships     []Ship
	formation Formation
}

// EnemyFleet is one enemy composition variant: the ships plus the sortie
// location it appears at and the probability of drawing it from the pool.
type EnemyFleet struct {
	area        int
	mapID       int
	node        string
	probability float64
	ships       []Ship
	formation   Formation
}

// NewFleet builds a fleet programmatically. Pass an empty formation to leave
// it unset (Validate will default it).
func NewFleet(ships []Ship, formation Formation) *Fleet {
	return &Fleet{ships: ships, formation: formation}
}

// NewEnemyFleet builds an enemy fleet variant programmatically.
func NewEnemyFleet(area, mapID int, node string, probability float64, ships []Ship, formation Formation) *EnemyFleet {
	return &EnemyFleet{
		area:        area,
		mapID:       mapID,
		node:        node,
		probability: probability,
		ships:       ships,
		formation:   formation,
	}
}

func (f *Fleet) Ships() []Ship        { return f.ships }
func (f *Fleet) Formation() Formation { return f.formation }
func (f *Fleet) SetFormationDefault() { f.formation = FormationLineAhead }

func (f *EnemyFleet) Ships() []Ship        { return f.ships }
func (f *EnemyFleet) Formation() Formation { return f.formation }
func (f *EnemyFleet) SetFormationDefault() { f.formation = FormationLineAhead }

// Probability returns the weight used for enemy-pool selection.
func (f *EnemyFleet) Probability() float64 { return f.probability }

// Node returns the sortie node label this variant appears at.
func (f *EnemyFleet) Node() string { return f.node }

func (f *Fleet) Validate() bool      { return validate(f) }
func (f *EnemyFleet) Validate() bool { return validate(f) }

func validate(f FleetLike) bool {
	if len(f.Ships()) == 0 {
		logging.Warn("fleet is empty", nil)
		return false
	}
	if f.Formation() == "" {
		logging.Warn("fleet formation is not set, defaulting to line ahead", nil)
		f.SetFormationDefault()
	}
	return true
}

// Clone deep-copies the fleet so an in-flight battle is isolated from later
// mutation of the caller's data.
func (f *Fleet) Clone() *Fleet {
	return &Fleet{ships: cloneShips(f.ships), formation: f.formation}
}

// Clone deep-copies the enemy fleet.
func (f *EnemyFleet) Clone() *EnemyFleet {
	out := *f
	out.ships = cloneShips(f.ships)
	return &out
}

func cloneShips(ships []Ship) []Ship {
	if ships == nil {
		return nil
	}
	out := make([]Ship, len(ships))
	for i := range ships {
		out[i] = ships[i].clone()
	}
	return out
}

type fleetJSON struct {
	Ships     []Ship    `json:"ships"`
	Formation Formation `json:"formation,omitempty"`
}

type enemyFleetJSON struct {
	Area        int       `json:"area"`
	Map         int       `json:"map"`
	Node        string    `json:"node"`
	Probability float64   `json:"probability"`
	Ships       []Ship    `json:"ships"`
	Formation   Formation `json:"formation,omitempty"`
}

func (f *Fleet) UnmarshalJSON(b []byte) error {
	var raw fleetJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	f.ships = raw.Ships
	f.formation = raw.Formation
	return nil
}

func (f Fleet) MarshalJSON() ([]byte, error) {
	return json.Marshal(fleetJSON{Ships: f.ships, Formation: f.formation})
}

func (f *EnemyFleet) UnmarshalJSON(b []byte) error {
	var raw enemyFleetJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*f = EnemyFleet{
		area:        raw.Area,
		mapID:       raw.Map,
		node:        raw.Node,
		probability: raw.Probability,
		ships:       raw.Ships,
		formation:   raw.Formation,
	}
	return nil
}

func (f EnemyFleet) MarshalJSON() ([]byte, error) {
	return json.Marshal(enemyFleetJSON{
		Area:        f.area,
		Map:         f.mapID,
		Node:        f.node,
		Probability: f.probability,
		Ships:       f.ships,
		Formation:   f.formation,
	})
}
