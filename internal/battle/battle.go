// Package battle resolves one naval skirmish between two fleets: engagement
// setup, two artillery passes, per-ship HP tracking and the final outcome
// grade. A battle runs to completion synchronously; independent battles may
// run on parallel goroutines as long as each owns its RNG.
package battle

import (
	"math/rand"

	"github.com/gitdmnt/sim-core/internal/fleet"
)

// Battle sequences one skirmish over a frozen Setup and a mutable Log.
type Battle struct {
	setup *Setup
	log   *Log
	rng   *rand.Rand
}

// New freezes the engagement (direction draw plus fleet clones) and
// initializes the battle log. The RNG is owned by this battle for its whole
// lifetime; callers running battles in parallel must hand each one its own.
func New(friend *fleet.Fleet, enemy *fleet.EnemyFleet, rng *rand.Rand) *Battle {
	setup := NewSetup(friend, enemy, rng)
	return &Battle{
		setup: setup,
		log:   NewLog(setup),
		rng:   rng,
	}
}

// Direction returns the engagement geometry drawn at setup.
func (b *Battle) Direction() Direction { return b.setup.Direction() }

// Run plays the battle to completion and assembles the report.
func (b *Battle) Run() Report {
	b.firePhase1()
	b.firePhase2()
	return b.Report()
}

// Report is the outcome handed back across the engine boundary: the grade
// and both fleets' final HP, indexed like the input ship lists. Events carry
// the full action log for callers that want a replay.
type Report struct {
	Result      Grade   `json:"result"`
	FriendFleet []int   `json:"friendFleet"`
	EnemyFleet  []int   `json:"enemyFleet"`
	Events      []Event `json:"events,omitempty"`
}

// Report grades the current state and snapshots final HP. It is safe to call
// after Run; calling it twice yields identical results.
func (b *Battle) Report() Report {
	return Report{
		Result:      CalculateResult(b.setup, b.log),
		FriendFleet: finalHP(b.log.Snapshots(SideFriend)),
		EnemyFleet:  finalHP(b.log.Snapshots(SideEnemy)),
		Events:      b.log.Events(),
	}
}

func finalHP(snaps []Snapshot) []int {
	out := make([]int, len(snaps))
	for i := range snaps {
		out[i] = snaps[i].HP()
	}
	return out
}
