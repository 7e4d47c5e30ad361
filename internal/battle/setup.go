package battle

import (
	"math/rand"

	"github.com/gitdmnt/sim-core/internal/fleet"
)

// Setup freezes the engagement at battle start: the drawn direction and deep
// copies of both fleets. It is immutable for the battle's lifetime, so later
// mutation of the caller's fleets cannot leak into an in-flight battle.
type Setup struct {
	direction Direction
	friend    *fleet.Fleet
	enemy     *fleet.EnemyFleet
}

// NewSetup draws the engagement direction and clones both fleets.
func NewSetup(friend *fleet.Fleet, enemy *fleet.EnemyFleet, rng *rand.Rand) *Setup {
	return &Setup{
		direction: DrawDirection(rng),
		friend:    friend.Clone(),
		enemy:     enemy.Clone(),
	}
}

// Direction returns the engagement geometry drawn for this battle.
func (s *Setup) Direction() Direction { return s.direction }

func (s *Setup) ships(side Side) []fleet.Ship {
	if side == SideFriend {
		return s.friend.Ships()
	}
	return s.enemy.Ships()
}

// IncludesBattleshipClass reports whether either side fields a
// battleship-class ship. It gates the second firing pass.
func (s *Setup) IncludesBattleshipClass() bool {
	for _, side := range []Side{SideFriend, SideEnemy} {
		ships := s.ships(side)
		for i := range ships {
			if ships[i].IsBattleshipClass() {
				return true
			}
		}
	}
	return false
}
