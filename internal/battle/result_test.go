package battle

import (
	"testing"

	"github.com/gitdmnt/sim-core/internal/fleet"
)

// gradedState builds a frozen setup plus a log with the given damage already
// applied, bypassing combat so each grading branch is reachable directly.
func gradedState(friendHP, enemyHP, friendDamage, enemyDamage []int) (*Setup, *Log) {
	friendShips := make([]fleet.Ship, len(friendHP))
	for i, hp := range friendHP {
		friendShips[i] = combatShip("f", hp, 10, 10)
	}
	enemyShips := make([]fleet.Ship, len(enemyHP))
	for i, hp := range enemyHP {
		enemyShips[i] = combatShip("e", hp, 10, 10)
	}
	setup := &Setup{
		direction: DirectionSame,
		friend:    fleet.NewFleet(friendShips, fleet.FormationLineAhead),
		enemy:     fleet.NewEnemyFleet(1, 1, "A", 1.0, enemyShips, fleet.FormationLineAhead),
	}
	log := NewLog(setup)
	for i, d := range friendDamage {
		log.Snapshots(SideFriend)[i].ApplyDamage(d)
	}
	for i, d := range enemyDamage {
		log.Snapshots(SideEnemy)[i].ApplyDamage(d)
	}
	return setup, log
}

func TestCalculateResult(t *testing.T) {
	cases := []struct {
		name         string
		friendHP     []int
		enemyHP      []int
		friendDamage []int
		enemyDamage  []int
		want         Grade
	}{
		{"perfect victory", []int{100}, []int{50}, []int{0}, []int{50}, GradeSS},
		{"victory with scratches", []int{100}, []int{50}, []int{10}, []int{50}, GradeS},
		{"two thirds sunk", []int{100}, []int{30, 30, 30}, []int{0}, []int{30, 30, 0}, GradeA},
		{"enemy flagship down", []int{100}, []int{30, 30, 30}, []int{0}, []int{30, 0, 0}, GradeB},
		{"overwhelming damage ratio", []int{100}, []int{100}, []int{5}, []int{60}, GradeB},
		{"edging the exchange", []int{100}, []int{100}, []int{15}, []int{20}, GradeC},
		{"heavy damage dealt while losing", []int{100}, []int{100}, []int{70}, []int{55}, GradeC},
		{"indecisive", []int{100}, []int{100}, []int{10}, []int{5}, GradeD},
		{"loss with a ship down", []int{100, 100, 100}, []int{100}, []int{100, 0, 0}, []int{10}, GradeD},
		{"half the fleet sunk", []int{100, 100}, []int{100}, []int{100, 0}, []int{10}, GradeE},
		{"traded flagships", []int{100, 100}, []int{50, 50}, []int{100, 0}, []int{50, 0}, GradeC},
		{"losses but enemy wiped harder", []int{100, 100}, []int{50, 50}, []int{100, 0}, []int{50, 50}, GradeB},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			setup, log := gradedState(c.friendHP, c.enemyHP, c.friendDamage, c.enemyDamage)
			if got := CalculateResult(setup, log); got != c.want {
				t.Fatalf("expected grade %s, got %s", c.want, got)
			}
		})
	}
}

func TestCalculateResultIsPure(t *testing.T) {
	setup, log := gradedState([]int{100}, []int{50}, []int{10}, []int{50})
	first := CalculateResult(setup, log)
	second := CalculateResult(setup, log)
	if first != second {
		t.Fatalf("grading must be repeatable: %s then %s", first, second)
	}
}
