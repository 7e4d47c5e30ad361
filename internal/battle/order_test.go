package battle

import (
	"math/rand"
	"testing"

	"github.com/gitdmnt/sim-core/internal/fleet"
)

func shipWithRange(name string, r fleet.Range) fleet.Ship {
	return fleet.Ship{
		Name:   name,
		Status: fleet.ShipStatus{MaxHP: 30, NowHP: 30, Firepower: 10, Armor: 10, Range: &r},
	}
}

func setupFor(friendShips, enemyShips []fleet.Ship) *Setup {
	friend := fleet.NewFleet(friendShips, fleet.FormationLineAhead)
	enemy := fleet.NewEnemyFleet(1, 1, "A", 1.0, enemyShips, fleet.FormationLineAhead)
	return NewSetup(friend, enemy, rand.New(rand.NewSource(1)))
}

func TestOrderedByRangeFriendLeadsOnTie(t *testing.T) {
	setup := setupFor(
		[]fleet.Ship{shipWithRange("f0", fleet.RangeMedium)},
		[]fleet.Ship{shipWithRange("e0", fleet.RangeMedium)},
	)
	order := orderedByRange(setup, NewLog(setup))
	if len(order) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(order))
	}
	if order[0].side != SideFriend {
		t.Fatalf("expected friend to lead on a range tie, got %v", order[0].side)
	}
}

func TestOrderedByRangeLongerSideLeads(t *testing.T) {
	setup := setupFor(
		[]fleet.Ship{shipWithRange("f0", fleet.RangeMedium)},
		[]fleet.Ship{shipWithRange("e0", fleet.RangeVeryLong)},
	)
	order := orderedByRange(setup, NewLog(setup))
	if order[0].side != SideEnemy {
		t.Fatalf("expected the longer-ranged enemy to lead, got %v", order[0].side)
	}
}

func TestOrderedByRangeSortsDescendingStable(t *testing.T) {
	setup := setupFor(
		[]fleet.Ship{
			shipWithRange("f0", fleet.RangeShort),
			shipWithRange("f1", fleet.RangeLong),
			shipWithRange("f2", fleet.RangeLong),
		},
		nil,
	)
	order := orderedByRange(setup, NewLog(setup))
	want := []int{1, 2, 0}
	if len(order) != len(want) {
		t.Fatalf("expected %d turns, got %d", len(want), len(order))
	}
	for i, idx := range want {
		if order[i].side != SideFriend || order[i].index != idx {
			t.Fatalf("turn %d: expected friend/%d, got %v/%d", i, idx, order[i].side, order[i].index)
		}
	}
}

func TestOrderedByRangeOneSideEmpty(t *testing.T) {
	setup := setupFor(nil, []fleet.Ship{shipWithRange("e0", fleet.RangeShort)})
	order := orderedByRange(setup, NewLog(setup))
	if len(order) != 1 || order[0].side != SideEnemy {
		t.Fatalf("expected enemy-only order, got %+v", order)
	}

	setup = setupFor(nil, nil)
	if order := orderedByRange(setup, NewLog(setup)); len(order) != 0 {
		t.Fatalf("expected empty order for two empty fleets, got %+v", order)
	}
}

func TestInterleaveAppendsRemainder(t *testing.T) {
	setup := setupFor(
		[]fleet.Ship{
			shipWithRange("f0", fleet.RangeMedium),
			shipWithRange("f1", fleet.RangeMedium),
			shipWithRange("f2", fleet.RangeMedium),
		},
		[]fleet.Ship{shipWithRange("e0", fleet.RangeMedium)},
	)
	order := orderedByRange(setup, NewLog(setup))
	if len(order) != 4 {
		t.Fatalf("expected 4 turns, got %d", len(order))
	}
	// friend f0, enemy e0, then the friend remainder in fleet order.
	wantSides := []Side{SideFriend, SideEnemy, SideFriend, SideFriend}
	for i, s := range wantSides {
		if order[i].side != s {
			t.Fatalf("turn %d: expected %v, got %v", i, s, order[i].side)
		}
	}
}

func TestOrderedByIndexExcludesSunk(t *testing.T) {
	setup := setupFor(
		[]fleet.Ship{shipWithRange("f0", fleet.RangeMedium), shipWithRange("f1", fleet.RangeMedium)},
		[]fleet.Ship{shipWithRange("e0", fleet.RangeMedium)},
	)
	log := NewLog(setup)
	log.Snapshots(SideFriend)[0].ApplyDamage(1000)

	order := orderedByIndex(setup, log)
	if len(order) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(order))
	}
	for _, ref := range order {
		if ref.side == SideFriend && ref.index == 0 {
			t.Fatalf("sunk flagship must not appear in the firing order")
		}
	}
}
