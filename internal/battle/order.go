package battle

import "sort"

// turnRef addresses one actor slot in a firing order.
type turnRef struct {
	side  Side
	index int
}

// orderedByRange builds the phase-1 firing order. Each side's alive ships are
// sorted by range class descending (stable, so equal ranges keep fleet
// order), then the two sequences are interleaved starting with the side whose
// best range is greater. A range tie puts the friend side first. The order is
// computed once per phase; ships that sink afterwards are skipped at
// resolution time rather than re-planned.
func orderedByRange(setup *Setup, log *Log) []turnRef {
	friend := aliveSortedByRange(setup, log, SideFriend)
	enemy := aliveSortedByRange(setup, log, SideEnemy)

	switch {
	case len(friend) == 0 && len(enemy) == 0:
		return nil
	case len(friend) == 0:
		return refs(SideEnemy, enemy)
	case len(enemy) == 0:
		return refs(SideFriend, friend)
	}

	friendBest := setup.ships(SideFriend)[friend[0]].Range()
	enemyBest := setup.ships(SideEnemy)[enemy[0]].Range()
	if friendBest >= enemyBest {
		return interleave(SideFriend, friend, SideEnemy, enemy)
	}
	return interleave(SideEnemy, enemy, SideFriend, friend)
}

// orderedByIndex builds the phase-2 firing order: alive ships in ascending
// fleet index, alternating friend then enemy at each position, with the
// longer side's remainder appended.
func orderedByIndex(setup *Setup, log *Log) []turnRef {
	return interleave(SideFriend, log.AliveIndices(SideFriend), SideEnemy, log.AliveIndices(SideEnemy))
}

func aliveSortedByRange(setup *Setup, log *Log, side Side) []int {
	ships := setup.ships(side)
	indices := log.AliveIndices(side)
	sort.SliceStable(indices, func(i, j int) bool {
		return ships[indices[i]].Range() > ships[indices[j]].Range()
	})
	return indices
}

func interleave(leadSide Side, lead []int, trailSide Side, trail []int) []turnRef {
	out := make([]turnRef, 0, len(lead)+len(trail))
	for i := 0; i < len(lead) || i < len(trail); i++ {
		if i < len(lead) {
			out = append(out, turnRef{side: leadSide, index: lead[i]})
		}
		if i < len(trail) {
			out = append(out, turnRef{side: trailSide, index: trail[i]})
		}
	}
	return out
}

func refs(side Side, indices []int) []turnRef {
	out := make([]turnRef, len(indices))
	for i, idx := range indices {
		out[i] = turnRef{side: side, index: idx}
	}
	return out
}
