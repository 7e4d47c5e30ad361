package battle

import "github.com/gitdmnt/sim-core/internal/fleet"

// Grade is the seven-tier outcome rating of a battle.
type Grade string

const (
	GradeSS Grade = "SS"
	GradeS  Grade = "S"
	GradeA  Grade = "A"
	GradeB  Grade = "B"
	GradeC  Grade = "C"
	GradeD  Grade = "D"
	GradeE  Grade = "E"
)

// Grades lists all tiers from best to worst.
var Grades = []Grade{GradeSS, GradeS, GradeA, GradeB, GradeC, GradeD, GradeE}

// CalculateResult grades the battle from the final snapshots and the frozen
// initial stats. It is a pure function: identical final state always yields
// the same grade.
func CalculateResult(setup *Setup, log *Log) Grade {
	friendShips := setup.ships(SideFriend)
	enemyShips := setup.ships(SideEnemy)
	friendSnaps := log.Snapshots(SideFriend)
	enemySnaps := log.Snapshots(SideEnemy)

	sunkFriend := sunkCount(friendSnaps)
	sunkEnemy := sunkCount(enemySnaps)
	aliveEnemy := len(enemySnaps) - sunkEnemy

	friendSunkRatio := float64(sunkFriend) / float64(len(friendSnaps))
	enemySunkRatio := float64(sunkEnemy) / float64(len(enemySnaps))

	enemyFlagshipSunk := len(enemySnaps) > 0 && !enemySnaps[0].Alive()

	damageToFriend := totalDamage(friendShips, friendSnaps)
	damageToEnemy := totalDamage(enemyShips, enemySnaps)

	friendGauge := float64(damageToEnemy) / float64(totalInitialHP(enemyShips)) * 100.0
	enemyGauge := float64(damageToFriend) / float64(totalInitialHP(friendShips)) * 100.0
	gaugeRatio := friendGauge / (enemyGauge + 1e-10) // avoid div-by-zero

	if sunkFriend > 0 {
		switch {
		case gaugeRatio >= 2.5 || (enemyFlagshipSunk && sunkEnemy > sunkFriend):
			return GradeB
		case enemyFlagshipSunk || gaugeRatio >= 1.0:
			return GradeC
		case friendSunkRatio >= 0.5:
			return GradeE
		default:
			return GradeD
		}
	}
	if aliveEnemy == 0 {
		if damageToFriend == 0 {
			return GradeSS
		}
		return GradeS
	}
	if enemySunkRatio >= 2.0/3.0 {
		return GradeA
	}
	if enemyFlagshipSunk || gaugeRatio >= 2.5 {
		return GradeB
	}
	if gaugeRatio >= 1.0 || friendGauge >= 50.0 {
		return GradeC
	}
	return GradeD
}

func sunkCount(snaps []Snapshot) int {
	n := 0
	for i := range snaps {
		if !snaps[i].Alive() {
			n++
		}
	}
	return n
}

func totalDamage(ships []fleet.Ship, snaps []Snapshot) int {
	total := 0
	for i := range ships {
		total += ships[i].HP() - snaps[i].HP()
	}
	return total
}

func totalInitialHP(ships []fleet.Ship) int {
	total := 0
	for i := range ships {
		total += ships[i].HP()
	}
	return total
}
