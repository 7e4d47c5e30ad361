package battle

import (
	"math"
	"math/rand"

	"github.com/gitdmnt/sim-core/internal/fleet"
)

// firepowerCap is the soft cap applied between the pre-cap and post-cap
// correction stages. Firepower above it only contributes floor(sqrt(excess)).
const firepowerCap = 220.0

// resolver executes single attacks against the battle log. It owns no state
// beyond references to the frozen setup, the mutable log and the battle RNG.
type resolver struct {
	setup *Setup
	log   *Log
	rng   *rand.Rand
}

// resolve runs one actor's turn: skip checks, firepower pipeline, target
// selection, armor and damage rolls, the anti-sink rule, snapshot mutation
// and logging. Every inability to act degrades to a logged skip; this path
// never fails.
func (r *resolver) resolve(phase Phase, pass int, actor turnRef) {
	ship := &r.setup.ships(actor.side)[actor.index]
	snap := &r.log.Snapshots(actor.side)[actor.index]

	if !snap.Alive() {
		r.skip(actor, ReasonSunk)
		return
	}
	level := DamagedLevelOf(snap.HP(), ship.MaxHP())
	if ship.HasAttackAircraft() && level >= Moderate {
		// The aircraft-strike path is the only one gated on damage.
		r.skip(actor, ReasonFlightDeckDamaged)
		return
	}

	firepower := basicFirepower(ship)
	firepower = fpPrecapCorrection(firepower, r.setup.direction.Factor(), level.Factor())
	firepower = fpCapping(firepower, firepowerCap)
	firepower = fpPostcapCorrection(firepower)

	targetSide := actor.side.Opposite()
	alive := r.log.AliveIndices(targetSide)
	if len(alive) == 0 {
		r.skip(actor, ReasonNoValidTargets)
		return
	}
	targetIndex := alive[r.rng.Intn(len(alive))]
	targetShip := &r.setup.ships(targetSide)[targetIndex]
	targetSnap := &r.log.Snapshots(targetSide)[targetIndex]

	armor := effectiveArmor(float64(targetShip.Armor()), r.rng.Float64())

	calculated := int(math.Floor(firepower - armor))
	if calculated <= 0 {
		calculated = trivializedDamage(targetSnap.HP(), r.rng.Float64())
	}

	applied := calculated
	if targetSide == SideFriend && calculated >= targetSnap.HP() {
		applied = r.antiSinkDamage(targetIndex, targetSnap.HP())
	}

	targetSnap.ApplyDamage(applied)
	r.log.push(Event{
		Kind:      EventAttack,
		Phase:     phase,
		Pass:      pass,
		Side:      actor.side,
		ShipIndex: actor.index,
		Attack: &AttackRecord{
			ToEnemy:          targetSide == SideEnemy,
			ActorIndex:       actor.index,
			TargetIndex:      targetIndex,
			Type:             AttackArtillery,
			Firepower:        int(firepower),
			Armor:            int(armor),
			CalculatedDamage: calculated,
			AppliedDamage:    applied,
		},
	})
	if !targetSnap.Alive() {
		r.log.push(Event{Kind: EventSunk, Side: targetSide, ShipIndex: targetIndex})
	}
}

func (r *resolver) skip(actor turnRef, reason string) {
	r.log.push(Event{Kind: EventTurnSkip, Side: actor.side, ShipIndex: actor.index, Reason: reason})
}

// antiSinkDamage replaces lethal damage to a friend-side ship. The flagship
// survives at a randomized reduced HP; escorts survive at exactly 1 HP.
// Enemy ships never pass through here and can sink normally.
func (r *resolver) antiSinkDamage(targetIndex, hpNow int) int {
	if targetIndex == 0 {
		hp := float64(hpNow)
		return int(math.Floor(hp*0.5 + math.Floor(hp*r.rng.Float64())*0.3))
	}
	return hpNow - 1
}

// basicFirepower computes the pre-correction attack power. Ships with attack
// aircraft use the carrier strike formula over firepower, torpedo and
// bombing; everyone else gets the flat artillery bonus.
func basicFirepower(s *fleet.Ship) float64 {
	if s.HasAttackAircraft() {
		combined := float64(s.Firepower()) + float64(s.Torpedo()) + float64(s.Bombing())
		return math.Floor(combined*1.5) + 55.0
	}
	return float64(s.Firepower()) + 5.0
}

func fpPrecapCorrection(firepower, directionFactor, damagedFactor float64) float64 {
	return firepower * directionFactor * damagedFactor
}

func fpCapping(firepower, cap float64) float64 {
	return math.Min(firepower, cap) + math.Floor(math.Sqrt(math.Max(firepower-cap, 0)))
}

func fpPostcapCorrection(firepower float64) float64 {
	// Post-cap adjustments plug in here.
	return firepower
}

// effectiveArmor randomizes the target's defense for one hit.
func effectiveArmor(armor, roll float64) float64 {
	return armor*0.7 + math.Floor(armor*roll)*0.6
}

// trivializedDamage converts a non-penetrating hit into scratch damage
// proportional to the target's current HP.
func trivializedDamage(hpNow int, roll float64) int {
	hp := float64(hpNow)
	return int(math.Floor(hp*0.06) + math.Floor(hp*roll)*0.08)
}
