package simulate

import (
	"math/rand"

	"github.com/gitdmnt/sim-core/internal/fleet"
)

// SelectEnemy picks an index into pool using each fleet's appearance
// probability as a cumulative weight. A draw past the last boundary
// (weights summing below 1.0) falls back to the first fleet.
func SelectEnemy(rng *rand.Rand, pool []fleet.EnemyFleet) int {
	roll := rng.Float64()
	acc := 0.0
	for i := range pool {
		acc += pool[i].Probability()
		if roll < acc {
			return i
		}
	}
	return 0
}
