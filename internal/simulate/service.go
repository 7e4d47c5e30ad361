package simulate

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gitdmnt/sim-core/internal/battle"
	"github.com/gitdmnt/sim-core/internal/fleet"
	"github.com/gitdmnt/sim-core/internal/logging"
	"github.com/gitdmnt/sim-core/internal/storage"
)

// Request describes one simulation job: a friend fleet pitted against a
// weighted pool of enemy fleets, repeated Count times.
type Request struct {
	FriendFleet fleet.Fleet        `json:"friendFleet"`
	EnemyFleets []fleet.EnemyFleet `json:"enemyFleets"`
	Count       int                `json:"count"`
	Seed        *int64             `json:"seed,omitempty"`
	Verbose     bool               `json:"verbose,omitempty"`
}

// Outcome is a single battle's report plus which enemy fleet it faced.
type Outcome struct {
	EnemyIndex int `json:"enemyIndex"`
	battle.Report
}

// RunResult aggregates a whole simulation run.
type RunResult struct {
	RunID        string               `json:"run_id"`
	Seed         int64                `json:"seed"`
	Count        int                  `json:"count"`
	Distribution map[battle.Grade]int `json:"distribution"`
	Outcomes     []Outcome            `json:"reports"`
}

// Service runs simulations and records their summaries.
type Service struct {
	repo         storage.Repository
	workers      int
	defaultCount int
	maxCount     int
}

func NewService(repo storage.Repository, workers, defaultCount, maxCount int) *Service {
	return &Service{
		repo:         repo,
		workers:      workers,
		defaultCount: defaultCount,
		maxCount:     maxCount,
	}
}

// Run executes the requested number of battles. Fleets that fail
// validation produce an empty result set rather than an error, matching
// the lenient intake of the fleet decoders.
func (s *Service) Run(ctx context.Context, req *Request) (*RunResult, error) {
	count := req.Count
	if count <= 0 {
		count = s.defaultCount
	}
	if count > s.maxCount {
		count = s.maxCount
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}

	result := &RunResult{
		RunID:        uuid.NewString(),
		Seed:         seed,
		Count:        count,
		Distribution: make(map[battle.Grade]int, len(battle.Grades)),
		Outcomes:     []Outcome{},
	}
	for _, g := range battle.Grades {
		result.Distribution[g] = 0
	}

	friend := &req.FriendFleet
	if !friend.Validate() || len(req.EnemyFleets) == 0 {
		logging.Warn("simulation request rejected, fleets not usable", logging.Fields{
			"run_id":       result.RunID,
			"friend_ships": len(friend.Ships()),
			"enemy_fleets": len(req.EnemyFleets),
		})
		return result, nil
	}
	for i := range req.EnemyFleets {
		if !req.EnemyFleets[i].Validate() {
			logging.Warn("simulation request rejected, enemy fleet not usable", logging.Fields{
				"run_id":      result.RunID,
				"enemy_index": i,
			})
			return result, nil
		}
	}

	start := time.Now()
	outcomes := make([]Outcome, count)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			rng := rand.New(rand.NewSource(seed + int64(i)))
			enemyIndex := SelectEnemy(rng, req.EnemyFleets)
			b := battle.New(friend, &req.EnemyFleets[enemyIndex], rng)
			b.Run()
			report := b.Report()
			if !req.Verbose {
				report.Events = nil
			}
			outcomes[i] = Outcome{EnemyIndex: enemyIndex, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Outcomes = outcomes
	for i := range outcomes {
		result.Distribution[outcomes[i].Result]++
	}

	s.persist(result, len(friend.Ships()), len(req.EnemyFleets), time.Since(start))
	return result, nil
}

func (s *Service) persist(result *RunResult, friendShips, enemyFleets int, elapsed time.Duration) {
	if s.repo == nil {
		return
	}
	run := &storage.SimulationRun{
		UUID:        result.RunID,
		FriendShips: friendShips,
		EnemyFleets: enemyFleets,
		BattleCount: result.Count,
		Seed:        result.Seed,
		CountSS:     result.Distribution[battle.GradeSS],
		CountS:      result.Distribution[battle.GradeS],
		CountA:      result.Distribution[battle.GradeA],
		CountB:      result.Distribution[battle.GradeB],
		CountC:      result.Distribution[battle.GradeC],
		CountD:      result.Distribution[battle.GradeD],
		CountE:      result.Distribution[battle.GradeE],
		DurationMS:  elapsed.Milliseconds(),
	}
	if err := s.repo.SaveRun(run); err != nil {
		logging.Error("failed to save simulation run", err, logging.Fields{
			"run_id": result.RunID,
		})
	}
}
