package storage

import "gorm.io/gorm"

// SimulationRun is the persisted summary of one Monte-Carlo sweep: the input
// shape, the seed (so a run can be reproduced), and the outcome distribution
// over the seven grades. Individual battle reports are not persisted; they
// are returned to the caller once.
type SimulationRun struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	FriendShips int    `json:"friend_ships"`
	EnemyFleets int    `json:"enemy_fleets"`
	BattleCount int    `json:"battle_count"`
	Seed        int64  `json:"seed"`

	CountSS int `json:"count_ss"`
	CountS  int `json:"count_s"`
	CountA  int `json:"count_a"`
	CountB  int `json:"count_b"`
	CountC  int `json:"count_c"`
	CountD  int `json:"count_d"`
	CountE  int `json:"count_e"`

	DurationMS int64 `json:"duration_ms"`
}
