package storage

import "gorm.io/gorm"

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a gorm DB in the Repository interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveRun(run *SimulationRun) error {
	return r.db.Create(run).Error
}

func (r *sqliteRepository) RecentRuns(limit int) ([]SimulationRun, error) {
	var runs []SimulationRun
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *sqliteRepository) GetRunByUUID(uuid string) (*SimulationRun, error) {
	var run SimulationRun
	if err := r.db.Where("uuid = ?", uuid).First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}
