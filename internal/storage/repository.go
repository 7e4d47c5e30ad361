package storage

// Repository abstracts run-summary persistence so the service layer can be
// tested against an in-memory fake.
type Repository interface {
	SaveRun(run *SimulationRun) error
	RecentRuns(limit int) ([]SimulationRun, error)
	// GetRunByUUID returns nil, gorm.ErrRecordNotFound when absent.
	GetRunByUUID(uuid string) (*SimulationRun, error)
}
