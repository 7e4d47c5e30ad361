package api

import (
	"github.com/gitdmnt/sim-core/internal/simulate"
	"github.com/gitdmnt/sim-core/internal/storage"
)

// SimHandler groups all simulation-related HTTP handlers.
type SimHandler struct {
	repo storage.Repository
	svc  *simulate.Service
}

// NewSimHandler creates a new SimHandler with the given repository and
// simulation service.
func NewSimHandler(repo storage.Repository, svc *simulate.Service) *SimHandler {
	return &SimHandler{repo: repo, svc: svc}
}
