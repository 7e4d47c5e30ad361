package api

import (
	"net/http"

	"github.com/gitdmnt/sim-core/internal/constants"
	"github.com/gitdmnt/sim-core/internal/logging"
	"github.com/gitdmnt/sim-core/internal/simulate"
	"github.com/gin-gonic/gin"
)

// Simulate runs a batch of battles for the posted fleets and returns the
// grade distribution plus per-battle reports.
func (h *SimHandler) Simulate(c *gin.Context) {
	var req simulate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}
	if len(req.EnemyFleets) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrEnemyPoolRequired})
		return
	}

	result, err := h.svc.Run(c.Request.Context(), &req)
	if err != nil {
		logging.Error("simulation failed", err, logging.Fields{
			constants.LogFieldCount: req.Count,
		})
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedRunBattles})
		return
	}
	logging.Info("simulation finished", logging.Fields{
		constants.LogFieldRunID: result.RunID,
		constants.LogFieldCount: result.Count,
		constants.LogFieldSeed:  result.Seed,
	})
	c.JSON(http.StatusOK, result)
}
