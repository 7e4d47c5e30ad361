package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gitdmnt/sim-core/internal/constants"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListRuns returns recent simulation runs, newest first. Accepts an
// optional ?limit=N query parameter capped at 100.
func (h *SimHandler) ListRuns(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}
	runs, err := h.repo.RecentRuns(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRuns})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// GetRun returns a single stored run by its public UUID.
func (h *SimHandler) GetRun(c *gin.Context) {
	id := c.Param("runID")
	run, err := h.repo.GetRunByUUID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrRunNotFound})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchRuns})
		return
	}
	c.JSON(http.StatusOK, run)
}
