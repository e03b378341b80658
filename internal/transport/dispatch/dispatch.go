package dispatch

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domaindispatch "github.com/nvoss/staff-mesh/internal/domain/dispatch"
	portrecommender "github.com/nvoss/staff-mesh/internal/port/recommender"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
	"github.com/nvoss/staff-mesh/internal/service/orchestrator"
)

// Register wires the dispatch operations onto the /api group: batch runs and
// stats under /dispatch, recommendation preview and manual assignment under
// the task they act on.
func Register(api *gin.RouterGroup, orch *orchestrator.Service, rec portrecommender.Recommender) {
	api.POST("/dispatch/batch", runBatch(orch))
	api.GET("/dispatch/stats", getStats(orch))
	api.GET("/tasks/:id/recommendation", recommendTask(rec))
	api.POST("/tasks/:id/assign", assignTask(orch))
}

// runBatch triggers one distribution pass. The request body may carry
// settings overrides; an empty body runs with the defaults.
func runBatch(orch *orchestrator.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings := domaindispatch.DefaultSettings
		if err := c.ShouldBindJSON(&settings); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := orch.RunBatch(c.Request.Context(), settings)
		if err != nil {
			// Invalid settings are the caller's fault; anything else is ours.
			if settings.Validate() != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func getStats(orch *orchestrator.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, orch.Stats())
	}
}

// recommendTask previews the ranking for one task without committing anything.
func recommendTask(rec portrecommender.Recommender) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		r, err := rec.Recommend(c.Request.Context(), id, domaindispatch.DefaultSettings)
		if err != nil {
			if errors.Is(err, porttask.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

type assignReq struct {
	StaffID uuid.UUID `json:"staff_id" binding:"required"`
}

// assignTask is the manual assignment entry point. It goes through the same
// CAS as the batch path, so a racing batch commit surfaces as 409.
func assignTask(orch *orchestrator.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req assignReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		switch err := orch.Assign(c.Request.Context(), id, req.StaffID); {
		case err == nil:
			c.JSON(http.StatusOK, gin.H{"task_id": id, "staff_id": req.StaffID})
		case errors.Is(err, porttask.ErrAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, porttask.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	}
}
