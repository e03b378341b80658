package task

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domaintask "github.com/nvoss/staff-mesh/internal/domain/task"
	porttask "github.com/nvoss/staff-mesh/internal/port/task"
)

func Register(rg *gin.RouterGroup, repo porttask.Repository) {
	rg.POST("/", createTask(repo))
	rg.GET("/", listTasks(repo))
	rg.GET("/:id", getTask(repo))
	rg.POST("/:id/complete", completeTask(repo))
}

type createTaskReq struct {
	Title          string                `json:"title" binding:"required"`
	Priority       domaintask.Priority   `json:"priority" binding:"required"`
	Category       string                `json:"category"`
	Location       string                `json:"location"`
	EstimatedHours float64               `json:"estimated_hours"`
	RequiredSkills []string              `json:"required_skills"`
	Complexity     domaintask.Complexity `json:"complexity" binding:"required"`
}

func createTask(repo porttask.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTaskReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		t := domaintask.New(req.Title, req.Category, req.Location, req.Priority, req.Complexity, req.EstimatedHours, req.RequiredSkills)
		created, err := repo.Create(c.Request.Context(), t)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listTasks(repo porttask.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domaintask.ListFilters

		if v := c.Query("status"); v != "" {
			s := domaintask.Status(v)
			filters.Status = &s
		}
		if v := c.Query("priority"); v != "" {
			p := domaintask.Priority(v)
			filters.Priority = &p
		}
		if v := c.Query("assigned_to"); v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid assigned_to"})
				return
			}
			filters.AssignedTo = &id
		}
		if c.Query("unassigned") == "true" {
			filters.Unassigned = true
		}

		tasks, err := repo.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if tasks == nil {
			tasks = []domaintask.Task{}
		}
		c.JSON(http.StatusOK, tasks)
	}
}

func getTask(repo porttask.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		t, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

func completeTask(repo porttask.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		if err := repo.Complete(c.Request.Context(), id); err != nil {
			if errors.Is(err, porttask.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
