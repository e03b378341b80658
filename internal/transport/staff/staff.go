package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainstaff "github.com/nvoss/staff-mesh/internal/domain/staff"
	portstaff "github.com/nvoss/staff-mesh/internal/port/staff"
)

func Register(rg *gin.RouterGroup, repo portstaff.Repository) {
	rg.POST("/", createStaff(repo))
	rg.GET("/", listStaff(repo))
	rg.GET("/:id", getStaff(repo))
	rg.PATCH("/:id/shift", setShift(repo))
}

type createStaffReq struct {
	Name        string                  `json:"name" binding:"required"`
	Role        string                  `json:"role" binding:"required"`
	Location    string                  `json:"location"`
	Skills      []string                `json:"skills"`
	Performance domainstaff.Performance `json:"performance"`
}

func createStaff(repo portstaff.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createStaffReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		s := domainstaff.New(req.Name, req.Role, req.Location, req.Skills, req.Performance)
		created, err := repo.Create(c.Request.Context(), s)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func listStaff(repo portstaff.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filters domainstaff.ListFilters

		if v := c.Query("role"); v != "" {
			filters.Role = &v
		}
		if v := c.Query("location"); v != "" {
			filters.Location = &v
		}
		if v := c.Query("on_shift"); v != "" {
			onShift := v == "true"
			filters.OnShift = &onShift
		}

		members, err := repo.List(c.Request.Context(), filters)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if members == nil {
			members = []domainstaff.Staff{}
		}
		c.JSON(http.StatusOK, members)
	}
}

func getStaff(repo portstaff.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		s, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		// Availability is derived, not stored; surface it alongside the record.
		c.JSON(http.StatusOK, gin.H{"staff": s, "availability": s.Availability()})
	}
}

type setShiftReq struct {
	OnShift *bool `json:"on_shift" binding:"required"`
}

func setShift(repo portstaff.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
			return
		}

		var req setShiftReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := repo.SetOnShift(c.Request.Context(), id, *req.OnShift); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
