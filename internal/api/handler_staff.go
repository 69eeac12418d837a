package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type staffRequest struct {
	Name                    string   `json:"name" binding:"required"`
	AssignedRolesInPriority []string `json:"assignedRolesInPriority" binding:"required"`
	MinHoursPerWeek         *float64 `json:"minHoursPerWeek"`
	MaxHoursPerWeek         *float64 `json:"maxHoursPerWeek"`
}

// ListStaff handles GET /api/staff.
func (h *Handler) ListStaff(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator.Staff.List())
}

// CreateStaff handles POST /api/staff.
func (h *Handler) CreateStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, res := h.coordinator.Staff.Add(req.Name, req.AssignedRolesInPriority, req.MinHoursPerWeek, req.MaxHoursPerWeek)
	if !res.Success {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateStaff handles PUT /api/staff/:id.
func (h *Handler) UpdateStaff(c *gin.Context) {
	var req staffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := c.Param("id")
	res := h.coordinator.Staff.Update(id, req.Name, req.AssignedRolesInPriority, req.MinHoursPerWeek, req.MaxHoursPerWeek)
	if !res.Success {
		status := http.StatusUnprocessableEntity
		if res.Error == "staff member not found" {
			status = http.StatusNotFound
		}
		c.AbortWithStatusJSON(status, gin.H{"error": res.Error})
		return
	}
	member, _ := h.coordinator.Staff.Get(id)
	c.JSON(http.StatusOK, member)
}

// DeleteStaff handles DELETE /api/staff/:id. The employee's unavailability
// entries are removed as well.
func (h *Handler) DeleteStaff(c *gin.Context) {
	id := c.Param("id")
	if res := h.coordinator.Staff.Remove(id); !res.Success {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": res.Error})
		return
	}
	h.coordinator.Unavailability.RemoveForEmployee(id)
	c.Status(http.StatusNoContent)
}
