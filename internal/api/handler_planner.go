package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-scheduler-backend/internal/model"
)

// GetRoles handles GET /api/roles.
func (h *Handler) GetRoles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"definedRoles": h.coordinator.Planner.DefinedRoles()})
}

type rolesRequest struct {
	DefinedRoles []string `json:"definedRoles" binding:"required"`
}

// PutRoles handles PUT /api/roles.
func (h *Handler) PutRoles(c *gin.Context) {
	var req rolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if res := h.coordinator.Planner.SetDefinedRoles(req.DefinedRoles); !res.Success {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"definedRoles": h.coordinator.Planner.DefinedRoles()})
}

// GetNeeds handles GET /api/needs.
func (h *Handler) GetNeeds(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"weeklyNeeds": h.coordinator.Planner.WeeklyNeeds()})
}

type needRequest struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
	ShiftKey  string `json:"shiftKey" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Count     int    `json:"count"`
}

// PutNeed handles PUT /api/needs, setting one cell of the needs matrix.
func (h *Handler) PutNeed(c *gin.Context) {
	var req needRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if res := h.coordinator.Planner.SetNeed(req.DayOfWeek, req.ShiftKey, req.Role, req.Count); !res.Success {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{"weeklyNeeds": h.coordinator.Planner.WeeklyNeeds()})
}

// GetShiftDefinitions handles GET /api/shift-definitions.
func (h *Handler) GetShiftDefinitions(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator.Planner.ShiftDefinitions())
}

// PutShiftDefinitions handles PUT /api/shift-definitions.
func (h *Handler) PutShiftDefinitions(c *gin.Context) {
	var req model.ShiftDefinitions
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if res := h.coordinator.Planner.SetShiftDefinitions(req); !res.Success {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusOK, h.coordinator.Planner.ShiftDefinitions())
}
