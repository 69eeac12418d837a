package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-scheduler-backend/internal/model"
)

type unavailabilityRequest struct {
	EmployeeID string            `json:"employeeId" binding:"required"`
	DayOfWeek  string            `json:"dayOfWeek" binding:"required"`
	Shifts     []model.ShiftTag  `json:"shifts"`
	TimeRanges []model.TimeRange `json:"timeRanges"`
}

// ListUnavailability handles GET /api/unavailability. With ?expand=times each
// entry additionally carries the concrete time ranges its tags resolve to
// under the current shift definitions.
func (h *Handler) ListUnavailability(c *gin.Context) {
	entries := h.coordinator.Unavailability.List()
	if c.Query("expand") != "times" {
		c.JSON(http.StatusOK, entries)
		return
	}

	defs := h.coordinator.Planner.ShiftDefinitions()
	type expanded struct {
		model.Unavailability
		TimeRanges []model.TimeRange `json:"timeRanges"`
	}
	out := make([]expanded, len(entries))
	for i, e := range entries {
		out[i] = expanded{Unavailability: e, TimeRanges: model.TimeRangesFor(e.Shifts, defs)}
	}
	c.JSON(http.StatusOK, out)
}

// UpsertUnavailability handles PUT /api/unavailability. The authoring UI may
// send concrete time ranges instead of symbolic tags; those are mapped onto
// tags against the current shift definitions before storage, which only ever
// holds the symbolic form.
func (h *Handler) UpsertUnavailability(c *gin.Context) {
	var req unavailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shifts := req.Shifts
	if len(shifts) == 0 && len(req.TimeRanges) > 0 {
		shifts = model.TagsForRanges(req.TimeRanges, h.coordinator.Planner.ShiftDefinitions())
		if len(shifts) == 0 {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "time ranges do not match any defined shift"})
			return
		}
	}

	entry, res := h.coordinator.Unavailability.Upsert(req.EmployeeID, req.DayOfWeek, shifts)
	if !res.Success {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": res.Error})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteUnavailability handles DELETE /api/unavailability/:id.
func (h *Handler) DeleteUnavailability(c *gin.Context) {
	if res := h.coordinator.Unavailability.Remove(c.Param("id")); !res.Success {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": res.Error})
		return
	}
	c.Status(http.StatusNoContent)
}
