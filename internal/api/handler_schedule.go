package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"staff-scheduler-backend/internal/notification"
	"staff-scheduler-backend/internal/solver"
)

// GetSchedule handles GET /api/schedule.
func (h *Handler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"generatedSchedule": h.coordinator.Planner.Schedule()})
}

type generateRequest struct {
	ShiftPreference solver.ShiftPreference `json:"shiftPreference"`
	StaffPriority   []string               `json:"staffPriority"`
}

// GenerateSchedule handles POST /api/schedule/generate: it forwards the live
// scheduling inputs to the remote solver, stores the returned schedule, and
// announces it to push subscribers.
func (h *Handler) GenerateSchedule(c *gin.Context) {
	var req generateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
	}
	switch req.ShiftPreference {
	case solver.PreferFullDays, solver.PreferHalfDays, solver.PreferNone:
	case "":
		req.ShiftPreference = solver.PreferNone
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "unknown shiftPreference"})
		return
	}

	snapshot := h.coordinator.Snapshot()
	resp, err := h.solver.Generate(c.Request.Context(), solver.Request{
		StaffList:          snapshot.StaffList,
		UnavailabilityList: snapshot.UnavailabilityList,
		WeeklyNeeds:        snapshot.WeeklyNeeds,
		ShiftDefinitions:   snapshot.ShiftDefinitions,
		ShiftPreference:    req.ShiftPreference,
		StaffPriority:      req.StaffPriority,
	})
	if err != nil {
		var solveErr *solver.Error
		if errors.As(err, &solveErr) {
			c.AbortWithStatusJSON(http.StatusBadGateway, solveErr)
			return
		}
		c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}

	h.coordinator.Planner.SetSchedule(resp.Schedule)

	if h.pool != nil && len(resp.Schedule) > 0 {
		h.pool.Dispatch(notification.Event{
			ScheduleName: time.Now().Format("2006-01-02 15:04"),
			Warnings:     len(resp.Warnings),
		})
	}

	c.JSON(http.StatusOK, resp)
}
