package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-scheduler-backend/internal/bulk"
)

// Import handles POST /api/import: one JSON document carrying any subset of
// the five recognized collections. Structurally invalid pieces are skipped
// and itemized; the accepted remainder is merged into the live state.
func (h *Handler) Import(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "could not read import payload"})
		return
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "could not parse import file as JSON"})
		return
	}

	result := bulk.ValidateImport(raw)
	result.Warnings = append(result.Warnings, bulk.ValidateRelationships(result.Data)...)

	if !result.Valid {
		c.JSON(http.StatusUnprocessableEntity, result)
		return
	}

	result.Warnings = append(result.Warnings, h.coordinator.ApplyImport(result.Data)...)
	c.JSON(http.StatusOK, result)
}

// exportable maps the :type route parameter onto (dataType label, payload).
func (h *Handler) exportable(kind string) (string, any, bool) {
	switch kind {
	case "staff":
		return "staff list", gin.H{"staffList": h.coordinator.Staff.List()}, true
	case "roles":
		return "defined roles", gin.H{"definedRoles": h.coordinator.Planner.DefinedRoles()}, true
	case "unavailability":
		return "unavailability list", gin.H{"unavailabilityList": h.coordinator.Unavailability.List()}, true
	case "shift-definitions":
		return "shift definitions", gin.H{"shiftDefinitions": h.coordinator.Planner.ShiftDefinitions()}, true
	case "needs":
		return "weekly needs", gin.H{"weeklyNeeds": h.coordinator.Planner.WeeklyNeeds()}, true
	case "all":
		snapshot := h.coordinator.Snapshot()
		return "scheduler", gin.H{
			"staffList":          snapshot.StaffList,
			"definedRoles":       h.coordinator.Planner.DefinedRoles(),
			"unavailabilityList": snapshot.UnavailabilityList,
			"shiftDefinitions":   snapshot.ShiftDefinitions,
			"weeklyNeeds":        snapshot.WeeklyNeeds,
		}, true
	}
	return "", nil, false
}

// Export handles GET /api/export/:type, serving a pretty-printed JSON
// download in the shape Import accepts back.
func (h *Handler) Export(c *gin.Context) {
	dataType, payload, ok := h.exportable(c.Param("type"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown export type"})
		return
	}

	out, err := bulk.MarshalExport(payload)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to serialize export"})
		return
	}

	filename := bulk.ExportFilename(dataType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", out)
}
