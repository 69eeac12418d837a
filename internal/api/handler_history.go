package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHistory handles GET /api/history, returning records newest-first along
// with the transient UI state.
func (h *Handler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"records":          h.history.Records(),
		"showLimitWarning": h.history.ShowLimitWarning(),
		"deleteConfirm":    h.history.DeleteConfirmState(),
		"editingRecord":    h.history.Editing(),
	})
}

// SaveHistory handles POST /api/history, snapshotting the live state.
func (h *Handler) SaveHistory(c *gin.Context) {
	snapshot := h.coordinator.Snapshot()
	res := h.history.Save(
		snapshot.StaffList,
		snapshot.UnavailabilityList,
		snapshot.WeeklyNeeds,
		snapshot.ShiftDefinitions,
		snapshot.GeneratedSchedule,
	)
	if !res.Success {
		status := http.StatusBadRequest
		if res.LimitReached {
			status = http.StatusConflict
			h.history.SetShowLimitWarning(true)
		}
		c.JSON(status, res)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "records": h.history.Records()})
}

// LoadHistory handles POST /api/history/:id/load: the stored snapshot
// replaces the live state through the restore coordinator.
func (h *Handler) LoadHistory(c *gin.Context) {
	record, res := h.history.Load(c.Param("id"))
	if !res.Success {
		c.AbortWithStatusJSON(http.StatusNotFound, res)
		return
	}
	h.coordinator.Restore(record.Data)
	c.JSON(http.StatusOK, gin.H{"success": true, "record": record})
}

type renameRequest struct {
	Name string `json:"name"`
}

// RenameHistory handles PUT /api/history/:id/name.
func (h *Handler) RenameHistory(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.history.Rename(c.Param("id"), req.Name)
	if !res.Success {
		status := http.StatusUnprocessableEntity
		if res.Error == "record not found" {
			status = http.StatusNotFound
		}
		c.JSON(status, res)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteHistory handles DELETE /api/history/:id.
func (h *Handler) DeleteHistory(c *gin.Context) {
	if res := h.history.Delete(c.Param("id")); !res.Success {
		c.AbortWithStatusJSON(http.StatusNotFound, res)
		return
	}
	h.history.SetShowLimitWarning(false)
	c.Status(http.StatusNoContent)
}

// ClearHistory handles DELETE /api/history.
func (h *Handler) ClearHistory(c *gin.Context) {
	h.history.ClearAll()
	h.history.SetShowLimitWarning(false)
	c.Status(http.StatusNoContent)
}

type editRequest struct {
	Name string `json:"name"`
}

// StartHistoryEdit handles POST /api/history/:id/edit, beginning an inline
// rename with the record's current name as the starting text.
func (h *Handler) StartHistoryEdit(c *gin.Context) {
	record, res := h.history.Load(c.Param("id"))
	if !res.Success {
		c.AbortWithStatusJSON(http.StatusNotFound, res)
		return
	}
	h.history.StartEditing(record.ID, record.Name)
	c.JSON(http.StatusOK, gin.H{"editingRecord": h.history.Editing()})
}

// UpdateHistoryEdit handles PUT /api/history/edit.
func (h *Handler) UpdateHistoryEdit(c *gin.Context) {
	var req editRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.history.UpdateEditingName(req.Name)
	c.JSON(http.StatusOK, gin.H{"editingRecord": h.history.Editing()})
}

// SaveHistoryEdit handles POST /api/history/edit/save. On validation failure
// the session stays active with its error populated.
func (h *Handler) SaveHistoryEdit(c *gin.Context) {
	res := h.history.SaveEditing()
	if !res.Success {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":       false,
			"error":         res.Error,
			"editingRecord": h.history.Editing(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "records": h.history.Records()})
}

// CancelHistoryEdit handles DELETE /api/history/edit.
func (h *Handler) CancelHistoryEdit(c *gin.Context) {
	h.history.CancelEditing()
	c.Status(http.StatusNoContent)
}
