package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"staff-scheduler-backend/internal/persist"
)

// GetSettings handles GET /api/settings.
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.kv.LoadSettings()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// PutSettings handles PUT /api/settings.
func (h *Handler) PutSettings(c *gin.Context) {
	var req persist.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.kv.SaveSettings(req); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, req)
}

// GetLanguage handles GET /api/language.
func (h *Handler) GetLanguage(c *gin.Context) {
	code, err := h.kv.LoadLanguage()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load language"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": code})
}

type languageRequest struct {
	Language string `json:"language" binding:"required"`
}

// PutLanguage handles PUT /api/language.
func (h *Handler) PutLanguage(c *gin.Context) {
	var req languageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.kv.SaveLanguage(req.Language); err != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"language": req.Language})
}
