package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"staff-scheduler-backend/internal/mw"
)

// RouterOptions tune the middleware in front of the API.
type RouterOptions struct {
	RateLimitPerSec float64
	RateLimitBurst  int
	CacheTTL        time.Duration
}

// NewRouter creates and configures a new Gin router.
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	r := gin.Default()

	if opts.RateLimitPerSec <= 0 {
		opts.RateLimitPerSec = 10
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 5
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Minute
	}

	rateLimiter := mw.RateLimiter(rate.Limit(opts.RateLimitPerSec), opts.RateLimitBurst)
	cacheStore := cache.New(opts.CacheTTL, 2*opts.CacheTTL)
	caching := mw.Cache(cacheStore, opts.CacheTTL)

	api := r.Group("/api")
	api.Use(rateLimiter, caching)
	{
		api.GET("/staff", handler.ListStaff)
		api.POST("/staff", handler.CreateStaff)
		api.PUT("/staff/:id", handler.UpdateStaff)
		api.DELETE("/staff/:id", handler.DeleteStaff)

		api.GET("/unavailability", handler.ListUnavailability)
		api.PUT("/unavailability", handler.UpsertUnavailability)
		api.DELETE("/unavailability/:id", handler.DeleteUnavailability)

		api.GET("/roles", handler.GetRoles)
		api.PUT("/roles", handler.PutRoles)
		api.GET("/needs", handler.GetNeeds)
		api.PUT("/needs", handler.PutNeed)
		api.GET("/shift-definitions", handler.GetShiftDefinitions)
		api.PUT("/shift-definitions", handler.PutShiftDefinitions)

		api.GET("/schedule", handler.GetSchedule)
		api.POST("/schedule/generate", handler.GenerateSchedule)

		api.POST("/import", handler.Import)
		api.GET("/export/:type", handler.Export)

		api.GET("/history", handler.GetHistory)
		api.POST("/history", handler.SaveHistory)
		api.POST("/history/:id/load", handler.LoadHistory)
		api.PUT("/history/:id/name", handler.RenameHistory)
		api.DELETE("/history/:id", handler.DeleteHistory)
		api.DELETE("/history", handler.ClearHistory)
		api.POST("/history/:id/edit", handler.StartHistoryEdit)
		api.PUT("/history/edit", handler.UpdateHistoryEdit)
		api.POST("/history/edit/save", handler.SaveHistoryEdit)
		api.DELETE("/history/edit", handler.CancelHistoryEdit)

		api.GET("/settings", handler.GetSettings)
		api.PUT("/settings", handler.PutSettings)
		api.GET("/language", handler.GetLanguage)
		api.PUT("/language", handler.PutLanguage)

		api.GET("/subscriptions", handler.GetSubscription)
		api.PUT("/subscriptions", handler.PutSubscription)
		api.DELETE("/subscriptions", handler.DeleteSubscription)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)
	}

	return r
}
