package api

import (
	"context"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"

	"staff-scheduler-backend/internal/history"
	"staff-scheduler-backend/internal/notification"
	"staff-scheduler-backend/internal/persist"
	"staff-scheduler-backend/internal/solver"
	"staff-scheduler-backend/internal/state"
)

// ScheduleGenerator is the solver surface the handlers depend on.
type ScheduleGenerator interface {
	Generate(ctx context.Context, request solver.Request) (*solver.Response, error)
}

// Handler holds shared dependencies for API handlers.
type Handler struct {
	coordinator *state.Coordinator
	history     *history.Store
	kv          *persist.KV
	solver      ScheduleGenerator
	pool        *notification.WorkerPool
	db          *gorm.DB
	webpush     *webpush.Options
}

// Deps bundles everything the API needs.
type Deps struct {
	Coordinator *state.Coordinator
	History     *history.Store
	KV          *persist.KV
	Solver      ScheduleGenerator
	Pool        *notification.WorkerPool
	DB          *gorm.DB
	WebPush     *webpush.Options
}

// NewHandler creates a new API handler.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		coordinator: deps.Coordinator,
		history:     deps.History,
		kv:          deps.KV,
		solver:      deps.Solver,
		pool:        deps.Pool,
		db:          deps.DB,
		webpush:     deps.WebPush,
	}
}
