// Package state holds the live application stores: staff, unavailability and
// planner data. Each store is a constructed container owning exactly one
// slice of state; nothing here is a package-level singleton and nothing here
// touches durable storage.
package state

// OpResult is the outcome of a store operation.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() OpResult { return OpResult{Success: true} }

func fail(msg string) OpResult { return OpResult{Error: msg} }
