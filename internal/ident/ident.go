// Package ident produces collision-resistant string identifiers for the
// entities owned by the data layer.
package ident

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	mu       sync.Mutex
	counters = make(map[string]uint64)
)

// Generate returns a process-unique identifier, namespaced with prefix when
// one is given. The primary strategy is a random UUID; if the system entropy
// source is unavailable, a timestamp/counter/random compound is used so that
// rapid-fire calls in the same millisecond still cannot collide.
func Generate(prefix string) string {
	if id, err := uuid.NewRandom(); err == nil {
		if prefix == "" {
			return id.String()
		}
		return prefix + "-" + id.String()
	}
	return fallback(prefix)
}

func fallback(prefix string) string {
	mu.Lock()
	counters[prefix]++
	n := counters[prefix]
	mu.Unlock()

	suffix := rand.Uint32() % 0x1000000
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d-%d-%06x", prefix, time.Now().UnixMilli(), n, suffix)
}

// StaffID returns a new staff member identifier.
func StaffID() string { return Generate("S") }

// UnavailabilityID returns a new unavailability record identifier.
func UnavailabilityID() string { return Generate("U") }

// HistoryID returns a new history record identifier.
func HistoryID() string { return Generate("H") }
