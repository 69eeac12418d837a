package state

import (
	"sync"

	"staff-scheduler-backend/internal/ident"
	"staff-scheduler-backend/internal/model"
	"staff-scheduler-backend/internal/parse"
)

// UnavailabilityStore owns the live unavailability list. At most one record
// exists per (employee, day) pair; upserts into an existing pair merge shift
// tags with deduplication.
type UnavailabilityStore struct {
	mu      sync.RWMutex
	entries []model.Unavailability

	newID func() string
}

// NewUnavailabilityStore constructs an empty store. A nil newID falls back to
// the unavailability id generator.
func NewUnavailabilityStore(newID func() string) *UnavailabilityStore {
	if newID == nil {
		newID = ident.UnavailabilityID
	}
	return &UnavailabilityStore{newID: newID}
}

// List returns a deep copy of the entries.
func (s *UnavailabilityStore) List() []model.Unavailability {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneUnavailabilityList(s.entries)
}

// Upsert records that an employee is unavailable for the given shifts on the
// given day. The day name is normalized; an existing record for the same
// (employee, day) pair absorbs the new tags.
func (s *UnavailabilityStore) Upsert(employeeID, dayOfWeek string, shifts []model.ShiftTag) (model.Unavailability, OpResult) {
	if employeeID == "" {
		return model.Unavailability{}, fail("employee id is required")
	}
	day, err := parse.NormalizeDay(dayOfWeek)
	if err != nil {
		return model.Unavailability{}, fail(err.Error())
	}
	if len(shifts) == 0 {
		return model.Unavailability{}, fail("at least one shift is required")
	}
	for _, t := range shifts {
		if t != model.ShiftAM && t != model.ShiftPM {
			return model.Unavailability{}, fail("shifts may only contain AM or PM")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].EmployeeID == employeeID && s.entries[i].DayOfWeek == day {
			s.entries[i].MergeShifts(shifts)
			return s.entries[i].Clone(), ok()
		}
	}

	entry := model.Unavailability{
		ID:         s.newID(),
		EmployeeID: employeeID,
		DayOfWeek:  day,
	}
	entry.MergeShifts(shifts)
	s.entries = append(s.entries, entry)
	return entry.Clone(), ok()
}

// Remove deletes one entry by id.
func (s *UnavailabilityStore) Remove(id string) OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return ok()
		}
	}
	return fail("unavailability entry not found")
}

// RemoveForEmployee drops all entries of one employee. Called when a staff
// member is deleted.
func (s *UnavailabilityStore) RemoveForEmployee(employeeID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.EmployeeID == employeeID {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}

// Replace swaps in an entirely new list. Used by snapshot restore.
func (s *UnavailabilityStore) Replace(entries []model.Unavailability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = model.CloneUnavailabilityList(entries)
}

// Merge upserts imported entries under the per-pair uniqueness rule. Entries
// without an id receive a generated one.
func (s *UnavailabilityStore) Merge(incoming []model.Unavailability) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, in := range incoming {
		merged := false
		for i := range s.entries {
			if s.entries[i].EmployeeID == in.EmployeeID && s.entries[i].DayOfWeek == in.DayOfWeek {
				s.entries[i].MergeShifts(in.Shifts)
				merged = true
				break
			}
		}
		if merged {
			continue
		}
		entry := in.Clone()
		if entry.ID == "" {
			entry.ID = s.newID()
		}
		s.entries = append(s.entries, entry)
	}
}
