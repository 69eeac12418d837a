package state

import (
	"fmt"
	"strings"
	"sync"

	"staff-scheduler-backend/internal/ident"
	"staff-scheduler-backend/internal/model"
)

// StaffStore owns the live staff list. Role validity is enforced here, at
// creation and update time, against the currently defined roles; the bulk
// validator only ever checks shape.
type StaffStore struct {
	mu    sync.RWMutex
	staff []model.StaffMember

	definedRoles func() []string
	newID        func() string
}

// NewStaffStore constructs an empty staff store. definedRoles supplies the
// current role set (normally PlannerStore.DefinedRoles); a nil newID falls
// back to the staff id generator.
func NewStaffStore(definedRoles func() []string, newID func() string) *StaffStore {
	if newID == nil {
		newID = ident.StaffID
	}
	return &StaffStore{definedRoles: definedRoles, newID: newID}
}

// List returns a deep copy of the staff list.
func (s *StaffStore) List() []model.StaffMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneStaffList(s.staff)
}

// Get returns a copy of one staff member by id.
func (s *StaffStore) Get(id string) (model.StaffMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.staff {
		if m.ID == id {
			return m.Clone(), true
		}
	}
	return model.StaffMember{}, false
}

// Add creates a new staff member with a generated id.
func (s *StaffStore) Add(name string, roles []string, minHours, maxHours *float64) (model.StaffMember, OpResult) {
	if res := s.validate(name, roles); !res.Success {
		return model.StaffMember{}, res
	}

	member := model.StaffMember{
		ID:                      s.newID(),
		Name:                    strings.TrimSpace(name),
		AssignedRolesInPriority: append([]string(nil), roles...),
		MinHoursPerWeek:         minHours,
		MaxHoursPerWeek:         maxHours,
	}

	s.mu.Lock()
	s.staff = append(s.staff, member)
	s.mu.Unlock()
	return member.Clone(), ok()
}

// Update replaces the mutable fields of an existing staff member. The id is
// immutable.
func (s *StaffStore) Update(id, name string, roles []string, minHours, maxHours *float64) OpResult {
	if res := s.validate(name, roles); !res.Success {
		return res
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff[i].Name = strings.TrimSpace(name)
			s.staff[i].AssignedRolesInPriority = append([]string(nil), roles...)
			s.staff[i].MinHoursPerWeek = minHours
			s.staff[i].MaxHoursPerWeek = maxHours
			return ok()
		}
	}
	return fail("staff member not found")
}

// Remove deletes a staff member by id.
func (s *StaffStore) Remove(id string) OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.staff {
		if s.staff[i].ID == id {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			return ok()
		}
	}
	return fail("staff member not found")
}

// Replace swaps in an entirely new staff list, bypassing role validation.
// Used by snapshot restore and bulk-import merge, where the incoming data was
// validated at its own boundary.
func (s *StaffStore) Replace(staff []model.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staff = model.CloneStaffList(staff)
}

// Merge upserts imported staff by id: known ids are replaced in place,
// unknown ones appended with their imported id preserved.
func (s *StaffStore) Merge(incoming []model.StaffMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, in := range incoming {
		replaced := false
		for i := range s.staff {
			if s.staff[i].ID == in.ID {
				s.staff[i] = in.Clone()
				replaced = true
				break
			}
		}
		if !replaced {
			s.staff = append(s.staff, in.Clone())
		}
	}
}

func (s *StaffStore) validate(name string, roles []string) OpResult {
	if strings.TrimSpace(name) == "" {
		return fail("staff name cannot be empty")
	}
	if len(roles) == 0 {
		return fail("staff member needs at least one role")
	}

	defined := map[string]struct{}{}
	if s.definedRoles != nil {
		for _, r := range s.definedRoles() {
			defined[r] = struct{}{}
		}
	}
	for _, r := range roles {
		if _, known := defined[r]; !known {
			return fail(fmt.Sprintf("role %q is not defined", r))
		}
	}
	return ok()
}
