package state

import (
	"fmt"
	"strings"
	"sync"

	"staff-scheduler-backend/internal/model"
	"staff-scheduler-backend/internal/parse"
)

// PlannerStore owns the scheduling inputs and the generated schedule: defined
// roles, the weekly needs matrix, the shift definitions and the solver's
// latest output.
type PlannerStore struct {
	mu       sync.RWMutex
	roles    []string
	needs    model.WeeklyNeeds
	defs     model.ShiftDefinitions
	schedule model.Schedule
}

// NewPlannerStore constructs a planner store with default shift definitions
// and an empty needs matrix.
func NewPlannerStore() *PlannerStore {
	return &PlannerStore{
		needs: model.WeeklyNeeds{},
		defs:  model.DefaultShiftDefinitions(),
	}
}

// DefinedRoles returns a copy of the current role set.
func (s *PlannerStore) DefinedRoles() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.roles...)
}

// SetDefinedRoles replaces the role set. Names are trimmed and deduplicated;
// empty names are rejected.
func (s *PlannerStore) SetDefinedRoles(roles []string) OpResult {
	cleaned := make([]string, 0, len(roles))
	seen := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		name := strings.TrimSpace(r)
		if name == "" {
			return fail("role names cannot be empty")
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		cleaned = append(cleaned, name)
	}

	s.mu.Lock()
	s.roles = cleaned
	s.mu.Unlock()
	return ok()
}

// WeeklyNeeds returns a deep copy of the needs matrix.
func (s *PlannerStore) WeeklyNeeds() model.WeeklyNeeds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.needs.Clone()
}

// SetNeed sets one cell of the needs matrix. A zero count removes the cell;
// emptied intermediate maps are pruned immediately.
func (s *PlannerStore) SetNeed(dayOfWeek, shiftKey, role string, count int) OpResult {
	day, err := parse.NormalizeDay(dayOfWeek)
	if err != nil {
		return fail(err.Error())
	}
	switch shiftKey {
	case model.ShiftKeyHalfDayAM, model.ShiftKeyHalfDayPM, model.ShiftKeyFullDay:
	default:
		return fail(fmt.Sprintf("unknown shift key %q", shiftKey))
	}
	if strings.TrimSpace(role) == "" {
		return fail("role is required")
	}
	if count < 0 {
		return fail("count cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if count > 0 {
		if s.needs[day] == nil {
			s.needs[day] = map[string]map[string]int{}
		}
		if s.needs[day][shiftKey] == nil {
			s.needs[day][shiftKey] = map[string]int{}
		}
		s.needs[day][shiftKey][role] = count
	} else if shifts := s.needs[day]; shifts != nil && shifts[shiftKey] != nil {
		delete(shifts[shiftKey], role)
	}
	s.needs.Prune()
	return ok()
}

// SetWeeklyNeeds replaces the whole needs matrix, pruning zero counts.
func (s *PlannerStore) SetWeeklyNeeds(needs model.WeeklyNeeds) {
	clone := needs.Clone()
	if clone == nil {
		clone = model.WeeklyNeeds{}
	}
	clone.Prune()

	s.mu.Lock()
	s.needs = clone
	s.mu.Unlock()
}

// ShiftDefinitions returns the current shift definitions.
func (s *PlannerStore) ShiftDefinitions() model.ShiftDefinitions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.defs
}

// SetShiftDefinitions replaces the shift definitions after checking that each
// category has parseable times and positive hours.
func (s *PlannerStore) SetShiftDefinitions(defs model.ShiftDefinitions) OpResult {
	for key, def := range map[string]model.ShiftDefinition{
		model.ShiftKeyHalfDayAM: defs.HalfDayAM,
		model.ShiftKeyHalfDayPM: defs.HalfDayPM,
		model.ShiftKeyFullDay:   defs.FullDay,
	} {
		if _, err := parse.ParseClock(def.Start); err != nil {
			return fail(fmt.Sprintf("%s start: %v", key, err))
		}
		if _, err := parse.ParseClock(def.End); err != nil {
			return fail(fmt.Sprintf("%s end: %v", key, err))
		}
		if def.Hours <= 0 {
			return fail(fmt.Sprintf("%s hours must be positive", key))
		}
	}

	s.mu.Lock()
	s.defs = defs
	s.mu.Unlock()
	return ok()
}

// Schedule returns a deep copy of the generated schedule.
func (s *PlannerStore) Schedule() model.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule.Clone()
}

// SetSchedule stores the solver's output.
func (s *PlannerStore) SetSchedule(schedule model.Schedule) {
	s.mu.Lock()
	s.schedule = schedule.Clone()
	s.mu.Unlock()
}

// replaceAll swaps every planner slice at once. Only the restore coordinator
// calls this.
func (s *PlannerStore) replaceAll(roles []string, needs model.WeeklyNeeds, defs model.ShiftDefinitions, schedule model.Schedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles = append([]string(nil), roles...)
	s.needs = needs.Clone()
	if s.needs == nil {
		s.needs = model.WeeklyNeeds{}
	}
	s.defs = defs
	s.schedule = schedule.Clone()
}
