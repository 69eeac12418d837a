package model

// Shift keys recognized by the planner and the remote solver.
const (
	ShiftKeyHalfDayAM = "HALF_DAY_AM"
	ShiftKeyHalfDayPM = "HALF_DAY_PM"
	ShiftKeyFullDay   = "FULL_DAY"
)

// ShiftDefinition is the canonical start/end/duration of one shift category.
type ShiftDefinition struct {
	Start string  `json:"start"`
	End   string  `json:"end"`
	Hours float64 `json:"hours"`
}

// ShiftDefinitions holds the three recognized shift categories.
type ShiftDefinitions struct {
	HalfDayAM ShiftDefinition `json:"HALF_DAY_AM"`
	HalfDayPM ShiftDefinition `json:"HALF_DAY_PM"`
	FullDay   ShiftDefinition `json:"FULL_DAY"`
}

// DefaultShiftDefinitions are the definitions used before any are configured.
func DefaultShiftDefinitions() ShiftDefinitions {
	return ShiftDefinitions{
		HalfDayAM: ShiftDefinition{Start: "11:00", End: "15:00", Hours: 4},
		HalfDayPM: ShiftDefinition{Start: "18:00", End: "23:00", Hours: 5},
		FullDay:   ShiftDefinition{Start: "11:00", End: "23:00", Hours: 8},
	}
}

// WeeklyNeeds is the staffing requirement matrix: day -> shift key -> role ->
// required headcount. A count of zero is equivalent to absence; empty
// intermediate maps are pruned by the owning store.
type WeeklyNeeds map[string]map[string]map[string]int

// Clone deep-copies the needs matrix.
func (w WeeklyNeeds) Clone() WeeklyNeeds {
	if w == nil {
		return nil
	}
	out := make(WeeklyNeeds, len(w))
	for day, shifts := range w {
		outShifts := make(map[string]map[string]int, len(shifts))
		for shift, roles := range shifts {
			outRoles := make(map[string]int, len(roles))
			for role, count := range roles {
				outRoles[role] = count
			}
			outShifts[shift] = outRoles
		}
		out[day] = outShifts
	}
	return out
}

// Prune removes zero counts and any intermediate maps left empty.
func (w WeeklyNeeds) Prune() {
	for day, shifts := range w {
		for shift, roles := range shifts {
			for role, count := range roles {
				if count <= 0 {
					delete(roles, role)
				}
			}
			if len(roles) == 0 {
				delete(shifts, shift)
			}
		}
		if len(shifts) == 0 {
			delete(w, day)
		}
	}
}

// Schedule is the solver's output: day -> shift key -> role -> assigned
// employee ids, in assignment order. The data layer only stores and forwards
// it.
type Schedule map[string]map[string]map[string][]string

// Clone deep-copies the schedule.
func (s Schedule) Clone() Schedule {
	if s == nil {
		return nil
	}
	out := make(Schedule, len(s))
	for day, shifts := range s {
		outShifts := make(map[string]map[string][]string, len(shifts))
		for shift, roles := range shifts {
			outRoles := make(map[string][]string, len(roles))
			for role, ids := range roles {
				outRoles[role] = append([]string(nil), ids...)
			}
			outShifts[shift] = outRoles
		}
		out[day] = outShifts
	}
	return out
}
