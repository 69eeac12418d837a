// Package bulk implements the bulk-import validation pipeline: shape
// predicates over untrusted decoded JSON, a partial-acceptance top-level
// validator, a referential-integrity post-pass, and the export helpers.
//
// Nothing in this package panics on malformed input; every failure is
// reported through the returned Result.
package bulk

import (
	"math"
	"strings"

	"staff-scheduler-backend/internal/model"
)

// IsStaffMember reports whether x has the shape of a staff member: string id
// and name plus an assignedRolesInPriority array of strings.
func IsStaffMember(x any) bool {
	m, ok := x.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := m["id"].(string); !ok {
		return false
	}
	if _, ok := m["name"].(string); !ok {
		return false
	}
	roles, ok := m["assignedRolesInPriority"].([]any)
	if !ok {
		return false
	}
	for _, r := range roles {
		if _, ok := r.(string); !ok {
			return false
		}
	}
	return true
}

// IsUnavailability reports whether x has the shape of an unavailability
// record: string employeeId and dayOfWeek plus a shifts array whose every
// element is exactly "AM" or "PM".
func IsUnavailability(x any) bool {
	m, ok := x.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := m["employeeId"].(string); !ok {
		return false
	}
	if _, ok := m["dayOfWeek"].(string); !ok {
		return false
	}
	shifts, ok := m["shifts"].([]any)
	if !ok {
		return false
	}
	for _, s := range shifts {
		tag, ok := s.(string)
		if !ok || (tag != string(model.ShiftAM) && tag != string(model.ShiftPM)) {
			return false
		}
	}
	return true
}

// IsWeeklyNeeds reports whether x is a three-level mapping
// day -> shift -> role -> non-negative integer. JSON numbers decode as
// float64, so a fractional count is rejected rather than truncated.
func IsWeeklyNeeds(x any) bool {
	days, ok := x.(map[string]any)
	if !ok {
		return false
	}
	for _, shiftsRaw := range days {
		shifts, ok := shiftsRaw.(map[string]any)
		if !ok {
			return false
		}
		for _, rolesRaw := range shifts {
			roles, ok := rolesRaw.(map[string]any)
			if !ok {
				return false
			}
			for _, countRaw := range roles {
				count, ok := countRaw.(float64)
				if !ok || count < 0 || count != math.Trunc(count) {
					return false
				}
			}
		}
	}
	return true
}

// IsDefinedRoles reports whether x is an array of non-empty strings.
func IsDefinedRoles(x any) bool {
	roles, ok := x.([]any)
	if !ok {
		return false
	}
	for _, r := range roles {
		s, ok := r.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// IsShiftDefinitions reports whether x is an object with exactly the keys
// HALF_DAY_AM, HALF_DAY_PM and FULL_DAY, each holding string start/end and a
// positive numeric hours. Cross-field consistency between the three shifts is
// the caller's concern, not checked here.
func IsShiftDefinitions(x any) bool {
	m, ok := x.(map[string]any)
	if !ok {
		return false
	}
	keys := []string{model.ShiftKeyHalfDayAM, model.ShiftKeyHalfDayPM, model.ShiftKeyFullDay}
	if len(m) != len(keys) {
		return false
	}
	for _, key := range keys {
		def, ok := m[key].(map[string]any)
		if !ok {
			return false
		}
		if _, ok := def["start"].(string); !ok {
			return false
		}
		if _, ok := def["end"].(string); !ok {
			return false
		}
		hours, ok := def["hours"].(float64)
		if !ok || hours <= 0 {
			return false
		}
	}
	return true
}

// --- conversions from decoded JSON, called only after a predicate passed ---

func toStaffMember(x any) model.StaffMember {
	m := x.(map[string]any)
	rolesRaw := m["assignedRolesInPriority"].([]any)
	roles := make([]string, len(rolesRaw))
	for i, r := range rolesRaw {
		roles[i] = r.(string)
	}
	out := model.StaffMember{
		ID:                      m["id"].(string),
		Name:                    m["name"].(string),
		AssignedRolesInPriority: roles,
	}
	if v, ok := m["minHoursPerWeek"].(float64); ok {
		out.MinHoursPerWeek = &v
	}
	if v, ok := m["maxHoursPerWeek"].(float64); ok {
		out.MaxHoursPerWeek = &v
	}
	return out
}

func toUnavailability(x any) model.Unavailability {
	m := x.(map[string]any)
	shiftsRaw := m["shifts"].([]any)
	shifts := make([]model.ShiftTag, len(shiftsRaw))
	for i, s := range shiftsRaw {
		shifts[i] = model.ShiftTag(s.(string))
	}
	out := model.Unavailability{
		EmployeeID: m["employeeId"].(string),
		DayOfWeek:  m["dayOfWeek"].(string),
		Shifts:     shifts,
	}
	if id, ok := m["id"].(string); ok {
		out.ID = id
	}
	return out
}

func toWeeklyNeeds(x any) model.WeeklyNeeds {
	days := x.(map[string]any)
	out := make(model.WeeklyNeeds, len(days))
	for day, shiftsRaw := range days {
		shifts := shiftsRaw.(map[string]any)
		outShifts := make(map[string]map[string]int, len(shifts))
		for shift, rolesRaw := range shifts {
			roles := rolesRaw.(map[string]any)
			outRoles := make(map[string]int, len(roles))
			for role, countRaw := range roles {
				outRoles[role] = int(countRaw.(float64))
			}
			outShifts[shift] = outRoles
		}
		out[day] = outShifts
	}
	out.Prune()
	return out
}

func toDefinedRoles(x any) []string {
	rolesRaw := x.([]any)
	roles := make([]string, len(rolesRaw))
	for i, r := range rolesRaw {
		roles[i] = strings.TrimSpace(r.(string))
	}
	return roles
}

func toShiftDefinitions(x any) model.ShiftDefinitions {
	m := x.(map[string]any)
	conv := func(key string) model.ShiftDefinition {
		def := m[key].(map[string]any)
		return model.ShiftDefinition{
			Start: def["start"].(string),
			End:   def["end"].(string),
			Hours: def["hours"].(float64),
		}
	}
	return model.ShiftDefinitions{
		HalfDayAM: conv(model.ShiftKeyHalfDayAM),
		HalfDayPM: conv(model.ShiftKeyHalfDayPM),
		FullDay:   conv(model.ShiftKeyFullDay),
	}
}
