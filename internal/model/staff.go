package model

// StaffMember represents one schedulable employee.
type StaffMember struct {
	ID                      string   `json:"id"`
	Name                    string   `json:"name"`
	AssignedRolesInPriority []string `json:"assignedRolesInPriority"`
	MinHoursPerWeek         *float64 `json:"minHoursPerWeek"`
	MaxHoursPerWeek         *float64 `json:"maxHoursPerWeek"`
}

// Clone returns a deep copy of the staff member.
func (s StaffMember) Clone() StaffMember {
	out := s
	out.AssignedRolesInPriority = append([]string(nil), s.AssignedRolesInPriority...)
	if s.MinHoursPerWeek != nil {
		v := *s.MinHoursPerWeek
		out.MinHoursPerWeek = &v
	}
	if s.MaxHoursPerWeek != nil {
		v := *s.MaxHoursPerWeek
		out.MaxHoursPerWeek = &v
	}
	return out
}

// CloneStaffList deep-copies a staff list.
func CloneStaffList(in []StaffMember) []StaffMember {
	if in == nil {
		return nil
	}
	out := make([]StaffMember, len(in))
	for i, s := range in {
		out[i] = s.Clone()
	}
	return out
}
