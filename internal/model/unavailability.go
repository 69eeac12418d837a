package model

// ShiftTag is the symbolic half-day marker used in storage and bulk import.
// The authoring UI works with concrete time ranges; those are derived from
// the current shift definitions (see TimeRangesFor) and never stored.
type ShiftTag string

const (
	ShiftAM ShiftTag = "AM"
	ShiftPM ShiftTag = "PM"
)

// CanonicalDays lists the seven recognized day names, week starting Monday.
var CanonicalDays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// IsCanonicalDay reports whether name is one of the seven recognized day names.
func IsCanonicalDay(name string) bool {
	for _, d := range CanonicalDays {
		if d == name {
			return true
		}
	}
	return false
}

// Unavailability marks the half-days one employee cannot work on one day of
// the week. At most one record exists per (EmployeeID, DayOfWeek) pair.
type Unavailability struct {
	ID         string     `json:"id,omitempty"`
	EmployeeID string     `json:"employeeId"`
	DayOfWeek  string     `json:"dayOfWeek"`
	Shifts     []ShiftTag `json:"shifts"`
}

// Clone returns a deep copy of the record.
func (u Unavailability) Clone() Unavailability {
	out := u
	out.Shifts = append([]ShiftTag(nil), u.Shifts...)
	return out
}

// MergeShifts appends the given tags to the record, skipping duplicates.
func (u *Unavailability) MergeShifts(tags []ShiftTag) {
	for _, t := range tags {
		seen := false
		for _, existing := range u.Shifts {
			if existing == t {
				seen = true
				break
			}
		}
		if !seen {
			u.Shifts = append(u.Shifts, t)
		}
	}
}

// CloneUnavailabilityList deep-copies an unavailability list.
func CloneUnavailabilityList(in []Unavailability) []Unavailability {
	if in == nil {
		return nil
	}
	out := make([]Unavailability, len(in))
	for i, u := range in {
		out[i] = u.Clone()
	}
	return out
}

// TimeRange is the presentation-layer shape of a shift tag: the concrete
// start/end clock times it resolves to under a given set of shift definitions.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TimeRangesFor maps symbolic shift tags onto concrete time ranges using the
// supplied shift definitions. Unknown tags are skipped.
func TimeRangesFor(tags []ShiftTag, defs ShiftDefinitions) []TimeRange {
	ranges := make([]TimeRange, 0, len(tags))
	for _, t := range tags {
		switch t {
		case ShiftAM:
			ranges = append(ranges, TimeRange{Start: defs.HalfDayAM.Start, End: defs.HalfDayAM.End})
		case ShiftPM:
			ranges = append(ranges, TimeRange{Start: defs.HalfDayPM.Start, End: defs.HalfDayPM.End})
		}
	}
	return ranges
}

// TagsForRanges performs the reverse mapping: concrete time ranges back onto
// symbolic tags, matching against the current shift definitions. Ranges that
// match neither half are dropped.
func TagsForRanges(ranges []TimeRange, defs ShiftDefinitions) []ShiftTag {
	tags := make([]ShiftTag, 0, len(ranges))
	for _, r := range ranges {
		switch {
		case r.Start == defs.HalfDayAM.Start && r.End == defs.HalfDayAM.End:
			tags = append(tags, ShiftAM)
		case r.Start == defs.HalfDayPM.Start && r.End == defs.HalfDayPM.End:
			tags = append(tags, ShiftPM)
		case r.Start == defs.FullDay.Start && r.End == defs.FullDay.End:
			tags = append(tags, ShiftAM, ShiftPM)
		}
	}
	return tags
}
