package model

// Snapshot is the full application state bundle captured by a history record
// and restored on load.
type Snapshot struct {
	StaffList          []StaffMember    `json:"staffList"`
	UnavailabilityList []Unavailability `json:"unavailabilityList"`
	WeeklyNeeds        WeeklyNeeds      `json:"weeklyNeeds"`
	ShiftDefinitions   ShiftDefinitions `json:"shiftDefinitions"`
	GeneratedSchedule  Schedule         `json:"generatedSchedule"`
}

// Clone deep-copies the snapshot.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		StaffList:          CloneStaffList(s.StaffList),
		UnavailabilityList: CloneUnavailabilityList(s.UnavailabilityList),
		WeeklyNeeds:        s.WeeklyNeeds.Clone(),
		ShiftDefinitions:   s.ShiftDefinitions,
		GeneratedSchedule:  s.GeneratedSchedule.Clone(),
	}
}

// HistoryRecord is one named snapshot. Only Name may change after creation.
type HistoryRecord struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Timestamp int64    `json:"timestamp"` // epoch milliseconds
	Data      Snapshot `json:"data"`
}

// Clone deep-copies the record.
func (r HistoryRecord) Clone() HistoryRecord {
	out := r
	out.Data = r.Data.Clone()
	return out
}
