package state

import (
	"staff-scheduler-backend/internal/bulk"
	"staff-scheduler-backend/internal/model"
)

// Coordinator applies multi-store effects: restoring a history snapshot and
// merging an accepted bulk import. Each store still owns its slice
// exclusively; the coordinator stages the full update first so a restore is
// all-or-nothing.
type Coordinator struct {
	Staff          *StaffStore
	Unavailability *UnavailabilityStore
	Planner        *PlannerStore
}

// NewCoordinator wires the three live stores together.
func NewCoordinator(staff *StaffStore, unavailability *UnavailabilityStore, planner *PlannerStore) *Coordinator {
	return &Coordinator{Staff: staff, Unavailability: unavailability, Planner: planner}
}

// Restore overwrites the live state with a history snapshot. The snapshot
// carries no defined-roles set, so roles referenced by the restored staff are
// added to the current set to keep the staff/role invariant intact.
func (c *Coordinator) Restore(snapshot model.Snapshot) {
	staged := snapshot.Clone()

	roles := c.Planner.DefinedRoles()
	known := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		known[r] = struct{}{}
	}
	for _, member := range staged.StaffList {
		for _, r := range member.AssignedRolesInPriority {
			if _, seen := known[r]; !seen {
				known[r] = struct{}{}
				roles = append(roles, r)
			}
		}
	}

	c.Staff.Replace(staged.StaffList)
	c.Unavailability.Replace(staged.UnavailabilityList)
	c.Planner.replaceAll(roles, staged.WeeklyNeeds, staged.ShiftDefinitions, staged.GeneratedSchedule)
}

// ApplyImport merges the accepted subset of a bulk import into the live
// stores: lists are merged (staff by id, unavailability by pair), the
// scalar-shaped collections are replaced wholesale when present. The planner
// stores re-validate the scalar collections on write; a rejected write leaves
// the previous value in place and is reported as a warning so the caller can
// surface it.
func (c *Coordinator) ApplyImport(data bulk.Data) []string {
	var warnings []string
	if len(data.DefinedRoles) > 0 {
		if res := c.Planner.SetDefinedRoles(data.DefinedRoles); !res.Success {
			warnings = append(warnings, "definedRoles were not applied: "+res.Error)
		}
	}
	if len(data.StaffList) > 0 {
		c.Staff.Merge(data.StaffList)
	}
	if len(data.UnavailabilityList) > 0 {
		c.Unavailability.Merge(data.UnavailabilityList)
	}
	if data.ShiftDefinitions != nil {
		if res := c.Planner.SetShiftDefinitions(*data.ShiftDefinitions); !res.Success {
			warnings = append(warnings, "shiftDefinitions were not applied: "+res.Error)
		}
	}
	if len(data.WeeklyNeeds) > 0 {
		c.Planner.SetWeeklyNeeds(data.WeeklyNeeds)
	}
	return warnings
}

// Snapshot captures the five live collections for the history store.
func (c *Coordinator) Snapshot() model.Snapshot {
	return model.Snapshot{
		StaffList:          c.Staff.List(),
		UnavailabilityList: c.Unavailability.List(),
		WeeklyNeeds:        c.Planner.WeeklyNeeds(),
		ShiftDefinitions:   c.Planner.ShiftDefinitions(),
		GeneratedSchedule:  c.Planner.Schedule(),
	}
}
