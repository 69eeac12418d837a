package bulk

import "fmt"

// ValidateRelationships runs the referential-integrity post-pass over the
// accepted subset of an import: every unavailability entry should reference a
// staff id present in the same import. Violations yield a single aggregate
// warning; they never block the import. When either collection is absent
// there is nothing to cross-check and no warning is produced.
func ValidateRelationships(data Data) []string {
	if len(data.StaffList) == 0 || len(data.UnavailabilityList) == 0 {
		return nil
	}

	known := make(map[string]struct{}, len(data.StaffList))
	for _, s := range data.StaffList {
		known[s.ID] = struct{}{}
	}

	orphaned := 0
	for _, u := range data.UnavailabilityList {
		if _, ok := known[u.EmployeeID]; !ok {
			orphaned++
		}
	}

	if orphaned == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%d unavailability entries reference unknown staff ids", orphaned)}
}
