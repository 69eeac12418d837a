package bulk

import (
	"fmt"

	"staff-scheduler-backend/internal/model"
)

// Data carries the accepted subset of a bulk import. A nil slice/map or nil
// ShiftDefinitions pointer means the key was absent from the payload or was
// rejected; accepted keys are never empty containers.
type Data struct {
	StaffList          []model.StaffMember     `json:"staffList,omitempty"`
	DefinedRoles       []string                `json:"definedRoles,omitempty"`
	UnavailabilityList []model.Unavailability  `json:"unavailabilityList,omitempty"`
	ShiftDefinitions   *model.ShiftDefinitions `json:"shiftDefinitions,omitempty"`
	WeeklyNeeds        model.WeeklyNeeds       `json:"weeklyNeeds,omitempty"`
}

// Empty reports whether no key was accepted.
func (d Data) Empty() bool {
	return len(d.StaffList) == 0 &&
		len(d.DefinedRoles) == 0 &&
		len(d.UnavailabilityList) == 0 &&
		d.ShiftDefinitions == nil &&
		len(d.WeeklyNeeds) == 0
}

// Result is the outcome of validating one bulk-import document.
type Result struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
	Data     Data     `json:"data"`
}

// ValidateImport partitions an untrusted decoded JSON document into the
// accepted subset plus itemized errors and advisory warnings.
//
// Lists (staffList, unavailabilityList) are validated element-wise: valid
// elements are kept, each invalid element yields one indexed error, and a
// single warning reports the skipped count when at least one element
// survived. Indexed element errors are recoverable: they stay itemized in
// Errors but do not by themselves make the document invalid, so one malformed
// record never discards the rest of the import. The scalar-shaped keys
// (definedRoles, shiftDefinitions, weeklyNeeds) are all-or-nothing, and their
// failures are hard: a wrong container type or a rejected scalar shape makes
// the whole document invalid. A document that yields no errors but also no
// accepted data is not a successful import.
func ValidateImport(raw any) Result {
	res := Result{Errors: []string{}, Warnings: []string{}}
	hard := 0

	doc, ok := raw.(map[string]any)
	if !ok || doc == nil {
		res.Errors = append(res.Errors, "import data must be a JSON object")
		return res
	}

	if v, present := doc["staffList"]; present {
		items, ok := v.([]any)
		if !ok {
			res.Errors = append(res.Errors, "staffList must be an array")
			hard++
		} else {
			kept, skipped := filterList(items, "staffList", IsStaffMember, &res.Errors)
			if len(kept) > 0 {
				staff := make([]model.StaffMember, len(kept))
				for i, item := range kept {
					staff[i] = toStaffMember(item)
				}
				res.Data.StaffList = staff
				if skipped > 0 {
					res.Warnings = append(res.Warnings, fmt.Sprintf("skipped %d invalid staffList entries", skipped))
				}
			}
		}
	}

	if v, present := doc["definedRoles"]; present {
		if _, ok := v.([]any); !ok {
			res.Errors = append(res.Errors, "definedRoles must be an array")
			hard++
		} else if !IsDefinedRoles(v) {
			res.Errors = append(res.Errors, "definedRoles must contain only non-empty strings")
			hard++
		} else if roles := toDefinedRoles(v); len(roles) > 0 {
			res.Data.DefinedRoles = roles
		}
	}

	if v, present := doc["unavailabilityList"]; present {
		items, ok := v.([]any)
		if !ok {
			res.Errors = append(res.Errors, "unavailabilityList must be an array")
			hard++
		} else {
			kept, skipped := filterList(items, "unavailabilityList", IsUnavailability, &res.Errors)
			if len(kept) > 0 {
				list := make([]model.Unavailability, len(kept))
				for i, item := range kept {
					list[i] = toUnavailability(item)
				}
				res.Data.UnavailabilityList = list
				if skipped > 0 {
					res.Warnings = append(res.Warnings, fmt.Sprintf("skipped %d invalid unavailabilityList entries", skipped))
				}
			}
		}
	}

	if v, present := doc["shiftDefinitions"]; present {
		if _, ok := v.(map[string]any); !ok {
			res.Errors = append(res.Errors, "shiftDefinitions must be an object")
			hard++
		} else if !IsShiftDefinitions(v) {
			res.Errors = append(res.Errors, "shiftDefinitions must define HALF_DAY_AM, HALF_DAY_PM and FULL_DAY with start, end and positive hours")
			hard++
		} else {
			defs := toShiftDefinitions(v)
			res.Data.ShiftDefinitions = &defs
		}
	}

	if v, present := doc["weeklyNeeds"]; present {
		if _, ok := v.(map[string]any); !ok {
			res.Errors = append(res.Errors, "weeklyNeeds must be an object")
			hard++
		} else if !IsWeeklyNeeds(v) {
			res.Errors = append(res.Errors, "weeklyNeeds must map day -> shift -> role -> non-negative integer count")
			hard++
		} else if needs := toWeeklyNeeds(v); len(needs) > 0 {
			res.Data.WeeklyNeeds = needs
		}
	}

	if len(res.Errors) == 0 && res.Data.Empty() {
		res.Warnings = append(res.Warnings, "no valid data found in import")
		return res
	}

	res.Valid = hard == 0 && !res.Data.Empty()
	return res
}

// filterList validates each element with pred, keeping the valid ones and
// appending one indexed error per invalid one. It returns the kept elements
// and the skipped count.
func filterList(items []any, key string, pred func(any) bool, errs *[]string) ([]any, int) {
	kept := make([]any, 0, len(items))
	skipped := 0
	for i, item := range items {
		if pred(item) {
			kept = append(kept, item)
		} else {
			skipped++
			*errs = append(*errs, fmt.Sprintf("%s[%d] is not a valid entry", key, i))
		}
	}
	return kept, skipped
}
