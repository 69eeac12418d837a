package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-scheduler-backend/internal/model"
)

func TestValidateRelationships(t *testing.T) {
	staff := []model.StaffMember{{ID: "S1", Name: "Alice", AssignedRolesInPriority: []string{"server"}}}
	entry := func(employeeID string) model.Unavailability {
		return model.Unavailability{EmployeeID: employeeID, DayOfWeek: "Monday", Shifts: []model.ShiftTag{model.ShiftAM}}
	}

	t.Run("known employee produces no warnings", func(t *testing.T) {
		warnings := ValidateRelationships(Data{
			StaffList:          staff,
			UnavailabilityList: []model.Unavailability{entry("S1")},
		})
		assert.Empty(t, warnings)
	})

	t.Run("orphaned entries produce one aggregate warning", func(t *testing.T) {
		warnings := ValidateRelationships(Data{
			StaffList:          staff,
			UnavailabilityList: []model.Unavailability{entry("S2"), entry("S3"), entry("S1")},
		})
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "2")
	})

	t.Run("missing collections skip the check", func(t *testing.T) {
		assert.Empty(t, ValidateRelationships(Data{StaffList: staff}))
		assert.Empty(t, ValidateRelationships(Data{UnavailabilityList: []model.Unavailability{entry("S9")}}))
		assert.Empty(t, ValidateRelationships(Data{}))
	})
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "staff_list_data.json", ExportFilename("Staff List"))
	assert.Equal(t, "weekly_needs_data.json", ExportFilename("weekly needs"))
	assert.Equal(t, "export_data.json", ExportFilename("  "))
}
