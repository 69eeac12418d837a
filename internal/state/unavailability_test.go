package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-scheduler-backend/internal/model"
)

func TestUnavailabilityUpsertValidation(t *testing.T) {
	s := NewUnavailabilityStore(sequentialIDs("U"))

	_, res := s.Upsert("", "Monday", []model.ShiftTag{model.ShiftAM})
	assert.False(t, res.Success)

	_, res = s.Upsert("S-1", "Funday", []model.ShiftTag{model.ShiftAM})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "unknown day")

	_, res = s.Upsert("S-1", "Monday", nil)
	assert.False(t, res.Success)

	_, res = s.Upsert("S-1", "Monday", []model.ShiftTag{"NIGHT"})
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "AM or PM")

	assert.Empty(t, s.List())
}

func TestUnavailabilityPairMerging(t *testing.T) {
	s := NewUnavailabilityStore(sequentialIDs("U"))

	entry, res := s.Upsert("S-1", "monday", []model.ShiftTag{model.ShiftAM})
	require.True(t, res.Success)
	assert.Equal(t, "U-1", entry.ID)
	assert.Equal(t, "Monday", entry.DayOfWeek)

	// Same pair again merges tags with dedup instead of creating a record.
	entry, res = s.Upsert("S-1", "MONDAY", []model.ShiftTag{model.ShiftAM, model.ShiftPM})
	require.True(t, res.Success)
	assert.Equal(t, "U-1", entry.ID)
	assert.Equal(t, []model.ShiftTag{model.ShiftAM, model.ShiftPM}, entry.Shifts)
	assert.Len(t, s.List(), 1)

	// Different day for the same employee is a separate record.
	entry, res = s.Upsert("S-1", "Tuesday", []model.ShiftTag{model.ShiftPM})
	require.True(t, res.Success)
	assert.Equal(t, "U-2", entry.ID)
	assert.Len(t, s.List(), 2)
}

func TestUnavailabilityRemove(t *testing.T) {
	s := NewUnavailabilityStore(sequentialIDs("U"))
	_, res := s.Upsert("S-1", "Monday", []model.ShiftTag{model.ShiftAM})
	require.True(t, res.Success)

	assert.False(t, s.Remove("U-9").Success)
	assert.True(t, s.Remove("U-1").Success)
	assert.Empty(t, s.List())
}

func TestUnavailabilityRemoveForEmployee(t *testing.T) {
	s := NewUnavailabilityStore(sequentialIDs("U"))
	for _, day := range []string{"Monday", "Tuesday"} {
		_, res := s.Upsert("S-1", day, []model.ShiftTag{model.ShiftAM})
		require.True(t, res.Success)
	}
	_, res := s.Upsert("S-2", "Monday", []model.ShiftTag{model.ShiftPM})
	require.True(t, res.Success)

	assert.Equal(t, 2, s.RemoveForEmployee("S-1"))
	list := s.List()
	require.Len(t, list, 1)
	assert.Equal(t, "S-2", list[0].EmployeeID)
	assert.Equal(t, 0, s.RemoveForEmployee("S-1"))
}

func TestUnavailabilityMergeImported(t *testing.T) {
	s := NewUnavailabilityStore(sequentialIDs("U"))
	_, res := s.Upsert("S-1", "Monday", []model.ShiftTag{model.ShiftAM})
	require.True(t, res.Success)

	s.Merge([]model.Unavailability{
		{ID: "ext-1", EmployeeID: "S-1", DayOfWeek: "Monday", Shifts: []model.ShiftTag{model.ShiftPM}},
		{EmployeeID: "S-2", DayOfWeek: "Friday", Shifts: []model.ShiftTag{model.ShiftAM}},
	})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "U-1", list[0].ID)
	assert.Equal(t, []model.ShiftTag{model.ShiftAM, model.ShiftPM}, list[0].Shifts)
	assert.Equal(t, "U-2", list[1].ID)
	assert.Equal(t, "S-2", list[1].EmployeeID)
}
