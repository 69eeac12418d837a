package history

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staff-scheduler-backend/internal/model"
)

// recordingPersister captures every persisted collection.
type recordingPersister struct {
	saves [][]model.HistoryRecord
	err   error
}

func (p *recordingPersister) SaveRecords(records []model.HistoryRecord) error {
	p.saves = append(p.saves, records)
	return p.err
}

// newTestStore returns a store with a deterministic clock and id sequence.
// Each Save advances the clock by one minute.
func newTestStore(persister Persister) *Store {
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	counter := 0
	now := func() time.Time {
		current = current.Add(time.Minute)
		return current
	}
	newID := func() string {
		counter++
		return fmt.Sprintf("H-%d", counter)
	}
	return NewStore(persister, now, newID, 0)
}

func sampleSchedule() model.Schedule {
	return model.Schedule{
		"Monday": {"FULL_DAY": {"server": {"S1"}}},
	}
}

func mustSave(t *testing.T, s *Store) {
	t.Helper()
	res := s.Save(nil, nil, nil, model.DefaultShiftDefinitions(), sampleSchedule())
	require.True(t, res.Success, res.Error)
}

func TestSaveRefusesEmptySchedule(t *testing.T) {
	s := newTestStore(nil)

	for _, schedule := range []model.Schedule{nil, {}} {
		res := s.Save([]model.StaffMember{}, []model.Unavailability{}, model.WeeklyNeeds{}, model.DefaultShiftDefinitions(), schedule)
		assert.False(t, res.Success)
		assert.False(t, res.LimitReached)
		assert.Contains(t, res.Error, "no schedule")
	}
	assert.Empty(t, s.Records())
}

func TestSaveRefusesPastCapacity(t *testing.T) {
	s := newTestStore(nil)
	for i := 0; i < MaxRecords; i++ {
		mustSave(t, s)
	}
	before := s.Records()

	res := s.Save(nil, nil, nil, model.DefaultShiftDefinitions(), sampleSchedule())
	assert.False(t, res.Success)
	assert.True(t, res.LimitReached)
	assert.Equal(t, before, s.Records())
}

func TestConfiguredCapacityOverridesDefault(t *testing.T) {
	s := NewStore(nil, nil, nil, 1)
	res := s.Save(nil, nil, nil, model.DefaultShiftDefinitions(), sampleSchedule())
	require.True(t, res.Success, res.Error)

	res = s.Save(nil, nil, nil, model.DefaultShiftDefinitions(), sampleSchedule())
	assert.False(t, res.Success)
	assert.True(t, res.LimitReached)
	assert.Contains(t, res.Error, "limit of 1")
	assert.Len(t, s.Records(), 1)
}

func TestRecordsStayNewestFirst(t *testing.T) {
	s := newTestStore(nil)
	mustSave(t, s)
	mustSave(t, s)
	mustSave(t, s)

	assertDescending := func() {
		records := s.Records()
		for i := 1; i < len(records); i++ {
			assert.Greater(t, records[i-1].Timestamp, records[i].Timestamp)
		}
	}
	assertDescending()

	records := s.Records()
	require.True(t, s.Delete(records[1].ID).Success)
	assertDescending()

	mustSave(t, s)
	assertDescending()
}

func TestSaveSnapshotsAreDeepCopies(t *testing.T) {
	s := newTestStore(nil)
	staff := []model.StaffMember{{ID: "S1", Name: "Alice", AssignedRolesInPriority: []string{"server"}}}
	schedule := sampleSchedule()

	res := s.Save(staff, nil, nil, model.DefaultShiftDefinitions(), schedule)
	require.True(t, res.Success)

	staff[0].Name = "changed"
	schedule["Monday"]["FULL_DAY"]["server"][0] = "S9"

	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "Alice", records[0].Data.StaffList[0].Name)
	assert.Equal(t, "S1", records[0].Data.GeneratedSchedule["Monday"]["FULL_DAY"]["server"][0])
}

func TestSaveDefaultNameFormat(t *testing.T) {
	s := newTestStore(nil)
	mustSave(t, s)
	records := s.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "2026-03-01 09:01", records[0].Name)
}

func TestDeleteUnknownRecord(t *testing.T) {
	s := newTestStore(nil)
	res := s.Delete("missing")
	assert.False(t, res.Success)
	assert.Contains(t, res.Error, "not found")
}

func TestLoadDoesNotMutate(t *testing.T) {
	s := newTestStore(nil)
	mustSave(t, s)
	id := s.Records()[0].ID

	record, res := s.Load(id)
	require.True(t, res.Success)
	require.NotNil(t, record)

	// Mutating the returned copy must not leak into the store.
	record.Name = "tampered"
	record.Data.GeneratedSchedule["Monday"]["FULL_DAY"]["server"][0] = "S9"
	fresh, _ := s.Load(id)
	assert.NotEqual(t, "tampered", fresh.Name)
	assert.Equal(t, "S1", fresh.Data.GeneratedSchedule["Monday"]["FULL_DAY"]["server"][0])

	_, res = s.Load("missing")
	assert.False(t, res.Success)
}

func TestRenameValidation(t *testing.T) {
	s := newTestStore(nil)
	mustSave(t, s)
	mustSave(t, s)
	records := s.Records()
	first, second := records[0].ID, records[1].ID
	require.True(t, s.Rename(second, "Friday plan").Success)

	testCases := []struct {
		name    string
		newName string
		wantErr string
	}{
		{name: "empty", newName: "", wantErr: "empty"},
		{name: "whitespace only", newName: "   ", wantErr: "empty"},
		{name: "too short", newName: "a", wantErr: "between 2 and 50"},
		{name: "too short multibyte", newName: "週", wantErr: "between 2 and 50"},
		{name: "too long", newName: strings.Repeat("x", 51), wantErr: "between 2 and 50"},
		{name: "too long multibyte", newName: strings.Repeat("週", 51), wantErr: "between 2 and 50"},
		{name: "forbidden character", newName: "week/plan", wantErr: "cannot contain"},
		{name: "duplicate exact", newName: "Friday plan", wantErr: "already exists"},
		{name: "duplicate case-insensitive", newName: "FRIDAY PLAN", wantErr: "already exists"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := s.Rename(first, tc.newName)
			assert.False(t, res.Success)
			assert.Contains(t, res.Error, tc.wantErr)
		})
	}

	t.Run("valid rename trims and sticks", func(t *testing.T) {
		res := s.Rename(first, "  Saturday plan  ")
		require.True(t, res.Success)
		record, _ := s.Load(first)
		assert.Equal(t, "Saturday plan", record.Name)
	})

	t.Run("renaming to own name is allowed", func(t *testing.T) {
		assert.True(t, s.Rename(second, "friday PLAN").Success)
	})

	t.Run("length limits count runes not bytes", func(t *testing.T) {
		name := strings.Repeat("排", 50)
		res := s.Rename(first, name)
		require.True(t, res.Success)
		record, _ := s.Load(first)
		assert.Equal(t, name, record.Name)
	})

	t.Run("rename leaves everything else untouched", func(t *testing.T) {
		before, _ := s.Load(first)
		require.True(t, s.Rename(first, "Another name").Success)
		after, _ := s.Load(first)
		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, before.Timestamp, after.Timestamp)
		assert.Equal(t, before.Data, after.Data)
	})
}

func TestClearAll(t *testing.T) {
	s := newTestStore(nil)
	mustSave(t, s)
	mustSave(t, s)
	s.ClearAll()
	assert.Empty(t, s.Records())
}

func TestEditingStateMachine(t *testing.T) {
	s := newTestStore(nil)
	mustSave(t, s)
	mustSave(t, s)
	records := s.Records()
	first, second := records[0], records[1]
	require.True(t, s.Rename(second.ID, "Taken name").Success)

	t.Run("idle by default", func(t *testing.T) {
		assert.Nil(t, s.Editing())
	})

	t.Run("save without session fails", func(t *testing.T) {
		res := s.SaveEditing()
		assert.False(t, res.Success)
	})

	t.Run("start then cancel persists nothing", func(t *testing.T) {
		s.StartEditing(first.ID, first.Name)
		s.UpdateEditingName("Draft name")
		s.CancelEditing()
		assert.Nil(t, s.Editing())
		record, _ := s.Load(first.ID)
		assert.Equal(t, first.Name, record.Name)
	})

	t.Run("failed save keeps session with error", func(t *testing.T) {
		s.StartEditing(first.ID, first.Name)
		s.UpdateEditingName("taken NAME")
		res := s.SaveEditing()
		assert.False(t, res.Success)

		editing := s.Editing()
		require.NotNil(t, editing)
		assert.Equal(t, first.ID, editing.ID)
		assert.Contains(t, editing.Error, "already exists")

		// Typing again clears the stale error without re-validating.
		s.UpdateEditingName("still taken NAME")
		assert.Empty(t, s.Editing().Error)
	})

	t.Run("successful save returns to idle", func(t *testing.T) {
		s.UpdateEditingName("Fresh name")
		res := s.SaveEditing()
		require.True(t, res.Success)
		assert.Nil(t, s.Editing())
		record, _ := s.Load(first.ID)
		assert.Equal(t, "Fresh name", record.Name)
	})

	t.Run("starting a new edit abandons the old one", func(t *testing.T) {
		s.StartEditing(first.ID, "Fresh name")
		s.UpdateEditingName("Uncommitted")
		s.StartEditing(second.ID, "Taken name")
		editing := s.Editing()
		require.NotNil(t, editing)
		assert.Equal(t, second.ID, editing.ID)
		assert.Equal(t, "Taken name", editing.TempName)
	})
}

func TestTransientFlags(t *testing.T) {
	s := newTestStore(nil)
	assert.False(t, s.ShowLimitWarning())
	s.SetShowLimitWarning(true)
	assert.True(t, s.ShowLimitWarning())

	dc := DeleteConfirm{IsOpen: true, ID: "H-1", Name: "Friday plan"}
	s.SetDeleteConfirm(dc)
	assert.Equal(t, dc, s.DeleteConfirmState())
}

func TestPersisterInvokedOnMembershipAndNameChanges(t *testing.T) {
	p := &recordingPersister{}
	s := newTestStore(p)

	mustSave(t, s)
	require.Len(t, p.saves, 1)

	id := s.Records()[0].ID
	require.True(t, s.Rename(id, "Named run").Success)
	require.Len(t, p.saves, 2)

	// Editing transitions alone persist nothing.
	s.StartEditing(id, "Named run")
	s.UpdateEditingName("Other")
	s.CancelEditing()
	require.Len(t, p.saves, 2)

	require.True(t, s.Delete(id).Success)
	require.Len(t, p.saves, 3)
	assert.Empty(t, p.saves[2])

	s.ClearAll()
	require.Len(t, p.saves, 4)
}

func TestPersistFailureDoesNotRollBack(t *testing.T) {
	p := &recordingPersister{err: assert.AnError}
	s := newTestStore(p)

	mustSave(t, s)
	assert.Len(t, s.Records(), 1)
}

func TestHydrateSortsAndResetsTransientState(t *testing.T) {
	s := newTestStore(nil)
	s.SetShowLimitWarning(true)
	s.StartEditing("H-9", "whatever")

	s.Hydrate([]model.HistoryRecord{
		{ID: "a", Name: "old", Timestamp: 100},
		{ID: "b", Name: "new", Timestamp: 300},
		{ID: "c", Name: "mid", Timestamp: 200},
	})

	records := s.Records()
	require.Len(t, records, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{records[0].ID, records[1].ID, records[2].ID})
	assert.False(t, s.ShowLimitWarning())
	assert.Nil(t, s.Editing())
}
