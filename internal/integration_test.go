package internal

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"staff-scheduler-backend/internal/api"
	"staff-scheduler-backend/internal/history"
	"staff-scheduler-backend/internal/model"
	"staff-scheduler-backend/internal/persist"
	"staff-scheduler-backend/internal/solver"
	"staff-scheduler-backend/internal/state"
)

// TestSchedulingLifecycle walks the whole flow end to end: defining roles and
// staff, setting needs, generating a schedule through a mocked solver service,
// saving the result to history and reloading it after a simulated restart.
func TestSchedulingLifecycle(t *testing.T) {
	// 1. Setup an in-memory SQLite database for testing.
	testDB, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, _ := testDB.DB()
	defer sqlDB.Close()

	require.NoError(t, testDB.AutoMigrate(&model.KVEntry{}, &model.PushSubscription{}))

	// 2. Mock the remote solver.
	solverServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/schedule", r.URL.Path)

		var request solver.Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))

		// Assign the first staff member to every requested need.
		schedule := model.Schedule{}
		for day, shifts := range request.WeeklyNeeds {
			schedule[day] = map[string]map[string][]string{}
			for shiftKey, roles := range shifts {
				schedule[day][shiftKey] = map[string][]string{}
				for role := range roles {
					schedule[day][shiftKey][role] = []string{request.StaffList[0].ID}
				}
			}
		}
		json.NewEncoder(w).Encode(solver.Response{Success: true, Schedule: schedule})
	}))
	defer solverServer.Close()

	// 3. Wire the stores, persistence and router the way main does.
	planner := state.NewPlannerStore()
	staff := state.NewStaffStore(planner.DefinedRoles, nil)
	unavailability := state.NewUnavailabilityStore(nil)
	coordinator := state.NewCoordinator(staff, unavailability, planner)

	kv := persist.NewKV(testDB)
	historyStore := history.NewStore(kv, nil, nil, 0)

	handler := api.NewHandler(api.Deps{
		Coordinator: coordinator,
		History:     historyStore,
		KV:          kv,
		Solver:      solver.NewClient(solverServer.URL, 5*time.Second),
		DB:          testDB,
	})
	router := api.NewRouter(handler, api.RouterOptions{
		RateLimitPerSec: 1000,
		RateLimitBurst:  1000,
		CacheTTL:        time.Minute,
	})

	do := func(method, path string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req, err := http.NewRequest(method, path, &buf)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// 4. Define roles and a staff member.
	w := do(http.MethodPut, "/api/roles", map[string]any{"definedRoles": []string{"server"}})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(http.MethodPost, "/api/staff", map[string]any{
		"name":                    "Alice",
		"assignedRolesInPriority": []string{"server"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var member model.StaffMember
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &member))

	// 5. One need, then generate.
	w = do(http.MethodPut, "/api/needs", map[string]any{
		"dayOfWeek": "Monday", "shiftKey": "FULL_DAY", "role": "server", "count": 1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(http.MethodPost, "/api/schedule/generate", map[string]any{"shiftPreference": "NONE"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	expected := model.Schedule{"Monday": {"FULL_DAY": {"server": {member.ID}}}}
	assert.Equal(t, expected, planner.Schedule())

	// 6. Save to history and rename the record.
	w = do(http.MethodPost, "/api/history", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	records := historyStore.Records()
	require.Len(t, records, 1)

	w = do(http.MethodPut, "/api/history/"+records[0].ID+"/name", map[string]any{"name": "Launch week"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// 7. Simulate a restart: a fresh store hydrated from the same database.
	persisted, err := kv.LoadRecords()
	require.NoError(t, err)

	rebooted := history.NewStore(kv, nil, nil, 0)
	rebooted.Hydrate(persisted)

	revived := rebooted.Records()
	require.Len(t, revived, 1)
	assert.Equal(t, "Launch week", revived[0].Name)
	assert.Equal(t, expected, revived[0].Data.GeneratedSchedule)

	// 8. Restoring the revived snapshot brings back the live state.
	planner.SetSchedule(model.Schedule{})
	record, res := rebooted.Load(revived[0].ID)
	require.True(t, res.Success)
	coordinator.Restore(record.Data)
	assert.Equal(t, expected, planner.Schedule())
}
