// Package history maintains the bounded, ordered collection of named
// application-state snapshots, together with the ephemeral UI state for
// delete confirmation and inline rename.
package history

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"staff-scheduler-backend/internal/ident"
	"staff-scheduler-backend/internal/model"
)

// MaxRecords is the default capacity of the history collection. Saving past
// capacity is refused; there is no eviction.
const MaxRecords = 3

// forbiddenNameChars are never allowed in a record name.
const forbiddenNameChars = `<>:"/\|?*`

// Persister durably stores the record collection after each membership or
// name mutation. Only records are persisted; editing state and UI flags are
// transient by design.
type Persister interface {
	SaveRecords(records []model.HistoryRecord) error
}

// OpResult is the outcome of a store operation. Operations never panic and
// never return Go errors; failures are carried in Error.
type OpResult struct {
	Success      bool   `json:"success"`
	Error        string `json:"error,omitempty"`
	LimitReached bool   `json:"isLimitReached,omitempty"`
}

func ok() OpResult { return OpResult{Success: true} }

func fail(msg string) OpResult { return OpResult{Error: msg} }

// EditingSession is the single in-flight inline rename, if any.
type EditingSession struct {
	ID       string `json:"id"`
	TempName string `json:"tempName"`
	Error    string `json:"error,omitempty"`
}

// DeleteConfirm mirrors the delete-confirmation dialog state.
type DeleteConfirm struct {
	IsOpen bool   `json:"isOpen"`
	ID     string `json:"id"`
	Name   string `json:"name"`
}

// Store owns the history record collection. It is safe for concurrent use.
type Store struct {
	mu               sync.Mutex
	records          []model.HistoryRecord
	editing          *EditingSession
	showLimitWarning bool
	deleteConfirm    DeleteConfirm

	now       func() time.Time
	newID     func() string
	persister Persister
	max       int
}

// NewStore constructs an empty store holding at most maxRecords records. A
// maxRecords of zero or less uses MaxRecords. A nil persister disables
// persistence; nil now/newID fall back to the wall clock and the history id
// generator.
func NewStore(persister Persister, now func() time.Time, newID func() string, maxRecords int) *Store {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = ident.HistoryID
	}
	if maxRecords <= 0 {
		maxRecords = MaxRecords
	}
	return &Store{now: now, newID: newID, persister: persister, max: maxRecords}
}

// Hydrate replaces the record collection with previously persisted records,
// re-establishing the descending-timestamp order. Transient state is reset.
func (s *Store) Hydrate(records []model.HistoryRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]model.HistoryRecord, len(records))
	for i, r := range records {
		s.records[i] = r.Clone()
	}
	s.sortLocked()
	s.editing = nil
	s.showLimitWarning = false
	s.deleteConfirm = DeleteConfirm{}
}

// Records returns a deep copy of the collection, newest first.
func (s *Store) Records() []model.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.HistoryRecord, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	return out
}

// Save snapshots the five live collections into a new record named after the
// current local date/time. It refuses to save past capacity and when the
// generated schedule is empty.
func (s *Store) Save(staffList []model.StaffMember, unavailabilityList []model.Unavailability, weeklyNeeds model.WeeklyNeeds, shiftDefinitions model.ShiftDefinitions, generatedSchedule model.Schedule) OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.records) >= s.max {
		return OpResult{
			Error:        fmt.Sprintf("history limit of %d records reached, delete a record first", s.max),
			LimitReached: true,
		}
	}
	if len(generatedSchedule) == 0 {
		return fail("nothing to save: no schedule has been generated")
	}

	now := s.now()
	record := model.HistoryRecord{
		ID:        s.newID(),
		Name:      now.Format("2006-01-02 15:04"),
		Timestamp: now.UnixMilli(),
		Data: model.Snapshot{
			StaffList:          staffList,
			UnavailabilityList: unavailabilityList,
			WeeklyNeeds:        weeklyNeeds,
			ShiftDefinitions:   shiftDefinitions,
			GeneratedSchedule:  generatedSchedule,
		}.Clone(),
	}

	s.records = append(s.records, record)
	s.sortLocked()
	s.persistLocked()
	return ok()
}

// Delete removes the record with the given id.
func (s *Store) Delete(id string) OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return fail("record not found")
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	s.persistLocked()
	return ok()
}

// Load returns a deep copy of the record with the given id without mutating
// the store. Applying the snapshot onto the live stores is the caller's job.
func (s *Store) Load(id string) (*model.HistoryRecord, OpResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, fail("record not found")
	}
	record := s.records[idx].Clone()
	return &record, ok()
}

// Rename validates newName and applies it to the record with the given id.
// Only the name changes; id, timestamp and data are untouched.
func (s *Store) Rename(id, newName string) OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renameLocked(id, newName)
}

// ClearAll unconditionally wipes the collection.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.persistLocked()
}

// StartEditing begins an inline rename of the given record, abandoning any
// prior uncommitted edit.
func (s *Store) StartEditing(id, currentName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = &EditingSession{ID: id, TempName: currentName}
}

// UpdateEditingName replaces the in-flight name and clears any stale
// validation error. Validation runs again only on save.
func (s *Store) UpdateEditingName(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return
	}
	s.editing.TempName = text
	s.editing.Error = ""
}

// CancelEditing discards the in-flight rename without persisting anything.
func (s *Store) CancelEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = nil
}

// SaveEditing commits the in-flight rename. On validation failure the session
// stays active with its error populated.
func (s *Store) SaveEditing() OpResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.editing == nil {
		return fail("no record is being edited")
	}
	res := s.renameLocked(s.editing.ID, s.editing.TempName)
	if !res.Success {
		s.editing.Error = res.Error
		return res
	}
	s.editing = nil
	return res
}

// Editing returns a copy of the active editing session, or nil.
func (s *Store) Editing() *EditingSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editing == nil {
		return nil
	}
	e := *s.editing
	return &e
}

// SetShowLimitWarning sets the transient capacity-warning flag.
func (s *Store) SetShowLimitWarning(show bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showLimitWarning = show
}

// ShowLimitWarning reports the transient capacity-warning flag.
func (s *Store) ShowLimitWarning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showLimitWarning
}

// SetDeleteConfirm sets the transient delete-confirmation dialog state.
func (s *Store) SetDeleteConfirm(dc DeleteConfirm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteConfirm = dc
}

// DeleteConfirmState reports the transient delete-confirmation dialog state.
func (s *Store) DeleteConfirmState() DeleteConfirm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteConfirm
}

func (s *Store) renameLocked(id, newName string) OpResult {
	idx := s.indexLocked(id)
	if idx < 0 {
		return fail("record not found")
	}

	name := strings.TrimSpace(newName)
	if name == "" {
		return fail("name cannot be empty")
	}
	if n := utf8.RuneCountInString(name); n < 2 || n > 50 {
		return fail("name must be between 2 and 50 characters")
	}
	if strings.ContainsAny(name, forbiddenNameChars) {
		return fail(`name cannot contain any of < > : " / \ | ? *`)
	}
	lower := strings.ToLower(name)
	for i, r := range s.records {
		if i != idx && strings.ToLower(r.Name) == lower {
			return fail("a record with this name already exists")
		}
	}

	s.records[idx].Name = name
	s.persistLocked()
	return ok()
}

func (s *Store) indexLocked(id string) int {
	for i, r := range s.records {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// sortLocked re-establishes the newest-first ordering invariant.
func (s *Store) sortLocked() {
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Timestamp > s.records[j].Timestamp
	})
}

// persistLocked pushes the current collection to the persister. Persistence
// failures do not roll back the in-memory transition; they are logged and the
// next successful write repairs the stored copy.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	out := make([]model.HistoryRecord, len(s.records))
	for i, r := range s.records {
		out[i] = r.Clone()
	}
	if err := s.persister.SaveRecords(out); err != nil {
		log.Printf("Warning: failed to persist history records: %v", err)
	}
}
