// Package editor provides the entity state store for the fixed-coordinate
// editor: tables at absolute pixel positions, with collision-checked
// placement and movement.
package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"

	"tableplan/internal/blob"
	"tableplan/internal/placement"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

// Command errors. All are recoverable: a rejected command leaves the state
// untouched.
var (
	ErrMissingLabel   = errors.New("table number is required")
	ErrDuplicateLabel = errors.New("a table with this number already exists")
	ErrOverlap        = errors.New("position overlaps another table")
	ErrNotFound       = errors.New("no such table")
)

// EventType identifies store events.
type EventType int

const (
	EventTablesChanged EventType = iota
	EventSelectionChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the authoritative table collection and the selection pointer
// for the fixed-coordinate editor. All mutations go through command methods;
// readers get copies, never live references.
type State struct {
	mu sync.RWMutex

	canvas     geometry.Size
	placer     *placement.Placer
	tables     []*table.Table
	selectedID string

	listeners map[EventType][]EventListener
}

// NewState creates an empty editor state for the given canvas size.
func NewState(canvas geometry.Size, rng *rand.Rand) *State {
	return &State{
		canvas:    canvas,
		placer:    placement.NewPlacer(canvas, rng),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// Tables returns a snapshot copy of the table collection.
func (s *State) Tables() []table.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]table.Table, len(s.tables))
	for i, t := range s.tables {
		out[i] = *t
	}
	return out
}

// Selected returns a copy of the selected table, or nil if none.
func (s *State) Selected() *table.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t := s.find(s.selectedID)
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// SetPlacement overrides the collision buffer and the free-position
// sampling attempt limit.
func (s *State) SetPlacement(buffer float64, maxAttempts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placer.Buffer = buffer
	s.placer.MaxAttempts = maxAttempts
}

// SelectedID returns the selected table ID, or "".
func (s *State) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// AddTable creates a table with the given number and seat count, sizes it
// from the seat count, and places it away from existing tables. The number
// must be non-blank and unique.
func (s *State) AddTable(number string, seats int) (*table.Table, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrMissingLabel
	}

	s.mu.Lock()
	for _, t := range s.tables {
		if t.Number == number {
			s.mu.Unlock()
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLabel, number)
		}
	}

	size := table.FootprintForSeats(seats)
	t := &table.Table{
		ID:     uuid.NewString(),
		Number: number,
		X:      placement.Margin,
		Y:      placement.Margin,
		Width:  size.Width,
		Height: size.Height,
		Seats:  seats,
	}

	pos := s.placer.FindFreePosition(t.Bounds(), s.boundsExcept(""))
	t.X, t.Y = pos.X, pos.Y
	s.tables = append(s.tables, t)
	cp := *t
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
	return &cp, nil
}

// SelectTable selects the table with the given ID, or deselects when id is
// empty or already selected.
func (s *State) SelectTable(id string) {
	s.mu.Lock()
	if id == s.selectedID {
		s.selectedID = ""
	} else {
		s.selectedID = id
	}
	selected := s.selectedID
	s.mu.Unlock()

	s.Emit(EventSelectionChanged, selected)
}

// MoveTable commits a new position if it collides with no other table.
// On ErrOverlap the position is unchanged and the caller should revert any
// visual preview to the pre-drag position.
func (s *State) MoveTable(id string, x, y float64) error {
	s.mu.Lock()
	t := s.find(id)
	if t == nil {
		s.mu.Unlock()
		return ErrNotFound
	}

	proposed := geometry.Rect{X: x, Y: y, Width: t.Width, Height: t.Height}
	if !placement.CanMove(proposed, s.boundsExcept(id), s.placer.Buffer) {
		s.mu.Unlock()
		return ErrOverlap
	}

	t.X, t.Y = x, y
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
	return nil
}

// RotateTable sets a table's rotation. The value is stored as given; the UI
// snaps to 45 degree steps before calling.
func (s *State) RotateTable(id string, degrees float64) error {
	s.mu.Lock()
	t := s.find(id)
	if t == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	t.Rotation = degrees
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
	return nil
}

// RemoveTable deletes a table and clears the selection if it pointed at it.
func (s *State) RemoveTable(id string) error {
	s.mu.Lock()
	idx := -1
	for i, t := range s.tables {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.tables = append(s.tables[:idx], s.tables[idx+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
	s.Emit(EventSelectionChanged, s.SelectedID())
	return nil
}

// RenameTable updates the selected table's number. No-op without a
// selection; the new number must be non-blank and unique.
func (s *State) RenameTable(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return ErrMissingLabel
	}

	s.mu.Lock()
	t := s.find(s.selectedID)
	if t == nil {
		s.mu.Unlock()
		return nil
	}
	for _, other := range s.tables {
		if other.ID != t.ID && other.Number == number {
			s.mu.Unlock()
			return fmt.Errorf("%w: %q", ErrDuplicateLabel, number)
		}
	}
	t.Number = number
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
	return nil
}

// SetSeats updates the selected table's seat count and footprint. No-op
// without a selection.
func (s *State) SetSeats(seats int) {
	s.mu.Lock()
	t := s.find(s.selectedID)
	if t == nil {
		s.mu.Unlock()
		return
	}
	t.SetSeats(seats)
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
}

// persistedState is the shape of the saved blob.
type persistedState struct {
	Tables []*table.Table `json:"tables"`
}

// Save serializes the table collection to the blob store under key.
func (s *State) Save(store blob.Store, key string) error {
	s.mu.RLock()
	data, err := json.MarshalIndent(persistedState{Tables: s.tables}, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}
	return store.Save(key, data)
}

// Load replaces the table collection from the blob store. An absent or
// malformed blob yields an empty collection; loading never fails the caller.
func (s *State) Load(store blob.Store, key string) error {
	data, ok, err := store.Load(key)
	if err != nil {
		return err
	}

	var saved persistedState
	if !ok || json.Unmarshal(data, &saved) != nil || saved.Tables == nil {
		saved.Tables = make([]*table.Table, 0)
	}

	s.mu.Lock()
	s.tables = saved.Tables
	s.selectedID = ""
	s.mu.Unlock()

	s.Emit(EventTablesChanged, nil)
	s.Emit(EventSelectionChanged, "")
	return nil
}

// find returns the table with the given ID. Caller must hold the lock.
func (s *State) find(id string) *table.Table {
	if id == "" {
		return nil
	}
	for _, t := range s.tables {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// boundsExcept collects bounding boxes of all tables except the given ID.
// Caller must hold the lock.
func (s *State) boundsExcept(id string) []geometry.Rect {
	out := make([]geometry.Rect, 0, len(s.tables))
	for _, t := range s.tables {
		if t.ID == id {
			continue
		}
		out = append(out, t.Bounds())
	}
	return out
}
