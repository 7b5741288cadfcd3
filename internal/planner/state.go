// Package planner provides the entity state store for the multi-floor,
// percentage-coordinate designer. Positions are stored as fractions of the
// canvas, so saved layouts stay valid across viewport sizes.
package planner

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"tableplan/internal/blob"
	"tableplan/internal/floor"
	"tableplan/internal/table"
	"tableplan/pkg/geometry"
)

// Command errors. All are recoverable: a rejected command leaves the state
// untouched.
var (
	ErrMissingName = errors.New("floor name is required")
	ErrLastFloor   = errors.New("cannot delete the only remaining floor")
	ErrNotFound    = errors.New("no such table or floor")
)

// Seat count bounds for this variant.
const (
	MinSeats = 1
	MaxSeats = 10
)

// EventType identifies store events.
type EventType int

const (
	EventLayoutChanged EventType = iota
	EventFloorsChanged
	EventSelectionChanged
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds a layout (floors of percentage-coordinate tables), the active
// floor, and the ephemeral selection pointer. The selection always refers to
// at most one table on the active floor.
type State struct {
	mu sync.RWMutex

	canvas        geometry.Size
	layout        *floor.Layout
	activeFloorID string
	selectedID    string

	listeners map[EventType][]EventListener
}

// NewState creates a state holding a fresh layout with one default floor.
func NewState(layoutName string, canvas geometry.Size) *State {
	l := floor.NewLayout(layoutName, canvas)
	return &State{
		canvas:        canvas,
		layout:        l,
		activeFloorID: l.Floors[0].ID,
		listeners:     make(map[EventType][]EventListener),
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

// Canvas returns the current canvas size used for coordinate conversion.
func (s *State) Canvas() geometry.Size {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.canvas
}

// SetCanvas updates the canvas size. Stored percentages are untouched; pixel
// coordinates are always computed on demand from the current size.
func (s *State) SetCanvas(canvas geometry.Size) {
	s.mu.Lock()
	s.canvas = canvas
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// LayoutName returns the layout's display name.
func (s *State) LayoutName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout.Name
}

// Floors returns a deep-copy snapshot of all floors.
func (s *State) Floors() []*floor.Floor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*floor.Floor, len(s.layout.Floors))
	for i, f := range s.layout.Floors {
		out[i] = copyFloor(f)
	}
	return out
}

// ActiveFloorID returns the active floor's ID.
func (s *State) ActiveFloorID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeFloorID
}

// ActiveFloor returns a deep copy of the active floor.
func (s *State) ActiveFloor() *floor.Floor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.layout.FindFloor(s.activeFloorID)
	if f == nil {
		return nil
	}
	return copyFloor(f)
}

// SelectedID returns the selected table ID, or "".
func (s *State) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Selected returns a copy of the selected table, or nil if none.
func (s *State) Selected() *floor.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f := s.layout.FindFloor(s.activeFloorID)
	if f == nil || s.selectedID == "" {
		return nil
	}
	t := f.FindTable(s.selectedID)
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}

// SwitchFloor makes the given floor active and clears the selection.
func (s *State) SwitchFloor(id string) error {
	s.mu.Lock()
	if s.layout.FindFloor(id) == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.activeFloorID = id
	s.selectedID = ""
	s.mu.Unlock()

	s.Emit(EventFloorsChanged, nil)
	s.Emit(EventSelectionChanged, "")
	return nil
}

// AddFloor creates a floor and makes it active.
func (s *State) AddFloor(name string) (*floor.Floor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrMissingName
	}

	s.mu.Lock()
	f := floor.NewFloor(name)
	s.layout.Floors = append(s.layout.Floors, f)
	s.activeFloorID = f.ID
	s.selectedID = ""
	cp := copyFloor(f)
	s.mu.Unlock()

	s.Emit(EventFloorsChanged, nil)
	return cp, nil
}

// RemoveFloor deletes a floor and its tables. The last remaining floor can
// never be removed. Removing the active floor switches to the first
// remaining one.
func (s *State) RemoveFloor(id string) error {
	s.mu.Lock()
	if len(s.layout.Floors) <= 1 {
		s.mu.Unlock()
		return ErrLastFloor
	}

	idx := -1
	for i, f := range s.layout.Floors {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}

	s.layout.Floors = append(s.layout.Floors[:idx], s.layout.Floors[idx+1:]...)
	if s.activeFloorID == id {
		s.activeFloorID = s.layout.Floors[0].ID
		s.selectedID = ""
	}
	s.mu.Unlock()

	s.Emit(EventFloorsChanged, nil)
	return nil
}

// RenameFloor updates a floor's display name.
func (s *State) RenameFloor(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrMissingName
	}

	s.mu.Lock()
	f := s.layout.FindFloor(id)
	if f == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	f.Name = name
	s.mu.Unlock()

	s.Emit(EventFloorsChanged, nil)
	return nil
}

// AddTable creates a table at the canvas center of the active floor. The
// name is optional. Seat counts are clamped to the supported range. This
// variant intentionally performs no overlap check.
func (s *State) AddTable(name string, shape table.Shape, size table.Size, seats int) (*floor.Table, error) {
	if !shape.Valid() {
		shape = table.ShapeRound
	}
	if !size.Valid() {
		size = table.SizeMedium
	}
	if seats < MinSeats {
		seats = MinSeats
	}
	if seats > MaxSeats {
		seats = MaxSeats
	}

	s.mu.Lock()
	f := s.layout.FindFloor(s.activeFloorID)
	if f == nil {
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	t := floor.NewTable(strings.TrimSpace(name), shape, size, seats)
	t.XPercent = 50
	t.YPercent = 50
	f.Tables = append(f.Tables, t)
	cp := *t
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
	return &cp, nil
}

// SelectTable selects the table with the given ID on the active floor, or
// deselects when id is empty or already selected.
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

// MoveTable stores a new pixel position as percentages of the current
// canvas. Moves always commit in this variant.
func (s *State) MoveTable(id string, x, y float64) error {
	s.mu.Lock()
	t := s.findTable(id)
	if t == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	t.SetCenter(geometry.Point2D{X: x, Y: y}, s.canvas)
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
	return nil
}

// RotateTable sets a table's rotation. The value is stored as given; the UI
// snaps to 45 degree steps before calling.
func (s *State) RotateTable(id string, degrees float64) error {
	s.mu.Lock()
	t := s.findTable(id)
	if t == nil {
		s.mu.Unlock()
		return ErrNotFound
	}
	t.Rotation = degrees
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
	return nil
}

// RemoveTable deletes a table from the active floor and clears the selection
// if it pointed at it.
func (s *State) RemoveTable(id string) error {
	s.mu.Lock()
	f := s.layout.FindFloor(s.activeFloorID)
	if f == nil || !f.RemoveTable(id) {
		s.mu.Unlock()
		return ErrNotFound
	}
	cleared := false
	if s.selectedID == id {
		s.selectedID = ""
		cleared = true
	}
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
	if cleared {
		s.Emit(EventSelectionChanged, "")
	}
	return nil
}

// RenameTable updates the selected table's display name. No-op without a
// selection; an empty name is allowed, the label is optional.
func (s *State) RenameTable(name string) {
	s.mu.Lock()
	t := s.findTable(s.selectedID)
	if t == nil {
		s.mu.Unlock()
		return
	}
	t.Name = strings.TrimSpace(name)
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// SetSeats updates the selected table's seat count. No-op without a selection.
func (s *State) SetSeats(seats int) {
	if seats < MinSeats || seats > MaxSeats {
		return
	}
	s.mu.Lock()
	t := s.findTable(s.selectedID)
	if t == nil {
		s.mu.Unlock()
		return
	}
	t.Seats = seats
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// SetShape updates the selected table's shape. No-op without a selection.
func (s *State) SetShape(shape table.Shape) {
	if !shape.Valid() {
		return
	}
	s.mu.Lock()
	t := s.findTable(s.selectedID)
	if t == nil {
		s.mu.Unlock()
		return
	}
	t.Shape = shape
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// SetSize updates the selected table's size. No-op without a selection.
func (s *State) SetSize(size table.Size) {
	if !size.Valid() {
		return
	}
	s.mu.Lock()
	t := s.findTable(s.selectedID)
	if t == nil {
		s.mu.Unlock()
		return
	}
	t.Size = size
	s.mu.Unlock()

	s.Emit(EventLayoutChanged, nil)
}

// Save serializes the layout, stamping the current canvas dimensions.
func (s *State) Save(store blob.Store, key string) error {
	s.mu.Lock()
	s.layout.Dimensions = floor.NewDimensions(s.canvas)
	s.layout.Modified = time.Now()
	data, err := json.MarshalIndent(s.layout, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return store.Save(key, data)
}

// Load replaces the layout from the blob store. An absent blob, malformed
// JSON, or a blob without floors all fall back to a fresh layout with a
// single default floor; loading never fails the caller over bad data.
func (s *State) Load(store blob.Store, key string) error {
	data, ok, err := store.Load(key)
	if err != nil {
		return err
	}

	var loaded *floor.Layout
	if ok {
		var l floor.Layout
		if json.Unmarshal(data, &l) == nil && len(l.Floors) > 0 {
			loaded = &l
		}
	}

	s.mu.Lock()
	if loaded != nil {
		s.layout = loaded
	} else {
		s.layout = floor.NewLayout(key, s.canvas)
	}
	s.activeFloorID = s.layout.Floors[0].ID
	s.selectedID = ""
	s.mu.Unlock()

	s.Emit(EventFloorsChanged, nil)
	s.Emit(EventLayoutChanged, nil)
	s.Emit(EventSelectionChanged, "")
	return nil
}

// Snapshot returns a deep copy of the layout with the current canvas
// dimensions stamped in, suitable for export or inspection.
func (s *State) Snapshot() *floor.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := &floor.Layout{
		Version:    s.layout.Version,
		Name:       s.layout.Name,
		Created:    s.layout.Created,
		Modified:   s.layout.Modified,
		Dimensions: floor.NewDimensions(s.canvas),
		Floors:     make([]*floor.Floor, len(s.layout.Floors)),
	}
	for i, f := range s.layout.Floors {
		cp.Floors[i] = copyFloor(f)
	}
	return cp
}

// findTable looks up a table on the active floor. Caller must hold the lock.
func (s *State) findTable(id string) *floor.Table {
	if id == "" {
		return nil
	}
	f := s.layout.FindFloor(s.activeFloorID)
	if f == nil {
		return nil
	}
	return f.FindTable(id)
}

func copyFloor(f *floor.Floor) *floor.Floor {
	cp := &floor.Floor{ID: f.ID, Name: f.Name, Tables: make([]*floor.Table, len(f.Tables))}
	for i, t := range f.Tables {
		tc := *t
		cp.Tables[i] = &tc
	}
	return cp
}
