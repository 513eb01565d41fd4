// Package controller implements the inventory view-state controller: the
// logic keeping the remote-backed item list, the single detail-view
// selection, and the single edit/create form consistent under user actions
// and gateway round-trips.
//
// All state lives in one explicit State value owned by the Controller and
// mutated only by named transitions, so every transition is deterministic
// and unit-testable. The execution model is single-threaded and
// event-driven; nothing here is synchronized.
package controller

import (
	"fmt"
	"strconv"

	"github.com/akarpovs/stockkeeper/internal/client/models"
)

// Default form template applied after every successful create or update and
// before any cancel.
const (
	DefaultName        = "Inventory Name"
	DefaultDescription = "Inventory Description"
)

// Form is the mutable draft of an inventory item being created or updated.
// It may be partially populated and carries the audit fields of the record
// under update so they survive the round-trip untouched.
type Form struct {
	ID          string
	Name        string
	Description string
	Quantity    int
	CreatedBy   string
	CreatedAt   string
}

// DefaultForm returns the initial form template.
func DefaultForm() Form {
	return Form{Name: DefaultName, Description: DefaultDescription, Quantity: 0}
}

// Set mutates one named field in place. No validation happens here; presence
// checks are deferred to submit. Unknown field names and non-numeric
// quantity values are rejected.
func (f *Form) Set(field, value string) error {
	switch field {
	case "name":
		f.Name = value
	case "description":
		f.Description = value
	case "quantity":
		q, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("quantity must be a number: %w", err)
		}
		f.Quantity = q
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// EditMode distinguishes a pending create (inactive) from an in-progress
// update of TargetID (active).
type EditMode struct {
	Active   bool
	TargetID string
}

// Selection holds at most one item snapshot shown in the read-only detail
// pane. The snapshot is detached: a copy by value, not a reference into the
// store.
type Selection struct {
	item *models.Item
}

// Set replaces the selection with a copy of item.
func (s *Selection) Set(item models.Item) {
	copied := item
	s.item = &copied
}

// Get returns the selected snapshot, if any.
func (s *Selection) Get() (models.Item, bool) {
	if s.item == nil {
		return models.Item{}, false
	}
	return *s.item, true
}

// ClearIfMatches clears the selection only when the selected item's id
// equals id, so an unrelated deletion never disturbs an open detail view.
func (s *Selection) ClearIfMatches(id string) {
	if s.item != nil && s.item.ID == id {
		s.item = nil
	}
}

// State is the complete view state threaded through every transition.
type State struct {
	Form      Form
	Edit      EditMode
	Selection Selection
}

// NewState returns the initial view state: default form, pending create,
// empty selection.
func NewState() State {
	return State{Form: DefaultForm()}
}

// StartCreate resets the form to the default template and switches to
// pending-create mode. Selection is untouched.
func (st *State) StartCreate() {
	st.Form = DefaultForm()
	st.Edit = EditMode{}
}

// StartUpdate copies all fields of item into the form and switches to
// update mode targeting that item.
func (st *State) StartUpdate(item models.Item) {
	st.Form = Form{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Quantity:    item.Quantity,
		CreatedBy:   item.CreatedBy,
		CreatedAt:   item.CreatedAt.Format(timeFormat),
	}
	st.Edit = EditMode{Active: true, TargetID: item.ID}
}

// Cancel abandons the in-progress edit or create and resets to the
// pending-create template.
func (st *State) Cancel() {
	st.StartCreate()
}
