package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/akarpovs/stockkeeper/internal/client/gateway"
	"github.com/akarpovs/stockkeeper/internal/client/identity"
	"github.com/akarpovs/stockkeeper/internal/client/models"
	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/google/uuid"
)

const timeFormat = time.RFC3339

// Seams for deterministic tests.
var (
	newID   = uuid.NewString
	timeNow = time.Now
)

// Controller orchestrates the store, form, selection, and edit mode in
// response to user actions. Authorization is enforced here, inside the
// actions themselves, not merely by hiding controls in the UI.
type Controller struct {
	store  *Store
	client gateway.Client
	idp    identity.Provider
	logger logging.Logger
	state  State
}

// New wires a controller over its collaborators with the initial view state.
func New(store *Store, client gateway.Client, idp identity.Provider, logger logging.Logger) *Controller {
	return &Controller{
		store:  store,
		client: client,
		idp:    idp,
		logger: logger.With("component", "controller"),
		state:  NewState(),
	}
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	return c.state
}

// Store exposes the backing item store (for listing and local lookups).
func (c *Controller) Store() *Store {
	return c.store
}

// Refresh re-fetches the displayed collection.
func (c *Controller) Refresh(ctx context.Context) error {
	return c.store.Refresh(ctx)
}

// StartCreate switches the form to a pending create with template values.
func (c *Controller) StartCreate() {
	c.state.StartCreate()
}

// StartUpdate loads item into the form and arms update mode. No ownership
// guard runs here; the guard lives in Submit so a direct call cannot bypass
// it either way.
func (c *Controller) StartUpdate(item models.Item) {
	c.state.StartUpdate(item)
}

// SetField mutates one form field. Rejected for unauthenticated sessions,
// which see a read-only form.
func (c *Controller) SetField(field, value string) error {
	if !CanEditForm(c.idp.Current()) {
		return common.ErrNotAuthorized
	}
	return c.state.Form.Set(field, value)
}

// Cancel abandons the in-progress edit and resets the form.
func (c *Controller) Cancel() {
	c.state.Cancel()
}

// Select shows a copy of item in the detail pane.
func (c *Controller) Select(item models.Item) {
	c.state.Selection.Set(item)
}

// Selected returns the detail-pane snapshot, if any.
func (c *Controller) Selected() (models.Item, bool) {
	return c.state.Selection.Get()
}

// CanEdit reports whether form fields are currently mutable.
func (c *Controller) CanEdit() bool {
	return CanEditForm(c.idp.Current())
}

// CanMutate reports whether the acting identity may update or delete item.
func (c *Controller) CanMutate(item models.Item) bool {
	return CanMutateItem(c.idp.Current(), item)
}

// Submit dispatches the form to a create or an update depending on the edit
// mode, then resets the form and refreshes the store.
//
// A validation rejection (blank required field on create) or an
// authorization denial leaves the form populated for correction and issues
// no gateway request. A gateway failure is logged but the form is still
// reset and a refresh still attempted; the store keeps last-known-good data
// if that refresh fails too.
func (c *Controller) Submit(ctx context.Context) error {
	if c.state.Edit.Active {
		return c.submitUpdate(ctx)
	}
	return c.submitCreate(ctx)
}

func (c *Controller) submitCreate(ctx context.Context) error {
	form := c.state.Form

	if form.Name == "" || form.Description == "" {
		c.logger.Info(ctx, "create rejected: blank name or description")
		return common.ErrValidation
	}

	sess := c.idp.Current()
	if !CanEditForm(sess) {
		c.logger.Info(ctx, "create denied: not authenticated")
		return common.ErrNotAuthorized
	}

	item := models.Item{
		ID:          newID(),
		Name:        form.Name,
		Description: form.Description,
		Quantity:    form.Quantity,
		CreatedBy:   sess.Username,
		CreatedAt:   timeNow().UTC(),
	}

	if err := c.client.Upsert(ctx, item); err != nil {
		c.logger.Error(ctx, "create upsert failed", "id", item.ID, "err", err)
	}

	return c.finishSubmit(ctx)
}

func (c *Controller) submitUpdate(ctx context.Context) error {
	targetID := c.state.Edit.TargetID

	previous, ok := c.store.Lookup(targetID)
	if !ok {
		c.logger.Warn(ctx, "update target no longer in collection", "id", targetID)
		return fmt.Errorf("item %s: %w", targetID, common.ErrNotFound)
	}

	sess := c.idp.Current()
	if !CanMutateItem(sess, previous) {
		c.logger.Info(ctx, "update denied", "id", targetID, "owner", previous.CreatedBy)
		return common.ErrNotAuthorized
	}

	// Overlay the editable fields; creator and creation time are preserved
	// from the pre-update record, never from the form.
	updated := models.Item{
		ID:          previous.ID,
		Name:        c.state.Form.Name,
		Description: c.state.Form.Description,
		Quantity:    c.state.Form.Quantity,
		CreatedBy:   previous.CreatedBy,
		CreatedAt:   previous.CreatedAt,
	}

	if err := c.client.Upsert(ctx, updated); err != nil {
		c.logger.Error(ctx, "update upsert failed", "id", updated.ID, "err", err)
	}

	// Reflect the edit in the detail pane immediately instead of waiting
	// for the refresh round-trip.
	if selected, ok := c.state.Selection.Get(); ok && selected.ID == targetID {
		c.state.Selection.Set(updated)
	}

	return c.finishSubmit(ctx)
}

// finishSubmit performs the terminal-action reset and the post-mutation
// refresh shared by both submit paths.
func (c *Controller) finishSubmit(ctx context.Context) error {
	c.state.StartCreate()
	return c.store.Refresh(ctx)
}

// Delete soft-deletes item by posting a blank-field tombstone. It is
// authorized only for the authenticated creator of the item; any other
// caller gets a logged no-op so the UI never leaks authorization details.
// The refresh and selection cleanup run whether or not the gateway call
// succeeded.
func (c *Controller) Delete(ctx context.Context, item models.Item) error {
	sess := c.idp.Current()
	if !CanMutateItem(sess, item) {
		c.logger.Info(ctx, "delete denied", "id", item.ID, "owner", item.CreatedBy, "actor", sess.Username)
		return common.ErrNotAuthorized
	}

	if err := c.client.SoftDelete(ctx, item.ID); err != nil {
		c.logger.Error(ctx, "soft delete failed", "id", item.ID, "err", err)
	}

	err := c.store.Refresh(ctx)

	c.state.Selection.ClearIfMatches(item.ID)
	if c.state.Edit.Active && c.state.Edit.TargetID == item.ID {
		c.state.StartCreate()
	}
	return err
}
