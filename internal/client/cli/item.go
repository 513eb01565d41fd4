package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/akarpovs/stockkeeper/internal/client/models"
	"github.com/akarpovs/stockkeeper/internal/common"
)

// List prints one line per displayed item. Soft-deleted records never make
// it into the store, so there is nothing to hide here.
func (a *App) List(ctx context.Context) error {
	items := a.ctrl.Store().Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No inventory items")
		return nil
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "%s  %-20s qty=%-5d by %s\n", item.ID, item.Name, item.Quantity, item.CreatedBy)
	}
	return nil
}

// RefreshList re-fetches the collection from the gateway.
func (a *App) RefreshList(ctx context.Context) error {
	if err := a.ctrl.Refresh(ctx); err != nil {
		log.Printf("Refresh failed: %s", err.Error())
		return err
	}
	return a.List(ctx)
}

// ViewItem prompts for an id and shows the item in the detail pane. The
// available actions are listed according to the ownership check, mirroring
// which buttons would render.
func (a *App) ViewItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter item id to view", a.out)
	if err != nil {
		return err
	}

	item, ok := a.ctrl.Store().Lookup(id)
	if !ok {
		fmt.Fprintf(a.out, "No item with id %s\n", id)
		return nil
	}

	a.ctrl.Select(item)
	a.printDetailPane()
	return nil
}

func (a *App) printDetailPane() {
	item, ok := a.ctrl.Selected()
	if !ok {
		fmt.Fprintln(a.out, "Nothing selected")
		return
	}

	fmt.Fprintf(a.out, "Name:        %s\n", item.Name)
	fmt.Fprintf(a.out, "Description: %s\n", item.Description)
	fmt.Fprintf(a.out, "Quantity:    %d\n", item.Quantity)
	fmt.Fprintf(a.out, "Created by:  %s at %s\n", item.CreatedBy, item.CreatedAt.Format(time.RFC3339))
	if a.ctrl.CanMutate(item) {
		fmt.Fprintln(a.out, "Actions:     edit, delete")
	}
}

// NewItem arms the form for a pending create with template values.
func (a *App) NewItem(ctx context.Context) error {
	a.ctrl.StartCreate()
	return a.ShowForm(ctx)
}

// EditItem prompts for an id and loads that item into the form.
func (a *App) EditItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter item id to edit", a.out)
	if err != nil {
		return err
	}

	item, ok := a.ctrl.Store().Lookup(id)
	if !ok {
		fmt.Fprintf(a.out, "No item with id %s\n", id)
		return nil
	}
	if !a.ctrl.CanMutate(item) {
		fmt.Fprintln(a.out, "You can only edit items you created")
		return nil
	}

	a.ctrl.StartUpdate(item)
	return a.ShowForm(ctx)
}

// SetFormField prompts for a field name and value and applies it to the
// in-progress form.
func (a *App) SetFormField(ctx context.Context) error {
	field, err := getSimpleText(a.reader, "Field (name, description, quantity)", a.out)
	if err != nil {
		return err
	}
	value, err := getSimpleText(a.reader, "Value", a.out)
	if err != nil {
		return err
	}

	if err := a.ctrl.SetField(field, value); err != nil {
		if errors.Is(err, common.ErrNotAuthorized) {
			fmt.Fprintln(a.out, "Login to create or update an inventory item")
			return nil
		}
		log.Printf("Set failed: %s", err.Error())
		return err
	}
	return a.ShowForm(ctx)
}

// ShowForm prints the draft currently held in the form.
func (a *App) ShowForm(ctx context.Context) error {
	st := a.ctrl.State()
	if st.Edit.Active {
		fmt.Fprintf(a.out, "Updating item %s\n", st.Edit.TargetID)
	} else {
		fmt.Fprintln(a.out, "Creating a new item")
	}
	fmt.Fprintf(a.out, "  name:        %s\n", st.Form.Name)
	fmt.Fprintf(a.out, "  description: %s\n", st.Form.Description)
	fmt.Fprintf(a.out, "  quantity:    %d\n", st.Form.Quantity)
	return nil
}

// Submit dispatches the form to create or update. Validation and
// authorization outcomes are reported inline; the form survives them so the
// user can correct and retry.
func (a *App) Submit(ctx context.Context) error {
	err := a.ctrl.Submit(ctx)
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, "Name and description are required")
	case errors.Is(err, common.ErrNotAuthorized):
		fmt.Fprintln(a.out, "Login to create or update an inventory item")
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "The item being updated no longer exists")
	case err != nil:
		log.Printf("Submit: %s", err.Error())
	default:
		fmt.Fprintln(a.out, "Saved")
	}
	return err
}

// CancelEdit abandons the in-progress edit.
func (a *App) CancelEdit(ctx context.Context) error {
	a.ctrl.Cancel()
	fmt.Fprintln(a.out, "Edit cancelled")
	return nil
}

// DeleteItem prompts for an id and soft-deletes the item. The ownership
// rule is enforced by the controller; a denial is reported without detail.
func (a *App) DeleteItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter item id to delete", a.out)
	if err != nil {
		return err
	}

	item, ok := a.ctrl.Store().Lookup(id)
	if !ok {
		fmt.Fprintf(a.out, "No item with id %s\n", id)
		return nil
	}

	if err := a.ctrl.Delete(ctx, item); err != nil {
		if errors.Is(err, common.ErrNotAuthorized) {
			fmt.Fprintln(a.out, "You can only delete items you created")
			return nil
		}
		log.Printf("Delete: %s", err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Deleted")
	return nil
}

// selectedOrZero is a small helper for tests inspecting the detail pane.
func (a *App) selectedOrZero() models.Item {
	item, _ := a.ctrl.Selected()
	return item
}
