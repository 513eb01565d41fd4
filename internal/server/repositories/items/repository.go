// Package items persists inventory items.
package items

import (
	"context"

	"github.com/akarpovs/stockkeeper/internal/dbx"
	"github.com/akarpovs/stockkeeper/internal/server/models"
)

// Repository stores inventory items. Soft-deleted items are rows whose name
// and description are blank, stored like any other row.
type Repository interface {
	// WithTx returns a copy of the repository bound to the given handle.
	WithTx(tx dbx.DBTX) Repository
	// List returns every row, soft-deleted ones included.
	List(ctx context.Context) ([]models.Item, error)
	// Get returns a row by id, or common.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Item, error)
	// Upsert inserts the row, or fully replaces an existing row with the
	// same id.
	Upsert(ctx context.Context, item *models.Item) error
}
