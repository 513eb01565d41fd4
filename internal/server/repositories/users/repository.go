// Package users persists accounts.
package users

import (
	"context"

	"github.com/akarpovs/stockkeeper/internal/dbx"
	"github.com/akarpovs/stockkeeper/internal/server/models"
)

// Repository stores accounts.
type Repository interface {
	// WithTx returns a copy of the repository bound to the given handle.
	WithTx(tx dbx.DBTX) Repository
	// Create inserts a new account.
	Create(ctx context.Context, user *models.User) error
	// GetByUsername returns an account by username, or common.ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
