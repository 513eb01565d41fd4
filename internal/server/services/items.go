// Package services holds the gateway's business logic between the HTTP
// handlers and the repositories.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/akarpovs/stockkeeper/internal/common"
	"github.com/akarpovs/stockkeeper/internal/logging"
	"github.com/akarpovs/stockkeeper/internal/server/models"
	"github.com/akarpovs/stockkeeper/internal/server/repositories/items"
)

// ItemService serves inventory reads and writes.
type ItemService struct {
	repo   items.Repository
	logger logging.Logger
}

func NewItemService(repo items.Repository, logger logging.Logger) *ItemService {
	return &ItemService{repo: repo, logger: logger}
}

// List returns every stored row, soft-deleted ones included. Filtering
// blanked rows out is left to the caller.
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "listing items", "error", err)
		return nil, common.ErrInternal
	}
	return list, nil
}

// Upsert stores the item, fully replacing any existing row with the same
// id. Blank name or description is accepted; that is how rows are
// soft-deleted.
func (s *ItemService) Upsert(ctx context.Context, item *models.Item) error {
	if err := validateItem(item); err != nil {
		return err
	}

	if err := s.repo.Upsert(ctx, item); err != nil {
		s.logger.Error(ctx, "upserting item", "id", item.ID, "error", err)
		return common.ErrInternal
	}
	return nil
}

func validateItem(item *models.Item) error {
	if strings.TrimSpace(item.ID) == "" {
		return fmt.Errorf("%w: id is required", common.ErrValidation)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", common.ErrValidation)
	}
	return nil
}
