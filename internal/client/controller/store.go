package controller

import (
	"context"

	"github.com/akarpovs/stockkeeper/internal/client/gateway"
	"github.com/akarpovs/stockkeeper/internal/client/models"
	"github.com/akarpovs/stockkeeper/internal/logging"
)

// Store holds the fetched item collection. It is refreshed wholesale after
// every mutation; there is no optimistic local patching. Observers see
// either the old collection or the new one, never a partial mix.
type Store struct {
	client gateway.Client
	logger logging.Logger

	items []models.Item

	// issued is the generation of the most recently issued refresh.
	// A completing fetch is applied only if its generation still matches,
	// so a slow response can never clobber a newer one.
	issued uint64
}

// NewStore builds an empty store backed by the given gateway client.
func NewStore(client gateway.Client, logger logging.Logger) *Store {
	return &Store{client: client, logger: logger.With("component", "store")}
}

// Refresh fetches the full collection, drops logically deleted records
// (blank name or description), and replaces the in-memory collection in a
// single step. On gateway failure the previous contents are kept and the
// error is returned.
func (s *Store) Refresh(ctx context.Context) error {
	s.issued++
	gen := s.issued

	fetched, err := s.client.List(ctx)
	if err != nil {
		s.logger.Error(ctx, "refresh failed, keeping previous collection", "err", err)
		return err
	}

	if gen != s.issued {
		s.logger.Warn(ctx, "dropping stale refresh response", "generation", gen, "latest", s.issued)
		return nil
	}

	visible := make([]models.Item, 0, len(fetched))
	for _, item := range fetched {
		if item.Deleted() {
			continue
		}
		visible = append(visible, item)
	}
	s.items = visible

	s.logger.Debug(ctx, "collection replaced", "fetched", len(fetched), "visible", len(visible))
	return nil
}

// Items returns a copy of the displayed collection.
func (s *Store) Items() []models.Item {
	out := make([]models.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Lookup finds an item by id in the current collection. This is the local,
// synchronous lookup used by the update rule; it never touches the gateway.
func (s *Store) Lookup(id string) (models.Item, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}
