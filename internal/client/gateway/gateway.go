// Package gateway contains the client for the remote inventory gateway:
// the REST collaborator owning persistence. The gateway exposes exactly two
// operations: a full list and an upsert keyed by item id. Deletion is not a
// separate endpoint; it is an upsert of a record with blanked required fields.
package gateway

import (
	"context"

	"github.com/akarpovs/stockkeeper/internal/client/models"
)

// AuthMode selects the credential attached to gateway requests. Reads must
// work whether or not a session exists, so an unauthenticated client falls
// back to the shared API key instead of a bearer token.
type AuthMode string

const (
	ModeAPIKey AuthMode = "apikey"
	ModeBearer AuthMode = "bearer"
)

// Client is the transport used by the view-state controller to reach the
// inventory gateway.
type Client interface {
	// List fetches the full item collection. No filtering happens here;
	// soft-deleted records are returned as stored.
	List(ctx context.Context) ([]models.Item, error)

	// Upsert creates or replaces one item record by id. The response body
	// is not otherwise consumed.
	Upsert(ctx context.Context, item models.Item) error

	// SoftDelete upserts a tombstone record (id plus blank name and
	// description) for the given item id.
	SoftDelete(ctx context.Context, id string) error

	// UseBearer switches subsequent requests to bearer-token auth.
	UseBearer(token string)

	// UseAPIKey switches subsequent requests back to API-key auth.
	UseAPIKey()

	// Close releases transport resources.
	Close() error
}
