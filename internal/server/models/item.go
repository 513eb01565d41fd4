// Package models defines the records persisted by the inventory gateway.
package models

import "time"

// Item is one inventory record. The gateway stores soft-deleted rows
// (blank name or description) like any other row; hiding them is the
// client's concern.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}
