// Package models defines the inventory record shapes exchanged with the
// gateway and the form/selection state carried by the client.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Item is one inventory record as served by the gateway.
//
// ID is assigned client-side at creation time and never changes. CreatedBy
// and CreatedAt are stamped at creation and immutable thereafter. An item
// with an empty Name or Description is logically deleted: the row still
// exists at the gateway, but it must never be displayed.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Deleted reports whether the item is logically deleted (soft delete via
// blanked required fields).
func (i Item) Deleted() bool {
	return i.Name == "" || i.Description == ""
}

// Validate checks the structural invariants every gateway record must
// satisfy before being admitted into the store. Blank name/description are
// allowed here: soft-deleted rows are valid on the wire and filtered later.
func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("item has no id")
	}
	if i.Quantity < 0 {
		return fmt.Errorf("item %s: negative quantity %d", i.ID, i.Quantity)
	}
	return nil
}

// Tombstone is the overwrite record posted to the gateway to soft-delete an
// item. Only the id and the blanked required fields are sent; quantity and
// audit fields are deliberately omitted and left to the gateway.
type Tombstone struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewTombstone builds the soft-delete payload for the given item id.
func NewTombstone(id string) Tombstone {
	return Tombstone{ID: id, Name: "", Description: ""}
}

// ParseItems decodes and validates a gateway list response. Any record that
// fails validation rejects the whole response: a partially valid collection
// never reaches the store.
func ParseItems(data []byte) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding item list: %w", err)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("invalid item record: %w", err)
		}
	}
	return items, nil
}
