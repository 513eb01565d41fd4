package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDeleted(t *testing.T) {
	assert.False(t, Item{Name: "Bolt", Description: "M4 bolt"}.Deleted())
	assert.True(t, Item{Name: "", Description: "M4 bolt"}.Deleted())
	assert.True(t, Item{Name: "Bolt", Description: ""}.Deleted())
}

func TestItemValidate(t *testing.T) {
	valid := Item{ID: "id-1", Name: "Bolt", Description: "M4 bolt", Quantity: 50}
	require.NoError(t, valid.Validate())

	noID := valid
	noID.ID = ""
	require.Error(t, noID.Validate())

	negative := valid
	negative.Quantity = -1
	require.Error(t, negative.Validate())

	// Soft-deleted rows are structurally valid on the wire.
	blank := Item{ID: "id-2", Name: "", Description: ""}
	require.NoError(t, blank.Validate())
}

func TestParseItems(t *testing.T) {
	data := []byte(`[
		{"id":"a","name":"Bolt","description":"M4 bolt","quantity":50,"createdBy":"alice","createdAt":"2024-03-01T10:00:00Z"},
		{"id":"b","name":"","description":"","quantity":0,"createdBy":"bob","createdAt":"2024-03-02T10:00:00Z"}
	]`)

	items, err := ParseItems(data)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bolt", items[0].Name)
	assert.Equal(t, 50, items[0].Quantity)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), items[0].CreatedAt)
	assert.True(t, items[1].Deleted())
}

func TestParseItemsRejectsWholeResponse(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "missing id", data: `[{"name":"x","description":"y","quantity":1}]`},
		{name: "negative quantity", data: `[{"id":"a","name":"x","description":"y","quantity":-5}]`},
		{name: "malformed timestamp", data: `[{"id":"a","name":"x","description":"y","quantity":1,"createdAt":"yesterday"}]`},
		{name: "not an array", data: `{"id":"a"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseItems([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestNewTombstoneBlanksOnlyRequiredFields(t *testing.T) {
	ts := NewTombstone("id-9")
	assert.Equal(t, Tombstone{ID: "id-9"}, ts)
}
