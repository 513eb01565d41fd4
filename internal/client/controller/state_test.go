package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectionClearIfMatches(t *testing.T) {
	var s Selection
	s.Set(testItem("a", "Bolt", "alice"))

	s.ClearIfMatches("b")
	got, ok := s.Get()
	require.True(t, ok, "unrelated id must not disturb the selection")
	assert.Equal(t, "a", got.ID)

	s.ClearIfMatches("a")
	_, ok = s.Get()
	assert.False(t, ok)

	// Clearing an empty selection is harmless.
	s.ClearIfMatches("a")
}

func TestSelectionHoldsDetachedCopy(t *testing.T) {
	item := testItem("a", "Bolt", "alice")

	var s Selection
	s.Set(item)
	item.Name = "mutated"

	got, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, "Bolt", got.Name)
}

func TestNewStateDefaults(t *testing.T) {
	st := NewState()
	assert.Equal(t, DefaultForm(), st.Form)
	assert.False(t, st.Edit.Active)
	_, ok := st.Selection.Get()
	assert.False(t, ok)
}
