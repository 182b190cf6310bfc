package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkspaceStateMergeKeepsUnsetFields(t *testing.T) {
	state := WorkspaceState{
		InputValues: map[string]string{"search": "golang"},
		ActiveTab:   "results",
	}
	state.Merge(WorkspaceState{
		InputValues: map[string]string{"filter": "recent"},
	})

	assert.Equal(t, "golang", state.InputValues["search"])
	assert.Equal(t, "recent", state.InputValues["filter"])
	assert.Equal(t, "results", state.ActiveTab)
}

func TestWorkspaceStateMergeOverwritesProvided(t *testing.T) {
	pos := 42
	state := WorkspaceState{ActiveTab: "home"}
	state.Merge(WorkspaceState{ActiveTab: "settings", CursorPosition: &pos})

	assert.Equal(t, "settings", state.ActiveTab)
	if assert.NotNil(t, state.CursorPosition) {
		assert.Equal(t, 42, *state.CursorPosition)
	}
}

func TestSlotDefinitionAllows(t *testing.T) {
	def := SlotDefinition{ID: "primary", Type: "widget|iframe"}
	assert.True(t, def.Allows(SlotWidget))
	assert.True(t, def.Allows(SlotIframe))
	assert.False(t, def.Allows(SlotMedia))
}

func TestCachedLayoutExpired(t *testing.T) {
	entry := CachedLayout{}
	assert.True(t, entry.Expired(entry.ExpiresAt))
	assert.True(t, entry.Expired(entry.ExpiresAt.Add(1)))
	assert.False(t, entry.Expired(entry.ExpiresAt.Add(-1)))
}
