package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/intentdesk/internal/domain"
)

func TestRegistryResolvesBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{"Dashboard", "SingleWebsite", "SplitView", "FocusMode", "MediaHub"} {
		tpl, ok := r.Get(name)
		require.True(t, ok, "missing builtin %s", name)
		assert.Equal(t, name, tpl.Name)
		assert.NotEmpty(t, tpl.SlotDefinitions)
	}

	_, ok := r.Get("Nonexistent")
	assert.False(t, ok)
}

func TestRegistryFallbackIsDashboard(t *testing.T) {
	tpl := NewRegistry().Fallback()
	assert.Equal(t, domain.FallbackLayoutName, tpl.Name)
	assert.Len(t, tpl.SlotDefinitions, 4)
}

func TestRegistryNamesAreSorted(t *testing.T) {
	names := NewRegistry().Names()
	assert.Equal(t, []string{"Dashboard", "FocusMode", "MediaHub", "SingleWebsite", "SplitView"}, names)
}

func TestSlotDefinitionLookup(t *testing.T) {
	tpl, ok := NewRegistry().Get("Dashboard")
	require.True(t, ok)

	def, ok := tpl.Definition("tertiary")
	require.True(t, ok)
	assert.True(t, def.Allows(domain.SlotMedia))
	assert.False(t, def.Allows(domain.SlotIframe))

	_, ok = tpl.Definition("absent")
	assert.False(t, ok)

	assert.Equal(t, []string{"primary", "secondary", "tertiary", "quaternary"}, tpl.SlotIDs())
}
