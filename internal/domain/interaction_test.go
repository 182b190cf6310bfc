package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDefaultsToLocalAction(t *testing.T) {
	assert.Equal(t, LocalAction, InteractionData{ElementText: "7"}.Classify())
	assert.Equal(t, LocalAction, InteractionData{WorkspaceIntent: "   "}.Classify())
}

func TestClassifyWorkspaceChange(t *testing.T) {
	interaction := InteractionData{WorkspaceIntent: "plan a trip to Lisbon"}
	assert.Equal(t, WorkspaceChange, interaction.Classify())
}

func TestFollowUpIntentNamesTypeAndElement(t *testing.T) {
	interaction := InteractionData{
		Type:            "click",
		ElementText:     "Plan next steps",
		WorkspaceIntent: "plan next steps for trip",
	}
	followUp := interaction.FollowUpIntent("book a trip")
	assert.Contains(t, followUp, "click")
	assert.Contains(t, followUp, "plan next steps for trip")
}

func TestFollowUpIntentIncludesValue(t *testing.T) {
	interaction := InteractionData{
		Type:            "select",
		ElementText:     "city",
		Value:           "Lisbon",
		WorkspaceIntent: "show city details",
	}
	followUp := interaction.FollowUpIntent("")
	assert.Contains(t, followUp, "Lisbon")
	assert.Contains(t, followUp, "city")
}
