package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/infrastructure/layout"
)

func TestHeuristicSelectsSingleWebsiteForMail(t *testing.T) {
	selector := NewSelector(newHeuristicGenerator(), layout.NewRegistry())

	decision, err := selector.SelectLayout(context.Background(), "open my gmail")
	require.NoError(t, err)
	assert.Equal(t, "SingleWebsite", decision.Layout)
	assert.Equal(t, 0.92, decision.Confidence)
}

func TestHeuristicSelectsDashboardForPomodoro(t *testing.T) {
	selector := NewSelector(newHeuristicGenerator(), layout.NewRegistry())

	decision, err := selector.SelectLayout(context.Background(), "pomodoro timer and task list")
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", decision.Layout)
	assert.Equal(t, 0.85, decision.Confidence)
}

func TestHeuristicDefaultsToDashboardWithLowConfidence(t *testing.T) {
	selector := NewSelector(newHeuristicGenerator(), layout.NewRegistry())

	decision, err := selector.SelectLayout(context.Background(), "qwertyuiop")
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", decision.Layout)
	assert.Equal(t, 0.5, decision.Confidence)
}

func TestHeuristicPlansGmailIframe(t *testing.T) {
	registry := layout.NewRegistry()
	tpl, ok := registry.Get("SingleWebsite")
	require.True(t, ok)

	plan, err := NewPlanner(newHeuristicGenerator()).PlanContent(context.Background(), "open my gmail", tpl)
	require.NoError(t, err)
	require.Len(t, plan.Slots, 1)
	assert.Equal(t, "main", plan.Slots[0].ID)
	assert.Equal(t, domain.SlotIframe, plan.Slots[0].Type)
	assert.Equal(t, "https://gmail.com", plan.Slots[0].Props["url"])
}

func TestHeuristicPlansDashboardSlots(t *testing.T) {
	registry := layout.NewRegistry()
	tpl, ok := registry.Get("Dashboard")
	require.True(t, ok)

	plan, err := NewPlanner(newHeuristicGenerator()).PlanContent(context.Background(), "pomodoro timer", tpl)
	require.NoError(t, err)
	require.Len(t, plan.Slots, 2)
	assert.Equal(t, domain.SlotWidget, plan.Slots[0].Type)
	assert.Equal(t, domain.SlotIframe, plan.Slots[1].Type)
	url, _ := plan.Slots[1].Props["url"].(string)
	assert.Contains(t, url, "https://")
}

func TestHeuristicWidgetUsesAllowedComponents(t *testing.T) {
	writer := NewWidgetWriter(newHeuristicGenerator())

	code, err := writer.GenerateWidget(context.Background(), "pomodoro timer",
		domain.LayoutSlot{ID: "primary", Type: domain.SlotWidget, Props: map[string]interface{}{"title": "Focus Timer"}})
	require.NoError(t, err)
	assert.Contains(t, code, "<Timer")
	assert.Contains(t, code, "Focus Timer")
	assert.NotContains(t, code, "<script")
}

func TestHeuristicWorkspaceDocumentCarriesMetadata(t *testing.T) {
	gen := newHeuristicGenerator()
	html, err := gen.Generate(context.Background(), "Build a workspace.\nIntent: plan a trip to kyoto\n")
	require.NoError(t, err)
	assert.Contains(t, html, "WORKSPACE_META")
	assert.Contains(t, html, "data-workspace-intent=")
	assert.Contains(t, html, "Plan A Trip To Kyoto")
}
