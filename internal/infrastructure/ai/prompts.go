package ai

import (
	"fmt"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
)

// Prompt preambles double as task markers for the offline heuristic
// generator, which dispatches on them.
const (
	selectPreamble = "Select the best workspace layout for the user's intent."
	planPreamble   = "Plan the content for each slot of the selected layout."
	widgetPreamble = "Generate the UI widget code for one layout slot."
)

func buildSelectPrompt(intent string, templates []domain.LayoutTemplate) string {
	var b strings.Builder
	b.WriteString(selectPreamble)
	b.WriteString("\n\nIntent: ")
	b.WriteString(intent)
	b.WriteString("\n\nAvailable layouts:\n")
	for _, tpl := range templates {
		fmt.Fprintf(&b, "- %s: %s (slots: %s)\n", tpl.Name, tpl.Description, strings.Join(tpl.SlotIDs(), ", "))
	}
	b.WriteString("\nRespond with a single JSON object:\n")
	b.WriteString(`{"layout": "<name>", "confidence": <0.0-1.0>, "reasoning": "<one sentence>"}`)
	return b.String()
}

func buildPlanPrompt(intent string, template domain.LayoutTemplate) string {
	var b strings.Builder
	b.WriteString(planPreamble)
	b.WriteString("\n\nIntent: ")
	b.WriteString(intent)
	b.WriteString("\nLayout: ")
	b.WriteString(template.Name)
	b.WriteString("\n\nSlots to fill:\n")
	for _, def := range template.SlotDefinitions {
		fmt.Fprintf(&b, "- id=%s type=%s purpose=%s\n", def.ID, def.Type, def.Purpose)
	}
	b.WriteString("\nUse only the declared slot ids. Iframe slots need a \"url\" prop; ")
	b.WriteString("widget slots need a \"title\" prop. Not every slot has to be filled.\n")
	b.WriteString("Respond with a single JSON object:\n")
	b.WriteString(`{"slots": [{"id": "<slot id>", "type": "<slot type>", "props": {}}]}`)
	return b.String()
}

func buildWidgetPrompt(intent string, slot domain.LayoutSlot) string {
	var b strings.Builder
	b.WriteString(widgetPreamble)
	b.WriteString("\n\nIntent: ")
	b.WriteString(intent)
	fmt.Fprintf(&b, "\nSlot: id=%s", slot.ID)
	if title, ok := slot.Props["title"].(string); ok && title != "" {
		fmt.Fprintf(&b, "\nWidget title: %s", title)
	}
	if purpose, ok := slot.Props["purpose"].(string); ok && purpose != "" {
		fmt.Fprintf(&b, "\nPurpose: %s", purpose)
	}
	b.WriteString("\n\nUse only these components: Card, Button, Input, Select, List, ListItem, ")
	b.WriteString("Text, Heading, Grid, Row, Column, Icon, Chart, Table, Badge, Progress, Timer.\n")
	b.WriteString("No script tags, no inline event handlers, no external imports.\n")
	b.WriteString("Respond with the component markup only.")
	return b.String()
}
