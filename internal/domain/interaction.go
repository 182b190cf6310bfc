package domain

import (
	"fmt"
	"strings"
	"time"
)

// InteractionKind is the explicit routing classification every interaction
// receives before it is acted on.
type InteractionKind string

const (
	// LocalAction stays inside the rendered document. This is the default:
	// a missing or malformed workspace tag never triggers regeneration.
	LocalAction InteractionKind = "local_action"
	// WorkspaceChange requests a full workspace regeneration.
	WorkspaceChange InteractionKind = "workspace_change"
)

// InteractionData describes a user click inside generated HTML. It is
// ephemeral: folded into a bounded history ring, never persisted.
type InteractionData struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Value            string    `json:"value,omitempty"`
	ElementType      string    `json:"element_type"`
	ElementText      string    `json:"element_text"`
	WorkspaceContext string    `json:"workspace_context"`
	// WorkspaceIntent carries the reserved data attribute the model emits
	// only for genuine context switches; empty for ordinary clicks.
	WorkspaceIntent string    `json:"workspace_intent,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// Classify routes an interaction. Only an explicit, non-empty workspace
// intent tag yields WorkspaceChange; everything else is handled locally.
func (i InteractionData) Classify() InteractionKind {
	if strings.TrimSpace(i.WorkspaceIntent) != "" {
		return WorkspaceChange
	}
	return LocalAction
}

// FollowUpIntent synthesizes the regeneration intent for a workspace-change
// interaction, naming the interaction type and the clicked element.
func (i InteractionData) FollowUpIntent(originalIntent string) string {
	target := i.WorkspaceIntent
	if strings.TrimSpace(target) == "" {
		target = i.ElementText
	}
	if i.Value != "" {
		return fmt.Sprintf("%s: %s (%s = %s)", i.Type, target, i.ElementText, i.Value)
	}
	if originalIntent != "" {
		return fmt.Sprintf("%s: %s (while working on: %s)", i.Type, target, originalIntent)
	}
	return fmt.Sprintf("%s: %s", i.Type, target)
}
