package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Planner implements content planning on top of any text generator.
type Planner struct {
	generator ports.TextGenerator
}

// NewPlanner builds a content planner.
func NewPlanner(generator ports.TextGenerator) *Planner {
	return &Planner{generator: generator}
}

// PlanContent fills the template's slot shape. A plan referencing a slot id
// the template does not declare fails the whole planning step; it is never
// silently truncated.
func (p *Planner) PlanContent(ctx context.Context, intent string, template domain.LayoutTemplate) (domain.ContentPlan, error) {
	raw, err := p.generator.Generate(ctx, buildPlanPrompt(intent, template))
	if err != nil {
		return domain.ContentPlan{}, fmt.Errorf("plan content: %w", err)
	}

	blob, err := extractJSONObject(raw)
	if err != nil {
		return domain.ContentPlan{}, fmt.Errorf("plan content: %w", err)
	}

	var plan domain.ContentPlan
	if err := json.Unmarshal([]byte(blob), &plan); err != nil {
		return domain.ContentPlan{}, fmt.Errorf("plan content: %w: %v", domain.ErrMalformedResponse, err)
	}
	if len(plan.Slots) == 0 {
		return domain.ContentPlan{}, fmt.Errorf("plan content: %w: empty slot list", domain.ErrMalformedResponse)
	}

	if err := validatePlan(&plan, template); err != nil {
		return domain.ContentPlan{}, fmt.Errorf("plan content: %w", err)
	}
	return plan, nil
}

// validatePlan enforces the slot-id invariant and normalizes slot types
// against each definition's declared union.
func validatePlan(plan *domain.ContentPlan, template domain.LayoutTemplate) error {
	for i := range plan.Slots {
		slot := &plan.Slots[i]
		def, ok := template.Definition(slot.ID)
		if !ok {
			return fmt.Errorf("%w: %q not in layout %s (declared: %s)",
				domain.ErrUnknownSlotID, slot.ID, template.Name, strings.Join(template.SlotIDs(), ", "))
		}
		if slot.Type == "" || !def.Allows(slot.Type) {
			slot.Type = firstAllowedType(def)
		}
	}
	return nil
}

func firstAllowedType(def domain.SlotDefinition) domain.SlotType {
	parts := strings.Split(def.Type, "|")
	return domain.SlotType(strings.TrimSpace(parts[0]))
}

var _ ports.ContentPlanner = (*Planner)(nil)
