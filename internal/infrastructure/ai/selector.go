package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Selector implements layout selection on top of any text generator plus
// structured-output parsing.
type Selector struct {
	generator ports.TextGenerator
	registry  ports.LayoutRegistry
}

// NewSelector builds a layout selector.
func NewSelector(generator ports.TextGenerator, registry ports.LayoutRegistry) *Selector {
	return &Selector{generator: generator, registry: registry}
}

// SelectLayout asks the model for a layout decision. Confidence is clamped to
// [0,1]; the threshold policy belongs to the orchestrator, not here.
func (s *Selector) SelectLayout(ctx context.Context, intent string) (domain.LayoutDecision, error) {
	templates := make([]domain.LayoutTemplate, 0, len(s.registry.Names()))
	for _, name := range s.registry.Names() {
		if tpl, ok := s.registry.Get(name); ok {
			templates = append(templates, tpl)
		}
	}

	raw, err := s.generator.Generate(ctx, buildSelectPrompt(intent, templates))
	if err != nil {
		return domain.LayoutDecision{}, fmt.Errorf("select layout: %w", err)
	}

	blob, err := extractJSONObject(raw)
	if err != nil {
		return domain.LayoutDecision{}, fmt.Errorf("select layout: %w", err)
	}

	var decision domain.LayoutDecision
	if err := json.Unmarshal([]byte(blob), &decision); err != nil {
		return domain.LayoutDecision{}, fmt.Errorf("select layout: %w: %v", domain.ErrMalformedResponse, err)
	}
	if strings.TrimSpace(decision.Layout) == "" {
		return domain.LayoutDecision{}, fmt.Errorf("select layout: %w: missing layout name", domain.ErrMalformedResponse)
	}
	if decision.Confidence < 0 {
		decision.Confidence = 0
	}
	if decision.Confidence > 1 {
		decision.Confidence = 1
	}
	return decision, nil
}

var _ ports.LayoutSelector = (*Selector)(nil)
