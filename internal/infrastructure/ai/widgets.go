package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// WidgetWriter implements per-slot widget generation on top of any text
// generator. Sanitization and import checking happen in the orchestrator,
// not here.
type WidgetWriter struct {
	generator ports.TextGenerator
}

// NewWidgetWriter builds a widget generator.
func NewWidgetWriter(generator ports.TextGenerator) *WidgetWriter {
	return &WidgetWriter{generator: generator}
}

// GenerateWidget produces UI code for a single widget slot.
func (w *WidgetWriter) GenerateWidget(ctx context.Context, intent string, slot domain.LayoutSlot) (string, error) {
	raw, err := w.generator.Generate(ctx, buildWidgetPrompt(intent, slot))
	if err != nil {
		return "", fmt.Errorf("generate widget %s: %w", slot.ID, err)
	}
	code := stripCodeFences(raw)
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("generate widget %s: empty response", slot.ID)
	}
	return code, nil
}

var _ ports.WidgetGenerator = (*WidgetWriter)(nil)
