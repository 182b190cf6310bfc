// Package services contains the use-case orchestration: the intent pipeline
// and the dynamic workspace generator.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Pipeline orchestrates the three-stage intent pipeline: layout selection,
// content planning, and per-slot widget generation. Failures never escape as
// errors; every path terminates in a renderable result.
type Pipeline struct {
	Selector  ports.LayoutSelector
	Planner   ports.ContentPlanner
	Widgets   ports.WidgetGenerator
	Registry  ports.LayoutRegistry
	Cache     ports.LayoutCache
	Sanitizer ports.CodeSanitizer
	URLs      ports.URLValidator
	Logger    ports.Logger
}

// Process turns an intent into a planned layout. Stages run strictly in
// order; widget generation fans out across widget slots and reassembles in
// slot order. Per-stage timings are populated on every path.
func (p *Pipeline) Process(ctx context.Context, intent string) domain.PipelineResult {
	start := time.Now()
	metrics := domain.StageMetrics{}

	if domain.NormalizeIntent(intent) == "" {
		metrics.TotalMS = time.Since(start).Milliseconds()
		return p.emergencyFallback(intent, domain.ErrEmptyIntent, metrics)
	}

	if cached, ok, err := p.Cache.Get(intent); err == nil && ok {
		p.Logger.Debug("layout cache hit", map[string]interface{}{"intent": domain.NormalizeIntent(intent)})
		metrics.TotalMS = time.Since(start).Milliseconds()
		return domain.PipelineResult{
			Intent:     intent,
			Layout:     cached.Layout,
			Slots:      cached.Slots,
			Confidence: cached.Confidence,
			FromCache:  true,
			Metrics:    metrics,
		}
	}

	// Stage 1: layout selection.
	stageStart := time.Now()
	decision, err := p.Selector.SelectLayout(ctx, intent)
	metrics.LayoutSelectionMS = time.Since(stageStart).Milliseconds()
	if err != nil {
		metrics.TotalMS = time.Since(start).Milliseconds()
		return p.emergencyFallback(intent, fmt.Errorf("layout selection: %w", err), metrics)
	}

	template, fallbackUsed := p.resolveTemplate(decision)

	// Stage 2: content planning against the template's slot shape.
	stageStart = time.Now()
	plan, err := p.Planner.PlanContent(ctx, intent, template)
	metrics.ContentPlanningMS = time.Since(stageStart).Milliseconds()
	if err != nil {
		metrics.TotalMS = time.Since(start).Milliseconds()
		return p.emergencyFallback(intent, fmt.Errorf("content planning: %w", err), metrics)
	}

	p.validateIframeSlots(plan.Slots)

	// Stage 3: widget generation, concurrent across widget slots.
	stageStart = time.Now()
	slots := p.generateWidgets(ctx, intent, plan.Slots)
	metrics.WidgetGenerationMS = time.Since(stageStart).Milliseconds()

	if err := p.Cache.Set(intent, template.Name, slots, decision.Confidence); err != nil {
		p.Logger.Warn("layout cache write failed", map[string]interface{}{"error": err.Error()})
	}

	metrics.TotalMS = time.Since(start).Milliseconds()
	return domain.PipelineResult{
		Intent:       intent,
		Layout:       template.Name,
		Slots:        slots,
		Confidence:   decision.Confidence,
		FallbackUsed: fallbackUsed,
		Metrics:      metrics,
	}
}

// resolveTemplate applies the confidence policy: a low-confidence or unknown
// layout defaults to the most flexible shape rather than a rigid one.
func (p *Pipeline) resolveTemplate(decision domain.LayoutDecision) (domain.LayoutTemplate, bool) {
	if decision.Confidence < domain.ConfidenceThreshold {
		p.Logger.Info("low-confidence layout, using fallback", map[string]interface{}{
			"layout":     decision.Layout,
			"confidence": decision.Confidence,
		})
		return p.Registry.Fallback(), true
	}
	template, ok := p.Registry.Get(decision.Layout)
	if !ok {
		p.Logger.Warn("selected layout not registered", map[string]interface{}{"layout": decision.Layout})
		return p.Registry.Fallback(), true
	}
	return template, false
}

// validateIframeSlots enforces URL safety in place. Forbidden schemes turn
// the slot into a per-slot failure; unknown domains are logged but allowed.
func (p *Pipeline) validateIframeSlots(slots []domain.LayoutSlot) {
	for i := range slots {
		slot := &slots[i]
		if slot.Type != domain.SlotIframe {
			continue
		}
		rawURL, _ := slot.Props["url"].(string)
		suspicious, err := p.URLs.Validate(rawURL)
		if err != nil {
			p.Logger.Warn("iframe url rejected", map[string]interface{}{
				"slot":  slot.ID,
				"error": err.Error(),
			})
			delete(slot.Props, "url")
			slot.Error = err.Error()
			continue
		}
		if suspicious {
			p.Logger.Warn("iframe url outside known domains", map[string]interface{}{
				"slot": slot.ID,
				"url":  rawURL,
			})
		}
	}
}

// generateWidgets fans out generation for widget slots (fire-all, await-all)
// and reassembles results in the original slot order. Failures stay isolated
// to their slot.
func (p *Pipeline) generateWidgets(ctx context.Context, intent string, planned []domain.LayoutSlot) []domain.LayoutSlot {
	slots := make([]domain.LayoutSlot, len(planned))
	copy(slots, planned)

	var wg sync.WaitGroup
	for i := range slots {
		if slots[i].Type != domain.SlotWidget {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			slots[i] = p.generateOne(ctx, intent, slots[i])
		}(i)
	}
	wg.Wait()
	return slots
}

func (p *Pipeline) generateOne(ctx context.Context, intent string, slot domain.LayoutSlot) domain.LayoutSlot {
	code, err := p.Widgets.GenerateWidget(ctx, intent, slot)
	if err != nil {
		p.Logger.Warn("widget generation failed", map[string]interface{}{
			"slot":  slot.ID,
			"error": err.Error(),
		})
		slot.Error = err.Error()
		slot.Component = errorWidget("This widget could not be generated.")
		return slot
	}

	code = p.Sanitizer.Sanitize(code)
	if err := p.Sanitizer.CheckImports(code); err != nil {
		p.Logger.Warn("widget rejected by import check", map[string]interface{}{
			"slot":  slot.ID,
			"error": err.Error(),
		})
		slot.Error = err.Error()
		slot.Component = errorWidget("This widget referenced disallowed components.")
		return slot
	}

	slot.Component = code
	return slot
}

// emergencyFallback produces the single-slot dashboard describing a total
// pipeline failure. The caller always receives a renderable result.
func (p *Pipeline) emergencyFallback(intent string, cause error, metrics domain.StageMetrics) domain.PipelineResult {
	p.Logger.Error("pipeline failed, emitting fallback", cause, map[string]interface{}{
		"intent": domain.NormalizeIntent(intent),
	})
	return domain.PipelineResult{
		Intent:       intent,
		Layout:       domain.FallbackLayoutName,
		Confidence:   0,
		FallbackUsed: true,
		Error:        cause.Error(),
		Slots: []domain.LayoutSlot{
			{
				ID:        "primary",
				Type:      domain.SlotWidget,
				Props:     map[string]interface{}{"title": "Something went wrong"},
				Component: errorWidget(cause.Error()),
				Error:     cause.Error(),
			},
		},
		Metrics: metrics,
	}
}

func errorWidget(message string) string {
	return fmt.Sprintf(`<Card><Heading>Something went wrong</Heading><Text>%s</Text><Button>Try again</Button></Card>`, message)
}

var _ domain.PipelineService = (*Pipeline)(nil)
