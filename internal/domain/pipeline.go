package domain

import "context"

// PipelineStage labels the phases of a single Process call, for logging and
// metrics. Stages run strictly in order; any stage may divert to fallback.
type PipelineStage string

const (
	StageIdle              PipelineStage = "idle"
	StageSelectingLayout   PipelineStage = "selecting_layout"
	StagePlanningContent   PipelineStage = "planning_content"
	StageGeneratingWidgets PipelineStage = "generating_widgets"
	StageDone              PipelineStage = "done"
	StageFallbackDone      PipelineStage = "fallback_done"
)

// StageMetrics records per-stage wall-clock timings in milliseconds. Populated
// on every Process call regardless of success or failure path.
type StageMetrics struct {
	LayoutSelectionMS  int64 `json:"layout_selection_ms"`
	ContentPlanningMS  int64 `json:"content_planning_ms"`
	WidgetGenerationMS int64 `json:"widget_generation_ms"`
	TotalMS            int64 `json:"total_ms"`
}

// PipelineResult is the canonical output of the intent pipeline. It is always
// produced; failures surface as a fallback layout plus a non-empty Error,
// never as a raw error reaching the caller.
type PipelineResult struct {
	Intent       string       `json:"intent"`
	Layout       string       `json:"layout"`
	Slots        []LayoutSlot `json:"slots"`
	Confidence   float64      `json:"confidence"`
	FallbackUsed bool         `json:"fallback_used"`
	FromCache    bool         `json:"from_cache"`
	Error        string       `json:"error,omitempty"`
	Metrics      StageMetrics `json:"metrics"`
}

// PipelineService exposes the use-case boundary for turning an intent into a
// rendered layout.
type PipelineService interface {
	Process(ctx context.Context, intent string) PipelineResult
}
