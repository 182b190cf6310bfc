// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like the LLM transport, SQLite, or the CLI framework.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., TextGenerator, LayoutCache)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/intentdesk/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.intentdesk/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// TextGenerator is the single external model capability this core depends on:
// given a prompt, return text. Calls may fail; every caller maps failure to a
// fallback. No retry is performed internally.
type TextGenerator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFactory builds text-generator instances from model definitions.
type GeneratorFactory interface {
	ForModel(domain.ModelDefinition) (TextGenerator, error)
}

// LayoutSelector picks the layout best matching an intent, with a confidence
// score the orchestrator checks against the fallback threshold.
type LayoutSelector interface {
	SelectLayout(ctx context.Context, intent string) (domain.LayoutDecision, error)
}

// ContentPlanner fills a layout's slot shape with concrete slot content.
// Plans referencing slot ids the template does not declare fail outright.
type ContentPlanner interface {
	PlanContent(ctx context.Context, intent string, template domain.LayoutTemplate) (domain.ContentPlan, error)
}

// WidgetGenerator produces UI code for a single widget slot.
type WidgetGenerator interface {
	GenerateWidget(ctx context.Context, intent string, slot domain.LayoutSlot) (string, error)
}

// LayoutRegistry resolves layout names to their immutable templates.
type LayoutRegistry interface {
	Get(name string) (domain.LayoutTemplate, bool)
	Fallback() domain.LayoutTemplate
	Names() []string
}

// LayoutCache is the durable, TTL-expiring store of prior layout decisions.
// Get reports a miss for expired entries and deletes them as a side effect.
// Set upserts by intent hash, enforcing capacity first.
type LayoutCache interface {
	Get(intent string) (domain.CachedLayout, bool, error)
	Set(intent string, layout string, slots []domain.LayoutSlot, confidence float64) error
	Clear() error
	Cleanup() (int, error)
	Stats() domain.LayoutCacheStats
}

// WorkspaceRepository is the process-wide cache of generated workspaces.
// Every mutation persists the full snapshot; storage failures are logged and
// swallowed so caching never degrades the primary flow.
type WorkspaceRepository interface {
	CacheWorkspace(intent, htmlContent string, workspaceType domain.WorkspaceType, component string, initialState *domain.WorkspaceState) string
	FindByIntent(intent string) (domain.CachedWorkspace, bool)
	FindByID(id string) (domain.CachedWorkspace, bool)
	Recent(limit int) []domain.CachedWorkspace
	ByTag(tag string) []domain.CachedWorkspace
	UpdateState(id string, partial domain.WorkspaceState) bool
	Delete(id string) bool
	Clear()
	Stats() domain.WorkspaceCacheStats
}

// CodeSanitizer rewrites AI-returned markup to strip dangerous constructs and
// vets it against the import allow-list. Sanitize never fails; CheckImports
// is the one hard per-widget failure.
type CodeSanitizer interface {
	Sanitize(code string) string
	CheckImports(code string) error
}

// URLValidator checks iframe targets. A non-nil error is a hard reject
// (forbidden scheme, malformed URL); suspicious=true is a soft warning for
// domains outside the known list.
type URLValidator interface {
	Validate(raw string) (suspicious bool, err error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (zap, stdout, test sinks).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
