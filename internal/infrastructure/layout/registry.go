// Package layout holds the static registry of layout templates. Templates are
// defined at process start and never mutated at runtime.
package layout

import (
	"sort"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// Registry maps layout names to their slot-shape definitions.
type Registry struct {
	templates map[string]domain.LayoutTemplate
}

// NewRegistry builds the registry with the built-in template set.
func NewRegistry() *Registry {
	r := &Registry{templates: make(map[string]domain.LayoutTemplate)}
	for _, tpl := range builtinTemplates() {
		r.templates[tpl.Name] = tpl
	}
	return r
}

// Get resolves a template by name.
func (r *Registry) Get(name string) (domain.LayoutTemplate, bool) {
	tpl, ok := r.templates[name]
	return tpl, ok
}

// Fallback returns the Dashboard template, the most flexible shape and the
// default for low-confidence selections and error paths.
func (r *Registry) Fallback() domain.LayoutTemplate {
	return r.templates[domain.FallbackLayoutName]
}

// Names lists registered layout names in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func builtinTemplates() []domain.LayoutTemplate {
	return []domain.LayoutTemplate{
		{
			Name:        "Dashboard",
			Description: "Flexible grid of up to four mixed widgets",
			SlotDefinitions: []domain.SlotDefinition{
				{ID: "primary", Type: "widget|iframe", Purpose: "Main tool for the task"},
				{ID: "secondary", Type: "widget|iframe", Purpose: "Supporting tool or page"},
				{ID: "tertiary", Type: "widget|media", Purpose: "Ambient or reference content"},
				{ID: "quaternary", Type: "widget|text", Purpose: "Notes or quick info"},
			},
		},
		{
			Name:        "SingleWebsite",
			Description: "One full-bleed embedded website",
			SlotDefinitions: []domain.SlotDefinition{
				{ID: "main", Type: "iframe", Purpose: "The website the user asked for"},
			},
		},
		{
			Name:        "SplitView",
			Description: "Two panes side by side",
			SlotDefinitions: []domain.SlotDefinition{
				{ID: "left", Type: "iframe|widget", Purpose: "Primary working pane"},
				{ID: "right", Type: "iframe|widget", Purpose: "Reference pane"},
			},
		},
		{
			Name:        "FocusMode",
			Description: "One central tool with a slim sidebar",
			SlotDefinitions: []domain.SlotDefinition{
				{ID: "content", Type: "widget|text", Purpose: "The single task in focus"},
				{ID: "sidebar", Type: "text|media", Purpose: "Secondary glanceable info"},
			},
		},
		{
			Name:        "MediaHub",
			Description: "Media player with companion widgets",
			SlotDefinitions: []domain.SlotDefinition{
				{ID: "player", Type: "media|iframe", Purpose: "Main media playback"},
				{ID: "playlist", Type: "widget|text", Purpose: "Queue or track info"},
			},
		},
	}
}

var _ ports.LayoutRegistry = (*Registry)(nil)
