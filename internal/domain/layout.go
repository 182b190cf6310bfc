package domain

import "strings"

// SlotType identifies what kind of content a layout position holds.
type SlotType string

const (
	SlotIframe SlotType = "iframe"
	SlotWidget SlotType = "widget"
	SlotText   SlotType = "text"
	SlotMedia  SlotType = "media"
	SlotCustom SlotType = "custom"
)

// SlotDefinition describes one position in a layout template. Type may be a
// union expressed as "widget|iframe" when the planner is free to choose.
type SlotDefinition struct {
	ID      string `yaml:"id" json:"id"`
	Type    string `yaml:"type" json:"type"`
	Purpose string `yaml:"purpose" json:"purpose"`
}

// Allows reports whether the definition accepts the given slot type.
func (d SlotDefinition) Allows(t SlotType) bool {
	for _, part := range strings.Split(d.Type, "|") {
		if SlotType(strings.TrimSpace(part)) == t {
			return true
		}
	}
	return false
}

// LayoutTemplate is a named arrangement of slots, defined at process start and
// never mutated at runtime. Templates are identified by Name (unique).
type LayoutTemplate struct {
	Name            string           `yaml:"name" json:"name"`
	Description     string           `yaml:"description" json:"description"`
	SlotDefinitions []SlotDefinition `yaml:"slots" json:"slots"`
}

// SlotIDs returns the declared slot ids in definition order.
func (t LayoutTemplate) SlotIDs() []string {
	ids := make([]string, 0, len(t.SlotDefinitions))
	for _, def := range t.SlotDefinitions {
		ids = append(ids, def.ID)
	}
	return ids
}

// Definition looks up a slot definition by id.
func (t LayoutTemplate) Definition(id string) (SlotDefinition, bool) {
	for _, def := range t.SlotDefinitions {
		if def.ID == id {
			return def, true
		}
	}
	return SlotDefinition{}, false
}

// LayoutSlot is an instantiated slot inside a planned layout. Widget slots
// carry generated code in Component; slots whose generation failed carry a
// non-empty Error and a fallback Component.
type LayoutSlot struct {
	ID        string                 `json:"id"`
	Type      SlotType               `json:"type"`
	Props     map[string]interface{} `json:"props,omitempty"`
	Component string                 `json:"component,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// LayoutDecision is the result of the layout-selection stage.
type LayoutDecision struct {
	Layout     string  `json:"layout"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// ContentPlan is the result of the content-planning stage: one instantiated
// slot per planned position, validated against the target template's slot ids.
type ContentPlan struct {
	Slots []LayoutSlot `json:"slots"`
}
