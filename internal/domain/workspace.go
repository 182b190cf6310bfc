package domain

import "time"

// WorkspaceType distinguishes statically matched components from AI-generated
// HTML documents.
type WorkspaceType string

const (
	WorkspaceStatic  WorkspaceType = "static"
	WorkspaceDynamic WorkspaceType = "dynamic"
)

// WorkspaceState is the transient UI state attached to a cached workspace.
// It is mutated only through merge-updates, never replaced wholesale.
type WorkspaceState struct {
	InputValues     map[string]string `json:"input_values,omitempty"`
	ScrollPositions map[string]int    `json:"scroll_positions,omitempty"`
	ActiveTab       string            `json:"active_tab,omitempty"`
	Customizations  map[string]string `json:"customizations,omitempty"`
	CursorPosition  *int              `json:"cursor_position,omitempty"`
}

// Merge folds a partial state into the receiver, keeping existing values for
// anything the partial leaves unset.
func (s *WorkspaceState) Merge(partial WorkspaceState) {
	if len(partial.InputValues) > 0 {
		if s.InputValues == nil {
			s.InputValues = make(map[string]string, len(partial.InputValues))
		}
		for k, v := range partial.InputValues {
			s.InputValues[k] = v
		}
	}
	if len(partial.ScrollPositions) > 0 {
		if s.ScrollPositions == nil {
			s.ScrollPositions = make(map[string]int, len(partial.ScrollPositions))
		}
		for k, v := range partial.ScrollPositions {
			s.ScrollPositions[k] = v
		}
	}
	if partial.ActiveTab != "" {
		s.ActiveTab = partial.ActiveTab
	}
	if len(partial.Customizations) > 0 {
		if s.Customizations == nil {
			s.Customizations = make(map[string]string, len(partial.Customizations))
		}
		for k, v := range partial.Customizations {
			s.Customizations[k] = v
		}
	}
	if partial.CursorPosition != nil {
		s.CursorPosition = partial.CursorPosition
	}
}

// WorkspaceMetadata carries access bookkeeping and classification for a
// cached workspace.
type WorkspaceMetadata struct {
	CreatedAt      time.Time     `json:"created_at"`
	LastAccessedAt time.Time     `json:"last_accessed_at"`
	AccessCount    int           `json:"access_count"`
	Tags           []string      `json:"tags"`
	WorkspaceType  WorkspaceType `json:"workspace_type"`
	Component      string        `json:"component,omitempty"`
}

// WorkspacePreview is the deterministic title/description/icon derived from
// the intent text for listing cached workspaces.
type WorkspacePreview struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CachedWorkspace is one workspace-cache entry: a generated HTML document plus
// its UI state and metadata. The cache is the sole owner; consumers receive
// copies or go through explicit mutation methods.
type CachedWorkspace struct {
	ID          string            `json:"id"`
	Intent      string            `json:"intent"`
	HTMLContent string            `json:"html_content"`
	State       WorkspaceState    `json:"state"`
	Metadata    WorkspaceMetadata `json:"metadata"`
	Preview     WorkspacePreview  `json:"preview"`
}

// WorkspaceCacheStats summarizes the workspace cache.
type WorkspaceCacheStats struct {
	TotalEntries int            `json:"total_entries"`
	StaticCount  int            `json:"static_count"`
	DynamicCount int            `json:"dynamic_count"`
	TagCounts    map[string]int `json:"tag_counts,omitempty"`
}

// GenerationResult is the outcome of one dynamic workspace generation: the
// visible HTML document, any metadata the model embedded, and the interaction
// events consumed so far (empty on a fresh generation).
type GenerationResult struct {
	Intent       string                 `json:"intent"`
	HTMLContent  string                 `json:"html_content"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	Interactions []InteractionData      `json:"interactions"`
	FromCache    bool                   `json:"from_cache"`
	Fallback     bool                   `json:"fallback"`
}
