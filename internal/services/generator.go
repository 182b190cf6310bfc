package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/doeshing/intentdesk/internal/domain"
	"github.com/doeshing/intentdesk/internal/ports"
)

// workspaceSystemPrompt carries the authoring rules the model must follow
// when producing a full workspace document.
const workspaceSystemPrompt = `You are a workspace author. Produce a single self-contained HTML document
for the user's task. Rules:
- Start with an HTML comment of the form <!--WORKSPACE_META {"title": "..."} -->.
- Embed external pages with <iframe> elements using https URLs only.
- Interactive controls that stay inside the document (calculator keys, tab
  switches) must be handled by the document's own script.
- Emit the data-workspace-intent attribute ONLY on controls that represent a
  genuine context switch to a different task; its value is the new intent.
- No external script or stylesheet references.`

// Generator is the dynamic workspace generator: one prompt, one model call,
// one parsed document, with an interaction-driven regeneration loop. Its
// internal result cache is keyed by intent plus recent interaction context,
// so the same intent can legitimately map to different documents.
type Generator struct {
	TextGen ports.TextGenerator
	Repo    ports.WorkspaceRepository
	Logger  ports.Logger

	mu         sync.Mutex
	results    map[string]domain.GenerationResult
	order      []string
	history    []domain.InteractionData
	lastIntent string
}

// NewGenerator builds a dynamic workspace generator.
func NewGenerator(textGen ports.TextGenerator, repo ports.WorkspaceRepository, log ports.Logger) *Generator {
	return &Generator{
		TextGen: textGen,
		Repo:    repo,
		Logger:  log,
		results: make(map[string]domain.GenerationResult),
	}
}

// GenerateWorkspace produces (or replays) the workspace document for an
// intent. On any model failure the caller still receives an interactive
// surface: the static search-toolkit document.
func (g *Generator) GenerateWorkspace(ctx context.Context, intent string) domain.GenerationResult {
	key := g.cacheKey(intent)

	g.mu.Lock()
	if cached, ok := g.results[key]; ok {
		g.lastIntent = intent
		g.mu.Unlock()
		cached.FromCache = true
		return cached
	}
	prompt := g.buildPrompt(intent)
	g.mu.Unlock()

	raw, err := g.TextGen.Generate(ctx, prompt)
	if err != nil {
		g.Logger.Warn("workspace generation failed, using search toolkit", map[string]interface{}{
			"intent": domain.NormalizeIntent(intent),
			"error":  err.Error(),
		})
		return g.fallbackResult(intent)
	}

	html, metadata := extractMetadata(raw)
	if strings.TrimSpace(html) == "" {
		g.Logger.Warn("workspace generation returned empty document", map[string]interface{}{
			"intent": domain.NormalizeIntent(intent),
		})
		return g.fallbackResult(intent)
	}

	result := domain.GenerationResult{
		Intent:       intent,
		HTMLContent:  html,
		Metadata:     metadata,
		Interactions: []domain.InteractionData{},
	}

	g.mu.Lock()
	g.storeResult(key, result)
	g.lastIntent = intent
	g.mu.Unlock()

	g.Repo.CacheWorkspace(intent, html, domain.WorkspaceDynamic, "", nil)
	return result
}

// HandleInteraction folds a workspace-change interaction into the history
// ring, synthesizes the follow-up intent, and regenerates. Callers classify
// interactions first; local actions never reach this method.
func (g *Generator) HandleInteraction(ctx context.Context, interaction domain.InteractionData) domain.GenerationResult {
	g.mu.Lock()
	g.history = append([]domain.InteractionData{interaction}, g.history...)
	if len(g.history) > domain.InteractionHistoryLimit {
		g.history = g.history[:domain.InteractionHistoryLimit]
	}
	followUp := interaction.FollowUpIntent(g.lastIntent)
	g.mu.Unlock()

	result := g.GenerateWorkspace(ctx, followUp)
	result.Interactions = g.History()
	return result
}

// History returns the interaction ring, most recent first.
func (g *Generator) History() []domain.InteractionData {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]domain.InteractionData, len(g.history))
	copy(out, g.history)
	return out
}

// ClearHistory empties the interaction ring.
func (g *Generator) ClearHistory() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.history = nil
}

// ClearCache drops all cached generation results.
func (g *Generator) ClearCache() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.results = make(map[string]domain.GenerationResult)
	g.order = nil
}

// cacheKey combines the normalized intent with the ids of the most recent
// interactions, so follow-up regenerations are contextual rather than purely
// intent-keyed.
func (g *Generator) cacheKey(intent string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ids := make([]string, 0, domain.CacheKeyHistoryLimit)
	for i, interaction := range g.history {
		if i >= domain.CacheKeyHistoryLimit {
			break
		}
		ids = append(ids, interaction.ID)
	}
	sum := sha256.Sum256([]byte(strings.Join(ids, "|")))
	return domain.HashIntent(intent) + ":" + hex.EncodeToString(sum[:8])
}

// storeResult inserts into the bounded FIFO result cache. Caller holds the
// mutex.
func (g *Generator) storeResult(key string, result domain.GenerationResult) {
	if _, exists := g.results[key]; !exists {
		if len(g.order) >= domain.GenerationCacheCapacity {
			oldest := g.order[0]
			g.order = g.order[1:]
			delete(g.results, oldest)
		}
		g.order = append(g.order, key)
	}
	g.results[key] = result
}

// buildPrompt assembles the single generation prompt: authoring rules, the
// intent, and up to five recent interactions. Caller holds the mutex.
func (g *Generator) buildPrompt(intent string) string {
	var b strings.Builder
	b.WriteString(workspaceSystemPrompt)
	b.WriteString("\n\nIntent: ")
	b.WriteString(intent)
	if len(g.history) > 0 {
		b.WriteString("\n\nRecent interactions (most recent first):\n")
		for i, interaction := range g.history {
			if i >= domain.PromptHistoryLimit {
				break
			}
			fmt.Fprintf(&b, "- [%s] %s", interaction.Type, interaction.ElementText)
			if interaction.Value != "" {
				fmt.Fprintf(&b, " = %s", interaction.Value)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

var metaPattern = regexp.MustCompile(`(?s)<!--\s*WORKSPACE_META\s*(\{.*?\})\s*-->`)

// extractMetadata pulls the delimited metadata JSON fragment out of the raw
// document and strips it from the visible HTML. A malformed block is dropped
// silently; the document survives.
func extractMetadata(raw string) (string, map[string]interface{}) {
	match := metaPattern.FindStringSubmatch(raw)
	if match == nil {
		return strings.TrimSpace(raw), nil
	}
	html := strings.TrimSpace(metaPattern.ReplaceAllString(raw, ""))

	var metadata map[string]interface{}
	if err := json.Unmarshal([]byte(match[1]), &metadata); err != nil {
		return html, nil
	}
	return html, metadata
}

// fallbackResult is the guaranteed interactive surface: a generic search
// iframe plus quick-launch buttons. Never cached; the next call retries.
func (g *Generator) fallbackResult(intent string) domain.GenerationResult {
	query := url.QueryEscape(domain.NormalizeIntent(intent))
	html := fmt.Sprintf(`<div class="workspace workspace-fallback">
  <h1>Search toolkit</h1>
  <iframe src="https://duckduckgo.com/?q=%s" title="Search"></iframe>
  <div class="quick-launch">
    <button data-workspace-intent="check my email">Mail</button>
    <button data-workspace-intent="open my calendar">Calendar</button>
    <button data-workspace-intent="browse github">GitHub</button>
    <button data-workspace-intent="watch videos">Videos</button>
  </div>
</div>`, query)
	return domain.GenerationResult{
		Intent:       intent,
		HTMLContent:  html,
		Interactions: []domain.InteractionData{},
		Fallback:     true,
	}
}
