package ai

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// heuristicGenerator is the offline fallback used when no model endpoint is
// configured. It dispatches on the prompt preamble and answers each pipeline
// stage deterministically from keyword matching, so the CLI stays usable
// without credentials.
type heuristicGenerator struct{}

func newHeuristicGenerator() *heuristicGenerator {
	return &heuristicGenerator{}
}

func (g *heuristicGenerator) Name() string {
	return "heuristic"
}

func (g *heuristicGenerator) Generate(_ context.Context, prompt string) (string, error) {
	intent := promptField(prompt, "Intent: ")
	switch {
	case strings.HasPrefix(prompt, selectPreamble):
		return g.selectLayout(intent), nil
	case strings.HasPrefix(prompt, planPreamble):
		return g.planContent(intent, promptField(prompt, "Layout: ")), nil
	case strings.HasPrefix(prompt, widgetPreamble):
		return g.widget(intent, promptField(prompt, "Widget title: ")), nil
	default:
		return g.workspaceDocument(prompt), nil
	}
}

func promptField(prompt, label string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if strings.HasPrefix(line, label) {
			return strings.TrimSpace(strings.TrimPrefix(line, label))
		}
	}
	return ""
}

func (g *heuristicGenerator) selectLayout(intent string) string {
	lower := strings.ToLower(intent)
	layout, confidence, reason := "Dashboard", 0.5, "no strong signal, defaulting to the flexible grid"
	switch {
	case containsAny(lower, "gmail", "email", "inbox", "mail"):
		layout, confidence, reason = "SingleWebsite", 0.92, "single well-known website"
	case containsAny(lower, "timer", "pomodoro", "track", "dashboard", "plan", "organize", "monitor"):
		layout, confidence, reason = "Dashboard", 0.85, "multi-tool task"
	case containsAny(lower, "watch", "video", "listen", "podcast"):
		layout, confidence, reason = "MediaHub", 0.8, "media consumption task"
	case containsAny(lower, "compare", "versus", " vs "):
		layout, confidence, reason = "SplitView", 0.78, "side-by-side comparison"
	case containsAny(lower, "write", "draft", "focus", "read"):
		layout, confidence, reason = "FocusMode", 0.76, "single-focus task"
	case containsAny(lower, "github", "wikipedia", "youtube", "reddit", "notion"):
		layout, confidence, reason = "SingleWebsite", 0.88, "single well-known website"
	}
	return fmt.Sprintf(`{"layout": %q, "confidence": %.2f, "reasoning": %q}`, layout, confidence, reason)
}

func (g *heuristicGenerator) planContent(intent, layoutName string) string {
	lower := strings.ToLower(intent)
	switch layoutName {
	case "SingleWebsite":
		return fmt.Sprintf(`{"slots": [{"id": "main", "type": "iframe", "props": {"url": %q, "title": %q}}]}`,
			guessURL(lower), titleCase(intent))
	case "SplitView":
		return fmt.Sprintf(`{"slots": [
			{"id": "left", "type": "iframe", "props": {"url": %q, "title": "Primary"}},
			{"id": "right", "type": "iframe", "props": {"url": %q, "title": "Reference"}}]}`,
			guessURL(lower), searchURL(lower))
	case "FocusMode":
		return fmt.Sprintf(`{"slots": [
			{"id": "content", "type": "widget", "props": {"title": %q}},
			{"id": "sidebar", "type": "text", "props": {"text": %q}}]}`,
			titleCase(intent), "Stay focused: "+intent)
	case "MediaHub":
		return fmt.Sprintf(`{"slots": [
			{"id": "player", "type": "iframe", "props": {"url": %q, "title": "Player"}},
			{"id": "playlist", "type": "widget", "props": {"title": "Up next"}}]}`,
			"https://www.youtube.com/results?search_query="+url.QueryEscape(lower))
	default: // Dashboard
		secondary := searchURL(lower)
		if containsAny(lower, "music", "lofi", "song") {
			secondary = "https://www.youtube.com/results?search_query=" + url.QueryEscape("focus music")
		}
		return fmt.Sprintf(`{"slots": [
			{"id": "primary", "type": "widget", "props": {"title": %q}},
			{"id": "secondary", "type": "iframe", "props": {"url": %q, "title": "Companion"}}]}`,
			titleCase(intent), secondary)
	}
}

func (g *heuristicGenerator) widget(intent, title string) string {
	if title == "" {
		title = titleCase(intent)
	}
	lower := strings.ToLower(intent + " " + title)
	switch {
	case containsAny(lower, "timer", "pomodoro"):
		return fmt.Sprintf(`<Card><Heading>%s</Heading><Timer minutes="25" /><Row><Button>Start</Button><Button>Reset</Button></Row></Card>`, title)
	case containsAny(lower, "track", "chart", "price", "stock", "crypto"):
		return fmt.Sprintf(`<Card><Heading>%s</Heading><Chart type="line" /><Badge>live</Badge></Card>`, title)
	case containsAny(lower, "todo", "task", "list", "plan"):
		return fmt.Sprintf(`<Card><Heading>%s</Heading><List><ListItem>First step</ListItem></List><Input placeholder="Add item" /><Button>Add</Button></Card>`, title)
	default:
		return fmt.Sprintf(`<Card><Heading>%s</Heading><Text>%s</Text><Button>Go</Button></Card>`, title, "Quick actions for: "+intent)
	}
}

// workspaceDocument answers free-form workspace prompts with a minimal HTML
// document carrying an embedded metadata block, mirroring what a live model
// is instructed to produce.
func (g *heuristicGenerator) workspaceDocument(prompt string) string {
	intent := promptField(prompt, "Intent: ")
	if intent == "" {
		intent = "workspace"
	}
	title := titleCase(intent)
	return fmt.Sprintf(`<!--WORKSPACE_META {"title": %q, "generator": "heuristic"} -->
<div class="workspace">
  <h1>%s</h1>
  <iframe src=%q title="Search"></iframe>
  <div class="actions">
    <button data-workspace-intent="plan next steps for %s">Plan next steps</button>
  </div>
</div>`, title, title, searchURL(strings.ToLower(intent)), intent)
}

func guessURL(lower string) string {
	sites := []struct {
		keyword string
		url     string
	}{
		{"gmail", "https://gmail.com"},
		{"mail", "https://gmail.com"},
		{"calendar", "https://calendar.google.com"},
		{"youtube", "https://www.youtube.com"},
		{"github", "https://github.com"},
		{"wikipedia", "https://wikipedia.org"},
		{"reddit", "https://reddit.com"},
		{"notion", "https://notion.so"},
		{"weather", "https://weather.com"},
	}
	for _, site := range sites {
		if strings.Contains(lower, site.keyword) {
			return site.url
		}
	}
	return searchURL(lower)
}

func searchURL(lower string) string {
	return "https://duckduckgo.com/?q=" + url.QueryEscape(lower)
}

func containsAny(s string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "Workspace"
	}
	return strings.Join(words, " ")
}
