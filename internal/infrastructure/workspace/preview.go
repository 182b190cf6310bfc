package workspace

import (
	"regexp"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
)

// previewRule maps intent keywords to a fixed preview. Rules are checked in
// order; derivation is pure and stable for the same inputs.
type previewRule struct {
	re          *regexp.Regexp
	title       string
	description string
	icon        string
}

var previewRules = []previewRule{
	{regexp.MustCompile(`crypto|bitcoin|ethereum|coin`), "Crypto Tracker", "Live cryptocurrency prices", "💰"},
	{regexp.MustCompile(`weather|forecast|temperature`), "Weather", "Current conditions and forecast", "🌤️"},
	{regexp.MustCompile(`mail|gmail|inbox|email`), "Mail", "Your email inbox", "✉️"},
	{regexp.MustCompile(`calc`), "Calculator", "Quick calculations", "🧮"},
	{regexp.MustCompile(`timer|pomodoro`), "Focus Timer", "Timed work sessions", "⏱️"},
	{regexp.MustCompile(`music|playlist|song|lofi`), "Music", "Listening session", "🎵"},
	{regexp.MustCompile(`trip|travel|flight|hotel`), "Trip Planner", "Plan your travel", "✈️"},
	{regexp.MustCompile(`news|headline`), "News", "Latest headlines", "📰"},
	{regexp.MustCompile(`stock|portfolio|invest`), "Markets", "Stocks and portfolio", "📈"},
	{regexp.MustCompile(`todo|task|checklist`), "Tasks", "Things to get done", "✅"},
	{regexp.MustCompile(`note|write|draft|journal`), "Notes", "Writing surface", "📝"},
	{regexp.MustCompile(`calendar|schedule|meeting`), "Calendar", "Your schedule", "📅"},
}

// componentPreviews maps known static component names to their previews.
var componentPreviews = map[string]domain.WorkspacePreview{
	"calculator":  {Title: "Calculator", Description: "Quick calculations", Icon: "🧮"},
	"tripplanner": {Title: "Trip Planner", Description: "Plan your travel", Icon: "✈️"},
	"chart":       {Title: "Chart", Description: "Data visualization", Icon: "📊"},
	"weather":     {Title: "Weather", Description: "Current conditions and forecast", Icon: "🌤️"},
}

// derivePreview builds the title/description/icon for a cached workspace from
// the intent text and, for static workspaces, the component name.
func derivePreview(normalizedIntent string, workspaceType domain.WorkspaceType, component string) domain.WorkspacePreview {
	if workspaceType == domain.WorkspaceStatic {
		if preview, ok := componentPreviews[strings.ToLower(component)]; ok {
			return preview
		}
	}
	for _, rule := range previewRules {
		if rule.re.MatchString(normalizedIntent) {
			return domain.WorkspacePreview{
				Title:       rule.title,
				Description: rule.description,
				Icon:        rule.icon,
			}
		}
	}
	return domain.WorkspacePreview{
		Title:       fallbackTitle(normalizedIntent),
		Description: truncate(normalizedIntent, 80),
		Icon:        "🧭",
	}
}

func fallbackTitle(intent string) string {
	words := strings.Fields(intent)
	if len(words) > 5 {
		words = words[:5]
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	if len(words) == 0 {
		return "Workspace"
	}
	return strings.Join(words, " ")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
