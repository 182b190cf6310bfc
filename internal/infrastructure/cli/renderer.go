package cli

import (
	"fmt"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
)

// RenderPipelineResult prints a pipeline result in a friendly, ASCII-first
// format.
func RenderPipelineResult(result domain.PipelineResult) {
	fmt.Printf("Layout: %s (confidence %.2f)\n", result.Layout, result.Confidence)
	if result.FromCache {
		fmt.Println("Note: result served from cache")
	}
	if result.FallbackUsed {
		fmt.Println("Note: fallback layout used")
	}
	if result.Error != "" {
		fmt.Printf("Error: %s\n", result.Error)
	}

	fmt.Println("\nSlots:")
	for _, slot := range result.Slots {
		fmt.Printf("  [%s] %s\n", slot.Type, slot.ID)
		if url, ok := slot.Props["url"].(string); ok && url != "" {
			fmt.Printf("      url: %s\n", url)
		}
		if title, ok := slot.Props["title"].(string); ok && title != "" {
			fmt.Printf("      title: %s\n", title)
		}
		if slot.Component != "" {
			fmt.Printf("      component: %s\n", firstLine(slot.Component))
		}
		if slot.Error != "" {
			fmt.Printf("      error: %s\n", slot.Error)
		}
	}

	fmt.Printf("\nTimings: selection %dms, planning %dms, widgets %dms, total %dms\n",
		result.Metrics.LayoutSelectionMS,
		result.Metrics.ContentPlanningMS,
		result.Metrics.WidgetGenerationMS,
		result.Metrics.TotalMS,
	)
}

// RenderGenerationResult prints a dynamic generation result.
func RenderGenerationResult(result domain.GenerationResult) {
	if result.FromCache {
		fmt.Println("Note: document served from cache")
	}
	if result.Fallback {
		fmt.Println("Note: model unavailable, serving search toolkit")
	}
	if title, ok := result.Metadata["title"].(string); ok {
		fmt.Printf("Title: %s\n", title)
	}
	fmt.Println(result.HTMLContent)
	if len(result.Interactions) > 0 {
		fmt.Printf("\n%d interaction(s) in history\n", len(result.Interactions))
	}
}

func firstLine(s string) string {
	if idx := strings.Index(s, "\n"); idx >= 0 {
		return s[:idx] + " ..."
	}
	if len(s) > 100 {
		return s[:100] + " ..."
	}
	return s
}
