package ai

import (
	"fmt"
	"strings"

	"github.com/doeshing/intentdesk/internal/domain"
)

// extractJSONObject pulls the first top-level JSON object out of model text,
// tolerating surrounding prose and markdown code fences.
func extractJSONObject(text string) (string, error) {
	text = stripCodeFences(text)
	start := strings.Index(text, "{")
	if start < 0 {
		return "", fmt.Errorf("%w: no JSON object found", domain.ErrMalformedResponse)
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unbalanced JSON object", domain.ErrMalformedResponse)
}

func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
