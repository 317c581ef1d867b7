package ai

import (
	"encoding/json"
	"strings"
)

// extractJSON parses model output that should be a JSON object but may
// arrive wrapped in prose or a markdown fence. It tries a direct parse
// first, then the outermost {...} slice, then the outermost [...] slice.
func extractJSON(text string, v interface{}) bool {
	text = strings.TrimSpace(text)

	if json.Unmarshal([]byte(text), v) == nil {
		return true
	}

	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start >= 0 && end > start {
		if json.Unmarshal([]byte(text[start:end+1]), v) == nil {
			return true
		}
	}

	if start, end := strings.Index(text, "["), strings.LastIndex(text, "]"); start >= 0 && end > start {
		if json.Unmarshal([]byte(text[start:end+1]), v) == nil {
			return true
		}
	}

	return false
}
