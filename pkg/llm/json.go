package llm

import "strings"

func cleanJSONResponse(content string) string {
	return extractJSON(content, "{", "}")
}

func cleanJSONArrayResponse(content string) string {
	return extractJSON(content, "[", "]")
}

// extractJSON strips markdown code fences and any prose around the
// outermost open..close pair.
func extractJSON(content, open, close string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	start := strings.Index(content, open)
	end := strings.LastIndex(content, close)
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}
