package stockpick

import (
	"strings"

	"finfeed/pkg/llm"
)

// FilterExcluded drops candidates whose display name contains any
// exclude keyword as a substring, ignoring whitespace on both sides.
// This is deliberately looser than the exact-match rule used for
// search-keyword exclusion: "2차전지" must also knock out
// "LG에너지솔루션 2차전지 ETF".
func FilterExcluded(candidates []llm.StockCandidate, excluded []string) []llm.StockCandidate {
	if len(excluded) == 0 {
		return candidates
	}

	out := make([]llm.StockCandidate, 0, len(candidates))
	for _, c := range candidates {
		name := stripSpace(c.Name)
		blocked := false
		for _, kw := range excluded {
			kw = stripSpace(kw)
			if kw != "" && strings.Contains(name, kw) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, c)
		}
	}
	return out
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
