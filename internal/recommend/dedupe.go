package recommend

import "finfeed/pkg/news"

// Dedupe removes articles sharing the same resolved URL key, keeping
// the first occurrence and its position. Articles with neither a
// canonical nor a display URL are dropped. Output order is stable, so
// applying Dedupe again is a no-op.
func Dedupe(articles []news.Article) []news.Article {
	seen := make(map[string]struct{}, len(articles))
	out := make([]news.Article, 0, len(articles))

	for _, a := range articles {
		key := a.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}

	return out
}
