package recommend

import (
	"sort"
	"strings"
	"time"

	"finfeed/pkg/news"
)

const keywordWeight = 2

// ScoredArticle pairs an article with its relevance score for the
// duration of one ranking pass.
type ScoredArticle struct {
	Score   float64
	Article news.Article
}

// Score combines keyword matches against title+summary (weight 2 each,
// case-insensitive substring) with a linear recency bonus of
// max(0, days-ageDays). An unparseable or future publish date counts
// as published now, so it takes the full recency bonus; the query
// source already rejected anything it could not parse, this fallback
// only matters for articles arriving from elsewhere.
func Score(article news.Article, keywords []string, days int, now time.Time) float64 {
	haystack := strings.ToLower(article.Title + " " + article.Summary)

	matches := 0
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(kw)) {
			matches++
		}
	}

	return float64(matches*keywordWeight + recencyBonus(article.PublishedAt, days, now))
}

func recencyBonus(pubDate string, days int, now time.Time) int {
	ageDays := 0
	if t, err := time.Parse(time.RFC1123Z, pubDate); err == nil {
		ageDays = int(now.Sub(t).Hours() / 24)
		if ageDays < 0 {
			ageDays = 0
		}
	}
	if bonus := days - ageDays; bonus > 0 {
		return bonus
	}
	return 0
}

// RankAndTruncate orders articles by score descending and keeps the
// first limit entries. The sort is stable: equal scores keep their
// input order, which is first-seen order after deduplication.
func RankAndTruncate(scored []ScoredArticle, limit int) []news.Article {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if limit > len(scored) {
		limit = len(scored)
	}

	out := make([]news.Article, 0, limit)
	for _, s := range scored[:limit] {
		out = append(out, s.Article)
	}
	return out
}
