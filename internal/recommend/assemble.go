package recommend

import (
	"context"
	"log/slog"
	"time"

	"finfeed/pkg/news"
)

// Config holds the pipeline knobs with their documented defaults.
type Config struct {
	Days       int // recency window in calendar days
	PerKeyword int // articles requested per keyword (single page)
	Limit      int // size of the final ranked feed
}

func DefaultConfig() Config {
	return Config{Days: 3, PerKeyword: 5, Limit: 20}
}

// FeedArticle is the output shape handed to the HTTP layer.
type FeedArticle struct {
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
	Source      string
}

type Assembler struct {
	searcher news.Searcher
	cfg      Config
	now      func() time.Time
}

func NewAssembler(searcher news.Searcher, cfg Config) *Assembler {
	if cfg.Days < 1 {
		cfg.Days = 3
	}
	if cfg.PerKeyword < 1 {
		cfg.PerKeyword = 5
	}
	if cfg.Limit < 1 {
		cfg.Limit = 20
	}
	return &Assembler{searcher: searcher, cfg: cfg, now: time.Now}
}

// Assemble fetches one page per keyword, merges and dedupes the
// results, scores every unique article against the full keyword list
// and returns the top limit entries (the configured limit when limit
// is not positive). An empty keyword list yields an empty feed; a
// failed fetch for one keyword degrades to fewer results, not an
// error.
func (a *Assembler) Assemble(ctx context.Context, keywords []string, limit int) ([]FeedArticle, error) {
	if limit < 1 {
		limit = a.cfg.Limit
	}
	if len(keywords) == 0 {
		return []FeedArticle{}, nil
	}

	var raw []news.Article
	for _, kw := range keywords {
		articles, err := a.searcher.FetchRecent(ctx, kw, a.cfg.Days, 1, a.cfg.PerKeyword)
		if err != nil {
			slog.Warn("keyword fetch failed", "keyword", kw, "error", err)
			continue
		}
		raw = append(raw, articles...)
	}

	unique := Dedupe(raw)

	now := a.now()
	scored := make([]ScoredArticle, 0, len(unique))
	for _, art := range unique {
		scored = append(scored, ScoredArticle{
			Score:   Score(art, keywords, a.cfg.Days, now),
			Article: art,
		})
	}

	top := RankAndTruncate(scored, limit)

	out := make([]FeedArticle, 0, len(top))
	for _, art := range top {
		out = append(out, toFeedArticle(art, now))
	}
	return out, nil
}

func toFeedArticle(a news.Article, now time.Time) FeedArticle {
	publishedAt := now
	if t, err := time.Parse(time.RFC1123Z, a.PublishedAt); err == nil {
		publishedAt = t
	}
	return FeedArticle{
		Title:       a.Title,
		Description: a.Summary,
		URL:         a.URL(),
		PublishedAt: publishedAt,
		Source:      a.SourceName,
	}
}
