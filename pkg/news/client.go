package news

import "context"

// Article is the single normalized shape every search result is mapped
// into at the client boundary. It lives for one request and is never
// persisted.
type Article struct {
	Title        string
	Summary      string
	PublishedAt  string // vendor pubDate string, RFC 1123 with numeric zone
	SourceName   string
	CanonicalURL string // publisher's original link
	DisplayURL   string // search provider's redirect link
}

// Key is the identity used for deduplication: the canonical URL when
// present, the display URL otherwise. Empty means the article is not
// usable downstream.
func (a Article) Key() string {
	if a.CanonicalURL != "" {
		return a.CanonicalURL
	}
	return a.DisplayURL
}

// URL is the link exposed to callers, with the same preference order
// as Key.
func (a Article) URL() string {
	return a.Key()
}

type Searcher interface {
	// FetchRecent returns articles for query published within the last
	// days calendar days, most recent first. A vendor failure mid-fetch
	// returns whatever was collected so far, not an error.
	FetchRecent(ctx context.Context, query string, days, maxPages, pageSize int) ([]Article, error)

	// Search fetches a single page without the recency filter, used
	// where relevance order is wanted instead of recency.
	Search(ctx context.Context, query string, display int, sort string) ([]Article, error)
}
