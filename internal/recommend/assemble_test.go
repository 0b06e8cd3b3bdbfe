package recommend

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"finfeed/pkg/news"
)

type fakeSearcher struct {
	byQuery map[string][]news.Article
	calls   []string
}

func (f *fakeSearcher) FetchRecent(ctx context.Context, query string, days, maxPages, pageSize int) ([]news.Article, error) {
	f.calls = append(f.calls, query)
	return f.byQuery[query], nil
}

func (f *fakeSearcher) Search(ctx context.Context, query string, display int, sort string) ([]news.Article, error) {
	return f.byQuery[query], nil
}

func TestAssembleEmptyKeywords(t *testing.T) {
	asm := NewAssembler(&fakeSearcher{}, DefaultConfig())

	out, err := asm.Assemble(context.Background(), nil, 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(out))
}

func TestAssembleMergesAndDedupes(t *testing.T) {
	shared := news.Article{
		Title:        "삼성전자와 SK하이닉스 동반 상승",
		CanonicalURL: "https://press.example.com/both",
		PublishedAt:  pubDateAgo(0),
	}
	searcher := &fakeSearcher{byQuery: map[string][]news.Article{
		"삼성전자": {
			{Title: "삼성전자 실적", CanonicalURL: "https://press.example.com/samsung", PublishedAt: pubDateAgo(1)},
			shared,
		},
		"SK하이닉스": {
			{Title: "SK하이닉스 수주", CanonicalURL: "https://press.example.com/hynix", PublishedAt: pubDateAgo(1)},
			shared,
		},
	}}

	asm := NewAssembler(searcher, DefaultConfig())

	out, err := asm.Assemble(context.Background(), []string{"삼성전자", "SK하이닉스"}, 0)

	assert.Equal(t, nil, err)
	// one article appears under both keywords: 3 unique, not 4
	assert.Equal(t, 3, len(out))
	assert.Equal(t, []string{"삼성전자", "SK하이닉스"}, searcher.calls)
}

func TestAssembleScoresWithFullKeywordList(t *testing.T) {
	searcher := &fakeSearcher{byQuery: map[string][]news.Article{
		"금리": {
			{
				Title:        "금리 인하 전망",
				CanonicalURL: "https://press.example.com/rate-only",
				PublishedAt:  pubDateAgo(0),
			},
		},
		"환율": {
			{
				Title:        "금리 인하가 환율에 미치는 영향",
				CanonicalURL: "https://press.example.com/rate-fx",
				PublishedAt:  pubDateAgo(0),
			},
		},
	}}

	asm := NewAssembler(searcher, DefaultConfig())

	out, err := asm.Assemble(context.Background(), []string{"금리", "환율"}, 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(out))
	// the article matching both keywords outranks the single-match one
	assert.Equal(t, "https://press.example.com/rate-fx", out[0].URL)
}

func TestAssembleTruncatesToLimit(t *testing.T) {
	var articles []news.Article
	for i := 0; i < 10; i++ {
		articles = append(articles, news.Article{
			Title:        "기사",
			CanonicalURL: "https://press.example.com/" + string(rune('a'+i)),
			PublishedAt:  pubDateAgo(0),
		})
	}
	searcher := &fakeSearcher{byQuery: map[string][]news.Article{"경제": articles}}

	asm := NewAssembler(searcher, Config{Days: 3, PerKeyword: 10, Limit: 4})

	out, err := asm.Assemble(context.Background(), []string{"경제"}, 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(out))
}

func TestAssemblePerCallLimitOverridesConfig(t *testing.T) {
	var articles []news.Article
	for i := 0; i < 10; i++ {
		articles = append(articles, news.Article{
			Title:        "기사",
			CanonicalURL: "https://press.example.com/" + string(rune('a'+i)),
			PublishedAt:  pubDateAgo(0),
		})
	}
	searcher := &fakeSearcher{byQuery: map[string][]news.Article{"경제": articles}}

	asm := NewAssembler(searcher, Config{Days: 3, PerKeyword: 10, Limit: 4})

	out, err := asm.Assemble(context.Background(), []string{"경제"}, 7)

	assert.Equal(t, nil, err)
	assert.Equal(t, 7, len(out))
}

func TestAssembleMapsOutputShape(t *testing.T) {
	published := time.Date(2026, 3, 9, 9, 30, 0, 0, time.FixedZone("KST", 9*3600))
	searcher := &fakeSearcher{byQuery: map[string][]news.Article{
		"경제": {
			{
				Title:        "제목",
				Summary:      "요약",
				CanonicalURL: "https://press.example.com/1",
				DisplayURL:   "https://news.naver.example/1",
				SourceName:   "press.example.com",
				PublishedAt:  published.Format(time.RFC1123Z),
			},
		},
	}}

	asm := NewAssembler(searcher, DefaultConfig())

	out, err := asm.Assemble(context.Background(), []string{"경제"}, 0)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(out))
	assert.Equal(t, "제목", out[0].Title)
	assert.Equal(t, "요약", out[0].Description)
	assert.Equal(t, "https://press.example.com/1", out[0].URL)
	assert.Equal(t, "press.example.com", out[0].Source)
	assert.Equal(t, true, out[0].PublishedAt.Equal(published))
}
