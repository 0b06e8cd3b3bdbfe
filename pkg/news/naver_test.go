package news

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

var kst = time.FixedZone("KST", 9*60*60)

func testNow() time.Time {
	return time.Date(2026, 3, 10, 15, 0, 0, 0, kst)
}

func pubDate(daysAgo int) string {
	return testNow().AddDate(0, 0, -daysAgo).Format(time.RFC1123Z)
}

func newTestClient(srv *httptest.Server) *NaverClient {
	client := &NaverClient{
		clientID:     "test-id",
		clientSecret: "test-secret",
		httpClient:   srv.Client(),
		now:          testNow,
	}
	client.httpClient.Transport = &rewriteTransport{base: srv.URL, inner: http.DefaultTransport}
	return client
}

func TestWithinDays(t *testing.T) {
	tests := []struct {
		name    string
		pubDate string
		days    int
		want    bool
	}{
		{name: "today accepted", pubDate: pubDate(0), days: 3, want: true},
		{name: "two days ago accepted", pubDate: pubDate(2), days: 3, want: true},
		{name: "three days ago rejected", pubDate: pubDate(3), days: 3, want: false},
		{name: "one day in future rejected", pubDate: pubDate(-1), days: 3, want: false},
		{name: "malformed date rejected", pubDate: "not a date", days: 3, want: false},
		{name: "empty date rejected", pubDate: "", days: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := withinDays(tt.pubDate, tt.days, testNow())
			if got != tt.want {
				t.Errorf("withinDays(%q, %d) = %v, want %v", tt.pubDate, tt.days, got, tt.want)
			}
		})
	}
}

func TestFetchRecentFiltersAndNormalizes(t *testing.T) {
	payload := map[string]interface{}{
		"total":   2,
		"start":   1,
		"display": 2,
		"items": []map[string]interface{}{
			{
				"title":        "<b>삼성전자</b> 반도체 투자 확대",
				"originallink": "https://press.example.com/samsung",
				"link":         "https://news.naver.example/1",
				"description":  "삼성전자가 &quot;반도체&quot; 투자를 늘린다.",
				"pubDate":      pubDate(1),
			},
			{
				"title":        "지난주 증시 결산",
				"originallink": "https://press.example.com/old",
				"link":         "https://news.naver.example/2",
				"description":  "오래된 기사",
				"pubDate":      pubDate(5),
			},
		},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	articles, err := client.FetchRecent(context.Background(), "삼성전자", 3, 1, 100)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))

	a := articles[0]
	assert.Equal(t, "삼성전자 반도체 투자 확대", a.Title)
	assert.Equal(t, `삼성전자가 "반도체" 투자를 늘린다.`, a.Summary)
	assert.Equal(t, "https://press.example.com/samsung", a.CanonicalURL)
	assert.Equal(t, "https://news.naver.example/1", a.DisplayURL)
	assert.Equal(t, "https://press.example.com/samsung", a.Key())
}

func TestFetchRecentStopsAtReportedTotal(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		payload := map[string]interface{}{
			"total": 1,
			"items": []map[string]interface{}{
				{
					"title":        "기사",
					"originallink": "https://press.example.com/a",
					"link":         "https://news.naver.example/a",
					"description":  "본문",
					"pubDate":      pubDate(0),
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	articles, err := client.FetchRecent(context.Background(), "경제", 3, 3, 100)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchRecentRetriesOnRateLimit(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		payload := map[string]interface{}{
			"total": 1,
			"items": []map[string]interface{}{
				{
					"title":        "기사",
					"originallink": "https://press.example.com/a",
					"link":         "https://news.naver.example/a",
					"description":  "본문",
					"pubDate":      pubDate(0),
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	articles, err := client.FetchRecent(context.Background(), "경제", 3, 1, 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetchRecentPartialResultOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	articles, err := client.FetchRecent(context.Background(), "경제", 3, 1, 10)

	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(articles))
}

func TestFetchRecentRejectsBadArguments(t *testing.T) {
	client := NewNaverClient("id", "secret")

	_, err := client.FetchRecent(context.Background(), "경제", 0, 1, 10)
	assert.NotEqual(t, nil, err)

	_, err = client.FetchRecent(context.Background(), "경제", 3, 0, 10)
	assert.NotEqual(t, nil, err)

	_, err = client.FetchRecent(context.Background(), "경제", 3, 1, 101)
	assert.NotEqual(t, nil, err)
}

func TestSearchSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sim", r.URL.Query().Get("sort"))
		payload := map[string]interface{}{
			"total": 1,
			"items": []map[string]interface{}{
				{
					"title":        "<b>환율</b> 급등",
					"originallink": "https://press.example.com/fx",
					"link":         "https://news.naver.example/fx",
					"description":  "원달러 환율이 올랐다.",
					"pubDate":      pubDate(10),
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := newTestClient(srv)

	articles, err := client.Search(context.Background(), "환율", 10, "sim")

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(articles))
	assert.Equal(t, "환율 급등", articles[0].Title)
}

// rewriteTransport redirects all requests to a fixed base URL (test server).
type rewriteTransport struct {
	base  string
	inner http.RoundTripper
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	parsed, _ := http.NewRequest("GET", rt.base, nil)
	req2.URL.Host = parsed.URL.Host
	req2.URL.Scheme = parsed.URL.Scheme
	return rt.inner.RoundTrip(req2)
}
