package scrape

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

const longParagraph = "정부가 발표한 이번 대책은 시장 전반의 유동성 흐름을 바꿀 수 있다는 평가가 나오면서 투자자들의 관심이 집중되고 있습니다."

func TestArticleBodyExtractsLongParagraphs(t *testing.T) {
	page := `<html><body>
		<p>메뉴</p>
		<p>` + longParagraph + `</p>
		<p>` + longParagraph + `</p>
		<p>구독</p>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	client := NewClient()

	body, err := client.ArticleBody(srv.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(body, "유동성"))
	assert.Equal(t, false, strings.Contains(body, "메뉴"))
}

func TestArticleBodyTooShortFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>짧은 글</p></body></html>`))
	}))
	defer srv.Close()

	client := NewClient()

	_, err := client.ArticleBody(srv.URL)

	assert.NotEqual(t, nil, err)
}

func TestArticleBodyNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient()

	_, err := client.ArticleBody(srv.URL)

	assert.NotEqual(t, nil, err)
}

func TestOGImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><meta property="og:image" content="https://img.example.com/thumb.jpg"></head></html>`))
	}))
	defer srv.Close()

	client := NewClient()

	assert.Equal(t, "https://img.example.com/thumb.jpg", client.OGImage(srv.URL))
}

func TestOGImageAbsent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head></head></html>`))
	}))
	defer srv.Close()

	client := NewClient()

	assert.Equal(t, "", client.OGImage(srv.URL))
}
