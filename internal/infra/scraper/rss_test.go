package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FAFFA-GOLD/ai-news-batch/internal/infra/scraper"
)

const rssFixture = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.test</link>
    <item>
      <title>First article</title>
      <link>https://example.test/a</link>
      <description>Excerpt A</description>
      <pubDate>Mon, 01 Jan 2024 00:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Bare article</title>
      <link>https://example.test/b</link>
    </item>
  </channel>
</rss>`

const atomFixture = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Atom Feed</title>
  <entry>
    <title>Updated only</title>
    <link href="https://example.test/u"/>
    <updated>2024-03-02T09:00:00+09:00</updated>
  </entry>
</feed>`

func serve(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRSSFetcher_Fetch(t *testing.T) {
	srv := serve(t, http.StatusOK, rssFixture)

	f := scraper.NewRSSFetcher(srv.Client())
	items, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len(items)=%d, want 2", len(items))
	}

	first := items[0]
	if first.Title != "First article" || first.URL != "https://example.test/a" {
		t.Errorf("first item = %+v", first)
	}
	if first.Summary == nil || *first.Summary != "Excerpt A" {
		t.Errorf("summary = %v, want Excerpt A", first.Summary)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if first.Published == nil || !first.Published.Equal(want) {
		t.Errorf("published = %v, want %v", first.Published, want)
	}

	// Optional fields default to nil at the reader boundary.
	bare := items[1]
	if bare.Summary != nil || bare.Published != nil || bare.Updated != nil {
		t.Errorf("bare item must have nil optional fields, got %+v", bare)
	}
}

func TestRSSFetcher_Fetch_AtomUpdatedOnly(t *testing.T) {
	srv := serve(t, http.StatusOK, atomFixture)

	f := scraper.NewRSSFetcher(srv.Client())
	items, err := f.Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch err=%v", err)
	}
	if len(items) != 1 {
		t.Fatalf("len(items)=%d, want 1", len(items))
	}
	if items[0].Published != nil {
		t.Errorf("published = %v, want nil", items[0].Published)
	}
	want := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	if items[0].Updated == nil || !items[0].Updated.Equal(want) {
		t.Errorf("updated = %v, want instant %v", items[0].Updated, want)
	}
}

func TestRSSFetcher_Fetch_MalformedFeed(t *testing.T) {
	srv := serve(t, http.StatusOK, "this is not xml at all")

	f := scraper.NewRSSFetcher(srv.Client())
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("malformed feed must return an error")
	}
}

func TestRSSFetcher_Fetch_ServerError(t *testing.T) {
	srv := serve(t, http.StatusInternalServerError, "")

	f := scraper.NewRSSFetcher(srv.Client())
	if _, err := f.Fetch(context.Background(), srv.URL); err == nil {
		t.Fatal("5xx feed endpoint must return an error")
	}
}

func TestRSSFetcher_Fetch_Unreachable(t *testing.T) {
	f := scraper.NewRSSFetcher(&http.Client{Timeout: time.Second})
	if _, err := f.Fetch(context.Background(), "http://127.0.0.1:1/feed"); err == nil {
		t.Fatal("unreachable feed must return an error")
	}
}
