package directory_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talentbridge-engine/internal/directory"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func names(us []directory.University) []string {
	out := make([]string, len(us))
	for i, u := range us {
		out[i] = u.Name
	}
	return out
}

func TestFetch_SelectOptions(t *testing.T) {
	srv := serveHTML(t, `<html><body>
<select name="university">
  <option value="">Choose one</option>
  <option value="mit">MIT</option>
  <option value="eth">ETH Zurich</option>
</select>
</body></html>`)

	got, err := directory.New(srv.URL, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	want := []string{"Choose one", "MIT", "ETH Zurich"}
	if g := names(got); len(g) != len(want) || g[1] != "MIT" || g[2] != "ETH Zurich" {
		t.Errorf("names = %v, want %v", g, want)
	}
}

func TestFetch_ListFallback(t *testing.T) {
	srv := serveHTML(t, `<html><body>
<ul class="universities">
  <li> MIT </li>
  <li>ETH   Zurich</li>
  <li>mit</li>
</ul>
</body></html>`)

	got, err := directory.New(srv.URL, nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	// Whitespace collapsed, duplicates dropped case-insensitively.
	if g := names(got); len(g) != 2 || g[0] != "MIT" || g[1] != "ETH Zurich" {
		t.Errorf("names = %v, want [MIT, ETH Zurich]", g)
	}
}

func TestFetch_EmptyURL(t *testing.T) {
	got, err := directory.New("", nil).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("names = %v, want none", names(got))
	}
}

func TestFetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	t.Cleanup(srv.Close)

	if _, err := directory.New(srv.URL, nil).Fetch(context.Background()); err == nil {
		t.Error("expected an error for a 4xx directory page")
	}
}
