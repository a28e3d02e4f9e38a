// Package directory fetches the public university directory the registration
// form's dropdown is filled from.
package directory

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"talentbridge-engine/internal/netutil"
)

type University struct {
	Name string `json:"university_name"`
}

type Fetcher struct {
	url     string
	hc      *http.Client
	limiter *netutil.HostLimiter
}

func New(directoryURL string, limiter *netutil.HostLimiter) *Fetcher {
	return &Fetcher{
		url:     directoryURL,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

// Fetch scrapes university names from the directory page. The page is plain
// HTML; names sit in option elements or list items depending on the deploy,
// so both are tried. An unconfigured URL yields an empty list, not an error.
func (f *Fetcher) Fetch(ctx context.Context) ([]University, error) {
	if f.url == "" {
		return []University{}, nil
	}

	if f.limiter != nil {
		if err := f.limiter.WaitURL(ctx, f.url); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "TalentBridge/1.0 (+local)")

	res, err := f.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("directory status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("directory parse html: %w", err)
	}

	seen := map[string]bool{}
	var out []University

	collect := func(_ int, s *goquery.Selection) {
		name := cleanText(s.Text())
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, University{Name: name})
	}

	doc.Find("select option[value]").Each(collect)
	if len(out) == 0 {
		doc.Find("ul.universities li, li.university").Each(collect)
	}

	return out, nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
