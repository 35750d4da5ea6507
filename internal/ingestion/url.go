package ingestion

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// fetchTimeout bounds a job posting fetch.
const fetchTimeout = 30 * time.Second

const userAgent = "Mozilla/5.0 (compatible; PortfolioAI/1.0)"

// FetchJobDescription retrieves a job posting page and returns its main body
// text with navigation, scripts and other noise removed.
func FetchJobDescription(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &FetchError{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: fetchTimeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{URL: urlStr, Message: resp.Status}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &FetchError{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	return ExtractPostingText(doc), nil
}

// ExtractPostingText returns the cleaned main text of a job posting document.
// It prefers common posting containers and falls back to the whole body.
func ExtractPostingText(doc *goquery.Document) string {
	doc.Find("nav, footer, header, script, style, noscript, .sidebar, .cookie-banner").Remove()

	for _, selector := range []string{"main", "article", ".job-description", "#job-description", ".posting"} {
		if selection := doc.Find(selector); selection.Length() > 0 {
			return CleanText(selection.First().Text())
		}
	}

	return CleanText(doc.Find("body").Text())
}

// ResolveJobDescription returns the inline description when present,
// otherwise fetches it from the given URL.
func ResolveJobDescription(ctx context.Context, description, urlStr string) (string, error) {
	if strings.TrimSpace(description) != "" {
		return CleanText(description), nil
	}
	return FetchJobDescription(ctx, urlStr)
}
