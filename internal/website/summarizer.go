// Package website condenses a lead's homepage into a short text blob used for
// personalization. Fetching is strictly best-effort: any failure (DNS,
// timeout, non-2xx, unparsable HTML) degrades to an empty summary so a slow
// or dead website never fails the batch.
package website

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"go.uber.org/zap"
)

const (
	userAgent  = "Mozilla/5.0 (compatible; OutreachBot/1.0; +https://angebots-agent.de/bot)"
	maxBody    = 512 * 1024
	maxSummary = 300

	// Headings shorter than this are usually icons or nav fragments; longer
	// ones are paragraphs that slipped into an h-tag.
	minHeading = 4
	maxHeading = 99
)

// Summarizer fetches homepages with a bounded timeout.
type Summarizer struct {
	client *http.Client
}

// New creates a Summarizer. A non-positive timeout falls back to 5 seconds.
func New(timeout time.Duration) *Summarizer {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Summarizer{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: timeout,
				}).DialContext,
				TLSHandshakeTimeout: timeout,
			},
		},
	}
}

// Summarize fetches the domain's homepage and condenses title, meta
// description, and up to two short headings into one blob of at most 300
// runes. An empty domain returns "" without any network access; so does every
// failure mode.
func (s *Summarizer) Summarize(ctx context.Context, domain string) string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, NormalizeURL(domain), nil)
	if err != nil {
		zap.L().Debug("website: bad domain", zap.String("domain", domain), zap.Error(err))
		return ""
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		zap.L().Debug("website: fetch failed", zap.String("domain", domain), zap.Error(err))
		return ""
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		zap.L().Debug("website: non-success status",
			zap.String("domain", domain),
			zap.Int("status", resp.StatusCode),
		)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		zap.L().Debug("website: parse failed", zap.String("domain", domain), zap.Error(err))
		return ""
	}

	return Condense(doc)
}

// NormalizeURL turns a bare domain into a fetchable URL, preferring https
// when no scheme is present.
func NormalizeURL(domain string) string {
	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		return domain
	}
	return "https://" + domain
}

// Condense extracts title, meta description, and up to two short headings
// from a parsed document and joins whichever are present with " | ",
// truncated to the summary budget.
func Condense(doc *goquery.Document) string {
	var parts []string

	if title := clean(doc.Find("title").First().Text()); title != "" {
		parts = append(parts, title)
	}

	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		if desc = clean(desc); desc != "" {
			parts = append(parts, desc)
		}
	}

	headings := 0
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := clean(sel.Text())
		if n := utf8.RuneCountInString(text); n >= minHeading && n <= maxHeading {
			parts = append(parts, text)
			headings++
		}
		return headings < 2
	})

	return truncate(strings.Join(parts, " | "), maxSummary)
}

// clean collapses internal whitespace to single spaces.
func clean(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n])
}
