package scrape

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
)

// OpenGraphExtractor reads OpenGraph metadata, falling back to plain HTML
// tags, and collects absolute outbound links.
type OpenGraphExtractor struct{}

func (OpenGraphExtractor) ExtractMetadata(html, pageURL string) (*PageMetadata, error) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(html)); err != nil {
		return nil, fmt.Errorf("parse opengraph: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	meta := &PageMetadata{
		Title:        og.Title,
		Description:  og.Description,
		SiteName:     og.SiteName,
		CanonicalURL: og.URL,
	}
	if meta.Title == "" {
		meta.Title = collapseSpace(doc.Find("title").First().Text())
	}
	if meta.Description == "" {
		meta.Description, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
		meta.Description = strings.TrimSpace(meta.Description)
	}
	if meta.CanonicalURL == "" {
		meta.CanonicalURL, _ = doc.Find(`link[rel="canonical"]`).First().Attr("href")
	}
	if meta.CanonicalURL == "" {
		meta.CanonicalURL = pageURL
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		base = nil
	}

	seen := make(map[string]bool)
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		link, ok := resolveLink(base, href)
		if !ok || seen[link] {
			return
		}
		seen[link] = true
		meta.Links = append(meta.Links, link)
	})

	return meta, nil
}

// resolveLink makes href absolute against base and reports whether it is a
// navigable http(s) link.
func resolveLink(base *url.URL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || isSkippedHref(href) {
		return "", false
	}

	rel, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	abs := rel
	if base != nil {
		abs = base.ResolveReference(rel)
	}
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}
	return abs.String(), true
}

func isSkippedHref(href string) bool {
	lower := strings.ToLower(href)
	return strings.HasPrefix(lower, "#") ||
		strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:")
}
