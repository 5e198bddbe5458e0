package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	boilerplateSelector = "script, style, nav, header, footer, aside, form, noscript, iframe, svg"
	blockSelector       = "p, h1, h2, h3, h4, h5, h6, li, blockquote, pre"
)

// ReadableExtractor pulls the main readable text out of an HTML page.
type ReadableExtractor struct{}

// Extract returns the page's main content, one text block per line. An empty
// string means nothing readable was found.
func (ReadableExtractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	doc.Find(boilerplateSelector).Remove()

	root := doc.Find("article").First()
	if root.Length() == 0 {
		root = doc.Find("main").First()
	}
	if root.Length() == 0 {
		root = doc.Find("body").First()
	}
	if root.Length() == 0 {
		return "", nil
	}

	var lines []string
	root.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested blocks are covered by their outermost block
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		if text := collapseSpace(s.Text()); text != "" {
			lines = append(lines, text)
		}
	})

	if len(lines) == 0 {
		return collapseSpace(root.Text()), nil
	}
	return strings.Join(lines, "\n"), nil
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
