package scrape

import (
	"net/url"
	"regexp"
	"strings"
)

var hrefPattern = regexp.MustCompile(`href=['"]?([^'" >]+)`)

// ScanHrefs finds href values in raw markup without parsing it. Root-relative
// links get baseURL's scheme and host, protocol-relative links its scheme.
// Fragment, javascript: and mailto: links are dropped; order and duplicates
// are kept as found.
func ScanHrefs(body, baseURL string) []string {
	var scheme, host string
	if u, err := url.Parse(baseURL); err == nil {
		scheme, host = u.Scheme, u.Host
	}

	var links []string
	for _, m := range hrefPattern.FindAllStringSubmatch(body, -1) {
		link := m[1]
		switch {
		case strings.HasPrefix(link, "//"):
			if scheme != "" {
				link = scheme + ":" + link
			}
		case strings.HasPrefix(link, "/"):
			if scheme != "" && host != "" {
				link = scheme + "://" + host + link
			}
		}
		if isSkippedHref(link) {
			continue
		}
		links = append(links, link)
	}
	return links
}
