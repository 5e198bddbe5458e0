package scrape_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"commander/scrape"
)

var _ = Describe("OpenGraphExtractor", func() {
	extractor := scrape.OpenGraphExtractor{}

	It("reads OpenGraph properties", func() {
		html := `<html><head>
<meta property="og:title" content="OG Title">
<meta property="og:description" content="OG description">
<meta property="og:site_name" content="Example">
<meta property="og:url" content="https://example.com/canonical">
</head><body></body></html>`
		meta, err := extractor.ExtractMetadata(html, "https://example.com/page")
		Expect(err).NotTo(HaveOccurred())
		Expect(meta.Title).To(Equal("OG Title"))
		Expect(meta.Description).To(Equal("OG description"))
		Expect(meta.SiteName).To(Equal("Example"))
		Expect(meta.CanonicalURL).To(Equal("https://example.com/canonical"))
		Expect(meta.Links).To(BeEmpty())
	})

	It("falls back to plain HTML tags", func() {
		html := `<html><head><title> Plain Title </title>
<meta name="description" content="plain description">
<link rel="canonical" href="https://example.com/c">
</head><body></body></html>`
		meta, err := extractor.ExtractMetadata(html, "https://example.com/page")
		Expect(err).NotTo(HaveOccurred())
		Expect(meta.Title).To(Equal("Plain Title"))
		Expect(meta.Description).To(Equal("plain description"))
		Expect(meta.CanonicalURL).To(Equal("https://example.com/c"))
	})

	It("collects absolute, deduplicated links", func() {
		html := `<body>
<a href="/about">About</a>
<a href="https://other.org/x">Other</a>
<a href="/about">About again</a>
<a href="#top">Top</a>
<a href="javascript:void(0)">JS</a>
<a href="mailto:me@example.com">Mail</a>
<a href="docs/intro">Relative</a>
</body>`
		meta, err := extractor.ExtractMetadata(html, "https://example.com/guide/")
		Expect(err).NotTo(HaveOccurred())
		Expect(meta.Links).To(Equal([]string{
			"https://example.com/about",
			"https://other.org/x",
			"https://example.com/guide/docs/intro",
		}))
	})
})
