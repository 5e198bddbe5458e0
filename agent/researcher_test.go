package agent_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"commander/agent"
	"commander/scrape"
)

var _ = Describe("Researcher", func() {
	var (
		ctx        context.Context
		downloader *fakeDownloader
		extractor  *fakeExtractor
		pages      *fakePages
		metadata   *fakeMetadata
		limits     agent.ResearcherLimits
		researcher *agent.Researcher
	)

	BeforeEach(func() {
		ctx = context.Background()
		downloader = &fakeDownloader{html: "<html>page</html>"}
		extractor = &fakeExtractor{text: "Extracted text."}
		pages = &fakePages{}
		metadata = &fakeMetadata{meta: &scrape.PageMetadata{}}
		limits = agent.DefaultResearcherLimits()
	})

	JustBeforeEach(func() {
		researcher = agent.NewResearcher(agent.ResearcherOptions{
			Downloader: downloader,
			Extractor:  extractor,
			Metadata:   metadata,
			Pages:      pages,
			Limits:     limits,
		})
	})

	Describe("identity and commands", func() {
		It("has a fixed name and description", func() {
			Expect(researcher.Name()).To(Equal("ResearcherAgent"))
			Expect(researcher.Description()).To(Equal("Specialized in web scraping and document summarization."))
		})

		It("describes its four commands in order", func() {
			cmds := researcher.Commands()
			Expect(cmds.Names()).To(Equal([]string{"scrape", "summarize", "extract-links", "analyze"}))

			info, ok := cmds.Lookup("scrape")
			Expect(ok).To(BeTrue())
			Expect(info.Description).To(Equal("Extract text content from a website"))
			Expect(info.Usage).To(Equal("scrape <url>"))
			Expect(info.Examples).To(ContainElement("scrape https://news.ycombinator.com"))

			info, _ = cmds.Lookup("analyze")
			Expect(info.Usage).To(Equal("analyze <text_or_url>"))
		})

		It("returns structurally identical registries on every call", func() {
			Expect(researcher.Commands()).To(Equal(researcher.Commands()))
		})

		It("does not fetch anything at construction", func() {
			Expect(downloader.calls).To(Equal(0))
		})
	})

	Describe("dispatch", func() {
		DescribeTable("requires an argument for every command except help",
			func(command string) {
				out := researcher.Execute(ctx, command, nil)
				Expect(out).To(Equal(fmt.Sprintf("Error: Missing arguments for '%s' command. Use 'help researcher' for usage information.", command)))
			},
			Entry("scrape", "scrape"),
			Entry("summarize", "summarize"),
			Entry("extract-links", "extract-links"),
			Entry("analyze", "analyze"),
		)

		It("reports unknown commands", func() {
			Expect(researcher.Execute(ctx, "bogus", []string{"x"})).To(Equal("Unknown command: 'bogus'"))
		})

		It("returns a tagged error from Run", func() {
			_, err := researcher.Run(ctx, "bogus", []string{"x"})
			var opErr *agent.OpError
			Expect(errors.As(err, &opErr)).To(BeTrue())
			Expect(errors.Is(err, agent.ErrUnknownCommand)).To(BeTrue())
		})

		It("lists its commands for help", func() {
			out := researcher.Execute(ctx, "help", nil)
			Expect(out).To(HavePrefix("Agent: ResearcherAgent\nDescription: Specialized in web scraping and document summarization.\n\nAvailable Commands:\n"))
			Expect(out).To(ContainSubstring("- extract-links: Extract links from a webpage\n  Usage: extract-links <url>\n  Examples:\n    extract-links https://news.ycombinator.com"))
		})

		It("uses only the first argument", func() {
			out := researcher.Execute(ctx, "summarize", []string{"A. B.", "ignored"})
			Expect(out).To(Equal("Summary:\n\nA. B."))
		})

		Context("when a collaborator panics", func() {
			BeforeEach(func() {
				downloader.panicWith = "boom"
			})

			It("converts the panic to an error message", func() {
				Expect(researcher.Execute(ctx, "scrape", []string{"https://example.com"})).To(Equal("Error executing command: boom"))
			})
		})
	})

	Describe("IsURL", func() {
		DescribeTable("classifies input",
			func(input string, expected bool) {
				Expect(agent.IsURL(input)).To(Equal(expected))
			},
			Entry("plain text", "not a url", false),
			Entry("http URL", "http://example.com", true),
			Entry("ftp URL", "ftp://x.y", true),
			Entry("empty", "", false),
			Entry("scheme without host", "mailto:a@b.c", false),
			Entry("malformed", "http://[::1", false),
			Entry("host without scheme", "example.com/path", false),
		)
	})

	Describe("scrape", func() {
		It("rejects invalid URLs", func() {
			Expect(researcher.Execute(ctx, "scrape", []string{"not a url"})).To(Equal("Error: 'not a url' is not a valid URL."))
			Expect(downloader.calls).To(Equal(0))
		})

		It("returns the extracted text", func() {
			out := researcher.Execute(ctx, "scrape", []string{"https://example.com"})
			Expect(out).To(Equal("Content extracted from https://example.com:\n\nExtracted text."))
		})

		It("reports pages with no content", func() {
			downloader.html = ""
			downloader.err = scrape.ErrNoContent
			Expect(researcher.Execute(ctx, "scrape", []string{"https://example.com"})).To(Equal("Error: Could not download content from https://example.com"))
		})

		It("reports an empty download without an error", func() {
			downloader.html = ""
			Expect(researcher.Execute(ctx, "scrape", []string{"https://example.com"})).To(Equal("Error: Could not download content from https://example.com"))
		})

		It("reports blank extraction", func() {
			extractor.text = "  \n "
			Expect(researcher.Execute(ctx, "scrape", []string{"https://example.com"})).To(Equal("Error: Could not extract content from https://example.com"))
		})

		It("reports transport failures", func() {
			downloader.err = errors.New("connection refused")
			Expect(researcher.Execute(ctx, "scrape", []string{"https://example.com"})).To(Equal("Error scraping website: connection refused"))
		})

		It("reports extractor failures", func() {
			extractor.err = errors.New("bad markup")
			Expect(researcher.Execute(ctx, "scrape", []string{"https://example.com"})).To(Equal("Error scraping website: bad markup"))
		})

		Context("with long content", func() {
			BeforeEach(func() {
				extractor.text = strings.Repeat("ü", 2500)
			})

			It("truncates to the character limit", func() {
				out := researcher.Execute(ctx, "scrape", []string{"https://example.com"})
				Expect(out).To(Equal("Content extracted from https://example.com:\n\n" + strings.Repeat("ü", 2000) + "...\n[Content truncated due to size]"))
			})
		})

		Context("with a configured limit", func() {
			BeforeEach(func() {
				limits.MaxContentChars = 5
				extractor.text = "abcdefgh"
			})

			It("truncates to that limit", func() {
				out := researcher.Execute(ctx, "scrape", []string{"https://example.com"})
				Expect(out).To(HaveSuffix("\n\nabcde...\n[Content truncated due to size]"))
			})
		})

		It("keeps content at exactly the limit", func() {
			extractor.text = strings.Repeat("a", 2000)
			out := researcher.Execute(ctx, "scrape", []string{"https://example.com"})
			Expect(out).NotTo(ContainSubstring("truncated"))
		})
	})

	Describe("summarize", func() {
		It("summarizes raw text", func() {
			out := researcher.Execute(ctx, "summarize", []string{"One. Two. Three. Four. Five."})
			Expect(out).To(Equal("Summary:\n\nOne. Three. Five."))
		})

		It("summarizes the scraped text of a URL", func() {
			extractor.text = "First point. Second point. Third point."
			out := researcher.Execute(ctx, "summarize", []string{"https://example.com/a"})
			Expect(out).To(Equal("Summary:\n\nFirst point. Second point. Third point."))
			Expect(downloader.calls).To(Equal(1))
		})

		It("uses the scrape message when the URL cannot be scraped", func() {
			downloader.err = scrape.ErrNoContent
			out := researcher.Execute(ctx, "summarize", []string{"https://example.com"})
			Expect(out).To(Equal("Summary:\n\nError: Could not download content from https://example.com"))
		})
	})

	Describe("extract-links", func() {
		It("rejects invalid URLs", func() {
			Expect(researcher.Execute(ctx, "extract-links", []string{"nope"})).To(Equal("Error: 'nope' is not a valid URL."))
		})

		It("bounds the request with the link timeout", func() {
			metadata.meta.Links = []string{"https://a.com"}
			researcher.Execute(ctx, "extract-links", []string{"https://example.com"})
			Expect(pages.timeout).To(Equal(10 * time.Second))
		})

		It("lists links from the metadata extractor", func() {
			metadata.meta.Links = []string{"https://a.com", "https://b.com"}
			out := researcher.Execute(ctx, "extract-links", []string{"https://example.com"})
			Expect(out).To(Equal("Links extracted from https://example.com:\n\n1. https://a.com\n2. https://b.com\n"))
		})

		It("counts links beyond the limit", func() {
			for i := 0; i < 13; i++ {
				metadata.meta.Links = append(metadata.meta.Links, fmt.Sprintf("https://x.com/%d", i))
			}
			out := researcher.Execute(ctx, "extract-links", []string{"https://example.com"})
			Expect(out).To(ContainSubstring("10. https://x.com/9\n"))
			Expect(out).NotTo(ContainSubstring("11. "))
			Expect(out).To(HaveSuffix("\n... and 3 more links."))
		})

		It("falls back to scanning hrefs", func() {
			pages.body = `<a href="/a">a</a><a href="https://x.com/b">b</a><a href="#frag">f</a><a href="mailto:x@y.com">m</a>`
			out := researcher.Execute(ctx, "extract-links", []string{"https://site.com"})
			Expect(out).To(Equal("Links extracted from https://site.com:\n\n1. https://site.com/a\n2. https://x.com/b\n"))
		})

		It("falls back when the metadata extractor fails", func() {
			metadata.err = errors.New("parse failure")
			metadata.meta = nil
			pages.body = `<a href="//cdn.site.com/lib.js">`
			out := researcher.Execute(ctx, "extract-links", []string{"https://site.com"})
			Expect(out).To(ContainSubstring("1. https://cdn.site.com/lib.js"))
		})

		It("reports pages without links", func() {
			pages.body = "<p>nothing here</p>"
			Expect(researcher.Execute(ctx, "extract-links", []string{"https://site.com"})).To(Equal("No links found on https://site.com"))
		})

		It("reports GET failures", func() {
			pages.err = &scrape.StatusError{StatusCode: 404, URL: "https://site.com"}
			Expect(researcher.Execute(ctx, "extract-links", []string{"https://site.com"})).To(Equal("Error extracting links: 404 Not Found for url: https://site.com"))
		})
	})

	Describe("analyze", func() {
		It("analyzes raw text", func() {
			out := researcher.Execute(ctx, "analyze", []string{"The cat sat. The cat ran. The dog slept."})
			Expect(out).To(HavePrefix("Text Analysis:\n\nWord Count: 9\n"))
			Expect(out).To(ContainSubstring("Sentence Count: 3\n"))
			Expect(out).To(ContainSubstring("- cat: 2 occurrences\n"))
		})

		It("analyzes the scraped text of a URL", func() {
			extractor.text = "Scraped words here."
			out := researcher.Execute(ctx, "analyze", []string{"https://example.com"})
			Expect(out).To(ContainSubstring("Word Count: 3\n"))
			Expect(out).To(ContainSubstring("- scraped: 1 occurrences\n"))
		})

		Context("with a smaller top word limit", func() {
			BeforeEach(func() {
				limits.TopWords = 1
			})

			It("lists only that many words", func() {
				out := researcher.Execute(ctx, "analyze", []string{"alpha beta beta"})
				Expect(out).To(HaveSuffix("Most Common Words:\n- beta: 2 occurrences\n"))
			})
		})
	})

	Describe("concurrent use", func() {
		It("serves parallel calls", func() {
			done := make(chan string, 8)
			for i := 0; i < 8; i++ {
				go func() {
					defer GinkgoRecover()
					done <- researcher.Execute(ctx, "summarize", []string{"One. Two. Three."})
				}()
			}
			for i := 0; i < 8; i++ {
				Eventually(done).Should(Receive(Equal("Summary:\n\nOne. Two. Three.")))
			}
		})
	})
})
