package agent

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"commander/scrape"
)

const (
	researcherName        = "ResearcherAgent"
	researcherDescription = "Specialized in web scraping and document summarization."

	contentPrefix    = "Content extracted from "
	contentMarker    = ":\n\n"
	truncationSuffix = "...\n[Content truncated due to size]"
)

// ResearcherLimits bounds the output of the researcher commands
type ResearcherLimits struct {
	MaxContentChars int           // scraped text beyond this many characters is truncated
	MaxLinks        int           // links listed before the "and N more" line
	TopWords        int           // most common words reported by analyze
	LinkTimeout     time.Duration // bound on the extract-links GET
}

// DefaultResearcherLimits returns the stock limits
func DefaultResearcherLimits() ResearcherLimits {
	return ResearcherLimits{
		MaxContentChars: 2000,
		MaxLinks:        10,
		TopWords:        5,
		LinkTimeout:     10 * time.Second,
	}
}

func (l *ResearcherLimits) defaults() {
	d := DefaultResearcherLimits()
	if l.MaxContentChars <= 0 {
		l.MaxContentChars = d.MaxContentChars
	}
	if l.MaxLinks <= 0 {
		l.MaxLinks = d.MaxLinks
	}
	if l.TopWords <= 0 {
		l.TopWords = d.TopWords
	}
	if l.LinkTimeout <= 0 {
		l.LinkTimeout = d.LinkTimeout
	}
}

// ResearcherOptions holds the collaborators and limits for a Researcher.
// Nil collaborators fall back to the HTTP client and goquery-based extractors.
type ResearcherOptions struct {
	// Downloader fetches pages for scrape, summarize and analyze
	Downloader scrape.Downloader
	// Extractor turns downloaded HTML into readable text
	Extractor scrape.Extractor
	// Metadata finds links for extract-links
	Metadata scrape.MetadataExtractor
	// Pages performs the bounded GET for extract-links
	Pages scrape.PageGetter
	Limits ResearcherLimits
	Logger hclog.Logger
}

type handlerFunc func(ctx context.Context, arg string) (string, error)

// Researcher scrapes, summarizes, lists links of and analyzes web pages or
// raw text. It holds no per-call state and is safe for concurrent use.
type Researcher struct {
	downloader scrape.Downloader
	extractor  scrape.Extractor
	metadata   scrape.MetadataExtractor
	pages      scrape.PageGetter
	limits     ResearcherLimits
	logger     hclog.Logger

	commands Registry
	handlers map[string]handlerFunc
}

var _ Agent = (*Researcher)(nil)

// NewResearcher creates a researcher. Nothing is fetched at construction.
func NewResearcher(opts ResearcherOptions) *Researcher {
	if opts.Logger == nil {
		opts.Logger = hclog.NewNullLogger()
	}
	opts.Limits.defaults()

	if opts.Downloader == nil || opts.Pages == nil {
		client := scrape.NewHTTPClient(scrape.ClientOptions{Logger: opts.Logger.Named("scrape")})
		if opts.Downloader == nil {
			opts.Downloader = client
		}
		if opts.Pages == nil {
			opts.Pages = client
		}
	}
	if opts.Extractor == nil {
		opts.Extractor = scrape.ReadableExtractor{}
	}
	if opts.Metadata == nil {
		opts.Metadata = scrape.OpenGraphExtractor{}
	}

	r := &Researcher{
		downloader: opts.Downloader,
		extractor:  opts.Extractor,
		metadata:   opts.Metadata,
		pages:      opts.Pages,
		limits:     opts.Limits,
		logger:     opts.Logger,
		commands:   researcherCommands,
	}
	r.handlers = map[string]handlerFunc{
		OpScrape:       r.scrape,
		OpSummarize:    r.summarize,
		OpExtractLinks: r.extractLinks,
		OpAnalyze:      r.analyze,
	}
	return r
}

var researcherCommands = NewRegistry(
	CommandSpec{Name: OpScrape, Info: CommandInfo{
		Description: "Extract text content from a website",
		Usage:       "scrape <url>",
		Examples: []string{
			"scrape https://news.ycombinator.com",
			"scrape https://en.wikipedia.org/wiki/Python_(programming_language)",
		},
	}},
	CommandSpec{Name: OpSummarize, Info: CommandInfo{
		Description: "Generate a brief summary of a text",
		Usage:       "summarize <text_or_url>",
		Examples: []string{
			"summarize https://news.ycombinator.com",
			"summarize 'Long text that needs to be summarized...'",
		},
	}},
	CommandSpec{Name: OpExtractLinks, Info: CommandInfo{
		Description: "Extract links from a webpage",
		Usage:       "extract-links <url>",
		Examples: []string{
			"extract-links https://news.ycombinator.com",
		},
	}},
	CommandSpec{Name: OpAnalyze, Info: CommandInfo{
		Description: "Analyze text content (word count, readability, etc.)",
		Usage:       "analyze <text_or_url>",
		Examples: []string{
			"analyze https://en.wikipedia.org/wiki/Python_(programming_language)",
			"analyze 'This is a sample text to analyze...'",
		},
	}},
)

func (r *Researcher) Name() string        { return researcherName }
func (r *Researcher) Description() string { return researcherDescription }
func (r *Researcher) Commands() Registry  { return r.commands }

// Execute runs command and converts any failure into its message
func (r *Researcher) Execute(ctx context.Context, command string, args []string) string {
	out, err := r.Run(ctx, command, args)
	if err != nil {
		return err.Error()
	}
	return out
}

// Run dispatches command. Panics raised by collaborators are recovered and
// reported as an OpExecute failure.
func (r *Researcher) Run(ctx context.Context, command string, args []string) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("error executing command", "command", command, "panic", p)
			out, err = "", &OpError{Op: OpExecute, Err: fmt.Errorf("%v", p)}
		}
	}()

	if command == "help" {
		return Listing(r), nil
	}
	if len(args) == 0 {
		return "", &OpError{Op: command, Err: ErrMissingArgs}
	}

	handler, ok := r.handlers[command]
	if !ok {
		return "", &OpError{Op: command, Err: ErrUnknownCommand}
	}
	return handler(ctx, args[0])
}

// IsURL reports whether s parses as an absolute URL with a host. Malformed
// input is simply not a URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

func (r *Researcher) scrape(ctx context.Context, target string) (string, error) {
	if !IsURL(target) {
		return "", &OpError{Op: OpScrape, URL: target, Err: ErrInvalidURL}
	}

	html, err := r.downloader.Download(ctx, target)
	if errors.Is(err, scrape.ErrNoContent) || (err == nil && html == "") {
		return "", &OpError{Op: OpScrape, URL: target, Err: ErrNoDownload}
	}
	if err != nil {
		r.logger.Error("error scraping website", "url", target, "error", err)
		return "", &OpError{Op: OpScrape, URL: target, Err: err}
	}

	text, err := r.extractor.Extract(html)
	if err != nil {
		r.logger.Error("error scraping website", "url", target, "error", err)
		return "", &OpError{Op: OpScrape, URL: target, Err: err}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &OpError{Op: OpScrape, URL: target, Err: ErrNoExtract}
	}

	if runes := []rune(text); len(runes) > r.limits.MaxContentChars {
		text = string(runes[:r.limits.MaxContentChars]) + truncationSuffix
	}
	return contentPrefix + target + contentMarker + text, nil
}

// workingText resolves a text-or-URL argument. For a URL it is the scraped
// text, or the scrape message itself when scraping did not succeed.
func (r *Researcher) workingText(ctx context.Context, input string) string {
	if !IsURL(input) {
		return input
	}

	out, err := r.scrape(ctx, input)
	if err != nil {
		r.logger.Warn("using scrape failure as working text", "url", input, "error", err)
		return err.Error()
	}
	if strings.HasPrefix(out, contentPrefix) {
		if i := strings.Index(out, contentMarker); i >= 0 {
			return out[i+len(contentMarker):]
		}
	}
	return out
}

func (r *Researcher) summarize(ctx context.Context, input string) (string, error) {
	r.logger.Debug("summarizing", "input", preview(input))
	return "Summary:\n\n" + Summarize(r.workingText(ctx, input)), nil
}

func (r *Researcher) extractLinks(ctx context.Context, target string) (string, error) {
	if !IsURL(target) {
		return "", &OpError{Op: OpExtractLinks, URL: target, Err: ErrInvalidURL}
	}

	body, err := r.pages.Get(ctx, target, r.limits.LinkTimeout)
	if err != nil {
		r.logger.Error("error extracting links", "url", target, "error", err)
		return "", &OpError{Op: OpExtractLinks, URL: target, Err: err}
	}

	var links []string
	meta, err := r.metadata.ExtractMetadata(body, target)
	if err != nil {
		r.logger.Debug("metadata extraction failed, scanning hrefs", "url", target, "error", err)
	} else if len(meta.Links) > 0 {
		links = meta.Links
	}
	if len(links) == 0 {
		links = scrape.ScanHrefs(body, target)
	}
	if len(links) == 0 {
		return "No links found on " + target, nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Links extracted from %s:\n\n", target)
	shown := links
	if len(shown) > r.limits.MaxLinks {
		shown = shown[:r.limits.MaxLinks]
	}
	for i, link := range shown {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, link)
	}
	if rest := len(links) - len(shown); rest > 0 {
		fmt.Fprintf(&sb, "\n... and %d more links.", rest)
	}
	return sb.String(), nil
}

func (r *Researcher) analyze(ctx context.Context, input string) (string, error) {
	r.logger.Debug("analyzing", "input", preview(input))
	return AnalyzeText(r.workingText(ctx, input), r.limits.TopWords).Report(), nil
}

func preview(s string) string {
	if runes := []rune(s); len(runes) > 50 {
		return string(runes[:50]) + "..."
	}
	return s
}
