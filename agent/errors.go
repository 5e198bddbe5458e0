package agent

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArgs    = errors.New("missing arguments")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidURL     = errors.New("invalid url")
	ErrNoDownload     = errors.New("could not download content")
	ErrNoExtract      = errors.New("could not extract content")
)

const (
	OpScrape       = "scrape"
	OpSummarize    = "summarize"
	OpExtractLinks = "extract-links"
	OpAnalyze      = "analyze"
	OpExecute      = "execute"
)

// OpError is a failed agent operation. Its Error() is the exact message shown
// to the user.
type OpError struct {
	Op  string // operation, or the command name for dispatch failures
	URL string // target URL when there is one
	Err error
}

func (e *OpError) Error() string {
	switch {
	case errors.Is(e.Err, ErrMissingArgs):
		return fmt.Sprintf("Error: Missing arguments for '%s' command. Use 'help researcher' for usage information.", e.Op)
	case errors.Is(e.Err, ErrUnknownCommand):
		return fmt.Sprintf("Unknown command: '%s'", e.Op)
	case errors.Is(e.Err, ErrInvalidURL):
		return fmt.Sprintf("Error: '%s' is not a valid URL.", e.URL)
	case errors.Is(e.Err, ErrNoDownload):
		return fmt.Sprintf("Error: Could not download content from %s", e.URL)
	case errors.Is(e.Err, ErrNoExtract):
		return fmt.Sprintf("Error: Could not extract content from %s", e.URL)
	}
	return fmt.Sprintf("%s: %v", failurePrefix(e.Op), e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func failurePrefix(op string) string {
	switch op {
	case OpScrape:
		return "Error scraping website"
	case OpSummarize:
		return "Error summarizing text"
	case OpExtractLinks:
		return "Error extracting links"
	case OpAnalyze:
		return "Error analyzing text"
	default:
		return "Error executing command"
	}
}
