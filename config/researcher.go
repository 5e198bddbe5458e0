package config

import (
	"fmt"
	"time"
)

// ResearcherConfig holds the output limits of the researcher agent
type ResearcherConfig struct {
	MaxContentChars int `hcl:"max_content_chars,optional"`
	MaxLinks        int `hcl:"max_links,optional"`
	TopWords        int `hcl:"top_words,optional"`
	LinkTimeout     int `hcl:"link_timeout,optional"` // seconds
}

// Defaults fills in default values for unset fields
func (r *ResearcherConfig) Defaults() {
	if r.MaxContentChars == 0 {
		r.MaxContentChars = 2000
	}
	if r.MaxLinks == 0 {
		r.MaxLinks = 10
	}
	if r.TopWords == 0 {
		r.TopWords = 5
	}
	if r.LinkTimeout == 0 {
		r.LinkTimeout = 10
	}
}

// Validate checks that all limits are positive
func (r *ResearcherConfig) Validate() error {
	if r.MaxContentChars < 1 {
		return fmt.Errorf("max_content_chars must be positive, got %d", r.MaxContentChars)
	}
	if r.MaxLinks < 1 {
		return fmt.Errorf("max_links must be positive, got %d", r.MaxLinks)
	}
	if r.TopWords < 1 {
		return fmt.Errorf("top_words must be positive, got %d", r.TopWords)
	}
	if r.LinkTimeout < 1 {
		return fmt.Errorf("link_timeout must be positive, got %d", r.LinkTimeout)
	}
	return nil
}

func (r *ResearcherConfig) LinkTimeoutDuration() time.Duration {
	return time.Duration(r.LinkTimeout) * time.Second
}
