// Package trafilatura provides a tweetsnap.Extractor backed by
// go-trafilatura for article-mode extraction with metadata.
package trafilatura

import (
	"strings"

	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/extract"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements tweetsnap.Extractor at compile time.
var _ tweetsnap.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	contentLimit int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithContentLimit caps the extracted content at n characters.
// Defaults to tweetsnap.BatchContentLimit.
func WithContentLimit(n int) Option {
	return func(e *Extractor) {
		if n > 0 {
			e.contentLimit = n
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{contentLimit: tweetsnap.BatchContentLimit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the page summary.
func (e *Extractor) Extract(rawHTML string) (*tweetsnap.ExtractResult, error) {
	if rawHTML == "" {
		return nil, tweetsnap.Errorf(tweetsnap.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = tweetsnap.NoTitle
	}

	content := strings.Join(strings.Fields(result.ContentText), " ")

	return &tweetsnap.ExtractResult{
		Title:       title,
		Description: strings.TrimSpace(result.Metadata.Description),
		Content:     extract.Truncate(content, e.contentLimit),
	}, nil
}
