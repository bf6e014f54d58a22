// Package readability provides a tweetsnap.Extractor backed by
// go-readability for article-mode extraction.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/goromian/tweetsnap"
	"github.com/goromian/tweetsnap/extract"
)

// Ensure Extractor implements tweetsnap.Extractor at compile time.
var _ tweetsnap.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = tweetsnap.NoTitle
	}

	content := strings.Join(strings.Fields(article.TextContent), " ")

	return &tweetsnap.ExtractResult{
		Title:       title,
		Description: strings.TrimSpace(article.Excerpt),
		Content:     extract.Truncate(content, e.contentLimit),
	}, nil
}
