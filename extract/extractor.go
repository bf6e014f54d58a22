// Package extract provides the default pattern-based implementation of
// tweetsnap.Extractor. It deliberately avoids a full HTML parser: malformed
// markup degrades gracefully (worst case, tag fragments leak into the text)
// instead of failing.
package extract

import (
	"regexp"
	"strings"

	"github.com/goromian/tweetsnap"
)

// Ensure Extractor implements tweetsnap.Extractor at compile time.
var _ tweetsnap.Extractor = (*Extractor)(nil)

var (
	titleRe  = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	descRe   = regexp.MustCompile(`(?is)<meta\s+name=["']description["']\s+content=["'](.*?)["']`)
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style>`)
	bodyRe   = regexp.MustCompile(`(?is)<body[^>]*>(.*?)</body>`)
	tagRe    = regexp.MustCompile(`<[^>]+>`)
	spaceRe  = regexp.MustCompile(`\s+`)
)

// Extractor extracts a bounded plain-text summary from raw HTML using
// pattern matching.
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

// NewExtractor creates a new pattern-based Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{contentLimit: tweetsnap.BatchContentLimit}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the page summary. It never returns
// an error: missing title, description, or body are normal outcomes with
// default values.
func (e *Extractor) Extract(html string) (*tweetsnap.ExtractResult, error) {
	result := &tweetsnap.ExtractResult{
		Title: tweetsnap.NoTitle,
	}

	if m := titleRe.FindStringSubmatch(html); m != nil {
		result.Title = strings.TrimSpace(m[1])
	}
	if m := descRe.FindStringSubmatch(html); m != nil {
		result.Description = strings.TrimSpace(m[1])
	}

	// Script and style regions contribute no readable text.
	text := scriptRe.ReplaceAllString(html, "")
	text = styleRe.ReplaceAllString(text, "")

	// Prefer the body region when one exists; otherwise use the whole
	// stripped document.
	if m := bodyRe.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	text = tagRe.ReplaceAllString(text, " ")
	text = spaceRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(text)

	result.Content = Truncate(text, e.contentLimit)

	return result, nil
}

// Truncate caps s at limit characters without splitting a multi-byte rune.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
