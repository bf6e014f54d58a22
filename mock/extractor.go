// Package mock provides function-field mock implementations of tweetsnap
// service interfaces for testing.
package mock

import "github.com/goromian/tweetsnap"

var _ tweetsnap.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of tweetsnap.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*tweetsnap.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*tweetsnap.ExtractResult, error) {
	return e.ExtractFn(html)
}
