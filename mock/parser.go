package mock

import "github.com/goromian/tweetsnap"

var _ tweetsnap.PostParser = (*PostParser)(nil)

// PostParser is a mock implementation of tweetsnap.PostParser.
type PostParser struct {
	ParsePostsFn func(html string, limit int) ([]tweetsnap.Post, error)
}

func (p *PostParser) ParsePosts(html string, limit int) ([]tweetsnap.Post, error) {
	return p.ParsePostsFn(html, limit)
}
