package mock

import (
	"context"

	"github.com/goromian/tweetsnap"
)

var _ tweetsnap.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of tweetsnap.Enricher.
type Enricher struct {
	EnrichFn func(ctx context.Context, post tweetsnap.Post) tweetsnap.Post
}

func (e *Enricher) Enrich(ctx context.Context, post tweetsnap.Post) tweetsnap.Post {
	return e.EnrichFn(ctx, post)
}

var _ tweetsnap.Collector = (*Collector)(nil)

// Collector is a mock implementation of tweetsnap.Collector.
type Collector struct {
	CollectFn func(ctx context.Context, posts []tweetsnap.Post, username string) *tweetsnap.Snapshot
}

func (c *Collector) Collect(ctx context.Context, posts []tweetsnap.Post, username string) *tweetsnap.Snapshot {
	return c.CollectFn(ctx, posts, username)
}
