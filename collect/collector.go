package collect

import (
	"context"
	"time"

	"github.com/goromian/tweetsnap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel post enrichment when none is set.
const DefaultConcurrency = 4

// Ensure Collector implements tweetsnap.Collector at compile time.
var _ tweetsnap.Collector = (*Collector)(nil)

// Collector enriches a batch of posts in parallel and assembles the
// snapshot. Posts are independent work items: each is enriched on its own
// and a failure inside one never blocks the rest.
type Collector struct {
	Enricher    tweetsnap.Enricher
	Concurrency int

	// now is overridable for tests.
	now func() time.Time
}

// Collect enriches every post that doesn't already carry linked content and
// returns the batch as a snapshot stamped with the current UTC time. Output
// order matches input order regardless of which posts finish first.
func (c *Collector) Collect(ctx context.Context, posts []tweetsnap.Post, username string) *tweetsnap.Snapshot {
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	enriched := make([]tweetsnap.Post, len(posts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, post := range posts {
		g.Go(func() error {
			if post.Enriched() {
				enriched[i] = post
				return nil
			}
			enriched[i] = c.Enricher.Enrich(gctx, post)
			return nil
		})
	}
	_ = g.Wait()

	now := time.Now
	if c.now != nil {
		now = c.now
	}

	if username == "" {
		username = tweetsnap.DefaultUsername
	}

	return &tweetsnap.Snapshot{
		Username:    username,
		CollectedAt: now().UTC(),
		TweetCount:  len(enriched),
		Tweets:      enriched,
	}
}
