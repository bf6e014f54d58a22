package tweetsnap

import "context"

// Collector turns a captured post batch into a snapshot, enriching posts
// that carry outbound links.
type Collector interface {
	// Collect enriches every post in the batch and wraps the result in a
	// snapshot stamped with the current time. Posts are independent: a
	// failure enriching one post's links never prevents the others from
	// being enriched and included. Posts that already carry linked
	// content pass through unchanged.
	Collect(ctx context.Context, posts []Post, username string) *Snapshot
}
