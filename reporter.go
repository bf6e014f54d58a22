package tweetsnap

import "context"

// Reporter turns a collected snapshot into a human-readable markdown report.
type Reporter interface {
	Report(ctx context.Context, snapshot *Snapshot) (string, error)
}
