package mock

import (
	"context"

	"github.com/goromian/tweetsnap"
)

var _ tweetsnap.Reporter = (*Reporter)(nil)

// Reporter is a mock implementation of tweetsnap.Reporter.
type Reporter struct {
	ReportFn func(ctx context.Context, snapshot *tweetsnap.Snapshot) (string, error)
}

func (r *Reporter) Report(ctx context.Context, snapshot *tweetsnap.Snapshot) (string, error) {
	return r.ReportFn(ctx, snapshot)
}
