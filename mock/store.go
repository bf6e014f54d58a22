package mock

import (
	"context"

	"github.com/goromian/tweetsnap"
)

var _ tweetsnap.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore is a mock implementation of tweetsnap.SnapshotStore.
type SnapshotStore struct {
	SaveFn func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error)
	ListFn func(ctx context.Context) ([]tweetsnap.SnapshotInfo, error)
	GetFn  func(ctx context.Context, name string) (*tweetsnap.Snapshot, error)
}

func (s *SnapshotStore) Save(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
	return s.SaveFn(ctx, snapshot)
}

func (s *SnapshotStore) List(ctx context.Context) ([]tweetsnap.SnapshotInfo, error) {
	return s.ListFn(ctx)
}

func (s *SnapshotStore) Get(ctx context.Context, name string) (*tweetsnap.Snapshot, error) {
	return s.GetFn(ctx, name)
}
