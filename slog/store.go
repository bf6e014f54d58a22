package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/goromian/tweetsnap"
)

// Ensure LoggingStore implements tweetsnap.SnapshotStore.
var _ tweetsnap.SnapshotStore = (*LoggingStore)(nil)

// LoggingStore wraps a SnapshotStore with structured logging.
type LoggingStore struct {
	next   tweetsnap.SnapshotStore
	logger *slog.Logger
}

// NewLoggingStore creates a new LoggingStore.
func NewLoggingStore(next tweetsnap.SnapshotStore, logger *slog.Logger) *LoggingStore {
	return &LoggingStore{next: next, logger: logger}
}

// Save delegates to the wrapped store, logging the artifact written.
func (s *LoggingStore) Save(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
	begin := time.Now()
	result, err := s.next.Save(ctx, snapshot)
	if err != nil {
		s.logger.Error("save snapshot",
			"username", snapshot.Username,
			"err", err,
		)
		return nil, err
	}
	s.logger.Info("save snapshot",
		"filename", result.Filename,
		"tweets", result.TweetCount,
		"duration", time.Since(begin),
	)
	return result, nil
}

// List delegates to the wrapped store.
func (s *LoggingStore) List(ctx context.Context) ([]tweetsnap.SnapshotInfo, error) {
	infos, err := s.next.List(ctx)
	if err != nil {
		s.logger.Error("list snapshots", "err", err)
		return nil, err
	}
	s.logger.Info("list snapshots", "count", len(infos))
	return infos, nil
}

// Get delegates to the wrapped store, logging misses at info level since a
// lookup for an absent artifact is routine.
func (s *LoggingStore) Get(ctx context.Context, name string) (*tweetsnap.Snapshot, error) {
	snapshot, err := s.next.Get(ctx, name)
	if err != nil {
		if tweetsnap.ErrorCode(err) == tweetsnap.ENOTFOUND {
			s.logger.Info("get snapshot", "filename", name, "found", false)
		} else {
			s.logger.Error("get snapshot", "filename", name, "err", err)
		}
		return nil, err
	}
	s.logger.Info("get snapshot", "filename", name, "tweets", snapshot.TweetCount)
	return snapshot, nil
}
