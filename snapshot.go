package tweetsnap

import (
	"context"
	"strings"
	"time"
)

// DefaultUsername names collections taken without a configured account.
const DefaultUsername = "timeline"

// Snapshot is one persisted collection run containing a batch of posts.
// TweetCount always equals len(Tweets) at the moment of writing.
type Snapshot struct {
	Username    string    `json:"username"`
	CollectedAt time.Time `json:"collectedAt"`
	TweetCount  int       `json:"tweetCount"`
	Tweets      []Post    `json:"tweets"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Username == "" {
		return Errorf(EINVALID, "snapshot username required")
	}
	if s.TweetCount != len(s.Tweets) {
		return Errorf(EINVALID, "snapshot tweet count %d does not match %d tweets", s.TweetCount, len(s.Tweets))
	}
	return nil
}

// ArtifactName derives the storage name for a snapshot from its collection
// date (UTC) and username: <YYYYMMDD>_<username>.json. A leading "@" on the
// username is stripped; an empty username falls back to DefaultUsername.
// Names are deterministic: saving twice on the same day for the same user
// produces the same name, and the store overwrites silently.
func ArtifactName(collectedAt time.Time, username string) string {
	u := strings.TrimPrefix(username, "@")
	if u == "" {
		u = DefaultUsername
	}
	return collectedAt.UTC().Format("20060102") + "_" + u + ".json"
}

// SnapshotInfo summarizes one stored artifact for listings.
type SnapshotInfo struct {
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	Modified    time.Time `json:"modified"`
	TweetCount  int       `json:"tweetCount"`
	CollectedAt time.Time `json:"collectedAt"`
}

// SaveResult reports where a snapshot was persisted.
type SaveResult struct {
	Filename   string `json:"filename"`
	Path       string `json:"filepath"`
	TweetCount int    `json:"tweetCount"`
}

// SnapshotStore persists and retrieves collection snapshots.
type SnapshotStore interface {
	// Save writes the snapshot under its derived artifact name,
	// overwriting any prior artifact with the same name.
	Save(ctx context.Context, snapshot *Snapshot) (*SaveResult, error)

	// List enumerates stored artifacts. Corrupt artifacts are reported
	// with zero-value metadata rather than aborting the listing.
	List(ctx context.Context) ([]SnapshotInfo, error)

	// Get retrieves a snapshot by artifact name.
	// Returns ENOTFOUND if no artifact with that name exists.
	Get(ctx context.Context, name string) (*Snapshot, error)
}
