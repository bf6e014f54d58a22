// Package fs implements snapshot storage on the local filesystem. Each
// snapshot is one pretty-printed JSON artifact named by capture date and
// username.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/goromian/tweetsnap"
)

// Ensure SnapshotStore implements tweetsnap.SnapshotStore at compile time.
var _ tweetsnap.SnapshotStore = (*SnapshotStore)(nil)

// SnapshotStore persists snapshots as JSON files under a single directory.
// Saving a snapshot with the same date and username overwrites the existing
// artifact, so repeated captures on one day converge on the latest batch.
type SnapshotStore struct {
	dir string
}

// NewSnapshotStore creates a store rooted at dir. The directory is created
// on first save.
func NewSnapshotStore(dir string) *SnapshotStore {
	return &SnapshotStore{dir: dir}
}

// Dir returns the directory artifacts are written to.
func (s *SnapshotStore) Dir() string {
	return s.dir
}

// Save writes the snapshot as an indented JSON artifact and reports where
// it landed.
func (s *SnapshotStore) Save(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINTERNAL, "creating data directory: %v", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINTERNAL, "encoding snapshot: %v", err)
	}

	filename := tweetsnap.ArtifactName(snapshot.CollectedAt, snapshot.Username)
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINTERNAL, "writing snapshot: %v", err)
	}

	return &tweetsnap.SaveResult{
		Filename:   filename,
		Path:       path,
		TweetCount: snapshot.TweetCount,
	}, nil
}

// List returns metadata for every JSON artifact in the store, newest first.
// An artifact that cannot be parsed still appears in the listing with its
// file metadata and zero-value snapshot fields.
func (s *SnapshotStore) List(ctx context.Context) ([]tweetsnap.SnapshotInfo, error) {
	paths, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return nil, tweetsnap.Errorf(tweetsnap.EINTERNAL, "listing snapshots: %v", err)
	}

	infos := make([]tweetsnap.SnapshotInfo, 0, len(paths))
	for _, path := range paths {
		stat, err := os.Stat(path)
		if err != nil {
			continue
		}

		info := tweetsnap.SnapshotInfo{
			Filename: filepath.Base(path),
			Size:     stat.Size(),
			Modified: stat.ModTime(),
		}

		if snapshot, err := readSnapshot(path); err == nil {
			info.TweetCount = snapshot.TweetCount
			info.CollectedAt = snapshot.CollectedAt
		}

		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Filename > infos[j].Filename
	})

	return infos, nil
}

// Get loads a stored snapshot by artifact name. The name is reduced to its
// base so a crafted path cannot escape the store directory.
func (s *SnapshotStore) Get(ctx context.Context, name string) (*tweetsnap.Snapshot, error) {
	name = filepath.Base(name)

	snapshot, err := readSnapshot(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tweetsnap.Errorf(tweetsnap.ENOTFOUND, "File not found")
		}
		return nil, tweetsnap.Errorf(tweetsnap.EINTERNAL, "reading snapshot: %v", err)
	}

	return snapshot, nil
}

func readSnapshot(path string) (*tweetsnap.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snapshot tweetsnap.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}
