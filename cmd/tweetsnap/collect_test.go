package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goromian/tweetsnap"
	main "github.com/goromian/tweetsnap/cmd/tweetsnap"
	"github.com/goromian/tweetsnap/goquery"
	"github.com/goromian/tweetsnap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectDeps(stdout *bytes.Buffer, store *mock.SnapshotStore) *main.Dependencies {
	settings := tweetsnap.DefaultSettings()
	return &main.Dependencies{
		Ctx:      context.Background(),
		Stdout:   stdout,
		Stderr:   &bytes.Buffer{},
		Settings: &settings,
		Store:    store,
		Parser:   goquery.NewPostParser(),
		Collector: &mock.Collector{
			CollectFn: func(ctx context.Context, posts []tweetsnap.Post, username string) *tweetsnap.Snapshot {
				if username == "" {
					username = tweetsnap.DefaultUsername
				}
				return &tweetsnap.Snapshot{
					Username:    username,
					CollectedAt: time.Now().UTC(),
					TweetCount:  len(posts),
					Tweets:      posts,
				}
			},
		},
	}
}

func TestCollectCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("collects posts from a JSON file", func(t *testing.T) {
		t.Parallel()

		posts := []tweetsnap.Post{
			{Author: "alice", Text: "hello", URLs: []string{}},
		}
		data, err := json.Marshal(posts)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "posts.json")
		require.NoError(t, os.WriteFile(path, data, 0644))

		var saved *tweetsnap.Snapshot
		store := &mock.SnapshotStore{
			SaveFn: func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
				saved = snapshot
				return &tweetsnap.SaveResult{Filename: "x.json", Path: "data/x.json", TweetCount: snapshot.TweetCount}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := collectDeps(stdout, store)

		cmd := &main.CollectCmd{File: path, Username: "bob"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "bob", saved.Username)
		assert.Equal(t, 1, saved.TweetCount)
		assert.Contains(t, stdout.String(), "Saved 1 tweets")
	})

	t.Run("collects posts from a saved HTML page", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article data-testid="tweet">
			<a role="link" href="/alice">alice</a>
			<div data-testid="tweetText">from the page</div>
			<time datetime="2024-03-05T10:00:00.000Z">1h</time>
		</article></body></html>`

		path := filepath.Join(t.TempDir(), "timeline.html")
		require.NoError(t, os.WriteFile(path, []byte(html), 0644))

		var saved *tweetsnap.Snapshot
		store := &mock.SnapshotStore{
			SaveFn: func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
				saved = snapshot
				return &tweetsnap.SaveResult{Filename: "x.json", TweetCount: snapshot.TweetCount}, nil
			},
		}

		deps := collectDeps(&bytes.Buffer{}, store)

		cmd := &main.CollectCmd{File: path}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		require.Len(t, saved.Tweets, 1)
		assert.Equal(t, "alice", saved.Tweets[0].Author)
		assert.Equal(t, "from the page", saved.Tweets[0].Text)
	})

	t.Run("passes the configured post limit to the parser", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "timeline.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		var gotLimit int
		store := &mock.SnapshotStore{
			SaveFn: func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
				return &tweetsnap.SaveResult{TweetCount: snapshot.TweetCount}, nil
			},
		}

		deps := collectDeps(&bytes.Buffer{}, store)
		deps.Settings.PostLimit = 7
		deps.Parser = &mock.PostParser{
			ParsePostsFn: func(html string, limit int) ([]tweetsnap.Post, error) {
				gotLimit = limit
				return []tweetsnap.Post{{Author: "alice", Text: "parsed"}}, nil
			},
		}

		require.NoError(t, (&main.CollectCmd{File: path}).Run(deps))
		assert.Equal(t, 7, gotLimit)
	})

	t.Run("classifies the batch from the captured page URL", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "timeline.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		var saved *tweetsnap.Snapshot
		store := &mock.SnapshotStore{
			SaveFn: func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
				saved = snapshot
				return &tweetsnap.SaveResult{TweetCount: snapshot.TweetCount}, nil
			},
		}

		deps := collectDeps(&bytes.Buffer{}, store)
		deps.Parser = &mock.PostParser{
			ParsePostsFn: func(html string, limit int) ([]tweetsnap.Post, error) {
				return []tweetsnap.Post{{Author: "alice", Text: "parsed"}}, nil
			},
		}

		cmd := &main.CollectCmd{File: path, PageURL: "https://x.com/home"}
		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, tweetsnap.SourceHomeTimeline, saved.Username)
	})

	t.Run("truncates oversized JSON batches to the post limit", func(t *testing.T) {
		t.Parallel()

		posts := make([]tweetsnap.Post, tweetsnap.DefaultPostLimit+10)
		data, err := json.Marshal(posts)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "posts.json")
		require.NoError(t, os.WriteFile(path, data, 0644))

		var saved *tweetsnap.Snapshot
		store := &mock.SnapshotStore{
			SaveFn: func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
				saved = snapshot
				return &tweetsnap.SaveResult{TweetCount: snapshot.TweetCount}, nil
			},
		}

		deps := collectDeps(&bytes.Buffer{}, store)
		require.NoError(t, (&main.CollectCmd{File: path}).Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, tweetsnap.DefaultPostLimit, saved.TweetCount)
	})

	t.Run("rejects a non-array JSON file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "posts.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"tweets": "nope"}`), 0644))

		deps := collectDeps(&bytes.Buffer{}, &mock.SnapshotStore{
			SaveFn: func(ctx context.Context, snapshot *tweetsnap.Snapshot) (*tweetsnap.SaveResult, error) {
				t.Fatal("save must not be called")
				return nil, nil
			},
		})

		err := (&main.CollectCmd{File: path}).Run(deps)
		require.Error(t, err)
		assert.Equal(t, tweetsnap.EINVALID, tweetsnap.ErrorCode(err))
	})

	t.Run("missing file is an error", func(t *testing.T) {
		t.Parallel()

		deps := collectDeps(&bytes.Buffer{}, &mock.SnapshotStore{})
		err := (&main.CollectCmd{File: filepath.Join(t.TempDir(), "absent.json")}).Run(deps)
		require.Error(t, err)
	})
}
