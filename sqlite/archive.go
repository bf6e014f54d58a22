package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/goromian/tweetsnap"
)

// ArchiveService imports snapshot artifacts into the relational archive and
// answers queries over them. The JSON artifacts written by the snapshot
// store stay the source of truth; the archive is derived and can be rebuilt
// by re-importing.
type ArchiveService struct {
	db *DB
}

// NewArchiveService creates a new ArchiveService.
func NewArchiveService(db *DB) *ArchiveService {
	return &ArchiveService{db: db}
}

// ArchivedSnapshot is one imported artifact.
type ArchivedSnapshot struct {
	ID          string
	Filename    string
	Username    string
	CollectedAt time.Time
	TweetCount  int
	ImportedAt  time.Time
}

// ArchivedPost is one post row joined with its snapshot's artifact name.
type ArchivedPost struct {
	ID       string
	Filename string
	Author   string
	Text     string
	TextHash string
	PostedAt string
	Position int
	Links    int
}

// PostFilter narrows Posts queries. Zero-value fields are ignored.
type PostFilter struct {
	Username string
	Author   string
	Limit    int
}

// hashText computes xxHash of the text and returns a hex string.
func hashText(text string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(text))
	return hex.EncodeToString(b)
}

// ImportSnapshot loads one snapshot into the archive under its artifact
// name. Importing the same artifact again replaces the previous rows, so
// re-running an import over the whole store is safe.
func (s *ArchiveService) ImportSnapshot(ctx context.Context, filename string, snapshot *tweetsnap.Snapshot) error {
	if err := snapshot.Validate(); err != nil {
		return err
	}
	if filename == "" {
		return tweetsnap.Errorf(tweetsnap.EINVALID, "artifact filename required")
	}

	// Replace any prior import of this artifact. Posts and links cascade.
	if _, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE filename = ?", filename); err != nil {
		return err
	}

	snapshotID := uuid.New().String()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, filename, username, collected_at, tweet_count, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snapshotID, filename, snapshot.Username, snapshot.CollectedAt.UTC().Format(time.RFC3339),
		snapshot.TweetCount, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return err
	}

	for _, post := range snapshot.Tweets {
		postID := uuid.New().String()
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO posts (id, snapshot_id, author, text, text_hash, posted_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, postID, snapshotID, post.Author, post.Text, hashText(post.Text), post.Timestamp, post.Index)
		if err != nil {
			return err
		}

		for _, link := range post.LinkedContent {
			failed := 0
			if link.Failed() {
				failed = 1
			}
			_, err := s.db.ExecContext(ctx, `
				INSERT INTO links (id, post_id, url, title, description, content, failed)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, uuid.New().String(), postID, link.URL, link.Title, link.Description, link.Content, failed)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Snapshots lists imported artifacts, newest collection first.
func (s *ArchiveService) Snapshots(ctx context.Context) ([]ArchivedSnapshot, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, username, collected_at, tweet_count, imported_at
		FROM snapshots
		ORDER BY collected_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []ArchivedSnapshot
	for rows.Next() {
		var snap ArchivedSnapshot
		var collectedAt, importedAt string
		if err := rows.Scan(&snap.ID, &snap.Filename, &snap.Username, &collectedAt,
			&snap.TweetCount, &importedAt); err != nil {
			return nil, err
		}
		if snap.CollectedAt, err = time.Parse(time.RFC3339, collectedAt); err != nil {
			return nil, err
		}
		if snap.ImportedAt, err = time.Parse(time.RFC3339, importedAt); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, snap)
	}

	return snapshots, rows.Err()
}

// Posts retrieves archived posts matching the filter, newest snapshot first
// and timeline position within it.
func (s *ArchiveService) Posts(ctx context.Context, filter PostFilter) ([]ArchivedPost, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT p.id, s.filename, p.author, p.text, p.text_hash, p.posted_at, p.position,
			(SELECT COUNT(*) FROM links l WHERE l.post_id = p.id)
		FROM posts p
		JOIN snapshots s ON s.id = p.snapshot_id
		WHERE 1=1
	`)

	if filter.Username != "" {
		query.WriteString(" AND s.username = ?")
		args = append(args, filter.Username)
	}
	if filter.Author != "" {
		query.WriteString(" AND p.author = ?")
		args = append(args, filter.Author)
	}

	query.WriteString(" ORDER BY s.collected_at DESC, p.position ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []ArchivedPost
	for rows.Next() {
		var post ArchivedPost
		if err := rows.Scan(&post.ID, &post.Filename, &post.Author, &post.Text,
			&post.TextHash, &post.PostedAt, &post.Position, &post.Links); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}
