// Package index persists a built catalog to SQLite so read-side commands can
// skip rescanning the content tree. The index is derived state: it is fully
// rebuilt on every build and safe to delete at any time.
package index

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aidanlsb/quill/internal/catalog"
	"github.com/aidanlsb/quill/internal/frontmatter"
	"github.com/aidanlsb/quill/internal/heading"
	"github.com/aidanlsb/quill/internal/post"
)

// Dir is the site-local directory holding the index database.
const Dir = ".quill"

const schemaVersion = 1

var (
	// ErrIndexLocked indicates another process is rebuilding the index.
	ErrIndexLocked = errors.New("index is locked for rebuild")
	// ErrNoIndex indicates the site has never been built.
	ErrNoIndex = errors.New("no index found, run 'quill build' first")
)

// Database is the SQLite index handle.
type Database struct {
	db *sql.DB
}

// Path returns the index database path for a site.
func Path(sitePath string) string {
	return filepath.Join(sitePath, Dir, "index.db")
}

// Exists reports whether a site has an index database.
func Exists(sitePath string) bool {
	_, err := os.Stat(Path(sitePath))
	return err == nil
}

// Open opens or creates the index database for a site.
func Open(sitePath string) (*Database, error) {
	dbDir := filepath.Join(sitePath, Dir)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s directory: %w", Dir, err)
	}

	db, err := sql.Open("sqlite", Path(sitePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	d := &Database{db: db}
	if err := d.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the database.
func (d *Database) Close() error {
	return d.db.Close()
}

func (d *Database) initialize() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS posts (
			slug TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			date TEXT NOT NULL,
			description TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			author TEXT NOT NULL DEFAULT '',
			cover_image TEXT NOT NULL DEFAULT '',
			series TEXT NOT NULL DEFAULT '',
			series_order INTEGER,
			reading_time TEXT NOT NULL,
			word_count INTEGER NOT NULL,
			file_path TEXT NOT NULL,
			raw_content TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS post_tags (
			slug TEXT NOT NULL,
			position INTEGER NOT NULL,
			tag TEXT NOT NULL,
			PRIMARY KEY (slug, position)
		)`,
		`CREATE TABLE IF NOT EXISTS post_headings (
			slug TEXT NOT NULL,
			position INTEGER NOT NULL,
			heading_id TEXT NOT NULL,
			text TEXT NOT NULL,
			level INTEGER NOT NULL,
			PRIMARY KEY (slug, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_post_tags_tag ON post_tags(tag)`,
	}
	for _, stmt := range stmts {
		if _, err := d.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize index schema: %w", err)
		}
	}

	_, err := d.db.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`,
		fmt.Sprintf("%d", schemaVersion),
	)
	return err
}

// Rebuild replaces the entire index with the given catalog. Positions record
// the catalog's sort order so loading preserves date ties exactly.
func (d *Database) Rebuild(c *catalog.Catalog) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin rebuild: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"posts", "post_tags", "post_headings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for pos, doc := range c.Posts() {
		var seriesOrder sql.NullInt64
		if doc.SeriesOrder != nil {
			seriesOrder = sql.NullInt64{Int64: int64(*doc.SeriesOrder), Valid: true}
		}
		_, err := tx.Exec(`
			INSERT INTO posts (slug, position, title, date, description, category,
				author, cover_image, series, series_order, reading_time, word_count,
				file_path, raw_content)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			doc.Slug, pos, doc.Title, doc.Date.Format(frontmatter.DateLayout),
			doc.Description, doc.Category, doc.Author, doc.CoverImage,
			doc.Series, seriesOrder, doc.ReadingTime, doc.WordCount,
			doc.FilePath, doc.RawContent,
		)
		if err != nil {
			return fmt.Errorf("failed to index post %s: %w", doc.Slug, err)
		}

		for i, tag := range doc.Tags {
			if _, err := tx.Exec(
				`INSERT INTO post_tags (slug, position, tag) VALUES (?, ?, ?)`,
				doc.Slug, i, tag,
			); err != nil {
				return fmt.Errorf("failed to index tags for %s: %w", doc.Slug, err)
			}
		}
		for i, h := range doc.Headings {
			if _, err := tx.Exec(
				`INSERT INTO post_headings (slug, position, heading_id, text, level) VALUES (?, ?, ?, ?, ?)`,
				doc.Slug, i, h.ID, h.Text, h.Level,
			); err != nil {
				return fmt.Errorf("failed to index headings for %s: %w", doc.Slug, err)
			}
		}
	}

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO meta (key, value) VALUES ('built_at', ?)`,
		time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}

	return tx.Commit()
}

// LoadCatalog reads the whole index back into an in-memory catalog, in the
// exact order it was stored.
func (d *Database) LoadCatalog() (*catalog.Catalog, error) {
	rows, err := d.db.Query(`
		SELECT slug, title, date, description, category, author, cover_image,
			series, series_order, reading_time, word_count, file_path, raw_content
		FROM posts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	defer rows.Close()

	var docs []*post.Document
	for rows.Next() {
		var doc post.Document
		var date string
		var seriesOrder sql.NullInt64
		if err := rows.Scan(&doc.Slug, &doc.Title, &date, &doc.Description,
			&doc.Category, &doc.Author, &doc.CoverImage, &doc.Series,
			&seriesOrder, &doc.ReadingTime, &doc.WordCount, &doc.FilePath,
			&doc.RawContent); err != nil {
			return nil, err
		}
		doc.Date, err = time.Parse(frontmatter.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("corrupt date for %s: %w", doc.Slug, err)
		}
		if seriesOrder.Valid {
			n := int(seriesOrder.Int64)
			doc.SeriesOrder = &n
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Tags, err = d.loadTags(doc.Slug); err != nil {
			return nil, err
		}
		if doc.Headings, err = d.loadHeadings(doc.Slug); err != nil {
			return nil, err
		}
	}

	return catalog.New(docs)
}

func (d *Database) loadTags(slug string) ([]string, error) {
	rows, err := d.db.Query(`SELECT tag FROM post_tags WHERE slug = ? ORDER BY position`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, rows.Err()
}

func (d *Database) loadHeadings(slug string) ([]heading.Heading, error) {
	rows, err := d.db.Query(
		`SELECT heading_id, text, level FROM post_headings WHERE slug = ? ORDER BY position`, slug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var headings []heading.Heading
	for rows.Next() {
		var h heading.Heading
		if err := rows.Scan(&h.ID, &h.Text, &h.Level); err != nil {
			return nil, err
		}
		headings = append(headings, h)
	}
	return headings, rows.Err()
}
