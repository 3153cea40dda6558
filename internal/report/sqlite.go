package report

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/meridian-sci/svomap-cli/internal/core/domain"
	"github.com/meridian-sci/svomap-cli/internal/core/ports/driven"
)

// Ensure SQLiteExporter implements the interface.
var _ driven.Exporter = (*SQLiteExporter)(nil)

// ResultsDBFile is the SQLite archive file name.
const ResultsDBFile = "results.db"

// schema holds the full archive layout. The archive is a write-once
// artifact; the pipeline never reads it back.
const schema = `
CREATE TABLE runs (
	id INTEGER PRIMARY KEY,
	generated_at TEXT NOT NULL,
	topic_count INTEGER NOT NULL,
	iterations INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	document_count INTEGER NOT NULL
);
CREATE TABLE documents (
	id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	uri TEXT NOT NULL,
	title TEXT NOT NULL,
	format TEXT NOT NULL,
	dominant_topic INTEGER
);
CREATE TABLE topic_domains (
	topic INTEGER NOT NULL,
	top_terms TEXT NOT NULL,
	domain TEXT,
	subdisciplines TEXT,
	score REAL,
	manual INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE components (
	id TEXT PRIMARY KEY,
	document_id TEXT NOT NULL,
	category TEXT NOT NULL,
	text TEXT NOT NULL,
	span_start INTEGER NOT NULL,
	span_end INTEGER NOT NULL
);
CREATE TABLE svo_links (
	term TEXT NOT NULL,
	variable TEXT NOT NULL,
	score REAL NOT NULL
);
`

// SQLiteExporter archives the run into a single-file SQLite database.
type SQLiteExporter struct{}

// NewSQLiteExporter creates a new SQLite exporter.
func NewSQLiteExporter() *SQLiteExporter {
	return &SQLiteExporter{}
}

// Name returns the exporter name.
func (e *SQLiteExporter) Name() string {
	return "sqlite"
}

// Export writes results.db, replacing any previous archive.
func (e *SQLiteExporter) Export(ctx context.Context, result *domain.RunResult, dir string) error {
	if result == nil || result.Model == nil {
		return domain.ErrInvalidInput
	}

	path := filepath.Join(dir, ResultsDBFile)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if err := insertRun(ctx, tx, result); err != nil {
		return err
	}
	if err := insertDocuments(ctx, tx, result); err != nil {
		return err
	}
	if err := insertMappings(ctx, tx, result); err != nil {
		return err
	}
	if err := insertComponents(ctx, tx, result); err != nil {
		return err
	}
	if err := insertLinks(ctx, tx, result); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return db.Close()
}

func insertRun(ctx context.Context, tx *sql.Tx, result *domain.RunResult) error {
	docCount := 0
	if result.Corpus != nil {
		docCount = result.Corpus.Len()
	}
	_, err := tx.ExecContext(ctx,
		`INSERT INTO runs (generated_at, topic_count, iterations, seed, document_count)
		 VALUES (?, ?, ?, ?, ?)`,
		result.GeneratedAt.UTC().Format("2006-01-02T15:04:05Z"),
		result.Params.TopicCount,
		result.Params.Iterations,
		result.Params.Seed,
		docCount,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func insertDocuments(ctx context.Context, tx *sql.Tx, result *domain.RunResult) error {
	if result.Corpus == nil {
		return nil
	}
	for i, doc := range result.Corpus.Documents() {
		var dominant any
		if i < len(result.Model.DominantTopics) {
			dominant = result.Model.DominantTopics[i]
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO documents (id, source, uri, title, format, dominant_topic)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			doc.ID, doc.Source, doc.URI, doc.Title, doc.Format, dominant,
		)
		if err != nil {
			return fmt.Errorf("insert document %s: %w", doc.ID, err)
		}
	}
	return nil
}

func insertMappings(ctx context.Context, tx *sql.Tx, result *domain.RunResult) error {
	for _, mapping := range result.Mappings {
		topTerms := strings.Join(mapping.TopTerms, " ")
		if len(mapping.Backbone) == 0 {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO topic_domains (topic, top_terms) VALUES (?, ?)`,
				mapping.TopicID, topTerms,
			)
			if err != nil {
				return fmt.Errorf("insert mapping: %w", err)
			}
			continue
		}
		for _, match := range mapping.Backbone {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO topic_domains (topic, top_terms, domain, subdisciplines, score, manual)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				mapping.TopicID, topTerms, match.Domain,
				strings.Join(match.Subdisciplines, "; "), match.Score, match.Manual,
			)
			if err != nil {
				return fmt.Errorf("insert mapping: %w", err)
			}
		}
	}
	return nil
}

func insertComponents(ctx context.Context, tx *sql.Tx, result *domain.RunResult) error {
	for _, c := range result.Components {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO components (id, document_id, category, text, span_start, span_end)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, c.DocumentID, c.Category.String(), c.Text, c.Start, c.End,
		)
		if err != nil {
			return fmt.Errorf("insert component %s: %w", c.ID, err)
		}
	}
	return nil
}

func insertLinks(ctx context.Context, tx *sql.Tx, result *domain.RunResult) error {
	for _, link := range result.Links {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO svo_links (term, variable, score) VALUES (?, ?, ?)`,
			link.Term, link.Variable, link.Score,
		)
		if err != nil {
			return fmt.Errorf("insert link: %w", err)
		}
	}
	return nil
}
