package db

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"keyword-index/indexer/core"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

//go:embed migrations/*.sql
var migrations embed.FS

const (
	// insert
	upsertDocument = `
		INSERT INTO documents (id, keywords, terms)
		VALUES (:id, :keywords, :terms)
		ON CONFLICT (id) DO UPDATE
		SET keywords = EXCLUDED.keywords, terms = EXCLUDED.terms, indexed_at = now()
	`

	// select
	getTerms         = `SELECT terms FROM documents WHERE id = $1`
	getDocumentStats = `SELECT documents, terms_total, terms_unique FROM documents_stats`

	// update
	updateStats = `
		WITH stats AS (
			SELECT
			COUNT(*) as documents,
			COALESCE(SUM(cardinality(terms)), 0) as terms_total,
			(
				SELECT COUNT(DISTINCT term)
				FROM (SELECT unnest(terms) as term FROM documents) t
			) as terms_unique
			FROM documents
		)

		UPDATE documents_stats
		SET
		documents = stats.documents,
		terms_total = stats.terms_total,
		terms_unique = stats.terms_unique
		FROM stats
	`
	resetStats = `
		UPDATE documents_stats
		SET
		documents = 0,
		terms_total = 0,
		terms_unique = 0
	`

	// truncate
	truncateDocuments = `TRUNCATE documents`
)

type document struct {
	ID       string         `db:"id"`
	Keywords string         `db:"keywords"`
	Terms    pq.StringArray `db:"terms"`
}

type DB struct {
	log  *slog.Logger
	conn *sqlx.DB
}

func New(log *slog.Logger, address string) (*DB, error) {
	db, err := sqlx.Connect("pgx", address)
	if err != nil {
		log.Error("connection problem", "address", address, "error", err)
		return nil, err
	}
	return &DB{
		log:  log,
		conn: db,
	}, nil
}

func (db *DB) Close() {
	if err := db.conn.Close(); err != nil {
		db.log.Warn("failed to close database connection", "error", err)
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	db.log.Debug("running migrations")

	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	// the migrate driver owns the connection pool once created, so m.Close is never called
	driver, err := migratepgx.WithInstance(db.conn.DB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func toRows(docs []core.DocumentKeywords) ([]document, error) {
	// a batch may carry the same id twice; the last one wins
	pos := make(map[string]int, len(docs))
	rows := make([]document, 0, len(docs))
	for _, doc := range docs {
		keywords, err := json.Marshal(doc.Keywords)
		if err != nil {
			return nil, fmt.Errorf("failed to encode keywords of %q: %w", doc.ID, err)
		}
		terms := pq.StringArray(doc.Terms)
		if terms == nil {
			terms = pq.StringArray{}
		}
		row := document{ID: doc.ID, Keywords: string(keywords), Terms: terms}
		if i, ok := pos[doc.ID]; ok {
			rows[i] = row
			continue
		}
		pos[doc.ID] = len(rows)
		rows = append(rows, row)
	}
	return rows, nil
}

func (db *DB) Add(ctx context.Context, docs ...core.DocumentKeywords) error {
	if len(docs) == 0 {
		return fmt.Errorf("nothing to store: %w", core.ErrBadArguments)
	}
	rows, err := toRows(docs)
	if err != nil {
		return err
	}

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			db.log.Error("failed to rollback transaction", "error", err)
		}
	}()

	if _, err = tx.NamedExecContext(ctx, upsertDocument, rows); err != nil {
		return fmt.Errorf("failed to insert into documents table: %w", err)
	}
	if _, err = tx.ExecContext(ctx, updateStats); err != nil {
		return fmt.Errorf("failed to update documents_stats table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (db *DB) Terms(ctx context.Context, id string) ([]string, error) {
	var terms pq.StringArray
	err := db.conn.GetContext(ctx, &terms, getTerms, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("document %q: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select terms from documents table: %w", err)
	}
	return terms, nil
}

func (db *DB) Stats(ctx context.Context) (core.DBStats, error) {
	var stats core.DBStats
	err := db.conn.GetContext(ctx, &stats, getDocumentStats)
	if err != nil {
		return core.DBStats{}, fmt.Errorf("failed to select stats from documents_stats table: %w", err)
	}
	return stats, nil
}

func (db *DB) Drop(ctx context.Context) error {
	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			db.log.Error("failed to rollback transaction", "error", err)
		}
	}()

	_, err = tx.ExecContext(ctx, truncateDocuments)
	if err != nil {
		return fmt.Errorf("failed to truncate documents table: %w", err)
	}
	_, err = tx.ExecContext(ctx, resetStats)
	if err != nil {
		return fmt.Errorf("failed to reset documents_stats table: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
