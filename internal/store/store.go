// Package store exports a character index to SQLite and reads it back.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/f3rmion/unichar/internal/ucd"
)

// Extension is the file extension Open recognises as an export.
const Extension = ".db"

func init() {
	ucd.RegisterSource(Extension, Load)
}

const schema = `
CREATE TABLE categories (
	code        TEXT PRIMARY KEY,
	description TEXT NOT NULL,
	position    INTEGER NOT NULL
);
CREATE TABLE characters (
	codepoint INTEGER PRIMARY KEY,
	category  TEXT NOT NULL REFERENCES categories(code),
	position  INTEGER NOT NULL
);
CREATE INDEX characters_category ON characters(category, position);
`

// Export writes idx to a new SQLite database at path, replacing any file
// already there. Characters keep their "show all" order.
func Export(ctx context.Context, path string, idx *ucd.Index) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	catStmt, err := tx.PrepareContext(ctx, `INSERT INTO categories (code, description, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing categories: %w", err)
	}
	defer catStmt.Close()

	charStmt, err := tx.PrepareContext(ctx, `INSERT INTO characters (codepoint, category, position) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing characters: %w", err)
	}
	defer charStmt.Close()

	pos := 0
	for i, cat := range idx.Categories() {
		desc, _ := ucd.Describe(cat)
		if _, err := catStmt.ExecContext(ctx, string(cat), desc, i); err != nil {
			return fmt.Errorf("inserting category %s: %w", cat, err)
		}

		for _, rec := range idx.Bucket(cat) {
			if _, err := charStmt.ExecContext(ctx, int64(rec.Code), string(rec.Category), pos); err != nil {
				return fmt.Errorf("inserting %s: %w", rec.Label(), err)
			}
			pos++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing export: %w", err)
	}
	return nil
}

// Load reads an export back into an index.
func Load(ctx context.Context, path string) (*ucd.Index, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %w", ucd.ErrLoadFailure, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", ucd.ErrLoadFailure, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT codepoint, category FROM characters ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying characters: %w", ucd.ErrLoadFailure, err)
	}
	defer rows.Close()

	var records []ucd.Record
	for rows.Next() {
		var (
			code     int64
			category string
		)
		if err := rows.Scan(&code, &category); err != nil {
			return nil, fmt.Errorf("%w: scanning character: %w", ucd.ErrLoadFailure, err)
		}
		records = append(records, ucd.Record{Code: rune(code), Category: ucd.Category(category)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading characters: %w", ucd.ErrLoadFailure, err)
	}

	return ucd.Build(records), nil
}

// Summary counts the rows of an export, per category, in stored order.
func Summary(ctx context.Context, path string) ([]CategoryCount, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
		SELECT c.code, c.description, COUNT(ch.codepoint)
		FROM categories c
		LEFT JOIN characters ch ON ch.category = c.code
		GROUP BY c.code
		ORDER BY c.position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying summary: %w", err)
	}
	defer rows.Close()

	var out []CategoryCount
	for rows.Next() {
		var cc CategoryCount
		var code string
		if err := rows.Scan(&code, &cc.Description, &cc.Count); err != nil {
			return nil, fmt.Errorf("scanning summary: %w", err)
		}
		cc.Category = ucd.Category(code)
		out = append(out, cc)
	}
	return out, rows.Err()
}

// CategoryCount is one line of an export summary.
type CategoryCount struct {
	Category    ucd.Category
	Description string
	Count       int
}
