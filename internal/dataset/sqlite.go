// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteTable = "products_enriched"

// WriteSQLite writes the table to a SQLite database for downstream
// querying. The target table is recreated on every run; an index is
// added on brandColumn when that column exists.
func WriteSQLite(path string, t *Table, brandColumn string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("opening database %s: %w", path, err)
	}
	defer db.Close()

	defs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		defs[i] = fmt.Sprintf("%q TEXT", c)
	}

	statements := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %q", sqliteTable),
		fmt.Sprintf("CREATE TABLE %q (%s)", sqliteTable, strings.Join(defs, ", ")),
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	quoted := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	placeholders := strings.TrimRight(strings.Repeat("?,", len(t.Columns)), ",")

	stmt, err := db.Prepare(fmt.Sprintf("INSERT INTO %q (%s) VALUES (%s)",
		sqliteTable, strings.Join(quoted, ", "), placeholders))
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for r := range t.Rows {
		args := make([]any, len(t.Columns))
		for i, c := range t.Columns {
			args[i] = t.Get(r, c)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("inserting row %d: %w", r, err)
		}
	}

	if t.ColumnIndex(brandColumn) >= 0 {
		idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_brand ON %q (%q)",
			sqliteTable, sqliteTable, brandColumn)
		if _, err := db.Exec(idx); err != nil {
			return fmt.Errorf("creating brand index: %w", err)
		}
	}
	return nil
}
