package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"regexp"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

const defaultTable = "companies"

var recordColumns = []string{"name", "description", "city", "wilaya", "category", `"type"`, "website"}

var tableNameRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads records from a table with the columns name,
// description, city, wilaya, category, type and website. NULL columns are
// empty fields and rows come back in rowid order. Table defaults to
// "companies".
type SQLiteSource struct {
	Path  string
	Table string
}

func (s SQLiteSource) Load(ctx context.Context) ([]Record, error) {
	table := s.Table
	if table == "" {
		table = defaultTable
	}
	if !tableNameRE.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrLoad, table)
	}

	// sql.Open would create a missing database file.
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrLoad, s.Path, err)
	}

	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrLoad, s.Path, err)
	}
	defer func() { _ = db.Close() }()

	query, args, err := squirrel.Select(recordColumns...).From(table).OrderBy("rowid").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: build query: %w", ErrLoad, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrLoad, table, err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var name, desc, city, wilaya, category, typ, website sql.NullString
		if err := rows.Scan(&name, &desc, &city, &wilaya, &category, &typ, &website); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", ErrLoad, table, err)
		}
		records = append(records, Record{
			Name:        name.String,
			Description: desc.String,
			City:        city.String,
			Wilaya:      wilaya.String,
			Category:    category.String,
			Type:        typ.String,
			Website:     website.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrLoad, table, err)
	}
	return records, nil
}
