// internal/loader/loader.go

// Package loader bulk-loads the generated CSV tables into a Postgres
// warehouse schema. Each file becomes one table named after the file stem;
// column types are inferred from content so the loader stays agnostic of the
// generator's schema.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Loader struct {
	pool   *pgxpool.Pool
	schema string
}

func New(ctx context.Context, connString, schema string) (*Loader, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connecting to warehouse: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging warehouse: %w", err)
	}
	return &Loader{pool: pool, schema: schema}, nil
}

func (l *Loader) Close() {
	l.pool.Close()
}

// LoadDir loads every *.csv under dir. A missing input location or an input
// location with no CSV files is fatal before any table is touched.
func (l *Loader) LoadDir(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("input location %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input location %s is not a directory", dir)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return fmt.Errorf("listing %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no CSV files found in %s", dir)
	}
	sort.Strings(files)

	if _, err := l.pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pgx.Identifier{l.schema}.Sanitize()); err != nil {
		return fmt.Errorf("creating schema %s: %w", l.schema, err)
	}

	for _, file := range files {
		if err := l.loadFile(ctx, file); err != nil {
			return fmt.Errorf("loading %s: %w", filepath.Base(file), err)
		}
	}
	return nil
}

func (l *Loader) loadFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return fmt.Errorf("file has no header row")
	}
	header, rows := records[0], records[1:]
	types := inferColumnTypes(header, rows)

	table := strings.TrimSuffix(filepath.Base(path), ".csv")
	qualified := pgx.Identifier{l.schema, table}.Sanitize()

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = pgx.Identifier{name}.Sanitize() + " " + types[i]
	}
	if _, err := l.pool.Exec(ctx, "DROP TABLE IF EXISTS "+qualified); err != nil {
		return fmt.Errorf("dropping table: %w", err)
	}
	ddl := fmt.Sprintf("CREATE TABLE %s (%s)", qualified, strings.Join(columns, ", "))
	if _, err := l.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("creating table: %w", err)
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		converted := make([]any, len(row))
		for j, raw := range row {
			v, err := convertValue(raw, types[j])
			if err != nil {
				return fmt.Errorf("row %d column %s: %w", i+1, header[j], err)
			}
			converted[j] = v
		}
		values[i] = converted
	}

	n, err := l.pool.CopyFrom(ctx, pgx.Identifier{l.schema, table}, header, pgx.CopyFromRows(values))
	if err != nil {
		return fmt.Errorf("copying rows: %w", err)
	}
	log.Printf("Loaded %d rows into %s", n, qualified)
	return nil
}
