// Package codestore keeps Huffman code tables in a MySQL database, keyed by
// name, so that bit strings can be decoded later without the frequencies
// that produced them.
package codestore

import (
	"context"
	"fmt"
	"log/slog"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"

	huffman "github.com/chronos-tachyon/huffmantree"
)

const schema = `CREATE TABLE IF NOT EXISTS huffman_codes (
	table_name VARCHAR(64) NOT NULL,
	symbol     INT NOT NULL,
	code       TEXT NOT NULL,
	PRIMARY KEY (table_name, symbol)
)`

const (
	queryDelete = "DELETE FROM huffman_codes WHERE table_name = ?"
	queryInsert = "INSERT INTO huffman_codes (table_name, symbol, code) VALUES (:table_name, :symbol, :code)"
	querySelect = "SELECT table_name, symbol, code FROM huffman_codes WHERE table_name = ? ORDER BY symbol"
	queryNames  = "SELECT DISTINCT table_name FROM huffman_codes ORDER BY table_name"
)

// CodeRow is one (symbol, code) entry of a stored table.
type CodeRow struct {
	TableName string `db:"table_name"`
	Symbol    int32  `db:"symbol"`
	Code      string `db:"code"`
}

// Store reads and writes code tables.
type Store struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// Open connects to the MySQL database named by dsn, e.g.
// "user:pass@(host:3306)/dbname".  A nil logger means slog.Default().
func Open(dsn string, logger *slog.Logger) (*Store, error) {
	db, err := sqlx.Connect("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("codestore: connecting to database: %w", err)
	}
	return New(db, logger), nil
}

// New wraps an existing connection.  A nil logger means slog.Default().
func New(db *sqlx.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger.With("module", "codestore")}
}

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Init creates the backing table if it does not exist.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return &ErrQuery{Op: "init", Table: "huffman_codes", Err: err}
	}
	return nil
}

// Save stores table under name, replacing any table already stored there.
func (s *Store) Save(ctx context.Context, name string, table *huffman.CodeTable) error {
	rows := Rows(name, table)

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return &ErrQuery{Op: "begin", Table: name, Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, queryDelete, name); err != nil {
		return &ErrQuery{Op: "delete", Table: name, Err: err}
	}
	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, queryInsert, row); err != nil {
			return &ErrQuery{Op: "insert", Table: name, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &ErrQuery{Op: "commit", Table: name, Err: err}
	}

	s.logger.Debug(fmt.Sprintf("Saved %d codes", len(rows)), "table", name)
	return nil
}

// Load returns the table stored under name.
func (s *Store) Load(ctx context.Context, name string) (*huffman.CodeTable, error) {
	var rows []CodeRow
	if err := s.db.SelectContext(ctx, &rows, querySelect, name); err != nil {
		return nil, &ErrQuery{Op: "select", Table: name, Err: err}
	}
	if len(rows) == 0 {
		return nil, &ErrQuery{Op: "load", Table: name, Err: ErrNotFound}
	}

	table, err := TableFromRows(rows)
	if err != nil {
		return nil, &ErrQuery{Op: "load", Table: name, Err: err}
	}
	s.logger.Debug(fmt.Sprintf("Loaded %d codes", len(rows)), "table", name)
	return table, nil
}

// Delete removes the table stored under name.  Deleting an absent table is
// not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, queryDelete, name); err != nil {
		return &ErrQuery{Op: "delete", Table: name, Err: err}
	}
	return nil
}

// Names lists the stored table names in ascending order.
func (s *Store) Names(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.SelectContext(ctx, &names, queryNames); err != nil {
		return nil, &ErrQuery{Op: "names", Table: "", Err: err}
	}
	return names, nil
}

// Rows flattens table into database rows, ordered by symbol.
func Rows(name string, table *huffman.CodeTable) []CodeRow {
	symbols := table.Symbols()
	rows := make([]CodeRow, 0, len(symbols))
	for _, sym := range symbols {
		code, _ := table.Lookup(sym)
		rows = append(rows, CodeRow{TableName: name, Symbol: int32(sym), Code: string(code)})
	}
	return rows
}

// TableFromRows rebuilds a code table from database rows, rejecting tables
// that are not prefix-free.
func TableFromRows(rows []CodeRow) (*huffman.CodeTable, error) {
	codes := make(map[huffman.Symbol]huffman.BitString, len(rows))
	for _, row := range rows {
		codes[huffman.Symbol(row.Symbol)] = huffman.BitString(row.Code)
	}
	return huffman.NewCodeTable(codes)
}
