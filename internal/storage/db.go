package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	applog "spenderbender/internal/log"
	"spenderbender/internal/models"

	// Import sqlite driver
	_ "modernc.org/sqlite"
)

// DefaultDatabaseName is the file name of the production database.
const DefaultDatabaseName = "SpenderBenderSQLiteDB"

// ErrStorage is wrapped by every failure of the underlying database.
var ErrStorage = errors.New("storage failure")

// DB wraps a sql.DB connection holding the transaction table.
type DB struct {
	conn   *sql.DB
	schema TableSchema
	logger *slog.Logger
}

// NewDB opens (creating if absent) the database at path and initializes the
// schema. Use ":memory:" for a throwaway database.
func NewDB(path string) (*DB, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%w: create db directory: %w", ErrStorage, err)
			}
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %w", ErrStorage, err)
	}
	// Single writer; this also keeps every query on the same :memory: database.
	conn.SetMaxOpenConns(1)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: ping database: %w", ErrStorage, err)
	}

	db := &DB{
		conn:   conn,
		schema: TransactionSchema,
		logger: applog.WithComponent(applog.ComponentStorage).With(applog.FieldPath, path),
	}
	if err := db.Initialize(); err != nil {
		conn.Close()
		return nil, err
	}

	return db, nil
}

// Initialize creates the transaction table if it does not exist. Running it
// again never alters an existing table.
func (db *DB) Initialize() error {
	if _, err := db.conn.Exec(db.schema.CreateStatement()); err != nil {
		return fmt.Errorf("%w: create table %s: %w", ErrStorage, db.schema.Name(), err)
	}
	db.logger.Debug("Schema initialized",
		applog.FieldOperation, applog.OpInitialize,
		applog.FieldTable, db.schema.Name())
	return nil
}

// InsertExpense stores a new expense and returns a copy of it carrying the
// assigned ID. Expenses that already have an ID are rejected with
// models.ErrInvalidArgument; updates are not supported.
func (db *DB) InsertExpense(e models.Expense) (models.Expense, error) {
	if e.IsSaved() {
		return e, fmt.Errorf("%w: expense %d is already saved, updates are not supported",
			models.ErrInvalidArgument, e.ID)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return e, fmt.Errorf("%w: begin insert: %w", ErrStorage, err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(db.insertStatement(),
		e.Name,
		e.Amount,
		e.Incurred.Year,
		int(e.Incurred.Month),
		e.Incurred.Day,
		e.Created.Year,
		int(e.Created.Month),
		e.Created.Day,
	)
	if err != nil {
		return e, fmt.Errorf("%w: insert expense: %w", ErrStorage, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return e, fmt.Errorf("%w: read inserted id: %w", ErrStorage, err)
	}

	if err := tx.Commit(); err != nil {
		return e, fmt.Errorf("%w: commit insert: %w", ErrStorage, err)
	}

	db.logger.Debug("Expense saved",
		applog.FieldOperation, applog.OpInsert,
		applog.FieldID, id,
		applog.FieldName, e.Name,
		applog.FieldAmount, e.Amount,
		applog.FieldIncurred, e.Incurred.String())

	return e.WithID(id), nil
}

// ListExpenses retrieves every stored expense. The result is empty, not nil,
// when nothing has been recorded. Rows come back in no particular order.
func (db *DB) ListExpenses() ([]models.Expense, error) {
	rows, err := db.conn.Query(db.selectStatement())
	if err != nil {
		return nil, fmt.Errorf("%w: query expenses: %w", ErrStorage, err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var monthIncurred, monthCreated int
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.Amount,
			&e.Incurred.Year,
			&monthIncurred,
			&e.Incurred.Day,
			&e.Created.Year,
			&monthCreated,
			&e.Created.Day,
		); err != nil {
			return nil, fmt.Errorf("%w: scan expense: %w", ErrStorage, err)
		}
		e.Incurred.Month = models.Month(monthIncurred)
		e.Created.Month = models.Month(monthCreated)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate expenses: %w", ErrStorage, err)
	}

	db.logger.Debug("Expenses listed",
		applog.FieldOperation, applog.OpList,
		applog.FieldCount, len(expenses))

	return expenses, nil
}

// CountExpenses returns the number of stored expenses.
func (db *DB) CountExpenses() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM " + db.schema.Name()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: count expenses: %w", ErrStorage, err)
	}
	return count, nil
}

// Columns returns the names of the columns the table has on disk.
func (db *DB) Columns() ([]string, error) {
	rows, err := db.conn.Query("SELECT name FROM pragma_table_info(?)", db.schema.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: table info: %w", ErrStorage, err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: scan table info: %w", ErrStorage, err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate table info: %w", ErrStorage, err)
	}
	return names, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// insertStatement writes every column except the primary key, which SQLite assigns.
func (db *DB) insertStatement() string {
	var cols []string
	for _, c := range db.schema.Columns() {
		if !c.IsPrimaryKey() {
			cols = append(cols, c.Name())
		}
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		db.schema.Name(), strings.Join(cols, ", "), placeholders)
}

func (db *DB) selectStatement() string {
	return fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(db.schema.ColumnNames(), ", "), db.schema.Name())
}
