package storage

import (
	"fmt"
	"strings"
)

// DataType is the SQLite storage class of a column.
type DataType int

const (
	Text DataType = iota
	Integer
	Real
)

func (t DataType) String() string {
	switch t {
	case Text:
		return "TEXT"
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	default:
		return fmt.Sprintf("DataType(%d)", int(t))
	}
}

// ColumnOptions are the constraints of a column. The zero value has none.
type ColumnOptions struct {
	PrimaryKey    bool
	AutoIncrement bool // only honored together with PrimaryKey
	Unique        bool
	NotNull       bool
}

// ColumnDefinition is an immutable description of one table column.
type ColumnDefinition struct {
	name string
	typ  DataType
	opts ColumnOptions
	sql  string
}

// NewColumnDefinition creates a column. AutoIncrement is dropped unless the
// column is also the primary key.
func NewColumnDefinition(name string, typ DataType, opts ColumnOptions) ColumnDefinition {
	if !opts.PrimaryKey {
		opts.AutoIncrement = false
	}
	c := ColumnDefinition{name: name, typ: typ, opts: opts}
	c.sql = c.render()
	return c
}

// StandardPrimaryKey returns the surrogate key column shared by every table.
func StandardPrimaryKey() ColumnDefinition {
	return NewColumnDefinition("_id", Integer, ColumnOptions{
		PrimaryKey:    true,
		AutoIncrement: true,
		Unique:        true,
		NotNull:       true,
	})
}

func (c ColumnDefinition) Name() string { return c.name }
func (c ColumnDefinition) Type() DataType { return c.typ }
func (c ColumnDefinition) IsPrimaryKey() bool { return c.opts.PrimaryKey }
func (c ColumnDefinition) AutoIncrements() bool { return c.opts.AutoIncrement }
func (c ColumnDefinition) IsUnique() bool { return c.opts.Unique }
func (c ColumnDefinition) IsNotNull() bool { return c.opts.NotNull }

// String returns the column as it appears inside CREATE TABLE.
func (c ColumnDefinition) String() string {
	return c.sql
}

func (c ColumnDefinition) render() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte(' ')
	b.WriteString(c.typ.String())
	if c.opts.PrimaryKey {
		b.WriteString(" PRIMARY KEY")
		if c.opts.AutoIncrement {
			b.WriteString(" AUTOINCREMENT")
		}
	}
	if c.opts.Unique {
		b.WriteString(" UNIQUE")
	}
	if c.opts.NotNull {
		b.WriteString(" NOT NULL")
	}
	return b.String()
}

// TableSchema is an immutable table name plus its ordered columns.
type TableSchema struct {
	name    string
	columns []ColumnDefinition
	create  string
}

// NewTableSchema creates a schema. columns may be empty and is copied.
func NewTableSchema(name string, columns []ColumnDefinition) TableSchema {
	s := TableSchema{
		name:    name,
		columns: append([]ColumnDefinition(nil), columns...),
	}
	s.create = s.render()
	return s
}

func (s TableSchema) Name() string { return s.name }

// Columns returns a copy of the columns in declaration order.
func (s TableSchema) Columns() []ColumnDefinition {
	return append([]ColumnDefinition(nil), s.columns...)
}

// ColumnNames returns the column names in declaration order.
func (s TableSchema) ColumnNames() []string {
	names := make([]string, len(s.columns))
	for i, c := range s.columns {
		names[i] = c.name
	}
	return names
}

// CreateStatement returns the idempotent CREATE TABLE IF NOT EXISTS statement.
func (s TableSchema) CreateStatement() string {
	return s.create
}

func (s TableSchema) String() string {
	return s.create
}

func (s TableSchema) render() string {
	stmt := "CREATE TABLE IF NOT EXISTS " + s.name
	if len(s.columns) == 0 {
		return stmt
	}
	defs := make([]string, len(s.columns))
	for i, c := range s.columns {
		defs[i] = c.String()
	}
	return fmt.Sprintf("%s ( %s );", stmt, strings.Join(defs, ", "))
}
