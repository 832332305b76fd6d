package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnDefinitionString(t *testing.T) {
	tests := []struct {
		name string
		col  ColumnDefinition
		want string
	}{
		{
			name: "name and type only",
			col:  NewColumnDefinition("foo", Real, ColumnOptions{}),
			want: "foo REAL",
		},
		{
			name: "not null text",
			col:  NewColumnDefinition("name", Text, ColumnOptions{NotNull: true}),
			want: "name TEXT NOT NULL",
		},
		{
			name: "unique and not null",
			col:  NewColumnDefinition("code", Integer, ColumnOptions{Unique: true, NotNull: true}),
			want: "code INTEGER UNIQUE NOT NULL",
		},
		{
			name: "primary key without autoincrement",
			col:  NewColumnDefinition("key", Text, ColumnOptions{PrimaryKey: true}),
			want: "key TEXT PRIMARY KEY",
		},
		{
			name: "autoincrement dropped without primary key",
			col:  NewColumnDefinition("n", Integer, ColumnOptions{AutoIncrement: true, Unique: true}),
			want: "n INTEGER UNIQUE",
		},
		{
			name: "every modifier",
			col: NewColumnDefinition("id", Integer, ColumnOptions{
				PrimaryKey: true, AutoIncrement: true, Unique: true, NotNull: true,
			}),
			want: "id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE NOT NULL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.col.String())
		})
	}
}

func TestColumnDefinitionAutoIncrementRequiresPrimaryKey(t *testing.T) {
	col := NewColumnDefinition("n", Integer, ColumnOptions{AutoIncrement: true})
	assert.False(t, col.AutoIncrements())
	assert.False(t, col.IsPrimaryKey())
}

func TestStandardPrimaryKey(t *testing.T) {
	pk := StandardPrimaryKey()

	assert.Equal(t, "_id", pk.Name())
	assert.Equal(t, Integer, pk.Type())
	assert.True(t, pk.IsPrimaryKey())
	assert.True(t, pk.AutoIncrements())
	assert.True(t, pk.IsUnique())
	assert.True(t, pk.IsNotNull())
	assert.Equal(t, "_id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE NOT NULL", pk.String())
}

func TestDataTypeString(t *testing.T) {
	assert.Equal(t, "TEXT", Text.String())
	assert.Equal(t, "INTEGER", Integer.String())
	assert.Equal(t, "REAL", Real.String())
	assert.Equal(t, "DataType(9)", DataType(9).String())
}

func TestTableSchemaCreateStatement(t *testing.T) {
	empty := NewTableSchema("things", nil)
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS things", empty.CreateStatement())

	schema := NewTableSchema("things", []ColumnDefinition{
		StandardPrimaryKey(),
		NewColumnDefinition("label", Text, ColumnOptions{NotNull: true}),
		NewColumnDefinition("weight", Real, ColumnOptions{}),
	})
	assert.Equal(t,
		"CREATE TABLE IF NOT EXISTS things ( _id INTEGER PRIMARY KEY AUTOINCREMENT UNIQUE NOT NULL, label TEXT NOT NULL, weight REAL );",
		schema.CreateStatement())
	assert.Equal(t, schema.CreateStatement(), schema.String())
	assert.Equal(t, []string{"_id", "label", "weight"}, schema.ColumnNames())
}

func TestTableSchemaIsImmutable(t *testing.T) {
	cols := []ColumnDefinition{NewColumnDefinition("a", Text, ColumnOptions{})}
	schema := NewTableSchema("t", cols)

	cols[0] = NewColumnDefinition("b", Integer, ColumnOptions{})
	got := schema.Columns()
	got[0] = NewColumnDefinition("c", Real, ColumnOptions{})

	assert.Equal(t, []string{"a"}, schema.ColumnNames())
	assert.Equal(t, "CREATE TABLE IF NOT EXISTS t ( a TEXT );", schema.CreateStatement())
}

func TestTransactionSchema(t *testing.T) {
	assert.Equal(t, TransactionTable, TransactionSchema.Name())
	assert.Equal(t, []string{
		"_id", "name", "amount",
		"yearincurred", "monthincurred", "dayincurred",
		"yearcreated", "monthcreated", "daycreated",
	}, TransactionSchema.ColumnNames())

	cols := TransactionSchema.Columns()
	assert.True(t, cols[0].IsPrimaryKey())
	assert.Equal(t, Text, cols[1].Type())
	assert.Equal(t, Real, cols[2].Type())
	for _, c := range cols[3:] {
		assert.Equal(t, Integer, c.Type(), "column %s", c.Name())
		assert.True(t, c.IsNotNull(), "column %s", c.Name())
	}
}
