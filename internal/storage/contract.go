package storage

// TransactionTable holds one row per recorded expense.
const TransactionTable = "financialtransaction"

var (
	colID            = StandardPrimaryKey()
	colName          = NewColumnDefinition("name", Text, ColumnOptions{NotNull: true})
	colAmount        = NewColumnDefinition("amount", Real, ColumnOptions{NotNull: true})
	colYearIncurred  = NewColumnDefinition("yearincurred", Integer, ColumnOptions{NotNull: true})
	colMonthIncurred = NewColumnDefinition("monthincurred", Integer, ColumnOptions{NotNull: true})
	colDayIncurred   = NewColumnDefinition("dayincurred", Integer, ColumnOptions{NotNull: true})
	colYearCreated   = NewColumnDefinition("yearcreated", Integer, ColumnOptions{NotNull: true})
	colMonthCreated  = NewColumnDefinition("monthcreated", Integer, ColumnOptions{NotNull: true})
	colDayCreated    = NewColumnDefinition("daycreated", Integer, ColumnOptions{NotNull: true})
)

// TransactionSchema is the version 1 layout of TransactionTable. Column names
// and types are durable; changing them needs a migration.
var TransactionSchema = NewTableSchema(TransactionTable, []ColumnDefinition{
	colID,
	colName,
	colAmount,
	colYearIncurred,
	colMonthIncurred,
	colDayIncurred,
	colYearCreated,
	colMonthCreated,
	colDayCreated,
})
