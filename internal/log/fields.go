package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldError     = "error"
	FieldPath      = "path"
	FieldTable     = "table"
	FieldID        = "id"
	FieldName      = "name"
	FieldAmount    = "amount"
	FieldIncurred  = "incurred"
	FieldCount     = "count"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentStorage   = "storage"
	ComponentViewModel = "viewmodel"
)

// Operations defines standard operation names
const (
	OpInitialize = "initialize"
	OpInsert     = "insert"
	OpList       = "list"
	OpValidate   = "validate"
	OpLoad       = "load"
)
