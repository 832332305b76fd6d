// Package viewmodel holds the state behind the record and list screens. It
// talks to the store only through the narrow ExpenseSaver and ExpenseLister
// interfaces, so any front end (the CLI, tests) can drive it.
package viewmodel

import (
	"errors"
	"fmt"
	"log/slog"

	applog "spenderbender/internal/log"
	"spenderbender/internal/models"
)

// Field identifies a form field in change notifications.
type Field int

const (
	FieldName Field = iota
	FieldAmount
	FieldYear
	FieldMonth
	FieldDay
	// FieldAll is sent when every field changed at once, as on reset.
	FieldAll
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldAmount:
		return "amount"
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldAll:
		return "all"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// ErrInvalidFields is returned by AddExpense when the form does not validate.
var ErrInvalidFields = errors.New("expense fields are not valid")

// ExpenseSaver persists a new expense and returns it with its assigned ID.
type ExpenseSaver interface {
	InsertExpense(e models.Expense) (models.Expense, error)
}

// TransactionViewModel holds the candidate fields of an expense being
// recorded. Setters reject invalid values and keep the previous state.
type TransactionViewModel struct {
	store  ExpenseSaver
	today  func() models.Date
	logger *slog.Logger

	name   string
	amount float64
	year   int
	month  models.Month
	day    int

	changed observers[Field]
}

// Option configures a TransactionViewModel.
type Option func(*TransactionViewModel)

// WithToday overrides the clock used for default dates.
func WithToday(today func() models.Date) Option {
	return func(vm *TransactionViewModel) { vm.today = today }
}

// NewTransactionViewModel creates a form with default fields: no name, zero
// amount, incurred today.
func NewTransactionViewModel(store ExpenseSaver, opts ...Option) *TransactionViewModel {
	vm := &TransactionViewModel{
		store:  store,
		today:  models.Today,
		logger: applog.WithComponent(applog.ComponentViewModel),
	}
	for _, opt := range opts {
		opt(vm)
	}
	vm.resetFields()
	return vm
}

func (vm *TransactionViewModel) Name() string { return vm.name }
func (vm *TransactionViewModel) Amount() float64 { return vm.amount }
func (vm *TransactionViewModel) Year() int { return vm.year }
func (vm *TransactionViewModel) Month() models.Month { return vm.month }
func (vm *TransactionViewModel) Day() int { return vm.day }

// Incurred returns the candidate incurred date. It may not be a real date
// until ValidateFields passes.
func (vm *TransactionViewModel) Incurred() models.Date {
	return models.NewDate(vm.year, vm.month, vm.day)
}

// SetName sets the expense name. Empty names are rejected.
func (vm *TransactionViewModel) SetName(name string) error {
	if !models.ValidName(name) {
		return models.ErrEmptyName
	}
	vm.name = name
	vm.changed.notify(FieldName)
	return nil
}

// SetAmount sets the amount. NaN and infinities are rejected.
func (vm *TransactionViewModel) SetAmount(amount float64) error {
	if !models.ValidAmount(amount) {
		return fmt.Errorf("%w: %v", models.ErrInvalidAmount, amount)
	}
	vm.amount = amount
	vm.changed.notify(FieldAmount)
	return nil
}

// SetAmountText parses and sets an amount typed by the user.
func (vm *TransactionViewModel) SetAmountText(text string) error {
	amount, err := models.ParseAmount(text)
	if err != nil {
		return err
	}
	return vm.SetAmount(amount)
}

// SetYear sets the incurred year.
func (vm *TransactionViewModel) SetYear(year int) error {
	if !models.ValidYear(year) {
		return fmt.Errorf("%w: got %d", models.ErrInvalidYear, year)
	}
	vm.year = year
	vm.changed.notify(FieldYear)
	return nil
}

// SetMonth sets the zero-based incurred month.
func (vm *TransactionViewModel) SetMonth(month models.Month) error {
	if !models.ValidMonth(month) {
		return fmt.Errorf("%w: got %d", models.ErrInvalidMonth, int(month))
	}
	vm.month = month
	vm.changed.notify(FieldMonth)
	return nil
}

// SetDay sets the incurred day. Only the 1..31 bound is checked here; whether
// the day exists in the month is left to ValidateFields.
func (vm *TransactionViewModel) SetDay(day int) error {
	if !models.ValidDay(day) {
		return fmt.Errorf("%w: got %d", models.ErrInvalidDay, day)
	}
	vm.day = day
	vm.changed.notify(FieldDay)
	return nil
}

// SetIncurred sets year, month and day together. Nothing changes unless all
// three pass their field checks.
func (vm *TransactionViewModel) SetIncurred(d models.Date) error {
	switch {
	case !models.ValidYear(d.Year):
		return fmt.Errorf("%w: got %d", models.ErrInvalidYear, d.Year)
	case !models.ValidMonth(d.Month):
		return fmt.Errorf("%w: got %d", models.ErrInvalidMonth, int(d.Month))
	case !models.ValidDay(d.Day):
		return fmt.Errorf("%w: got %d", models.ErrInvalidDay, d.Day)
	}
	vm.year, vm.month, vm.day = d.Year, d.Month, d.Day
	vm.changed.notify(FieldAll)
	return nil
}

// Validate returns the first reason the form cannot be committed.
func (vm *TransactionViewModel) Validate() error {
	return vm.expense().Validate()
}

// ValidateFields reports whether the form can be committed. It has no side effects.
func (vm *TransactionViewModel) ValidateFields() bool {
	return vm.expense().IsValid()
}

// AddExpense stores the form as a new expense. Invalid forms are refused with
// ErrInvalidFields and the store is not touched. The form keeps its values;
// call ResetFields to start over.
func (vm *TransactionViewModel) AddExpense() (models.Expense, error) {
	e := vm.expense()
	if err := e.Validate(); err != nil {
		vm.logger.Debug("Refusing invalid expense",
			applog.FieldOperation, applog.OpValidate,
			applog.FieldError, err)
		return e, fmt.Errorf("%w: %w", ErrInvalidFields, err)
	}

	saved, err := vm.store.InsertExpense(e)
	if err != nil {
		return e, fmt.Errorf("add expense: %w", err)
	}
	return saved, nil
}

// ResetFields restores the defaults and notifies subscribers with FieldAll.
func (vm *TransactionViewModel) ResetFields() {
	vm.resetFields()
	vm.changed.notify(FieldAll)
}

// Subscribe registers fn to be called after every accepted change.
func (vm *TransactionViewModel) Subscribe(fn func(Field)) (unsubscribe func()) {
	return vm.changed.subscribe(fn)
}

func (vm *TransactionViewModel) resetFields() {
	today := vm.today()
	vm.name = ""
	vm.amount = 0
	vm.year, vm.month, vm.day = today.Year, today.Month, today.Day
}

func (vm *TransactionViewModel) expense() models.Expense {
	e := models.NewExpense(vm.name, vm.amount, vm.Incurred())
	e.Created = vm.today()
	return e
}
