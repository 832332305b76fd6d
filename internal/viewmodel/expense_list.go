package viewmodel

import (
	"fmt"
	"log/slog"

	applog "spenderbender/internal/log"
	"spenderbender/internal/models"

	"github.com/shopspring/decimal"
)

// ExpenseLister returns every stored expense.
type ExpenseLister interface {
	ListExpenses() ([]models.Expense, error)
}

// ExpenseListViewModel is the state behind the expense list.
type ExpenseListViewModel struct {
	store    ExpenseLister
	logger   *slog.Logger
	expenses []models.Expense
	loaded   observers[[]models.Expense]
}

func NewExpenseListViewModel(store ExpenseLister) *ExpenseListViewModel {
	return &ExpenseListViewModel{
		store:  store,
		logger: applog.WithComponent(applog.ComponentViewModel),
	}
}

// Load replaces the held expenses with everything in the store. On failure
// the previous list is kept.
func (vm *ExpenseListViewModel) Load() error {
	expenses, err := vm.store.ListExpenses()
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	vm.expenses = expenses
	vm.logger.Debug("Expenses loaded",
		applog.FieldOperation, applog.OpLoad,
		applog.FieldCount, len(expenses))
	vm.loaded.notify(vm.Expenses())
	return nil
}

// Expenses returns a copy of the loaded expenses.
func (vm *ExpenseListViewModel) Expenses() []models.Expense {
	return append([]models.Expense(nil), vm.expenses...)
}

func (vm *ExpenseListViewModel) Len() int { return len(vm.expenses) }

// Total sums the loaded amounts in decimal so display totals do not pick up
// binary rounding noise.
func (vm *ExpenseListViewModel) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range vm.expenses {
		total = total.Add(decimal.NewFromFloat(e.Amount))
	}
	return total
}

// Subscribe registers fn to be called with a copy of the list after each load.
func (vm *ExpenseListViewModel) Subscribe(fn func([]models.Expense)) (unsubscribe func()) {
	return vm.loaded.subscribe(fn)
}
