package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month Month
		day   int
		want  bool
	}{
		{"leap day in leap year", 2008, February, 29, true},
		{"leap day in common year", 2013, February, 29, false},
		{"leap day in century year", 1900, February, 29, false},
		{"leap day in 400 year", 2000, February, 29, true},
		{"april 31", 2008, April, 31, false},
		{"april 30", 2008, April, 30, true},
		{"february 30", 2008, February, 30, false},
		{"december 31", 2016, December, 31, true},
		{"year 999", 999, January, 1, false},
		{"year 1000", 1000, January, 1, true},
		{"month below range", 2016, Month(-1), 1, false},
		{"month above range", 2016, Month(12), 1, false},
		{"day zero", 2016, January, 0, false},
		{"day 32", 2016, January, 32, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidDate(tt.year, tt.month, tt.day))
		})
	}
}

func TestFieldPredicates(t *testing.T) {
	assert.True(t, ValidName("Korean BBQ"))
	assert.False(t, ValidName(""))

	assert.True(t, ValidYear(MinYear))
	assert.False(t, ValidYear(MinYear-1))

	assert.True(t, ValidMonth(January))
	assert.True(t, ValidMonth(December))
	assert.False(t, ValidMonth(December+1))

	// The day bound alone accepts impossible dates.
	assert.True(t, ValidDay(31))
	assert.False(t, ValidDay(32))
}

func TestValidAmount(t *testing.T) {
	for _, amount := range []float64{0, 21.22, -201.39, math.MaxFloat64, -math.MaxFloat64, math.SmallestNonzeroFloat64} {
		assert.True(t, ValidAmount(amount), "amount %v", amount)
	}
	for _, amount := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		assert.False(t, ValidAmount(amount), "amount %v", amount)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"21.22", 21.22, true},
		{" 201.39 ", 201.39, true},
		{"-5", -5, true},
		{"0", 0, true},
		{"1e3", 1000, true},
		{"", 0, false},
		{"abc", 0, false},
		{"Infinity", 0, false},
		{"NaN", 0, false},
		{"1e400", 0, false},
		{"-1e400", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.ok {
			require.NoError(t, err, "input %q", tt.in)
			assert.InDelta(t, tt.want, got, 0.0001, "input %q", tt.in)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", tt.in)
			assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", tt.in)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := NewExpense("Korean BBQ", 21.22, NewDate(2016, August, 22))
	require.NoError(t, good.Validate())
	assert.True(t, good.IsValid())

	tests := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr error
	}{
		{"empty name", func(e *Expense) { e.Name = "" }, ErrEmptyName},
		{"positive infinity", func(e *Expense) { e.Amount = math.Inf(1) }, ErrInvalidAmount},
		{"negative infinity", func(e *Expense) { e.Amount = math.Inf(-1) }, ErrInvalidAmount},
		{"nan", func(e *Expense) { e.Amount = math.NaN() }, ErrInvalidAmount},
		{"year 999", func(e *Expense) { e.Incurred.Year = 999 }, ErrInvalidYear},
		{"month 12", func(e *Expense) { e.Incurred.Month = 12 }, ErrInvalidMonth},
		{"day 0", func(e *Expense) { e.Incurred.Day = 0 }, ErrInvalidDay},
		{"feb 29 common year", func(e *Expense) { e.Incurred = NewDate(2013, February, 29) }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := good
			tt.mutate(&e)
			err := e.Validate()
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.False(t, e.IsValid())
		})
	}
}

func TestExpenseValidateAmountBoundaries(t *testing.T) {
	for _, amount := range []float64{0, 1e300, -1e300, -42.5} {
		e := NewExpense("x", amount, NewDate(2016, January, 3))
		assert.True(t, e.IsValid(), "amount %v", amount)
	}
}
