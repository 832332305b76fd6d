package models

import (
	"fmt"
	"time"
)

// Unsaved is the ID of an expense that has never been written to the store.
const Unsaved int64 = -1

// Month is a zero-based calendar month: January is 0, December is 11.
type Month int

const (
	January Month = iota
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("Month(%d)", int(m))
	}
	return time.Month(m + 1).String()
}

// Date is a calendar date with no time of day.
type Date struct {
	Year  int
	Month Month
	Day   int
}

// NewDate creates a Date from its parts. It does not validate them.
func NewDate(year int, month Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: Month(m - 1), Day: d}
}

// Today returns the current local date.
func Today() Date {
	return DateOf(time.Now())
}

// Time returns midnight UTC on d. Out-of-range parts are normalized by time.Date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month+1), d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats d as YYYY-MM-DD with a one-based month.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month)+1, d.Day)
}

// ParseDate parses a YYYY-MM-DD date. The result is always a real calendar date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q: %v", ErrInvalidArgument, s, err)
	}
	return DateOf(t), nil
}

// Expense represents one recorded financial transaction.
type Expense struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Incurred Date    `json:"incurred"`
	Created  Date    `json:"created"`
}

// NewExpense creates an unsaved expense created today.
func NewExpense(name string, amount float64, incurred Date) Expense {
	return Expense{
		ID:       Unsaved,
		Name:     name,
		Amount:   amount,
		Incurred: incurred,
		Created:  Today(),
	}
}

// IsSaved reports whether e corresponds to a stored row.
func (e Expense) IsSaved() bool {
	return e.ID != Unsaved
}

// WithID returns a copy of e carrying id.
func (e Expense) WithID(id int64) Expense {
	e.ID = id
	return e
}
