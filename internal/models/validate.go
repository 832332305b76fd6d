package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MinYear is the earliest supported year. Only four-digit years are accepted.
const MinYear = 1000

// ErrInvalidArgument is wrapped by every field validation error.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrEmptyName     = fmt.Errorf("%w: empty name", ErrInvalidArgument)
	ErrInvalidAmount = fmt.Errorf("%w: amount must be a finite number", ErrInvalidArgument)
	ErrInvalidYear   = fmt.Errorf("%w: year must be at least %d", ErrInvalidArgument, MinYear)
	ErrInvalidMonth  = fmt.Errorf("%w: month must be between %d and %d", ErrInvalidArgument, January, December)
	ErrInvalidDay    = fmt.Errorf("%w: day must be between 1 and 31", ErrInvalidArgument)
	ErrInvalidDate   = fmt.Errorf("%w: not a calendar date", ErrInvalidArgument)
)

// ValidName reports whether name is non-empty.
func ValidName(name string) bool {
	return name != ""
}

// ValidAmount reports whether amount is finite.
func ValidAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// ParseAmount parses decimal text into an amount. Text that is not a number,
// or whose value does not fit a finite float64, is rejected.
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	f, _ := d.Float64()
	if !ValidAmount(f) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return f, nil
}

// ValidYear reports whether year is at least MinYear.
func ValidYear(year int) bool {
	return year >= MinYear
}

// ValidMonth reports whether month is one of the twelve months.
func ValidMonth(month Month) bool {
	return month >= January && month <= December
}

// ValidDay is a cheap bound on day. It does not know about month lengths.
func ValidDay(day int) bool {
	return day >= 1 && day <= 31
}

// ValidDate reports whether year, month and day name an actual day of the
// proleptic Gregorian calendar, with year no earlier than MinYear.
func ValidDate(year int, month Month, day int) bool {
	if !ValidYear(year) || !ValidMonth(month) || !ValidDay(day) {
		return false
	}
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); a round trip
	// that changes the parts means the date does not exist.
	t := time.Date(year, time.Month(month+1), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && t.Month() == time.Month(month+1) && t.Day() == day
}

// Validate checks d and returns the first failing rule.
func (d Date) Validate() error {
	switch {
	case !ValidYear(d.Year):
		return ErrInvalidYear
	case !ValidMonth(d.Month):
		return ErrInvalidMonth
	case !ValidDay(d.Day):
		return ErrInvalidDay
	case !ValidDate(d.Year, d.Month, d.Day):
		return ErrInvalidDate
	}
	return nil
}

// Validate checks every field of e that a caller may supply.
func (e Expense) Validate() error {
	if !ValidName(e.Name) {
		return ErrEmptyName
	}
	if !ValidAmount(e.Amount) {
		return ErrInvalidAmount
	}
	if err := e.Incurred.Validate(); err != nil {
		return fmt.Errorf("incurred date %s: %w", e.Incurred, err)
	}
	return nil
}

// IsValid reports whether e may be persisted.
func (e Expense) IsValid() bool {
	return e.Validate() == nil
}
