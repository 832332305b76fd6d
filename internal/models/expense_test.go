package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	today := Today()

	rent := NewExpense("rent", 3500.99, NewDate(2015, May, 15))
	assert.Equal(t, Unsaved, rent.ID)
	assert.False(t, rent.IsSaved())
	assert.Equal(t, "rent", rent.Name)
	assert.Equal(t, 3500.99, rent.Amount)
	assert.Equal(t, Date{Year: 2015, Month: May, Day: 15}, rent.Incurred)
	assert.Equal(t, today, rent.Created, "created date defaults to today")

	// Multiple expenses are independent values.
	parking := NewExpense("parking", 3.45, NewDate(2016, April, 25))
	assert.Equal(t, "parking", parking.Name)
	assert.Equal(t, "rent", rent.Name)
	assert.Equal(t, today, parking.Created)
}

func TestExpenseWithID(t *testing.T) {
	e := NewExpense("Sushi", 35.92, NewDate(2016, August, 19))
	saved := e.WithID(7)

	assert.Equal(t, int64(7), saved.ID)
	assert.True(t, saved.IsSaved())
	assert.Equal(t, Unsaved, e.ID, "original value must not change")
	assert.Equal(t, e.Name, saved.Name)
}

func TestDateConversions(t *testing.T) {
	d := NewDate(2016, August, 22)
	assert.Equal(t, "2016-08-22", d.String())
	assert.Equal(t, time.Date(2016, time.August, 22, 0, 0, 0, 0, time.UTC), d.Time())
	assert.Equal(t, d, DateOf(d.Time()))

	assert.Equal(t, "February", February.String())
	assert.Equal(t, "Month(12)", Month(12).String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2014-02-22")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2014, February, 22), d)

	for _, in := range []string{"", "2014-02-30", "22/02/2014", "2014-13-01"} {
		_, err := ParseDate(in)
		assert.ErrorIs(t, err, ErrInvalidArgument, "input %q", in)
	}
}
