package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBudgetCovers(t *testing.T) {
	b := Budget{
		Category:  CategoryFood,
		StartDate: day(2024, time.June, 1),
		EndDate:   day(2024, time.June, 30),
	}

	tests := []struct {
		name       string
		start, end time.Time
		covers     bool
	}{
		{"window inside period", day(2024, time.June, 10), day(2024, time.June, 20), true},
		{"window containing period", day(2024, time.May, 1), day(2024, time.July, 31), true},
		{"overlap at start", day(2024, time.May, 15), day(2024, time.June, 1), true},
		{"overlap at end", day(2024, time.June, 30), day(2024, time.July, 15), true},
		{"before period", day(2024, time.May, 1), day(2024, time.May, 31), false},
		{"after period", day(2024, time.July, 1), day(2024, time.July, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.covers, b.Covers(tt.start, tt.end))
		})
	}
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: day(2024, time.June, 1), End: day(2024, time.June, 30)}

	assert.True(t, r.Contains(day(2024, time.June, 1)))
	assert.True(t, r.Contains(day(2024, time.June, 30)))
	assert.True(t, r.Contains(day(2024, time.June, 15)))
	assert.False(t, r.Contains(day(2024, time.May, 31)))
	assert.False(t, r.Contains(day(2024, time.July, 1)))
}

func TestDateRangeContains_MixedZones(t *testing.T) {
	// Snapshot dates parse to UTC midnight while evaluation windows are
	// built from local midnights. Membership must go by calendar date, not
	// by instant.
	ict := time.FixedZone("ICT", 7*3600)
	r := DateRange{
		Start: time.Date(2024, time.June, 1, 0, 0, 0, 0, ict),
		End:   time.Date(2024, time.June, 15, 0, 0, 0, 0, ict),
	}

	utcToday, err := time.Parse("2006-01-02", "2024-06-15")
	require.NoError(t, err)

	assert.True(t, r.Contains(utcToday))
	assert.True(t, r.Contains(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC)))
	assert.False(t, r.Contains(time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)))
}

func TestBudgetCovers_MixedZones(t *testing.T) {
	// Budget periods parse to UTC midnights; the advisor's window carries
	// the evaluation zone.
	b := Budget{
		Category:  CategoryFood,
		StartDate: day(2024, time.June, 1),
		EndDate:   day(2024, time.June, 30),
	}
	ict := time.FixedZone("ICT", 7*3600)

	assert.True(t, b.Covers(
		time.Date(2024, time.June, 30, 0, 0, 0, 0, ict),
		time.Date(2024, time.July, 10, 0, 0, 0, 0, ict)))
	assert.False(t, b.Covers(
		time.Date(2024, time.July, 1, 0, 0, 0, 0, ict),
		time.Date(2024, time.July, 10, 0, 0, 0, 0, ict)))
}

func TestDateRangeIsZero(t *testing.T) {
	assert.True(t, DateRange{}.IsZero())
	assert.False(t, DateRange{Start: day(2024, time.June, 1)}.IsZero())
}

func TestTransactionDirectionHelpers(t *testing.T) {
	assert.True(t, Transaction{Direction: DirectionExpense}.IsExpense())
	assert.False(t, Transaction{Direction: DirectionExpense}.IsIncome())
	assert.True(t, Transaction{Direction: DirectionIncome}.IsIncome())
}
