// Package models provides the data structures shared across the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a transaction is money going out or coming in.
type Direction string

const (
	DirectionExpense Direction = "expense"
	DirectionIncome  Direction = "income"
)

// Transaction is one record of a user's transaction snapshot as supplied by
// the persistence collaborator. Analytics functions never mutate these.
type Transaction struct {
	Amount      decimal.Decimal
	Category    string
	Direction   Direction
	Date        time.Time
	Description string
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Direction == DirectionExpense
}

// IsIncome reports whether the transaction is an income.
func (t Transaction) IsIncome() bool {
	return t.Direction == DirectionIncome
}

// ExtractedTransaction is a transaction candidate produced from free text or
// receipt OCR output. HasAmount is false when no amount could be resolved,
// in which case the record must not be persisted.
type ExtractedTransaction struct {
	Amount      decimal.Decimal
	HasAmount   bool
	Category    string
	Direction   Direction
	Description string
	Date        time.Time
	RawInput    string
}

// Budget is a spending limit for a category over a period.
type Budget struct {
	Category  string
	Amount    decimal.Decimal
	Period    string
	StartDate time.Time
	EndDate   time.Time
}

// Covers reports whether the budget period overlaps the given date range.
func (b Budget) Covers(start, end time.Time) bool {
	return !dayAfter(b.StartDate, end) && !dayBefore(b.EndDate, start)
}

// OCRLine is one recognized text line from the OCR collaborator together
// with its recognition confidence in [0,1].
type OCRLine struct {
	Text       string
	Confidence float64
}

// DateRange is an inclusive calendar-date range.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls within the range, inclusive at both ends.
// Membership is decided on calendar dates, each value read in its own
// location, so a snapshot date parsed in UTC and a window built from local
// midnights agree on which day a transaction belongs to.
func (r DateRange) Contains(d time.Time) bool {
	return !dayBefore(d, r.Start) && !dayAfter(d, r.End)
}

// dayBefore reports whether a's calendar date precedes b's.
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}

func dayAfter(a, b time.Time) bool {
	return dayBefore(b, a)
}

// IsZero reports whether the range is unset.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}
