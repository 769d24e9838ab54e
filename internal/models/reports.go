package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeeklyPoint is one 7-day bucket of a trend report. The last bucket of a
// window may span fewer than 7 days.
type WeeklyPoint struct {
	WeekStart time.Time       `json:"week"`
	Expense   decimal.Decimal `json:"expense"`
	Income    decimal.Decimal `json:"income"`
	Balance   decimal.Decimal `json:"balance"`
}

// TrendReport summarizes spending over a window of weekly buckets.
type TrendReport struct {
	Weekly               []WeeklyPoint `json:"weekly_data"`
	Trend                string        `json:"trend"`
	TrendPercentage      float64       `json:"trend_percentage"`
	AverageWeeklyExpense float64       `json:"average_weekly_expense"`
}

// Prediction is a next-period spending forecast.
type Prediction struct {
	PredictedAmount float64 `json:"predicted_amount"`
	Confidence      string  `json:"confidence"`
	BasedOnMonths   int     `json:"based_on_months"`
}

// Anomaly flags a transaction whose amount exceeds the anomaly threshold.
// Deviation is measured in population standard deviations from the mean.
type Anomaly struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Deviation   float64         `json:"deviation"`
	MeanAmount  float64         `json:"avg_amount"`
}

// SavingsSuggestion is one prioritized cut-back recommendation for a category.
type SavingsSuggestion struct {
	Category         string          `json:"category"`
	CurrentSpending  decimal.Decimal `json:"current_spending"`
	Percentage       float64         `json:"percentage"`
	Count            int             `json:"count"`
	AvgAmount        decimal.Decimal `json:"avg_amount"`
	PriorityScore    int             `json:"priority_score"`
	Reasons          []string        `json:"reasons"`
	Suggestion       string          `json:"suggestion"`
	ActionableTips   []string        `json:"actionable_tips"`
	PotentialSavings decimal.Decimal `json:"potential_savings"`
}

// SavingsPlan is the full savings-advisor output.
type SavingsPlan struct {
	Suggestions           []SavingsSuggestion `json:"suggestions"`
	TotalPotentialSavings decimal.Decimal     `json:"total_potential_savings"`
	MonthlyExpense        decimal.Decimal     `json:"monthly_expense"`
	MonthlyIncome         decimal.Decimal     `json:"monthly_income"`
	SavingsRate           float64             `json:"savings_rate"`
	OverallRecommendation []string            `json:"overall_recommendation"`
}

// Aggregation is the kind of computation a parsed query asks for.
type Aggregation string

const (
	AggregationSum     Aggregation = "sum"
	AggregationCount   Aggregation = "count"
	AggregationAverage Aggregation = "average"
	AggregationList    Aggregation = "list"
)

// Query is a parsed natural-language analytics question.
type Query struct {
	Category    string
	Window      DateRange
	Aggregation Aggregation
}

// QueryResult is the answer to a Query over a transaction snapshot.
// Exactly one of Amount/Count/Average/Transactions is meaningful,
// according to the aggregation kind; ResultText is always set.
type QueryResult struct {
	ResultText   string          `json:"result"`
	Amount       decimal.Decimal `json:"amount,omitempty"`
	Count        int             `json:"count,omitempty"`
	Average      decimal.Decimal `json:"average,omitempty"`
	Transactions []Transaction   `json:"transactions,omitempty"`
}
