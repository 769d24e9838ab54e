package analytics

import (
	"testing"
	"time"

	"tdnguyen/vispend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopspring/decimal"
)

func monthBudget(category string, amount int64) models.Budget {
	return models.Budget{
		Category:  category,
		Amount:    decimal.NewFromInt(amount),
		Period:    "monthly",
		StartDate: date(2024, time.June, 1),
		EndDate:   date(2024, time.June, 30),
	}
}

func TestSuggestSavingsPlan_BudgetOverrun(t *testing.T) {
	a := newTestAnalyzer()
	now := date(2024, time.June, 30)

	snapshot := []models.Transaction{
		expense(500000, models.CategoryFood, date(2024, time.June, 3)),
		expense(500000, models.CategoryFood, date(2024, time.June, 8)),
		expense(500000, models.CategoryFood, date(2024, time.June, 14)),
		expense(500000, models.CategoryFood, date(2024, time.June, 20)),
		expense(500000, models.CategoryFood, date(2024, time.June, 26)),
		income(10000000, date(2024, time.June, 1)),
	}
	budgets := []models.Budget{monthBudget(models.CategoryFood, 2000000)}

	plan := a.SuggestSavingsPlan(snapshot, budgets, now)

	require.Len(t, plan.Suggestions, 1)
	s := plan.Suggestions[0]
	assert.Equal(t, models.CategoryFood, s.Category)
	assert.Equal(t, int64(2500000), s.CurrentSpending.IntPart())
	assert.Equal(t, 5, s.Count)
	assert.InDelta(t, 100.0, s.Percentage, 0.001)

	// Overrun +3, share of spending over 30% +2, large average ticket +1.
	assert.Equal(t, 6, s.PriorityScore)
	require.Len(t, s.Reasons, 3)
	assert.Contains(t, s.Reasons, "Đã vượt budget 25.0%")
	assert.Contains(t, s.Reasons, "Chiếm 100.0% tổng chi tiêu")
	assert.Contains(t, s.Reasons, "Mỗi lần chi trung bình 500,000₫")

	// Half of the 500,000 overrun.
	assert.Equal(t, int64(250000), s.PotentialSavings.IntPart())
	assert.Equal(t, "Có thể tiết kiệm 250,000₫/tháng cho Ăn uống", s.Suggestion)
	assert.Len(t, s.ActionableTips, 3)

	assert.Equal(t, int64(250000), plan.TotalPotentialSavings.IntPart())
	assert.InDelta(t, 2.5, plan.SavingsRate, 0.001)
	assert.Empty(t, plan.OverallRecommendation)
}

func TestSuggestSavingsPlan_ExcludedCategoriesConsumeSlots(t *testing.T) {
	a := newTestAnalyzer()
	now := date(2024, time.June, 30)

	// Seven categories; the savings transfer ranks first and must occupy a
	// top-6 slot without producing a suggestion, so the seventh-ranked
	// category falls outside consideration entirely.
	snapshot := []models.Transaction{
		expense(5000000, models.CategorySavings, date(2024, time.June, 2)),
		expense(2000000, models.CategoryFood, date(2024, time.June, 3)),
		expense(1800000, models.CategoryTransport, date(2024, time.June, 4)),
		expense(1600000, models.CategoryShopping, date(2024, time.June, 5)),
		expense(1400000, models.CategoryEntertainment, date(2024, time.June, 6)),
		expense(1200000, models.CategoryHealth, date(2024, time.June, 7)),
		expense(600000, models.CategoryBills, date(2024, time.June, 8)),
		income(20000000, date(2024, time.June, 1)),
	}

	plan := a.SuggestSavingsPlan(snapshot, nil, now)

	require.Len(t, plan.Suggestions, 5)
	for _, s := range plan.Suggestions {
		assert.NotEqual(t, models.CategorySavings, s.Category)
		assert.NotEqual(t, models.CategoryBills, s.Category)
	}
}

func TestSuggestSavingsPlan_SmallCategoriesSkipped(t *testing.T) {
	a := newTestAnalyzer()
	now := date(2024, time.June, 30)

	// A 100,000 category at 10% of spending scores 0 and its 20,000
	// potential is below the floor, so only the dominant category remains.
	snapshot := []models.Transaction{
		expense(900000, models.CategoryFood, date(2024, time.June, 5)),
		expense(100000, models.CategoryHealth, date(2024, time.June, 10)),
		income(15000000, date(2024, time.June, 1)),
	}

	plan := a.SuggestSavingsPlan(snapshot, nil, now)

	require.Len(t, plan.Suggestions, 1)
	assert.Equal(t, models.CategoryFood, plan.Suggestions[0].Category)
}

func TestSuggestSavingsPlan_SortedByPriority(t *testing.T) {
	a := newTestAnalyzer()
	now := date(2024, time.June, 30)

	// Transport overruns its budget and must outrank the bigger but
	// unbudgeted food spending.
	snapshot := []models.Transaction{
		expense(1000000, models.CategoryFood, date(2024, time.June, 5)),
		expense(900000, models.CategoryTransport, date(2024, time.June, 10)),
		income(30000000, date(2024, time.June, 1)),
	}
	budgets := []models.Budget{monthBudget(models.CategoryTransport, 500000)}

	plan := a.SuggestSavingsPlan(snapshot, budgets, now)

	require.Len(t, plan.Suggestions, 2)
	assert.Equal(t, models.CategoryTransport, plan.Suggestions[0].Category)
	assert.Equal(t, models.CategoryFood, plan.Suggestions[1].Category)
	assert.Greater(t, plan.Suggestions[0].PriorityScore, plan.Suggestions[1].PriorityScore)
}

func TestSuggestSavingsPlan_OverallRecommendations(t *testing.T) {
	a := newTestAnalyzer()
	now := date(2024, time.June, 30)

	snapshot := []models.Transaction{
		expense(300000, models.CategoryFood, date(2024, time.June, 5)),
		expense(300000, models.CategoryFood, date(2024, time.June, 12)),
		expense(300000, models.CategoryFood, date(2024, time.June, 19)),
		income(1000000, date(2024, time.June, 1)),
	}

	plan := a.SuggestSavingsPlan(snapshot, nil, now)

	// 900,000 of 1,000,000 income spent, and the 180,000 potential is 18%
	// of income.
	require.Len(t, plan.OverallRecommendation, 2)
	assert.Contains(t, plan.OverallRecommendation[0], "hơn 80% thu nhập")
	assert.Contains(t, plan.OverallRecommendation[1], "18.0%")
}

func TestSuggestSavingsPlan_EmptySnapshot(t *testing.T) {
	a := newTestAnalyzer()
	now := date(2024, time.June, 30)

	plan := a.SuggestSavingsPlan(nil, nil, now)

	assert.Empty(t, plan.Suggestions)
	assert.True(t, plan.TotalPotentialSavings.IsZero())
	assert.Zero(t, plan.SavingsRate)
	require.Len(t, plan.OverallRecommendation, 1)
	assert.Contains(t, plan.OverallRecommendation[0], "👍")
}
