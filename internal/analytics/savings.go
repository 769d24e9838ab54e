package analytics

import (
	"fmt"
	"sort"
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// savingsWindowDays is how far back the advisor looks.
	savingsWindowDays = 30
	// topCategories caps how many categories are considered, counted before
	// the savings/investment exclusion is applied.
	topCategories = 6
	// minPotentialSavings gates inclusion for low-priority categories.
	minPotentialSavings = 50_000
)

// Savings fractions: half of any budget overrun, 15% of spending inside a
// budget, 20% of spending with no budget at all.
var (
	overrunSavingsRatio  = decimal.NewFromFloat(0.5)
	inBudgetSavingsRatio = decimal.NewFromFloat(0.15)
	noBudgetSavingsRatio = decimal.NewFromFloat(0.2)
)

type categoryStats struct {
	name  string
	total decimal.Decimal
	count int
}

// SuggestSavingsPlan builds prioritized cut-back suggestions from the last
// 30 days of spending, scored against budgets, spending share, frequency
// and ticket size.
func (a *Analyzer) SuggestSavingsPlan(snapshot []models.Transaction, budgets []models.Budget, now time.Time) models.SavingsPlan {
	end := dateutils.Day(now)
	start := end.AddDate(0, 0, -savingsWindowDays)
	r := models.DateRange{Start: start, End: end}

	expenses := window(snapshot, r, models.DirectionExpense)
	totalExpense := sumDecimal(expenses)
	totalIncome := sumDecimal(window(snapshot, r, models.DirectionIncome))

	stats := aggregateByCategory(expenses)
	budgetFor := budgetIndex(budgets, r)

	totalExpenseF := totalExpense.InexactFloat64()

	suggestions := make([]models.SavingsSuggestion, 0, topCategories)
	limit := len(stats)
	if limit > topCategories {
		limit = topCategories
	}
	for _, cs := range stats[:limit] {
		// Savings and investment outflows are not waste; never suggest
		// cutting them. They still occupy a top-N slot.
		if a.taxonomy.ExcludedFromSavings(cs.name) {
			continue
		}

		avgAmount := cs.total.Div(decimal.NewFromInt(int64(cs.count)))
		percentage := 0.0
		if totalExpenseF > 0 {
			percentage = cs.total.InexactFloat64() / totalExpenseF * 100
		}

		score := 0
		var reasons []string
		var potential decimal.Decimal

		if budget, ok := budgetFor[cs.name]; ok {
			if cs.total.GreaterThan(budget.Amount) {
				score += 3
				excess := cs.total.Sub(budget.Amount)
				overrunPct := excess.Div(budget.Amount).InexactFloat64() * 100
				reasons = append(reasons, fmt.Sprintf("Đã vượt budget %.1f%%", overrunPct))
				potential = excess.Mul(overrunSavingsRatio).Round(2)
			} else {
				potential = cs.total.Mul(inBudgetSavingsRatio).Round(2)
			}
		} else {
			potential = cs.total.Mul(noBudgetSavingsRatio).Round(2)
		}

		switch {
		case percentage > 30:
			score += 2
			reasons = append(reasons, fmt.Sprintf("Chiếm %.1f%% tổng chi tiêu", percentage))
		case percentage > 20:
			score++
			reasons = append(reasons, fmt.Sprintf("Chiếm %.1f%% tổng chi tiêu", percentage))
		}

		if cs.count > 10 {
			score++
			reasons = append(reasons, fmt.Sprintf("Chi tiêu %d lần trong tháng", cs.count))
		}

		if avgAmount.InexactFloat64() > totalExpenseF*0.1 {
			score++
			reasons = append(reasons, fmt.Sprintf("Mỗi lần chi trung bình %s₫", models.FormatGrouped(avgAmount)))
		}

		if potential.InexactFloat64() <= minPotentialSavings && score < 2 {
			continue
		}

		if len(reasons) == 0 {
			reasons = []string{fmt.Sprintf("Chiếm %.1f%% tổng chi tiêu", percentage)}
		}

		suggestions = append(suggestions, models.SavingsSuggestion{
			Category:         cs.name,
			CurrentSpending:  cs.total,
			Percentage:       round2(percentage),
			Count:            cs.count,
			AvgAmount:        avgAmount.Round(2),
			PriorityScore:    score,
			Reasons:          reasons,
			Suggestion:       fmt.Sprintf("Có thể tiết kiệm %s₫/tháng cho %s", models.FormatGrouped(potential), cs.name),
			ActionableTips:   a.taxonomy.TipsFor(cs.name),
			PotentialSavings: potential,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].PriorityScore > suggestions[j].PriorityScore
	})

	totalPotential := decimal.Zero
	for _, s := range suggestions {
		totalPotential = totalPotential.Add(s.PotentialSavings)
	}

	savingsRate := 0.0
	if totalIncome.IsPositive() {
		savingsRate = totalPotential.InexactFloat64() / totalIncome.InexactFloat64() * 100
	}

	plan := models.SavingsPlan{
		Suggestions:           suggestions,
		TotalPotentialSavings: totalPotential.Round(2),
		MonthlyExpense:        totalExpense,
		MonthlyIncome:         totalIncome,
		SavingsRate:           round2(savingsRate),
		OverallRecommendation: overallRecommendation(totalExpense, totalIncome, savingsRate, len(suggestions)),
	}

	a.logger.WithField(logging.FieldCount, len(suggestions)).Debug("Savings plan computed")

	return plan
}

// aggregateByCategory groups expenses per category, ordered by total
// descending (category name breaks ties so output is deterministic).
func aggregateByCategory(expenses []models.Transaction) []categoryStats {
	byName := make(map[string]*categoryStats)
	var order []string
	for _, tx := range expenses {
		cs, ok := byName[tx.Category]
		if !ok {
			cs = &categoryStats{name: tx.Category}
			byName[tx.Category] = cs
			order = append(order, tx.Category)
		}
		cs.total = cs.total.Add(tx.Amount)
		cs.count++
	}

	stats := make([]categoryStats, 0, len(order))
	for _, name := range order {
		stats = append(stats, *byName[name])
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if !stats[i].total.Equal(stats[j].total) {
			return stats[i].total.GreaterThan(stats[j].total)
		}
		return stats[i].name < stats[j].name
	})
	return stats
}

// budgetIndex maps category name to the first budget overlapping the window.
func budgetIndex(budgets []models.Budget, r models.DateRange) map[string]models.Budget {
	idx := make(map[string]models.Budget, len(budgets))
	for _, b := range budgets {
		if !b.Covers(r.Start, r.End) {
			continue
		}
		if _, ok := idx[b.Category]; !ok {
			idx[b.Category] = b
		}
	}
	return idx
}

func overallRecommendation(totalExpense, totalIncome decimal.Decimal, savingsRate float64, suggestionCount int) []string {
	var out []string

	expense := totalExpense.InexactFloat64()
	income := totalIncome.InexactFloat64()
	if expense > income*0.8 {
		out = append(out, "⚠️ Chi tiêu của bạn đang chiếm hơn 80% thu nhập. Nên cắt giảm ngay!")
	} else if expense > income*0.6 {
		out = append(out, "💡 Chi tiêu đang ở mức cao. Có thể cải thiện để tăng tiết kiệm.")
	}

	if savingsRate > 10 {
		out = append(out, fmt.Sprintf("✅ Nếu thực hiện các gợi ý, bạn có thể tiết kiệm thêm %.1f%% thu nhập mỗi tháng!", savingsRate))
	}

	if suggestionCount == 0 {
		out = append(out, "👍 Chi tiêu của bạn đang hợp lý! Hãy tiếp tục duy trì.")
	}

	return out
}
