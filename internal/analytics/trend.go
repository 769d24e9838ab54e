package analytics

import (
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
)

// AnalyzeTrends partitions the last `days` days into consecutive 7-day
// buckets (the final bucket may be shorter) and derives a spending trend by
// comparing mean expense of the first and second half of the bucket
// sequence.
func (a *Analyzer) AnalyzeTrends(snapshot []models.Transaction, days int, now time.Time) models.TrendReport {
	end := dateutils.Day(now)
	start := end.AddDate(0, 0, -days)
	txs := window(snapshot, models.DateRange{Start: start, End: end}, "")

	var weekly []models.WeeklyPoint
	for current := start; !current.After(end); {
		weekStart := current
		weekEnd := weekStart.AddDate(0, 0, 6)
		if weekEnd.After(end) {
			weekEnd = end
		}

		bucket := models.DateRange{Start: weekStart, End: weekEnd}
		expense := sumDecimal(window(txs, bucket, models.DirectionExpense))
		income := sumDecimal(window(txs, bucket, models.DirectionIncome))

		weekly = append(weekly, models.WeeklyPoint{
			WeekStart: weekStart,
			Expense:   expense,
			Income:    income,
			Balance:   income.Sub(expense),
		})

		current = weekEnd.AddDate(0, 0, 1)
	}

	report := models.TrendReport{
		Weekly: weekly,
		Trend:  models.TrendStable,
	}

	if len(weekly) >= 2 {
		mid := len(weekly) / 2
		firstAvg := meanExpense(weekly[:mid])
		secondAvg := meanExpense(weekly[mid:])

		if secondAvg > firstAvg {
			report.Trend = models.TrendIncreasing
		} else {
			report.Trend = models.TrendDecreasing
		}
		if firstAvg > 0 {
			report.TrendPercentage = round2((secondAvg - firstAvg) / firstAvg * 100)
			if report.TrendPercentage < 0 {
				report.TrendPercentage = -report.TrendPercentage
			}
		}
	}

	if len(weekly) > 0 {
		total := 0.0
		for _, w := range weekly {
			total += w.Expense.InexactFloat64()
		}
		report.AverageWeeklyExpense = total / float64(len(weekly))
	}

	a.logger.WithFields(
		logging.Field{Key: logging.FieldWindow, Value: days},
		logging.Field{Key: logging.FieldCount, Value: len(weekly)},
		logging.Field{Key: "trend", Value: report.Trend},
	).Debug("Trend analysis complete")

	return report
}

func meanExpense(points []models.WeeklyPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range points {
		total += p.Expense.InexactFloat64()
	}
	return total / float64(len(points))
}
