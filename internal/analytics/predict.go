package analytics

import (
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
)

// forecastWindowDays is how far back the predictor looks.
const forecastWindowDays = 90

// PredictNextMonth forecasts next-month spending as the arithmetic mean of
// per-calendar-month expense totals over the last 90 days. Months at the
// window edges are clipped, and months without spending still count as
// samples of zero.
func (a *Analyzer) PredictNextMonth(snapshot []models.Transaction, now time.Time) models.Prediction {
	end := dateutils.Day(now)
	start := end.AddDate(0, 0, -forecastWindowDays)
	expenses := window(snapshot, models.DateRange{Start: start, End: end}, models.DirectionExpense)

	var monthlyTotals []float64
	for current := start; !current.After(end); {
		monthEnd := dateutils.EndOfMonth(current)
		upper := monthEnd
		if upper.After(end) {
			upper = end
		}

		bucket := models.DateRange{Start: dateutils.StartOfMonth(current), End: upper}
		total := sumDecimal(window(expenses, bucket, "")).InexactFloat64()
		monthlyTotals = append(monthlyTotals, total)

		current = monthEnd.AddDate(0, 0, 1)
	}

	predicted := 0.0
	if len(monthlyTotals) > 0 {
		for _, t := range monthlyTotals {
			predicted += t
		}
		predicted /= float64(len(monthlyTotals))
	}

	confidence := models.ConfidenceLow
	if len(monthlyTotals) >= 2 {
		confidence = models.ConfidenceMedium
	}

	a.logger.WithFields(
		logging.Field{Key: logging.FieldAmount, Value: predicted},
		logging.Field{Key: logging.FieldCount, Value: len(monthlyTotals)},
	).Debug("Next-month forecast computed")

	return models.Prediction{
		PredictedAmount: round2(predicted),
		Confidence:      confidence,
		BasedOnMonths:   len(monthlyTotals),
	}
}
