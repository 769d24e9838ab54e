package analytics

import (
	"math"
	"sort"
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
)

// DetectAnomalies flags expense transactions of the last `days` days whose
// amount exceeds the population mean plus two population standard
// deviations. Results are sorted by amount descending; an empty snapshot
// yields an empty result, not an error.
func (a *Analyzer) DetectAnomalies(snapshot []models.Transaction, days int, now time.Time) []models.Anomaly {
	end := dateutils.Day(now)
	start := end.AddDate(0, 0, -days)
	expenses := window(snapshot, models.DateRange{Start: start, End: end}, models.DirectionExpense)

	if len(expenses) == 0 {
		return []models.Anomaly{}
	}

	mean := 0.0
	for _, tx := range expenses {
		mean += tx.Amount.InexactFloat64()
	}
	mean /= float64(len(expenses))

	// Population variance: divide by N, not N-1.
	variance := 0.0
	for _, tx := range expenses {
		d := tx.Amount.InexactFloat64() - mean
		variance += d * d
	}
	variance /= float64(len(expenses))
	stdDev := math.Sqrt(variance)

	threshold := mean + 2*stdDev

	anomalies := make([]models.Anomaly, 0)
	for _, tx := range expenses {
		amount := tx.Amount.InexactFloat64()
		if amount <= threshold {
			continue
		}

		deviation := 0.0
		if stdDev > 0 {
			deviation = round2((amount - mean) / stdDev)
		}

		anomalies = append(anomalies, models.Anomaly{
			Amount:      tx.Amount,
			Category:    tx.Category,
			Date:        tx.Date,
			Description: tx.Description,
			Deviation:   deviation,
			MeanAmount:  round2(mean),
		})
	}

	sort.SliceStable(anomalies, func(i, j int) bool {
		return anomalies[i].Amount.GreaterThan(anomalies[j].Amount)
	})

	a.logger.WithFields(
		logging.Field{Key: logging.FieldWindow, Value: days},
		logging.Field{Key: logging.FieldCount, Value: len(anomalies)},
	).Debug("Anomaly detection complete")

	return anomalies
}
