// Package analytics provides statistical reports over a caller-supplied
// transaction snapshot: weekly trend summaries, next-period forecasts,
// statistical outlier detection and prioritized savings suggestions.
//
// Every function is pure: results are computed fresh per call from the
// snapshot and evaluation date, nothing is cached or mutated, so concurrent
// calls need no coordination.
package analytics

import (
	"math"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/taxonomy"

	"github.com/shopspring/decimal"
)

// Analyzer runs the analytics functions.
type Analyzer struct {
	taxonomy *taxonomy.Taxonomy
	logger   logging.Logger
}

// New creates an Analyzer.
func New(tax *taxonomy.Taxonomy, logger logging.Logger) *Analyzer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Analyzer{
		taxonomy: tax,
		logger:   logger.WithField(logging.FieldComponent, "analytics"),
	}
}

// window filters snapshot transactions to [start,end], optionally to one
// direction. Passing an empty direction keeps both.
func window(snapshot []models.Transaction, r models.DateRange, dir models.Direction) []models.Transaction {
	out := make([]models.Transaction, 0, len(snapshot))
	for _, tx := range snapshot {
		if !r.Contains(dateutils.Day(tx.Date)) {
			continue
		}
		if dir != "" && tx.Direction != dir {
			continue
		}
		out = append(out, tx)
	}
	return out
}

func sumDecimal(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// round2 rounds to two decimal places, the precision used in reports.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
