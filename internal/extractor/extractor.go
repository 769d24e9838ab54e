// Package extractor turns a free-form Vietnamese sentence into a structured
// transaction candidate: amount, category, direction and date.
package extractor

import (
	"strings"
	"time"

	"tdnguyen/vispend/internal/amountparser"
	"tdnguyen/vispend/internal/classifier"
	"tdnguyen/vispend/internal/dateresolver"
	"tdnguyen/vispend/internal/extracterror"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
)

// Extractor composes the amount parser, classifier and date resolver into a
// single pure function of (text, evaluation date). It holds no mutable state
// and is safe for concurrent use.
type Extractor struct {
	amounts    *amountparser.Parser
	classifier *classifier.Classifier
	dates      *dateresolver.Resolver
	logger     logging.Logger
}

// New creates an Extractor from its three leaf components.
func New(amounts *amountparser.Parser, cls *classifier.Classifier, dates *dateresolver.Resolver, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{
		amounts:    amounts,
		classifier: cls,
		dates:      dates,
		logger:     logger.WithField(logging.FieldComponent, "extractor"),
	}
}

// Extract builds a transaction candidate from text. Category, direction and
// date always resolve to a value (absent category stays empty, direction
// defaults to expense, date defaults to the evaluation date); a missing
// amount is the one fatal condition and yields an ExtractionError alongside
// the partial result for diagnostics.
func (e *Extractor) Extract(text string, now time.Time) (models.ExtractedTransaction, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	result := models.ExtractedTransaction{
		Description: normalized,
		Direction:   models.DirectionExpense,
		Date:        e.dates.Resolve(normalized, now),
		RawInput:    text,
	}

	if amount, ok := e.amounts.Parse(normalized); ok {
		result.Amount = amount
		result.HasAmount = true
	}

	result.Direction = e.classifier.Direction(normalized)
	if category, ok := e.classifier.Classify(normalized); ok {
		result.Category = category
	}

	if !result.HasAmount {
		e.logger.Debug("No amount resolvable from text")
		return result, &extracterror.ExtractionError{
			Input:  text,
			Reason: "no amount found",
		}
	}

	e.logger.WithFields(
		logging.Field{Key: logging.FieldAmount, Value: result.Amount.String()},
		logging.Field{Key: logging.FieldCategory, Value: result.Category},
		logging.Field{Key: logging.FieldDirection, Value: string(result.Direction)},
		logging.Field{Key: logging.FieldDate, Value: result.Date.Format("2006-01-02")},
	).Debug("Transaction extracted")

	return result, nil
}
