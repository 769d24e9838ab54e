// Package receipt post-processes OCR output of photographed receipts into
// transaction candidates. It filters low-confidence lines, reuses the
// free-text extractor over the recovered document, then overrides amount and
// date with receipt-specific parsing when that is more confident.
package receipt

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"tdnguyen/vispend/internal/amountparser"
	"tdnguyen/vispend/internal/dateresolver"
	"tdnguyen/vispend/internal/extracterror"
	"tdnguyen/vispend/internal/extractor"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
)

const (
	// Lines at or below this recognition confidence are noise.
	defaultMinConfidence = 0.30
	// Documents shorter than this carry no usable signal.
	minDocumentLength = 10
	// Merchant names are looked for in the top lines of the receipt.
	merchantScanLines = 5
)

var letterRe = regexp.MustCompile(`[a-zA-ZÀ-ỹ]`)

// Result is the outcome of normalizing one receipt. RawText is populated
// even on failure so callers can show what was recognized.
type Result struct {
	Transaction models.ExtractedTransaction
	RawText     string
	Merchant    string
}

// Normalizer converts OCR line output into a transaction candidate.
type Normalizer struct {
	extractor     *extractor.Extractor
	amounts       *amountparser.Parser
	dates         *dateresolver.Resolver
	minConfidence float64
	logger        logging.Logger
}

// New creates a Normalizer. minConfidence at or below zero selects the
// default threshold of 0.30.
func New(ext *extractor.Extractor, amounts *amountparser.Parser, dates *dateresolver.Resolver, minConfidence float64, logger logging.Logger) *Normalizer {
	if minConfidence <= 0 {
		minConfidence = defaultMinConfidence
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Normalizer{
		extractor:     ext,
		amounts:       amounts,
		dates:         dates,
		minConfidence: minConfidence,
		logger:        logger.WithField(logging.FieldComponent, "receipt"),
	}
}

// NormalizeImage recognizes a receipt image through the given engine and
// normalizes the recovered lines. Recognition failures surface as
// OCRInputError so callers handle them like any other unusable input.
func (n *Normalizer) NormalizeImage(ctx context.Context, reader LineReader, image []byte, now time.Time) (Result, error) {
	lines, err := reader.ReadLines(ctx, image)
	if err != nil {
		n.logger.WithError(err).Warn("Receipt recognition failed")
		return Result{}, &extracterror.OCRInputError{
			Reason: "recognition failed",
			Err:    err,
		}
	}
	return n.Normalize(lines, now)
}

// Normalize runs the full receipt pipeline over recognized lines.
func (n *Normalizer) Normalize(lines []models.OCRLine, now time.Time) (Result, error) {
	doc := n.joinConfidentLines(lines)
	result := Result{RawText: doc}

	if utf8.RuneCountInString(strings.TrimSpace(doc)) < minDocumentLength {
		n.logger.WithField(logging.FieldCount, len(lines)).Debug("Receipt text too short after filtering")
		return result, &extracterror.OCRInputError{
			RawText: doc,
			Reason:  "recovered text too short",
		}
	}

	// First pass: the free-text extractor over the whole document. A missing
	// amount is not fatal yet, the receipt-specific pass may still find one.
	tx, _ := n.extractor.Extract(doc, now)
	tx.RawInput = doc
	// The free-text pass copies the whole document into Description; receipts
	// build their own description from the merchant line instead.
	tx.Description = ""

	// Receipt-mode amount wins when it is present and larger, since receipt
	// totals routinely dwarf item prices the free-text pass may have caught.
	if amount, ok := n.amounts.ParseReceipt(doc); ok {
		if !tx.HasAmount || amount.GreaterThan(tx.Amount) {
			tx.Amount = amount
			tx.HasAmount = true
		}
	}

	if date, ok := n.dates.ResolveReceipt(doc, now); ok {
		tx.Date = date
	}

	result.Merchant = n.findMerchant(doc)
	if tx.Description == "" {
		if result.Merchant != "" {
			tx.Description = "Mua tại " + result.Merchant
		} else {
			tx.Description = n.fallbackDescription(doc)
		}
	}

	result.Transaction = tx

	if !tx.HasAmount {
		return result, &extracterror.ExtractionError{
			Input:  doc,
			Reason: "no amount resolvable from receipt text",
		}
	}

	n.logger.WithFields(
		logging.Field{Key: logging.FieldAmount, Value: tx.Amount.String()},
		logging.Field{Key: logging.FieldMerchant, Value: result.Merchant},
	).Debug("Receipt normalized")

	return result, nil
}

// joinConfidentLines drops low-confidence lines and joins the rest into one
// newline-separated document.
func (n *Normalizer) joinConfidentLines(lines []models.OCRLine) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Confidence > n.minConfidence {
			kept = append(kept, strings.TrimSpace(line.Text))
		}
	}
	return strings.Join(kept, "\n")
}

// findMerchant scans the top of the receipt for the first plausible shop
// name: a line of 4 to 49 characters containing at least one letter.
func (n *Normalizer) findMerchant(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) > merchantScanLines {
		lines = lines[:merchantScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		count := utf8.RuneCountInString(line)
		if count > 3 && count < 50 && letterRe.MatchString(line) {
			return line
		}
	}
	return ""
}

// fallbackDescription joins the first short non-empty lines of the receipt.
func (n *Normalizer) fallbackDescription(doc string) string {
	lines := strings.Split(doc, "\n")
	if len(lines) > 3 {
		lines = lines[:3]
	}
	kept := make([]string, 0, 2)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && utf8.RuneCountInString(line) < 100 {
			kept = append(kept, line)
		}
		if len(kept) == 2 {
			break
		}
	}
	return strings.Join(kept, " | ")
}
