package amountparser

import (
	"regexp"
	"strconv"
	"strings"

	"tdnguyen/vispend/internal/logging"

	"github.com/shopspring/decimal"
)

// Receipt amounts outside this range are OCR noise (phone numbers, item
// counts, tax codes).
const (
	minPlausibleAmount = 1_000
	maxPlausibleAmount = 1_000_000_000
)

// Receipt pattern classes, ordered from most to least confident. Unlike the
// free-text pool, the first class with a plausible match wins outright.
var receiptPatternClasses = []*regexp.Regexp{
	// Currency-suffixed numbers.
	regexp.MustCompile(`(?i)(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d+)?)\s*(?:₫|đ|vnd|vnđ|dong)`),
	// Numbers following a total marker.
	regexp.MustCompile(`(?i)(?:tổng|tong|total|tong cong|tổng cộng)[:\s]*(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d+)?)`),
	// Any grouped numeral.
	regexp.MustCompile(`(\d{1,3}(?:[.,]\d{3})*(?:[.,]\d+)?)`),
}

// ParseReceipt extracts the most plausible total from recognized receipt
// text. Separator disambiguation is per token: a trailing group of at most
// two digits after a dot or comma is a decimal fraction, anything else is
// thousands grouping.
func (p *Parser) ParseReceipt(text string) (decimal.Decimal, bool) {
	for i, re := range receiptPatternClasses {
		best := 0.0
		found := false
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			value, err := normalizeReceiptNumber(m[1])
			if err != nil {
				continue
			}
			if value < minPlausibleAmount || value > maxPlausibleAmount {
				continue
			}
			if !found || value > best {
				best = value
				found = true
			}
		}
		if found {
			p.logger.WithFields(
				logging.Field{Key: logging.FieldAmount, Value: best},
				logging.Field{Key: logging.FieldPattern, Value: i},
			).Debug("Amount from receipt pattern class")
			return decimal.NewFromInt(int64(best)), true
		}
	}
	return decimal.Zero, false
}

// normalizeReceiptNumber resolves the mixed Vietnamese "1.234.567" and
// western "1,234,567" grouping styles into a parseable float.
func normalizeReceiptNumber(s string) (float64, error) {
	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	var clean string
	switch {
	case hasDot && hasComma:
		// Dot groups thousands, comma is the decimal point.
		clean = strings.ReplaceAll(s, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case hasComma:
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			clean = strings.ReplaceAll(s, ",", ".")
		} else {
			clean = strings.ReplaceAll(s, ",", "")
		}
	case hasDot:
		parts := strings.Split(s, ".")
		if len(parts) == 2 && len(parts[1]) <= 2 {
			clean = s
		} else {
			clean = strings.ReplaceAll(s, ".", "")
		}
	default:
		clean = s
	}

	return strconv.ParseFloat(clean, 64)
}
