// Package amountparser extracts monetary amounts (VND) from free-form
// Vietnamese text and from receipt OCR output.
//
// Free-text mode collects every match of every currency pattern into one
// candidate pool and picks the largest value. Receipt mode tries pattern
// classes in order of confidence and stops at the first class that yields a
// plausible match, then picks the largest value within that class only.
package amountparser

import (
	"regexp"
	"strconv"
	"strings"

	"tdnguyen/vispend/internal/logging"

	"github.com/shopspring/decimal"
)

// Vietnamese currency shorthand: "5 triệu" is 5,000,000, "50k" and
// "50 ngàn"/"50 nghìn" are 50,000, and đ/đồng/vnd suffixes mark plain
// amounts with optional dot thousands grouping.
//
// RE2 has no unicode-aware \b, so the trailing boundary is written as
// "followed by end-of-input or a non-letter, non-digit rune".
const boundary = `(?:$|[^\p{L}\d])`

type pattern struct {
	re         *regexp.Regexp
	multiplier float64
}

var freeTextPatterns = []pattern{
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*triệu` + boundary), 1000000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*k` + boundary), 1000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*ngàn` + boundary), 1000},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*nghìn` + boundary), 1000},
	{regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*(?:,\d+)?)\s*đ` + boundary), 1},
	{regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*(?:,\d+)?)\s*đồng` + boundary), 1},
	{regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*(?:,\d+)?)\s*vnd` + boundary), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*đ` + boundary), 1},
	{regexp.MustCompile(`(\d+(?:\.\d+)?)\s*đồng` + boundary), 1},
}

var (
	longDigitRunRe = regexp.MustCompile(`\b(\d{4,})\b`)
	anyNumberRe    = regexp.MustCompile(`\b(\d+(?:\.\d+)?)\b`)
)

// Parser extracts amounts from text fragments. It is stateless and safe for
// concurrent use.
type Parser struct {
	logger logging.Logger
}

// New creates a Parser.
func New(logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{logger: logger.WithField(logging.FieldComponent, "amountparser")}
}

// Parse extracts the most plausible amount from a free-text fragment.
// The second return value is false when no amount is found at all.
func (p *Parser) Parse(text string) (decimal.Decimal, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	// Tier 1: currency-tagged numbers from every pattern, largest wins.
	best := 0.0
	found := false
	for _, pat := range freeTextPatterns {
		for _, m := range pat.re.FindAllStringSubmatch(text, -1) {
			value, err := normalizeCurrencyNumber(m[1])
			if err != nil {
				continue
			}
			value *= pat.multiplier
			if !found || value > best {
				best = value
				found = true
			}
		}
	}
	if found {
		p.logger.WithField(logging.FieldAmount, best).Debug("Amount from currency pattern")
		return decimal.NewFromInt(int64(best)), true
	}

	// Tier 2: the largest bare run of at least four digits.
	best = 0.0
	for _, m := range longDigitRunRe.FindAllStringSubmatch(text, -1) {
		value, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		if !found || value > best {
			best = value
			found = true
		}
	}
	if found {
		p.logger.WithField(logging.FieldAmount, best).Debug("Amount from bare digit run")
		return decimal.NewFromInt(int64(best)), true
	}

	// Tier 3: the first bare number anywhere, taken verbatim. Last resorts
	// prefer the earliest mention rather than the largest value.
	if m := anyNumberRe.FindStringSubmatch(text); m != nil {
		if d, err := decimal.NewFromString(m[1]); err == nil {
			p.logger.WithField(logging.FieldAmount, m[1]).Debug("Amount from first bare number")
			return d, true
		}
	}

	return decimal.Zero, false
}

// normalizeCurrencyNumber converts a free-text numeric token to a float,
// treating dots as thousands grouping and a comma as the decimal point.
func normalizeCurrencyNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
