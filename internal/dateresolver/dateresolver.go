// Package dateresolver resolves Vietnamese relative date phrases and
// receipt-printed dates to calendar dates.
package dateresolver

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
)

// relativePhrase maps a phrase to a day offset from the evaluation date.
// Order matters: the first phrase found in the text wins.
type relativePhrase struct {
	phrase string
	offset int
}

var relativePhrases = []relativePhrase{
	{"hôm nay", 0},
	{"hôm qua", -1},
	{"ngày mai", 1},
}

// Printed receipt dates, tried in order. The first pattern with a match that
// parses to a real calendar date wins.
var receiptDatePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`),
	regexp.MustCompile(`(\d{2,4})[/\-](\d{1,2})[/\-](\d{1,2})`),
	regexp.MustCompile(`Ngày[:\s]+(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`),
}

// Resolver turns date phrases into calendar dates. Stateless.
type Resolver struct {
	logger logging.Logger
}

// New creates a Resolver.
func New(logger logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Resolver{logger: logger.WithField(logging.FieldComponent, "dateresolver")}
}

// Resolve maps a relative phrase in the text to a calendar date, defaulting
// to the evaluation date when no phrase is present.
func (r *Resolver) Resolve(text string, now time.Time) time.Time {
	text = strings.ToLower(text)
	today := dateutils.Day(now)

	for _, p := range relativePhrases {
		if strings.Contains(text, p.phrase) {
			return today.AddDate(0, 0, p.offset)
		}
	}
	return today
}

// ResolveReceipt recovers a printed date from receipt text. Field order is
// disambiguated by magnitude: a first field above 12 must be a day, one
// above 31 must be a year; two-digit years are taken as 2000+YY.
func (r *Resolver) ResolveReceipt(text string, now time.Time) (time.Time, bool) {
	for _, re := range receiptDatePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		f1, err1 := strconv.Atoi(m[1])
		f2, err2 := strconv.Atoi(m[2])
		f3, err3 := strconv.Atoi(m[3])
		if err1 != nil || err2 != nil || err3 != nil {
			continue
		}

		var day, month, year int
		if len(m[3]) == 4 {
			switch {
			case f1 > 31:
				year, month, day = f1, f2, f3
			case f1 > 12:
				day, month, year = f1, f2, f3
			default:
				month, day, year = f1, f2, f3
			}
		} else {
			day, month, year = f1, f2, 2000+f3
		}

		if !dateutils.ValidDate(year, month, day) {
			continue
		}

		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		r.logger.WithField(logging.FieldDate, dateutils.ToISODate(d)).Debug("Receipt date recovered")
		return d, true
	}
	return time.Time{}, false
}
