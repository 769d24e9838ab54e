// Package queryparser turns Vietnamese analytics questions into a structured
// query (category, time window, aggregation kind) and answers them over a
// transaction snapshot.
package queryparser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/taxonomy"
)

var monthNumberRe = regexp.MustCompile(`tháng\s*(\d+)`)

// Parser parses natural-language analytics questions. Stateless.
type Parser struct {
	taxonomy *taxonomy.Taxonomy
	logger   logging.Logger
}

// New creates a Parser over the given taxonomy.
func New(tax *taxonomy.Taxonomy, logger logging.Logger) *Parser {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Parser{
		taxonomy: tax,
		logger:   logger.WithField(logging.FieldComponent, "queryparser"),
	}
}

// Parse extracts category, time window and aggregation kind from a question.
//
// The time-window checks are deliberately independent rather than mutually
// exclusive: when several temporal keywords co-occur, the last matching
// check wins (year over week over month). Likewise "bao nhiêu lần" is
// captured by the earlier "bao nhiêu" check and classifies as sum; this
// mirrors the shipped behavior and changing it is a product decision.
func (p *Parser) Parse(text string, now time.Time) models.Query {
	text = strings.ToLower(strings.TrimSpace(text))
	q := models.Query{Aggregation: models.AggregationList}

	// Category: first group with any keyword contained in the question.
	for _, group := range p.taxonomy.Groups() {
		for _, keyword := range group.Keywords {
			if strings.Contains(text, keyword) {
				q.Category = group.Name
				break
			}
		}
		if q.Category != "" {
			break
		}
	}

	q.Window = p.parseWindow(text, now)

	switch {
	case strings.Contains(text, "bao nhiêu") || strings.Contains(text, "tổng"):
		q.Aggregation = models.AggregationSum
	case strings.Contains(text, "bao nhiêu lần") || strings.Contains(text, "mấy lần"):
		q.Aggregation = models.AggregationCount
	case strings.Contains(text, "trung bình") || strings.Contains(text, "average"):
		q.Aggregation = models.AggregationAverage
	}

	p.logger.WithFields(
		logging.Field{Key: logging.FieldQuery, Value: text},
		logging.Field{Key: logging.FieldCategory, Value: q.Category},
		logging.Field{Key: "aggregation", Value: string(q.Aggregation)},
	).Debug("Query parsed")

	return q
}

func (p *Parser) parseWindow(text string, now time.Time) models.DateRange {
	var window models.DateRange
	today := dateutils.Day(now)

	if strings.Contains(text, "tháng này") || strings.Contains(text, "tháng hiện tại") {
		window = models.DateRange{
			Start: dateutils.StartOfMonth(today),
			End:   dateutils.EndOfMonth(today),
		}
	} else if strings.Contains(text, "tháng") {
		if m := monthNumberRe.FindStringSubmatch(text); m != nil {
			if month, err := strconv.Atoi(m[1]); err == nil && month >= 1 && month <= 12 {
				start, end := dateutils.MonthRange(today.Year(), time.Month(month), today.Location())
				window = models.DateRange{Start: start, End: end}
			}
		}
	}

	if strings.Contains(text, "tuần") || strings.Contains(text, "week") {
		window = models.DateRange{Start: dateutils.StartOfWeek(today), End: today}
	}

	if strings.Contains(text, "năm") {
		window = models.DateRange{
			Start: dateutils.StartOfYear(today),
			End:   dateutils.EndOfYear(today),
		}
	}

	return window
}
