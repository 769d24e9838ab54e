// Package classifier maps Vietnamese text fragments to a category of the
// fixed taxonomy and a transaction direction. Matching is by substring
// containment; across groups the longest matched keyword wins, ties broken
// by taxonomy order.
package classifier

import (
	"strings"
	"unicode/utf8"

	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/taxonomy"
)

// Income wording is checked before expense wording, so a sentence carrying
// both ("bán ... mua ...") classifies as income.
var (
	incomeKeywords  = []string{"thu", "nhận", "lương", "kiếm", "bán", "doanh thu"}
	expenseKeywords = []string{"chi", "tiêu", "mua", "trả", "thanh toán"}
)

// Classifier assigns categories and directions. It is stateless after
// construction and safe for concurrent use.
type Classifier struct {
	taxonomy *taxonomy.Taxonomy
	logger   logging.Logger
}

// New creates a Classifier over the given taxonomy.
func New(tax *taxonomy.Taxonomy, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Classifier{
		taxonomy: tax,
		logger:   logger.WithField(logging.FieldComponent, "classifier"),
	}
}

// Classify returns the category whose matched keyword is longest, or false
// when no keyword of any group is contained in the text.
func (c *Classifier) Classify(text string) (string, bool) {
	text = strings.ToLower(text)

	bestLen := 0
	bestName := ""
	for _, group := range c.taxonomy.Groups() {
		// First matching keyword ends the scan of this group.
		for _, keyword := range group.Keywords {
			if !strings.Contains(text, keyword) {
				continue
			}
			if n := utf8.RuneCountInString(keyword); n > bestLen {
				bestLen = n
				bestName = group.Name
				c.logger.WithFields(
					logging.Field{Key: logging.FieldKeyword, Value: keyword},
					logging.Field{Key: logging.FieldCategory, Value: group.Name},
				).Debug("Keyword match")
			}
			break
		}
	}

	if bestName == "" {
		return "", false
	}
	return bestName, true
}

// Direction tells whether the text describes income or an expense.
// Defaults to expense when neither wording is present.
func (c *Classifier) Direction(text string) models.Direction {
	text = strings.ToLower(text)

	for _, keyword := range incomeKeywords {
		if strings.Contains(text, keyword) {
			return models.DirectionIncome
		}
	}
	for _, keyword := range expenseKeywords {
		if strings.Contains(text, keyword) {
			return models.DirectionExpense
		}
	}
	return models.DirectionExpense
}

// Taxonomy exposes the classifier's taxonomy for callers that need category
// metadata (direction of a category name, tip lookup).
func (c *Classifier) Taxonomy() *taxonomy.Taxonomy {
	return c.taxonomy
}
