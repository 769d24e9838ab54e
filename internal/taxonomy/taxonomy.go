// Package taxonomy holds the fixed category taxonomy: ordered keyword groups
// with a display name and a transaction direction, plus the per-category
// savings-tip tables. The taxonomy is loaded once (from YAML or compiled-in
// defaults) and is read-only afterwards; group order is significant because
// classification ties are broken by enumeration order.
package taxonomy

import (
	"fmt"

	"tdnguyen/vispend/internal/models"
)

// Group is one category keyword group.
type Group struct {
	Name      string           `yaml:"name"`
	Direction models.Direction `yaml:"direction"`
	Keywords  []string         `yaml:"keywords"`
}

// file is the on-disk YAML shape.
type file struct {
	Categories []Group             `yaml:"categories"`
	Tips       map[string][]string `yaml:"tips"`
}

// Taxonomy is the immutable category configuration.
type Taxonomy struct {
	groups []Group
	tips   map[string][]string
}

// New builds a Taxonomy from the given ordered groups and tip table.
func New(groups []Group, tips map[string][]string) *Taxonomy {
	return &Taxonomy{groups: groups, tips: tips}
}

// Groups returns the ordered keyword groups. Callers must not modify the
// returned slice.
func (t *Taxonomy) Groups() []Group {
	return t.groups
}

// DirectionOf returns the direction of the named category, defaulting to
// expense for unknown names.
func (t *Taxonomy) DirectionOf(category string) models.Direction {
	for _, g := range t.groups {
		if g.Name == category {
			return g.Direction
		}
	}
	return models.DirectionExpense
}

// ExcludedFromSavings reports whether the category should never be suggested
// for cut-backs.
func (t *Taxonomy) ExcludedFromSavings(category string) bool {
	return category == models.CategorySavings || category == models.CategoryInvestment
}

// TipsFor returns the actionable saving tips for a category, falling back to
// generic tips when the category has no dedicated entry. The result always
// has exactly three entries.
func (t *Taxonomy) TipsFor(category string) []string {
	tips, ok := t.tips[category]
	if !ok || len(tips) == 0 {
		tips = genericTips(category)
	}
	if len(tips) < 3 {
		tips = append(tips,
			fmt.Sprintf("Lập kế hoạch chi tiêu cho %s", category),
			"So sánh giá trước khi mua",
		)
	}
	out := make([]string, 3)
	copy(out, tips[:3])
	return out
}

func genericTips(category string) []string {
	return []string{
		fmt.Sprintf("Xem xét giảm chi tiêu cho %s", category),
		fmt.Sprintf("Lập kế hoạch chi tiêu cho %s", category),
		"So sánh giá trước khi mua",
		fmt.Sprintf("Đặt mục tiêu giảm 10-20%% chi tiêu cho %s", category),
	}
}
