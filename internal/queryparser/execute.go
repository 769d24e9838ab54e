package queryparser

import (
	"fmt"

	"tdnguyen/vispend/internal/models"

	"github.com/shopspring/decimal"
)

// listLimit caps how many matching transactions a list query returns.
const listLimit = 10

// Execute answers a parsed query over the supplied snapshot. The snapshot is
// never mutated; ordering of list results follows snapshot order.
func (p *Parser) Execute(q models.Query, snapshot []models.Transaction) models.QueryResult {
	matched := filter(q, snapshot)

	switch q.Aggregation {
	case models.AggregationSum:
		total := sumAmounts(matched)
		return models.QueryResult{
			ResultText: fmt.Sprintf("Tổng số tiền: %s VNĐ", models.FormatGrouped(total)),
			Amount:     total,
		}

	case models.AggregationCount:
		return models.QueryResult{
			ResultText: fmt.Sprintf("Số lượng giao dịch: %d", len(matched)),
			Count:      len(matched),
		}

	case models.AggregationAverage:
		avg := decimal.Zero
		if len(matched) > 0 {
			avg = sumAmounts(matched).Div(decimal.NewFromInt(int64(len(matched))))
		}
		return models.QueryResult{
			ResultText: fmt.Sprintf("Trung bình: %s VNĐ", models.FormatGrouped(avg)),
			Average:    avg,
		}

	default:
		top := matched
		if len(top) > listLimit {
			top = top[:listLimit]
		}
		return models.QueryResult{
			ResultText:   fmt.Sprintf("Tìm thấy %d giao dịch", len(matched)),
			Transactions: top,
		}
	}
}

func filter(q models.Query, snapshot []models.Transaction) []models.Transaction {
	matched := make([]models.Transaction, 0, len(snapshot))
	for _, tx := range snapshot {
		if q.Category != "" && tx.Category != q.Category {
			continue
		}
		if !q.Window.IsZero() && !q.Window.Contains(tx.Date) {
			continue
		}
		matched = append(matched, tx)
	}
	return matched
}

func sumAmounts(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}
