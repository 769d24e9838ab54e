// Package chatbot routes free-form Vietnamese questions about personal
// spending to the matching analytics operation and phrases the answer.
package chatbot

import (
	"fmt"
	"strings"
	"time"

	"tdnguyen/vispend/internal/analytics"
	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"

	"github.com/shopspring/decimal"
)

// Bot answers spending questions over an in-memory transaction snapshot.
type Bot struct {
	analyzer *analytics.Analyzer
	logger   logging.Logger
}

// New creates a Bot backed by the given analyzer.
func New(analyzer *analytics.Analyzer, logger logging.Logger) *Bot {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Bot{analyzer: analyzer, logger: logger}
}

// Reply picks an intent from the message keywords and answers from the
// snapshot. Unknown messages get a short usage hint.
func (b *Bot) Reply(message string, snapshot []models.Transaction, budgets []models.Budget, now time.Time) string {
	msg := strings.ToLower(strings.TrimSpace(message))

	b.logger.WithField(logging.FieldQuery, msg).Debug("Routing chat message")

	switch {
	case containsAny(msg, "chi bao nhiêu", "tổng", "tổng cộng"):
		return b.expenseSummary(snapshot, now)
	case containsAny(msg, "thu bao nhiêu", "thu nhập"):
		return b.incomeSummary(snapshot, now)
	case containsAny(msg, "số dư", "còn lại", "balance"):
		return b.balanceSummary(snapshot, now)
	case containsAny(msg, "dự đoán", "predict", "tháng sau"):
		return b.predictionSummary(snapshot, now)
	case containsAny(msg, "bất thường", "anomaly", "lạ"):
		return b.anomalySummary(snapshot, now)
	case containsAny(msg, "tiết kiệm", "savings", "gợi ý"):
		return b.savingsSummary(snapshot, budgets, now)
	default:
		return helpText
	}
}

const helpText = "Tôi có thể giúp bạn:\n" +
	"• Hỏi tổng chi tiêu: \"tháng này chi bao nhiêu?\"\n" +
	"• Hỏi thu nhập: \"thu nhập tháng này?\"\n" +
	"• Xem số dư: \"số dư còn lại?\"\n" +
	"• Dự đoán chi tiêu: \"dự đoán tháng sau\"\n" +
	"• Tìm giao dịch bất thường: \"có gì bất thường không?\"\n" +
	"• Gợi ý tiết kiệm: \"làm sao để tiết kiệm?\""

func containsAny(msg string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// currentMonth returns the window from the start of now's month to today.
func currentMonth(now time.Time) models.DateRange {
	return models.DateRange{
		Start: dateutils.StartOfMonth(now),
		End:   dateutils.Day(now),
	}
}

func (b *Bot) expenseSummary(snapshot []models.Transaction, now time.Time) string {
	total := sumInWindow(snapshot, currentMonth(now), models.DirectionExpense)
	return fmt.Sprintf("Tháng này bạn đã chi %s VNĐ.", models.FormatGrouped(total))
}

func (b *Bot) incomeSummary(snapshot []models.Transaction, now time.Time) string {
	total := sumInWindow(snapshot, currentMonth(now), models.DirectionIncome)
	return fmt.Sprintf("Tháng này bạn đã thu %s VNĐ.", models.FormatGrouped(total))
}

func (b *Bot) balanceSummary(snapshot []models.Transaction, now time.Time) string {
	r := currentMonth(now)
	income := sumInWindow(snapshot, r, models.DirectionIncome)
	expense := sumInWindow(snapshot, r, models.DirectionExpense)
	balance := income.Sub(expense)
	return fmt.Sprintf("Số dư tháng này: %s VNĐ (thu %s - chi %s).",
		models.FormatGrouped(balance), models.FormatGrouped(income), models.FormatGrouped(expense))
}

func (b *Bot) predictionSummary(snapshot []models.Transaction, now time.Time) string {
	p := b.analyzer.PredictNextMonth(snapshot, now)
	if p.BasedOnMonths == 0 {
		return "Chưa đủ dữ liệu để dự đoán chi tiêu tháng sau."
	}
	return fmt.Sprintf("Dự đoán tháng sau bạn sẽ chi khoảng %.0f VNĐ (dựa trên %d tháng gần nhất, độ tin cậy: %s).",
		p.PredictedAmount, p.BasedOnMonths, p.Confidence)
}

func (b *Bot) anomalySummary(snapshot []models.Transaction, now time.Time) string {
	anomalies := b.analyzer.DetectAnomalies(snapshot, 30, now)
	if len(anomalies) == 0 {
		return "Không phát hiện giao dịch bất thường trong 30 ngày qua. 👍"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Phát hiện %d giao dịch bất thường trong 30 ngày qua:\n", len(anomalies))
	for _, an := range anomalies {
		fmt.Fprintf(&sb, "• %s: %s VNĐ ngày %s (gấp %.1f lần mức lệch chuẩn)\n",
			an.Category, models.FormatGrouped(an.Amount), dateutils.ToISODate(an.Date), an.Deviation)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (b *Bot) savingsSummary(snapshot []models.Transaction, budgets []models.Budget, now time.Time) string {
	plan := b.analyzer.SuggestSavingsPlan(snapshot, budgets, now)
	if len(plan.Suggestions) == 0 {
		return "👍 Chi tiêu của bạn đang hợp lý! Hãy tiếp tục duy trì."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Bạn có thể tiết kiệm khoảng %s VNĐ/tháng:\n", models.FormatGrouped(plan.TotalPotentialSavings))
	for _, s := range plan.Suggestions {
		fmt.Fprintf(&sb, "• %s\n", s.Suggestion)
	}
	for _, rec := range plan.OverallRecommendation {
		fmt.Fprintf(&sb, "%s\n", rec)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func sumInWindow(snapshot []models.Transaction, r models.DateRange, dir models.Direction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range snapshot {
		if tx.Direction != dir || !r.Contains(dateutils.Day(tx.Date)) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}
