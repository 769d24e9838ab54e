// Package analyze handles the analytics report commands
package analyze

import (
	"time"

	"tdnguyen/vispend/cmd/common"
	"tdnguyen/vispend/cmd/root"
	"tdnguyen/vispend/internal/config"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/snapshot"

	"github.com/spf13/cobra"
)

var (
	days        int
	budgetsFile string
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Produce spending reports",
	Long:  `Produce trend, forecast, anomaly and savings reports from the transaction snapshot.`,
}

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Weekly spending trend over the analysis window",
	Run:   trendFunc,
}

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Forecast next month's spending",
	Run:   predictFunc,
}

var anomalyCmd = &cobra.Command{
	Use:   "anomaly",
	Short: "Flag unusually large expenses",
	Run:   anomalyFunc,
}

var savingsCmd = &cobra.Command{
	Use:   "savings",
	Short: "Suggest a prioritized savings plan",
	Run:   savingsFunc,
}

func init() {
	Cmd.PersistentFlags().IntVarP(&days, "days", "d", 0, "Analysis window in days (default from configuration)")
	savingsCmd.Flags().StringVarP(&budgetsFile, "budgets", "b", "", "Budgets YAML file")

	Cmd.AddCommand(trendCmd)
	Cmd.AddCommand(predictCmd)
	Cmd.AddCommand(anomalyCmd)
	Cmd.AddCommand(savingsCmd)
}

func trendFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)
	transactions := common.LoadSnapshot(root.SharedFlags.Snapshot, log)

	window := days
	if window <= 0 {
		window = cfg.Analytics.TrendDays
	}

	report := pipeline.Analyzer.AnalyzeTrends(transactions, window, time.Now())
	common.WriteReport(report, root.SharedFlags.Output, log)
}

func predictFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)
	transactions := common.LoadSnapshot(root.SharedFlags.Snapshot, log)

	report := pipeline.Analyzer.PredictNextMonth(transactions, time.Now())
	common.WriteReport(report, root.SharedFlags.Output, log)
}

func anomalyFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)
	transactions := common.LoadSnapshot(root.SharedFlags.Snapshot, log)

	window := days
	if window <= 0 {
		window = cfg.Analytics.AnomalyDays
	}

	report := pipeline.Analyzer.DetectAnomalies(transactions, window, time.Now())
	common.WriteReport(report, root.SharedFlags.Output, log)
}

func savingsFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)
	transactions := common.LoadSnapshot(root.SharedFlags.Snapshot, log)

	path := budgetsFile
	if path == "" {
		path = cfg.Data.BudgetsFile
	}
	budgets, err := snapshot.LoadBudgets(path)
	if err != nil {
		root.Log.Fatalf("Failed to load budgets: %v", err)
	}

	report := pipeline.Analyzer.SuggestSavingsPlan(transactions, budgets, time.Now())
	common.WriteReport(report, root.SharedFlags.Output, log)
}
