// Package receipt handles the receipt normalization command
package receipt

import (
	"fmt"
	"time"

	"tdnguyen/vispend/cmd/common"
	"tdnguyen/vispend/cmd/root"
	"tdnguyen/vispend/internal/config"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/snapshot"

	"github.com/spf13/cobra"
)

var (
	linesFile string
	save      bool
)

// Cmd represents the receipt command
var Cmd = &cobra.Command{
	Use:   "receipt",
	Short: "Build a transaction from receipt OCR output",
	Long: `Build a transaction from recognized receipt lines. The input is a
CSV file with text and confidence columns as produced by the OCR engine.`,
	Run: receiptFunc,
}

func init() {
	Cmd.Flags().StringVarP(&linesFile, "lines", "l", "", "OCR lines CSV file (required)")
	Cmd.Flags().BoolVar(&save, "save", false, "Append the extracted transaction to the snapshot file")
	if err := Cmd.MarkFlagRequired("lines"); err != nil {
		panic(err)
	}
}

func receiptFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()

	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)

	lines, err := snapshot.ReadOCRLines(linesFile)
	if err != nil {
		root.Log.Fatalf("Failed to read OCR lines: %v", err)
	}

	result, err := pipeline.Normalizer.Normalize(lines, time.Now())
	if err != nil {
		root.Log.Fatalf("Receipt normalization failed: %v", err)
	}

	tx := result.Transaction
	fmt.Printf("Số tiền:    %s VNĐ\n", models.FormatGrouped(tx.Amount))
	fmt.Printf("Danh mục:   %s\n", categoryOrDefault(tx))
	fmt.Printf("Ngày:       %s\n", tx.Date.Format("2006-01-02"))
	fmt.Printf("Mô tả:      %s\n", tx.Description)
	if result.Merchant != "" {
		fmt.Printf("Cửa hàng:   %s\n", result.Merchant)
	}

	if save {
		saved := models.Transaction{
			Amount:      tx.Amount,
			Category:    categoryOrDefault(tx),
			Direction:   tx.Direction,
			Date:        tx.Date,
			Description: tx.Description,
		}
		if err := snapshot.Append(saved, root.SharedFlags.Snapshot); err != nil {
			root.Log.Fatalf("Failed to save transaction: %v", err)
		}
		root.Log.Infof("Transaction saved to %s", root.SharedFlags.Snapshot)
	}
}

func categoryOrDefault(tx models.ExtractedTransaction) string {
	if tx.Category != "" {
		return tx.Category
	}
	if tx.Direction == models.DirectionIncome {
		return models.CategoryOtherIncome
	}
	return models.CategoryOther
}
