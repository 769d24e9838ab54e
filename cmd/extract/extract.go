// Package extract handles the free-text extraction command
package extract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tdnguyen/vispend/cmd/common"
	"tdnguyen/vispend/cmd/root"
	"tdnguyen/vispend/internal/classifier"
	"tdnguyen/vispend/internal/config"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/snapshot"

	"github.com/spf13/cobra"
)

var save bool

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract [text]",
	Short: "Extract a transaction from a Vietnamese sentence",
	Long: `Extract amount, category, direction and date from a free-form
Vietnamese sentence such as "hôm qua chi 50k ăn sáng".`,
	Args: cobra.MinimumNArgs(1),
	Run:  extractFunc,
}

func init() {
	Cmd.Flags().BoolVar(&save, "save", false, "Append the extracted transaction to the snapshot file")
}

func extractFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	text := strings.Join(args, " ")

	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)

	result, err := pipeline.Extractor.Extract(text, time.Now())
	if err != nil {
		root.Log.Fatalf("Extraction failed: %v", err)
	}

	if result.Category == "" {
		result.Category = suggestCategory(cfg, pipeline, text, result.Direction)
	}

	printResult(result)

	if save {
		tx := models.Transaction{
			Amount:      result.Amount,
			Category:    result.Category,
			Direction:   result.Direction,
			Date:        result.Date,
			Description: result.Description,
		}
		if err := snapshot.Append(tx, root.SharedFlags.Snapshot); err != nil {
			root.Log.Fatalf("Failed to save transaction: %v", err)
		}
		root.Log.Infof("Transaction saved to %s", root.SharedFlags.Snapshot)
	}
}

// suggestCategory consults the Gemini fallback when enabled, otherwise
// falls back to the catch-all category for the direction.
func suggestCategory(cfg *config.Config, pipeline *common.Pipeline, text string, dir models.Direction) string {
	if cfg.AI.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		defer cancel()

		ai, err := classifier.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model, logging.GetLogger())
		if err != nil {
			root.Log.Warnf("AI fallback unavailable: %v", err)
		} else {
			defer func() {
				if err := ai.Close(); err != nil {
					root.Log.Warnf("Failed to close AI client: %v", err)
				}
			}()
			if name, ok := pipeline.Classifier.ClassifyWithFallback(ctx, ai, text); ok {
				return name
			}
		}
	}

	if dir == models.DirectionIncome {
		return models.CategoryOtherIncome
	}
	return models.CategoryOther
}

func printResult(result models.ExtractedTransaction) {
	fmt.Printf("Số tiền:    %s VNĐ\n", models.FormatGrouped(result.Amount))
	fmt.Printf("Danh mục:   %s\n", result.Category)
	if result.Direction == models.DirectionIncome {
		fmt.Println("Loại:       thu nhập")
	} else {
		fmt.Println("Loại:       chi tiêu")
	}
	fmt.Printf("Ngày:       %s\n", result.Date.Format("2006-01-02"))
	fmt.Printf("Mô tả:      %s\n", result.Description)
}
