// Package query handles the natural-language query command
package query

import (
	"fmt"
	"strings"
	"time"

	"tdnguyen/vispend/cmd/common"
	"tdnguyen/vispend/cmd/root"
	"tdnguyen/vispend/internal/config"
	"tdnguyen/vispend/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the query command
var Cmd = &cobra.Command{
	Use:   "query [question]",
	Short: "Answer a Vietnamese spending question",
	Long: `Answer a natural-language spending question such as
"tháng này chi bao nhiêu cho ăn uống?" against the transaction snapshot.`,
	Args: cobra.MinimumNArgs(1),
	Run:  queryFunc,
}

func queryFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	question := strings.Join(args, " ")

	cfg := config.GetGlobalConfig()
	pipeline := common.BuildPipeline(cfg.OCR.MinConfidence, log)
	transactions := common.LoadSnapshot(root.SharedFlags.Snapshot, log)

	q := pipeline.Queries.Parse(question, time.Now())
	result := pipeline.Queries.Execute(q, transactions)

	fmt.Println(result.ResultText)
	for _, tx := range result.Transactions {
		fmt.Printf("  %s  %12s VNĐ  %-12s %s\n",
			tx.Date.Format("2006-01-02"), tx.Amount.String(), tx.Category, tx.Description)
	}
}
