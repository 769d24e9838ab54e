// Package chat handles the conversational assistant command
package chat

import (
	"fmt"
	"strings"
	"time"

	"tdnguyen/vispend/cmd/common"
	"tdnguyen/vispend/cmd/root"
	"tdnguyen/vispend/internal/config"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/snapshot"

	"github.com/spf13/cobra"
)

var budgetsFile string

// Cmd represents the chat command
var Cmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Ask the spending assistant a question",
	Long: `Ask the assistant about your spending in plain Vietnamese, for
example "tháng này chi bao nhiêu?" or "làm sao để tiết kiệm?".`,
	Args: cobra.MinimumNArgs(1),
	Run:  chatFunc,
}

func init() {
	Cmd.Flags().StringVarP(&budgetsFile, "budgets", "b", "", "Budgets YAML file")
}

func chatFunc(cmd *cobra.Command, args []string) {
	log := logging.GetLogger()
	message := strings.Join(args, " ")

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

	fmt.Println(pipeline.Bot.Reply(message, transactions, budgets, time.Now()))
}
