// Package common contains shared functionality for command handlers
package common

import (
	"encoding/json"
	"fmt"
	"os"

	"tdnguyen/vispend/internal/amountparser"
	"tdnguyen/vispend/internal/analytics"
	"tdnguyen/vispend/internal/chatbot"
	"tdnguyen/vispend/internal/classifier"
	"tdnguyen/vispend/internal/dateresolver"
	"tdnguyen/vispend/internal/extractor"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/queryparser"
	"tdnguyen/vispend/internal/receipt"
	"tdnguyen/vispend/internal/snapshot"
	"tdnguyen/vispend/internal/taxonomy"
)

// Pipeline bundles the wired components each command picks from.
type Pipeline struct {
	Taxonomy   *taxonomy.Taxonomy
	Amounts    *amountparser.Parser
	Classifier *classifier.Classifier
	Dates      *dateresolver.Resolver
	Extractor  *extractor.Extractor
	Normalizer *receipt.Normalizer
	Queries    *queryparser.Parser
	Analyzer   *analytics.Analyzer
	Bot        *chatbot.Bot
}

// BuildPipeline wires the component graph. The taxonomy comes from the
// categories file when one is found, falling back to the built-in defaults.
func BuildPipeline(minOCRConfidence float64, log logging.Logger) *Pipeline {
	store := taxonomy.NewStore("", log)
	tax, err := store.Load()
	if err != nil {
		log.WithError(err).Fatal("Failed to load category taxonomy")
	}

	amounts := amountparser.New(log)
	cls := classifier.New(tax, log)
	dates := dateresolver.New(log)
	ext := extractor.New(amounts, cls, dates, log)
	analyzer := analytics.New(tax, log)

	return &Pipeline{
		Taxonomy:   tax,
		Amounts:    amounts,
		Classifier: cls,
		Dates:      dates,
		Extractor:  ext,
		Normalizer: receipt.New(ext, amounts, dates, minOCRConfidence, log),
		Queries:    queryparser.New(tax, log),
		Analyzer:   analyzer,
		Bot:        chatbot.New(analyzer, log),
	}
}

// LoadSnapshot reads the transaction snapshot, treating a missing file as an
// empty snapshot so analytics commands work before any data exists.
func LoadSnapshot(filePath string, log logging.Logger) []models.Transaction {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		log.WithField(logging.FieldFile, filePath).Warn("Snapshot file not found, starting empty")
		return nil
	}
	transactions, err := snapshot.ReadFile(filePath)
	if err != nil {
		log.WithError(err).Fatal("Failed to read transaction snapshot")
	}
	return transactions
}

// WriteReport marshals a report as indented JSON to the output file, or to
// stdout when no output file is given.
func WriteReport(report interface{}, outputFile string, log logging.Logger) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.WithError(err).Fatal("Failed to marshal report")
	}

	if outputFile == "" {
		fmt.Println(string(data))
		return
	}

	if err := os.WriteFile(outputFile, append(data, '\n'), models.PermissionReportFile); err != nil {
		log.WithError(err).Fatal("Failed to write report file")
	}
	log.WithField(logging.FieldFile, outputFile).Info("Report written")
}
