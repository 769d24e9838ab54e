// Package snapshot reads and writes the transaction snapshot the analytics
// layer works on. Snapshots are plain CSV files so they can be produced by
// any upstream store.
package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tdnguyen/vispend/internal/dateutils"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

var log = logging.GetLogger()

// Delimiter used for snapshot CSV files. Overridable via configuration.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for snapshot CSV input and output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// SetLogger replaces the package logger with a configured one.
func SetLogger(logger logging.Logger) {
	if logger == nil {
		return
	}
	log = logger
}

// Row is one snapshot CSV record. All fields are strings so the file stays
// human-editable; conversion to models.Transaction validates them.
type Row struct {
	Date        string `csv:"date"`
	Amount      string `csv:"amount"`
	Category    string `csv:"category"`
	Direction   string `csv:"direction"`
	Description string `csv:"description"`
}

// ToTransaction converts a CSV row into a Transaction.
func (r Row) ToTransaction() (models.Transaction, error) {
	date, err := time.Parse(dateutils.DateLayoutISO, r.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(r.Amount))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q: %w", r.Amount, err)
	}

	dir := models.Direction(strings.ToLower(strings.TrimSpace(r.Direction)))
	if dir != models.DirectionExpense && dir != models.DirectionIncome {
		return models.Transaction{}, fmt.Errorf("invalid direction %q", r.Direction)
	}

	category := strings.TrimSpace(r.Category)
	if category == "" {
		category = models.CategoryOther
	}

	return models.Transaction{
		Amount:      amount,
		Category:    category,
		Direction:   dir,
		Date:        date,
		Description: r.Description,
	}, nil
}

// FromTransaction converts a Transaction into a CSV row.
func FromTransaction(tx models.Transaction) Row {
	return Row{
		Date:        dateutils.ToISODate(tx.Date),
		Amount:      tx.Amount.String(),
		Category:    tx.Category,
		Direction:   string(tx.Direction),
		Description: tx.Description,
	}
}

// ReadFile loads a snapshot CSV into transactions. Rows that fail validation
// abort the load; a snapshot with bad rows is a data problem to surface, not
// to paper over.
func ReadFile(filePath string) ([]models.Transaction, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading transaction snapshot")

	file, err := os.Open(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to open snapshot file")
		return nil, fmt.Errorf("error opening snapshot file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = Delimiter
		return r
	})
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		log.WithError(err).Error("Failed to parse snapshot file")
		return nil, fmt.Errorf("error parsing snapshot file: %w", err)
	}

	transactions := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := row.ToTransaction()
		if err != nil {
			return nil, fmt.Errorf("snapshot row %d: %w", i+1, err)
		}
		transactions = append(transactions, tx)
	}

	log.WithField(logging.FieldCount, len(transactions)).Info("Successfully read snapshot")
	return transactions, nil
}

// WriteFile writes transactions to a snapshot CSV file, creating parent
// directories as needed.
func WriteFile(transactions []models.Transaction, filePath string) error {
	if transactions == nil {
		return fmt.Errorf("cannot write nil transactions to snapshot")
	}

	log.WithFields(
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)},
	).Info("Writing transaction snapshot")

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
		log.WithError(err).Error("Failed to create directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to create snapshot file")
		return fmt.Errorf("error creating snapshot file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]Row, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, FromTransaction(tx))
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		log.WithError(err).Error("Failed to marshal snapshot rows")
		return fmt.Errorf("error writing snapshot data: %w", err)
	}

	log.WithField(logging.FieldCount, len(rows)).Info("Successfully wrote snapshot")
	return nil
}

// Append adds a transaction to an existing snapshot file, creating the file
// when it does not exist yet.
func Append(tx models.Transaction, filePath string) error {
	existing, err := ReadFile(filePath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		existing = nil
	}
	return WriteFile(append(existing, tx), filePath)
}
