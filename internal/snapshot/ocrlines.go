package snapshot

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"

	"github.com/gocarina/gocsv"
)

// ocrLineRow is one recognized line as exported by the OCR collaborator.
type ocrLineRow struct {
	Text       string `csv:"text"`
	Confidence string `csv:"confidence"`
}

// ReadOCRLines loads OCR output from a CSV file with text and confidence
// columns. Confidence values outside [0,1] are rejected.
func ReadOCRLines(filePath string) ([]models.OCRLine, error) {
	log.WithField(logging.FieldFile, filePath).Info("Reading OCR lines")

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("error opening OCR lines file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	var rows []ocrLineRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing OCR lines file: %w", err)
	}

	lines := make([]models.OCRLine, 0, len(rows))
	for i, row := range rows {
		conf, err := strconv.ParseFloat(strings.TrimSpace(row.Confidence), 64)
		if err != nil {
			return nil, fmt.Errorf("OCR line %d: invalid confidence %q: %w", i+1, row.Confidence, err)
		}
		if conf < 0 || conf > 1 {
			return nil, fmt.Errorf("OCR line %d: confidence %v out of range", i+1, conf)
		}
		lines = append(lines, models.OCRLine{Text: row.Text, Confidence: conf})
	}

	log.WithField(logging.FieldCount, len(lines)).Info("Successfully read OCR lines")
	return lines, nil
}
