package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"tdnguyen/vispend/internal/amountparser"
	"tdnguyen/vispend/internal/classifier"
	"tdnguyen/vispend/internal/dateresolver"
	"tdnguyen/vispend/internal/extracterror"
	"tdnguyen/vispend/internal/extractor"
	"tdnguyen/vispend/internal/logging"
	"tdnguyen/vispend/internal/models"
	"tdnguyen/vispend/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	log := logging.NewMockLogger()
	amounts := amountparser.New(log)
	dates := dateresolver.New(log)
	ext := extractor.New(amounts, classifier.New(taxonomy.Default(), log), dates, log)
	return New(ext, amounts, dates, 0, log)
}

func TestNormalize(t *testing.T) {
	n := newTestNormalizer()

	lines := []models.OCRLine{
		{Text: "CUA HANG TIEN LOI ABC", Confidence: 0.92},
		{Text: "Ngày: 25/12/2023", Confidence: 0.85},
		{Text: "Tổng cộng: 150.000 đ", Confidence: 0.95},
		{Text: "@#$%^&", Confidence: 0.12},
	}

	result, err := n.Normalize(lines, testNow)
	require.NoError(t, err)

	tx := result.Transaction
	assert.True(t, tx.HasAmount)
	assert.Equal(t, int64(150000), tx.Amount.IntPart())
	assert.Equal(t, time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, "CUA HANG TIEN LOI ABC", result.Merchant)
	assert.Equal(t, "Mua tại CUA HANG TIEN LOI ABC", tx.Description)
	assert.NotContains(t, result.RawText, "@#$%^&")
}

func TestNormalize_ReceiptAmountOverridesSmallerFreeTextAmount(t *testing.T) {
	n := newTestNormalizer()

	// The free-text pass only catches the first bare number, the receipt
	// pass finds the marked total.
	lines := []models.OCRLine{
		{Text: "Com ga 45.000", Confidence: 0.9},
		{Text: "Tra da 10.000", Confidence: 0.9},
		{Text: "Tong cong: 255.000", Confidence: 0.9},
	}

	result, err := n.Normalize(lines, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(255000), result.Transaction.Amount.IntPart())
}

func TestNormalize_TooShort(t *testing.T) {
	n := newTestNormalizer()

	t.Run("all lines below confidence threshold", func(t *testing.T) {
		lines := []models.OCRLine{
			{Text: "CUA HANG ABC", Confidence: 0.1},
			{Text: "Tong: 90.000", Confidence: 0.2},
		}

		result, err := n.Normalize(lines, testNow)
		require.Error(t, err)

		var ocrErr *extracterror.OCRInputError
		require.ErrorAs(t, err, &ocrErr)
		assert.Empty(t, result.RawText)
	})

	t.Run("no lines at all", func(t *testing.T) {
		_, err := n.Normalize(nil, testNow)
		require.Error(t, err)

		var ocrErr *extracterror.OCRInputError
		assert.ErrorAs(t, err, &ocrErr)
	})
}

func TestNormalize_NoAmount(t *testing.T) {
	n := newTestNormalizer()

	lines := []models.OCRLine{
		{Text: "PHIEU GIU XE", Confidence: 0.9},
		{Text: "Cam on quy khach", Confidence: 0.9},
	}

	result, err := n.Normalize(lines, testNow)
	require.Error(t, err)

	var extractionErr *extracterror.ExtractionError
	require.ErrorAs(t, err, &extractionErr)

	// Diagnostics survive the failure.
	assert.Equal(t, "PHIEU GIU XE", result.Merchant)
	assert.NotEmpty(t, result.RawText)
}

func TestNormalizeImage(t *testing.T) {
	n := newTestNormalizer()
	reader := &stubReader{lines: []models.OCRLine{
		{Text: "CUA HANG TIEN LOI ABC", Confidence: 0.92},
		{Text: "Tổng cộng: 150.000 đ", Confidence: 0.95},
	}}

	result, err := n.NormalizeImage(context.Background(), reader, []byte("image"), testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, reader.calls)
	assert.Equal(t, int64(150000), result.Transaction.Amount.IntPart())
	assert.Equal(t, "CUA HANG TIEN LOI ABC", result.Merchant)
}

func TestNormalizeImage_ReaderFailure(t *testing.T) {
	n := newTestNormalizer()
	cause := errors.New("engine unavailable")
	reader := &failingReader{err: cause}

	_, err := n.NormalizeImage(context.Background(), reader, []byte("image"), testNow)
	require.Error(t, err)

	var ocrErr *extracterror.OCRInputError
	require.ErrorAs(t, err, &ocrErr)
	assert.ErrorIs(t, err, cause)
}

func TestFindMerchant(t *testing.T) {
	n := newTestNormalizer()

	t.Run("skips short and letterless lines", func(t *testing.T) {
		doc := "---\n12345\nSIEU THI MINI XYZ\nTong: 50.000"
		assert.Equal(t, "SIEU THI MINI XYZ", n.findMerchant(doc))
	})

	t.Run("only scans the top lines", func(t *testing.T) {
		doc := "1\n2\n3\n4\n5\nCUA HANG CUOI TRANG"
		assert.Equal(t, "", n.findMerchant(doc))
	})
}
