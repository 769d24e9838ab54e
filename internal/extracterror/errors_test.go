package extracterror

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractionError(t *testing.T) {
	err := &ExtractionError{Input: "hôm nay đi chơi", Reason: "no amount found"}

	assert.Contains(t, err.Error(), `"hôm nay đi chơi"`)
	assert.Contains(t, err.Error(), "no amount found")
}

func TestExtractionError_LongInputTruncated(t *testing.T) {
	err := &ExtractionError{Input: strings.Repeat("x", 100), Reason: "no amount found"}

	msg := err.Error()
	assert.Contains(t, msg, strings.Repeat("x", 60)+"...")
	assert.NotContains(t, msg, strings.Repeat("x", 61))
}

func TestExtractionError_MultiByteInputTruncatedOnRuneBoundary(t *testing.T) {
	err := &ExtractionError{Input: strings.Repeat("ă", 100), Reason: "no amount found"}

	msg := err.Error()
	assert.True(t, utf8.ValidString(msg))
	assert.Contains(t, msg, strings.Repeat("ă", 60)+"...")
	assert.NotContains(t, msg, strings.Repeat("ă", 61))
}

func TestOCRInputError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &OCRInputError{RawText: "TONG 50.000", Reason: "no amount found", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "no amount found")
	assert.Contains(t, err.Error(), "boom")

	var oe *OCRInputError
	require.ErrorAs(t, error(err), &oe)
	assert.Equal(t, "TONG 50.000", oe.RawText)
}

func TestOCRInputError_WithoutCause(t *testing.T) {
	err := &OCRInputError{Reason: "text too short"}

	assert.Equal(t, "receipt text unusable: text too short", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestQueryError(t *testing.T) {
	err := &QueryError{Query: "chi bao nhiêu", Reason: "empty snapshot"}

	assert.Contains(t, err.Error(), `"chi bao nhiêu"`)
	assert.Contains(t, err.Error(), "empty snapshot")
}
