package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("started", Field{Key: FieldComponent, Value: "test"})
	mock.Warn("careful")

	entries := mock.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "started", entries[0].Message)
	require.Len(t, entries[0].Fields, 1)
	assert.Equal(t, FieldComponent, entries[0].Fields[0].Key)

	assert.True(t, mock.HasEntry("WARN", "careful"))
	assert.False(t, mock.HasEntry("ERROR", "careful"))
}

func TestMockLoggerDerivedLoggersShareSink(t *testing.T) {
	mock := NewMockLogger()

	// Components typically log through WithField-derived loggers; the test
	// holding the root mock must still see those entries.
	derived := mock.WithField(FieldComponent, "classifier")
	derived.Debug("classified")

	require.Len(t, mock.Entries(), 1)
	e := mock.Entries()[0]
	assert.Equal(t, "classified", e.Message)
	require.Len(t, e.Fields, 1)
	assert.Equal(t, "classifier", e.Fields[0].Value)
}

func TestMockLoggerWithErrorAndFields(t *testing.T) {
	mock := NewMockLogger()
	cause := errors.New("boom")

	mock.WithError(cause).
		WithFields(Field{Key: FieldFile, Value: "a.csv"}).
		Error("read failed", Field{Key: FieldCount, Value: 3})

	entries := mock.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, cause, entries[0].Error)
	require.Len(t, entries[0].Fields, 2)
	assert.Equal(t, FieldFile, entries[0].Fields[0].Key)
	assert.Equal(t, FieldCount, entries[0].Fields[1].Key)
}

func TestMockLoggerFatalDoesNotExit(t *testing.T) {
	mock := NewMockLogger()
	mock.Fatal("fatal condition")
	assert.True(t, mock.HasEntry("FATAL", "fatal condition"))
}

func TestSetLoggerIgnoresNil(t *testing.T) {
	mock := NewMockLogger()
	SetLogger(mock)
	assert.Equal(t, Logger(mock), GetLogger())

	SetLogger(nil)
	assert.Equal(t, Logger(mock), GetLogger())
}
