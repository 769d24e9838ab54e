package dateresolver

import (
	"testing"
	"time"

	"tdnguyen/vispend/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

func TestResolve(t *testing.T) {
	r := New(logging.NewMockLogger())

	testCases := []struct {
		name     string
		text     string
		expected time.Time
	}{
		{"hom nay", "hôm nay chi 50k", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"hom qua", "hôm qua mua sách", time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)},
		{"ngay mai", "ngày mai đóng học phí", time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)},
		{"no phrase defaults to today", "chi 50k ăn sáng", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"first phrase wins", "hôm nay khác hôm qua", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Resolve(tc.text, testNow))
		})
	}
}

func TestResolveReceipt(t *testing.T) {
	r := New(logging.NewMockLogger())

	testCases := []struct {
		name     string
		text     string
		expected time.Time
	}{
		{
			name:     "day first when first field exceeds 12",
			text:     "HOA DON 25/12/2023",
			expected: time.Date(2023, 12, 25, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "month first for ambiguous four digit year dates",
			text:     "Ngay 05-01-2024",
			expected: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "two digit year is 2000 plus",
			text:     "15/03/24",
			expected: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "date embedded in surrounding text",
			text:     "CUA HANG ABC\nNgày: 28/02/2024\nTong: 90.000",
			expected: time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := r.ResolveReceipt(tc.text, testNow)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolveReceipt_NoDate(t *testing.T) {
	r := New(logging.NewMockLogger())

	t.Run("no date in text", func(t *testing.T) {
		_, ok := r.ResolveReceipt("Tổng cộng 150.000đ", testNow)
		assert.False(t, ok)
	})

	t.Run("impossible calendar date is rejected", func(t *testing.T) {
		_, ok := r.ResolveReceipt("31/02/2023", testNow)
		assert.False(t, ok)
	})
}
