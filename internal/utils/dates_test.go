package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateAcceptsKnownLayouts(t *testing.T) {
	for _, value := range []string{
		"2024-05-01",
		"2024-05-01T10:30:00Z",
		"2024-05-01T10:30:00.000Z",
	} {
		_, ok := ParseDate(value)
		assert.True(t, ok, value)
	}

	_, ok := ParseDate("01.05.2024")
	assert.False(t, ok)
}

func TestRentalDays(t *testing.T) {
	day := func(value string) time.Time {
		parsed, ok := ParseDate(value)
		require.True(t, ok, value)
		return parsed
	}

	testCases := []struct {
		pickup   string
		ret      string
		expected int
	}{
		{"2024-01-01", "2024-01-03", 2},
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-03", "2024-01-01", 1},
		{"2024-01-01T10:00:00Z", "2024-01-02T11:00:00Z", 2},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RentalDays(day(tc.pickup), day(tc.ret)), "%s..%s", tc.pickup, tc.ret)
	}
}
