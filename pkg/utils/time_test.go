package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseTimestampEpochMillis(t *testing.T) {
	parsed, err := ParseTimestamp("1714564800000")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), parsed)
}

func TestParseTimestampRFC3339(t *testing.T) {
	parsed, err := ParseTimestamp("2024-05-01T12:00:00Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), parsed)
}

func TestParseTimestampRFC3339Nano(t *testing.T) {
	parsed, err := ParseTimestamp("2024-05-01T12:00:00.123456789Z")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 5, 1, 12, 0, 0, 123456789, time.UTC), parsed)
}

func TestParseTimestampRejectsGarbage(t *testing.T) {
	_, err := ParseTimestamp("yesterday")
	require.Error(t, err)
}

func TestTimestampRoundTrip(t *testing.T) {
	original := time.Date(2024, 5, 1, 12, 34, 56, 789000000, time.UTC)

	parsed, err := ParseTimestamp(FormatTimestamp(original))
	require.NoError(t, err)
	require.True(t, parsed.Equal(original))
}
