package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ParseTimestamp accepts the two wire formats the API supports: epoch
// milliseconds and RFC3339 (with or without sub-second precision). Values are
// normalized to UTC so they round-trip exactly through storage.
func ParseTimestamp(value string) (time.Time, error) {
	if millis, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(millis).UTC(), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid timestamp %q, use epoch milliseconds or RFC3339", value)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
