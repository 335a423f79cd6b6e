package subtitle

import (
	"fmt"
	"strconv"
)

// display format for entry timestamps
type TimeFormat string

const (
	FormatMillis      TimeFormat = "Mi"
	FormatSeconds     TimeFormat = "SS"
	FormatMinutes     TimeFormat = "MM"
	FormatHourMinute  TimeFormat = "HH:MM"
	FormatClock       TimeFormat = "HH:MM:SS"
	FormatClockMillis TimeFormat = "HH:MM:SS.Mi"
)

// TimeFormats lists the accepted format names in flag-help order.
var TimeFormats = []TimeFormat{
	FormatClockMillis,
	FormatClock,
	FormatHourMinute,
	FormatSeconds,
	FormatMinutes,
	FormatMillis,
}

// ParseTimeFormat maps a flag value to a TimeFormat.
func ParseTimeFormat(s string) (TimeFormat, error) {
	for _, f := range TimeFormats {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: unknown timestamp format %q", ErrFormat, s)
}

// FormatTimestamp renders a millisecond value in the given format.
//
// SS, MM and HH:MM round half away from zero; HH:MM:SS and
// HH:MM:SS.Mi truncate.
func FormatTimestamp(ms int64, format TimeFormat) (string, error) {
	switch format {
	case FormatMillis:
		return strconv.FormatInt(ms, 10), nil
	case FormatSeconds:
		return strconv.FormatInt(roundDiv(ms, 1000), 10), nil
	case FormatMinutes:
		return strconv.FormatInt(roundDiv(ms, 60_000), 10), nil
	case FormatHourMinute:
		minutes := roundDiv(ms, 60_000)
		return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60), nil
	case FormatClock:
		seconds := ms / 1000
		return fmt.Sprintf(
			"%02d:%02d:%02d",
			seconds/3600, seconds/60%60, seconds%60,
		), nil
	case FormatClockMillis:
		seconds := ms / 1000
		return fmt.Sprintf(
			"%02d:%02d:%02d.%03d",
			seconds/3600, seconds/60%60, seconds%60, ms%1000,
		), nil
	default:
		return "", fmt.Errorf(
			"%w: unknown timestamp format %q", ErrFormat, format,
		)
	}
}
