package subtitle

import (
	"errors"
	"testing"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name   string
		ms     int64
		format TimeFormat
		want   string
	}{
		{"raw millis", 3661000, FormatMillis, "3661000"},
		{"seconds", 3661000, FormatSeconds, "3661"},
		{"seconds rounds up", 1500, FormatSeconds, "2"},
		{"seconds rounds down", 1499, FormatSeconds, "1"},
		{"minutes", 3661000, FormatMinutes, "61"},
		{"hour minute", 3661000, FormatHourMinute, "01:01"},
		{"hour minute rounds half up", 3630000, FormatHourMinute, "01:01"},
		{"hour minute rounds down", 3629999, FormatHourMinute, "01:00"},
		{"clock floors", 3661999, FormatClock, "01:01:01"},
		{"clock zero", 0, FormatClock, "00:00:00"},
		{"clock millis", 3661045, FormatClockMillis, "01:01:01.045"},
		{"clock millis zero remainder", 5000, FormatClockMillis, "00:00:05.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatTimestamp(tt.ms, tt.format)
			if err != nil {
				t.Fatalf("FormatTimestamp failed: %v", err)
			}
			if got != tt.want {
				t.Errorf(
					"FormatTimestamp(%d, %s) = %q, want %q",
					tt.ms, tt.format, got, tt.want,
				)
			}
		})
	}
}

func TestFormatTimestampUnknownFormat(t *testing.T) {
	_, err := FormatTimestamp(1000, TimeFormat("bogus"))
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat, got %v", err)
	}
}

func TestParseTimeFormat(t *testing.T) {
	for _, f := range TimeFormats {
		got, err := ParseTimeFormat(string(f))
		if err != nil {
			t.Errorf("ParseTimeFormat(%q) failed: %v", f, err)
		}
		if got != f {
			t.Errorf("ParseTimeFormat(%q) = %q", f, got)
		}
	}

	if _, err := ParseTimeFormat("HH"); !errors.Is(err, ErrFormat) {
		t.Errorf("expected ErrFormat for unknown name, got %v", err)
	}
}
