package subtitle

import (
	"errors"
	"testing"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart int64
		wantEnd   int64
		wantErr   bool
	}{
		{
			name:      "simple",
			input:     "0:00:01.000,0:00:03.000",
			wantStart: 1000,
			wantEnd:   3000,
		},
		{
			name:      "with hours",
			input:     "1:30:45.500,2:15:30.250",
			wantStart: (1*3600+30*60+45)*1000 + 500,
			wantEnd:   (2*3600+15*60+30)*1000 + 250,
		},
		{
			name:      "surrounding whitespace",
			input:     "  0:00:01.000,0:00:03.000  ",
			wantStart: 1000,
			wantEnd:   3000,
		},
		{
			name:    "not a timestamp",
			input:   "invalid",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			input:   "00:00:01.000-00:00:03.000",
			wantErr: true,
		},
		{
			name:    "missing millis",
			input:   "0:00:01,0:00:03",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := ParseTimestamp(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				if !errors.Is(err, ErrFormat) {
					t.Errorf("expected ErrFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) failed: %v", tt.input, err)
			}
			if start != tt.wantStart {
				t.Errorf("start: got %d, want %d", start, tt.wantStart)
			}
			if end != tt.wantEnd {
				t.Errorf("end: got %d, want %d", end, tt.wantEnd)
			}
		})
	}
}

func TestParseSingleEntry(t *testing.T) {
	content := "0:00:01.000,0:00:03.000\nSubtitle text 1\n\n"

	entries, err := Parse(content, false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID != 1 {
		t.Errorf("expected id 1, got %d", e.ID)
	}
	if e.Start != 1000 || e.End != 3000 {
		t.Errorf("expected 1000..3000, got %d..%d", e.Start, e.End)
	}
	if e.Text != "Subtitle text 1" {
		t.Errorf("expected 'Subtitle text 1', got %q", e.Text)
	}
}

func TestParseMultipleEntries(t *testing.T) {
	content := `0:00:01.000,0:00:03.000
Subtitle text 1

0:00:04.000,0:00:06.000
Subtitle text 2

`
	entries, err := Parse(content, false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Start != 1000 || entries[0].End != 3000 {
		t.Errorf("entry 0: got %d..%d", entries[0].Start, entries[0].End)
	}
	if entries[1].ID != 2 || entries[1].Text != "Subtitle text 2" {
		t.Errorf("entry 1: got id %d text %q", entries[1].ID, entries[1].Text)
	}
}

func TestParseMultilineTextJoined(t *testing.T) {
	content := "0:00:01.000,0:00:03.000\nLine 1\nLine 2\n\n"

	entries, err := Parse(content, false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Line 1 Line 2" {
		t.Errorf("expected 'Line 1 Line 2', got %q", entries[0].Text)
	}
}

func TestParseEmptyContent(t *testing.T) {
	entries, err := Parse("", false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestParseLeadingJunkSkipped(t *testing.T) {
	content := "\n\nnot a timestamp\n0:00:01.000,0:00:03.000\nSubtitle text 1\n\n"

	entries, err := Parse(content, false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Subtitle text 1" {
		t.Errorf("expected 'Subtitle text 1', got %q", entries[0].Text)
	}
}

func TestParseWithoutBlankSeparators(t *testing.T) {
	content := "0:00:01.000,0:00:03.000\nSubtitle text 1\n0:00:04.000,0:00:06.000\nSubtitle text 2"

	entries, err := Parse(content, false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text != "Subtitle text 1" {
		t.Errorf("entry 0: got %q", entries[0].Text)
	}
	if entries[1].Text != "Subtitle text 2" {
		t.Errorf("entry 1: got %q", entries[1].Text)
	}
}

func TestParseWindowsLineEndings(t *testing.T) {
	content := "0:00:01.000,0:00:03.000\r\nSubtitle text 1\r\n\r\n"

	entries, err := Parse(content, false)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Text != "Subtitle text 1" {
		t.Errorf("expected 'Subtitle text 1', got %q", entries[0].Text)
	}
}

func TestParseRoundToSeconds(t *testing.T) {
	content := "0:00:01.500,0:00:03.250\nHalfway\n\n"

	entries, err := Parse(content, true)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	// 1500ms rounds half away from zero to 2s, 3250ms to 3s
	if entries[0].Start != 2 {
		t.Errorf("expected start 2, got %d", entries[0].Start)
	}
	if entries[0].End != 3 {
		t.Errorf("expected end 3, got %d", entries[0].End)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{
			name: "well formed",
			entries: []Entry{
				{ID: 1, Start: 0, End: 1000, Text: "a"},
				{ID: 2, Start: 1000, End: 2000, Text: "b"},
			},
		},
		{
			name:    "empty",
			entries: nil,
		},
		{
			name: "end before start",
			entries: []Entry{
				{ID: 1, Start: 2000, End: 1000, Text: "a"},
			},
			wantErr: true,
		},
		{
			name: "out of order",
			entries: []Entry{
				{ID: 1, Start: 5000, End: 6000, Text: "a"},
				{ID: 2, Start: 0, End: 1000, Text: "b"},
			},
			wantErr: true,
		},
		{
			name: "overlapping",
			entries: []Entry{
				{ID: 1, Start: 0, End: 2000, Text: "a"},
				{ID: 2, Start: 1000, End: 3000, Text: "b"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.entries)
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
