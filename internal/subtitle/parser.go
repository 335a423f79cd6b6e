package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// SBV timestamp line: h:mm:ss.mmm,h:mm:ss.mmm
var timestampPattern = regexp.MustCompile(
	`^(\d+):(\d{2}):(\d{2})\.(\d{3}),(\d+):(\d{2}):(\d{2})\.(\d{3})$`,
)

// ParseTimestamp parses an SBV timestamp line and returns the start and
// end times in milliseconds.
func ParseTimestamp(timestamp string) (int64, int64, error) {
	matches := timestampPattern.FindStringSubmatch(strings.TrimSpace(timestamp))
	if matches == nil {
		return 0, 0, fmt.Errorf(
			"%w: invalid timestamp %q", ErrFormat, timestamp,
		)
	}

	fields := make([]int64, 8)
	for i, m := range matches[1:] {
		// digits guaranteed by the pattern
		n, _ := strconv.ParseInt(m, 10, 64)
		fields[i] = n
	}

	start := (fields[0]*3600+fields[1]*60+fields[2])*1000 + fields[3]
	end := (fields[4]*3600+fields[5]*60+fields[6])*1000 + fields[7]

	return start, end, nil
}

// Parse scans SBV content and returns the subtitle entries in document
// order, numbered from 1.
//
// A timestamp line opens an entry; the following non-blank,
// non-timestamp lines are its text, trimmed and joined with single
// spaces. Lines before the first timestamp are skipped. With
// roundToSeconds the entry times are converted from milliseconds to
// whole seconds, rounding half away from zero.
func Parse(content string, roundToSeconds bool) ([]Entry, error) {
	lines := strings.Split(content, "\n")
	entries := []Entry{}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if line == "" || !timestampPattern.MatchString(line) {
			i++
			continue
		}

		start, end, err := ParseTimestamp(line)
		if err != nil {
			return nil, err
		}

		var textLines []string
		i++
		for i < len(lines) {
			text := strings.TrimSpace(lines[i])
			if text == "" || timestampPattern.MatchString(text) {
				break
			}
			textLines = append(textLines, text)
			i++
		}

		if roundToSeconds {
			start = roundDiv(start, 1000)
			end = roundDiv(end, 1000)
		}

		entries = append(entries, Entry{
			ID:    len(entries) + 1,
			Start: start,
			End:   end,
			Text:  strings.Join(textLines, " "),
		})
	}

	return entries, nil
}
