package subtitle

import (
	"errors"
	"fmt"
)

// ErrFormat reports malformed timestamp text or an unknown timestamp format
var ErrFormat = errors.New("format error")

// represents single subtitle entry
//
// Start and End are milliseconds, or whole seconds when the entry was
// parsed in seconds mode. The unit is carried by the caller, not the entry.
type Entry struct {
	ID    int    `json:"id"`
	Start int64  `json:"start"`
	End   int64  `json:"end"`
	Text  string `json:"text"`
}

// Duration returns End - Start in the entry's own unit.
func (e Entry) Duration() int64 {
	return e.End - e.Start
}

// Validate rejects sequences that are out of order, overlapping, or have
// an entry ending before it starts. Parsing and merging do not require
// this; it backs the converters' strict mode.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if e.End < e.Start {
			return fmt.Errorf(
				"entry %d: end %d precedes start %d",
				e.ID, e.End, e.Start,
			)
		}
		if i == 0 {
			continue
		}
		prev := entries[i-1]
		if e.Start < prev.Start {
			return fmt.Errorf(
				"entry %d: starts at %d before entry %d at %d",
				e.ID, e.Start, prev.ID, prev.Start,
			)
		}
		if e.Start < prev.End {
			return fmt.Errorf(
				"entry %d: overlaps entry %d (start %d < end %d)",
				e.ID, prev.ID, e.Start, prev.End,
			)
		}
	}
	return nil
}

// roundDiv divides and rounds half away from zero; inputs are never
// negative here.
func roundDiv(n, div int64) int64 {
	return (n + div/2) / div
}
