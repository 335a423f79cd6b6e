package subtitle

import "strings"

// Merge fuses runs of short consecutive entries into coarser
// timeframes of roughly the target duration.
//
// target is the desired timeframe length in seconds; entries are in
// milliseconds, or in seconds when useSeconds is set. Entries lasting
// at least two thirds of the target (rounded) pass through untouched:
// stacking a merge group on top of an already substantial entry would
// overshoot the timeframe. Everything shorter opens a group that
// greedily absorbs following short entries until one ends at or past
// the group's target end, a long entry is reached (it is left for the
// next pass of the outer loop), or the input runs out.
//
// Every input entry lands in exactly one output entry, order is
// preserved, texts are joined with single spaces, and the output is
// renumbered from 1. The caller validates target > 0. Input must be
// ordered by start time; unsorted input is processed literally.
func Merge(entries []Entry, target int64, useSeconds bool) []Entry {
	duration := target
	if !useSeconds {
		duration *= 1000
	}
	minDuration := roundDiv(2*duration, 3)

	merged := []Entry{}

	i := 0
	for i < len(entries) {
		entry := entries[i]

		if entry.Duration() >= minDuration {
			merged = append(merged, Entry{
				ID:    len(merged) + 1,
				Start: entry.Start,
				End:   entry.End,
				Text:  entry.Text,
			})
			i++
			continue
		}

		// short entry: open a merge group
		groupStart := entry.Start
		targetEnd := groupStart + duration
		texts := []string{entry.Text}
		groupEnd := entry.End
		i++

		for i < len(entries) {
			next := entries[i]
			if next.Duration() >= minDuration {
				// too long to absorb; close the group before it
				break
			}
			texts = append(texts, next.Text)
			groupEnd = next.End
			i++
			if next.End >= targetEnd {
				// timeframe reached
				break
			}
		}

		merged = append(merged, Entry{
			ID:    len(merged) + 1,
			Start: groupStart,
			End:   groupEnd,
			Text:  strings.Join(texts, " "),
		})
	}

	return merged
}
