package srt

import "errors"

// DefaultTimeSep is the silence gap, in seconds, beyond which the merge
// inserts a blank separator line.
const DefaultTimeSep = 4

// ErrUnsorted is returned by Transcript when the block list is not in
// ascending block-number order.
var ErrUnsorted = errors.New("srt: blocks are not sorted by block number")

// lineSet builds an order- and duplicate-insensitive view of a block's lines.
func lineSet(lines []string) map[string]bool {
	set := make(map[string]bool, len(lines))
	for _, l := range lines {
		set[l] = true
	}
	return set
}

func sameLines(a, b []string) bool {
	as, bs := lineSet(a), lineSet(b)
	if len(as) != len(bs) {
		return false
	}
	for l := range as {
		if !bs[l] {
			return false
		}
	}
	return true
}

// Transcript collapses a time-ordered block list into a flat sequence of
// caption lines. Empty strings mark pauses longer than timeSep seconds and
// boundaries between differing consecutive blocks. Blocks must already be
// sorted by block number.
//
// When two adjacent blocks carry the same set of lines, the repeat is
// appended verbatim rather than deduplicated.
func Transcript(blocks []Block, timeSep int) ([]string, error) {
	if !IsSorted(blocks, nil) {
		return nil, ErrUnsorted
	}
	if len(blocks) == 0 {
		return []string{}, nil
	}

	gapMs := timeSep * 1000
	out := append([]string(nil), blocks[0].Lines...)
	lastEndMs := blocks[0].End.Milliseconds()

	for i := 1; i < len(blocks); i++ {
		prev, b := blocks[i-1], blocks[i]
		startMs := b.Start.Milliseconds()

		switch {
		case prev.End.Milliseconds()+gapMs < startMs:
			// Silence gap: separator, then the whole block.
			out = append(out, "")
			out = append(out, b.Lines...)
			lastEndMs = b.End.Milliseconds()

		case sameLines(prev.Lines, b.Lines):
			// Same caption shown again; keep the repeat.
			out = append(out, b.Lines...)
			lastEndMs = b.End.Milliseconds()

		default:
			// Overlapping blocks: only the lines the predecessor didn't
			// already show. lastEndMs advances per appended line, which
			// feeds back into the gap check for the remaining lines.
			prevLines := lineSet(prev.Lines)
			for _, t := range b.Lines {
				if prevLines[t] {
					continue
				}
				if lastEndMs+gapMs < startMs {
					out = append(out, "")
				}
				out = append(out, t)
				lastEndMs = b.End.Milliseconds()
			}
		}
	}
	return out, nil
}
