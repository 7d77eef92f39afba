package srt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func block(num int, startMs, endMs int, lines ...string) Block {
	toTS := func(ms int) Timestamp {
		return Timestamp{
			Hour:        ms / 3600000,
			Minute:      ms / 60000 % 60,
			Second:      ms / 1000 % 60,
			Millisecond: ms % 1000,
		}
	}
	return Block{Num: num, Start: toTS(startMs), End: toTS(endMs), Lines: lines}
}

func TestTranscriptEmpty(t *testing.T) {
	out, err := Transcript(nil, DefaultTimeSep)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty transcript, got %q", out)
	}
}

func TestTranscriptSingleBlock(t *testing.T) {
	out, err := Transcript([]Block{block(1, 1000, 3000, "Hello", "World")}, DefaultTimeSep)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"Hello", "World"}) {
		t.Errorf("expected block lines unchanged, got %q", out)
	}
}

func TestTranscriptUnsorted(t *testing.T) {
	blocks := []Block{block(2, 0, 1000, "b"), block(1, 2000, 3000, "a")}
	if _, err := Transcript(blocks, DefaultTimeSep); !errors.Is(err, ErrUnsorted) {
		t.Errorf("expected ErrUnsorted, got %v", err)
	}
}

func TestTranscriptGapSeparator(t *testing.T) {
	// 7s of silence with the default 4s threshold: blank line between blocks.
	blocks := []Block{
		block(1, 1000, 3000, "Hello"),
		block(2, 10000, 12000, "World"),
	}
	out, err := Transcript(blocks, 4)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"Hello", "", "World"}) {
		t.Errorf("expected separator across the gap, got %q", out)
	}
}

func TestTranscriptIdenticalRepeat(t *testing.T) {
	// Same caption shown twice within the threshold: the repeat stays.
	blocks := []Block{
		block(1, 1000, 3000, "Hello"),
		block(2, 4500, 6000, "Hello"),
	}
	out, err := Transcript(blocks, 4)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"Hello", "Hello"}) {
		t.Errorf("expected verbatim repeat, got %q", out)
	}
}

func TestTranscriptDifferingNoGap(t *testing.T) {
	blocks := []Block{
		block(1, 1000, 3000, "Hello"),
		block(2, 4500, 6000, "Goodbye"),
	}
	out, err := Transcript(blocks, 4)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"Hello", "Goodbye"}) {
		t.Errorf("expected no separator below threshold, got %q", out)
	}
}

func TestTranscriptOverlapKeepsNewLinesOnly(t *testing.T) {
	// Rolling captions: the shared line is not re-emitted, the new one is.
	blocks := []Block{
		block(1, 1000, 3000, "first line", "second line"),
		block(2, 3000, 5000, "second line", "third line"),
	}
	out, err := Transcript(blocks, 4)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	want := []string{"first line", "second line", "third line"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestTranscriptOverlapSkipsStaleEndTime(t *testing.T) {
	// A subset block contributes no lines, so the running end time keeps
	// pointing at the block before it. The next block's separator check
	// runs against that older time, not the subset block's.
	blocks := []Block{
		block(1, 0, 1000, "a", "b"),
		block(2, 4500, 4800, "a"),
		block(3, 6000, 7000, "c"),
	}
	out, err := Transcript(blocks, 4)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	want := []string{"a", "b", "", "c"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestTranscriptLineSetIgnoresOrder(t *testing.T) {
	// Reordered identical lines count as the same caption.
	blocks := []Block{
		block(1, 1000, 3000, "a", "b"),
		block(2, 3000, 5000, "b", "a"),
	}
	out, err := Transcript(blocks, 4)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	want := []string{"a", "b", "b", "a"}
	if !reflect.DeepEqual(out, want) {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestTranscriptEndToEnd(t *testing.T) {
	input := "1\n" +
		"00:00:01,000 --> 00:00:03,000\n" +
		"Hello\n" +
		"\n" +
		"2\n" +
		"00:00:10,000 --> 00:00:12,000\n" +
		"World\n" +
		"\n"
	blocks, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out, err := Transcript(blocks, DefaultTimeSep)
	if err != nil {
		t.Fatalf("Transcript failed: %v", err)
	}
	if !reflect.DeepEqual(out, []string{"Hello", "", "World"}) {
		t.Errorf("unexpected transcript: %q", out)
	}
}
