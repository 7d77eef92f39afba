package srt

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

const sampleSRT = "1\n" +
	"00:00:01,000 --> 00:00:03,500\n" +
	"Hello, world!\n" +
	"\n" +
	"2\n" +
	"00:00:05,250 --> 00:00:08,000\n" +
	"This is a test.\n" +
	"With two lines.\n" +
	"\n" +
	"3\n" +
	"00:01:10,042 --> 00:01:12,999\n" +
	"Final caption.\n" +
	"\n"

// formatBlocks re-derives SRT text from parsed blocks for round-trip checks.
func formatBlocks(blocks []Block) string {
	var sb strings.Builder
	for _, b := range blocks {
		fmt.Fprintf(&sb, "%d\n%s --> %s\n", b.Num, b.Start, b.End)
		for _, l := range b.Lines {
			sb.WriteString(l)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestParseRoundTrip(t *testing.T) {
	blocks, err := Parse(strings.NewReader(sampleSRT))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}
	if got := formatBlocks(blocks); got != sampleSRT {
		t.Errorf("round trip mismatch:\ngot:  %q\nwant: %q", got, sampleSRT)
	}
}

func TestParseFields(t *testing.T) {
	blocks, err := Parse(strings.NewReader(sampleSRT))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	b := blocks[1]
	if b.Num != 2 {
		t.Errorf("expected block num 2, got %d", b.Num)
	}
	if b.Start != (Timestamp{0, 0, 5, 250}) {
		t.Errorf("unexpected start time: %+v", b.Start)
	}
	if b.End != (Timestamp{0, 0, 8, 0}) {
		t.Errorf("unexpected end time: %+v", b.End)
	}
	want := []string{"This is a test.", "With two lines."}
	if len(b.Lines) != 2 || b.Lines[0] != want[0] || b.Lines[1] != want[1] {
		t.Errorf("unexpected lines: %q", b.Lines)
	}

	if ms := blocks[2].Start.Milliseconds(); ms != 70042 {
		t.Errorf("expected 70042ms, got %d", ms)
	}
}

func TestParseEmpty(t *testing.T) {
	blocks, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
}

func TestParseMissingArrow(t *testing.T) {
	input := "1\n00:00:01,000 -> 00:00:03,000\nHello\n\n"
	blocks, err := Parse(strings.NewReader(input))
	if blocks != nil {
		t.Errorf("expected no partial result, got %d blocks", len(blocks))
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	// Failure is at the separator, right after the first timestamp.
	if pe.Pos != len("1\n00:00:01,000") {
		t.Errorf("expected failure at offset %d, got %d", len("1\n00:00:01,000"), pe.Pos)
	}
}

func TestParseTruncatedInput(t *testing.T) {
	input := "1\n00:00:01,000 --> 00:"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrEndOfInput) {
		t.Errorf("expected ErrEndOfInput, got %v", err)
	}
}

func TestReadTimeRange(t *testing.T) {
	cases := []struct {
		input string
		ok    bool
	}{
		{"00:00:00,000", true},
		{"23:59:59,999", true},
		{"05:60:00,000", false},
		{"05:00:61,000", false},
		{"99:59:59,999", true}, // hour is not range-checked
	}
	for _, tc := range cases {
		_, err := readTime(NewReader(tc.input))
		if tc.ok && err != nil {
			t.Errorf("readTime(%q) failed: %v", tc.input, err)
		}
		if !tc.ok {
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("readTime(%q): expected ParseError, got %v", tc.input, err)
			}
		}
	}
}

func TestReadIntDigitLimit(t *testing.T) {
	r := NewReader("12345")
	v, err := readInt(r, 3)
	if err != nil {
		t.Fatalf("readInt failed: %v", err)
	}
	if v != 123 {
		t.Errorf("expected 123, got %d", v)
	}
	if r.Pos() != 3 {
		t.Errorf("expected cursor at 3, got %d", r.Pos())
	}
}

func TestReadIntNoDigits(t *testing.T) {
	if _, err := readInt(NewReader(""), 0); !errors.Is(err, ErrEndOfInput) {
		t.Errorf("expected ErrEndOfInput on empty input, got %v", err)
	}
	var pe *ParseError
	if _, err := readInt(NewReader("x"), 0); !errors.As(err, &pe) {
		t.Errorf("expected ParseError on non-digit, got %v", err)
	}
}

func TestTimestampOrdering(t *testing.T) {
	earlier := []Timestamp{
		{0, 0, 0, 0},
		{0, 0, 59, 999},
		{0, 59, 59, 999},
		{1, 0, 0, 0},
		{12, 30, 15, 500},
	}
	for i := 1; i < len(earlier); i++ {
		a, b := earlier[i-1], earlier[i]
		if a.Milliseconds() >= b.Milliseconds() {
			t.Errorf("%v should convert below %v", a, b)
		}
	}
}

func TestIsSorted(t *testing.T) {
	if !IsSorted(nil, nil) {
		t.Error("empty list should be sorted")
	}
	if !IsSorted([]Block{{Num: 7}}, nil) {
		t.Error("single-element list should be sorted")
	}
	if !IsSorted([]Block{{Num: 1}, {Num: 2}, {Num: 3}}, nil) {
		t.Error("ascending list should be sorted")
	}
	if IsSorted([]Block{{Num: 1}, {Num: 1}}, nil) {
		t.Error("default predicate is strict")
	}
	if IsSorted([]Block{{Num: 2}, {Num: 1}}, nil) {
		t.Error("descending list should not be sorted")
	}
}
