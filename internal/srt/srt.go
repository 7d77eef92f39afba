// Package srt parses SubRip (.srt) caption files and flattens them into
// readable transcripts.
package srt

import (
	"errors"
	"fmt"
)

// ErrEndOfInput is returned when the reader runs out of text in the middle
// of a token.
var ErrEndOfInput = errors.New("unexpected end of input")

// ParseError reports a grammar violation at a byte position in the input.
type ParseError struct {
	Pos      int
	Expected string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: expected %s", e.Pos, e.Expected)
}

// eof is the sentinel returned by Reader.Current past the end of the text.
const eof = -1

// Reader is a byte cursor over the raw file text. It is scratch state for a
// single parse and is not safe for concurrent use.
type Reader struct {
	text string
	pos  int
}

// NewReader returns a Reader positioned at the start of text.
func NewReader(text string) *Reader {
	return &Reader{text: text}
}

// Current returns the byte at the cursor as an int, or eof (-1) when the
// cursor is at or past the end of the text.
func (r *Reader) Current() int {
	if r.pos >= len(r.text) {
		return eof
	}
	return int(r.text[r.pos])
}

// Advance moves the cursor forward by one byte. Callers must check Current
// before dereferencing; Advance itself does not guard the boundary.
func (r *Reader) Advance() {
	r.pos++
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int {
	return r.pos
}

// Eat consumes expected from the input, or fails with a ParseError carrying
// the cursor position. It is the parser's sole literal-matching primitive.
func (r *Reader) Eat(expected string) error {
	end := r.pos + len(expected)
	if end > len(r.text) || r.text[r.pos:end] != expected {
		return &ParseError{Pos: r.pos, Expected: fmt.Sprintf("%q", expected)}
	}
	r.pos = end
	return nil
}

// Timestamp is one HH:MM:SS,mmm caption time. It is immutable after parse.
type Timestamp struct {
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// Milliseconds converts the timestamp to absolute milliseconds.
func (t Timestamp) Milliseconds() int {
	return ((t.Hour*60+t.Minute)*60+t.Second)*1000 + t.Millisecond
}

func (t Timestamp) String() string {
	return fmt.Sprintf("%02d:%02d:%02d,%03d", t.Hour, t.Minute, t.Second, t.Millisecond)
}

// Block is one subtitle entry: sequence number, start/end times, and the
// caption text lines.
type Block struct {
	Num   int
	Start Timestamp
	End   Timestamp
	Lines []string
}

// IsSorted reports whether every adjacent pair of blocks satisfies less.
// A nil less compares ascending block numbers. Empty and single-element
// lists are sorted.
func IsSorted(blocks []Block, less func(a, b Block) bool) bool {
	if less == nil {
		less = func(a, b Block) bool { return a.Num < b.Num }
	}
	for i := 1; i < len(blocks); i++ {
		if !less(blocks[i-1], blocks[i]) {
			return false
		}
	}
	return true
}
