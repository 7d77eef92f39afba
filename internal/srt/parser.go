package srt

import (
	"fmt"
	"io"
)

// Grammar:
//
//	SRTBlockList := SRTBlock*
//	SRTBlock     := INT "\n" TIME " --> " TIME "\n" (LINE)* "\n"
//	TIME         := INT{2} ":" INT{2} ":" INT{2} "," INT{3}
//	LINE         := any-chars-until-newline "\n"
//
// Any malformed input aborts the whole parse. There is no resynchronization
// and no partial result; the files are a privately generated caption cache,
// not adversarial input.

// readInt greedily consumes ASCII digits, up to maxDigits when positive,
// and returns their base-10 value. At least one digit is required.
func readInt(r *Reader, maxDigits int) (int, error) {
	value := 0
	digits := 0
	for {
		c := r.Current()
		if c < '0' || c > '9' {
			break
		}
		value = value*10 + (c - '0')
		digits++
		r.Advance()
		if maxDigits > 0 && digits == maxDigits {
			break
		}
	}
	if digits == 0 {
		if r.Current() == eof {
			return 0, ErrEndOfInput
		}
		return 0, &ParseError{Pos: r.Pos(), Expected: "digit"}
	}
	return value, nil
}

// readLine consumes characters up to the next newline and returns them,
// consuming the newline itself as a side effect.
func readLine(r *Reader) (string, error) {
	if r.Current() == eof {
		return "", ErrEndOfInput
	}
	start := r.Pos()
	for r.Current() != eof && r.Current() != '\n' {
		r.Advance()
	}
	line := r.text[start:r.Pos()]
	if r.Current() == '\n' {
		r.Advance()
	}
	return line, nil
}

// readTime parses HH:MM:SS,mmm. Minute and second are range-checked;
// hour and millisecond are not.
func readTime(r *Reader) (Timestamp, error) {
	var t Timestamp
	var err error

	if t.Hour, err = readInt(r, 2); err != nil {
		return t, err
	}
	if err = r.Eat(":"); err != nil {
		return t, err
	}
	minutePos := r.Pos()
	if t.Minute, err = readInt(r, 2); err != nil {
		return t, err
	}
	if t.Minute > 59 {
		return t, &ParseError{Pos: minutePos, Expected: fmt.Sprintf("minute in [0,59], got %d", t.Minute)}
	}
	if err = r.Eat(":"); err != nil {
		return t, err
	}
	secondPos := r.Pos()
	if t.Second, err = readInt(r, 2); err != nil {
		return t, err
	}
	if t.Second > 59 {
		return t, &ParseError{Pos: secondPos, Expected: fmt.Sprintf("second in [0,59], got %d", t.Second)}
	}
	if err = r.Eat(","); err != nil {
		return t, err
	}
	if t.Millisecond, err = readInt(r, 3); err != nil {
		return t, err
	}
	return t, nil
}

// readBlock parses one subtitle entry: number, time range, text lines, and
// the terminating blank line.
func readBlock(r *Reader) (Block, error) {
	var b Block
	var err error

	if b.Num, err = readInt(r, 0); err != nil {
		return b, err
	}
	if err = r.Eat("\n"); err != nil {
		return b, err
	}
	if b.Start, err = readTime(r); err != nil {
		return b, err
	}
	if err = r.Eat(" --> "); err != nil {
		return b, err
	}
	if b.End, err = readTime(r); err != nil {
		return b, err
	}
	if err = r.Eat("\n"); err != nil {
		return b, err
	}
	for r.Current() != eof && r.Current() != '\n' {
		line, err := readLine(r)
		if err != nil {
			return b, err
		}
		b.Lines = append(b.Lines, line)
	}
	if err = r.Eat("\n"); err != nil {
		return b, err
	}
	return b, nil
}

// readBlockList parses blocks until the reader is exhausted or the next
// character is a newline, signifying the end of the block list.
func readBlockList(r *Reader) ([]Block, error) {
	var blocks []Block
	for r.Current() != eof && r.Current() != '\n' {
		b, err := readBlock(r)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// Parse reads all of src into memory and parses it as an SRT block list.
func Parse(src io.Reader) ([]Block, error) {
	text, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read caption source: %w", err)
	}
	return readBlockList(NewReader(string(text)))
}
