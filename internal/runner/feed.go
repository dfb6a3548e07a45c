package runner

import (
	"bufio"
	"io"
)

// feed splits a raw output stream into logical lines and hands each
// completed line to emit. It works byte-at-a-time because carriage
// returns must reset the in-progress line rather than terminate it:
// progress displays that rewrite themselves with \r collapse to the
// content after the last \r, instead of one line per overwrite.
//
//   - '\r' discards the in-progress buffer.
//   - '\n' emits the buffer as a completed line.
//   - anything else is appended to the buffer.
//
// A non-empty buffer at stream end is emitted as a final line, so
// output without a trailing newline is not lost.
func feed(r io.Reader, emit func(string)) error {
	br := bufio.NewReader(r)
	var buf []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(buf) > 0 {
				emit(string(buf))
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		switch b {
		case '\r':
			buf = buf[:0]
		case '\n':
			emit(string(buf))
			buf = buf[:0]
		default:
			buf = append(buf, b)
		}
	}
}
