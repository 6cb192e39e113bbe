package termline

import "errors"

// wordSep is how a literal space is stored in the line buffer. Keeping
// separators distinct from printable spaces lets the buffer double as a
// pre-tokenized line; the renderer translates them back on output.
const wordSep byte = 0

// ErrLineFull is returned by InsertText when the insertion would exceed the
// line buffer capacity. The session is left unchanged.
var ErrLineFull = errors.New("termline: line buffer full")

// InsertText inserts text at the cursor, shifting the tail right. Literal
// spaces are stored as separators. Under EchoOnce the first insertion marks
// where masking starts.
func (s *Session) InsertText(text []byte) error {
	if s.cmdlen+len(text) >= len(s.buf) {
		return ErrLineFull
	}
	if s.echo == EchoOnce && s.maskStart < 0 {
		s.maskStart = s.cmdlen
	}
	copy(s.buf[s.cursor+len(text):], s.buf[s.cursor:s.cmdlen])
	for i, c := range text {
		if c == ' ' {
			c = wordSep
		}
		s.buf[s.cursor+i] = c
	}
	s.cursor += len(text)
	s.cmdlen += len(text)
	s.buf[s.cmdlen] = 0
	return nil
}

// backspace removes n bytes to the left of the cursor, shifting the tail
// left. It does nothing if fewer than n bytes precede the cursor.
func (s *Session) backspace(n int) {
	if s.cursor < n {
		return
	}
	copy(s.buf[s.cursor-n:], s.buf[s.cursor:s.cmdlen])
	s.cursor -= n
	s.cmdlen -= n
	s.buf[s.cmdlen] = 0
}

// deleteForward removes the byte under the cursor. No-op with the cursor at
// end of line.
func (s *Session) deleteForward() {
	if s.cursor >= s.cmdlen {
		return
	}
	copy(s.buf[s.cursor:], s.buf[s.cursor+1:s.cmdlen])
	s.cmdlen--
	s.buf[s.cmdlen] = 0
}

// moveCursor shifts the cursor by delta, clamped to [0, cmdlen], and returns
// the distance actually moved for the renderer.
func (s *Session) moveCursor(delta int) int {
	target := s.cursor + delta
	if target < 0 {
		target = 0
	}
	if target > s.cmdlen {
		target = s.cmdlen
	}
	moved := target - s.cursor
	s.cursor = target
	return moved
}

// clearLine empties the buffer for the next input line.
func (s *Session) clearLine() {
	s.cmdlen = 0
	s.cursor = 0
	for i := range s.buf {
		s.buf[i] = 0
	}
}
