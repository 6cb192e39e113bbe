package termline

import "strconv"

// The renderer's entire output vocabulary: cursor forward/back by N, erase
// to end of line, carriage return, the configured EOL and the backspace
// erase sequence.
const (
	escEraseEOL  = "\x1b[K"
	escBackspace = "\x1b[D \x1b[D"
)

// maxCursorMove clamps the magnitude of a single cursor move sequence.
const maxCursorMove = 999

// appendMoveCursor appends the escape sequence moving the terminal cursor
// right (positive) or left (negative) by offset columns. Zero appends
// nothing.
func appendMoveCursor(dst []byte, offset int) []byte {
	if offset == 0 {
		return dst
	}
	dir := byte('C')
	if offset < 0 {
		offset = -offset
		dir = 'D'
	}
	if offset > maxCursorMove {
		offset = maxCursorMove
	}
	dst = append(dst, 0x1b, '[')
	dst = strconv.AppendInt(dst, int64(offset), 10)
	return append(dst, dir)
}

func (s *Session) print(text string) {
	s.hooks.Print(s, text)
}

func (s *Session) printPrompt() {
	s.print(s.cfg.Prompt)
}

func (s *Session) printNewline() {
	s.print(s.cfg.EOL)
}

// termMoveCursor moves the terminal cursor without touching the buffer.
func (s *Session) termMoveCursor(offset int) {
	if offset == 0 || s.echo == EchoOff {
		return
	}
	s.print(string(appendMoveCursor(s.scratch[:0], offset)))
}

// termBackspace erases the byte left of the terminal cursor.
func (s *Session) termBackspace() {
	if s.echo == EchoOff {
		return
	}
	s.print(escBackspace)
}

// termEraseEOL erases from the terminal cursor to the end of the line.
func (s *Session) termEraseEOL() {
	if s.echo == EchoOff {
		return
	}
	s.print(escEraseEOL)
}

// displayByte is the byte rendered for buffer position i: separators show
// as spaces and masked input as the mask character.
func (s *Session) displayByte(i int) byte {
	if s.echo == EchoOnce && s.maskStart >= 0 && i >= s.maskStart {
		return maskChar
	}
	if s.buf[i] == wordSep {
		return ' '
	}
	return s.buf[i]
}

// echoByte reflects one just-typed byte at the end of the line.
func (s *Session) echoByte(i int) {
	if s.echo == EchoOff {
		return
	}
	s.print(string([]byte{s.displayByte(i)}))
}

// printLine redraws the line from byte position pos to the end, erases any
// leftovers and parks the terminal cursor at the logical cursor column.
// With reset the terminal cursor is first returned to the redraw start
// column: a carriage return plus a forward move, or a worst-case left move
// when the carriage return optimization is off. Output is streamed through
// the scratch buffer, flushing whenever the chunk nears capacity while
// reserving headroom for the trailing erase plus final cursor-back move.
func (s *Session) printLine(pos int, reset bool) {
	if s.echo == EchoOff {
		return
	}
	const reserve = len(escEraseEOL) + len("\x1b[999D")

	out := s.scratch[:0]
	if reset {
		if s.cfg.UseCarriageReturn {
			out = append(out, '\r')
			out = appendMoveCursor(out, s.cfg.PromptLen+pos)
		} else {
			out = appendMoveCursor(out, -(s.cfg.LineLen + s.cfg.PromptLen + 2))
			out = appendMoveCursor(out, s.cfg.PromptLen+pos)
		}
	}
	for i := pos; i < s.cmdlen; i++ {
		if len(out) >= cap(out)-reserve {
			s.print(string(out))
			out = out[:0]
		}
		out = append(out, s.displayByte(i))
	}
	if len(out) >= cap(out)-reserve {
		s.print(string(out))
		out = out[:0]
	}
	out = append(out, escEraseEOL...)
	out = appendMoveCursor(out, s.cursor-s.cmdlen)
	s.print(string(out))
	s.scratch = out[:0]
}
