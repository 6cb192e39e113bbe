package termline

// escState tracks progress through one ESC sequence. There is no timeout:
// an unfinished sequence simply waits for its next byte.
type escState int

const (
	escNone     escState = iota
	escSeen              // got ESC, awaiting '['
	escBracket           // got ESC '[', awaiting the code
	escAwaitHome         // got a Home digit, awaiting '~'
	escAwaitEnd          // got an End digit, awaiting '~'
)

// processEscape consumes one byte of an escape sequence and reports whether
// the sequence is finished. Bytes that match no known transition finish the
// sequence immediately; unrecognized sequences are discarded silently.
func (s *Session) processEscape(ch byte) bool {
	switch s.esc {
	case escSeen:
		if ch == '[' {
			s.esc = escBracket
			return false
		}
	case escBracket:
		switch ch {
		case 'A':
			s.histNavigate(histUp)
		case 'B':
			s.histNavigate(histDown)
		case 'C':
			s.termMoveCursor(s.moveCursor(1))
		case 'D':
			s.termMoveCursor(s.moveCursor(-1))
		case '1', '7':
			s.esc = escAwaitHome
			return false
		case '4', '8':
			s.esc = escAwaitEnd
			return false
		}
	case escAwaitHome:
		if ch == '~' {
			s.termMoveCursor(s.moveCursor(-s.cursor))
		}
	case escAwaitEnd:
		if ch == '~' {
			s.termMoveCursor(s.moveCursor(s.cmdlen - s.cursor))
		}
	}
	return true
}
