package termline

// Control bytes the dispatcher acts on. Anything else at or below 0x1f is
// discarded.
const (
	keyStartOfLine = 0x01 // ^A
	keyBack        = 0x02 // ^B
	keyInterrupt   = 0x03 // ^C
	keyDeleteFwd   = 0x04 // ^D
	keyEndOfLine   = 0x05 // ^E
	keyForward     = 0x06 // ^F
	keyBackspace   = 0x08 // ^H
	keyTab         = 0x09
	keyLF          = 0x0a
	keyKillEnd     = 0x0b // ^K
	keyCR          = 0x0d
	keyHistDown    = 0x0e // ^N
	keyHistUp      = 0x10 // ^P
	keyRetype      = 0x12 // ^R
	keyKillStart   = 0x15 // ^U
	keyEsc         = 0x1b
	keyDelete      = 0x7f
)

// ProcessByte feeds one input byte to the editor. It is the engine's only
// input entry point: each call processes the byte synchronously, running any
// hooks it triggers to completion before returning. ProcessByte is not
// re-entrant; hooks must not call back into the session.
func (s *Session) ProcessByte(ch byte) {
	if s.cfg.UseEscSeq && s.esc != escNone {
		if s.processEscape(ch) {
			s.esc = escNone
		}
		return
	}

	if ch == keyCR || ch == keyLF {
		// The second half of a CRLF or LFCR pair is swallowed so that both
		// conventions submit exactly one line each.
		other := byte(keyLF)
		if ch == keyLF {
			other = keyCR
		}
		if s.lastEndl == other {
			s.lastEndl = 0
			return
		}
		s.lastEndl = ch
		s.submitLine()
		return
	}
	s.lastEndl = 0

	switch ch {
	case keyTab:
		if s.cfg.UseCompletion {
			s.complete()
		}
	case keyEsc:
		if s.cfg.UseEscSeq {
			s.esc = escSeen
		}
	case keyKillStart:
		if s.cursor > 0 {
			s.backspace(s.cursor)
		}
		s.printLine(0, true)
	case keyKillEnd:
		s.termEraseEOL()
		s.cmdlen = s.cursor
		s.buf[s.cmdlen] = 0
	case keyEndOfLine:
		s.termMoveCursor(s.moveCursor(s.cmdlen - s.cursor))
	case keyStartOfLine:
		s.termMoveCursor(s.moveCursor(-s.cursor))
	case keyForward:
		s.termMoveCursor(s.moveCursor(1))
	case keyBack:
		s.termMoveCursor(s.moveCursor(-1))
	case keyHistUp:
		s.histNavigate(histUp)
	case keyHistDown:
		s.histNavigate(histDown)
	case keyDelete, keyBackspace:
		if s.cursor > 0 {
			s.backspace(1)
			if s.cursor == s.cmdlen {
				s.termBackspace()
			} else {
				s.printLine(s.cursor, true)
			}
		}
	case keyDeleteFwd:
		s.deleteForward()
		s.printLine(s.cursor, false)
	case keyRetype:
		s.printNewline()
		s.printPrompt()
		s.printLine(0, false)
	case keyInterrupt:
		if s.cfg.UseCtrlC {
			s.hooks.Sigint(s)
		}
	default:
		if ch <= 0x1f || (ch == ' ' && s.cmdlen == 0) {
			return
		}
		if s.InsertText([]byte{ch}) == nil {
			if s.cursor == s.cmdlen {
				s.echoByte(s.cursor - 1)
			} else {
				s.printLine(s.cursor-1, false)
			}
		}
	}
}

// submitLine confirms the current line: it is recorded in history, split
// into argv for the Execute hook, and cleared for the next prompt. Masked
// echo reverts to normal. A split failure prints a diagnostic instead of
// executing; the prompt is reprinted either way.
func (s *Session) submitLine() {
	s.printNewline()
	if s.cfg.UseHistory && s.cmdlen > 0 && s.echo == EchoOn {
		s.hist.save(s.buf[:s.cmdlen])
	}
	if s.echo == EchoOnce {
		s.echo = EchoOn
		s.maskStart = -1
	}

	err := s.tokenize(s.cmdlen)
	var args []string
	if err == nil && len(s.tokens) > 0 {
		args = s.argv(false)
	}
	s.restoreLine(s.cmdlen)

	if err != nil {
		if s.cfg.UseQuoting {
			s.print("ERROR: too many tokens or invalid quoting")
		} else {
			s.print("ERROR: too many tokens")
		}
		s.printNewline()
	} else if args != nil {
		s.hooks.Execute(s, args)
	}

	s.printPrompt()
	s.clearLine()
	if s.cfg.UseHistory {
		s.hist.cur = 0
	}
}
