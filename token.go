package termline

import "errors"

var (
	// ErrTooManyTokens is returned by a tokenize pass that finds more
	// tokens than Config.MaxTokens.
	ErrTooManyTokens = errors.New("termline: too many tokens")

	// ErrTooManyQuoted is returned by a tokenize pass that finds more
	// quoted tokens than Config.MaxQuotedTokens.
	ErrTooManyQuoted = errors.New("termline: too many quoted tokens")

	// ErrBadQuoting is returned for an unterminated quote or a closing
	// quote that is not followed by a token boundary.
	ErrBadQuoting = errors.New("termline: unterminated or malformed quoting")
)

// span is one token as an (offset, length) view into the line buffer. Spans
// stay valid only until the buffer is mutated.
type span struct {
	off, len int
}

// quoteMark records the offsets of one quoted token's quote characters;
// close is -1 until the closing quote is seen.
type quoteMark struct {
	open, close int
}

// tokenize splits buf[:limit] into s.tokens, treating the separator as the
// only boundary. When quoting is enabled, a leading ' or " at a token start
// opens a quoted token: separators inside become literal spaces and the
// closing quote, which must sit on a boundary, becomes a separator. The
// edits are made in place; the caller owns the follow-up call to
// restoreLine, which must run before the buffer is mutated again, whether
// tokenize succeeded or not.
func (s *Session) tokenize(limit int) error {
	s.tokens = s.tokens[:0]
	s.quotes = s.quotes[:0]

	ind := 0
	for {
		for ind < limit && s.buf[ind] == wordSep {
			ind++
		}
		if ind >= limit {
			return nil
		}

		var quote byte
		if s.cfg.UseQuoting && (s.buf[ind] == '\'' || s.buf[ind] == '"') {
			if len(s.quotes) == cap(s.quotes) {
				return ErrTooManyQuoted
			}
			quote = s.buf[ind]
			s.quotes = append(s.quotes, quoteMark{open: ind, close: -1})
			ind++
		}

		if len(s.tokens) == cap(s.tokens) {
			return ErrTooManyTokens
		}
		start := ind

		for ind < limit {
			c := s.buf[ind]
			if c == wordSep {
				if quote == 0 {
					break
				}
				s.buf[ind] = ' '
			} else if c == quote {
				if ind+1 < limit && s.buf[ind+1] != wordSep {
					return ErrBadQuoting
				}
				s.quotes[len(s.quotes)-1].close = ind
				s.buf[ind] = wordSep
				quote = 0
				break
			}
			ind++
		}
		if quote != 0 {
			return ErrBadQuoting
		}
		s.tokens = append(s.tokens, span{off: start, len: ind - start})
	}
}

// restoreLine undoes the in-place edits of the last tokenize pass: every
// separator that tentatively became a literal space turns back into a
// separator and recorded closing quotes get their quote character back. The
// buffer holds no literal space bytes at rest, so the sweep is unambiguous
// and a failed pass leaves the line byte-identical.
func (s *Session) restoreLine(limit int) {
	for i := 0; i < limit; i++ {
		if s.buf[i] == ' ' {
			s.buf[i] = wordSep
		}
	}
	for _, q := range s.quotes {
		if q.close >= 0 {
			s.buf[q.close] = s.buf[q.open]
		}
	}
	s.quotes = s.quotes[:0]
}

// argv materializes the current token spans as strings, detaching them from
// the buffer so restoreLine and later edits cannot invalidate what a hook
// holds. With extraEmpty an empty trailing token is appended, asking the
// completion host for a fresh word.
func (s *Session) argv(extraEmpty bool) []string {
	out := make([]string, 0, len(s.tokens)+1)
	for _, t := range s.tokens {
		out = append(out, string(s.buf[t.off:t.off+t.len]))
	}
	if extraEmpty {
		out = append(out, "")
	}
	return out
}
