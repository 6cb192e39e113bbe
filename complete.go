package termline

// commonPrefixLen returns the length of the longest prefix shared by all
// candidates, scanning the shortest candidate against every other.
func commonPrefixLen(cands []string) int {
	shortest := cands[0]
	for _, c := range cands[1:] {
		if len(c) < len(shortest) {
			shortest = c
		}
	}
	for i := 0; i < len(shortest); i++ {
		for _, c := range cands {
			if c[i] != shortest[i] {
				return i
			}
		}
	}
	return len(shortest)
}

// complete runs Tab completion at the cursor. The line up to the cursor is
// tokenized and handed to the Complete hook; with the cursor on a boundary
// (or the line empty) an empty trailing token asks the host for a fresh
// word. A single candidate is completed outright plus a trailing space; for
// several, the candidates are listed and only their shared prefix is
// inserted.
func (s *Session) complete() {
	if err := s.tokenize(s.cursor); err != nil {
		s.restoreLine(s.cursor)
		return
	}
	freshWord := s.cursor == 0 || s.buf[s.cursor-1] == wordSep
	args := s.argv(freshWord)
	s.restoreLine(s.cursor)

	cands := s.hooks.Complete(s, args)
	if len(cands) == 0 {
		return
	}

	typed := args[len(args)-1]
	pos := s.cursor
	var lcp int
	if len(cands) == 1 {
		lcp = len(cands[0])
	} else {
		lcp = commonPrefixLen(cands)
		s.printNewline()
		for _, c := range cands {
			s.print(c)
			s.printNewline()
		}
		s.printPrompt()
		pos = 0
	}

	if lcp > len(typed) {
		s.InsertText([]byte(cands[0][len(typed):lcp]))
	}
	if len(cands) == 1 && lcp > 0 {
		s.InsertText([]byte{' '})
	}
	s.printLine(pos, false)
}
