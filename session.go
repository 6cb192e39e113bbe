package termline

// EchoMode controls whether and how typed bytes are reflected back to the
// terminal.
type EchoMode int

const (
	// EchoOn reflects every typed byte.
	EchoOn EchoMode = iota
	// EchoOff reflects nothing; the renderer is disabled entirely.
	EchoOff
	// EchoOnce masks input with '*' until the line is submitted, then the
	// session reverts to EchoOn. Intended for password entry.
	EchoOnce
)

// maskChar replaces input bytes on screen while echo is EchoOnce.
const maskChar = '*'

// Hooks is the capability set a host hands to New. Print is required; the
// other members are optional and default to no-ops. Hooks run synchronously
// on the ProcessByte call that triggers them and must not re-enter the
// session.
type Hooks struct {
	// Print is the output sink. It may be called several times per logical
	// redraw and must write the chunk before returning.
	Print func(s *Session, text string)

	// Execute is invoked once per confirmed, non-empty, well-formed line.
	// The argv slice and its strings are owned by the caller of ProcessByte
	// only for the duration of the call.
	Execute func(s *Session, argv []string)

	// Complete returns completion candidates for the token context at the
	// cursor. The last argv entry is the (possibly empty) token being
	// completed. Candidate strings remain owned by the host.
	Complete func(s *Session, argv []string) []string

	// Sigint is invoked when the interrupt byte (^C) is received.
	Sigint func(s *Session)
}

// Session is one independent line editor: buffer, cursor, history and hooks.
// Sessions share no state; concurrent terminals get one Session each. All
// methods must be called from a single goroutine.
type Session struct {
	cfg Config

	buf    []byte // line content in buf[:cmdlen], buf[cmdlen] always zero
	cmdlen int
	cursor int

	echo      EchoMode
	maskStart int // first masked position under EchoOnce, -1 while unset

	lastEndl byte // CR or LF that just submitted a line, for pair coalescing
	esc      escState

	hist ringHistory

	tokens  []span
	quotes  []quoteMark
	scratch []byte

	hooks Hooks

	// UserData is free for host use; the engine never touches it.
	UserData any
}

// New allocates a Session sized by cfg and prints the first prompt. Zero
// capacity fields in cfg select their defaults. The returned session is
// ready to receive bytes.
func New(cfg Config, hooks Hooks) (*Session, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if hooks.Print == nil {
		return nil, ErrNoPrintHook
	}
	if hooks.Execute == nil {
		hooks.Execute = func(*Session, []string) {}
	}
	if hooks.Complete == nil {
		hooks.Complete = func(*Session, []string) []string { return nil }
	}
	if hooks.Sigint == nil {
		hooks.Sigint = func(*Session) {}
	}

	s := &Session{
		cfg:       cfg,
		buf:       make([]byte, cfg.LineLen),
		maskStart: -1,
		tokens:    make([]span, 0, cfg.MaxTokens),
		quotes:    make([]quoteMark, 0, cfg.MaxQuotedTokens),
		scratch:   make([]byte, 0, cfg.PrintBufLen),
		hooks:     hooks,
		echo:      EchoOn,
	}
	if cfg.UseHistory {
		s.hist.init(cfg.HistorySize)
	}
	s.printPrompt()
	return s, nil
}

// SetEcho selects how typed bytes are reflected. EchoOnce masks input until
// the next submitted line, then reverts to EchoOn.
func (s *Session) SetEcho(mode EchoMode) {
	s.echo = mode
	if mode != EchoOnce {
		s.maskStart = -1
	}
}

// SetPrompt replaces the prompt for subsequent lines and measures its
// display width anew. It takes effect at the next prompt print.
func (s *Session) SetPrompt(prompt string) {
	s.cfg.Prompt = prompt
	s.cfg.PromptLen = promptWidth(prompt)
}

// Line returns the visible text of the line currently being edited.
func (s *Session) Line() string {
	out := make([]byte, s.cmdlen)
	for i := range out {
		c := s.buf[i]
		if c == wordSep {
			c = ' '
		}
		out[i] = c
	}
	return string(out)
}

// Cursor returns the cursor position in bytes from the start of the line.
func (s *Session) Cursor() int {
	return s.cursor
}

// Len returns the length of the line currently being edited.
func (s *Session) Len() int {
	return s.cmdlen
}
