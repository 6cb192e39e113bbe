package termline

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Defaults mirror classic serial-console tuning: a 64 byte line is plenty
// for a human typing at a device shell, and the 40 byte scratch buffer keeps
// redraw chunks small enough for slow links.
const (
	DefaultLineLen         = 64
	DefaultMaxTokens       = 8
	DefaultMaxQuotedTokens = 2
	DefaultHistorySize     = 64
	DefaultPrintBufLen     = 40
	DefaultPrompt          = "> "
	DefaultEOL             = "\r\n"
)

// maxHistorySize bounds the history ring: records carry a single length
// prefix byte, so record lengths and offsets must fit in 0..255.
const maxHistorySize = 256

// minPrintBufLen leaves room in the scratch buffer for one redraw chunk plus
// the trailing erase and cursor-back sequences.
const minPrintBufLen = 16

var (
	// ErrNoPrintHook is returned by New when Hooks.Print is nil. All other
	// hooks are optional; the print sink is not.
	ErrNoPrintHook = errors.New("termline: Print hook is required")

	// ErrConfig is returned by New when a Config value is out of range.
	ErrConfig = errors.New("termline: invalid configuration")
)

// Config is the construction-time tuning of a Session. None of it is
// runtime-mutable except the prompt (see Session.SetPrompt). The zero value
// of any capacity field selects its default; the feature toggles default to
// off, so most hosts start from DefaultConfig.
type Config struct {
	// LineLen is the line buffer capacity in bytes. One byte is reserved for
	// the terminator, so the longest editable line is LineLen-1 bytes.
	LineLen int

	// MaxTokens caps how many tokens one line may split into.
	MaxTokens int

	// MaxQuotedTokens caps how many tokens on one line may be quoted.
	MaxQuotedTokens int

	// HistorySize is the history ring capacity in bytes, at most 256.
	// Storing a line costs its length plus one prefix byte.
	HistorySize int

	// PrintBufLen is the renderer scratch buffer size, at least 16.
	PrintBufLen int

	// Prompt is printed before every input line. It may contain color
	// escape sequences.
	Prompt string

	// PromptLen is the display width of Prompt in columns. Leave zero to
	// have it measured; set it explicitly if the measurement cannot
	// describe your prompt.
	PromptLen int

	// EOL is what the renderer emits for a line break.
	EOL string

	UseHistory    bool
	UseQuoting    bool
	UseCompletion bool
	UseEscSeq     bool
	UseCtrlC      bool

	// UseCarriageReturn redraws from the left margin with a single '\r'
	// instead of a large cursor-left move. Disable it for terminals that
	// simulate a line feed when they receive a carriage return.
	UseCarriageReturn bool
}

// DefaultConfig returns the default tuning with every feature enabled.
func DefaultConfig() Config {
	return Config{
		LineLen:           DefaultLineLen,
		MaxTokens:         DefaultMaxTokens,
		MaxQuotedTokens:   DefaultMaxQuotedTokens,
		HistorySize:       DefaultHistorySize,
		PrintBufLen:       DefaultPrintBufLen,
		Prompt:            DefaultPrompt,
		EOL:               DefaultEOL,
		UseHistory:        true,
		UseQuoting:        true,
		UseCompletion:     true,
		UseEscSeq:         true,
		UseCtrlC:          true,
		UseCarriageReturn: true,
	}
}

func (c *Config) applyDefaults() {
	if c.LineLen == 0 {
		c.LineLen = DefaultLineLen
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.MaxQuotedTokens == 0 {
		c.MaxQuotedTokens = DefaultMaxQuotedTokens
	}
	if c.HistorySize == 0 {
		c.HistorySize = DefaultHistorySize
	}
	if c.PrintBufLen == 0 {
		c.PrintBufLen = DefaultPrintBufLen
	}
	if c.Prompt == "" {
		c.Prompt = DefaultPrompt
	}
	if c.EOL == "" {
		c.EOL = DefaultEOL
	}
	if c.PromptLen == 0 {
		c.PromptLen = promptWidth(c.Prompt)
	}
}

func (c *Config) validate() error {
	if c.LineLen < 2 {
		return fmt.Errorf("%w: line length %d is below 2", ErrConfig, c.LineLen)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("%w: max tokens %d is below 1", ErrConfig, c.MaxTokens)
	}
	if c.MaxQuotedTokens < 1 {
		return fmt.Errorf("%w: max quoted tokens %d is below 1", ErrConfig, c.MaxQuotedTokens)
	}
	if c.HistorySize < 4 || c.HistorySize > maxHistorySize {
		return fmt.Errorf("%w: history size %d is outside 4..%d", ErrConfig, c.HistorySize, maxHistorySize)
	}
	if c.PrintBufLen < minPrintBufLen {
		return fmt.Errorf("%w: print buffer %d is below %d", ErrConfig, c.PrintBufLen, minPrintBufLen)
	}
	return nil
}

// promptWidth measures how many terminal columns a prompt occupies. CSI
// sequences are skipped so colored prompts measure correctly.
func promptWidth(p string) int {
	w := 0
	for i := 0; i < len(p); {
		if p[i] == 0x1b && i+1 < len(p) && p[i+1] == '[' {
			i += 2
			for i < len(p) && !isCSIFinal(p[i]) {
				i++
			}
			if i < len(p) {
				i++
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(p[i:])
		w += runewidth.RuneWidth(r)
		i += size
	}
	return w
}

// isCSIFinal reports whether b terminates a CSI escape sequence.
func isCSIFinal(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
