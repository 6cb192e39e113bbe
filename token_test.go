package termline

import (
	"bytes"
	"reflect"
	"testing"
)

// splitLine runs a full tokenize pass over the given visible text and
// returns the materialized tokens, restoring the buffer afterwards.
func splitLine(t *testing.T, s *Session, text string) ([]string, error) {
	t.Helper()
	s.clearLine()
	if err := s.InsertText([]byte(text)); err != nil {
		t.Fatalf("InsertText(%q): %v", text, err)
	}
	err := s.tokenize(s.cmdlen)
	var args []string
	if err == nil {
		args = s.argv(false)
	}
	s.restoreLine(s.cmdlen)
	return args, err
}

func TestSplit(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	tests := []struct {
		line string
		want []string
	}{
		{"foo bar", []string{"foo", "bar"}},
		{"foo", []string{"foo"}},
		{"", []string{}},
		{"foo  bar   baz", []string{"foo", "bar", "baz"}},
		{"foo 'bar baz'", []string{"foo", "bar baz"}},
		{`foo "bar baz" qux`, []string{"foo", "bar baz", "qux"}},
		{"'a b' 'c d'", []string{"a b", "c d"}},
		{"''", []string{""}},
	}
	for _, tt := range tests {
		got, err := splitLine(t, s, tt.line)
		if err != nil {
			t.Errorf("split(%q) error: %v", tt.line, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("split(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestSplitFailures(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxTokens = 3
	cfg.MaxQuotedTokens = 1
	s, _ := newTestSession(t, cfg)

	tests := []struct {
		line string
		want error
	}{
		{"foo 'bar", ErrBadQuoting},
		{"'a'b", ErrBadQuoting},
		{"a b c d", ErrTooManyTokens},
		{"'a b' 'c d'", ErrTooManyQuoted},
	}
	for _, tt := range tests {
		if _, err := splitLine(t, s, tt.line); err != tt.want {
			t.Errorf("split(%q) error = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestFailedSplitRestoresBuffer(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	for _, line := range []string{"foo 'bar", "'x' 'y", "foo 'bar baz' 'qux"} {
		s.clearLine()
		if err := s.InsertText([]byte(line)); err != nil {
			t.Fatalf("InsertText(%q): %v", line, err)
		}
		before := append([]byte(nil), s.buf...)

		if err := s.tokenize(s.cmdlen); err == nil {
			t.Errorf("split(%q) unexpectedly succeeded", line)
		}
		s.restoreLine(s.cmdlen)

		if !bytes.Equal(s.buf, before) {
			t.Errorf("split(%q) left buffer %q, want %q", line, s.buf, before)
		}
	}
}

func TestSuccessfulSplitRestoresBuffer(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.InsertText([]byte("set name 'Home Net'"))
	before := append([]byte(nil), s.buf...)

	if err := s.tokenize(s.cmdlen); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	s.restoreLine(s.cmdlen)

	if !bytes.Equal(s.buf, before) {
		t.Errorf("buffer after restore = %q, want %q", s.buf, before)
	}
}

func TestSplitWithQuotingDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UseQuoting = false
	s, _ := newTestSession(t, cfg)
	got, err := splitLine(t, s, "'a b'")
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	want := []string{"'a", "b'"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("split = %q, want %q", got, want)
	}
}

func TestSplitLimitStopsAtCursorScope(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.InsertText([]byte("foo bar"))
	if err := s.tokenize(3); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	args := s.argv(false)
	s.restoreLine(3)
	want := []string{"foo"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("tokens up to limit 3 = %q, want %q", args, want)
	}
}
