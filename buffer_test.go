package termline

import (
	"bytes"
	"testing"
)

func TestInsertText(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	if err := s.InsertText([]byte("hello")); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if s.Line() != "hello" {
		t.Errorf("Line() = %q, want %q", s.Line(), "hello")
	}
	if s.Cursor() != 5 || s.Len() != 5 {
		t.Errorf("cursor/len = %d/%d, want 5/5", s.Cursor(), s.Len())
	}
	if s.buf[s.cmdlen] != 0 {
		t.Error("buffer is not terminated at cmdlen")
	}
}

func TestInsertStoresSpacesAsSeparators(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	if err := s.InsertText([]byte("foo bar")); err != nil {
		t.Fatalf("InsertText: %v", err)
	}
	if s.buf[3] != wordSep {
		t.Errorf("buf[3] = %#x, want the separator", s.buf[3])
	}
	if s.Line() != "foo bar" {
		t.Errorf("Line() = %q, want %q", s.Line(), "foo bar")
	}
}

func TestInsertOverflowLeavesStateUnchanged(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineLen = 8
	s, _ := newTestSession(t, cfg)
	if err := s.InsertText([]byte("1234567")); err != nil {
		t.Fatalf("filling to capacity: %v", err)
	}
	before := append([]byte(nil), s.buf...)
	cursor, length := s.Cursor(), s.Len()

	if err := s.InsertText([]byte("x")); err != ErrLineFull {
		t.Fatalf("InsertText past capacity = %v, want ErrLineFull", err)
	}
	if !bytes.Equal(s.buf, before) || s.Cursor() != cursor || s.Len() != length {
		t.Error("failed insert modified the session")
	}
}

func TestInsertBackspaceRoundTrip(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.InsertText([]byte("abc"))
	before := append([]byte(nil), s.buf...)
	cursor := s.Cursor()

	s.InsertText([]byte("xyz"))
	s.backspace(3)
	if !bytes.Equal(s.buf, before) || s.Cursor() != cursor {
		t.Errorf("round trip left %q cursor %d, want %q cursor %d",
			s.Line(), s.Cursor(), "abc", cursor)
	}
}

func TestBackspaceNeedsEnoughBytesLeft(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.InsertText([]byte("ab"))
	s.backspace(3)
	if s.Line() != "ab" {
		t.Errorf("backspace(3) with cursor at 2 changed the line to %q", s.Line())
	}
}

func TestDeleteForward(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.InsertText([]byte("abc"))

	// At end of line nothing is under the cursor.
	s.deleteForward()
	if s.Line() != "abc" {
		t.Errorf("deleteForward at end changed the line to %q", s.Line())
	}

	s.moveCursor(-2)
	s.deleteForward()
	if s.Line() != "ac" || s.Cursor() != 1 {
		t.Errorf("deleteForward mid-line left %q cursor %d, want %q cursor 1", s.Line(), s.Cursor(), "ac")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	s, _ := newTestSession(t, DefaultConfig())
	s.InsertText([]byte("abcd"))
	tests := []struct {
		delta, wantMoved, wantCursor int
	}{
		{-2, -2, 2},
		{-10, -2, 0},
		{10, 4, 4},
		{1, 0, 4},
	}
	for _, tt := range tests {
		if moved := s.moveCursor(tt.delta); moved != tt.wantMoved || s.Cursor() != tt.wantCursor {
			t.Errorf("moveCursor(%d) = %d cursor %d, want %d cursor %d",
				tt.delta, moved, s.Cursor(), tt.wantMoved, tt.wantCursor)
		}
	}
}
