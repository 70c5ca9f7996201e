package session

import (
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	m.SetFileState("/tmp/a.go", FileState{CursorX: 3, CursorY: 7})
	if err := m.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	m2, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	st, ok := m2.FileStateFor("/tmp/a.go")
	if !ok {
		t.Fatalf("file state not found after reload")
	}
	if st.CursorX != 3 || st.CursorY != 7 {
		t.Fatalf("state = %+v, want {3 7}", st)
	}
	if got := m2.ActiveFile(); got != "/tmp/a.go" {
		t.Fatalf("ActiveFile = %q, want %q", got, "/tmp/a.go")
	}
}

func TestSaveSkipsWhenClean(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	// Nothing recorded; Save must not write a file.
	if err := m.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	m2, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	if _, ok := m2.FileStateFor("/tmp/a.go"); ok {
		t.Fatalf("unexpected state in fresh session")
	}
}

func TestFreshSessionMissingFile(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	m, err := NewManager()
	if err != nil {
		t.Fatalf("NewManager error: %v", err)
	}
	if _, ok := m.FileStateFor("/nope"); ok {
		t.Fatalf("expected no state")
	}
}
