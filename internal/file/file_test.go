package file

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	n, err := WriteText(path, "hello\nworld\n")
	if err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	if n != 12 {
		t.Fatalf("WriteText = %d bytes, want 12", n)
	}
	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText error: %v", err)
	}
	if got != "hello\nworld\n" {
		t.Fatalf("ReadText = %q", got)
	}
}

func TestReadNotFound(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if fe.Kind != KindNotFound {
		t.Fatalf("Kind = %v, want %v", fe.Kind, KindNotFound)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("unwrap should reach os.ErrNotExist")
	}
}

func TestWritePermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	defer os.Chmod(dir, 0o755)

	_, err := WriteText(filepath.Join(dir, "a.txt"), "x")
	var fe *Error
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if fe.Kind != KindPermissionDenied {
		t.Fatalf("Kind = %v, want %v", fe.Kind, KindPermissionDenied)
	}
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "new.txt")
	if _, err := WriteText(oldPath, "x"); err != nil {
		t.Fatalf("WriteText error: %v", err)
	}
	if err := Rename(oldPath, newPath); err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	if _, err := os.Stat(newPath); err != nil {
		t.Fatalf("stat new path: %v", err)
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindNotFound:         "file not found",
		KindPermissionDenied: "permission denied",
		KindAlreadyExists:    "file already exists",
		KindOther:            "i/o error",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}
