package gitinfo

import (
	"os"
	"path/filepath"
	"testing"
)

func writeHead(t *testing.T, dir, content string) {
	t.Helper()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(content), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
}

func TestBranch(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "ref: refs/heads/main\n")

	if got := Branch(dir); got != "main" {
		t.Fatalf("Branch = %q, want %q", got, "main")
	}
}

func TestBranchFromNestedFile(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "ref: refs/heads/feature/undo\n")
	sub := filepath.Join(dir, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(sub, "file.txt")
	if err := os.WriteFile(path, []byte("hi"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if got := Branch(path); got != "undo" {
		t.Fatalf("Branch = %q, want %q", got, "undo")
	}
}

func TestBranchDetached(t *testing.T) {
	dir := t.TempDir()
	writeHead(t, dir, "0123456789abcdef0123456789abcdef01234567\n")

	if got := Branch(dir); got != "detached:0123456" {
		t.Fatalf("Branch = %q, want %q", got, "detached:0123456")
	}
}

func TestBranchNotRepo(t *testing.T) {
	if got := Branch(t.TempDir()); got != "" {
		t.Fatalf("Branch = %q, want empty", got)
	}
}

func TestBranchWorktreePointer(t *testing.T) {
	dir := t.TempDir()
	realGit := filepath.Join(dir, "repo-git")
	if err := os.MkdirAll(realGit, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(realGit, "HEAD"), []byte("ref: refs/heads/wt\n"), 0o644); err != nil {
		t.Fatalf("write HEAD: %v", err)
	}
	wt := filepath.Join(dir, "wt")
	if err := os.MkdirAll(wt, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(wt, ".git"), []byte("gitdir: ../repo-git\n"), 0o644); err != nil {
		t.Fatalf("write pointer: %v", err)
	}

	if got := Branch(wt); got != "wt" {
		t.Fatalf("Branch = %q, want %q", got, "wt")
	}
}
