package syntax

import "testing"

func TestSelect(t *testing.T) {
	cases := []struct {
		ext  string
		want Language
	}{
		{".go", LangGo},
		{"go", LangGo},
		{".RS", LangRust},
		{".c", LangC},
		{".hpp", LangC},
		{".py", LangPython},
		{".txt", LangUnknown},
		{"", LangUnknown},
	}
	for _, c := range cases {
		if got := Select(c.ext).Lang; got != c.want {
			t.Fatalf("Select(%q).Lang = %v, want %v", c.ext, got, c.want)
		}
	}
}

func TestSelectSharesTables(t *testing.T) {
	if Select(".go") != Select("go") {
		t.Fatalf("Select should return shared pointers")
	}
}

func TestIsSep(t *testing.T) {
	for _, ch := range " \t(){}[];:,.<>=+-*/%\"'!?&|^~#@" {
		if !IsSep(ch) {
			t.Fatalf("IsSep(%q) = false, want true", ch)
		}
	}
	for _, ch := range "abzAZ09_é" {
		if IsSep(ch) {
			t.Fatalf("IsSep(%q) = true, want false", ch)
		}
	}
}
