package syntax

import "testing"

func classesOf(hl []Highlight) []Class {
	out := make([]Class, len(hl))
	for i, h := range hl {
		out[i] = h.Class
	}
	return out
}

func expectClasses(t *testing.T, render string, syn *Syntax, want []Class) {
	t.Helper()
	hl := Scan([]rune(render), syn)
	if len(hl) != len([]rune(render)) {
		t.Fatalf("len(hl) = %d, want %d", len(hl), len([]rune(render)))
	}
	got := classesOf(hl)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: class at %d = %v, want %v (full: %v)", render, i, got[i], want[i], got)
		}
	}
}

func rep(c Class, n int) []Class {
	out := make([]Class, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func cat(parts ...[]Class) []Class {
	var out []Class
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestScanDeclarationWithComment(t *testing.T) {
	// int x = 5; // note
	expectClasses(t, "int x = 5; // note", cSyntax, cat(
		rep(ClassType, 3),    // int
		rep(ClassNormal, 1),  // space
		rep(ClassIdent, 1),   // x
		rep(ClassNormal, 3),  // " = "
		rep(ClassNumber, 1),  // 5
		rep(ClassNormal, 2),  // "; "
		rep(ClassComment, 7), // // note
	))
}

func TestScanFunctionCall(t *testing.T) {
	expectClasses(t, "foo(bar)", goSyntax, cat(
		rep(ClassFunction, 3),
		rep(ClassNormal, 1),
		rep(ClassIdent, 3),
		rep(ClassNormal, 1),
	))
}

func TestScanPath(t *testing.T) {
	expectClasses(t, "std::io", rustSyntax, cat(
		rep(ClassPath, 3),
		rep(ClassNormal, 2),
		rep(ClassIdent, 2),
	))
}

func TestScanNumbers(t *testing.T) {
	expectClasses(t, "x = 3.14", cSyntax, cat(
		rep(ClassIdent, 1),
		rep(ClassNormal, 3),
		rep(ClassNumber, 4),
	))
	// Digits inside an identifier stay part of the identifier.
	expectClasses(t, "x2", cSyntax, rep(ClassIdent, 2))
}

func TestScanStringWithEscape(t *testing.T) {
	expectClasses(t, `s = "a\"b"`, goSyntax, cat(
		rep(ClassIdent, 1),
		rep(ClassNormal, 3),
		rep(ClassString, 6),
	))
}

func TestScanUnclosedString(t *testing.T) {
	expectClasses(t, `"abc`, goSyntax, rep(ClassString, 4))
}

func TestScanKeywordNeedsBoundary(t *testing.T) {
	// "for" only as a whole word.
	expectClasses(t, "for format", goSyntax, cat(
		rep(ClassFlowword, 3),
		rep(ClassNormal, 1),
		rep(ClassIdent, 6),
	))
}

func TestScanKeywordAtEndOfRow(t *testing.T) {
	expectClasses(t, "return", goSyntax, rep(ClassFlowword, 6))
}

func TestScanMetaword(t *testing.T) {
	expectClasses(t, "#include <a.h>", cSyntax, cat(
		rep(ClassMetaword, 8),
		rep(ClassNormal, 2), // " <"
		rep(ClassIdent, 1),  // a
		rep(ClassNormal, 1), // .
		rep(ClassIdent, 1),  // h
		rep(ClassNormal, 1), // >
	))
}

func TestScanCapitalTypes(t *testing.T) {
	expectClasses(t, "var w Writer", goSyntax, cat(
		rep(ClassKeyword, 3),
		rep(ClassNormal, 1),
		rep(ClassIdent, 1),
		rep(ClassNormal, 1),
		rep(ClassType, 6),
	))
	// C has no capital-type rule.
	expectClasses(t, "Writer", cSyntax, rep(ClassIdent, 6))
}

func TestScanBlockComment(t *testing.T) {
	expectClasses(t, "a /* b */ c", cSyntax, cat(
		rep(ClassIdent, 1),
		rep(ClassNormal, 1),
		rep(ClassComment, 7),
		rep(ClassNormal, 1),
		rep(ClassIdent, 1),
	))
}

func TestScanNestedBlockComment(t *testing.T) {
	src := "/* a /* b */ c */"
	// Rust comments nest, so everything is comment.
	expectClasses(t, src, rustSyntax, rep(ClassComment, len(src)))

	// C comments do not nest: the first */ ends the comment.
	expectClasses(t, src, cSyntax, cat(
		rep(ClassComment, 12),
		rep(ClassNormal, 1),
		rep(ClassIdent, 1),
		rep(ClassNormal, 3),
	))
}

func TestScanCommentSuppressedInString(t *testing.T) {
	expectClasses(t, `"//x"`, goSyntax, rep(ClassString, 5))
}

func TestScanPythonLineComment(t *testing.T) {
	expectClasses(t, "x = 1 # hi", pythonSyntax, cat(
		rep(ClassIdent, 1),
		rep(ClassNormal, 3),
		rep(ClassNumber, 1),
		rep(ClassNormal, 1),
		rep(ClassComment, 4),
	))
}

func TestScanUnknownLanguage(t *testing.T) {
	hl := Scan([]rune("int x = 5;"), Unknown)
	for i, h := range hl {
		if h.Class != ClassNormal || h.Overlay != OverlayNone {
			t.Fatalf("unknown syntax should be all normal, got %v at %d", h, i)
		}
	}
}

func TestScanEmptyRow(t *testing.T) {
	if hl := Scan(nil, goSyntax); len(hl) != 0 {
		t.Fatalf("len(hl) = %d, want 0", len(hl))
	}
}
