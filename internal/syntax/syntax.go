// Package syntax holds the per-language highlighting rule sets and the
// tokenizer that classifies rendered row text for display.
package syntax

import "strings"

// Language identifies a rule set in the registry.
type Language int

const (
	LangUnknown Language = iota
	LangC
	LangGo
	LangRust
	LangPython
)

func (l Language) String() string {
	switch l {
	case LangC:
		return "c"
	case LangGo:
		return "go"
	case LangRust:
		return "rust"
	case LangPython:
		return "python"
	default:
		return "unknown"
	}
}

// Flags control which scanner rules a language enables.
type Flags uint8

const (
	HighlightNumbers Flags = 1 << iota
	HighlightStrings
	HighlightIdents
	NestedComments
	CapitalTypes // identifiers starting uppercase are tagged Type
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

// Syntax is an immutable per-language rule set. Rows hold a shared *Syntax;
// tables are built once at init and never mutated.
type Syntax struct {
	Lang         Language
	Exts         []string
	Keywords     []string
	Flowwords    []string
	Types        []string
	Metawords    []string
	PathSeps     []string
	LineComment  string
	BlockComment [2]string // start, end; both empty when unsupported
	Flags        Flags
}

// Unknown is the fallback table: no rules, no scan.
var Unknown = &Syntax{Lang: LangUnknown}

// Select returns the table registered for the given file extension
// (with or without the leading dot), or Unknown.
func Select(ext string) *Syntax {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return Unknown
	}
	for _, s := range registry {
		for _, e := range s.Exts {
			if e == ext {
				return s
			}
		}
	}
	return Unknown
}

// IsSep reports whether ch bounds a word run: ASCII whitespace, NUL, or
// ASCII punctuation other than underscore.
func IsSep(ch rune) bool {
	switch ch {
	case 0, ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	case '_':
		return false
	}
	return (ch >= '!' && ch <= '/') ||
		(ch >= ':' && ch <= '@') ||
		(ch >= '[' && ch <= '`') ||
		(ch >= '{' && ch <= '~')
}
