package syntax

import "unicode"

// Scan classifies every character of a rendered row. The scan is a single
// left-to-right pass; Function and Path detection patch the tags of the run
// just emitted, which keeps the whole thing O(len(render)).
//
// Quote and block-comment state is reset at every row boundary: a string or
// comment spanning multiple rows is re-scanned from default state on each
// row. Known limitation inherited from the row-at-a-time design.
func Scan(render []rune, syn *Syntax) []Highlight {
	n := len(render)
	hl := make([]Highlight, n)
	if syn == nil || syn.Lang == LangUnknown {
		return hl
	}

	prevSep := true
	var quote rune
	nested := 0

	i := 0
	for i < n {
		ch := render[i]
		prev := ClassNormal
		if i > 0 {
			prev = hl[i-1].Class
		}

		if syn.LineComment != "" && quote == 0 && matchAt(render, i, syn.LineComment) {
			for j := i; j < n; j++ {
				hl[j].Class = ClassComment
			}
			break
		}

		if start := syn.BlockComment[0]; start != "" && quote == 0 {
			if matchAt(render, i, start) {
				for j := 0; j < len(start); j++ {
					hl[i+j].Class = ClassComment
				}
				i += len(start)
				nested++
				continue
			}
			if nested > 0 {
				end := syn.BlockComment[1]
				if matchAt(render, i, end) {
					for j := 0; j < len(end); j++ {
						hl[i+j].Class = ClassComment
					}
					i += len(end)
					if syn.Flags.Has(NestedComments) {
						nested--
					} else {
						nested = 0
					}
					prevSep = true
				} else {
					hl[i].Class = ClassComment
					i++
				}
				continue
			}
		}

		if prevSep && quote == 0 {
			if cls, length := matchWord(render, i, syn); length > 0 {
				for j := 0; j < length; j++ {
					hl[i+j].Class = cls
				}
				i += length
				prevSep = i < n && IsSep(render[i])
				continue
			}
		}

		if syn.Flags.Has(HighlightStrings) {
			if quote != 0 {
				hl[i].Class = ClassString
				if ch == '\\' && i+1 < n {
					hl[i+1].Class = ClassString
					i += 2
					continue
				}
				if ch == quote {
					quote = 0
				}
				prevSep = true
				i++
				continue
			}
			if ch == '"' || ch == '\'' {
				quote = ch
				hl[i].Class = ClassString
				i++
				continue
			}
		}

		if syn.Flags.Has(HighlightNumbers) &&
			((unicode.IsDigit(ch) && (prevSep || prev == ClassNumber)) ||
				(ch == '.' && prev == ClassNumber)) {
			hl[i].Class = ClassNumber
			prevSep = false
			i++
			continue
		}

		if syn.Flags.Has(HighlightIdents) && !IsSep(ch) {
			if prevSep {
				cls := ClassIdent
				if syn.Flags.Has(CapitalTypes) && unicode.IsUpper(ch) {
					cls = ClassType
				}
				hl[i].Class = cls
				prevSep = false
				i++
				continue
			}
			if prev == ClassIdent || (syn.Flags.Has(CapitalTypes) && prev == ClassType) {
				hl[i].Class = prev
				prevSep = false
				i++
				continue
			}
		}

		if prev == ClassIdent {
			if ch == '(' {
				for j := i - 1; j >= 0 && hl[j].Class == ClassIdent; j-- {
					hl[j].Class = ClassFunction
				}
			} else {
				for _, sep := range syn.PathSeps {
					if matchAt(render, i, sep) {
						for j := i - 1; j >= 0 && hl[j].Class == ClassIdent; j-- {
							hl[j].Class = ClassPath
						}
						break
					}
				}
			}
		}

		hl[i].Class = ClassNormal
		prevSep = IsSep(ch)
		i++
	}

	return hl
}

// matchAt reports whether the ASCII literal occurs at render[i:].
func matchAt(render []rune, i int, lit string) bool {
	if i+len(lit) > len(render) {
		return false
	}
	for j := 0; j < len(lit); j++ {
		if render[i+j] != rune(lit[j]) {
			return false
		}
	}
	return true
}

// matchWord tries the word lists in priority order. A literal matches only
// when it is followed by a separator or end of row. Returns length 0 when
// nothing matches.
func matchWord(render []rune, i int, syn *Syntax) (Class, int) {
	lists := []struct {
		words []string
		cls   Class
	}{
		{syn.Keywords, ClassKeyword},
		{syn.Flowwords, ClassFlowword},
		{syn.Types, ClassType},
		{syn.Metawords, ClassMetaword},
	}
	for _, l := range lists {
		for _, w := range l.words {
			end := i + len(w)
			if !matchAt(render, i, w) {
				continue
			}
			if end == len(render) || IsSep(render[end]) {
				return l.cls, len(w)
			}
		}
	}
	return ClassNormal, 0
}
