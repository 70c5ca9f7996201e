package buffer

import "github.com/mino-editor/mino/internal/syntax"

// ClearMatches removes the match overlay from every row.
func (tb *TextBuffer) ClearMatches() {
	for _, r := range tb.rows {
		r.clearOverlay(syntax.OverlayMatch)
	}
}

// SearchForward finds the first occurrence of query in the rendered text at
// or after from (render columns), wrapping past the end of the buffer. The
// match is tagged with the match overlay and its start position returned,
// or nil when query is empty or absent.
func (tb *TextBuffer) SearchForward(query string, from Pos) *Pos {
	q := []rune(query)
	if len(q) == 0 || len(tb.rows) == 0 {
		return nil
	}
	startY := from.Y
	if startY < 0 {
		startY = 0
	}
	if startY >= len(tb.rows) {
		startY = 0
	}
	for i := 0; i <= len(tb.rows); i++ {
		y := (startY + i) % len(tb.rows)
		col := 0
		if i == 0 {
			col = from.X
		}
		if x := indexRunes(tb.rows[y].render, q, col); x >= 0 {
			tb.rows[y].markOverlay(x, x+len(q), syntax.OverlayMatch)
			return &Pos{X: x, Y: y}
		}
	}
	return nil
}

// SearchBackward finds the last occurrence of query strictly before from,
// wrapping past the start of the buffer.
func (tb *TextBuffer) SearchBackward(query string, from Pos) *Pos {
	q := []rune(query)
	if len(q) == 0 || len(tb.rows) == 0 {
		return nil
	}
	startY := from.Y
	if startY < 0 || startY >= len(tb.rows) {
		startY = len(tb.rows) - 1
	}
	for i := 0; i <= len(tb.rows); i++ {
		y := ((startY-i)%len(tb.rows) + len(tb.rows)) % len(tb.rows)
		limit := tb.rows[y].RSize()
		if i == 0 {
			limit = from.X
		}
		if x := lastIndexRunes(tb.rows[y].render, q, limit); x >= 0 {
			tb.rows[y].markOverlay(x, x+len(q), syntax.OverlayMatch)
			return &Pos{X: x, Y: y}
		}
	}
	return nil
}

// indexRunes returns the first start index >= from where needle occurs in
// haystack, or -1.
func indexRunes(haystack, needle []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// lastIndexRunes returns the last start index with start+len(needle) <=
// limit where needle occurs, or -1.
func lastIndexRunes(haystack, needle []rune, limit int) int {
	if limit > len(haystack) {
		limit = len(haystack)
	}
	for i := limit - len(needle); i >= 0; i-- {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
