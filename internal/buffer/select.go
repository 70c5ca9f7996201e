package buffer

import "github.com/mino-editor/mino/internal/syntax"

// EnterSelect starts a selection anchored at the given render-column
// position. Re-entering while already selecting keeps the original anchor.
func (tb *TextBuffer) EnterSelect(anchor Pos) {
	if tb.inSelect {
		return
	}
	a := anchor
	tb.anchor = &a
	tb.inSelect = true
}

// ExitSelect drops the anchor and clears every selection overlay.
func (tb *TextBuffer) ExitSelect() {
	tb.anchor = nil
	tb.inSelect = false
	for _, r := range tb.rows {
		r.clearOverlay(syntax.OverlaySelected)
	}
}

func (tb *TextBuffer) InSelect() bool { return tb.inSelect }

// Anchor returns the selection anchor, or nil outside select mode.
func (tb *TextBuffer) Anchor() *Pos {
	if !tb.inSelect {
		return nil
	}
	return tb.anchor
}

// MarkSelection recomputes the selection overlay for the span between the
// anchor and cursor, both in render columns. Previous selection overlays are
// cleared first so shrinking the selection unmarks correctly.
func (tb *TextBuffer) MarkSelection(cursor Pos) {
	if !tb.inSelect || tb.anchor == nil {
		return
	}
	for _, r := range tb.rows {
		r.clearOverlay(syntax.OverlaySelected)
	}
	from, to := ordered(*tb.anchor, cursor)
	if from.Y < 0 || from.Y >= len(tb.rows) {
		return
	}
	if to.Y >= len(tb.rows) {
		to = Pos{X: tb.rows[len(tb.rows)-1].RSize(), Y: len(tb.rows) - 1}
	}

	if from.Y == to.Y {
		tb.rows[from.Y].markOverlay(from.X, to.X, syntax.OverlaySelected)
		return
	}
	first := tb.rows[from.Y]
	first.markOverlay(from.X, first.RSize(), syntax.OverlaySelected)
	for y := from.Y + 1; y < to.Y; y++ {
		tb.rows[y].markOverlay(0, tb.rows[y].RSize(), syntax.OverlaySelected)
	}
	tb.rows[to.Y].markOverlay(0, to.X, syntax.OverlaySelected)
}
