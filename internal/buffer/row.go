package buffer

import (
	"github.com/mino-editor/mino/internal/syntax"
)

// Row owns one line of logical text, its tab-expanded render form, and the
// highlight tag of every rendered character. render and hl are always the
// deterministic function of chars + tab stop + syntax table: every mutation
// of chars must be followed by Update before the row is read again.
type Row struct {
	chars   []rune
	render  []rune
	hl      []syntax.Highlight
	hasTabs bool
	dirty   bool
}

func NewRow() *Row {
	return &Row{}
}

func RowFromChars(chars string, tabStop int, syn *syntax.Syntax) *Row {
	r := &Row{chars: []rune(chars)}
	r.Update(tabStop, syn)
	return r
}

// Update rebuilds render from chars, expanding each tab to spaces up to the
// next multiple of tabStop, then rebuilds hl from the new render text.
func (r *Row) Update(tabStop int, syn *syntax.Syntax) {
	if tabStop < 1 {
		tabStop = 1
	}
	render := make([]rune, 0, len(r.chars))
	r.hasTabs = false
	for _, ch := range r.chars {
		if ch == '\t' {
			r.hasTabs = true
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, ch)
		}
	}
	r.render = render
	r.UpdateHighlight(syn)
}

// UpdateHighlight re-runs the tokenizer over the current render text.
// Overlay tags are reset; they are recomputed by the selection and search
// paths after every change.
func (r *Row) UpdateHighlight(syn *syntax.Syntax) {
	r.hl = syntax.Scan(r.render, syn)
}

// CxToRx converts a char index into the render column it starts at.
func (r *Row) CxToRx(cx, tabStop int) int {
	if tabStop < 1 {
		tabStop = 1
	}
	rx := 0
	for i, ch := range r.chars {
		if i == cx {
			break
		}
		if ch == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RxToCx is the inverse walk: it returns the char index whose rendered span
// first exceeds rx.
func (r *Row) RxToCx(rx, tabStop int) int {
	if tabStop < 1 {
		tabStop = 1
	}
	curRx := 0
	cx := 0
	for _, ch := range r.chars {
		if ch == '\t' {
			curRx += (tabStop - 1) - (curRx % tabStop)
		}
		curRx++
		if curRx > rx {
			return cx
		}
		cx++
	}
	return cx
}

// clampRange clamps a half-open range to [0, n]. A range entirely past the
// end collapses to empty.
func clampRange(n, from, to int) (int, int) {
	if from < 0 {
		from = 0
	}
	if from > n {
		from = n
	}
	if to > n {
		to = n
	}
	if to < from {
		to = from
	}
	return from, to
}

// CharsAt returns chars[from:to], clamping both endpoints instead of
// failing.
func (r *Row) CharsAt(from, to int) string {
	from, to = clampRange(len(r.chars), from, to)
	return string(r.chars[from:to])
}

// RenderAt returns render[from:to] with the same clamping.
func (r *Row) RenderAt(from, to int) string {
	from, to = clampRange(len(r.render), from, to)
	return string(r.render[from:to])
}

// Span is a run of rendered characters sharing one highlight tag.
type Span struct {
	Text string
	HL   syntax.Highlight
}

// Spans returns render[from:to] split into runs, emitting a new span only
// where the highlight tag changes between consecutive characters.
func (r *Row) Spans(from, to int) []Span {
	from, to = clampRange(len(r.render), from, to)
	if from == to {
		return nil
	}
	var spans []Span
	start := from
	for i := from + 1; i <= to; i++ {
		if i == to || r.hl[i] != r.hl[start] {
			spans = append(spans, Span{
				Text: string(r.render[start:i]),
				HL:   r.hl[start],
			})
			start = i
		}
	}
	return spans
}

// markOverlay sets the overlay tag on the render columns [from, to).
func (r *Row) markOverlay(from, to int, ov syntax.Overlay) {
	from, to = clampRange(len(r.hl), from, to)
	for i := from; i < to; i++ {
		r.hl[i].Overlay = ov
	}
}

// clearOverlay resets every occurrence of ov back to none.
func (r *Row) clearOverlay(ov syntax.Overlay) {
	for i := range r.hl {
		if r.hl[i].Overlay == ov {
			r.hl[i].Overlay = syntax.OverlayNone
		}
	}
}

func (r *Row) Size() int      { return len(r.chars) }
func (r *Row) RSize() int     { return len(r.render) }
func (r *Row) Chars() string  { return string(r.chars) }
func (r *Row) Render() string { return string(r.render) }
func (r *Row) HasTabs() bool  { return r.hasTabs }
func (r *Row) Dirty() bool    { return r.dirty }
func (r *Row) MarkDirty()     { r.dirty = true }
func (r *Row) MarkClean()     { r.dirty = false }

// HL exposes the tag array; its length always equals RSize after Update.
func (r *Row) HL() []syntax.Highlight { return r.hl }
