package buffer

import (
	"path/filepath"
	"strings"

	"github.com/mino-editor/mino/internal/file"
	"github.com/mino-editor/mino/internal/syntax"
)

// TextBuffer owns the ordered row sequence of one document plus its
// dirty/selection state and edit history. A buffer has exactly one logical
// owner at a time; the syntax table it references is shared immutable data.
type TextBuffer struct {
	rows        []*Row
	fileName    string
	dirty       bool
	savedCursor Pos
	anchor      *Pos
	inSelect    bool
	syntax      *syntax.Syntax
	history     *History
}

// New creates an empty buffer with no highlighting.
func New() *TextBuffer {
	return &TextBuffer{
		syntax:  syntax.Unknown,
		history: NewHistory(),
	}
}

// Open replaces the buffer contents with the file at path. The syntax table
// is selected from the file extension before the rows are built so every
// row is highlighted on load.
func (tb *TextBuffer) Open(path string, tabStop int) error {
	tb.fileName = path
	tb.syntax = syntax.Select(filepath.Ext(path))

	text, err := file.ReadText(path)
	if err != nil {
		return err
	}

	tb.rows = nil
	for _, line := range splitLines(text) {
		tb.rows = append(tb.rows, RowFromChars(line, tabStop, tb.syntax))
	}
	tb.dirty = false
	return nil
}

// splitLines splits on newlines the way a line iterator does: a trailing
// newline does not produce a final empty line, and CR before LF is dropped.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Contents returns the newline-joined row text, with a trailing newline
// after every row including the last.
func (tb *TextBuffer) Contents() string {
	var sb strings.Builder
	for _, r := range tb.rows {
		sb.WriteString(r.Chars())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Save writes the buffer through the file collaborator and clears the dirty
// flag. Returns the number of bytes written.
func (tb *TextBuffer) Save() (int, error) {
	n, err := file.WriteText(tb.fileName, tb.Contents())
	if err != nil {
		return 0, err
	}
	tb.dirty = false
	return n, nil
}

// Rename moves the underlying file and reselects the syntax table.
func (tb *TextBuffer) Rename(path string, tabStop int) error {
	if err := file.Rename(tb.fileName, path); err != nil {
		return err
	}
	tb.fileName = path
	tb.syntax = syntax.Select(filepath.Ext(path))
	for _, r := range tb.rows {
		r.Update(tabStop, tb.syntax)
	}
	return nil
}

// RowAt returns the row at idx, clamped to the last row when idx is out of
// range. Returns nil only for an empty buffer.
func (tb *TextBuffer) RowAt(idx int) *Row {
	if len(tb.rows) == 0 {
		return nil
	}
	if idx >= len(tb.rows) {
		idx = len(tb.rows) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return tb.rows[idx]
}

// Append adds a row holding chars at the end of the buffer.
func (tb *TextBuffer) Append(chars string, tabStop int) {
	tb.rows = append(tb.rows, RowFromChars(chars, tabStop, tb.syntax))
}

func (tb *TextBuffer) NumRows() int           { return len(tb.rows) }
func (tb *TextBuffer) FileName() string       { return tb.fileName }
func (tb *TextBuffer) SetFileName(s string)   { tb.fileName = s }
func (tb *TextBuffer) Dirty() bool            { return tb.dirty }
func (tb *TextBuffer) MakeDirty()             { tb.dirty = true }
func (tb *TextBuffer) MakeClean()             { tb.dirty = false }
func (tb *TextBuffer) SavedCursor() Pos       { return tb.savedCursor }
func (tb *TextBuffer) SetSavedCursor(p Pos)   { tb.savedCursor = p }
func (tb *TextBuffer) Syntax() *syntax.Syntax { return tb.syntax }
func (tb *TextBuffer) History() *History      { return tb.history }

// InsertRows records an insert diff and splices the given logical text rows
// into the buffer at pos (render column, row index). It returns the cursor
// position after the edit: immediately past the text for a single-row
// insert, on the last inserted character for a multi-row insert.
func (tb *TextBuffer) InsertRows(pos Pos, rows []string, tabStop int) Pos {
	if len(rows) == 0 {
		return pos
	}
	tb.history.Record(Diff{Kind: DiffInsert, Pos: pos, Rows: rows})
	return tb.insertRows(pos, rows, tabStop)
}

// RemoveRows records a remove diff and splices the previously captured span
// back out of the buffer. rows must be the exact logical text between from
// and the end of the span, as produced by CreateRemovalSpan. Returns from,
// the collapse point.
func (tb *TextBuffer) RemoveRows(from Pos, rows []string, tabStop int) Pos {
	if len(rows) == 0 {
		return from
	}
	tb.history.Record(Diff{Kind: DiffRemove, Pos: from, Rows: rows})
	return tb.removeRows(from, rows, tabStop)
}

// insertRows performs the insert splice without touching history.
func (tb *TextBuffer) insertRows(pos Pos, rows []string, tabStop int) Pos {
	if len(tb.rows) == 0 {
		tb.rows = append(tb.rows, NewRow())
	}
	y := pos.Y
	if y >= len(tb.rows) {
		y = len(tb.rows) - 1
	}
	if y < 0 {
		y = 0
	}

	target := tb.rows[y]
	cx := target.RxToCx(pos.X, tabStop)
	if cx > len(target.chars) {
		cx = len(target.chars)
	}
	remaining := append([]rune(nil), target.chars[cx:]...)

	target.chars = append(target.chars[:cx:cx], []rune(rows[0])...)
	target.dirty = true

	lastY := y
	if len(rows) > 1 {
		inserted := make([]*Row, 0, len(rows)-1)
		for _, s := range rows[1:] {
			inserted = append(inserted, &Row{chars: []rune(s), dirty: true})
		}
		tail := tb.rows[y+1:]
		tb.rows = append(tb.rows[:y+1:y+1], append(inserted, tail...)...)
		lastY = y + len(rows) - 1
	}

	last := tb.rows[lastY]
	last.chars = append(last.chars, remaining...)
	for i := y; i <= lastY; i++ {
		tb.rows[i].Update(tabStop, tb.syntax)
	}
	tb.dirty = true

	if len(rows) == 1 {
		return Pos{X: target.CxToRx(cx+len([]rune(rows[0])), tabStop), Y: y}
	}
	endCx := len([]rune(rows[len(rows)-1])) - 1
	if endCx < 0 {
		endCx = 0
	}
	return Pos{X: last.CxToRx(endCx, tabStop), Y: lastY}
}

// removeRows performs the inverse splice without touching history. The end
// of the span is derived from the shape of rows: same row for one line,
// otherwise len(rows)-1 additional rows ending at the last row's length.
func (tb *TextBuffer) removeRows(from Pos, rows []string, tabStop int) Pos {
	if len(tb.rows) == 0 {
		return from
	}
	y := from.Y
	if y >= len(tb.rows) {
		y = len(tb.rows) - 1
	}
	if y < 0 {
		y = 0
	}

	first := tb.rows[y]
	cxFrom := first.RxToCx(from.X, tabStop)
	if cxFrom > len(first.chars) {
		cxFrom = len(first.chars)
	}

	if len(rows) == 1 {
		// rows holds logical text, so the span end is a char offset.
		cxTo := cxFrom + len([]rune(rows[0]))
		if cxTo > len(first.chars) {
			cxTo = len(first.chars)
		}
		first.chars = append(first.chars[:cxFrom:cxFrom], first.chars[cxTo:]...)
	} else {
		lastY := y + len(rows) - 1
		if lastY >= len(tb.rows) {
			lastY = len(tb.rows) - 1
		}
		last := tb.rows[lastY]
		cxTo := len([]rune(rows[len(rows)-1]))
		if cxTo > len(last.chars) {
			cxTo = len(last.chars)
		}
		first.chars = first.chars[:cxFrom:cxFrom]
		first.chars = append(first.chars, last.chars[cxTo:]...)
		tb.rows = append(tb.rows[:y+1], tb.rows[lastY+1:]...)
	}

	first.Update(tabStop, tb.syntax)
	first.dirty = true
	tb.dirty = true
	return from
}

// CreateRemovalSpan returns the exact logical text that removing the span
// between two render-column positions would delete. It feeds both remove
// diffs and clipboard copies; the buffer is not modified.
func (tb *TextBuffer) CreateRemovalSpan(from, to Pos, tabStop int) []string {
	if len(tb.rows) == 0 {
		return nil
	}
	if from.Y < 0 {
		from = Pos{X: 0, Y: 0}
	}
	if from.Y >= len(tb.rows) {
		from = Pos{X: tb.rows[len(tb.rows)-1].RSize(), Y: len(tb.rows) - 1}
	}
	if to.Y < 0 {
		to = Pos{X: 0, Y: 0}
	}
	if to.Y >= len(tb.rows) {
		to = Pos{X: tb.rows[len(tb.rows)-1].RSize(), Y: len(tb.rows) - 1}
	}
	from, to = ordered(from, to)

	if from.Y == to.Y {
		row := tb.rows[from.Y]
		a := row.RxToCx(from.X, tabStop)
		b := row.RxToCx(to.X, tabStop)
		return []string{row.CharsAt(a, b)}
	}

	span := make([]string, 0, to.Y-from.Y+1)
	firstRow := tb.rows[from.Y]
	span = append(span, firstRow.CharsAt(firstRow.RxToCx(from.X, tabStop), firstRow.Size()))
	for y := from.Y + 1; y < to.Y; y++ {
		span = append(span, tb.rows[y].Chars())
	}
	lastRow := tb.rows[to.Y]
	span = append(span, lastRow.CharsAt(0, lastRow.RxToCx(to.X, tabStop)))
	return span
}

// Undo applies the inverse of the newest recorded edit and pops it from
// history. Returns the resulting cursor position, or nil when there is
// nothing to undo.
func (tb *TextBuffer) Undo(tabStop int) *Pos {
	d := tb.history.Current()
	if d == nil {
		return nil
	}
	var p Pos
	switch d.Kind {
	case DiffInsert:
		p = tb.removeRows(d.Pos, d.Rows, tabStop)
	case DiffRemove:
		p = tb.insertRows(d.Pos, d.Rows, tabStop)
	}
	if !tb.history.Undo() {
		return nil
	}
	return &p
}

// Redo re-applies the newest undone edit. Returns the resulting cursor
// position, or nil when there is nothing to redo.
func (tb *TextBuffer) Redo(tabStop int) *Pos {
	if !tb.history.Redo() {
		return nil
	}
	d := tb.history.Current()
	if d == nil {
		return nil
	}
	var p Pos
	switch d.Kind {
	case DiffInsert:
		p = tb.insertRows(d.Pos, d.Rows, tabStop)
	case DiffRemove:
		p = tb.removeRows(d.Pos, d.Rows, tabStop)
	}
	return &p
}
