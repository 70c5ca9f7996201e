// Package buffer owns the document data model: rows of text, the
// char-index/render-column coordinate system, the multi-row splice
// algorithms, and the undo/redo history built from diffs.
package buffer

// Pos is a (column, row) pair. X is a char index when it addresses a row's
// logical text and a render column when it addresses the rendered text or
// the screen; call sites track which space they are in. The two are related
// only through Row.CxToRx and Row.RxToCx.
type Pos struct {
	X int
	Y int
}

// Less orders positions row-major, then by column.
func (p Pos) Less(o Pos) bool {
	if p.Y != o.Y {
		return p.Y < o.Y
	}
	return p.X < o.X
}

// ordered returns the two positions in ascending order.
func ordered(a, b Pos) (Pos, Pos) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}
