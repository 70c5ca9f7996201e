package buffer

// DiffKind tags a Diff as an insertion or a removal.
type DiffKind uint8

const (
	DiffInsert DiffKind = iota
	DiffRemove
)

// Diff describes inserting or removing a span of logical text rows at a
// position. Rows holds the affected lines including the partial first/last
// line content actually spliced. A Diff is immutable once recorded.
type Diff struct {
	Kind DiffKind
	Pos  Pos
	Rows []string
}

// Inverse swaps the tag and keeps the payload.
func (d Diff) Inverse() Diff {
	k := DiffRemove
	if d.Kind == DiffRemove {
		k = DiffInsert
	}
	return Diff{Kind: k, Pos: d.Pos, Rows: d.Rows}
}
