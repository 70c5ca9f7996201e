package buffer

// historyDepth bounds the applied stack; the oldest entry is evicted
// silently when a new edit is recorded at capacity.
const historyDepth = 50

// History is the bounded undo/redo log of one TextBuffer.
//
// Invariant: applied holds diffs exactly as performed, oldest first, at most
// historyDepth of them. undone holds the *inverse* of each undone diff, most
// recent last, unbounded. Undo pops applied and pushes the inverse; Redo
// pops undone and pushes the inverse back, restoring the original diff.
// History never mutates the buffer: the caller applies the matching splice
// itself (see TextBuffer.Undo and TextBuffer.Redo).
type History struct {
	applied []Diff
	undone  []Diff
}

func NewHistory() *History {
	return &History{applied: make([]Diff, 0, historyDepth)}
}

// Record appends a freshly performed edit and discards the redo branch.
func (h *History) Record(d Diff) {
	if len(h.applied) == historyDepth {
		copy(h.applied, h.applied[1:])
		h.applied = h.applied[:historyDepth-1]
	}
	h.applied = append(h.applied, d)
	h.undone = h.undone[:0]
}

// Undo moves the newest applied diff onto the undone stack, inverted.
// Reports false when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.applied) == 0 {
		return false
	}
	d := h.applied[len(h.applied)-1]
	h.applied = h.applied[:len(h.applied)-1]
	h.undone = append(h.undone, d.Inverse())
	return true
}

// Redo moves the newest undone diff back onto the applied stack. Reports
// false when there is nothing to redo.
func (h *History) Redo() bool {
	if len(h.undone) == 0 {
		return false
	}
	d := h.undone[len(h.undone)-1]
	h.undone = h.undone[:len(h.undone)-1]
	h.applied = append(h.applied, d.Inverse())
	return true
}

// Current returns the diff at the top of the applied stack, or nil.
func (h *History) Current() *Diff {
	if len(h.applied) == 0 {
		return nil
	}
	return &h.applied[len(h.applied)-1]
}

// Len reports the number of undoable edits.
func (h *History) Len() int { return len(h.applied) }
