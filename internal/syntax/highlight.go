package syntax

// Class is the syntax classification of one rendered character.
type Class uint8

const (
	ClassNormal Class = iota
	ClassNumber
	ClassString
	ClassComment
	ClassKeyword
	ClassFlowword
	ClassType
	ClassMetaword
	ClassIdent
	ClassFunction
	ClassPath
)

// Overlay is transient presentation state layered over the syntax class.
// It is recomputed whenever the selection or search state changes; the
// syntax class only changes when the row text changes.
type Overlay uint8

const (
	OverlayNone Overlay = iota
	OverlayMatch
	OverlaySelected
)

// Highlight is the display tag of one rendered character.
type Highlight struct {
	Class   Class
	Overlay Overlay
}
