// Package screen draws editor frames onto a tcell screen: text rows with
// their highlight spans, the line number gutter, the status bar and the
// message bar. It owns the scroll offsets; the cursor and all editing state
// belong to the caller.
package screen

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/mino-editor/mino/internal/buffer"
	"github.com/mino-editor/mino/internal/config"
	"github.com/mino-editor/mino/internal/syntax"
)

const Version = "0.1.0"

// Frame is everything one redraw needs. Cursor is in render coordinates.
type Frame struct {
	Buf       *buffer.TextBuffer
	Cursor    buffer.Pos
	Message   string
	GitBranch string
	BufIndex  int
	BufCount  int
}

type Screen struct {
	ts tcell.Screen

	base     tcell.Style
	status   tcell.Style
	gutter   tcell.Style
	classes  map[syntax.Class]tcell.Style
	selected tcell.Style
	match    tcell.Style

	lineNumbers bool
	rowOff      int
	colOff      int
}

func New(ts tcell.Screen, cfg config.Config) *Screen {
	fg := tcell.GetColor(cfg.Theme.Foreground)
	bg := tcell.GetColor(cfg.Theme.Background)
	base := tcell.StyleDefault.Foreground(fg).Background(bg)

	s := &Screen{
		ts:     ts,
		base:   base,
		status: tcell.StyleDefault.Foreground(tcell.GetColor(cfg.Theme.StatusBarForeground)).Background(tcell.GetColor(cfg.Theme.StatusBarBackground)),
		gutter: base.Foreground(tcell.GetColor(cfg.Theme.LineNumberForeground)),
		selected: tcell.StyleDefault.
			Foreground(tcell.GetColor(cfg.Theme.SelectionForeground)).
			Background(tcell.GetColor(cfg.Theme.SelectionBackground)),
		match: tcell.StyleDefault.
			Foreground(tcell.GetColor(cfg.Theme.MatchForeground)).
			Background(tcell.GetColor(cfg.Theme.MatchBackground)),
		lineNumbers: cfg.Editor.LineNumbers != "off",
	}
	s.classes = map[syntax.Class]tcell.Style{
		syntax.ClassNormal:   base,
		syntax.ClassNumber:   base.Foreground(tcell.GetColor(cfg.Theme.SyntaxNumber)),
		syntax.ClassString:   base.Foreground(tcell.GetColor(cfg.Theme.SyntaxString)),
		syntax.ClassComment:  base.Foreground(tcell.GetColor(cfg.Theme.SyntaxComment)),
		syntax.ClassKeyword:  base.Foreground(tcell.GetColor(cfg.Theme.SyntaxKeyword)),
		syntax.ClassFlowword: base.Foreground(tcell.GetColor(cfg.Theme.SyntaxFlowword)),
		syntax.ClassType:     base.Foreground(tcell.GetColor(cfg.Theme.SyntaxType)),
		syntax.ClassMetaword: base.Foreground(tcell.GetColor(cfg.Theme.SyntaxMetaword)),
		syntax.ClassIdent:    base.Foreground(tcell.GetColor(cfg.Theme.SyntaxIdent)),
		syntax.ClassFunction: base.Foreground(tcell.GetColor(cfg.Theme.SyntaxFunction)),
		syntax.ClassPath:     base.Foreground(tcell.GetColor(cfg.Theme.SyntaxPath)),
	}
	return s
}

// TextSize returns the size of the text area: the full screen minus the two
// bars and the gutter.
func (s *Screen) TextSize(numRows int) (w, h int) {
	w, h = s.ts.Size()
	h -= 2
	if h < 0 {
		h = 0
	}
	w -= s.gutterWidth(numRows)
	if w < 0 {
		w = 0
	}
	return w, h
}

func (s *Screen) gutterWidth(numRows int) int {
	if !s.lineNumbers {
		return 0
	}
	digits := len(strconv.Itoa(numRows))
	if digits < 2 {
		digits = 2
	}
	return digits + 1
}

// Scroll moves the offsets the minimum amount needed to keep the cursor
// inside the text area.
func (s *Screen) Scroll(cursor buffer.Pos, numRows int) {
	w, h := s.TextSize(numRows)
	if cursor.Y < s.rowOff {
		s.rowOff = cursor.Y
	}
	if h > 0 && cursor.Y >= s.rowOff+h {
		s.rowOff = cursor.Y - h + 1
	}
	if cursor.X < s.colOff {
		s.colOff = cursor.X
	}
	if w > 0 && cursor.X >= s.colOff+w {
		s.colOff = cursor.X - w + 1
	}
}

func (s *Screen) RowOff() int { return s.rowOff }
func (s *Screen) ColOff() int { return s.colOff }

// Draw renders a full frame and shows the cursor.
func (s *Screen) Draw(f *Frame) {
	s.ts.Fill(' ', s.base)
	numRows := f.Buf.NumRows()
	s.Scroll(f.Cursor, numRows)

	gw := s.gutterWidth(numRows)
	w, h := s.TextSize(numRows)

	for y := 0; y < h; y++ {
		fileRow := y + s.rowOff
		if fileRow >= numRows {
			s.drawEmptyRow(y, gw, w, numRows, h)
			continue
		}
		if gw > 0 {
			num := fmt.Sprintf("%*d ", gw-1, fileRow+1)
			s.drawText(0, y, num, s.gutter)
		}
		s.drawRow(f.Buf.RowAt(fileRow), gw, y, w)
	}

	s.drawStatusBar(f, h)
	s.drawMessageBar(f, h+1)

	s.ts.ShowCursor(gw+f.Cursor.X-s.colOff, f.Cursor.Y-s.rowOff)
	s.ts.Show()
}

// drawEmptyRow draws the tilde filler, plus the centered welcome line on an
// empty unnamed buffer.
func (s *Screen) drawEmptyRow(y, gw, w, numRows, h int) {
	s.drawText(gw, y, "~", s.gutter)
	if numRows == 0 && y == h/3 {
		welcome := "Mino editor -- version " + Version
		if runewidth.StringWidth(welcome) > w {
			welcome = runewidth.Truncate(welcome, w, "")
		}
		pad := (w - runewidth.StringWidth(welcome)) / 2
		s.drawText(gw+pad, y, welcome, s.base)
	}
}

func (s *Screen) drawRow(row *buffer.Row, gw, y, w int) {
	x := 0
	for _, span := range row.Spans(s.colOff, s.colOff+w) {
		st := s.spanStyle(span.HL)
		for _, ch := range span.Text {
			if x >= w {
				return
			}
			s.ts.SetContent(gw+x, y, ch, nil, st)
			x += runewidth.RuneWidth(ch)
		}
	}
}

func (s *Screen) spanStyle(hl syntax.Highlight) tcell.Style {
	switch hl.Overlay {
	case syntax.OverlaySelected:
		return s.selected
	case syntax.OverlayMatch:
		return s.match
	}
	if st, ok := s.classes[hl.Class]; ok {
		return st
	}
	return s.base
}

func (s *Screen) drawStatusBar(f *Frame, y int) {
	w, _ := s.ts.Size()
	for x := 0; x < w; x++ {
		s.ts.SetContent(x, y, ' ', nil, s.status)
	}

	name := f.Buf.FileName()
	if name == "" {
		name = "[No Name]"
	}
	dirty := ""
	if f.Buf.Dirty() {
		dirty = " [+]"
	}
	left := fmt.Sprintf(" %s%s - %d lines", name, dirty, f.Buf.NumRows())

	right := fmt.Sprintf("%s | %d/%d | %d:%d ",
		f.Buf.Syntax().Lang, f.BufIndex+1, f.BufCount, f.Cursor.Y+1, f.Cursor.X+1)
	if f.GitBranch != "" {
		right = "git:" + f.GitBranch + " | " + right
	}

	s.drawText(0, y, runewidth.Truncate(left, w, ""), s.status)
	rw := runewidth.StringWidth(right)
	if rw <= w-runewidth.StringWidth(left) {
		s.drawText(w-rw, y, right, s.status)
	}
}

func (s *Screen) drawMessageBar(f *Frame, y int) {
	w, _ := s.ts.Size()
	s.drawText(0, y, runewidth.Truncate(f.Message, w, ""), s.base)
}

func (s *Screen) drawText(x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		s.ts.SetContent(x, y, ch, nil, st)
		x += runewidth.RuneWidth(ch)
	}
}
