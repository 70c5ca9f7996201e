// Package app runs the editor: it owns the open buffers, the cursor, the
// event loop and the key bindings, and drives the screen and clipboard
// collaborators.
package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mino-editor/mino/internal/buffer"
	"github.com/mino-editor/mino/internal/clipboard"
	"github.com/mino-editor/mino/internal/config"
	"github.com/mino-editor/mino/internal/file"
	"github.com/mino-editor/mino/internal/gitinfo"
	"github.com/mino-editor/mino/internal/logger"
	"github.com/mino-editor/mino/internal/screen"
	"github.com/mino-editor/mino/internal/session"
)

type App struct {
	args []string
	cfg  config.Config

	ts   tcell.Screen
	scr  *screen.Screen
	cb   *clipboard.Clipboard
	sess *session.Manager

	bufs   []*buffer.TextBuffer
	cur    int
	branch string

	cursor buffer.Pos

	msg     string
	msgAt   time.Time
	msgLife time.Duration

	quitsLeft  int
	closesLeft int
}

func New(args []string) *App {
	return &App{args: args}
}

func (a *App) Run() error {
	runtime.LockOSThread()
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
	}
	a.cfg = cfg
	a.msgLife = time.Duration(cfg.Editor.MsgBarLife) * time.Second
	a.quitsLeft = cfg.Editor.QuitTimes
	a.closesLeft = cfg.Editor.CloseTimes

	ts, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := ts.Init(); err != nil {
		return err
	}
	defer ts.Fini()
	a.ts = ts
	a.scr = screen.New(ts, cfg)
	a.cb = clipboard.New()
	if sess, err := session.NewManager(); err == nil {
		a.sess = sess
	} else {
		logger.Warn("session unavailable", "err", err)
	}

	if len(a.args) == 0 {
		a.bufs = append(a.bufs, buffer.New())
	}
	for _, path := range a.args {
		b := buffer.New()
		if err := b.Open(path, a.tabStop()); err != nil {
			var fe *file.Error
			if errors.As(err, &fe) && fe.Kind == file.KindNotFound {
				b.SetFileName(path)
				logger.Info("new file", "path", path)
			} else {
				return err
			}
		}
		a.bufs = append(a.bufs, b)
	}
	a.restoreCursor()
	a.refreshBranch()

	a.setMessage("HELP: Ctrl-S save | Ctrl-F find | Ctrl-Q quit")

	for {
		a.draw()
		ev := a.ts.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if a.handleKey(ev) {
				a.saveSession()
				return nil
			}
		case *tcell.EventResize:
			a.ts.Sync()
		}
	}
}

// restoreCursor puts the cursor back where it was the last time the current
// file was open.
func (a *App) restoreCursor() {
	if a.sess == nil {
		return
	}
	path := absPath(a.buf().FileName())
	if path == "" {
		return
	}
	if st, ok := a.sess.FileStateFor(path); ok {
		a.cursor = buffer.Pos{X: st.CursorX, Y: st.CursorY}
		a.clampCursor()
	}
}

func (a *App) saveSession() {
	if a.sess == nil {
		return
	}
	a.buf().SetSavedCursor(a.cursor)
	for _, b := range a.bufs {
		path := absPath(b.FileName())
		if path == "" {
			continue
		}
		c := b.SavedCursor()
		a.sess.SetFileState(path, session.FileState{CursorX: c.X, CursorY: c.Y})
	}
	if err := a.sess.Save(); err != nil {
		logger.Warn("session save failed", "err", err)
	}
}

func (a *App) refreshBranch() {
	target := a.buf().FileName()
	if target == "" {
		if cwd, err := os.Getwd(); err == nil {
			target = cwd
		}
	}
	a.branch = gitinfo.Branch(target)
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (a *App) tabStop() int { return a.cfg.Editor.TabStop }

func (a *App) buf() *buffer.TextBuffer { return a.bufs[a.cur] }

func (a *App) setMessage(format string, args ...interface{}) {
	a.msg = fmt.Sprintf(format, args...)
	a.msgAt = time.Now()
}

func (a *App) draw() {
	msg := a.msg
	if time.Since(a.msgAt) > a.msgLife {
		msg = ""
	}
	a.scr.Draw(&screen.Frame{
		Buf:       a.buf(),
		Cursor:    a.cursor,
		Message:   msg,
		GitBranch: a.branch,
		BufIndex:  a.cur,
		BufCount:  len(a.bufs),
	})
}

// handleKey dispatches one key event. Reports true when the editor should
// exit.
func (a *App) handleKey(ev *tcell.EventKey) bool {
	b := a.buf()
	quitting := ev.Key() == tcell.KeyCtrlQ
	closing := ev.Key() == tcell.KeyCtrlW
	if !quitting {
		a.quitsLeft = a.cfg.Editor.QuitTimes
	}
	if !closing {
		a.closesLeft = a.cfg.Editor.CloseTimes
	}

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		return a.quit()
	case tcell.KeyCtrlW:
		a.closeBuffer()
	case tcell.KeyCtrlS:
		a.save()
	case tcell.KeyCtrlF:
		a.find()
	case tcell.KeyCtrlN:
		a.bufs = append(a.bufs, buffer.New())
		a.switchBuffer(len(a.bufs) - 1)
	case tcell.KeyCtrlO:
		a.openPrompt()
	case tcell.KeyCtrlB:
		a.switchBuffer((a.cur + 1) % len(a.bufs))
	case tcell.KeyCtrlZ:
		if p := b.Undo(a.tabStop()); p != nil {
			a.cursor = *p
		} else {
			a.setMessage("Nothing to undo")
		}
	case tcell.KeyCtrlY:
		if p := b.Redo(a.tabStop()); p != nil {
			a.cursor = *p
		} else {
			a.setMessage("Nothing to redo")
		}
	case tcell.KeyCtrlSpace:
		if b.InSelect() {
			b.ExitSelect()
		} else {
			b.EnterSelect(a.cursor)
		}
	case tcell.KeyCtrlC:
		a.copySelection(false)
	case tcell.KeyCtrlX:
		a.copySelection(true)
	case tcell.KeyCtrlV:
		if rows := a.cb.Paste(); len(rows) > 0 {
			a.cursor = b.InsertRows(a.cursor, rows, a.tabStop())
		}
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
		tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyPgDn:
		a.moveCursor(ev.Key())
	case tcell.KeyEnter:
		a.cursor = b.InsertRows(a.cursor, []string{"", ""}, a.tabStop())
	case tcell.KeyTab:
		a.cursor = b.InsertRows(a.cursor, []string{"\t"}, a.tabStop())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.deleteBack()
	case tcell.KeyDelete:
		a.deleteForward()
	case tcell.KeyEscape:
		b.ExitSelect()
	case tcell.KeyRune:
		a.cursor = b.InsertRows(a.cursor, []string{string(ev.Rune())}, a.tabStop())
	}

	// Re-fetch: buffer switches above may have changed the current buffer.
	if cb := a.buf(); cb.InSelect() {
		cb.MarkSelection(a.cursor)
	}
	return false
}

func (a *App) quit() bool {
	if a.buf().Dirty() && a.quitsLeft > 0 {
		a.setMessage("WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", a.quitsLeft)
		a.quitsLeft--
		return false
	}
	return true
}

func (a *App) closeBuffer() {
	if a.buf().Dirty() && a.closesLeft > 0 {
		a.setMessage("WARNING! File has unsaved changes. Press Ctrl-W %d more times to close.", a.closesLeft)
		a.closesLeft--
		return
	}
	a.bufs = append(a.bufs[:a.cur], a.bufs[a.cur+1:]...)
	if len(a.bufs) == 0 {
		a.bufs = append(a.bufs, buffer.New())
	}
	if a.cur >= len(a.bufs) {
		a.cur = len(a.bufs) - 1
	}
	a.cursor = a.buf().SavedCursor()
	a.clampCursor()
	a.refreshBranch()
	a.closesLeft = a.cfg.Editor.CloseTimes
}

func (a *App) switchBuffer(i int) {
	a.buf().SetSavedCursor(a.cursor)
	a.cur = i
	a.cursor = a.buf().SavedCursor()
	a.clampCursor()
	a.refreshBranch()
}

func (a *App) clampCursor() {
	b := a.buf()
	if b.NumRows() == 0 {
		a.cursor = buffer.Pos{}
		return
	}
	if a.cursor.Y >= b.NumRows() {
		a.cursor.Y = b.NumRows() - 1
	}
	if a.cursor.Y < 0 {
		a.cursor.Y = 0
	}
	if r := b.RowAt(a.cursor.Y); a.cursor.X > r.RSize() {
		a.cursor.X = r.RSize()
	}
	if a.cursor.X < 0 {
		a.cursor.X = 0
	}
}

func (a *App) moveCursor(key tcell.Key) {
	b := a.buf()
	row := b.RowAt(a.cursor.Y)
	ts := a.tabStop()

	switch key {
	case tcell.KeyUp:
		if a.cursor.Y > 0 {
			a.cursor.Y--
		}
	case tcell.KeyDown:
		if a.cursor.Y < b.NumRows()-1 {
			a.cursor.Y++
		}
	case tcell.KeyLeft:
		if row != nil && a.cursor.X > 0 {
			cx := row.RxToCx(a.cursor.X, ts)
			a.cursor.X = row.CxToRx(cx-1, ts)
		} else if a.cursor.Y > 0 {
			a.cursor.Y--
			a.cursor.X = b.RowAt(a.cursor.Y).RSize()
		}
	case tcell.KeyRight:
		if row != nil && a.cursor.X < row.RSize() {
			cx := row.RxToCx(a.cursor.X, ts)
			a.cursor.X = row.CxToRx(cx+1, ts)
		} else if a.cursor.Y < b.NumRows()-1 {
			a.cursor.Y++
			a.cursor.X = 0
		}
	case tcell.KeyHome:
		a.cursor.X = 0
	case tcell.KeyEnd:
		if row != nil {
			a.cursor.X = row.RSize()
		}
	case tcell.KeyPgUp, tcell.KeyPgDn:
		_, h := a.scr.TextSize(b.NumRows())
		if key == tcell.KeyPgUp {
			a.cursor.Y -= h
		} else {
			a.cursor.Y += h
		}
	}
	a.clampCursor()
}

// deleteBack removes the character before the cursor, joining with the
// previous row at column zero.
func (a *App) deleteBack() {
	b := a.buf()
	row := b.RowAt(a.cursor.Y)
	if row == nil {
		return
	}
	ts := a.tabStop()
	var from buffer.Pos
	if a.cursor.X > 0 {
		cx := row.RxToCx(a.cursor.X, ts)
		from = buffer.Pos{X: row.CxToRx(cx-1, ts), Y: a.cursor.Y}
	} else if a.cursor.Y > 0 {
		from = buffer.Pos{X: b.RowAt(a.cursor.Y - 1).RSize(), Y: a.cursor.Y - 1}
	} else {
		return
	}
	span := b.CreateRemovalSpan(from, a.cursor, ts)
	a.cursor = b.RemoveRows(from, span, ts)
}

// deleteForward removes the character under the cursor, joining with the
// next row at end of line.
func (a *App) deleteForward() {
	b := a.buf()
	row := b.RowAt(a.cursor.Y)
	if row == nil {
		return
	}
	ts := a.tabStop()
	var to buffer.Pos
	if a.cursor.X < row.RSize() {
		cx := row.RxToCx(a.cursor.X, ts)
		to = buffer.Pos{X: row.CxToRx(cx+1, ts), Y: a.cursor.Y}
	} else if a.cursor.Y < b.NumRows()-1 {
		to = buffer.Pos{X: 0, Y: a.cursor.Y + 1}
	} else {
		return
	}
	span := b.CreateRemovalSpan(a.cursor, to, ts)
	a.cursor = b.RemoveRows(a.cursor, span, ts)
}

// copySelection copies the selected span to the clipboard; cut also removes
// it.
func (a *App) copySelection(cut bool) {
	b := a.buf()
	anchor := b.Anchor()
	if anchor == nil {
		a.setMessage("No selection")
		return
	}
	ts := a.tabStop()
	span := b.CreateRemovalSpan(*anchor, a.cursor, ts)
	a.cb.Copy(span)
	if cut {
		from := *anchor
		if a.cursor.Less(from) {
			from = a.cursor
		}
		a.cursor = b.RemoveRows(from, span, ts)
	}
	b.ExitSelect()
	if cut {
		a.setMessage("Cut %d line(s)", len(span))
	} else {
		a.setMessage("Copied %d line(s)", len(span))
	}
}

func (a *App) save() {
	b := a.buf()
	if b.FileName() == "" {
		name, ok := a.prompt("Save as: ", nil)
		if !ok || name == "" {
			a.setMessage("Save aborted")
			return
		}
		b.SetFileName(name)
	}
	n, err := b.Save()
	if err != nil {
		logger.Error("save failed", "path", b.FileName(), "err", err)
		a.setMessage("Can't save! %v", err)
		return
	}
	logger.Info("saved", "path", b.FileName(), "bytes", n)
	a.setMessage("%d bytes written to disk", n)
}

func (a *App) openPrompt() {
	name, ok := a.prompt("Open file: ", nil)
	if !ok || name == "" {
		return
	}
	b := buffer.New()
	if err := b.Open(name, a.tabStop()); err != nil {
		var fe *file.Error
		if errors.As(err, &fe) && fe.Kind == file.KindNotFound {
			b.SetFileName(name)
		} else {
			a.setMessage("Can't open %s: %v", name, err)
			return
		}
	}
	a.bufs = append(a.bufs, b)
	a.switchBuffer(len(a.bufs) - 1)
	a.restoreCursor()
}

// find runs the incremental search prompt. Every keystroke re-runs the
// search from the saved cursor; arrow keys step through matches; Escape
// restores the original position.
func (a *App) find() {
	b := a.buf()
	saved := a.cursor

	_, ok := a.prompt("Search (arrows to step, Esc to cancel): ", func(query string, key tcell.Key) {
		b.ClearMatches()
		if query == "" {
			return
		}
		var p *buffer.Pos
		switch key {
		case tcell.KeyUp, tcell.KeyLeft:
			p = b.SearchBackward(query, a.cursor)
		case tcell.KeyDown, tcell.KeyRight:
			next := a.cursor
			next.X++
			p = b.SearchForward(query, next)
		default:
			p = b.SearchForward(query, a.cursor)
		}
		if p != nil {
			a.cursor = *p
		}
	})
	b.ClearMatches()
	if !ok {
		a.cursor = saved
	}
}

// prompt reads a line of input on the message bar. onChange, when not nil,
// runs after every edit and on arrow keys with the current input. Reports
// false when the prompt was cancelled.
func (a *App) prompt(label string, onChange func(string, tcell.Key)) (string, bool) {
	input := []rune{}
	for {
		a.setMessage("%s%s", label, string(input))
		a.draw()
		ev := a.ts.PollEvent()
		kev, isKey := ev.(*tcell.EventKey)
		if !isKey {
			if _, isResize := ev.(*tcell.EventResize); isResize {
				a.ts.Sync()
			}
			continue
		}
		switch kev.Key() {
		case tcell.KeyEnter:
			a.setMessage("")
			return string(input), true
		case tcell.KeyEscape, tcell.KeyCtrlQ:
			a.setMessage("")
			return "", false
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(input) > 0 {
				input = input[:len(input)-1]
			}
		case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
			if onChange != nil {
				onChange(string(input), kev.Key())
			}
			continue
		case tcell.KeyRune:
			input = append(input, kev.Rune())
		default:
			continue
		}
		if onChange != nil {
			onChange(string(input), kev.Key())
		}
	}
}
