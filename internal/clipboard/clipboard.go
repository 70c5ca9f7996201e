// Package clipboard copies line spans to the system clipboard when a
// clipboard tool is installed, falling back to an in-process buffer so
// yank and paste still work inside one editor session.
package clipboard

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mino-editor/mino/internal/logger"
)

type tool struct {
	copyCmd  []string
	pasteCmd []string
}

var tools = []tool{
	{[]string{"wl-copy"}, []string{"wl-paste", "--no-newline"}},
	{[]string{"xclip", "-selection", "clipboard"}, []string{"xclip", "-selection", "clipboard", "-o"}},
	{[]string{"xsel", "--clipboard", "--input"}, []string{"xsel", "--clipboard", "--output"}},
	{[]string{"pbcopy"}, []string{"pbpaste"}},
}

// Clipboard holds the detected system tool, if any, and the fallback
// buffer used when none is available or the tool fails.
type Clipboard struct {
	sys      *tool
	internal []string
}

// New probes PATH for a known clipboard tool. Wayland tools are only
// considered inside a Wayland session.
func New() *Clipboard {
	c := &Clipboard{}
	for i := range tools {
		name := tools[i].copyCmd[0]
		if name == "wl-copy" && os.Getenv("WAYLAND_DISPLAY") == "" {
			continue
		}
		if _, err := exec.LookPath(name); err == nil {
			c.sys = &tools[i]
			logger.Debug("clipboard tool found", "tool", name)
			break
		}
	}
	return c
}

// Copy stores the given lines. The system clipboard receives them joined
// with newlines; the internal buffer keeps the line structure.
func (c *Clipboard) Copy(lines []string) {
	c.internal = append([]string(nil), lines...)
	if c.sys == nil {
		return
	}
	cmd := exec.Command(c.sys.copyCmd[0], c.sys.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	if err := cmd.Run(); err != nil {
		logger.Warn("system clipboard copy failed", "err", err)
	}
}

// Paste returns the current clipboard contents as lines. The system
// clipboard wins when readable, so text copied in other programs pastes
// correctly; otherwise the internal buffer is returned.
func (c *Clipboard) Paste() []string {
	if c.sys != nil {
		out, err := exec.Command(c.sys.pasteCmd[0], c.sys.pasteCmd[1:]...).Output()
		if err == nil {
			return strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
		}
		logger.Warn("system clipboard paste failed", "err", err)
	}
	if len(c.internal) == 0 {
		return nil
	}
	return append([]string(nil), c.internal...)
}
