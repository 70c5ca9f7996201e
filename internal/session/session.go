// Package session persists per-file editor state between runs: the cursor
// position of every file the user had open, stored as JSON under the XDG
// state directory.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileState is the remembered state of one file.
type FileState struct {
	CursorX int `json:"cursor_x"`
	CursorY int `json:"cursor_y"`
}

type Session struct {
	Files      map[string]FileState `json:"files"`
	ActiveFile string               `json:"active_file,omitempty"`
	LastSaved  time.Time            `json:"last_saved"`
}

// Manager loads the session at startup and writes it back on demand. It is
// safe for concurrent use, although the editor only touches it from the
// event loop.
type Manager struct {
	mu      sync.RWMutex
	session Session
	path    string
	dirty   bool
}

func NewManager() (*Manager, error) {
	path, err := sessionPath()
	if err != nil {
		return nil, err
	}
	m := &Manager{
		session: Session{Files: make(map[string]FileState)},
		path:    path,
	}
	m.load()
	return m, nil
}

func sessionPath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateDir = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(stateDir, "mino")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "session.json"), nil
}

// load reads an existing session file; a missing or malformed file starts a
// fresh session.
func (m *Manager) load() {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return
	}
	if s.Files == nil {
		s.Files = make(map[string]FileState)
	}
	m.session = s
}

// Save writes the session to disk when it has changed since the last save.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.dirty {
		return nil
	}
	m.session.LastSaved = time.Now()
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(m.path, data, 0o644); err != nil {
		return err
	}
	m.dirty = false
	return nil
}

// FileStateFor returns the remembered state for a file.
func (m *Manager) FileStateFor(absPath string) (FileState, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.session.Files[absPath]
	return state, ok
}

// SetFileState records the state for a file and marks it active.
func (m *Manager) SetFileState(absPath string, state FileState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session.Files[absPath] = state
	m.session.ActiveFile = absPath
	m.dirty = true
}

// ActiveFile returns the file that was focused when the session was saved.
func (m *Manager) ActiveFile() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.ActiveFile
}
