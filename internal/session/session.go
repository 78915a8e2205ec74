// Package session persists the authenticated user and bearer token between
// runs. Everything lives under a single key file, reloaded at startup to
// restore the session and removed on logout.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "session.json"

// Session is the persisted credential state.
type Session struct {
	Token     string `json:"token"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// Active reports whether a credential is present.
func (s *Session) Active() bool {
	return s != nil && s.Token != ""
}

// DefaultPath returns the session file path: $PROCMAP_HOME/session.json or
// ~/.procmap/session.json.
func DefaultPath() string {
	if home := os.Getenv("PROCMAP_HOME"); home != "" {
		return filepath.Join(home, fileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".procmap", fileName)
}

// Load reads the session from the given path. A missing file yields an
// empty, inactive session rather than an error.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Session{}, nil
		}
		return nil, fmt.Errorf("reading session file: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return &s, nil
}

// Save writes the session to the given path, creating the directory if
// needed. The file is user-only: it holds a bearer credential.
func Save(path string, s *Session) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func Clear(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session file: %w", err)
	}
	return nil
}
