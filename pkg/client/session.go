package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"smart-global-hub/internal/dto"
)

// Session holds the credentials and UI selections of one signed-in user.
// It is passed to the Client explicitly and persisted as JSON.
type Session struct {
	mu   sync.Mutex
	path string

	AccessToken  string            `json:"accessToken,omitempty"`
	RefreshToken string            `json:"refreshToken,omitempty"`
	User         *dto.UserResponse `json:"user,omitempty"`
	// Selected maps an entity kind such as "agent" to the chosen id.
	Selected map[string]string `json:"selected,omitempty"`
}

// DefaultSessionPath is <user config dir>/sghctl/session.json.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sghctl", "session.json"), nil
}

// NewSession returns an empty session stored at path. An empty path keeps
// the session in memory only.
func NewSession(path string) *Session {
	return &Session{path: path, Selected: map[string]string{}}
}

// LoadSession hydrates a session from path. A missing file yields an empty session.
func LoadSession(path string) (*Session, error) {
	s := NewSession(path)

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if len(data) == 0 {
		return s, nil
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}
	if s.Selected == nil {
		s.Selected = map[string]string{}
	}
	return s, nil
}

func (s *Session) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *Session) saveLocked() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear drops credentials and selections and removes the persisted file.
func (s *Session) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.AccessToken = ""
	s.RefreshToken = ""
	s.User = nil
	s.Selected = map[string]string{}

	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.AccessToken
}

func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// SetAuth stores the tokens and user of a successful login or refresh.
func (s *Session) SetAuth(resp *dto.AuthResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.AccessToken = resp.AccessToken
	s.RefreshToken = resp.RefreshToken
	user := resp.User
	s.User = &user
}

func (s *Session) Select(kind, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id == "" {
		delete(s.Selected, kind)
		return
	}
	s.Selected[kind] = id
}

func (s *Session) Selection(kind string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Selected[kind]
}

func (s *Session) refreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.RefreshToken
}
