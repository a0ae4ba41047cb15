package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

// fileState is the on-disk shape: the same three keys the session has
// always been stored under.
type fileState struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Role         string `json:"role,omitempty"`
}

// FileStore persists the session to a JSON file so a new process picks
// up where the last one left off. Mutations rewrite the whole file via
// a rename, so readers see either the old state or the new one.
type FileStore struct {
	mu     sync.Mutex
	path   string
	state  fileState
	logger zerolog.Logger
}

// NewFileStore opens (or creates the directory for) the session file at
// path and loads any existing session. A corrupt file is treated as an
// absent session rather than an error.
func NewFileStore(path string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	s := &FileStore{path: path, logger: logger}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// cold start
	case err != nil:
		return nil, fmt.Errorf("failed to read session file: %w", err)
	default:
		if jsonErr := json.Unmarshal(data, &s.state); jsonErr != nil {
			logger.Warn().Err(jsonErr).Str("path", path).Msg("discarding unreadable session file")
			s.state = fileState{}
		}
	}

	return s, nil
}

func (s *FileStore) SetCredential(c Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccessToken = c.Access
	s.state.RefreshToken = c.Refresh
	s.persist()
}

func (s *FileStore) SetRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Role = role
	s.persist()
}

func (s *FileStore) Credential() *Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.AccessToken == "" {
		return nil
	}
	return &Credential{Access: s.state.AccessToken, Refresh: s.state.RefreshToken}
}

func (s *FileStore) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Role
}

// Clear drops credential and role in one write. Removing the file makes
// a second Clear a no-op with the same result.
func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = fileState{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Error().Err(err).Str("path", s.path).Msg("failed to remove session file")
	}
}

// persist writes the current state through a temp file + rename so the
// session file is never observed half-written. Called with mu held.
func (s *FileStore) persist() {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode session state")
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.logger.Error().Err(err).Str("path", tmp).Msg("failed to write session file")
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error().Err(err).Str("path", s.path).Msg("failed to replace session file")
	}
}
