package session

import (
	"sync"
)

// Credential is the access/refresh token pair issued at login. Both
// tokens are opaque strings; the refresh token may be empty.
type Credential struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

// Store holds the current session: the credential pair plus the
// authenticated role. Exactly one Store backs a running console; it is
// passed by reference to the API client and the console flows so tests
// can substitute an in-memory one.
type Store interface {
	// SetCredential overwrites any prior credential. The token
	// structure is not validated.
	SetCredential(c Credential)
	// SetRole stores the authenticated role, independently of the
	// credential (the role arrives from a follow-up identity call).
	SetRole(role string)
	// Credential returns the stored pair, or nil when unset.
	Credential() *Credential
	// Role returns the stored role, empty when unset.
	Role() string
	// Clear removes credential and role together. Idempotent; a
	// caller never observes a credential without the role state that
	// accompanied it.
	Clear()
}

// MemoryStore keeps the session in process memory only. Used by tests
// and by one-shot commands that should not touch the session file.
type MemoryStore struct {
	mu   sync.Mutex
	cred *Credential
	role string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SetCredential(c Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &c
}

func (s *MemoryStore) SetRole(role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = role
}

func (s *MemoryStore) Credential() *Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil
	}
	c := *s.cred
	return &c
}

func (s *MemoryStore) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	s.role = ""
}
