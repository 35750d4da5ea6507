package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/interview"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// SessionStore holds parsed profiles and open interview sessions in memory.
// Profiles live for the lifetime of the process; the database, when
// configured, is a write-behind collaborator rather than the source of truth
// for the API session.
type SessionStore struct {
	mu         sync.RWMutex
	profiles   map[string]*types.ResumeProfile
	interviews map[string]*interviewEntry
}

// interviewEntry ties an interview session to the profile it interviews for.
// Interview sessions are single-conversation state machines; the entry mutex
// serializes turns on the same session.
type interviewEntry struct {
	mu        sync.Mutex
	session   *interview.Session
	profileID string
}

// NewSessionStore creates an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		profiles:   make(map[string]*types.ResumeProfile),
		interviews: make(map[string]*interviewEntry),
	}
}

// PutProfile stores a profile and returns its session id.
func (s *SessionStore) PutProfile(profile *types.ResumeProfile) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.profiles[id] = profile
	s.mu.Unlock()
	return id
}

// Profile returns the profile for a session id.
func (s *SessionStore) Profile(id string) (*types.ResumeProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[id]
	return profile, ok
}

// PutInterview stores an open interview session under its own id.
func (s *SessionStore) PutInterview(profileID string, session *interview.Session) {
	s.mu.Lock()
	s.interviews[session.ID] = &interviewEntry{session: session, profileID: profileID}
	s.mu.Unlock()
}

// Interview returns the entry for an interview id.
func (s *SessionStore) Interview(id string) (*interviewEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.interviews[id]
	return entry, ok
}
