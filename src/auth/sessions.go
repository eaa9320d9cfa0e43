package auth

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// SessionStore holds per-session credential bundles in memory. Nothing
// is persisted: a restart forgets every session, and re-authentication
// simply overwrites the stored token.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
}

type session struct {
	token *oauth2.Token
	// state pins the pending OAuth2 round-trip for this session
	state string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*session)}
}

// New creates an empty session and returns its opaque ID.
func (s *SessionStore) New() string {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = &session{}
	s.mu.Unlock()
	return id
}

// BeginAuth records a fresh state value for the session's pending OAuth2
// round-trip and returns it.
func (s *SessionStore) BeginAuth(id string) string {
	state := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{}
		s.sessions[id] = sess
	}
	sess.state = state
	return state
}

// CompleteAuth checks the returned state and, on match, stores the
// credential bundle for the session. A state mismatch leaves the
// session untouched and reports false.
func (s *SessionStore) CompleteAuth(id, state string, tok *oauth2.Token) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.state == "" || sess.state != state {
		return false
	}
	sess.state = ""
	sess.token = tok
	return true
}

// Token returns the session's credential bundle, if present.
func (s *SessionStore) Token(id string) (*oauth2.Token, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || sess.token == nil {
		return nil, false
	}
	return sess.token, true
}

// Drop forgets a session entirely.
func (s *SessionStore) Drop(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}
