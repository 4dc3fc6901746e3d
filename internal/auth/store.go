package auth

import (
	"sync"

	"github.com/dsubhasis934/task-management-tui/internal/api"
	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// API is the slice of the REST client the store needs: the three auth
// endpoints plus control over the bearer credential the client attaches.
type API interface {
	Login(email, password string) (*api.LoginResponse, error)
	Signup(req api.SignupRequest) (*api.SignupResponse, error)
	GetProfile() (*model.User, error)
	SetToken(token string)
	ClearToken()
}

// State is the session state
type State int

const (
	// StateBootstrapping means the initial session restoration has not
	// finished. Consumers must render only a placeholder.
	StateBootstrapping State = iota
	// StateAnonymous means no session exists
	StateAnonymous
	// StateAuthenticated means a user and credential are present
	StateAuthenticated
)

// Session is a read-only snapshot of the authenticated identity.
// User and Token are both set or both empty once Bootstrapping is false.
type Session struct {
	User          *model.User
	Token         string
	Bootstrapping bool
}

// State returns the session state
func (s Session) State() State {
	if s.Bootstrapping {
		return StateBootstrapping
	}
	if s.User != nil {
		return StateAuthenticated
	}
	return StateAnonymous
}

// Store is the single authoritative holder of the Session. Every state
// transition goes through Bootstrap, Login, or Logout; everything else
// only reads snapshots. Mutex-guarded because bubbletea commands run on
// their own goroutines.
type Store struct {
	mu    sync.RWMutex
	api   API
	creds CredentialStore

	user          *model.User
	token         string
	bootstrapping bool
}

// NewStore creates a store in the Bootstrapping state
func NewStore(a API, creds CredentialStore) *Store {
	return &Store{
		api:           a,
		creds:         creds,
		bootstrapping: true,
	}
}

// Session returns a snapshot of the current session state
func (s *Store) Session() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Session{
		User:          s.user,
		Token:         s.token,
		Bootstrapping: s.bootstrapping,
	}
}

// Bootstrap restores a session from the persisted credential, issuing at
// most one profile request. Any failure (no credential, expired token,
// network error) lands in Anonymous with the persisted credential
// cleared; there is no user action to attach feedback to, so failures
// are not surfaced. Returns the resulting session snapshot.
func (s *Store) Bootstrap() Session {
	token, err := s.creds.Load()
	if err != nil || token == "" {
		_ = s.creds.Clear()
		s.setAnonymous()
		return s.Session()
	}

	s.api.SetToken(token)
	user, err := s.api.GetProfile()
	if err != nil {
		_ = s.creds.Clear()
		s.api.ClearToken()
		s.setAnonymous()
		return s.Session()
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.bootstrapping = false
	s.mu.Unlock()
	return s.Session()
}

// Login exchanges credentials for a session. On success the returned
// credential is persisted and the session becomes Authenticated; the
// full response (including role) is returned so the caller can route by
// it. On failure the session is left untouched and the error carries
// the server's message.
func (s *Store) Login(email, password string) (*api.LoginResponse, error) {
	resp, err := s.api.Login(email, password)
	if err != nil {
		return nil, err
	}

	// Persisting is best effort: a full disk must not lose the
	// in-memory session the server just granted.
	_ = s.creds.Save(resp.Token)
	s.api.SetToken(resp.Token)

	s.mu.Lock()
	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.bootstrapping = false
	s.mu.Unlock()

	return resp, nil
}

// Signup registers an account. It is a pure pass-through: the session
// does not change, and the caller must log in separately.
func (s *Store) Signup(req api.SignupRequest) (*api.SignupResponse, error) {
	return s.api.Signup(req)
}

// Logout clears the persisted credential and the session. It is
// synchronous and never fails.
func (s *Store) Logout() {
	_ = s.creds.Clear()
	s.api.ClearToken()
	s.setAnonymous()
}

func (s *Store) setAnonymous() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.bootstrapping = false
	s.mu.Unlock()
}
