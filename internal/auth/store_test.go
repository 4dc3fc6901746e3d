package auth

import (
	"errors"
	"testing"

	"github.com/dsubhasis934/task-management-tui/internal/api"
	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// fakeAPI implements the API interface and records calls
type fakeAPI struct {
	profileCalls int
	profileUser  *model.User
	profileErr   error

	loginResp *api.LoginResponse
	loginErr  error

	signupResp *api.SignupResponse
	signupErr  error

	token string
}

func (f *fakeAPI) Login(email, password string) (*api.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginResp, nil
}

func (f *fakeAPI) Signup(req api.SignupRequest) (*api.SignupResponse, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.signupResp, nil
}

func (f *fakeAPI) GetProfile() (*model.User, error) {
	f.profileCalls++
	if f.profileErr != nil {
		return nil, f.profileErr
	}
	return f.profileUser, nil
}

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) ClearToken()           { f.token = "" }

// memCreds is an in-memory credential store
type memCreds struct {
	token   string
	loadErr error
}

func (c *memCreds) Load() (string, error) {
	if c.loadErr != nil {
		return "", c.loadErr
	}
	return c.token, nil
}

func (c *memCreds) Save(token string) error {
	c.token = token
	return nil
}

func (c *memCreds) Clear() error {
	c.token = ""
	return nil
}

func TestBootstrapWithoutCredential(t *testing.T) {
	a := &fakeAPI{}
	creds := &memCreds{}
	store := NewStore(a, creds)

	if got := store.Session().State(); got != StateBootstrapping {
		t.Fatalf("initial state = %v, want StateBootstrapping", got)
	}

	sess := store.Bootstrap()

	if sess.State() != StateAnonymous {
		t.Errorf("state = %v, want StateAnonymous", sess.State())
	}
	if sess.Bootstrapping {
		t.Error("Bootstrapping still true after bootstrap")
	}
	if a.profileCalls != 0 {
		t.Errorf("profile requests = %d, want 0", a.profileCalls)
	}
}

func TestBootstrapWithCredential(t *testing.T) {
	tests := []struct {
		name       string
		profileErr error
		wantState  State
		wantToken  string
		wantCreds  string
	}{
		{
			name:      "profile fetch succeeds",
			wantState: StateAuthenticated,
			wantToken: "t1",
			wantCreds: "t1",
		},
		{
			name:       "expired credential",
			profileErr: &api.AuthError{Message: "jwt expired"},
			wantState:  StateAnonymous,
			wantToken:  "",
			wantCreds:  "",
		},
		{
			name:       "network error",
			profileErr: &api.TransportError{Err: errors.New("refused")},
			wantState:  StateAnonymous,
			wantToken:  "",
			wantCreds:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &fakeAPI{
				profileUser: &model.User{ID: "u1", Name: "A", Email: "a@x.com", Role: model.RoleUser},
				profileErr:  tt.profileErr,
			}
			creds := &memCreds{token: "t1"}
			store := NewStore(a, creds)

			sess := store.Bootstrap()

			if a.profileCalls != 1 {
				t.Errorf("profile requests = %d, want exactly 1", a.profileCalls)
			}
			if sess.State() != tt.wantState {
				t.Errorf("state = %v, want %v", sess.State(), tt.wantState)
			}
			if sess.Token != tt.wantToken {
				t.Errorf("session token = %q, want %q", sess.Token, tt.wantToken)
			}
			if creds.token != tt.wantCreds {
				t.Errorf("persisted credential = %q, want %q", creds.token, tt.wantCreds)
			}
		})
	}
}

func TestBootstrapCredentialLoadFailure(t *testing.T) {
	a := &fakeAPI{}
	creds := &memCreds{token: "t1", loadErr: errors.New("corrupt")}
	store := NewStore(a, creds)

	sess := store.Bootstrap()

	if sess.State() != StateAnonymous {
		t.Errorf("state = %v, want StateAnonymous", sess.State())
	}
	if a.profileCalls != 0 {
		t.Errorf("profile requests = %d, want 0", a.profileCalls)
	}
	if creds.token != "" {
		t.Errorf("persisted credential = %q, want cleared", creds.token)
	}
}

func TestLogin(t *testing.T) {
	a := &fakeAPI{
		loginResp: &api.LoginResponse{
			Token: "t1",
			User:  model.User{ID: "u1", Name: "A", Role: model.RoleUser},
		},
	}
	creds := &memCreds{}
	store := NewStore(a, creds)
	store.Bootstrap()

	resp, err := store.Login("a@x.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token != "t1" {
		t.Errorf("response token = %q, want t1", resp.Token)
	}

	sess := store.Session()
	if sess.State() != StateAuthenticated {
		t.Errorf("state = %v, want StateAuthenticated", sess.State())
	}
	if sess.User == nil || sess.User.ID != "u1" {
		t.Errorf("session user = %+v, want id u1", sess.User)
	}
	if creds.token != "t1" {
		t.Errorf("persisted credential = %q, want t1", creds.token)
	}
	if a.token != "t1" {
		t.Errorf("client token = %q, want t1", a.token)
	}
}

func TestLoginFailureLeavesAnonymous(t *testing.T) {
	a := &fakeAPI{loginErr: &api.AuthError{Message: "Invalid credentials"}}
	creds := &memCreds{}
	store := NewStore(a, creds)
	store.Bootstrap()

	_, err := store.Login("a@x.com", "wrong")
	if err == nil {
		t.Fatal("Login() error = nil, want AuthError")
	}
	var authErr *api.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("error = %T, want *api.AuthError", err)
	}
	if authErr.Message != "Invalid credentials" {
		t.Errorf("message = %q, want server message", authErr.Message)
	}

	if got := store.Session().State(); got != StateAnonymous {
		t.Errorf("state = %v, want StateAnonymous", got)
	}
	if creds.token != "" {
		t.Errorf("persisted credential = %q, want none", creds.token)
	}
}

func TestLoginThenLogout(t *testing.T) {
	a := &fakeAPI{
		loginResp: &api.LoginResponse{
			Token: "t1",
			User:  model.User{ID: "u1", Name: "A", Role: model.RoleUser},
		},
	}
	creds := &memCreds{}
	store := NewStore(a, creds)
	store.Bootstrap()

	if _, err := store.Login("a@x.com", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	store.Logout()

	sess := store.Session()
	if sess.State() != StateAnonymous {
		t.Errorf("state = %v, want StateAnonymous", sess.State())
	}
	if sess.User != nil || sess.Token != "" {
		t.Errorf("session = %+v, want empty", sess)
	}
	if creds.token != "" {
		t.Errorf("persisted credential = %q, want removed", creds.token)
	}
	if a.token != "" {
		t.Errorf("client token = %q, want cleared", a.token)
	}

	// Logout is idempotent
	store.Logout()
	if got := store.Session().State(); got != StateAnonymous {
		t.Errorf("state after second logout = %v, want StateAnonymous", got)
	}
}

func TestSignupDoesNotAuthenticate(t *testing.T) {
	a := &fakeAPI{
		signupResp: &api.SignupResponse{Message: "Account created"},
	}
	creds := &memCreds{}
	store := NewStore(a, creds)
	store.Bootstrap()

	resp, err := store.Signup(api.SignupRequest{Name: "A", Email: "a@x.com", Password: "secret"})
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if resp.Message != "Account created" {
		t.Errorf("message = %q", resp.Message)
	}

	if got := store.Session().State(); got != StateAnonymous {
		t.Errorf("state after signup = %v, want StateAnonymous", got)
	}
	if creds.token != "" {
		t.Errorf("persisted credential = %q, want none", creds.token)
	}
}

func TestSessionInvariant(t *testing.T) {
	// Once bootstrapping is false, user and token are both set or both
	// empty, across every transition
	a := &fakeAPI{
		profileUser: &model.User{ID: "u1"},
		loginResp:   &api.LoginResponse{Token: "t2", User: model.User{ID: "u1"}},
	}
	creds := &memCreds{token: "t1"}
	store := NewStore(a, creds)

	check := func(step string) {
		sess := store.Session()
		if sess.Bootstrapping {
			return
		}
		hasUser := sess.User != nil
		hasToken := sess.Token != ""
		if hasUser != hasToken {
			t.Errorf("%s: user present = %v but token present = %v", step, hasUser, hasToken)
		}
	}

	store.Bootstrap()
	check("bootstrap")
	store.Logout()
	check("logout")
	if _, err := store.Login("a@x.com", "secret"); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	check("login")
	store.Logout()
	check("second logout")
}
