package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dsubhasis934/task-management-tui/internal/model"
)

// recordedRequest captures what the server saw
type recordedRequest struct {
	method string
	path   string
	auth   string
	body   []byte
}

// newTestServer returns a server that records requests and replies with
// the given status and body
func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &requests
}

func TestBearerTokenAttached(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK, `{"tasks":[]}`)
	client := NewClient(srv.URL)

	// No token yet: no Authorization header
	if _, err := client.GetTasks(); err != nil {
		t.Fatalf("GetTasks() error = %v", err)
	}
	if got := (*requests)[0].auth; got != "" {
		t.Errorf("Authorization before login = %q, want empty", got)
	}

	client.SetToken("t1")
	if _, err := client.GetTasks(); err != nil {
		t.Fatalf("GetTasks() error = %v", err)
	}
	if got := (*requests)[1].auth; got != "Bearer t1" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer t1")
	}

	client.ClearToken()
	if _, err := client.GetTasks(); err != nil {
		t.Fatalf("GetTasks() error = %v", err)
	}
	if got := (*requests)[2].auth; got != "" {
		t.Errorf("Authorization after ClearToken = %q, want empty", got)
	}
}

func TestNoClientTimeout(t *testing.T) {
	client := NewClient("")
	if client.httpClient.Timeout != 0 {
		t.Errorf("Timeout = %v, want transport default (0)", client.httpClient.Timeout)
	}
}

func TestLogin(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK,
		`{"token":"t1","user":{"_id":"u1","name":"A","email":"a@x.com","role":"user"}}`)
	client := NewClient(srv.URL)

	resp, err := client.Login("a@x.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if resp.Token != "t1" {
		t.Errorf("Token = %q, want %q", resp.Token, "t1")
	}
	if resp.User.ID != "u1" || resp.User.Name != "A" {
		t.Errorf("User = %+v, want id u1 name A", resp.User)
	}

	req := (*requests)[0]
	if req.method != http.MethodPost || req.path != "/auth/login" {
		t.Errorf("request = %s %s, want POST /auth/login", req.method, req.path)
	}
	var body map[string]string
	if err := json.Unmarshal(req.body, &body); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if body["email"] != "a@x.com" || body["password"] != "secret" {
		t.Errorf("body = %v, want email and password", body)
	}
}

func TestErrorTaxonomy(t *testing.T) {
	t.Run("401 yields AuthError with server message", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
		client := NewClient(srv.URL)

		_, err := client.GetProfile()
		authErr, ok := err.(*AuthError)
		if !ok {
			t.Fatalf("error = %T, want *AuthError", err)
		}
		if authErr.Message != "Invalid credentials" {
			t.Errorf("Message = %q, want server message", authErr.Message)
		}
	})

	t.Run("500 yields ServerError", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
		client := NewClient(srv.URL)

		_, err := client.GetTasks()
		srvErr, ok := err.(*ServerError)
		if !ok {
			t.Fatalf("error = %T, want *ServerError", err)
		}
		if srvErr.StatusCode != 500 || srvErr.Message != "boom" {
			t.Errorf("ServerError = %+v", srvErr)
		}
	})

	t.Run("404 without message payload", func(t *testing.T) {
		srv, _ := newTestServer(t, http.StatusNotFound, `not json`)
		client := NewClient(srv.URL)

		_, err := client.GetTask("nope")
		srvErr, ok := err.(*ServerError)
		if !ok {
			t.Fatalf("error = %T, want *ServerError", err)
		}
		if srvErr.Message != "" {
			t.Errorf("Message = %q, want empty", srvErr.Message)
		}
	})

	t.Run("unreachable server yields TransportError", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		srv.Close() // Closed: connections refused

		client := NewClient(srv.URL)
		_, err := client.GetTasks()
		if _, ok := err.(*TransportError); !ok {
			t.Fatalf("error = %T, want *TransportError", err)
		}
	})
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"auth error with message", &AuthError{Message: "expired"}, "expired"},
		{"auth error without message", &AuthError{}, "fallback"},
		{"server error with message", &ServerError{StatusCode: 400, Message: "bad"}, "bad"},
		{"server error without message", &ServerError{StatusCode: 500}, "fallback"},
		{"transport error", &TransportError{Err: io.EOF}, "fallback"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message(tt.err, "fallback"); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCreateTaskOmitsAssignment(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusCreated, `{"message":"created"}`)
	client := NewClient(srv.URL)
	client.SetToken("t1")

	draft := TaskDraft{Title: "Ship", DueDate: "2025-01-01", Status: model.TaskStatusPending}
	if _, err := client.CreateTask(draft); err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}

	req := (*requests)[0]
	if req.method != http.MethodPost || req.path != "/task" {
		t.Errorf("request = %s %s, want POST /task", req.method, req.path)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(req.body, &body); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if _, present := body["assignedUserIds"]; present {
		t.Error("self-service create body includes assignedUserIds")
	}
}

func TestAssignTaskIncludesUserIDs(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusCreated, `{"message":"assigned"}`)
	client := NewClient(srv.URL)
	client.SetToken("t1")

	req := AssignRequest{
		Title:           "Ship",
		DueDate:         "2025-01-01",
		AssignedUserIDs: []string{"u2", "u3"},
	}
	if _, err := client.AssignTask(req); err != nil {
		t.Fatalf("AssignTask() error = %v", err)
	}

	recorded := (*requests)[0]
	if recorded.method != http.MethodPost || recorded.path != "/task/admin/assign" {
		t.Errorf("request = %s %s, want POST /task/admin/assign", recorded.method, recorded.path)
	}
	var body struct {
		AssignedUserIDs []string `json:"assignedUserIds"`
	}
	if err := json.Unmarshal(recorded.body, &body); err != nil {
		t.Fatalf("unmarshal request body: %v", err)
	}
	if len(body.AssignedUserIDs) != 2 || body.AssignedUserIDs[0] != "u2" || body.AssignedUserIDs[1] != "u3" {
		t.Errorf("assignedUserIds = %v, want [u2 u3]", body.AssignedUserIDs)
	}
}

func TestTaskCollectionEnvelope(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK,
		`{"tasks":[{"_id":"1","title":"One","dueDate":"2025-01-01","status":"pending"},
		           {"_id":"2","title":"Two","dueDate":"2025-02-01","status":"completed"}]}`)
	client := NewClient(srv.URL)

	tasks, err := client.GetTasks()
	if err != nil {
		t.Fatalf("GetTasks() error = %v", err)
	}
	if len(tasks) != 2 || tasks[0].ID != "1" || tasks[1].Status != model.TaskStatusCompleted {
		t.Errorf("tasks = %+v", tasks)
	}

	if _, err := client.GetUserTasks("u2"); err != nil {
		t.Fatalf("GetUserTasks() error = %v", err)
	}
	if got := (*requests)[1].path; got != "/task/admin/user/u2" {
		t.Errorf("path = %q, want /task/admin/user/u2", got)
	}
}

func TestAdminTaskPaths(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK, `{"message":"ok"}`)
	client := NewClient(srv.URL)
	draft := TaskDraft{Title: "T", DueDate: "2025-01-01", Status: model.TaskStatusPending}

	if _, err := client.AdminUpdateTask("42", draft); err != nil {
		t.Fatalf("AdminUpdateTask() error = %v", err)
	}
	if _, err := client.AdminDeleteTask("42"); err != nil {
		t.Fatalf("AdminDeleteTask() error = %v", err)
	}
	if _, err := client.UpdateTask("42", draft); err != nil {
		t.Fatalf("UpdateTask() error = %v", err)
	}
	if _, err := client.DeleteTask("42"); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}

	want := []struct{ method, path string }{
		{http.MethodPut, "/task/admin/42"},
		{http.MethodDelete, "/task/admin/42"},
		{http.MethodPut, "/task/42"},
		{http.MethodDelete, "/task/42"},
	}
	for i, w := range want {
		got := (*requests)[i]
		if got.method != w.method || got.path != w.path {
			t.Errorf("request %d = %s %s, want %s %s", i, got.method, got.path, w.method, w.path)
		}
	}
}

func TestGetDashboard(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK,
		`[{"_id":"u2","name":"B","email":"b@x.com","totalTasks":3,"completedTasks":1,"inProgressTasks":1,"pendingTasks":1}]`)
	client := NewClient(srv.URL)

	rows, err := client.GetDashboard()
	if err != nil {
		t.Fatalf("GetDashboard() error = %v", err)
	}
	if got := (*requests)[0].path; got != "/task/admin/dashboard" {
		t.Errorf("path = %q, want /task/admin/dashboard", got)
	}
	if len(rows) != 1 || rows[0].UserID != "u2" || rows[0].TotalTasks != 3 {
		t.Errorf("rows = %+v", rows)
	}
}
