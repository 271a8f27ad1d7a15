package wunderlist

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestOperationsBuildExpectedRequests(t *testing.T) {
	cases := []struct {
		name        string
		call        func(c *Client) (*Envelope, error)
		method      string
		url         string
		body        string
		contentType string
	}{
		{"get lists", func(c *Client) (*Envelope, error) { return c.GetLists(context.Background()) }, http.MethodGet, "/lists", "", ""},
		{"get list", func(c *Client) (*Envelope, error) { return c.GetList(context.Background(), "12") }, http.MethodGet, "/lists/12", "", ""},
		{"create list", func(c *Client) (*Envelope, error) { return c.CreateList(context.Background(), "Groceries") }, http.MethodPost, "/lists", `{"title":"Groceries"}`, ""},
		{"update list", func(c *Client) (*Envelope, error) { return c.UpdateList(context.Background(), "12", 3, "Home") }, http.MethodPatch, "/lists/12", `{"revision":3,"title":"Home"}`, ""},
		{"state list", func(c *Client) (*Envelope, error) { return c.StateList(context.Background(), "12", 4, true) }, http.MethodPatch, "/lists/12", `{"public":true,"revision":4}`, ""},
		{"delete list", func(c *Client) (*Envelope, error) { return c.DeleteList(context.Background(), "12", 5) }, http.MethodDelete, "/lists/12?revision=5", "", ""},
		{"list users", func(c *Client) (*Envelope, error) { return c.ListUsers(context.Background()) }, http.MethodGet, "/users", "", ""},
		{"get tasks", func(c *Client) (*Envelope, error) { return c.GetTasks(context.Background(), "L1") }, http.MethodGet, "/tasks?list_id=L1", "", ""},
		{"get tasks for state", func(c *Client) (*Envelope, error) { return c.GetTasksForState(context.Background(), "L1", true) }, http.MethodGet, "/tasks?list_id=L1&completed=true", "", ""},
		{"get task", func(c *Client) (*Envelope, error) { return c.GetTask(context.Background(), "99") }, http.MethodGet, "/tasks/99", "", ""},
		{"create task", func(c *Client) (*Envelope, error) {
			return c.CreateTask(context.Background(), TaskInput{ListID: 1, Title: "milk"})
		}, http.MethodPost, "/tasks", `{"list_id":1,"title":"milk"}`, ""},
		{"update task", func(c *Client) (*Envelope, error) {
			return c.UpdateTask(context.Background(), "99", 2, map[string]any{"title": "eggs"})
		}, http.MethodPatch, "/tasks/99", `{"revision":2,"title":"eggs"}`, ""},
		{"delete task", func(c *Client) (*Envelope, error) { return c.DeleteTask(context.Background(), "123", 5) }, http.MethodDelete, "/tasks/123?revision=5", "", ""},
		{"user", func(c *Client) (*Envelope, error) { return c.User(context.Background()) }, http.MethodGet, "/user", "", ""},
		{"avatar", func(c *Client) (*Envelope, error) { return c.Avatar(context.Background(), "7", 128, false) }, http.MethodGet, "/avatar?user_id=7&size=128&fallback=false", "", ContentTypePNG},
		{"memberships", func(c *Client) (*Envelope, error) { return c.GetMemberships(context.Background()) }, http.MethodGet, "/memberships", "", ""},
		{"add member", func(c *Client) (*Envelope, error) { return c.AddMember(context.Background(), 7, 12, true) }, http.MethodPost, "/memberships", `{"list_id":12,"muted":true,"user_id":7}`, ""},
		{"remove member", func(c *Client) (*Envelope, error) { return c.RemoveMember(context.Background(), "55", 6) }, http.MethodDelete, "/memberships/55", `{"revision":6}`, ""},
		{"comments list", func(c *Client) (*Envelope, error) { return c.CommentsForList(context.Background(), "12") }, http.MethodGet, "/task_comments?list_id=12", "", ""},
		{"comments task", func(c *Client) (*Envelope, error) { return c.CommentsForTask(context.Background(), "99") }, http.MethodGet, "/task_comments?task_id=99", "", ""},
		{"create comment", func(c *Client) (*Envelope, error) { return c.CreateComment(context.Background(), 99, "hi") }, http.MethodPost, "/task_comments", `{"task_id":99,"text":"hi"}`, ""},
		{"subtasks list", func(c *Client) (*Envelope, error) { return c.SubtasksForList(context.Background(), "12") }, http.MethodGet, "/subtasks?list_id=12", "", ""},
		{"subtasks task", func(c *Client) (*Envelope, error) { return c.SubtasksForTask(context.Background(), "99") }, http.MethodGet, "/subtasks?task_id=99", "", ""},
		{"subtasks list state", func(c *Client) (*Envelope, error) { return c.SubtasksForListState(context.Background(), "12", false) }, http.MethodGet, "/subtasks?list_id=12&completed=false", "", ""},
		{"subtasks task state", func(c *Client) (*Envelope, error) { return c.SubtasksForTaskState(context.Background(), "99", true) }, http.MethodGet, "/subtasks?list_id=99&completed=true", "", ""},
		{"create subtask", func(c *Client) (*Envelope, error) { return c.CreateSubtask(context.Background(), 99, "step", false) }, http.MethodPost, "/subtasks", `{"completed":false,"task_id":99,"title":"step"}`, ""},
		{"delete subtask", func(c *Client) (*Envelope, error) { return c.DeleteSubtask(context.Background(), "31", 1) }, http.MethodDelete, "/subtasks/31?revision=1", "", ""},
		{"notes list", func(c *Client) (*Envelope, error) { return c.NotesForList(context.Background(), "12") }, http.MethodGet, "/notes?list_id=12", "", ""},
		{"notes task", func(c *Client) (*Envelope, error) { return c.NotesForTask(context.Background(), "99") }, http.MethodGet, "/notes?task_id=99", "", ""},
		{"create note", func(c *Client) (*Envelope, error) { return c.CreateNote(context.Background(), 99, "remember") }, http.MethodPost, "/notes", `{"content":"remember","task_id":99}`, ""},
		{"delete note", func(c *Client) (*Envelope, error) { return c.DeleteNote(context.Background(), "8", 2) }, http.MethodDelete, "/notes/8?revision=2", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			transport := &stubTransport{}
			c := newTestClient(t, transport)

			if _, err := tc.call(c); err != nil {
				t.Fatalf("call: %v", err)
			}
			req := transport.last(t)
			if req.Method != tc.method {
				t.Errorf("method = %s, want %s", req.Method, tc.method)
			}
			if want := "https://api.test/v1" + tc.url; req.URL != want {
				t.Errorf("url = %s, want %s", req.URL, want)
			}
			if string(req.Body) != tc.body {
				t.Errorf("body = %s, want %s", req.Body, tc.body)
			}
			wantCT := tc.contentType
			if wantCT == "" {
				wantCT = ContentTypeJSON
			}
			if got := req.Headers[HeaderContentType]; got != wantCT {
				t.Errorf("content type = %s, want %s", got, wantCT)
			}
			if req.Headers[HeaderAccessToken] != "token" || req.Headers[HeaderClientID] != "client" {
				t.Errorf("auth headers missing: %#v", req.Headers)
			}
		})
	}
}

func TestCatalogCoversEveryOperation(t *testing.T) {
	ops := Operations()
	if len(ops) != 31 {
		t.Fatalf("expected 31 operations, got %d", len(ops))
	}
	seen := map[string]bool{}
	for _, op := range ops {
		if seen[op.Name] {
			t.Fatalf("duplicate operation %q", op.Name)
		}
		seen[op.Name] = true
		if _, ok := Lookup(op.Name); !ok {
			t.Fatalf("Lookup(%q) failed", op.Name)
		}
	}
}

func TestBuildExamples(t *testing.T) {
	d, err := Build(OpCreateList, Args{"title": "Groceries"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Method != http.MethodPost || d.Path != "/lists" {
		t.Fatalf("unexpected descriptor %+v", d)
	}
	body, ok := d.Body.(map[string]any)
	if !ok || body["title"] != "Groceries" || len(body) != 1 {
		t.Fatalf("unexpected body %#v", d.Body)
	}

	d, err = Build(OpDeleteTask, Args{"id": "123", "revision": 5})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Method != http.MethodDelete || d.Path != "/tasks/123?revision=5" || d.Body != nil {
		t.Fatalf("unexpected descriptor %+v", d)
	}

	d, err = Build(OpGetTasksForState, Args{"list_id": "L1", "completed": true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Method != http.MethodGet || d.Path != "/tasks?list_id=L1&completed=true" {
		t.Fatalf("unexpected descriptor %+v", d)
	}
}

func TestBuildEscapesIdentifiers(t *testing.T) {
	d, err := Build(OpGetList, Args{"id": "a/b c"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Path != "/lists/a%2Fb%20c" {
		t.Fatalf("path = %s", d.Path)
	}

	d, err = Build(OpGetTasks, Args{"list_id": "x&y=z"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Path != "/tasks?list_id=x%26y%3Dz" {
		t.Fatalf("path = %s", d.Path)
	}
}

func TestBuildFormatsWholeFloats(t *testing.T) {
	d, err := Build(OpDeleteNote, Args{"id": float64(8), "revision": float64(2)})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Path != "/notes/8?revision=2" {
		t.Fatalf("path = %s", d.Path)
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build("nope", nil); !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("expected ErrUnknownOperation, got %v", err)
	}
	if _, err := Build(OpDeleteTask, Args{"id": "1"}); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
	if _, err := Build(OpUpdateTask, Args{"id": "1", "revision": 1, "task": []int{1}}); err == nil {
		t.Fatalf("expected error for non-object task body")
	}
}

func TestUpdateTaskDoesNotMutateCallerFields(t *testing.T) {
	fields := map[string]any{"title": "eggs"}
	c := newTestClient(t, &stubTransport{})
	if _, err := c.UpdateTask(context.Background(), "1", 3, fields); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if _, ok := fields["revision"]; ok {
		t.Fatalf("caller map was mutated: %#v", fields)
	}
}

func TestOperationParamsAndMutating(t *testing.T) {
	op, _ := Lookup(OpUpdateTask)
	got := op.Params()
	want := []string{"id", "task", "revision"}
	if len(got) != len(want) {
		t.Fatalf("Params = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Params = %v, want %v", got, want)
		}
	}
	if !op.Mutating() {
		t.Fatalf("update_task should be mutating")
	}
	if op, _ := Lookup(OpGetLists); op.Mutating() {
		t.Fatalf("get_lists should not be mutating")
	}
}

func TestSubtasksTaskStateSendsListIDKey(t *testing.T) {
	d, err := Build(OpSubtasksTaskState, Args{"list_id": "99", "completed": true})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if d.Path != "/subtasks?list_id=99&completed=true" {
		t.Fatalf("Path = %q", d.Path)
	}

	if _, err := Build(OpSubtasksTaskState, Args{"task_id": "99", "completed": true}); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument for task_id, got %v", err)
	}
}
