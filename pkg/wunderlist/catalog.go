package wunderlist

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Operation names.
const (
	OpGetLists          = "get_lists"
	OpGetList           = "get_list"
	OpCreateList        = "create_list"
	OpUpdateList        = "update_list"
	OpStateList         = "state_list"
	OpDeleteList        = "delete_list"
	OpListUsers         = "list_users"
	OpGetTasks          = "get_tasks"
	OpGetTasksForState  = "get_tasks_for_state"
	OpGetTask           = "get_task"
	OpCreateTask        = "create_task"
	OpUpdateTask        = "update_task"
	OpDeleteTask        = "delete_task"
	OpUser              = "user"
	OpAvatar            = "avatar"
	OpGetMemberships    = "get_memberships"
	OpAddMember         = "add_member"
	OpRemoveMember      = "remove_member"
	OpCommentsList      = "comments_list"
	OpCommentsTask      = "comments_task"
	OpCreateComment     = "create_comment"
	OpSubtasksList      = "subtasks_list"
	OpSubtasksTask      = "subtasks_task"
	OpSubtasksListState = "subtasks_list_state"
	OpSubtasksTaskState = "subtasks_task_state"
	OpCreateSubtask     = "create_subtask"
	OpDeleteSubtask     = "delete_subtask"
	OpNotesList         = "notes_list"
	OpNotesTask         = "notes_task"
	OpCreateNote        = "create_note"
	OpDeleteNote        = "delete_note"
)

// Args carries the values interpolated into an operation's path, query and body.
type Args map[string]any

// Operation is one catalog entry.
type Operation struct {
	Name   string
	Method string
	// Path may hold {arg} placeholders, filled with path-escaped values.
	Path string
	// Query lists args appended as query parameters, in order.
	Query []string
	// Body lists args copied into a JSON object payload.
	Body []string
	// BodyArg names an arg whose value is sent as the payload itself.
	BodyArg string
	// Merge lists args merged into the BodyArg object.
	Merge       []string
	ContentType string
}

var catalog = []Operation{
	{Name: OpGetLists, Method: http.MethodGet, Path: "/lists"},
	{Name: OpGetList, Method: http.MethodGet, Path: "/lists/{id}"},
	{Name: OpCreateList, Method: http.MethodPost, Path: "/lists", Body: []string{"title"}},
	{Name: OpUpdateList, Method: http.MethodPatch, Path: "/lists/{id}", Body: []string{"revision", "title"}},
	{Name: OpStateList, Method: http.MethodPatch, Path: "/lists/{id}", Body: []string{"revision", "public"}},
	{Name: OpDeleteList, Method: http.MethodDelete, Path: "/lists/{id}", Query: []string{"revision"}},
	{Name: OpListUsers, Method: http.MethodGet, Path: "/users"},

	{Name: OpGetTasks, Method: http.MethodGet, Path: "/tasks", Query: []string{"list_id"}},
	{Name: OpGetTasksForState, Method: http.MethodGet, Path: "/tasks", Query: []string{"list_id", "completed"}},
	{Name: OpGetTask, Method: http.MethodGet, Path: "/tasks/{id}"},
	{Name: OpCreateTask, Method: http.MethodPost, Path: "/tasks", BodyArg: "task"},
	{Name: OpUpdateTask, Method: http.MethodPatch, Path: "/tasks/{id}", BodyArg: "task", Merge: []string{"revision"}},
	{Name: OpDeleteTask, Method: http.MethodDelete, Path: "/tasks/{id}", Query: []string{"revision"}},

	{Name: OpUser, Method: http.MethodGet, Path: "/user"},
	{Name: OpAvatar, Method: http.MethodGet, Path: "/avatar", Query: []string{"user_id", "size", "fallback"}, ContentType: ContentTypePNG},

	{Name: OpGetMemberships, Method: http.MethodGet, Path: "/memberships"},
	{Name: OpAddMember, Method: http.MethodPost, Path: "/memberships", Body: []string{"list_id", "user_id", "muted"}},
	{Name: OpRemoveMember, Method: http.MethodDelete, Path: "/memberships/{id}", Body: []string{"revision"}},

	{Name: OpCommentsList, Method: http.MethodGet, Path: "/task_comments", Query: []string{"list_id"}},
	{Name: OpCommentsTask, Method: http.MethodGet, Path: "/task_comments", Query: []string{"task_id"}},
	{Name: OpCreateComment, Method: http.MethodPost, Path: "/task_comments", Body: []string{"task_id", "text"}},

	{Name: OpSubtasksList, Method: http.MethodGet, Path: "/subtasks", Query: []string{"list_id"}},
	{Name: OpSubtasksTask, Method: http.MethodGet, Path: "/subtasks", Query: []string{"task_id"}},
	{Name: OpSubtasksListState, Method: http.MethodGet, Path: "/subtasks", Query: []string{"list_id", "completed"}},
	// The service filters task subtasks by state under the list_id key.
	{Name: OpSubtasksTaskState, Method: http.MethodGet, Path: "/subtasks", Query: []string{"list_id", "completed"}},
	{Name: OpCreateSubtask, Method: http.MethodPost, Path: "/subtasks", Body: []string{"task_id", "title", "completed"}},
	{Name: OpDeleteSubtask, Method: http.MethodDelete, Path: "/subtasks/{id}", Query: []string{"revision"}},

	{Name: OpNotesList, Method: http.MethodGet, Path: "/notes", Query: []string{"list_id"}},
	{Name: OpNotesTask, Method: http.MethodGet, Path: "/notes", Query: []string{"task_id"}},
	{Name: OpCreateNote, Method: http.MethodPost, Path: "/notes", Body: []string{"task_id", "content"}},
	{Name: OpDeleteNote, Method: http.MethodDelete, Path: "/notes/{id}", Query: []string{"revision"}},
}

var catalogIdx = func() map[string]Operation {
	idx := make(map[string]Operation, len(catalog))
	for _, op := range catalog {
		idx[op.Name] = op
	}
	return idx
}()

// Operations returns the catalog in declaration order.
func Operations() []Operation {
	out := make([]Operation, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Operation, bool) {
	op, ok := catalogIdx[strings.TrimSpace(strings.ToLower(name))]
	return op, ok
}

// Mutating reports whether the operation changes server state.
func (op Operation) Mutating() bool {
	return op.Method != http.MethodGet
}

// Params lists every arg the operation reads, in path, query, body order.
func (op Operation) Params() []string {
	var out []string
	for _, seg := range strings.Split(op.Path, "/") {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			out = append(out, strings.Trim(seg, "{}"))
		}
	}
	out = append(out, op.Query...)
	out = append(out, op.Body...)
	if op.BodyArg != "" {
		out = append(out, op.BodyArg)
	}
	return append(out, op.Merge...)
}

// Build interprets the catalog entry name against args.
func Build(name string, args Args) (Descriptor, error) {
	op, ok := Lookup(name)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op.Build(args)
}

// Build turns args into a Descriptor.
func (op Operation) Build(args Args) (Descriptor, error) {
	path, err := op.expandPath(args)
	if err != nil {
		return Descriptor{}, err
	}

	if len(op.Query) > 0 {
		pairs := make([]string, 0, len(op.Query))
		for _, key := range op.Query {
			v, err := op.arg(args, key)
			if err != nil {
				return Descriptor{}, err
			}
			pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(formatValue(v)))
		}
		path += "?" + strings.Join(pairs, "&")
	}

	body, err := op.buildBody(args)
	if err != nil {
		return Descriptor{}, err
	}

	return Descriptor{
		Method:      op.Method,
		Path:        path,
		Body:        body,
		ContentType: op.ContentType,
	}, nil
}

func (op Operation) expandPath(args Args) (string, error) {
	segs := strings.Split(op.Path, "/")
	for i, seg := range segs {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") {
			continue
		}
		v, err := op.arg(args, strings.Trim(seg, "{}"))
		if err != nil {
			return "", err
		}
		segs[i] = url.PathEscape(formatValue(v))
	}
	return strings.Join(segs, "/"), nil
}

func (op Operation) buildBody(args Args) (any, error) {
	if op.BodyArg != "" {
		obj, err := op.arg(args, op.BodyArg)
		if err != nil {
			return nil, err
		}
		if len(op.Merge) == 0 {
			return obj, nil
		}
		merged, err := toObject(obj)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", op.Name, op.BodyArg, err)
		}
		for _, key := range op.Merge {
			v, err := op.arg(args, key)
			if err != nil {
				return nil, err
			}
			merged[key] = v
		}
		return merged, nil
	}

	if len(op.Body) == 0 {
		return nil, nil
	}
	body := make(map[string]any, len(op.Body))
	for _, key := range op.Body {
		v, err := op.arg(args, key)
		if err != nil {
			return nil, err
		}
		body[key] = v
	}
	return body, nil
}

func (op Operation) arg(args Args, key string) (any, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("%w: %s requires %q", ErrMissingArgument, op.Name, key)
	}
	return v, nil
}

// toObject copies a caller-supplied object into a fresh map so merged keys
// never mutate the caller's value.
func toObject(v any) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		out := make(map[string]any, len(m)+1)
		for k, val := range m {
			out[k] = val
		}
		return out, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("must encode as a JSON object: %w", err)
	}
	return out, nil
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
	}
	return fmt.Sprint(v)
}

// Call builds the named operation and dispatches it.
func (c *Client) Call(ctx context.Context, name string, args Args) (*Envelope, error) {
	d, err := Build(name, args)
	if err != nil {
		return nil, err
	}
	return c.Dispatch(ctx, d)
}
