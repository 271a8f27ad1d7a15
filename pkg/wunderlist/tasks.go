package wunderlist

import "context"

func (c *Client) GetTasks(ctx context.Context, listID string) (*Envelope, error) {
	return c.Call(ctx, OpGetTasks, Args{"list_id": listID})
}

// GetTasksForState filters a list's tasks by completion.
func (c *Client) GetTasksForState(ctx context.Context, listID string, completed bool) (*Envelope, error) {
	return c.Call(ctx, OpGetTasksForState, Args{"list_id": listID, "completed": completed})
}

func (c *Client) GetTask(ctx context.Context, id string) (*Envelope, error) {
	return c.Call(ctx, OpGetTask, Args{"id": id})
}

// CreateTask posts task as-is; it may be a map, a TaskInput or any JSON-encodable value.
func (c *Client) CreateTask(ctx context.Context, task any) (*Envelope, error) {
	return c.Call(ctx, OpCreateTask, Args{"task": task})
}

// UpdateTask patches a task with fields plus the given revision.
// fields must encode as a JSON object and is not modified.
func (c *Client) UpdateTask(ctx context.Context, id string, revision int, fields any) (*Envelope, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	return c.Call(ctx, OpUpdateTask, Args{"id": id, "revision": revision, "task": fields})
}

func (c *Client) DeleteTask(ctx context.Context, id string, revision int) (*Envelope, error) {
	return c.Call(ctx, OpDeleteTask, Args{"id": id, "revision": revision})
}

func (c *Client) CommentsForList(ctx context.Context, listID string) (*Envelope, error) {
	return c.Call(ctx, OpCommentsList, Args{"list_id": listID})
}

func (c *Client) CommentsForTask(ctx context.Context, taskID string) (*Envelope, error) {
	return c.Call(ctx, OpCommentsTask, Args{"task_id": taskID})
}

func (c *Client) CreateComment(ctx context.Context, taskID int64, text string) (*Envelope, error) {
	return c.Call(ctx, OpCreateComment, Args{"task_id": taskID, "text": text})
}

func (c *Client) SubtasksForList(ctx context.Context, listID string) (*Envelope, error) {
	return c.Call(ctx, OpSubtasksList, Args{"list_id": listID})
}

func (c *Client) SubtasksForTask(ctx context.Context, taskID string) (*Envelope, error) {
	return c.Call(ctx, OpSubtasksTask, Args{"task_id": taskID})
}

func (c *Client) SubtasksForListState(ctx context.Context, listID string, completed bool) (*Envelope, error) {
	return c.Call(ctx, OpSubtasksListState, Args{"list_id": listID, "completed": completed})
}

// SubtasksForTaskState filters a task's subtasks by state. The task id is
// sent as the list_id query parameter, which is the key the service reads.
func (c *Client) SubtasksForTaskState(ctx context.Context, taskID string, completed bool) (*Envelope, error) {
	return c.Call(ctx, OpSubtasksTaskState, Args{"list_id": taskID, "completed": completed})
}

func (c *Client) CreateSubtask(ctx context.Context, taskID int64, title string, completed bool) (*Envelope, error) {
	return c.Call(ctx, OpCreateSubtask, Args{"task_id": taskID, "title": title, "completed": completed})
}

func (c *Client) DeleteSubtask(ctx context.Context, id string, revision int) (*Envelope, error) {
	return c.Call(ctx, OpDeleteSubtask, Args{"id": id, "revision": revision})
}

func (c *Client) NotesForList(ctx context.Context, listID string) (*Envelope, error) {
	return c.Call(ctx, OpNotesList, Args{"list_id": listID})
}

func (c *Client) NotesForTask(ctx context.Context, taskID string) (*Envelope, error) {
	return c.Call(ctx, OpNotesTask, Args{"task_id": taskID})
}

func (c *Client) CreateNote(ctx context.Context, taskID int64, content string) (*Envelope, error) {
	return c.Call(ctx, OpCreateNote, Args{"task_id": taskID, "content": content})
}

func (c *Client) DeleteNote(ctx context.Context, id string, revision int) (*Envelope, error) {
	return c.Call(ctx, OpDeleteNote, Args{"id": id, "revision": revision})
}
