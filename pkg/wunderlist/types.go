package wunderlist

// Typed views of the service's resources, for use with Envelope.Decode.
// The client itself never inspects response shapes.

type List struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	ListType  string `json:"list_type"`
	Type      string `json:"type"`
	Public    bool   `json:"public"`
	Revision  int    `json:"revision"`
	CreatedAt string `json:"created_at"`
}

type Task struct {
	ID              int64  `json:"id"`
	ListID          int64  `json:"list_id"`
	AssigneeID      int64  `json:"assignee_id,omitempty"`
	Title           string `json:"title"`
	Completed       bool   `json:"completed"`
	Starred         bool   `json:"starred"`
	DueDate         string `json:"due_date,omitempty"`
	Revision        int    `json:"revision"`
	CreatedAt       string `json:"created_at"`
	CreatedByID     int64  `json:"created_by_id"`
	RecurrenceType  string `json:"recurrence_type,omitempty"`
	RecurrenceCount int    `json:"recurrence_count,omitempty"`
}

// TaskInput is a convenience payload for CreateTask and UpdateTask.
type TaskInput struct {
	ListID     int64  `json:"list_id,omitempty"`
	Title      string `json:"title,omitempty"`
	AssigneeID int64  `json:"assignee_id,omitempty"`
	Completed  *bool  `json:"completed,omitempty"`
	Starred    *bool  `json:"starred,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
}

type Subtask struct {
	ID        int64  `json:"id"`
	TaskID    int64  `json:"task_id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Revision  int    `json:"revision"`
	CreatedAt string `json:"created_at"`
}

type Note struct {
	ID       int64  `json:"id"`
	TaskID   int64  `json:"task_id"`
	Content  string `json:"content"`
	Revision int    `json:"revision"`
}

type Comment struct {
	ID        int64  `json:"id"`
	TaskID    int64  `json:"task_id"`
	Text      string `json:"text"`
	Revision  int    `json:"revision"`
	CreatedAt string `json:"created_at"`
}

type Membership struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	ListID   int64  `json:"list_id"`
	State    string `json:"state"`
	Owner    bool   `json:"owner"`
	Muted    bool   `json:"muted"`
	Revision int    `json:"revision"`
}

type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Revision  int    `json:"revision"`
	CreatedAt string `json:"created_at"`
}

// RemoteError is the error body the service answers with on 4xx/5xx.
type RemoteError struct {
	Error struct {
		Type        string `json:"type"`
		Translation string `json:"translation_key"`
		Message     string `json:"message"`
	} `json:"error"`
}
