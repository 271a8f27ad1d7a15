package publishers

import (
	"strconv"
	"time"

	"github.com/samvad-hq/wunderlist-go/internal/domain"
)

// Event is the change notification published after a mutating call.
type Event struct {
	Operation  string    `json:"operation"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code"`
	CallID     string    `json:"call_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewEvent constructs an Event from a journaled call.
func NewEvent(rec domain.CallRecord) Event {
	at := rec.At
	if at.IsZero() {
		at = time.Now()
	}
	return Event{
		Operation:  rec.Operation,
		Method:     rec.Method,
		Path:       rec.Path,
		StatusCode: rec.StatusCode,
		CallID:     rec.ID,
		OccurredAt: at.UTC(),
	}
}

// Attributes are the routing keys attached to queue and topic messages, so
// subscribers can filter on the operation without decoding the body.
// Empty values are left out; SQS and SNS reject them.
func (e Event) Attributes() map[string]string {
	attrs := make(map[string]string, 4)
	set := func(k, v string) {
		if v != "" {
			attrs[k] = v
		}
	}
	set("operation", e.Operation)
	set("method", e.Method)
	set("call_id", e.CallID)
	if e.StatusCode != 0 {
		attrs["status_code"] = strconv.Itoa(e.StatusCode)
	}
	return attrs
}
