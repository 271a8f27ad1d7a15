package domain

import "time"

// CallRecord describes one dispatched API call as seen by the CLI.
type CallRecord struct {
	ID         string    `json:"id"`
	Operation  string    `json:"operation"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	StatusCode int       `json:"status_code,omitempty"`
	Error      string    `json:"error,omitempty"`
	ElapsedMs  int64     `json:"elapsed_ms"`
	At         time.Time `json:"at"`
}
