// Package taskline implements a single-user task tracker backed by one
// JSON file. The Store is loaded fully into memory at process start,
// mutated in memory, and rewritten to disk after every successful
// mutation. Two simultaneous invocations against the same file race;
// the last save wins.
package taskline

import (
	"fmt"
	"time"
)

// Status is the closed set of task states. Any status may transition to
// any other status directly.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is one of the three recognized statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// ParseStatus converts external text into a Status. This is the only
// place user-supplied status strings enter the domain.
func ParseStatus(text string) (Status, error) {
	s := Status(text)
	if !s.Valid() {
		return "", fmt.Errorf("unknown status %q (expected todo, in-progress or done)", text)
	}
	return s, nil
}

// Task represents one tracked unit of work.
type Task struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
