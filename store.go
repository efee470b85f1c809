package taskline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// Store owns the in-memory task collection and its persistence. One
// Store is constructed per invocation; there is no ambient singleton
// and no in-memory-only mode.
type Store struct {
	path   string
	tasks  map[int]*Task
	logger *log.Logger

	// now is swapped out in tests to control timestamps.
	now func() time.Time
}

// NewStore creates an empty store persisting to path. Call Load before
// using it.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return &Store{
		path:   path,
		tasks:  make(map[int]*Task),
		logger: logger,
		now:    time.Now,
	}
}

// Load reads the persisted collection into memory. A missing file means
// an empty collection, not an error. Content that is not valid JSON,
// fails schema validation, or maps a key to a task with a different id
// triggers the corrupt-file policy: the file is moved aside to a
// .corrupt-* backup, a warning is logged, and the store starts fresh.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.tasks = make(map[int]*Task)
		s.logger.Debug("no task file yet, starting empty", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("read task file: %w", err)
	}

	tasks, err := decodeTasks(data)
	if err != nil {
		s.recoverCorrupt(err)
		return nil
	}

	s.tasks = tasks
	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return nil
}

// decodeTasks parses and validates the persisted document.
func decodeTasks(data []byte) (map[int]*Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if err := tasksSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	var tasks map[int]*Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	for id, task := range tasks {
		if task.ID != id {
			return nil, fmt.Errorf("key %d maps to task id %d", id, task.ID)
		}
	}
	if tasks == nil {
		tasks = make(map[int]*Task)
	}
	return tasks, nil
}

// recoverCorrupt applies the corrupt-file policy: preserve the broken
// file under a backup name, then reset to an empty collection.
func (s *Store) recoverCorrupt(cause error) {
	backup := fmt.Sprintf("%s.corrupt-%s", s.path, uuid.New().String()[:8])
	if err := os.Rename(s.path, backup); err != nil {
		s.logger.Warn("task file is corrupt and could not be backed up, starting fresh",
			"path", s.path, "cause", cause, "backup_error", err)
	} else {
		s.logger.Warn("task file is corrupt, starting fresh",
			"path", s.path, "cause", cause, "backup", backup)
	}
	s.tasks = make(map[int]*Task)
}

// Save rewrites the entire collection. The data is written to a temp
// file in the same directory and renamed over the target so a crash
// mid-write cannot corrupt the file for the next load.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".taskline-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace task file: %w", err)
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(s.tasks))
	return nil
}

// NextID returns max(existing ids, default 0) + 1. Deleted ids are
// never reassigned: the maximum is taken over live ids, so a delete
// followed by an add still moves forward.
func (s *Store) NextID() int {
	max := 0
	for id := range s.tasks {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// Add creates a task with a fresh id and status todo, persists, and
// returns it.
func (s *Store) Add(description string) (*Task, error) {
	now := s.now()
	task := &Task{
		ID:          s.NextID(),
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[task.ID] = task
	if err := s.Save(); err != nil {
		delete(s.tasks, task.ID)
		return nil, err
	}
	return task, nil
}

// Update replaces the task's description and refreshes UpdatedAt.
// Returns ErrNotFound, without touching the file, if id does not exist.
func (s *Store) Update(id int, description string) error {
	task, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Description = description
	task.UpdatedAt = s.now()
	return s.Save()
}

// Delete removes the task. Returns ErrNotFound, without touching the
// file, if id does not exist.
func (s *Store) Delete(id int) error {
	if _, ok := s.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(s.tasks, id)
	return s.Save()
}

// SetStatus moves the task to the given status and refreshes
// UpdatedAt. Returns ErrInvalidStatus or ErrNotFound, without touching
// the file, when the arguments don't check out.
func (s *Store) SetStatus(id int, status Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	task, ok := s.tasks[id]
	if !ok {
		return ErrNotFound
	}
	task.Status = status
	task.UpdatedAt = s.now()
	return s.Save()
}

// Get returns the task with the given id, or nil.
func (s *Store) Get(id int) *Task {
	return s.tasks[id]
}

// Len returns the number of tasks in the store.
func (s *Store) Len() int {
	return len(s.tasks)
}

// List returns a snapshot of the collection sorted by id. A zero-value
// filter returns everything; otherwise only tasks with that exact
// status are included.
func (s *Store) List(filter Status) []*Task {
	tasks := make([]*Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		if filter != "" && task.Status != filter {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}
